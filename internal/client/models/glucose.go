// Package models defines client-side data models used by the insulA client:
// the user profile, glucose classification and the DTOs exchanged with the
// identity/profile API.
package models

// GlucoseProfile classifies a patient's typical glucose tendency.
type GlucoseProfile string

const (
	// GlucoseProfileHypo marks a patient prone to readings below range.
	GlucoseProfileHypo GlucoseProfile = "hypo"
	// GlucoseProfileNormal marks a patient usually within range.
	GlucoseProfileNormal GlucoseProfile = "normal"
	// GlucoseProfileHyper marks a patient prone to readings above range.
	GlucoseProfileHyper GlucoseProfile = "hyper"
)

// Valid reports whether p is one of the known classifications.
func (p GlucoseProfile) Valid() bool {
	switch p {
	case GlucoseProfileHypo, GlucoseProfileNormal, GlucoseProfileHyper:
		return true
	}
	return false
}

// ParseGlucoseProfile maps user input to a GlucoseProfile.
// Accepts both the wire values and their descriptive aliases.
func ParseGlucoseProfile(s string) (GlucoseProfile, bool) {
	switch s {
	case "hypo", "low", "below":
		return GlucoseProfileHypo, true
	case "normal":
		return GlucoseProfileNormal, true
	case "hyper", "high", "above":
		return GlucoseProfileHyper, true
	}
	return "", false
}

// GlucoseTarget is the desired glucose range in mg/dL.
type GlucoseTarget struct {
	MinTarget float64 `json:"minTarget"`
	MaxTarget float64 `json:"maxTarget"`
}

// Valid reports whether the range is positive and ordered.
func (t GlucoseTarget) Valid() bool {
	return t.MinTarget > 0 && t.MinTarget < t.MaxTarget
}

// DiabetesTypeType1 is the only diabetes type the backend currently records.
const DiabetesTypeType1 = "type1"

// MedicalInfo holds optional clinical details attached to a profile.
type MedicalInfo struct {
	DiabetesType   string `json:"diabetesType,omitempty"`
	DiagnosisDate  string `json:"diagnosisDate,omitempty"`
	TreatingDoctor string `json:"treatingDoctor,omitempty"`
}
