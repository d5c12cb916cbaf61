package models

// User is a complete profile. The session only ever holds a User built from
// a response that passed the completeness check.
type User struct {
	ID             string         `json:"id"`
	Email          string         `json:"email"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	BirthDay       int            `json:"birthDay"`
	BirthMonth     int            `json:"birthMonth"`
	BirthYear      int            `json:"birthYear"`
	Weight         float64        `json:"weight"`
	Height         float64        `json:"height"`
	GlucoseProfile GlucoseProfile `json:"glucoseProfile"`
	GlucoseTarget  *GlucoseTarget `json:"glucoseTarget,omitempty"`
	MedicalInfo    *MedicalInfo   `json:"medicalInfo,omitempty"`
	ImageURL       string         `json:"imageUrl,omitempty"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// DiagnosisDate returns the recorded diagnosis date or "".
func (u *User) DiagnosisDate() string {
	if u.MedicalInfo == nil {
		return ""
	}
	return u.MedicalInfo.DiagnosisDate
}

// TreatingDoctor returns the recorded treating doctor or "".
func (u *User) TreatingDoctor() string {
	if u.MedicalInfo == nil {
		return ""
	}
	return u.MedicalInfo.TreatingDoctor
}

// DiabetesType returns the recorded diabetes type, defaulting to type1.
func (u *User) DiabetesType() string {
	if u.MedicalInfo == nil || u.MedicalInfo.DiabetesType == "" {
		return DiabetesTypeType1
	}
	return u.MedicalInfo.DiabetesType
}

// Clone returns a deep copy so callers can't mutate session state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.GlucoseTarget != nil {
		t := *u.GlucoseTarget
		c.GlucoseTarget = &t
	}
	if u.MedicalInfo != nil {
		m := *u.MedicalInfo
		c.MedicalInfo = &m
	}
	return &c
}
