package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_MedicalAccessors_DefaultWhenAbsent(t *testing.T) {
	u := &User{FirstName: "Ana"}

	assert.Equal(t, "", u.DiagnosisDate())
	assert.Equal(t, "", u.TreatingDoctor())
	assert.Equal(t, DiabetesTypeType1, u.DiabetesType())
	assert.Equal(t, "Ana", u.FullName())

	u.LastName = "Ruiz"
	u.MedicalInfo = &MedicalInfo{DiagnosisDate: "2019-04-01", TreatingDoctor: "Dr. Vega"}
	assert.Equal(t, "2019-04-01", u.DiagnosisDate())
	assert.Equal(t, "Dr. Vega", u.TreatingDoctor())
	assert.Equal(t, "Ana Ruiz", u.FullName())
}

func TestUser_Clone_IsDeep(t *testing.T) {
	u := &User{
		ID:            "1",
		GlucoseTarget: &GlucoseTarget{MinTarget: 70, MaxTarget: 180},
		MedicalInfo:   &MedicalInfo{TreatingDoctor: "Dr. Vega"},
	}
	c := u.Clone()
	c.GlucoseTarget.MinTarget = 90
	c.MedicalInfo.TreatingDoctor = "other"

	assert.Equal(t, 70.0, u.GlucoseTarget.MinTarget)
	assert.Equal(t, "Dr. Vega", u.MedicalInfo.TreatingDoctor)

	var nilUser *User
	assert.Nil(t, nilUser.Clone())
}

func TestParseGlucoseProfile(t *testing.T) {
	tests := []struct {
		in   string
		want GlucoseProfile
		ok   bool
	}{
		{"hypo", GlucoseProfileHypo, true},
		{"low", GlucoseProfileHypo, true},
		{"normal", GlucoseProfileNormal, true},
		{"above", GlucoseProfileHyper, true},
		{"weird", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseGlucoseProfile(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.True(t, got.Valid())
			}
		})
	}
}

func TestGlucoseTarget_Valid(t *testing.T) {
	assert.True(t, GlucoseTarget{MinTarget: 70, MaxTarget: 180}.Valid())
	assert.False(t, GlucoseTarget{MinTarget: 180, MaxTarget: 70}.Valid())
	assert.False(t, GlucoseTarget{MinTarget: 0, MaxTarget: 70}.Valid())
}

func TestUserResponse_ZeroVsAbsent(t *testing.T) {
	var withZero UserResponse
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","weight":0}`), &withZero))
	require.NotNil(t, withZero.Weight)
	assert.Equal(t, 0.0, *withZero.Weight)
	assert.Nil(t, withZero.Height)
}

func TestMessageResponse_Text(t *testing.T) {
	assert.Equal(t, "a", MessageResponse{Message: "a", Error: "b"}.Text())
	assert.Equal(t, "b", MessageResponse{Error: "b"}.Text())
	assert.Equal(t, "", MessageResponse{}.Text())
}
