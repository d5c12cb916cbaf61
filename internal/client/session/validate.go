package session

import (
	"github.com/dmitrijs2005/insula/internal/client/models"
)

// Validation is the outcome of checking a response against the
// required-field contract. User is set only when Valid.
type Validation struct {
	Valid   bool
	User    *models.User
	Token   string
	Missing []string
}

// Validate checks resp for a complete profile: non-empty id, email,
// firstName and lastName, and present (possibly zero) birthDay, birthMonth,
// birthYear, weight, height and glucoseProfile.
func Validate(resp *models.UserResponse) Validation {
	if resp == nil {
		return Validation{Missing: []string{"body"}}
	}

	var missing []string
	check := func(ok bool, field string) {
		if !ok {
			missing = append(missing, field)
		}
	}
	check(resp.ID != "", "id")
	check(resp.Email != "", "email")
	check(resp.FirstName != "", "firstName")
	check(resp.LastName != "", "lastName")
	check(resp.BirthDay != nil, "birthDay")
	check(resp.BirthMonth != nil, "birthMonth")
	check(resp.BirthYear != nil, "birthYear")
	check(resp.Weight != nil, "weight")
	check(resp.Height != nil, "height")
	check(resp.GlucoseProfile != nil, "glucoseProfile")

	if len(missing) > 0 {
		return Validation{Token: resp.Token, Missing: missing}
	}

	user := &models.User{
		ID:             resp.ID,
		Email:          resp.Email,
		FirstName:      resp.FirstName,
		LastName:       resp.LastName,
		BirthDay:       *resp.BirthDay,
		BirthMonth:     *resp.BirthMonth,
		BirthYear:      *resp.BirthYear,
		Weight:         *resp.Weight,
		Height:         *resp.Height,
		GlucoseProfile: *resp.GlucoseProfile,
		ImageURL:       resp.ImageURL,
	}
	if resp.GlucoseTarget != nil {
		t := *resp.GlucoseTarget
		user.GlucoseTarget = &t
	}
	if resp.MedicalInfo != nil {
		m := *resp.MedicalInfo
		user.MedicalInfo = &m
	}
	return Validation{Valid: true, User: user, Token: resp.Token}
}
