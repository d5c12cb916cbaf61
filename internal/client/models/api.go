package models

// RegisterInput is the registration payload sent to POST /users/register.
type RegisterInput struct {
	Email          string         `json:"email"`
	Password       string         `json:"password"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	BirthDay       int            `json:"birthDay"`
	BirthMonth     int            `json:"birthMonth"`
	BirthYear      int            `json:"birthYear"`
	Weight         float64        `json:"weight"`
	Height         float64        `json:"height"`
	GlucoseProfile GlucoseProfile `json:"glucoseProfile"`
}

// LoginInput is the body of POST /users/login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileInput is a partial update for PUT /users/profile.
// Nil fields are left untouched by the server.
type UpdateProfileInput struct {
	FirstName      *string         `json:"firstName,omitempty"`
	LastName       *string         `json:"lastName,omitempty"`
	BirthDay       *int            `json:"birthDay,omitempty"`
	BirthMonth     *int            `json:"birthMonth,omitempty"`
	BirthYear      *int            `json:"birthYear,omitempty"`
	Weight         *float64        `json:"weight,omitempty"`
	Height         *float64        `json:"height,omitempty"`
	GlucoseProfile *GlucoseProfile `json:"glucoseProfile,omitempty"`
	MedicalInfo    *MedicalInfo    `json:"medicalInfo,omitempty"`
}

// UpdateImageInput is the body of PUT /users/profile/image.
type UpdateImageInput struct {
	ImageURL string `json:"imageUrl"`
}

// UserResponse is the raw shape returned by the identity API. Optional
// numeric fields are pointers so that an absent field and a zero value can
// be told apart.
type UserResponse struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Token          string          `json:"token,omitempty"`
	BirthDay       *int            `json:"birthDay,omitempty"`
	BirthMonth     *int            `json:"birthMonth,omitempty"`
	BirthYear      *int            `json:"birthYear,omitempty"`
	Weight         *float64        `json:"weight,omitempty"`
	Height         *float64        `json:"height,omitempty"`
	GlucoseProfile *GlucoseProfile `json:"glucoseProfile,omitempty"`
	GlucoseTarget  *GlucoseTarget  `json:"glucoseTarget,omitempty"`
	MedicalInfo    *MedicalInfo    `json:"medicalInfo,omitempty"`
	ImageURL       string          `json:"imageUrl,omitempty"`
}

// ProfileResponse is returned by the profile endpoints. It shares the
// UserResponse shape; medicalInfo and imageUrl are only filled here.
type ProfileResponse = UserResponse

// MessageResponse is the `{message}` body used for failures and for DELETE /users.
type MessageResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Text returns whichever message field the server filled.
func (m MessageResponse) Text() string {
	if m.Message != "" {
		return m.Message
	}
	return m.Error
}
