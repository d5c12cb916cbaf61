package devserver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/insula/internal/client/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTarget      = errors.New("minTarget must be positive and below maxTarget")
)

// ValidationError is a rejected request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Service holds the account logic behind the HTTP handlers.
type Service struct {
	repo       Repository
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
	now        func() time.Time
}

func NewService(repo Repository, secret []byte, tokenTTL time.Duration) *Service {
	return &Service{
		repo:       repo,
		secret:     secret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// Register validates in, stores a new user and returns its profile with a
// fresh token.
func (s *Service) Register(ctx context.Context, in models.RegisterInput) (*models.UserResponse, error) {
	if err := validateRegister(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	email := strings.TrimSpace(in.Email)
	u := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
		Profile: models.User{
			Email:          email,
			FirstName:      in.FirstName,
			LastName:       in.LastName,
			BirthDay:       in.BirthDay,
			BirthMonth:     in.BirthMonth,
			BirthYear:      in.BirthYear,
			Weight:         in.Weight,
			Height:         in.Height,
			GlucoseProfile: in.GlucoseProfile,
			MedicalInfo:    &models.MedicalInfo{DiabetesType: models.DiabetesTypeType1},
		},
	}
	u.Profile.ID = u.ID

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return s.withToken(u)
}

// Login checks the password and returns the profile with a fresh token.
func (s *Service) Login(ctx context.Context, in models.LoginInput) (*models.UserResponse, error) {
	u, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Spend the same time as a wrong password.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.withToken(u)
}

var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("insula-dummy-password"), bcrypt.MinCost)

// Authenticate resolves a bearer token to a user id.
func (s *Service) Authenticate(token string) (string, error) {
	return GetUserIDFromToken(token, s.secret)
}

func (s *Service) Profile(ctx context.Context, userID string) (*models.ProfileResponse, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponse(u), nil
}

// UpdateProfile applies the non-nil fields of in.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in models.UpdateProfileInput) (*models.ProfileResponse, error) {
	if in.GlucoseProfile != nil && !in.GlucoseProfile.Valid() {
		return nil, &ValidationError{Field: "glucoseProfile", Reason: "must be hypo, normal or hyper"}
	}
	return s.mutate(ctx, userID, func(p *models.User) {
		setIf(&p.FirstName, in.FirstName)
		setIf(&p.LastName, in.LastName)
		setIf(&p.BirthDay, in.BirthDay)
		setIf(&p.BirthMonth, in.BirthMonth)
		setIf(&p.BirthYear, in.BirthYear)
		setIf(&p.Weight, in.Weight)
		setIf(&p.Height, in.Height)
		setIf(&p.GlucoseProfile, in.GlucoseProfile)
		if in.MedicalInfo != nil {
			m := *in.MedicalInfo
			if m.DiabetesType == "" {
				m.DiabetesType = models.DiabetesTypeType1
			}
			p.MedicalInfo = &m
		}
	})
}

func (s *Service) UpdateImage(ctx context.Context, userID string, in models.UpdateImageInput) (*models.ProfileResponse, error) {
	if strings.TrimSpace(in.ImageURL) == "" {
		return nil, &ValidationError{Field: "imageUrl", Reason: "is required"}
	}
	return s.mutate(ctx, userID, func(p *models.User) {
		p.ImageURL = in.ImageURL
	})
}

func (s *Service) UpdateGlucoseTarget(ctx context.Context, userID string, in models.GlucoseTarget) (*models.ProfileResponse, error) {
	if !in.Valid() {
		return nil, ErrInvalidTarget
	}
	return s.mutate(ctx, userID, func(p *models.User) {
		t := in
		p.GlucoseTarget = &t
	})
}

func (s *Service) Delete(ctx context.Context, userID string) error {
	return s.repo.Delete(ctx, userID)
}

func (s *Service) mutate(ctx context.Context, userID string, fn func(p *models.User)) (*models.ProfileResponse, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	fn(&u.Profile)
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return toResponse(u), nil
}

func (s *Service) withToken(u *User) (*models.UserResponse, error) {
	token, err := GenerateToken(u.ID, s.secret, s.now(), s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	resp := toResponse(u)
	resp.Token = token
	return resp, nil
}

func toResponse(u *User) *models.UserResponse {
	p := u.Profile.Clone()
	return &models.UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		BirthDay:       &p.BirthDay,
		BirthMonth:     &p.BirthMonth,
		BirthYear:      &p.BirthYear,
		Weight:         &p.Weight,
		Height:         &p.Height,
		GlucoseProfile: &p.GlucoseProfile,
		GlucoseTarget:  p.GlucoseTarget,
		MedicalInfo:    p.MedicalInfo,
		ImageURL:       p.ImageURL,
	}
}

func validateRegister(in models.RegisterInput) error {
	switch {
	case strings.TrimSpace(in.Email) == "" || !strings.Contains(in.Email, "@"):
		return &ValidationError{Field: "email", Reason: "must be a valid address"}
	case len(in.Password) < 1:
		return &ValidationError{Field: "password", Reason: "is required"}
	case strings.TrimSpace(in.FirstName) == "":
		return &ValidationError{Field: "firstName", Reason: "is required"}
	case strings.TrimSpace(in.LastName) == "":
		return &ValidationError{Field: "lastName", Reason: "is required"}
	case in.BirthDay < 1 || in.BirthDay > 31:
		return &ValidationError{Field: "birthDay", Reason: "must be between 1 and 31"}
	case in.BirthMonth < 1 || in.BirthMonth > 12:
		return &ValidationError{Field: "birthMonth", Reason: "must be between 1 and 12"}
	case in.BirthYear < 1900:
		return &ValidationError{Field: "birthYear", Reason: "is out of range"}
	case in.Weight < 0 || in.Height < 0:
		return &ValidationError{Field: "weight/height", Reason: "must not be negative"}
	case !in.GlucoseProfile.Valid():
		return &ValidationError{Field: "glucoseProfile", Reason: "must be hypo, normal or hyper"}
	}
	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
