package client

import (
	"context"

	"github.com/dmitrijs2005/insula/internal/client/models"
)

// Client is the transport contract for the identity/profile API.
// Authenticated calls take the bearer token explicitly; the client itself
// holds no session state.
type Client interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.UserResponse, error)
	Login(ctx context.Context, in models.LoginInput) (*models.UserResponse, error)
	GetProfile(ctx context.Context, token string) (*models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, token string, in models.UpdateProfileInput) (*models.ProfileResponse, error)
	UpdateProfileImage(ctx context.Context, token string, in models.UpdateImageInput) (*models.ProfileResponse, error)
	UpdateGlucoseTarget(ctx context.Context, token string, in models.GlucoseTarget) (*models.ProfileResponse, error)
	DeleteUser(ctx context.Context, token string) (string, error)
}
