package session

import (
	"context"

	"github.com/dmitrijs2005/insula/internal/client/client"
	"github.com/dmitrijs2005/insula/internal/client/models"
)

// UpdateProfile applies a partial profile update.
func (s *Store) UpdateProfile(ctx context.Context, in models.UpdateProfileInput) error {
	return s.mutateProfile(ctx, client.OpUpdateProfile, func(ctx context.Context, token string) (*models.ProfileResponse, error) {
		return s.api.UpdateProfile(ctx, token, in)
	})
}

// UpdateProfileImage points the profile at an already hosted image.
func (s *Store) UpdateProfileImage(ctx context.Context, imageURL string) error {
	return s.mutateProfile(ctx, client.OpUpdateProfileImage, func(ctx context.Context, token string) (*models.ProfileResponse, error) {
		return s.api.UpdateProfileImage(ctx, token, models.UpdateImageInput{ImageURL: imageURL})
	})
}

// UpdateGlucoseTarget stores a new target range. The range is checked
// locally before any request is made.
func (s *Store) UpdateGlucoseTarget(ctx context.Context, target models.GlucoseTarget) error {
	if !target.Valid() {
		return ErrInvalidTarget
	}
	return s.mutateProfile(ctx, client.OpUpdateGlucoseTarget, func(ctx context.Context, token string) (*models.ProfileResponse, error) {
		return s.api.UpdateGlucoseTarget(ctx, token, target)
	})
}

// mutateProfile runs one authenticated profile call and replaces the user
// with the returned profile. Failures set Error but keep the session.
func (s *Store) mutateProfile(ctx context.Context, op string, call func(ctx context.Context, token string) (*models.ProfileResponse, error)) error {
	token := s.token()
	if token == "" {
		return ErrNotAuthenticated
	}

	s.beginAttempt(ctx)
	resp, err := call(ctx, token)
	if err == nil {
		v := Validate(resp)
		if v.Valid {
			s.commit(ctx, func(st *State) {
				st.User = v.User
				st.IsLoading = false
			})
			s.log.Info(ctx, "profile updated", "op", op, "user_id", v.User.ID)
			return nil
		}
		err = &InvalidProfileError{Op: op, Missing: v.Missing}
	}

	err = classify(op, err)
	s.commit(ctx, func(st *State) {
		st.IsLoading = false
		st.Error = ErrorMessage(err)
	})
	s.log.Warn(ctx, "profile update failed", "op", op, "error", err)
	return err
}

// DeleteAccount deletes the remote account and, on success, logs out.
func (s *Store) DeleteAccount(ctx context.Context) error {
	token := s.token()
	if token == "" {
		return ErrNotAuthenticated
	}

	s.beginAttempt(ctx)
	msg, err := s.api.DeleteUser(ctx, token)
	if err != nil {
		err = classify(client.OpDeleteUser, err)
		s.commit(ctx, func(st *State) {
			st.IsLoading = false
			st.Error = ErrorMessage(err)
		})
		s.log.Warn(ctx, "account deletion failed", "error", err)
		return err
	}

	s.log.Info(ctx, "account deleted", "message", msg)
	s.Logout(ctx)
	return nil
}
