package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/insula/internal/client/client"
	"github.com/dmitrijs2005/insula/internal/client/models"
)

// ---- fake client ----

// fakeClient implements client.Client for store unit tests.
type fakeClient struct {
	mu sync.Mutex

	LoginRet    *models.UserResponse
	LoginErr    error
	RegisterRet *models.UserResponse
	RegisterErr error
	ProfileRet  *models.ProfileResponse
	ProfileErr  error
	UpdateRet   *models.ProfileResponse
	UpdateErr   error
	DeleteRet   string
	DeleteErr   error

	// argument capture
	LastLogin       models.LoginInput
	LastRegister    models.RegisterInput
	LastUpdate      models.UpdateProfileInput
	LastImage       models.UpdateImageInput
	LastTarget      models.GlucoseTarget
	LastToken       string
	ProfileCalls    int
	UpdateCalls     int
	DeleteCalls     int
	OnProfileCalled func()
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Register(_ context.Context, in models.RegisterInput) (*models.UserResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastRegister = in
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(_ context.Context, in models.LoginInput) (*models.UserResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastLogin = in
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) GetProfile(_ context.Context, token string) (*models.ProfileResponse, error) {
	f.mu.Lock()
	f.LastToken = token
	f.ProfileCalls++
	hook := f.OnProfileCalled
	ret, err := f.ProfileRet, f.ProfileErr
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return ret, err
}

func (f *fakeClient) UpdateProfile(_ context.Context, token string, in models.UpdateProfileInput) (*models.ProfileResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastToken = token
	f.LastUpdate = in
	f.UpdateCalls++
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) UpdateProfileImage(_ context.Context, token string, in models.UpdateImageInput) (*models.ProfileResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastToken = token
	f.LastImage = in
	f.UpdateCalls++
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) UpdateGlucoseTarget(_ context.Context, token string, in models.GlucoseTarget) (*models.ProfileResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastToken = token
	f.LastTarget = in
	f.UpdateCalls++
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteUser(_ context.Context, token string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastToken = token
	f.DeleteCalls++
	return f.DeleteRet, f.DeleteErr
}

// ---- fake storage ----

// failingStorage wraps a map and fails writes when SetErr is set.
type failingStorage struct {
	mu     sync.Mutex
	data   map[string][]byte
	GetErr error
	SetErr error
	Sets   int
}

func newFailingStorage() *failingStorage {
	return &failingStorage{data: map[string][]byte{}}
}

func (f *failingStorage) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	return f.data[key], nil
}

func (f *failingStorage) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Sets++
	if f.SetErr != nil {
		return f.SetErr
	}
	f.data[key] = append([]byte(nil), value...)
	return nil
}

func (f *failingStorage) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

var errBoom = errors.New("boom")

const (
	timeout = 2 * time.Second
	tick    = 10 * time.Millisecond
)

// ---- fixtures ----

func intp(v int) *int                                   { return &v }
func floatp(v float64) *float64                         { return &v }
func strp(v string) *string                             { return &v }
func gp(p models.GlucoseProfile) *models.GlucoseProfile { return &p }

// completeResponse returns a profile that passes validation.
func completeResponse(token string) *models.UserResponse {
	return &models.UserResponse{
		ID:             "u1",
		Email:          "a@b.com",
		FirstName:      "Ana",
		LastName:       "Bell",
		Token:          token,
		BirthDay:       intp(3),
		BirthMonth:     intp(4),
		BirthYear:      intp(1990),
		Weight:         floatp(62.5),
		Height:         floatp(170),
		GlucoseProfile: gp(models.GlucoseProfileNormal),
	}
}
