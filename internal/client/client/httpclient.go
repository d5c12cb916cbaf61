package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/insula/internal/client/models"
	"github.com/dmitrijs2005/insula/internal/common"
	"github.com/dmitrijs2005/insula/internal/logging"
	"github.com/google/uuid"
)

// Operation names, used in errors and logs.
const (
	OpRegister            = "register"
	OpLogin               = "login"
	OpGetProfile          = "getProfile"
	OpUpdateProfile       = "updateProfile"
	OpUpdateProfileImage  = "updateProfileImage"
	OpUpdateGlucoseTarget = "updateGlucoseTarget"
	OpDeleteUser          = "deleteUser"
)

// fallbackMessages are shown when the server rejects a call without a message.
var fallbackMessages = map[string]string{
	OpRegister:            "Registration failed",
	OpLogin:               "Login failed",
	OpGetProfile:          "Failed to fetch user profile",
	OpUpdateProfile:       "Failed to update user profile",
	OpUpdateProfileImage:  "Failed to update profile image",
	OpUpdateGlucoseTarget: "Failed to update glucose target",
	OpDeleteUser:          "Failed to delete account",
}

// informationalBody lists operations whose success body may be empty.
var informationalBody = map[string]bool{
	OpDeleteUser: true,
}

const maxResponseBody = 1 << 20

// HTTPClient implements Client over the REST/JSON identity API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient returns a client for the API rooted at baseURL
// (e.g. "http://127.0.0.1:3000/api"). A zero timeout means no client-side limit.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *HTTPClient) Register(ctx context.Context, in models.RegisterInput) (*models.UserResponse, error) {
	var out models.UserResponse
	if err := c.do(ctx, OpRegister, http.MethodPost, "/users/register", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Login(ctx context.Context, in models.LoginInput) (*models.UserResponse, error) {
	var out models.UserResponse
	if err := c.do(ctx, OpLogin, http.MethodPost, "/users/login", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context, token string) (*models.ProfileResponse, error) {
	var out models.ProfileResponse
	if err := c.do(ctx, OpGetProfile, http.MethodGet, "/users/profile", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, in models.UpdateProfileInput) (*models.ProfileResponse, error) {
	var out models.ProfileResponse
	if err := c.do(ctx, OpUpdateProfile, http.MethodPut, "/users/profile", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProfileImage(ctx context.Context, token string, in models.UpdateImageInput) (*models.ProfileResponse, error) {
	var out models.ProfileResponse
	if err := c.do(ctx, OpUpdateProfileImage, http.MethodPut, "/users/profile/image", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateGlucoseTarget(ctx context.Context, token string, in models.GlucoseTarget) (*models.ProfileResponse, error) {
	var out models.ProfileResponse
	if err := c.do(ctx, OpUpdateGlucoseTarget, http.MethodPut, "/users/glucose-target", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, token string) (string, error) {
	var out models.MessageResponse
	if err := c.do(ctx, OpDeleteUser, http.MethodDelete, "/users", token, nil, &out); err != nil {
		return "", err
	}
	return out.Text(), nil
}

// do performs one JSON exchange. body may be nil; out must be a pointer.
func (c *HTTPClient) do(ctx context.Context, op, method, path, token string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log := c.log.With("op", op, "request_id", requestID)
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		log.Warn(ctx, "reading response failed", "status", resp.StatusCode, "error", err)
		return &TransportError{Op: op, Err: err}
	}

	log.Info(ctx, "request done", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(op, resp.StatusCode, data)
	}

	if informationalBody[op] && len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrMalformedResponse, err)
	}
	return nil
}

// mapError builds an AuthError from a failure body, falling back to the
// operation's default message when the body carries none.
func (c *HTTPClient) mapError(op string, status int, data []byte) error {
	var msg models.MessageResponse
	_ = json.Unmarshal(data, &msg)

	text := strings.TrimSpace(msg.Text())
	if text == "" {
		text = fallbackMessages[op]
	}
	return &AuthError{Op: op, Status: status, Message: text}
}
