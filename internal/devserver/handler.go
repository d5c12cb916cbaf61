package devserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/insula/internal/client/models"
	"github.com/dmitrijs2005/insula/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const maxBodyBytes = 1 << 20

// Options tune the router.
type Options struct {
	// AuthRPS and AuthBurst limit login/register per client IP. Zero disables.
	AuthRPS   float64
	AuthBurst int
}

type handler struct {
	svc *Service
	log logging.Logger
}

// NewRouter mounts the API under /api.
func NewRouter(svc *Service, log logging.Logger, opts Options) http.Handler {
	h := &handler{svc: svc, log: log}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusOK, "ok")
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if opts.AuthRPS > 0 {
				r.Use(RateLimit(opts.AuthRPS, opts.AuthBurst))
			}
			r.Post("/register", h.register)
			r.Post("/login", h.login)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAuth(svc))
			r.Get("/profile", h.profile)
			r.Put("/profile", h.updateProfile)
			r.Put("/profile/image", h.updateImage)
			r.Put("/glucose-target", h.updateGlucoseTarget)
			r.Delete("/", h.deleteUser)
		})
	})

	return r
}

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	var in models.RegisterInput
	if !decode(w, r, &in) {
		return
	}
	resp, err := h.svc.Register(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var in models.LoginInput
	if !decode(w, r, &in) {
		return
	}
	resp, err := h.svc.Login(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) profile(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	resp, err := h.svc.Profile(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateProfileInput
	if !decode(w, r, &in) {
		return
	}
	userID, _ := userIDFromContext(r.Context())
	resp, err := h.svc.UpdateProfile(r.Context(), userID, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) updateImage(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateImageInput
	if !decode(w, r, &in) {
		return
	}
	userID, _ := userIDFromContext(r.Context())
	resp, err := h.svc.UpdateImage(r.Context(), userID, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) updateGlucoseTarget(w http.ResponseWriter, r *http.Request) {
	var in models.GlucoseTarget
	if !decode(w, r, &in) {
		return
	}
	userID, _ := userIDFromContext(r.Context())
	resp, err := h.svc.UpdateGlucoseTarget(r.Context(), userID, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	if err := h.svc.Delete(r.Context(), userID); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "User deleted successfully")
}

// fail maps service errors onto status codes and {message} bodies.
func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		writeMessage(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, ErrInvalidTarget):
		writeMessage(w, http.StatusBadRequest, "Invalid glucose target: "+err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrUserExists):
		writeMessage(w, http.StatusConflict, "User already exists")
	case errors.Is(err, ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
	default:
		h.log.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.MessageResponse{Message: msg})
}
