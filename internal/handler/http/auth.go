package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/pulse-auth/internal/logger"
	"github.com/MKhiriev/pulse-auth/internal/utils"
	"github.com/MKhiriev/pulse-auth/models"
)

// maxBodyBytes caps signup and login bodies.
const maxBodyBytes = 1 << 20

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	resp, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", resp.Username).Msg("user successfully signed up")
	utils.WriteJSON(w, resp, http.StatusOK)
}

// login accepts the OAuth2 password form: username, password and an optional
// grant_type.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidForm, err))
		return
	}

	req := models.LoginRequest{
		Username:  r.PostForm.Get("username"),
		Password:  r.PostForm.Get("password"),
		GrantType: r.PostForm.Get("grant_type"),
	}

	resp, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", req.Username).Msg("user successfully logged in")
	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetCurrentUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoCurrentUser)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
