package http

import (
	"net/http"

	"github.com/MKhiriev/pulse-auth/internal/logger"
	"github.com/MKhiriev/pulse-auth/internal/service"
	"github.com/MKhiriev/pulse-auth/internal/utils"
)

// auth resolves the current user from an "Authorization: Bearer <token>"
// header and stores the public view in the request context under
// [utils.CurrentUserCtxKey].
//
// A missing or malformed header, or a token that fails verification, yields
// 401 "Could not validate credentials". A valid token of a disabled account
// yields 400 "Inactive user".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, service.ErrUnauthenticated)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			writeError(w, r, service.ErrUnauthenticated)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ResolveCurrentUser(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithCurrentUser(ctx, user)))
	})
}
