package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/pulse-auth/internal/logger"
	"github.com/MKhiriev/pulse-auth/internal/service"
	"github.com/MKhiriev/pulse-auth/internal/utils"
)

// errorResponse is the status and client-facing detail for one error class.
// An empty detail means the error's own message is shown.
type errorResponse struct {
	status int
	detail string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrUsernameTaken:      {status: http.StatusBadRequest, detail: "Username already registered"},
	service.ErrEmailTaken:         {status: http.StatusBadRequest, detail: "Email already registered"},
	service.ErrInvalidCredentials: {status: http.StatusUnauthorized, detail: "Incorrect username or password"},
	service.ErrUnauthenticated:    {status: http.StatusUnauthorized, detail: "Could not validate credentials"},
	service.ErrInactiveUser:       {status: http.StatusBadRequest, detail: "Inactive user"},

	service.ErrInvalidDataProvided: {status: http.StatusUnprocessableEntity},
	ErrInvalidJSON:                 {status: http.StatusUnprocessableEntity},
	ErrInvalidForm:                 {status: http.StatusUnprocessableEntity},

	errNotFound:         {status: http.StatusNotFound, detail: "Not Found"},
	errMethodNotAllowed: {status: http.StatusMethodNotAllowed, detail: "Method Not Allowed"},
}

var internalServerError = errorResponse{
	status: http.StatusInternalServerError,
	detail: http.StatusText(http.StatusInternalServerError),
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			if resp.detail == "" {
				resp.detail = err.Error()
			}
			return resp
		}
	}
	return internalServerError
}

// writeError maps err to its status and writes {"detail": ...}.
// Unauthorized responses carry "WWW-Authenticate: Bearer".
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	resp := responseFromError(err)

	if resp.status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	if resp.status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	utils.WriteError(w, resp.detail, resp.status)
}
