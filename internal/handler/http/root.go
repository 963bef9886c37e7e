package http

import (
	"net/http"

	"github.com/MKhiriev/pulse-auth/internal/utils"
	"github.com/MKhiriev/pulse-auth/models"
)

var rootResponse = models.RootResponse{
	Message: "Pulse Authentication API",
	Status:  "running",
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, rootResponse, http.StatusOK)
}
