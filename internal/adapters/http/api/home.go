package api

import (
	"net/http"

	"github.com/okian/sampleapp/internal/domain/types"
)

const welcomeMessage = "Welcome to Sample DevOps App"

type homeResponse struct {
	Message     string `json:"message"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// HomeHandler handles root requests.
type HomeHandler struct {
	info types.AppInfo
}

// NewHomeHandler creates a new home handler.
func NewHomeHandler(info types.AppInfo) *HomeHandler {
	return &HomeHandler{info: info}
}

// HandleHome handles GET / requests.
func (h *HomeHandler) HandleHome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, homeResponse{
		Message:     welcomeMessage,
		Version:     h.info.Version,
		Environment: h.info.Environment,
	})
}
