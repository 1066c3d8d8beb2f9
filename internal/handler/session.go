package handler

import (
	"net/http"

	"github.com/vaultpass/passmeter/internal/model"
	"github.com/vaultpass/passmeter/internal/service"
)

// SessionHandler handles HTTP requests for anonymous sessions.
type SessionHandler struct {
	service *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{service: svc}
}

// HandleStart handles POST /api/v1/session requests.
func (h *SessionHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Start()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleTips handles GET /api/v1/tips requests.
func HandleTips(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.TipsResponse{Tips: service.Tips()})
}
