package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passmeter/internal/middleware"
	"github.com/vaultpass/passmeter/internal/service"
)

// HistoryHandler handles HTTP requests for session history.
type HistoryHandler struct {
	service *service.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(svc *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: svc}
}

// HandleList handles GET /api/v1/history/{mode} requests.
func (h *HistoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context(), middleware.SessionIDFromContext(r.Context()), chi.URLParam(r, "mode"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionRequired):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		case isValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleClear handles DELETE /api/v1/history requests.
func (h *HistoryHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	err := h.service.Clear(r.Context(), middleware.SessionIDFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, service.ErrSessionRequired) {
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
