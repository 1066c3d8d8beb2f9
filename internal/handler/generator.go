package handler

import (
	"net/http"

	"github.com/vaultpass/passmeter/internal/middleware"
	"github.com/vaultpass/passmeter/internal/model"
	"github.com/vaultpass/passmeter/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(r.Context(), middleware.SessionIDFromContext(r.Context()), req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGenerateThemed handles POST /api/v1/generate/themed requests.
func (h *GeneratorHandler) HandleGenerateThemed(w http.ResponseWriter, r *http.Request) {
	var req model.ThemedRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp := h.service.GenerateThemed(r.Context(), middleware.SessionIDFromContext(r.Context()), req)
	writeJSON(w, http.StatusOK, resp)
}
