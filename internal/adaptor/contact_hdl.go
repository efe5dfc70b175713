package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"campus-events/internal/dto/request"
	"campus-events/internal/usecase"
	"campus-events/pkg/utils"

	"go.uber.org/zap"
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With(zap.String("handler", "contact")),
	}
}

// Submit handles POST /api/contact (public)
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.Submit(r.Context(), &req); err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		h.log.Error("Submit contact failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Your query has been submitted successfully", nil)
}

// List handles GET /api/contact (public)
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.List(r.Context())
	if err != nil {
		h.log.Error("List contacts failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", contacts)
}
