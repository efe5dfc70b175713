package adaptor

import (
	"errors"
	"net/http"

	"campus-events/internal/usecase"
	"campus-events/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AuditoriumHandler struct {
	service usecase.AuditoriumService
	log     *zap.Logger
}

func NewAuditoriumHandler(service usecase.AuditoriumService, log *zap.Logger) *AuditoriumHandler {
	return &AuditoriumHandler{
		service: service,
		log:     log.With(zap.String("handler", "auditorium")),
	}
}

// List handles GET /api/auditoriums (public)
func (h *AuditoriumHandler) List(w http.ResponseWriter, r *http.Request) {
	auditoriums, err := h.service.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list auditoriums")
		return
	}

	utils.ResponseSuccess(w, "success", auditoriums)
}

// AvailabilityByDate handles GET /api/auditoriums/availability/{date} (public)
func (h *AuditoriumHandler) AvailabilityByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if date == "" {
		utils.ResponseBadRequest(w, "Date is required", nil)
		return
	}

	reports, err := h.service.AvailabilityByDate(r.Context(), date)
	if err != nil {
		h.handleServiceError(w, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "success", reports)
}

// Availability handles GET /api/auditoriums/{name}/availability?date= (public)
func (h *AuditoriumHandler) Availability(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		utils.ResponseBadRequest(w, "Auditorium name is required", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "Date query parameter is required", nil)
		return
	}

	report, err := h.service.Availability(r.Context(), name, date)
	if err != nil {
		h.handleServiceError(w, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}

func (h *AuditoriumHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrUnknownResource):
		h.log.Warn(operation+" failed - unknown auditorium",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidSchedule):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
