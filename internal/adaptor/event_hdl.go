package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"campus-events/internal/dto/request"
	"campus-events/internal/dto/response"
	"campus-events/internal/usecase"
	"campus-events/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EventHandler struct {
	service usecase.EventService
	log     *zap.Logger
}

func NewEventHandler(service usecase.EventService, log *zap.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		log:     log.With(zap.String("handler", "event")),
	}
}

// CreateEvent handles POST /api/events (club only)
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	clubID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	event, err := h.service.CreateEvent(r.Context(), clubID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create event")
		return
	}

	utils.ResponseCreated(w, "Event created successfully", event)
}

// UpdateEvent handles PUT /api/events/{id} (club only, own events)
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	clubID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	var req request.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	event, err := h.service.UpdateEvent(r.Context(), clubID.String(), eventID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update event")
		return
	}

	utils.ResponseSuccess(w, "Event updated successfully", event)
}

// DeleteEvent handles DELETE /api/events/{id} (club only, own events)
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	clubID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	if err := h.service.DeleteEvent(r.Context(), clubID.String(), eventID); err != nil {
		h.handleServiceError(w, err, "delete event")
		return
	}

	utils.ResponseSuccess(w, "Event deleted successfully", nil)
}

// ListMyEvents handles GET /api/events/my-events (club only)
func (h *EventHandler) ListMyEvents(w http.ResponseWriter, r *http.Request) {
	clubID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	events, err := h.service.ListMyEvents(r.Context(), clubID.String())
	if err != nil {
		h.handleServiceError(w, err, "list my events")
		return
	}

	utils.ResponseSuccess(w, "success", events)
}

// ListEvents handles GET /api/events (public)
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	events, err := h.service.ListEvents(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list events")
		return
	}

	utils.ResponseSuccess(w, "success", events)
}

// ListUpcoming handles GET /api/events/upcoming (public)
func (h *EventHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListUpcoming(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list upcoming events")
		return
	}

	utils.ResponseSuccess(w, "success", events)
}

// ListPast handles GET /api/events/past (public)
func (h *EventHandler) ListPast(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListPast(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list past events")
		return
	}

	utils.ResponseSuccess(w, "success", events)
}

// ListByCategory handles GET /api/events/category/{category} (public)
func (h *EventHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if category == "" {
		utils.ResponseBadRequest(w, "Category is required", nil)
		return
	}

	events, err := h.service.ListByCategory(r.Context(), category)
	if err != nil {
		h.handleServiceError(w, err, "list events by category")
		return
	}

	utils.ResponseSuccess(w, "success", events)
}

// GetEvent handles GET /api/events/{id} (public)
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	event, err := h.service.GetEvent(r.Context(), eventID)
	if err != nil {
		h.handleServiceError(w, err, "get event")
		return
	}

	utils.ResponseSuccess(w, "success", event)
}

func (h *EventHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var conflict *usecase.ConflictError

	switch {
	case errors.As(err, &conflict):
		h.log.Warn(operation+" rejected - slot conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error(), response.BookingToConflict(conflict.Conflicting))

	case errors.Is(err, usecase.ErrBusy):
		h.log.Warn(operation+" rejected - slot busy",
			zap.String("operation", operation))
		utils.ResponseUnavailable(w, err.Error())

	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		h.log.Warn(operation+" failed - forbidden",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidSchedule), errors.Is(err, usecase.ErrUnknownResource):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		h.log.Warn(operation+" validation failed",
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
