package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campus-events/internal/data/entity"
	"campus-events/internal/data/repository"
	"campus-events/internal/dto/request"
	"campus-events/internal/dto/response"
	"campus-events/internal/schedule"
	"campus-events/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	// Club operations
	CreateEvent(ctx context.Context, clubID string, req *request.CreateEventRequest) (*response.EventResponse, error)
	UpdateEvent(ctx context.Context, clubID, eventID string, req *request.UpdateEventRequest) (*response.EventResponse, error)
	DeleteEvent(ctx context.Context, clubID, eventID string) error
	ListMyEvents(ctx context.Context, clubID string) ([]response.EventResponse, error)

	// Public reads
	ListEvents(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.EventResponse], error)
	ListUpcoming(ctx context.Context) ([]response.EventResponse, error)
	ListPast(ctx context.Context) ([]response.EventResponse, error)
	ListByCategory(ctx context.Context, category string) ([]response.EventResponse, error)
	GetEvent(ctx context.Context, eventID string) (*response.EventResponse, error)
}

type eventService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewEventService(repo *repository.Repository, log *zap.Logger) EventService {
	return &eventService{
		repo: repo,
		log:  log.With(zap.String("service", "event")),
	}
}

// normalizeSchedule parses date, start and end through the shared parsers
// and enforces start < end. Every schedule that reaches the conflict check
// passes through here, so "14:00" and "02:00 PM" always land on the same
// minute value regardless of call site.
func normalizeSchedule(auditorium, dateStr, startStr, endStr string) (schedule.Interval, error) {
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return schedule.Interval{}, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	start, err := schedule.ParseTimeOfDay(startStr)
	if err != nil {
		return schedule.Interval{}, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	end, err := schedule.ParseTimeOfDay(endStr)
	if err != nil {
		return schedule.Interval{}, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	candidate := schedule.Interval{
		Auditorium: auditorium,
		Date:       date,
		Start:      start,
		End:        end,
	}

	if !candidate.Valid() {
		return schedule.Interval{}, fmt.Errorf("%w: end time must be after start time", ErrInvalidSchedule)
	}

	return candidate, nil
}

// checkSlot acquires the slot lock, loads the booked intervals for the
// candidate's auditorium and date, and returns a ConflictError on overlap.
// excludeEventID skips the caller's own booking during an update.
func checkSlot(ctx context.Context, tx *repository.Repository, candidate schedule.Interval, excludeEventID uuid.UUID) error {
	if err := tx.Booking.LockSlot(ctx, candidate.Auditorium, candidate.Date); err != nil {
		return err
	}

	existing, err := tx.Booking.FindBookedByAuditoriumDate(ctx, candidate.Auditorium, candidate.Date)
	if err != nil {
		return fmt.Errorf("load existing bookings: %w", err)
	}

	bookings := make([]*entity.Booking, 0, len(existing))
	intervals := make([]schedule.Interval, 0, len(existing))
	for _, booking := range existing {
		if excludeEventID != uuid.Nil && booking.EventID == excludeEventID {
			continue
		}
		bookings = append(bookings, booking)
		intervals = append(intervals, booking.Interval())
	}

	if idx := schedule.FindConflict(candidate, intervals); idx >= 0 {
		return &ConflictError{Conflicting: bookings[idx]}
	}

	return nil
}

func (s *eventService) CreateEvent(ctx context.Context, clubID string, req *request.CreateEventRequest) (*response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create event validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	clubUUID, err := uuid.Parse(clubID)
	if err != nil {
		return nil, fmt.Errorf("invalid club ID format %s: %w", clubID, err)
	}

	candidate, err := normalizeSchedule(req.Auditorium, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	auditorium, err := s.repo.Auditorium.FindByName(ctx, req.Auditorium)
	if err != nil {
		return nil, fmt.Errorf("check auditorium: %w", err)
	}
	if auditorium == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, req.Auditorium)
	}

	club, err := s.repo.User.FindByID(ctx, clubUUID)
	if err != nil {
		return nil, fmt.Errorf("load club: %w", err)
	}
	if club == nil {
		return nil, fmt.Errorf("%w: club %s", ErrNotFound, clubID)
	}

	now := time.Now()
	event := &entity.Event{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:               req.Name,
		Category:           req.Category,
		Date:               candidate.Date,
		StartTime:          candidate.Start,
		EndTime:            candidate.End,
		Venue:              req.Venue,
		Auditorium:         req.Auditorium,
		Poster:             req.Poster,
		IsPaid:             req.IsPaid,
		Price:              req.Price,
		Description:        req.Description,
		RegistrationLink:   req.RegistrationLink,
		ClubID:             clubUUID,
		ClubName:           club.Name,
		ClubProfilePicture: club.ProfilePicture,
		Status:             entity.EventStatusUpcoming,
	}

	// The slot lock, the conflict read and both inserts share one
	// transaction: either the event and its booking both exist afterwards,
	// or neither does.
	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if err := checkSlot(ctx, tx, candidate, uuid.Nil); err != nil {
			return err
		}

		if err := tx.Event.Create(ctx, event); err != nil {
			return fmt.Errorf("create event: %w", err)
		}

		booking := &entity.Booking{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Auditorium: candidate.Auditorium,
			EventID:    event.ID,
			ClubID:     clubUUID,
			ClubName:   club.Name,
			Date:       candidate.Date,
			StartTime:  candidate.Start,
			EndTime:    candidate.End,
			Status:     entity.BookingStatusBooked,
		}

		if err := tx.Booking.Create(ctx, booking); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, repository.ErrSlotBusy) {
			return nil, ErrBusy
		}
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			s.log.Info("Event creation rejected: slot conflict",
				zap.String("auditorium", candidate.Auditorium),
				zap.Time("date", candidate.Date),
				zap.String("held_by", conflict.Conflicting.ClubName),
			)
			return nil, err
		}
		s.log.Error("Failed to create event with booking",
			zap.Error(err),
			zap.String("club_id", clubID),
		)
		return nil, err
	}

	s.log.Info("Event created",
		zap.String("event_id", event.ID.String()),
		zap.String("auditorium", event.Auditorium),
		zap.String("club", club.Name),
	)

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, clubID, eventID string, req *request.UpdateEventRequest) (*response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update event validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	clubUUID, err := uuid.Parse(clubID)
	if err != nil {
		return nil, fmt.Errorf("invalid club ID format %s: %w", clubID, err)
	}

	eventUUID, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID format %s: %w", eventID, err)
	}

	event, err := s.repo.Event.FindByID(ctx, eventUUID)
	if err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("%w: event %s", ErrNotFound, eventID)
	}
	if event.ClubID != clubUUID {
		return nil, fmt.Errorf("%w: you can only update your own events", ErrForbidden)
	}

	applyEventPatch(event, req)

	if !req.TouchesSchedule() {
		if err := s.repo.Event.Update(ctx, event); err != nil {
			s.log.Error("Failed to update event", zap.Error(err), zap.String("event_id", eventID))
			return nil, err
		}

		resp := response.EventToResponse(event)
		return &resp, nil
	}

	// Effective schedule: patched fields over current ones, re-parsed
	// through the shared normalizer.
	dateStr := event.Date.Format(time.DateOnly)
	if req.Date != nil {
		dateStr = *req.Date
	}
	startStr := event.StartTime.String()
	if req.StartTime != nil {
		startStr = *req.StartTime
	}
	endStr := event.EndTime.String()
	if req.EndTime != nil {
		endStr = *req.EndTime
	}
	auditoriumName := event.Auditorium
	if req.Auditorium != nil {
		auditoriumName = *req.Auditorium
	}

	candidate, err := normalizeSchedule(auditoriumName, dateStr, startStr, endStr)
	if err != nil {
		return nil, err
	}

	auditorium, err := s.repo.Auditorium.FindByName(ctx, auditoriumName)
	if err != nil {
		return nil, fmt.Errorf("check auditorium: %w", err)
	}
	if auditorium == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, auditoriumName)
	}

	event.Auditorium = candidate.Auditorium
	event.Date = candidate.Date
	event.StartTime = candidate.Start
	event.EndTime = candidate.End

	// Event fields and the mirrored booking interval move in one
	// transaction; the booking never lags the event's schedule.
	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if err := checkSlot(ctx, tx, candidate, event.ID); err != nil {
			return err
		}

		if err := tx.Event.Update(ctx, event); err != nil {
			return fmt.Errorf("update event: %w", err)
		}

		if err := tx.Booking.UpdateScheduleByEventID(ctx, event.ID, candidate); err != nil {
			return fmt.Errorf("update booking: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, repository.ErrSlotBusy) {
			return nil, ErrBusy
		}
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			return nil, err
		}
		s.log.Error("Failed to update event schedule",
			zap.Error(err),
			zap.String("event_id", eventID),
		)
		return nil, err
	}

	s.log.Info("Event updated",
		zap.String("event_id", eventID),
		zap.String("auditorium", event.Auditorium),
	)

	resp := response.EventToResponse(event)
	return &resp, nil
}

// applyEventPatch copies the non-schedule patch fields onto the event.
// Schedule fields (auditorium, date, times) go through the conflict check
// path instead.
func applyEventPatch(event *entity.Event, req *request.UpdateEventRequest) {
	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.Poster != nil {
		event.Poster = *req.Poster
	}
	if req.IsPaid != nil {
		event.IsPaid = *req.IsPaid
	}
	if req.Price != nil {
		event.Price = *req.Price
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.RegistrationLink != nil {
		event.RegistrationLink = *req.RegistrationLink
	}
	if req.Status != nil {
		event.Status = entity.EventStatus(*req.Status)
	}
}

func (s *eventService) DeleteEvent(ctx context.Context, clubID, eventID string) error {
	clubUUID, err := uuid.Parse(clubID)
	if err != nil {
		return fmt.Errorf("invalid club ID format %s: %w", clubID, err)
	}

	eventUUID, err := uuid.Parse(eventID)
	if err != nil {
		return fmt.Errorf("invalid event ID format %s: %w", eventID, err)
	}

	event, err := s.repo.Event.FindByID(ctx, eventUUID)
	if err != nil {
		return fmt.Errorf("load event: %w", err)
	}
	if event == nil {
		return fmt.Errorf("%w: event %s", ErrNotFound, eventID)
	}
	if event.ClubID != clubUUID {
		return fmt.Errorf("%w: you can only delete your own events", ErrForbidden)
	}

	// Soft-cancel keeps the booking row for audit; only booked rows feed
	// the conflict check, so the slot frees up as soon as this commits.
	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if err := tx.Booking.UpdateStatusByEventID(ctx, eventUUID, entity.BookingStatusCancelled); err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}

		if err := tx.Event.Delete(ctx, eventUUID); err != nil {
			return fmt.Errorf("delete event: %w", err)
		}

		return nil
	})

	if err != nil {
		s.log.Error("Failed to delete event",
			zap.Error(err),
			zap.String("event_id", eventID),
		)
		return err
	}

	s.log.Info("Event deleted",
		zap.String("event_id", eventID),
		zap.String("auditorium", event.Auditorium),
	)

	return nil
}

func (s *eventService) ListMyEvents(ctx context.Context, clubID string) ([]response.EventResponse, error) {
	clubUUID, err := uuid.Parse(clubID)
	if err != nil {
		return nil, fmt.Errorf("invalid club ID format %s: %w", clubID, err)
	}

	events, err := s.repo.Event.FindByClubID(ctx, clubUUID)
	if err != nil {
		s.log.Error("Failed to list club events", zap.Error(err), zap.String("club_id", clubID))
		return nil, err
	}

	return response.EventsToResponse(events), nil
}

func (s *eventService) ListEvents(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.EventResponse], error) {
	events, err := s.repo.Event.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list events", zap.Error(err))
		return nil, err
	}

	total, err := s.repo.Event.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count events", zap.Error(err))
		return nil, err
	}

	return response.NewPaginatedResponse(response.EventsToResponse(events), req.Page, req.PerPage, total), nil
}

func (s *eventService) ListUpcoming(ctx context.Context) ([]response.EventResponse, error) {
	events, err := s.repo.Event.FindUpcoming(ctx, todayUTC())
	if err != nil {
		s.log.Error("Failed to list upcoming events", zap.Error(err))
		return nil, err
	}

	return response.EventsToResponse(events), nil
}

func (s *eventService) ListPast(ctx context.Context) ([]response.EventResponse, error) {
	events, err := s.repo.Event.FindPast(ctx, todayUTC())
	if err != nil {
		s.log.Error("Failed to list past events", zap.Error(err))
		return nil, err
	}

	return response.EventsToResponse(events), nil
}

func (s *eventService) ListByCategory(ctx context.Context, category string) ([]response.EventResponse, error) {
	events, err := s.repo.Event.FindByCategory(ctx, category)
	if err != nil {
		s.log.Error("Failed to list events by category",
			zap.Error(err),
			zap.String("category", category),
		)
		return nil, err
	}

	return response.EventsToResponse(events), nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (*response.EventResponse, error) {
	eventUUID, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID format %s: %w", eventID, err)
	}

	event, err := s.repo.Event.FindByID(ctx, eventUUID)
	if err != nil {
		s.log.Error("Failed to get event", zap.Error(err), zap.String("event_id", eventID))
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("%w: event %s", ErrNotFound, eventID)
	}

	resp := response.EventToResponse(event)
	return &resp, nil
}

func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
