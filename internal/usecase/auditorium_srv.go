package usecase

import (
	"context"
	"fmt"
	"time"

	"campus-events/internal/data/repository"
	"campus-events/internal/dto/response"
	"campus-events/pkg/utils"

	"go.uber.org/zap"
)

type AuditoriumService interface {
	List(ctx context.Context) ([]response.AuditoriumResponse, error)

	// Availability reports the booked windows for one auditorium on one
	// date. A read-only projection; no conflict logic runs here.
	Availability(ctx context.Context, auditoriumName, dateStr string) (*response.AvailabilityReport, error)

	// AvailabilityByDate reports every auditorium's bookings for a date,
	// for the calendar view.
	AvailabilityByDate(ctx context.Context, dateStr string) ([]response.AvailabilityReport, error)
}

type auditoriumService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAuditoriumService(repo *repository.Repository, log *zap.Logger) AuditoriumService {
	return &auditoriumService{
		repo: repo,
		log:  log.With(zap.String("service", "auditorium")),
	}
}

func (s *auditoriumService) List(ctx context.Context) ([]response.AuditoriumResponse, error) {
	auditoriums, err := s.repo.Auditorium.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list auditoriums", zap.Error(err))
		return nil, err
	}

	responses := make([]response.AuditoriumResponse, len(auditoriums))
	for i, auditorium := range auditoriums {
		responses[i] = response.AuditoriumToResponse(auditorium)
	}

	return responses, nil
}

func (s *auditoriumService) Availability(ctx context.Context, auditoriumName, dateStr string) (*response.AvailabilityReport, error) {
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	auditorium, err := s.repo.Auditorium.FindByName(ctx, auditoriumName)
	if err != nil {
		return nil, fmt.Errorf("check auditorium: %w", err)
	}
	if auditorium == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, auditoriumName)
	}

	slots, err := s.bookedSlots(ctx, auditorium.Name, date)
	if err != nil {
		return nil, err
	}

	report := response.NewAvailabilityReport(auditorium, date, slots)
	return &report, nil
}

func (s *auditoriumService) AvailabilityByDate(ctx context.Context, dateStr string) ([]response.AvailabilityReport, error) {
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	auditoriums, err := s.repo.Auditorium.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list auditoriums", zap.Error(err))
		return nil, err
	}

	reports := make([]response.AvailabilityReport, 0, len(auditoriums))
	for _, auditorium := range auditoriums {
		slots, err := s.bookedSlots(ctx, auditorium.Name, date)
		if err != nil {
			return nil, err
		}
		reports = append(reports, response.NewAvailabilityReport(auditorium, date, slots))
	}

	return reports, nil
}

func (s *auditoriumService) bookedSlots(ctx context.Context, auditoriumName string, date time.Time) ([]response.BookedSlot, error) {
	bookings, err := s.repo.Booking.FindBookedByAuditoriumDate(ctx, auditoriumName, date)
	if err != nil {
		s.log.Error("Failed to load bookings for availability",
			zap.Error(err),
			zap.String("auditorium", auditoriumName),
			zap.Time("date", date),
		)
		return nil, err
	}

	slots := make([]response.BookedSlot, 0, len(bookings))
	for _, booking := range bookings {
		eventName := ""
		if event, err := s.repo.Event.FindByID(ctx, booking.EventID); err == nil && event != nil {
			eventName = event.Name
		}

		slots = append(slots, response.BookedSlot{
			EventName: eventName,
			ClubName:  booking.ClubName,
			StartTime: booking.StartTime.String(),
			EndTime:   booking.EndTime.String(),
			TimeRange: fmt.Sprintf("%s - %s", booking.StartTime, booking.EndTime),
		})
	}

	return slots, nil
}
