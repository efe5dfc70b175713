package usecase

import (
	"context"
	"testing"
	"time"

	"campus-events/internal/data/entity"
	"campus-events/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuditoriumAvailability(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	auditorium := &mockAuditoriumRepo{
		findByNameFn: func(ctx context.Context, name string) (*entity.Auditorium, error) {
			if name == "Opera House" {
				return &entity.Auditorium{Name: "Opera House", Capacity: 500}, nil
			}
			return nil, nil
		},
	}

	booking := &mockBookingRepo{
		findBookedFn: func(ctx context.Context, name string, date time.Time) ([]*entity.Booking, error) {
			return []*entity.Booking{
				bookedSlot(eventID, "Opera House", "Drama Club", "2026-03-15", 540, 660),
			}, nil
		},
	}

	event := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
			return &entity.Event{Base: entity.Base{ID: id}, Name: "Annual Play"}, nil
		},
	}

	repo := &repository.Repository{Auditorium: auditorium, Booking: booking, Event: event}
	svc := NewAuditoriumService(repo, zap.NewNop())

	t.Run("reports booked windows", func(t *testing.T) {
		report, err := svc.Availability(ctx, "Opera House", "2026-03-15")
		require.NoError(t, err)

		assert.Equal(t, "Opera House", report.Auditorium)
		assert.False(t, report.IsAvailable)
		require.Len(t, report.Bookings, 1)
		assert.Equal(t, "Annual Play", report.Bookings[0].EventName)
		assert.Equal(t, "Drama Club", report.Bookings[0].ClubName)
		assert.Equal(t, "09:00", report.Bookings[0].StartTime)
		assert.Equal(t, "11:00", report.Bookings[0].EndTime)
	})

	t.Run("free day", func(t *testing.T) {
		freeBooking := &mockBookingRepo{
			findBookedFn: func(ctx context.Context, name string, date time.Time) ([]*entity.Booking, error) {
				return nil, nil
			},
		}
		freeRepo := &repository.Repository{Auditorium: auditorium, Booking: freeBooking, Event: event}
		freeSvc := NewAuditoriumService(freeRepo, zap.NewNop())

		report, err := freeSvc.Availability(ctx, "Opera House", "2026-03-15")
		require.NoError(t, err)

		assert.True(t, report.IsAvailable)
		assert.Empty(t, report.Bookings)
		assert.NotNil(t, report.Bookings, "slots marshal as [] not null")
	})

	t.Run("unknown auditorium", func(t *testing.T) {
		_, err := svc.Availability(ctx, "Nonexistent Hall", "2026-03-15")
		assert.ErrorIs(t, err, ErrUnknownResource)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := svc.Availability(ctx, "Opera House", "15/03/2026")
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})
}

func TestAuditoriumAvailabilityByDate(t *testing.T) {
	ctx := context.Background()

	auditorium := &mockAuditoriumRepo{
		findAllFn: func(ctx context.Context) ([]*entity.Auditorium, error) {
			return []*entity.Auditorium{
				{Name: "Opera House", Capacity: 500},
				{Name: "Auditorium 1A", Capacity: 200},
			}, nil
		},
	}

	booking := &mockBookingRepo{
		findBookedFn: func(ctx context.Context, name string, date time.Time) ([]*entity.Booking, error) {
			if name == "Opera House" {
				return []*entity.Booking{
					bookedSlot(uuid.New(), "Opera House", "Drama Club", "2026-03-15", 540, 660),
				}, nil
			}
			return nil, nil
		},
	}

	event := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
			return &entity.Event{Base: entity.Base{ID: id}, Name: "Annual Play"}, nil
		},
	}

	repo := &repository.Repository{Auditorium: auditorium, Booking: booking, Event: event}
	svc := NewAuditoriumService(repo, zap.NewNop())

	reports, err := svc.AvailabilityByDate(ctx, "2026-03-15")
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.False(t, reports[0].IsAvailable)
	assert.True(t, reports[1].IsAvailable)
}
