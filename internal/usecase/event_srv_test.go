package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-events/internal/data/entity"
	"campus-events/internal/data/repository"
	"campus-events/internal/dto/request"
	"campus-events/internal/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Function-field mocks. Embedding the interface keeps the mock small;
// calling an unset method panics, which is what we want in a test.

type mockEventRepo struct {
	repository.EventRepository
	createFn   func(ctx context.Context, event *entity.Event) error
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	updateFn   func(ctx context.Context, event *entity.Event) error
	deleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (m *mockEventRepo) Create(ctx context.Context, event *entity.Event) error {
	return m.createFn(ctx, event)
}

func (m *mockEventRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockEventRepo) Update(ctx context.Context, event *entity.Event) error {
	return m.updateFn(ctx, event)
}

func (m *mockEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

type mockBookingRepo struct {
	repository.BookingRepository
	createFn         func(ctx context.Context, booking *entity.Booking) error
	findBookedFn     func(ctx context.Context, auditorium string, date time.Time) ([]*entity.Booking, error)
	updateScheduleFn func(ctx context.Context, eventID uuid.UUID, interval schedule.Interval) error
	updateStatusFn   func(ctx context.Context, eventID uuid.UUID, status entity.BookingStatus) error
	lockSlotFn       func(ctx context.Context, auditorium string, date time.Time) error
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	return m.createFn(ctx, booking)
}

func (m *mockBookingRepo) FindBookedByAuditoriumDate(ctx context.Context, auditorium string, date time.Time) ([]*entity.Booking, error) {
	return m.findBookedFn(ctx, auditorium, date)
}

func (m *mockBookingRepo) UpdateScheduleByEventID(ctx context.Context, eventID uuid.UUID, interval schedule.Interval) error {
	return m.updateScheduleFn(ctx, eventID, interval)
}

func (m *mockBookingRepo) UpdateStatusByEventID(ctx context.Context, eventID uuid.UUID, status entity.BookingStatus) error {
	return m.updateStatusFn(ctx, eventID, status)
}

func (m *mockBookingRepo) LockSlot(ctx context.Context, auditorium string, date time.Time) error {
	if m.lockSlotFn != nil {
		return m.lockSlotFn(ctx, auditorium, date)
	}
	return nil
}

type mockAuditoriumRepo struct {
	repository.AuditoriumRepository
	findByNameFn func(ctx context.Context, name string) (*entity.Auditorium, error)
	findAllFn    func(ctx context.Context) ([]*entity.Auditorium, error)
}

func (m *mockAuditoriumRepo) FindByName(ctx context.Context, name string) (*entity.Auditorium, error) {
	return m.findByNameFn(ctx, name)
}

func (m *mockAuditoriumRepo) FindAll(ctx context.Context) ([]*entity.Auditorium, error) {
	return m.findAllFn(ctx)
}

type mockUserRepo struct {
	repository.UserRepository
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.findByIDFn(ctx, id)
}

// catalogOf returns an auditorium mock that knows the given names.
func catalogOf(names ...string) *mockAuditoriumRepo {
	return &mockAuditoriumRepo{
		findByNameFn: func(ctx context.Context, name string) (*entity.Auditorium, error) {
			for _, n := range names {
				if n == name {
					return &entity.Auditorium{Name: n, Capacity: 500}, nil
				}
			}
			return nil, nil
		},
	}
}

func clubRepo(id uuid.UUID, name string) *mockUserRepo {
	return &mockUserRepo{
		findByIDFn: func(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
			if userID == id {
				return &entity.User{
					Base: entity.Base{ID: id},
					Name: name,
					Role: entity.RoleClub,
				}, nil
			}
			return nil, nil
		},
	}
}

func bookedSlot(eventID uuid.UUID, auditorium, clubName, date string, start, end schedule.TimeOfDay) *entity.Booking {
	d, _ := time.Parse(time.DateOnly, date)
	return &entity.Booking{
		Base:       entity.Base{ID: uuid.New()},
		Auditorium: auditorium,
		EventID:    eventID,
		ClubID:     uuid.New(),
		ClubName:   clubName,
		Date:       d,
		StartTime:  start,
		EndTime:    end,
		Status:     entity.BookingStatusBooked,
	}
}

func validCreateRequest() *request.CreateEventRequest {
	return &request.CreateEventRequest{
		Name:        "Spring Hackathon",
		Category:    "technical",
		Date:        "2026-03-15",
		StartTime:   "10:00",
		EndTime:     "12:00",
		Venue:       "Main Campus",
		Auditorium:  "Opera House",
		Description: "24 hour hackathon",
	}
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()
	clubID := uuid.New()

	// Opera House already booked 09:00-11:00 by another club.
	existing := []*entity.Booking{
		bookedSlot(uuid.New(), "Opera House", "Drama Club", "2026-03-15", 540, 660),
	}

	newService := func(booking *mockBookingRepo, event *mockEventRepo) EventService {
		repo := &repository.Repository{
			User:       clubRepo(clubID, "Robotics Club"),
			Event:      event,
			Booking:    booking,
			Auditorium: catalogOf("Opera House", "Auditorium 1A"),
		}
		return NewEventService(repo, zap.NewNop())
	}

	t.Run("rejects overlapping slot with conflict details", func(t *testing.T) {
		booking := &mockBookingRepo{
			findBookedFn: func(ctx context.Context, auditorium string, date time.Time) ([]*entity.Booking, error) {
				return existing, nil
			},
		}
		svc := newService(booking, &mockEventRepo{})

		req := validCreateRequest() // 10:00-12:00 vs booked 09:00-11:00
		_, err := svc.CreateEvent(ctx, clubID.String(), req)

		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "Drama Club", conflict.Conflicting.ClubName)
		assert.Equal(t, "09:00", conflict.Conflicting.StartTime.String())
		assert.Equal(t, "11:00", conflict.Conflicting.EndTime.String())
	})

	t.Run("accepts slot starting when previous ends", func(t *testing.T) {
		var createdEvent *entity.Event
		var createdBooking *entity.Booking

		booking := &mockBookingRepo{
			findBookedFn: func(ctx context.Context, auditorium string, date time.Time) ([]*entity.Booking, error) {
				return existing, nil
			},
			createFn: func(ctx context.Context, b *entity.Booking) error {
				createdBooking = b
				return nil
			},
		}
		event := &mockEventRepo{
			createFn: func(ctx context.Context, e *entity.Event) error {
				createdEvent = e
				return nil
			},
		}
		svc := newService(booking, event)

		req := validCreateRequest()
		req.StartTime = "11:00"
		req.EndTime = "12:00"

		resp, err := svc.CreateEvent(ctx, clubID.String(), req)
		require.NoError(t, err)
		require.NotNil(t, resp)

		// Booking mirrors the event's schedule exactly.
		require.NotNil(t, createdEvent)
		require.NotNil(t, createdBooking)
		assert.Equal(t, createdEvent.ID, createdBooking.EventID)
		assert.Equal(t, createdEvent.Auditorium, createdBooking.Auditorium)
		assert.Equal(t, createdEvent.StartTime, createdBooking.StartTime)
		assert.Equal(t, createdEvent.EndTime, createdBooking.EndTime)
		assert.True(t, createdEvent.Date.Equal(createdBooking.Date))
		assert.Equal(t, entity.BookingStatusBooked, createdBooking.Status)
		assert.Equal(t, "Robotics Club", createdEvent.ClubName)
	})

	t.Run("12-hour input conflicts like its 24-hour twin", func(t *testing.T) {
		booking := &mockBookingRepo{
			findBookedFn: func(ctx context.Context, auditorium string, date time.Time) ([]*entity.Booking, error) {
				return existing, nil
			},
		}
		svc := newService(booking, &mockEventRepo{})

		req := validCreateRequest()
		req.StartTime = "10:00 AM"
		req.EndTime = "12:00 PM"

		_, err := svc.CreateEvent(ctx, clubID.String(), req)

		var conflict *ConflictError
		assert.ErrorAs(t, err, &conflict)
	})

	t.Run("rejects unknown auditorium", func(t *testing.T) {
		svc := newService(&mockBookingRepo{}, &mockEventRepo{})

		req := validCreateRequest()
		req.Auditorium = "Nonexistent Hall"

		_, err := svc.CreateEvent(ctx, clubID.String(), req)
		assert.ErrorIs(t, err, ErrUnknownResource)
	})

	t.Run("rejects end before start", func(t *testing.T) {
		svc := newService(&mockBookingRepo{}, &mockEventRepo{})

		req := validCreateRequest()
		req.StartTime = "12:00"
		req.EndTime = "10:00"

		_, err := svc.CreateEvent(ctx, clubID.String(), req)
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})

	t.Run("rejects unparsable time", func(t *testing.T) {
		svc := newService(&mockBookingRepo{}, &mockEventRepo{})

		req := validCreateRequest()
		req.StartTime = "25:00"

		_, err := svc.CreateEvent(ctx, clubID.String(), req)
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})

	t.Run("maps slot lock timeout to busy", func(t *testing.T) {
		booking := &mockBookingRepo{
			lockSlotFn: func(ctx context.Context, auditorium string, date time.Time) error {
				return repository.ErrSlotBusy
			},
		}
		svc := newService(booking, &mockEventRepo{})

		_, err := svc.CreateEvent(ctx, clubID.String(), validCreateRequest())
		assert.ErrorIs(t, err, ErrBusy)
	})

	t.Run("failed booking insert aborts the whole create", func(t *testing.T) {
		insertErr := errors.New("insert failed")
		booking := &mockBookingRepo{
			findBookedFn: func(ctx context.Context, auditorium string, date time.Time) ([]*entity.Booking, error) {
				return nil, nil
			},
			createFn: func(ctx context.Context, b *entity.Booking) error {
				return insertErr
			},
		}
		event := &mockEventRepo{
			createFn: func(ctx context.Context, e *entity.Event) error { return nil },
		}
		svc := newService(booking, event)

		_, err := svc.CreateEvent(ctx, clubID.String(), validCreateRequest())
		assert.ErrorIs(t, err, insertErr)
	})
}

func TestUpdateEvent(t *testing.T) {
	ctx := context.Background()
	clubID := uuid.New()
	eventID := uuid.New()
	date, _ := time.Parse(time.DateOnly, "2026-03-15")

	ownEvent := func() *entity.Event {
		return &entity.Event{
			Base:        entity.Base{ID: eventID},
			Name:        "Spring Hackathon",
			Category:    "technical",
			Date:        date,
			StartTime:   600, // 10:00
			EndTime:     720, // 12:00
			Venue:       "Main Campus",
			Auditorium:  "Opera House",
			Description: "24 hour hackathon",
			ClubID:      clubID,
			ClubName:    "Robotics Club",
			Status:      entity.EventStatusUpcoming,
		}
	}

	newService := func(booking *mockBookingRepo, event *mockEventRepo) EventService {
		repo := &repository.Repository{
			User:       clubRepo(clubID, "Robotics Club"),
			Event:      event,
			Booking:    booking,
			Auditorium: catalogOf("Opera House", "Auditorium 1A"),
		}
		return NewEventService(repo, zap.NewNop())
	}

	strPtr := func(s string) *string { return &s }

	t.Run("schedule change excludes own booking from the check", func(t *testing.T) {
		ownBooking := bookedSlot(eventID, "Opera House", "Robotics Club", "2026-03-15", 600, 720)
		var mirrored *schedule.Interval

		booking := &mockBookingRepo{
			findBookedFn: func(ctx context.Context, auditorium string, date time.Time) ([]*entity.Booking, error) {
				return []*entity.Booking{ownBooking}, nil
			},
			updateScheduleFn: func(ctx context.Context, id uuid.UUID, interval schedule.Interval) error {
				require.Equal(t, eventID, id)
				mirrored = &interval
				return nil
			},
		}
		event := &mockEventRepo{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
				return ownEvent(), nil
			},
			updateFn: func(ctx context.Context, e *entity.Event) error { return nil },
		}
		svc := newService(booking, event)

		// Shift to 11:00-13:00; overlaps the old slot, which belongs to
		// this event and must not count against it.
		req := &request.UpdateEventRequest{
			StartTime: strPtr("11:00"),
			EndTime:   strPtr("01:00 PM"),
		}

		resp, err := svc.UpdateEvent(ctx, clubID.String(), eventID.String(), req)
		require.NoError(t, err)
		require.NotNil(t, resp)

		require.NotNil(t, mirrored)
		assert.Equal(t, schedule.TimeOfDay(660), mirrored.Start)
		assert.Equal(t, schedule.TimeOfDay(780), mirrored.End)
		assert.Equal(t, "Opera House", mirrored.Auditorium)
	})

	t.Run("schedule change still conflicts with other bookings", func(t *testing.T) {
		others := []*entity.Booking{
			bookedSlot(eventID, "Opera House", "Robotics Club", "2026-03-15", 600, 720),
			bookedSlot(uuid.New(), "Opera House", "Drama Club", "2026-03-15", 780, 900), // 13:00-15:00
		}

		booking := &mockBookingRepo{
			findBookedFn: func(ctx context.Context, auditorium string, date time.Time) ([]*entity.Booking, error) {
				return others, nil
			},
		}
		event := &mockEventRepo{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
				return ownEvent(), nil
			},
		}
		svc := newService(booking, event)

		req := &request.UpdateEventRequest{
			StartTime: strPtr("14:00"),
			EndTime:   strPtr("16:00"),
		}

		_, err := svc.UpdateEvent(ctx, clubID.String(), eventID.String(), req)

		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "Drama Club", conflict.Conflicting.ClubName)
	})

	t.Run("non-schedule patch skips the conflict check", func(t *testing.T) {
		var updated *entity.Event

		booking := &mockBookingRepo{
			lockSlotFn: func(ctx context.Context, auditorium string, date time.Time) error {
				t.Fatal("lock must not be taken for a non-schedule update")
				return nil
			},
		}
		event := &mockEventRepo{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
				return ownEvent(), nil
			},
			updateFn: func(ctx context.Context, e *entity.Event) error {
				updated = e
				return nil
			},
		}
		svc := newService(booking, event)

		req := &request.UpdateEventRequest{
			Name:        strPtr("Autumn Hackathon"),
			Description: strPtr("48 hour hackathon"),
		}

		resp, err := svc.UpdateEvent(ctx, clubID.String(), eventID.String(), req)
		require.NoError(t, err)
		require.NotNil(t, resp)

		require.NotNil(t, updated)
		assert.Equal(t, "Autumn Hackathon", updated.Name)
		// Schedule untouched
		assert.Equal(t, schedule.TimeOfDay(600), updated.StartTime)
		assert.Equal(t, schedule.TimeOfDay(720), updated.EndTime)
	})

	t.Run("cannot update another club's event", func(t *testing.T) {
		event := &mockEventRepo{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
				e := ownEvent()
				e.ClubID = uuid.New()
				return e, nil
			},
		}
		svc := newService(&mockBookingRepo{}, event)

		req := &request.UpdateEventRequest{Name: strPtr("Hijacked")}

		_, err := svc.UpdateEvent(ctx, clubID.String(), eventID.String(), req)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown event", func(t *testing.T) {
		event := &mockEventRepo{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
				return nil, nil
			},
		}
		svc := newService(&mockBookingRepo{}, event)

		req := &request.UpdateEventRequest{Name: strPtr("Ghost Event")}

		_, err := svc.UpdateEvent(ctx, clubID.String(), uuid.NewString(), req)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()
	clubID := uuid.New()
	eventID := uuid.New()
	date, _ := time.Parse(time.DateOnly, "2026-03-15")

	stored := &entity.Event{
		Base:       entity.Base{ID: eventID},
		Name:       "Spring Hackathon",
		Date:       date,
		StartTime:  600,
		EndTime:    720,
		Auditorium: "Opera House",
		ClubID:     clubID,
	}

	t.Run("cancels the booking and removes the event", func(t *testing.T) {
		var cancelledStatus entity.BookingStatus
		var deletedID uuid.UUID

		booking := &mockBookingRepo{
			updateStatusFn: func(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
				require.Equal(t, eventID, id)
				cancelledStatus = status
				return nil
			},
		}
		event := &mockEventRepo{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
				return stored, nil
			},
			deleteFn: func(ctx context.Context, id uuid.UUID) error {
				deletedID = id
				return nil
			},
		}
		repo := &repository.Repository{Event: event, Booking: booking}
		svc := NewEventService(repo, zap.NewNop())

		err := svc.DeleteEvent(ctx, clubID.String(), eventID.String())
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusCancelled, cancelledStatus)
		assert.Equal(t, eventID, deletedID)
	})

	t.Run("cannot delete another club's event", func(t *testing.T) {
		event := &mockEventRepo{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
				return stored, nil
			},
		}
		repo := &repository.Repository{Event: event, Booking: &mockBookingRepo{}}
		svc := NewEventService(repo, zap.NewNop())

		err := svc.DeleteEvent(ctx, uuid.NewString(), eventID.String())
		assert.ErrorIs(t, err, ErrForbidden)
	})
}
