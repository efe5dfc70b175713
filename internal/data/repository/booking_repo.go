package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campus-events/internal/data/entity"
	"campus-events/internal/schedule"
	"campus-events/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrSlotBusy is returned when the per-auditorium-per-date lock cannot be
// acquired within the lock timeout.
var ErrSlotBusy = errors.New("booking slot is locked by another request")

// How long a create/update waits for a contended slot before giving up.
const slotLockTimeout = 3 * time.Second

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindBookedByEventID(ctx context.Context, eventID uuid.UUID) (*entity.Booking, error)
	FindBookedByAuditoriumDate(ctx context.Context, auditorium string, date time.Time) ([]*entity.Booking, error)
	UpdateScheduleByEventID(ctx context.Context, eventID uuid.UUID, interval schedule.Interval) error
	UpdateStatusByEventID(ctx context.Context, eventID uuid.UUID, status entity.BookingStatus) error

	// LockSlot takes the exclusive per-(auditorium, date) advisory lock.
	// Transaction-scoped: must run inside WithTx, and releases on commit
	// or rollback.
	LockSlot(ctx context.Context, auditorium string, date time.Time) error
}

type bookingRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewBookingRepository(db database.Querier, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, auditorium, event_id, club_id, club_name, date, start_time, end_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Auditorium,
		booking.EventID,
		booking.ClubID,
		booking.ClubName,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("event_id", booking.EventID.String()),
			zap.String("auditorium", booking.Auditorium),
		)
		return fmt.Errorf("create booking for event %s: %w", booking.EventID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindBookedByEventID(ctx context.Context, eventID uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, auditorium, event_id, club_id, club_name, date, start_time, end_time, status, created_at, updated_at
		FROM bookings
		WHERE event_id = $1 AND status = $2
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, eventID, entity.BookingStatusBooked).Scan(
		&booking.ID,
		&booking.Auditorium,
		&booking.EventID,
		&booking.ClubID,
		&booking.ClubName,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by event ID",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
		)
		return nil, fmt.Errorf("find booking by event ID %s: %w", eventID.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindBookedByAuditoriumDate(ctx context.Context, auditorium string, date time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT id, auditorium, event_id, club_id, club_name, date, start_time, end_time, status, created_at, updated_at
		FROM bookings
		WHERE auditorium = $1 AND date = $2 AND status = $3
		ORDER BY start_time ASC
	`

	rows, err := r.db.Query(ctx, query, auditorium, date, entity.BookingStatusBooked)
	if err != nil {
		r.log.Error("Failed to find bookings for auditorium and date",
			zap.Error(err),
			zap.String("auditorium", auditorium),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find bookings for %s on %s: %w", auditorium, date.Format(time.DateOnly), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.Auditorium,
			&booking.EventID,
			&booking.ClubID,
			&booking.ClubName,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

// UpdateScheduleByEventID moves the booked interval mirroring an event's
// schedule. Only the booked row moves; cancelled history keeps its interval.
func (r *bookingRepository) UpdateScheduleByEventID(ctx context.Context, eventID uuid.UUID, interval schedule.Interval) error {
	query := `
		UPDATE bookings
		SET auditorium = $2, date = $3, start_time = $4, end_time = $5, updated_at = $6
		WHERE event_id = $1 AND status = $7
	`

	tag, err := r.db.Exec(ctx, query,
		eventID,
		interval.Auditorium,
		interval.Date,
		interval.Start,
		interval.End,
		time.Now(),
		entity.BookingStatusBooked,
	)

	if err != nil {
		r.log.Error("Failed to update booking schedule",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
		)
		return fmt.Errorf("update booking schedule for event %s: %w", eventID.String(), err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update booking schedule for event %s: no booked row", eventID.String())
	}

	return nil
}

func (r *bookingRepository) UpdateStatusByEventID(ctx context.Context, eventID uuid.UUID, status entity.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = $3
		WHERE event_id = $1
	`

	_, err := r.db.Exec(ctx, query, eventID, status, time.Now())
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking status for event %s: %w", eventID.String(), err)
	}

	return nil
}

func (r *bookingRepository) LockSlot(ctx context.Context, auditorium string, date time.Time) error {
	key := auditorium + "|" + date.Format(time.DateOnly)

	// Bounded wait so a contended slot surfaces busy instead of queueing
	// indefinitely. SET LOCAL scopes the timeout to the current transaction.
	timeoutSQL := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", slotLockTimeout.Milliseconds())
	if _, err := r.db.Exec(ctx, timeoutSQL); err != nil {
		return fmt.Errorf("set lock timeout: %w", err)
	}

	if _, err := r.db.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "55P03" {
			r.log.Warn("Slot lock timed out",
				zap.String("auditorium", auditorium),
				zap.Time("date", date),
			)
			return ErrSlotBusy
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrSlotBusy
		}
		return fmt.Errorf("lock slot %s: %w", key, err)
	}

	return nil
}
