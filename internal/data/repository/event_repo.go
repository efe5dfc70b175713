package repository

import (
	"context"
	"fmt"
	"time"

	"campus-events/internal/data/entity"
	"campus-events/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Event, error)
	Count(ctx context.Context) (int64, error)
	FindUpcoming(ctx context.Context, from time.Time) ([]*entity.Event, error)
	FindPast(ctx context.Context, before time.Time) ([]*entity.Event, error)
	FindByCategory(ctx context.Context, category string) ([]*entity.Event, error)
	FindByClubID(ctx context.Context, clubID uuid.UUID) ([]*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewEventRepository(db database.Querier, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

const eventColumns = `id, name, category, date, start_time, end_time, venue, auditorium, poster,
		is_paid, price, description, registration_link, club_id, club_name, club_profile_picture,
		status, created_at, updated_at`

type scannable interface {
	Scan(dest ...any) error
}

func scanEvent(row scannable) (*entity.Event, error) {
	var event entity.Event
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Category,
		&event.Date,
		&event.StartTime,
		&event.EndTime,
		&event.Venue,
		&event.Auditorium,
		&event.Poster,
		&event.IsPaid,
		&event.Price,
		&event.Description,
		&event.RegistrationLink,
		&event.ClubID,
		&event.ClubName,
		&event.ClubProfilePicture,
		&event.Status,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) collect(rows pgx.Rows) ([]*entity.Event, error) {
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			r.log.Error("Failed to scan event row", zap.Error(err))
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Category,
		event.Date,
		event.StartTime,
		event.EndTime,
		event.Venue,
		event.Auditorium,
		event.Poster,
		event.IsPaid,
		event.Price,
		event.Description,
		event.RegistrationLink,
		event.ClubID,
		event.ClubName,
		event.ClubProfilePicture,
		event.Status,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create event",
			zap.Error(err),
			zap.String("name", event.Name),
			zap.String("club_id", event.ClubID.String()),
		)
		return fmt.Errorf("create event %s: %w", event.Name, err)
	}

	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find event by ID",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return nil, fmt.Errorf("find event by ID %s: %w", id.String(), err)
	}

	return event, nil
}

func (r *eventRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date ASC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find events", zap.Error(err))
		return nil, fmt.Errorf("find events: %w", err)
	}

	return r.collect(rows)
}

func (r *eventRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&total); err != nil {
		r.log.Error("Failed to count events", zap.Error(err))
		return 0, fmt.Errorf("count events: %w", err)
	}
	return total, nil
}

func (r *eventRepository) FindUpcoming(ctx context.Context, from time.Time) ([]*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE date >= $1 AND status IN ($2, $3)
		ORDER BY date ASC
	`

	rows, err := r.db.Query(ctx, query, from, entity.EventStatusUpcoming, entity.EventStatusOngoing)
	if err != nil {
		r.log.Error("Failed to find upcoming events", zap.Error(err))
		return nil, fmt.Errorf("find upcoming events: %w", err)
	}

	return r.collect(rows)
}

func (r *eventRepository) FindPast(ctx context.Context, before time.Time) ([]*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE date < $1 OR status = $2
		ORDER BY date DESC
	`

	rows, err := r.db.Query(ctx, query, before, entity.EventStatusCompleted)
	if err != nil {
		r.log.Error("Failed to find past events", zap.Error(err))
		return nil, fmt.Errorf("find past events: %w", err)
	}

	return r.collect(rows)
}

func (r *eventRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE category = $1 ORDER BY date ASC`

	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		r.log.Error("Failed to find events by category",
			zap.Error(err),
			zap.String("category", category),
		)
		return nil, fmt.Errorf("find events by category %s: %w", category, err)
	}

	return r.collect(rows)
}

func (r *eventRepository) FindByClubID(ctx context.Context, clubID uuid.UUID) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE club_id = $1 ORDER BY date DESC`

	rows, err := r.db.Query(ctx, query, clubID)
	if err != nil {
		r.log.Error("Failed to find events by club",
			zap.Error(err),
			zap.String("club_id", clubID.String()),
		)
		return nil, fmt.Errorf("find events by club %s: %w", clubID.String(), err)
	}

	return r.collect(rows)
}

func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET name = $2, category = $3, date = $4, start_time = $5, end_time = $6, venue = $7,
		    auditorium = $8, poster = $9, is_paid = $10, price = $11, description = $12,
		    registration_link = $13, status = $14, updated_at = $15
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Category,
		event.Date,
		event.StartTime,
		event.EndTime,
		event.Venue,
		event.Auditorium,
		event.Poster,
		event.IsPaid,
		event.Price,
		event.Description,
		event.RegistrationLink,
		event.Status,
		time.Now(),
	)

	if err != nil {
		r.log.Error("Failed to update event",
			zap.Error(err),
			zap.String("event_id", event.ID.String()),
		)
		return fmt.Errorf("update event %s: %w", event.ID.String(), err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update event %s: not found", event.ID.String())
	}

	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM events WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete event",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return fmt.Errorf("delete event %s: %w", id.String(), err)
	}

	return nil
}
