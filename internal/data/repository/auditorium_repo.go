package repository

import (
	"context"
	"fmt"

	"campus-events/internal/data/entity"
	"campus-events/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AuditoriumRepository interface {
	FindAll(ctx context.Context) ([]*entity.Auditorium, error)
	FindByName(ctx context.Context, name string) (*entity.Auditorium, error)
	EnsureCatalog(ctx context.Context) error
}

type auditoriumRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewAuditoriumRepository(db database.Querier, log *zap.Logger) AuditoriumRepository {
	return &auditoriumRepository{
		db:  db,
		log: log.With(zap.String("repository", "auditorium")),
	}
}

func (r *auditoriumRepository) FindAll(ctx context.Context) ([]*entity.Auditorium, error) {
	query := `SELECT name, capacity, facilities FROM auditoriums ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find auditoriums", zap.Error(err))
		return nil, fmt.Errorf("find auditoriums: %w", err)
	}
	defer rows.Close()

	var auditoriums []*entity.Auditorium
	for rows.Next() {
		var auditorium entity.Auditorium
		if err := rows.Scan(&auditorium.Name, &auditorium.Capacity, &auditorium.Facilities); err != nil {
			r.log.Error("Failed to scan auditorium row", zap.Error(err))
			return nil, fmt.Errorf("scan auditorium row: %w", err)
		}
		auditoriums = append(auditoriums, &auditorium)
	}

	return auditoriums, nil
}

func (r *auditoriumRepository) FindByName(ctx context.Context, name string) (*entity.Auditorium, error) {
	query := `SELECT name, capacity, facilities FROM auditoriums WHERE name = $1`

	var auditorium entity.Auditorium
	err := r.db.QueryRow(ctx, query, name).Scan(
		&auditorium.Name,
		&auditorium.Capacity,
		&auditorium.Facilities,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find auditorium by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find auditorium %s: %w", name, err)
	}

	return &auditorium, nil
}

// catalog is the fixed list of bookable halls on campus.
var catalog = []entity.Auditorium{
	{Name: "Opera House", Capacity: 500, Facilities: []string{"AC", "Projector", "Sound System", "Stage Lighting"}},
	{Name: "MRD Auditorium", Capacity: 400, Facilities: []string{"AC", "Projector", "Sound System"}},
	{Name: "Auditorium 1A", Capacity: 200, Facilities: []string{"AC", "Projector"}},
	{Name: "Auditorium 1B", Capacity: 200, Facilities: []string{"AC", "Projector"}},
	{Name: "Auditorium 2A", Capacity: 150, Facilities: []string{"AC", "Projector"}},
	{Name: "Auditorium 2B", Capacity: 150, Facilities: []string{"AC", "Projector"}},
	{Name: "F Block Seminar Hall", Capacity: 100, Facilities: []string{"AC", "Projector"}},
	{Name: "Seminar Hall 1", Capacity: 80, Facilities: []string{"AC", "Projector"}},
	{Name: "Seminar Hall 2", Capacity: 80, Facilities: []string{"AC", "Projector"}},
	{Name: "Seminar Hall 3", Capacity: 80, Facilities: []string{"AC", "Projector"}},
	{Name: "Seminar Hall 4", Capacity: 80, Facilities: []string{"AC", "Projector"}},
	{Name: "Seminar Hall 5", Capacity: 80, Facilities: []string{"AC", "Projector"}},
	{Name: "Seminar Hall 6", Capacity: 80, Facilities: []string{"AC", "Projector"}},
	{Name: "13th Floor", Capacity: 120, Facilities: []string{"AC", "Projector", "Whiteboard"}},
	{Name: "PESU 52", Capacity: 300, Facilities: []string{"AC", "Projector", "Sound System", "Stage"}},
}

// EnsureCatalog seeds the auditorium reference data. Idempotent, runs at
// startup.
func (r *auditoriumRepository) EnsureCatalog(ctx context.Context) error {
	query := `
		INSERT INTO auditoriums (name, capacity, facilities)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING
	`

	for _, auditorium := range catalog {
		if _, err := r.db.Exec(ctx, query, auditorium.Name, auditorium.Capacity, auditorium.Facilities); err != nil {
			r.log.Error("Failed to seed auditorium",
				zap.Error(err),
				zap.String("name", auditorium.Name),
			)
			return fmt.Errorf("seed auditorium %s: %w", auditorium.Name, err)
		}
	}

	return nil
}
