package repository

import (
	"context"
	"errors"
	"fmt"

	"campus-events/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db  database.PgxIface
	log *zap.Logger

	User       UserRepository
	Event      EventRepository
	Booking    BookingRepository
	Auditorium AuditoriumRepository
	Contact    ContactRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	r := newWithQuerier(db, log)
	r.db = db
	return r
}

func newWithQuerier(q database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		log:        log,
		User:       NewUserRepository(q, log),
		Event:      NewEventRepository(q, log),
		Booking:    NewBookingRepository(q, log),
		Auditorium: NewAuditoriumRepository(q, log),
		Contact:    NewContactRepository(q, log),
	}
}

// WithTx runs fn against a Repository bound to a single database
// transaction, committing when fn returns nil and rolling back otherwise.
// A Repository without a pool behind it (already tx-bound, or assembled by
// hand in tests) runs fn directly.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txRepo := newWithQuerier(tx, r.log)

	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.log.Error("Failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
