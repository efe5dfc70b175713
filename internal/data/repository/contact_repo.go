package repository

import (
	"context"
	"fmt"

	"campus-events/internal/data/entity"
	"campus-events/pkg/database"

	"go.uber.org/zap"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	FindAll(ctx context.Context) ([]*entity.Contact, error)
}

type contactRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewContactRepository(db database.Querier, log *zap.Logger) ContactRepository {
	return &contactRepository{
		db:  db,
		log: log.With(zap.String("repository", "contact")),
	}
}

func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, name, srn, branch, department, query, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		contact.ID,
		contact.Name,
		contact.SRN,
		contact.Branch,
		contact.Department,
		contact.Query,
		contact.Status,
		contact.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create contact",
			zap.Error(err),
			zap.String("srn", contact.SRN),
		)
		return fmt.Errorf("create contact from %s: %w", contact.SRN, err)
	}

	return nil
}

func (r *contactRepository) FindAll(ctx context.Context) ([]*entity.Contact, error) {
	query := `
		SELECT id, name, srn, branch, department, query, status, created_at
		FROM contacts
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find contacts", zap.Error(err))
		return nil, fmt.Errorf("find contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*entity.Contact
	for rows.Next() {
		var contact entity.Contact
		err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.SRN,
			&contact.Branch,
			&contact.Department,
			&contact.Query,
			&contact.Status,
			&contact.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan contact row", zap.Error(err))
			return nil, fmt.Errorf("scan contact row: %w", err)
		}
		contacts = append(contacts, &contact)
	}

	return contacts, nil
}
