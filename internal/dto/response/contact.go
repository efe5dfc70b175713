package response

import (
	"time"

	"campus-events/internal/data/entity"
)

type ContactResponse struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	SRN        string               `json:"srn"`
	Branch     string               `json:"branch"`
	Department string               `json:"department"`
	Query      string               `json:"query"`
	Status     entity.ContactStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
}

func ContactToResponse(contact *entity.Contact) ContactResponse {
	return ContactResponse{
		ID:         contact.ID.String(),
		Name:       contact.Name,
		SRN:        contact.SRN,
		Branch:     contact.Branch,
		Department: contact.Department,
		Query:      contact.Query,
		Status:     contact.Status,
		CreatedAt:  contact.CreatedAt,
	}
}
