package entity

type ContactStatus string

const (
	ContactStatusPending  ContactStatus = "pending"
	ContactStatusResolved ContactStatus = "resolved"
)

type Contact struct {
	BaseSimple
	Name       string        `db:"name"`
	SRN        string        `db:"srn"`
	Branch     string        `db:"branch"`
	Department string        `db:"department"`
	Query      string        `db:"query"`
	Status     ContactStatus `db:"status"`
}
