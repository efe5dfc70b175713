package entity

// Auditorium is a fixed catalog entry for a bookable hall. The catalog is
// reference data seeded at startup; name is the identifier events and
// bookings use.
type Auditorium struct {
	Name       string   `db:"name"`
	Capacity   int      `db:"capacity"`
	Facilities []string `db:"facilities"`
}
