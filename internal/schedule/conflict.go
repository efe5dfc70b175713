package schedule

import "time"

// Interval is a booked (or candidate) time span for one auditorium on one
// calendar date. Start and End are half-open: [Start, End).
type Interval struct {
	Auditorium string
	Date       time.Time
	Start      TimeOfDay
	End        TimeOfDay
}

// Valid reports whether the interval has in-range endpoints and positive
// length. Zero-length and inverted intervals never reach the conflict check.
func (iv Interval) Valid() bool {
	return iv.Start.Valid() && iv.End.Valid() && iv.Start < iv.End
}

// Overlaps reports whether a and b collide. Intervals on different
// auditoriums or different dates never overlap. Times are half-open, so
// back-to-back intervals (a ends 14:00, b starts 14:00) do not conflict.
func Overlaps(a, b Interval) bool {
	if a.Auditorium != b.Auditorium || !sameDate(a.Date, b.Date) {
		return false
	}
	return a.Start < b.End && b.Start < a.End
}

// FindConflict returns the index of the first interval in existing that
// overlaps candidate, or -1 when the candidate slot is free. Existing
// intervals are checked in input order; excluding the caller's own booking
// during an update is the caller's responsibility.
func FindConflict(candidate Interval, existing []Interval) int {
	for i, iv := range existing {
		if Overlaps(candidate, iv) {
			return i
		}
	}
	return -1
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
