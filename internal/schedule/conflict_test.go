package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func slot(auditorium, date string, start, end TimeOfDay) Interval {
	return Interval{
		Auditorium: auditorium,
		Date:       day(date),
		Start:      start,
		End:        end,
	}
}

func TestOverlaps(t *testing.T) {
	const d = "2026-03-15"

	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{
			name: "partial overlap",
			a:    slot("Opera House", d, 540, 660), // 09:00-11:00
			b:    slot("Opera House", d, 600, 720), // 10:00-12:00
			want: true,
		},
		{
			name: "containment",
			a:    slot("Opera House", d, 540, 720),
			b:    slot("Opera House", d, 600, 660),
			want: true,
		},
		{
			name: "identical",
			a:    slot("Opera House", d, 540, 660),
			b:    slot("Opera House", d, 540, 660),
			want: true,
		},
		{
			name: "back to back does not conflict",
			a:    slot("Opera House", d, 540, 660), // ends 11:00
			b:    slot("Opera House", d, 660, 780), // starts 11:00
			want: false,
		},
		{
			name: "disjoint",
			a:    slot("Opera House", d, 540, 600),
			b:    slot("Opera House", d, 720, 780),
			want: false,
		},
		{
			name: "same time different auditorium",
			a:    slot("Opera House", d, 540, 660),
			b:    slot("Auditorium 1A", d, 540, 660),
			want: false,
		},
		{
			name: "same time different date",
			a:    slot("Opera House", d, 540, 660),
			b:    slot("Opera House", "2026-03-16", 540, 660),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			// Overlap is symmetric
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

// Dates at different clock times still count as the same calendar day.
func TestOverlapsIgnoresTimeComponentOfDate(t *testing.T) {
	a := slot("Opera House", "2026-03-15", 540, 660)
	b := a
	b.Date = b.Date.Add(5 * time.Hour)

	assert.True(t, Overlaps(a, b))
}

func TestFindConflict(t *testing.T) {
	const d = "2026-03-15"

	existing := []Interval{
		slot("Opera House", d, 540, 660),  // 09:00-11:00
		slot("Opera House", d, 780, 900),  // 13:00-15:00
		slot("Opera House", d, 840, 1020), // 14:00-17:00, overlaps previous on purpose
	}

	t.Run("free slot", func(t *testing.T) {
		candidate := slot("Opera House", d, 660, 720) // 11:00-12:00
		assert.Equal(t, -1, FindConflict(candidate, existing))
	})

	t.Run("finds overlap", func(t *testing.T) {
		candidate := slot("Opera House", d, 600, 720) // 10:00-12:00
		assert.Equal(t, 0, FindConflict(candidate, existing))
	})

	t.Run("returns first match in input order", func(t *testing.T) {
		candidate := slot("Opera House", d, 850, 860)
		assert.Equal(t, 1, FindConflict(candidate, existing))
	})

	t.Run("empty existing", func(t *testing.T) {
		candidate := slot("Opera House", d, 540, 660)
		assert.Equal(t, -1, FindConflict(candidate, []Interval{}))
	})
}

func TestIntervalValid(t *testing.T) {
	const d = "2026-03-15"

	assert.True(t, slot("Opera House", d, 540, 660).Valid())
	assert.False(t, slot("Opera House", d, 660, 660).Valid(), "zero length")
	assert.False(t, slot("Opera House", d, 660, 540).Valid(), "inverted")
	assert.False(t, slot("Opera House", d, -10, 60).Valid())
	assert.False(t, slot("Opera House", d, 1400, 1500).Valid())
}
