package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// It carries no date and no timezone.
type TimeOfDay int

const minutesPerDay = 24 * 60

// ParseTimeOfDay parses both 24-hour ("14:00") and 12-hour ("02:00 PM")
// clock strings into the same TimeOfDay value. It is the only time parser
// in the codebase; every create and update path must go through it so that
// equivalent wall-clock inputs always normalize identically.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, fmt.Errorf("parse time: empty string")
	}

	clock := strings.ToUpper(raw)
	meridiem := ""
	for _, suffix := range []string{"AM", "PM"} {
		if strings.HasSuffix(clock, suffix) {
			meridiem = suffix
			clock = strings.TrimSpace(strings.TrimSuffix(clock, suffix))
			break
		}
	}

	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("parse time %q: expected HH:MM", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("parse time %q: invalid hour: %w", s, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("parse time %q: invalid minute: %w", s, err)
	}

	if minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("parse time %q: minute out of range", s)
	}

	switch meridiem {
	case "":
		if hours < 0 || hours > 23 {
			return 0, fmt.Errorf("parse time %q: hour out of range", s)
		}
	default:
		// 12-hour clock: hours run 1-12, with 12 AM meaning midnight.
		if hours < 1 || hours > 12 {
			return 0, fmt.Errorf("parse time %q: hour out of range for %s", s, meridiem)
		}
		if meridiem == "PM" && hours != 12 {
			hours += 12
		}
		if meridiem == "AM" && hours == 12 {
			hours = 0
		}
	}

	return TimeOfDay(hours*60 + minutes), nil
}

// Valid reports whether t lies within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < minutesPerDay
}

// String renders t on the 24-hour clock, e.g. "14:00".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Clock12 renders t on the 12-hour clock, e.g. "02:00 PM".
func (t TimeOfDay) Clock12() string {
	hours := int(t) / 60
	minutes := int(t) % 60

	meridiem := "AM"
	if hours >= 12 {
		meridiem = "PM"
	}

	hours = hours % 12
	if hours == 0 {
		hours = 12
	}

	return fmt.Sprintf("%02d:%02d %s", hours, minutes, meridiem)
}
