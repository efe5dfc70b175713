package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseDate parses a calendar date ("2006-01-02", or an RFC3339 timestamp
// whose time part is discarded) and normalizes it to midnight UTC so that
// dates compare by day regardless of how the client serialized them.
func ParseDate(value string) (time.Time, error) {
	raw := strings.TrimSpace(value)

	if idx := strings.IndexByte(raw, 'T'); idx > 0 {
		raw = raw[:idx]
	}

	parsed, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}

	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
}
