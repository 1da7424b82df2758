package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// Common layouts accepted from API clients
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// Parse accepts RFC 3339 timestamps, "2006-01-02 15:04:05" and plain dates.
// Values without a zone are read as UTC.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{time.RFC3339Nano, DateTimeLayout, DateLayout} {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
