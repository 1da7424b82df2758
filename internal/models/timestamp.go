package models

import (
	"encoding/json"
	"time"

	"mskn-backend/internal/timeutil"
)

// Timestamp is a request-side date that accepts plain dates as well as RFC 3339.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := timeutil.Parse(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// TimeOrNil unwraps an optional request timestamp.
func TimeOrNil(t *Timestamp) *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}
