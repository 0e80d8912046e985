package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// LocalDateTimeLayout is the zone-less ISO-8601 layout the sync server speaks.
const LocalDateTimeLayout = "2006-01-02T15:04:05.999999999"

// Timestamp is a time.Time that travels over the wire as a local date-time
// without zone information. Values are always normalised to UTC.
//
// Unmarshalling accepts both the zone-less form and RFC 3339, so a server
// that starts emitting offsets keeps working.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t, normalised to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// TimestampPtr is a convenience for optional wire fields.
func TimestampPtr(t time.Time) *Timestamp {
	ts := NewTimestamp(t)
	return &ts
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(LocalDateTimeLayout))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// ParseTimestamp parses either a zone-less local date-time (read as UTC) or
// an RFC 3339 value.
func ParseTimestamp(raw string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return parsed.UTC(), nil
	}

	parsed, err := time.ParseInLocation(LocalDateTimeLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", raw, err)
	}
	return parsed, nil
}

// TimeOrZero unwraps an optional wire timestamp.
func (t *Timestamp) TimeOrZero() time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.Time
}
