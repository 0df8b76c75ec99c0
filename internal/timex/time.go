package timex

import (
	"encoding/json"
	"fmt"
	"time"
)

// naiveLayout is an ISO-8601 timestamp without an offset, as emitted for
// timezone-less database columns.
const naiveLayout = "2006-01-02T15:04:05.999999999"

// Time is a time.Time that unmarshals from RFC3339 or from an ISO-8601
// timestamp with no offset. Offset-less values are read as UTC.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", b, err)
	}
	if s == nil || *s == "" {
		t.Time = time.Time{}
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339Nano, *s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.ParseInLocation(naiveLayout, *s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", *s, err)
	}
	t.Time = parsed
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}
