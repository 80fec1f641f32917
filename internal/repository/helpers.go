package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		// rows written by hand or by older builds use plain RFC3339
		t, err = time.Parse(time.RFC3339, s)
	}
	return t, err
}

// parseNullableTime returns nil for NULL, empty or unparseable values.
func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil
	}
	return &t
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

// encodeAnswers stores an answer map as a JSON object. nil encodes as {}.
func encodeAnswers[M ~map[int]V, V any](m M) (string, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encoding answers: %w", err)
	}
	return string(b), nil
}

func decodeAnswers[M ~map[int]V, V any](s string) (M, error) {
	m := M{}
	if s == "" {
		return m, nil
	}
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, fmt.Errorf("decoding answers: %w", err)
	}
	return m, nil
}
