package dto

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// optString converts an empty form value to a nil pointer.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optInt(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

func optInt64(n int64) *int64 {
	if n == 0 {
		return nil
	}
	return &n
}

func optFloat(f float64) *float64 {
	if f == 0 {
		return nil
	}
	return &f
}

// parseDate parses an optional yyyy-mm-dd form field.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", s)
	}
	return &t, nil
}
