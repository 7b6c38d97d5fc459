package repository

import (
	"errors"
	"time"
)

// ErrNotFound indicates the requested dataset does not exist.
var ErrNotFound = errors.New("dataset not found")

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
