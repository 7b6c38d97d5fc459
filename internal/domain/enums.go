package domain

import (
	"fmt"
	"strings"
)

// Postpone marks whether an agenda item is deferred to a future meeting.
type Postpone string

const (
	PostponeYes Postpone = "Yes"
	PostponeNo  Postpone = "No"
)

// Valid reports whether p is one of the two accepted values.
func (p Postpone) Valid() bool {
	return p == PostponeYes || p == PostponeNo
}

// Toggle returns the opposite flag.
func (p Postpone) Toggle() Postpone {
	if p == PostponeYes {
		return PostponeNo
	}
	return PostponeYes
}

// ParsePostpone accepts yes/no in any case (and y/n, true/false).
func ParsePostpone(s string) (Postpone, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true":
		return PostponeYes, nil
	case "no", "n", "false":
		return PostponeNo, nil
	}
	return "", fmt.Errorf("invalid postpone value %q (want Yes or No)", s)
}

// Status is the traffic-light state of a summary card.
type Status string

const (
	StatusOnTrack Status = "on_track"
	StatusBehind  Status = "behind"
)
