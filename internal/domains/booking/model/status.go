package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

var (
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrInvalidStatus     = errors.New("invalid booking status")
)

// cancelled is terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// ParseStatuses reads a comma-separated status list such as "pending,confirmed".
// Duplicates collapse; blank or unknown entries fail the whole list.
func ParseStatuses(value string) ([]Status, error) {
	var statuses []Status

	for part := range strings.SplitSeq(value, ",") {
		status := Status(strings.TrimSpace(part))
		if !status.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, part)
		}

		if !slices.Contains(statuses, status) {
			statuses = append(statuses, status)
		}
	}

	return statuses, nil
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// Transition returns next when the move is allowed and ErrInvalidTransition otherwise.
func (s Status) Transition(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return s, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, s, next)
	}

	return next, nil
}

// ReleasesRoom reports whether entering this status frees the booked room.
func (s Status) ReleasesRoom() bool {
	return s == StatusCancelled
}
