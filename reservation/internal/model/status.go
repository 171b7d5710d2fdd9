package model

import (
	"fmt"

	"github.com/Astemirdum/table-reservation/reservation/internal/errs"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
)

var Statuses = []Status{StatusPending, StatusConfirmed, StatusCancelled}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Active reports whether a reservation in this status occupies its slot.
func (s Status) Active() bool {
	return s != StatusCancelled
}

// ParseStatus returns errs.ErrInvalidStatus for anything outside the enumerated set.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidStatus, raw)
	}
	return s, nil
}

type Transition struct {
	From Status
	To   Status
}

// Confirmed and Cancelled are terminal.
var transitions = []Transition{
	{From: StatusPending, To: StatusConfirmed},
	{From: StatusPending, To: StatusCancelled},
}

func CanTransition(from, to Status) bool {
	for _, tr := range transitions {
		if tr.From == from && tr.To == to {
			return true
		}
	}
	return false
}

// SourceOf returns the single status a reservation must be in to move to target.
func SourceOf(target Status) (Status, bool) {
	for _, tr := range transitions {
		if tr.To == target {
			return tr.From, true
		}
	}
	return "", false
}
