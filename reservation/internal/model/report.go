package model

import "time"

type ReportKind string

const (
	ReportByPeriod       ReportKind = "by_period"
	ReportByTable        ReportKind = "by_table"
	ReportByLatestStatus ReportKind = "by_latest_status"
)

// Report describes the outcome of a successful query, handed to observers.
type Report struct {
	Kind         ReportKind
	GeneratedAt  time.Time
	Params       map[string]string
	Reservations []Reservation
	Tables       []TableStatus
}

func (r Report) Count() int {
	if r.Kind == ReportByLatestStatus {
		return len(r.Tables)
	}
	return len(r.Reservations)
}

type EventType string

const (
	EventCreated   EventType = "created"
	EventConfirmed EventType = "confirmed"
	EventCancelled EventType = "cancelled"
)

func EventFor(s Status) EventType {
	switch s {
	case StatusConfirmed:
		return EventConfirmed
	case StatusCancelled:
		return EventCancelled
	}
	return EventCreated
}
