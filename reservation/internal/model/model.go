package model

import (
	"fmt"
	"time"

	"github.com/Astemirdum/table-reservation/reservation/internal/errs"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Table struct {
	Number int `json:"number" db:"number"`
}

type Reservation struct {
	ID              int64   `json:"id" db:"id"`
	Date            string  `json:"date" db:"date"`
	Time            string  `json:"time" db:"time"`
	TableNumber     int     `json:"tableNumber" db:"table_number"`
	PartySize       int     `json:"partySize" db:"party_size"`
	ResponsibleName string  `json:"responsibleName" db:"responsible_name"`
	Status          Status  `json:"status" db:"status"`
	Server          *string `json:"server,omitempty" db:"server"`
}

// Slot is the (date, time, table) triple that at most one active reservation may hold.
type Slot struct {
	Date        string
	Time        string
	TableNumber int
}

func (r Reservation) Slot() Slot {
	return Slot{Date: r.Date, Time: r.Time, TableNumber: r.TableNumber}
}

type CreateReservationRequest struct {
	Date            string  `json:"date" validate:"required,len=10,datetime=2006-01-02"`
	Time            string  `json:"time" validate:"required,len=5,datetime=15:04"`
	TableNumber     int     `json:"tableNumber" validate:"required,gt=0"`
	PartySize       int     `json:"partySize" validate:"required,gt=0"`
	ResponsibleName string  `json:"responsibleName" validate:"required"`
	Status          Status  `json:"status"`
	Server          *string `json:"server"`
}

func (r CreateReservationRequest) Slot() Slot {
	return Slot{Date: r.Date, Time: r.Time, TableNumber: r.TableNumber}
}

// Check rejects anything the store would refuse. Date and time must be in their
// zero-padded form, since slots and ordering compare them as text.
func (r CreateReservationRequest) Check() error {
	if err := CheckDate(r.Date); err != nil {
		return err
	}
	if !canonical(TimeLayout, r.Time) {
		return fmt.Errorf("%w: time %q", errs.ErrInvalidDateTime, r.Time)
	}
	if r.PartySize <= 0 {
		return fmt.Errorf("%w: party size %d", errs.ErrInvalidReservation, r.PartySize)
	}
	if r.ResponsibleName == "" {
		return fmt.Errorf("%w: responsible name is empty", errs.ErrInvalidReservation)
	}
	return nil
}

func CheckDate(date string) error {
	if !canonical(DateLayout, date) {
		return fmt.Errorf("%w: date %q", errs.ErrInvalidDateTime, date)
	}
	return nil
}

// canonical reports whether s parses with layout and formats back unchanged,
// so "9:30" and "2024-7-20" are refused.
func canonical(layout, s string) bool {
	t, err := time.Parse(layout, s)
	return err == nil && t.Format(layout) == s
}

type PeriodRequest struct {
	DateStart string `query:"dateStart" validate:"required,len=10,datetime=2006-01-02"`
	DateEnd   string `query:"dateEnd" validate:"required,len=10,datetime=2006-01-02"`
}

// TableStatus is a table together with its chronologically latest reservation.
type TableStatus struct {
	TableNumber   int    `json:"tableNumber" db:"table_number"`
	Status        Status `json:"status" db:"status"`
	ReservationID int64  `json:"reservationId" db:"id"`
	Date          string `json:"date" db:"date"`
	Time          string `json:"time" db:"time"`
}
