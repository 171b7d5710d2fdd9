package repository

import (
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/Astemirdum/table-reservation/reservation/internal/errs"
)

const (
	activeSlotIndex       = "reservations_active_slot_uidx"
	reservationStatusRule = "reservations_status_check"
)

var checkViolations = map[string]error{
	reservationStatusRule:                 errs.ErrInvalidStatus,
	"reservations_date_check":             errs.ErrInvalidDateTime,
	"reservations_time_check":             errs.ErrInvalidDateTime,
	"reservations_party_size_check":       errs.ErrInvalidReservation,
	"reservations_responsible_name_check": errs.ErrInvalidReservation,
}

// classify turns driver errors into the engine's typed errors. Anything it does not
// recognise is reported as errs.ErrStoreFailure.
func classify(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			if pgErr.ConstraintName == activeSlotIndex {
				return errs.ErrDoubleBooking
			}
		case pgerrcode.ForeignKeyViolation:
			return errs.ErrUnknownTable
		case pgerrcode.CheckViolation:
			if e, ok := checkViolations[pgErr.ConstraintName]; ok {
				return e
			}
		}
	}
	return fmt.Errorf("%s: %w: %w", op, errs.ErrStoreFailure, err)
}
