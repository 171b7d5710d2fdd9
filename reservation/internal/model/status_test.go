package model

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/table-reservation/reservation/internal/errs"
)

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	for _, raw := range []string{"", "pending", "Seated", "CANCELLED"} {
		_, err := ParseStatus(raw)
		require.ErrorIs(t, err, errs.ErrInvalidStatus, raw)
	}
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusConfirmed, StatusPending, false},
		{StatusPending, StatusPending, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}

	from, ok := SourceOf(StatusConfirmed)
	require.True(t, ok)
	require.Equal(t, StatusPending, from)
	_, ok = SourceOf(StatusPending)
	require.False(t, ok)

	require.True(t, StatusPending.Active())
	require.True(t, StatusConfirmed.Active())
	require.False(t, StatusCancelled.Active())
}

func TestEventFor(t *testing.T) {
	require.Equal(t, EventConfirmed, EventFor(StatusConfirmed))
	require.Equal(t, EventCancelled, EventFor(StatusCancelled))
	require.Equal(t, EventCreated, EventFor(StatusPending))
}

func TestCreateReservationRequest_Check(t *testing.T) {
	valid := CreateReservationRequest{
		Date:            "2024-07-20",
		Time:            "09:30",
		TableNumber:     5,
		PartySize:       2,
		ResponsibleName: "João",
	}
	require.NoError(t, valid.Check())

	tests := []struct {
		name   string
		mutate func(r *CreateReservationRequest)
		want   error
	}{
		{"single digit hour", func(r *CreateReservationRequest) { r.Time = "9:30" }, errs.ErrInvalidDateTime},
		{"hour out of range", func(r *CreateReservationRequest) { r.Time = "24:00" }, errs.ErrInvalidDateTime},
		{"seconds", func(r *CreateReservationRequest) { r.Time = "09:30:00" }, errs.ErrInvalidDateTime},
		{"unpadded month", func(r *CreateReservationRequest) { r.Date = "2024-7-20" }, errs.ErrInvalidDateTime},
		{"no such day", func(r *CreateReservationRequest) { r.Date = "2024-02-30" }, errs.ErrInvalidDateTime},
		{"empty party", func(r *CreateReservationRequest) { r.PartySize = 0 }, errs.ErrInvalidReservation},
		{"no name", func(r *CreateReservationRequest) { r.ResponsibleName = "" }, errs.ErrInvalidReservation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			require.ErrorIs(t, r.Check(), tt.want)
		})
	}
}
