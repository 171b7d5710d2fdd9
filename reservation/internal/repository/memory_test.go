package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/table-reservation/reservation/internal/errs"
	"github.com/Astemirdum/table-reservation/reservation/internal/model"
)

func newMemory(t *testing.T) *memory {
	t.Helper()
	m := NewMemoryRepository()
	require.NoError(t, m.EnsureTables(context.Background(), 10))
	return m
}

func request(date, tm string, table int, status model.Status) model.CreateReservationRequest {
	return model.CreateReservationRequest{
		Date:            date,
		Time:            tm,
		TableNumber:     table,
		PartySize:       2,
		ResponsibleName: "João",
		Status:          status,
	}
}

func TestMemory_EnsureTablesIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := newMemory(t)
	require.NoError(t, m.EnsureTables(ctx, 10))

	tables, err := m.ListTables(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 10)
	require.Equal(t, 1, tables[0].Number)
	require.Equal(t, 10, tables[9].Number)
}

func TestMemory_Constraints(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := newMemory(t)

	_, err := m.CreateReservation(ctx, request("2024-07-20", "19:00", 11, model.StatusPending))
	require.ErrorIs(t, err, errs.ErrUnknownTable)

	_, err = m.CreateReservation(ctx, request("2024-07-20", "19:00", 5, "Seated"))
	require.ErrorIs(t, err, errs.ErrInvalidStatus)

	first, err := m.CreateReservation(ctx, request("2024-07-20", "19:00", 5, model.StatusPending))
	require.NoError(t, err)
	require.Equal(t, int64(1), first.ID)

	_, err = m.CreateReservation(ctx, request("2024-07-20", "19:00", 5, model.StatusConfirmed))
	require.ErrorIs(t, err, errs.ErrDoubleBooking)

	// cancelled rows never occupy the slot
	_, err = m.CreateReservation(ctx, request("2024-07-20", "19:00", 5, model.StatusCancelled))
	require.NoError(t, err)

	_, err = m.CreateReservation(ctx, request("2024-07-20", "9:30", 5, model.StatusPending))
	require.ErrorIs(t, err, errs.ErrInvalidDateTime)
	_, err = m.CreateReservation(ctx, request("2024-7-20", "09:30", 5, model.StatusPending))
	require.ErrorIs(t, err, errs.ErrInvalidDateTime)

	noParty := request("2024-07-21", "19:00", 5, model.StatusPending)
	noParty.PartySize = 0
	_, err = m.CreateReservation(ctx, noParty)
	require.ErrorIs(t, err, errs.ErrInvalidReservation)

	noName := request("2024-07-21", "19:00", 5, model.StatusPending)
	noName.ResponsibleName = ""
	_, err = m.CreateReservation(ctx, noName)
	require.ErrorIs(t, err, errs.ErrInvalidReservation)
}

func TestMemory_UpdateStatusGuarded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := newMemory(t)
	res, err := m.CreateReservation(ctx, request("2024-07-20", "19:00", 5, model.StatusPending))
	require.NoError(t, err)

	got, applied, err := m.UpdateStatus(ctx, res.ID, model.StatusPending, model.StatusConfirmed)
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, model.StatusConfirmed, got.Status)

	_, applied, err = m.UpdateStatus(ctx, res.ID, model.StatusPending, model.StatusCancelled)
	require.NoError(t, err)
	require.False(t, applied)

	_, applied, err = m.UpdateStatus(ctx, 42, model.StatusPending, model.StatusCancelled)
	require.NoError(t, err)
	require.False(t, applied)
}

func TestMemory_ConcurrentCreateSingleWinner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := newMemory(t)

	const workers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := m.CreateReservation(ctx, request("2024-07-20", "19:00", 3, model.StatusPending)); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, created)
}

func TestMemory_TablesByLatestStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := newMemory(t)

	// table 1: old confirmed, latest pending
	_, err := m.CreateReservation(ctx, request("2024-07-01", "12:00", 1, model.StatusConfirmed))
	require.NoError(t, err)
	_, err = m.CreateReservation(ctx, request("2024-07-20", "12:00", 1, model.StatusPending))
	require.NoError(t, err)
	// table 2: old cancelled, latest confirmed
	_, err = m.CreateReservation(ctx, request("2024-07-01", "12:00", 2, model.StatusCancelled))
	require.NoError(t, err)
	_, err = m.CreateReservation(ctx, request("2024-07-02", "09:30", 2, model.StatusConfirmed))
	require.NoError(t, err)
	// table 3: same day, later time wins
	_, err = m.CreateReservation(ctx, request("2024-07-05", "20:00", 3, model.StatusConfirmed))
	require.NoError(t, err)
	_, err = m.CreateReservation(ctx, request("2024-07-05", "08:00", 3, model.StatusPending))
	require.NoError(t, err)

	confirmed, err := m.TablesByLatestStatus(ctx, model.StatusConfirmed)
	require.NoError(t, err)
	require.Len(t, confirmed, 2)
	require.Equal(t, 2, confirmed[0].TableNumber)
	require.Equal(t, 3, confirmed[1].TableNumber)
	require.Equal(t, "20:00", confirmed[1].Time)

	pending, err := m.TablesByLatestStatus(ctx, model.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, 1, pending[0].TableNumber)

	cancelled, err := m.TablesByLatestStatus(ctx, model.StatusCancelled)
	require.NoError(t, err)
	require.Empty(t, cancelled)
	require.NotNil(t, cancelled)
}
