package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Astemirdum/table-reservation/reservation/internal/errs"
	"github.com/Astemirdum/table-reservation/reservation/internal/model"
)

// memory mirrors the Postgres schema constraints: the tables foreign key, the column
// checks and the partial unique index on active slots.
type memory struct {
	mu           sync.Mutex
	tables       map[int]struct{}
	reservations []model.Reservation
	lastID       int64
}

func NewMemoryRepository() *memory {
	return &memory{
		tables: make(map[int]struct{}),
	}
}

func (m *memory) EnsureTables(_ context.Context, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for n := 1; n <= count; n++ {
		m.tables[n] = struct{}{}
	}
	return nil
}

func (m *memory) TableExists(_ context.Context, number int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tables[number]
	return ok, nil
}

func (m *memory) ListTables(_ context.Context) ([]model.Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tables := make([]model.Table, 0, len(m.tables))
	for n := range m.tables {
		tables = append(tables, model.Table{Number: n})
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].Number < tables[j].Number })
	return tables, nil
}

func (m *memory) HasActiveReservation(_ context.Context, slot model.Slot) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slotTaken(slot), nil
}

func (m *memory) slotTaken(slot model.Slot) bool {
	for _, r := range m.reservations {
		if r.Status.Active() && r.Slot() == slot {
			return true
		}
	}
	return false
}

func (m *memory) CreateReservation(_ context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !req.Status.Valid() {
		return model.Reservation{}, errs.ErrInvalidStatus
	}
	if err := req.Check(); err != nil {
		return model.Reservation{}, err
	}
	if _, ok := m.tables[req.TableNumber]; !ok {
		return model.Reservation{}, errs.ErrUnknownTable
	}
	if req.Status.Active() && m.slotTaken(req.Slot()) {
		return model.Reservation{}, errs.ErrDoubleBooking
	}

	m.lastID++
	res := model.Reservation{
		ID:              m.lastID,
		Date:            req.Date,
		Time:            req.Time,
		TableNumber:     req.TableNumber,
		PartySize:       req.PartySize,
		ResponsibleName: req.ResponsibleName,
		Status:          req.Status,
		Server:          copyString(req.Server),
	}
	m.reservations = append(m.reservations, res)
	return res, nil
}

func (m *memory) GetReservation(_ context.Context, id int64) (model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return model.Reservation{}, errs.ErrNotFound
	}
	return m.reservations[i], nil
}

func (m *memory) UpdateStatus(_ context.Context, id int64, from, to model.Status) (model.Reservation, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 || m.reservations[i].Status != from {
		return model.Reservation{}, false, nil
	}
	m.reservations[i].Status = to
	return m.reservations[i], true, nil
}

func (m *memory) ReservationsByPeriod(_ context.Context, dateStart, dateEnd string) ([]model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]model.Reservation, 0)
	for _, r := range m.reservations {
		if r.Date >= dateStart && r.Date <= dateEnd {
			items = append(items, r)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date < items[j].Date
		}
		return items[i].Time < items[j].Time
	})
	return items, nil
}

func (m *memory) ReservationsByTable(_ context.Context, tableNumber int) ([]model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]model.Reservation, 0)
	for _, r := range m.reservations {
		if r.TableNumber == tableNumber {
			items = append(items, r)
		}
	}
	return items, nil
}

func (m *memory) TablesByLatestStatus(_ context.Context, status model.Status) ([]model.TableStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// reservations are kept in id order, so a later equal (date, time) wins the tie.
	latest := make(map[int]model.Reservation)
	for _, r := range m.reservations {
		cur, ok := latest[r.TableNumber]
		if !ok || r.Date+" "+r.Time >= cur.Date+" "+cur.Time {
			latest[r.TableNumber] = r
		}
	}

	items := make([]model.TableStatus, 0)
	for _, r := range latest {
		if r.Status != status {
			continue
		}
		items = append(items, model.TableStatus{
			TableNumber:   r.TableNumber,
			Status:        r.Status,
			ReservationID: r.ID,
			Date:          r.Date,
			Time:          r.Time,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].TableNumber < items[j].TableNumber })
	return items, nil
}

func (m *memory) index(id int64) int {
	for i := range m.reservations {
		if m.reservations[i].ID == id {
			return i
		}
	}
	return -1
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
