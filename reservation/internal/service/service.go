package service

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/table-reservation/reservation/internal/errs"
	"github.com/Astemirdum/table-reservation/reservation/internal/model"
	"github.com/Astemirdum/table-reservation/reservation/internal/repository"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type TableRegistry interface {
	Exists(ctx context.Context, number int) (bool, error)
	List(ctx context.Context) ([]model.Table, error)
}

// Observer is told about every successful query. Its errors never fail the query.
type Observer interface {
	Observe(ctx context.Context, report model.Report) error
}

// Publisher is told about every successful mutation.
type Publisher interface {
	Publish(ctx context.Context, event model.EventType, res model.Reservation) error
}

type Service struct {
	log       *zap.Logger
	repo      repository.ReservationRepository
	tables    TableRegistry
	observer  Observer
	publisher Publisher
	now       func() time.Time
}

type Option func(*Service)

func WithObserver(o Observer) Option {
	return func(s *Service) {
		s.observer = o
	}
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

func NewService(repo repository.ReservationRepository, tables TableRegistry, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:    log.Named("service"),
		repo:   repo,
		tables: tables,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateReservation admits a new reservation. An empty status means Pending.
func (s *Service) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	if req.Status == "" {
		req.Status = model.StatusPending
	}
	if !req.Status.Valid() {
		return model.Reservation{}, errors.Wrapf(errs.ErrInvalidStatus, "%q", req.Status)
	}
	if err := req.Check(); err != nil {
		return model.Reservation{}, errors.WithStack(err)
	}

	exists, err := s.tables.Exists(ctx, req.TableNumber)
	if err != nil {
		return model.Reservation{}, errors.Wrap(err, "check table")
	}
	if !exists {
		return model.Reservation{}, errors.Wrapf(errs.ErrUnknownTable, "table %d", req.TableNumber)
	}

	// A cancelled reservation never holds its slot, so it cannot conflict.
	if req.Status.Active() {
		busy, err := s.repo.HasActiveReservation(ctx, req.Slot())
		if err != nil {
			return model.Reservation{}, errors.Wrap(err, "check slot")
		}
		if busy {
			return model.Reservation{}, errors.Wrapf(errs.ErrDoubleBooking, "table %d at %s %s", req.TableNumber, req.Date, req.Time)
		}
	}

	// The store's unique index rejects a concurrent insert that passed the check above.
	res, err := s.repo.CreateReservation(ctx, req)
	if err != nil {
		if errors.Is(err, errs.ErrDoubleBooking) {
			return model.Reservation{}, errors.Wrapf(err, "table %d at %s %s", req.TableNumber, req.Date, req.Time)
		}
		return model.Reservation{}, errors.Wrap(err, "create reservation")
	}

	s.log.Info("reservation created",
		zap.Int64("id", res.ID),
		zap.Int("table", res.TableNumber),
		zap.String("date", res.Date),
		zap.String("time", res.Time),
		zap.String("status", string(res.Status)))
	s.publish(ctx, model.EventCreated, res)
	return res, nil
}

func (s *Service) GetReservation(ctx context.Context, id int64) (model.Reservation, error) {
	if id <= 0 {
		return model.Reservation{}, errors.Wrapf(errs.ErrNotFound, "id %d", id)
	}
	res, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return model.Reservation{}, errors.Wrapf(err, "reservation %d", id)
	}
	return res, nil
}

func (s *Service) ConfirmReservation(ctx context.Context, id int64) (model.Reservation, error) {
	return s.transition(ctx, id, model.StatusConfirmed)
}

func (s *Service) CancelReservation(ctx context.Context, id int64) (model.Reservation, error) {
	return s.transition(ctx, id, model.StatusCancelled)
}

func (s *Service) transition(ctx context.Context, id int64, to model.Status) (model.Reservation, error) {
	from, ok := model.SourceOf(to)
	if !ok {
		return model.Reservation{}, errors.Wrapf(errs.ErrInvalidTransition, "no transition into %s", to)
	}
	if id <= 0 {
		return model.Reservation{}, errors.Wrapf(errs.ErrNotFound, "id %d", id)
	}

	res, applied, err := s.repo.UpdateStatus(ctx, id, from, to)
	if err != nil {
		return model.Reservation{}, errors.Wrapf(err, "reservation %d", id)
	}
	if !applied {
		// Nothing matched the guarded update: the id is unknown or already decided.
		cur, err := s.repo.GetReservation(ctx, id)
		if err != nil {
			return model.Reservation{}, errors.Wrapf(err, "reservation %d", id)
		}
		return model.Reservation{}, errors.Wrapf(errs.ErrInvalidTransition, "reservation %d is %s", id, cur.Status)
	}

	s.log.Info("reservation status changed",
		zap.Int64("id", id),
		zap.String("from", string(from)),
		zap.String("to", string(to)))
	s.publish(ctx, model.EventFor(to), res)
	return res, nil
}

func (s *Service) ReservationsByPeriod(ctx context.Context, dateStart, dateEnd string) ([]model.Reservation, error) {
	for _, d := range []string{dateStart, dateEnd} {
		if err := model.CheckDate(d); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	items, err := s.repo.ReservationsByPeriod(ctx, dateStart, dateEnd)
	if err != nil {
		return nil, errors.Wrap(err, "reservations by period")
	}
	if items == nil {
		items = []model.Reservation{}
	}
	s.notify(ctx, model.Report{
		Kind:         model.ReportByPeriod,
		Params:       map[string]string{"dateStart": dateStart, "dateEnd": dateEnd},
		Reservations: items,
	})
	return items, nil
}

func (s *Service) ReservationsByTable(ctx context.Context, tableNumber int) ([]model.Reservation, error) {
	items, err := s.repo.ReservationsByTable(ctx, tableNumber)
	if err != nil {
		return nil, errors.Wrap(err, "reservations by table")
	}
	if items == nil {
		items = []model.Reservation{}
	}
	s.notify(ctx, model.Report{
		Kind:         model.ReportByTable,
		Params:       map[string]string{"tableNumber": strconv.Itoa(tableNumber)},
		Reservations: items,
	})
	return items, nil
}

// TablesByLatestStatus returns the tables whose most recent reservation has the given status.
func (s *Service) TablesByLatestStatus(ctx context.Context, status model.Status) ([]model.TableStatus, error) {
	if !status.Valid() {
		return nil, errors.Wrapf(errs.ErrInvalidStatus, "%q", status)
	}
	items, err := s.repo.TablesByLatestStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "tables by latest status")
	}
	if items == nil {
		items = []model.TableStatus{}
	}
	s.notify(ctx, model.Report{
		Kind:   model.ReportByLatestStatus,
		Params: map[string]string{"status": string(status)},
		Tables: items,
	})
	return items, nil
}

func (s *Service) ListTables(ctx context.Context) ([]model.Table, error) {
	tables, err := s.tables.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list tables")
	}
	return tables, nil
}

func (s *Service) notify(ctx context.Context, report model.Report) {
	if s.observer == nil {
		return
	}
	report.GeneratedAt = s.now()
	if err := s.observer.Observe(ctx, report); err != nil {
		s.log.Warn("report observer", zap.String("kind", string(report.Kind)), zap.Error(err))
	}
}

func (s *Service) publish(ctx context.Context, event model.EventType, res model.Reservation) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event, res); err != nil {
		s.log.Warn("publish event", zap.String("event", string(event)), zap.Int64("id", res.ID), zap.Error(err))
	}
}
