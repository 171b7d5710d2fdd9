package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/table-reservation/reservation/internal/errs"
	"github.com/Astemirdum/table-reservation/reservation/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type TableRepository interface {
	EnsureTables(ctx context.Context, count int) error
	TableExists(ctx context.Context, number int) (bool, error)
	ListTables(ctx context.Context) ([]model.Table, error)
}

type ReservationRepository interface {
	HasActiveReservation(ctx context.Context, slot model.Slot) (bool, error)
	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	GetReservation(ctx context.Context, id int64) (model.Reservation, error)
	// UpdateStatus moves a reservation from one status to another in a single guarded write.
	// applied is false when no row with that id was in the from status.
	UpdateStatus(ctx context.Context, id int64, from, to model.Status) (res model.Reservation, applied bool, err error)
	ReservationsByPeriod(ctx context.Context, dateStart, dateEnd string) ([]model.Reservation, error)
	ReservationsByTable(ctx context.Context, tableNumber int) ([]model.Reservation, error)
	TablesByLatestStatus(ctx context.Context, status model.Status) ([]model.TableStatus, error)
}

type Repository interface {
	TableRepository
	ReservationRepository
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	tablesTableName      = `tables`
	reservationTableName = `reservations`
)

var (
	qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	reservationColumns = []string{"id", "date", "time", "table_number", "party_size", "responsible_name", "status", "server"}
)

func (r *repository) EnsureTables(ctx context.Context, count int) error {
	q := `insert into tables (number) select generate_series(1, @count) on conflict do nothing`
	args := pgx.NamedArgs{
		"count": count,
	}
	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return classify("EnsureTables", err)
	}
	r.log.Debug("EnsureTables", zap.Int("count", count), zap.Int64("inserted", tag.RowsAffected()))
	return nil
}

func (r *repository) TableExists(ctx context.Context, number int) (bool, error) {
	q, args, err := qb.Select("1").
		From(tablesTableName).
		Where(sq.Eq{"number": number}).
		Prefix("select exists (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}
	var exists bool
	if err := r.db.QueryRow(ctx, q, args...).Scan(&exists); err != nil {
		return false, classify("TableExists", err)
	}
	return exists, nil
}

func (r *repository) ListTables(ctx context.Context) ([]model.Table, error) {
	q, args, err := qb.Select("number").
		From(tablesTableName).
		OrderBy("number").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, classify("ListTables", err)
	}
	defer rows.Close()

	tables, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Table])
	if err != nil {
		return nil, classify("ListTables", err)
	}
	return tables, nil
}

func (r *repository) HasActiveReservation(ctx context.Context, slot model.Slot) (bool, error) {
	q, args, err := qb.Select("1").
		From(reservationTableName).
		Where(sq.Eq{
			"date":         slot.Date,
			"time":         slot.Time,
			"table_number": slot.TableNumber,
		}).
		Where(sq.NotEq{"status": string(model.StatusCancelled)}).
		Prefix("select exists (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}
	var exists bool
	if err := r.db.QueryRow(ctx, q, args...).Scan(&exists); err != nil {
		return false, classify("HasActiveReservation", err)
	}
	return exists, nil
}

func (r *repository) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	q, args, err := qb.Insert(reservationTableName).
		Columns("date", "time", "table_number", "party_size", "responsible_name", "status", "server").
		Values(req.Date, req.Time, req.TableNumber, req.PartySize, req.ResponsibleName, string(req.Status), req.Server).
		Suffix("returning " + strings.Join(reservationColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return model.Reservation{}, classify("CreateReservation", err)
	}
	defer rows.Close()

	res, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Reservation])
	if err != nil {
		r.log.Error("CreateReservation", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return model.Reservation{}, classify("CreateReservation", err)
	}
	return res, nil
}

func (r *repository) GetReservation(ctx context.Context, id int64) (model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns...).
		From(reservationTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return model.Reservation{}, classify("GetReservation", err)
	}
	defer rows.Close()

	res, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Reservation])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Reservation{}, errs.ErrNotFound
		}
		return model.Reservation{}, classify("GetReservation", err)
	}
	return res, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, from, to model.Status) (model.Reservation, bool, error) {
	q := `update reservations
	set status = @to
	where id = @id and status = @from
	returning ` + strings.Join(reservationColumns, ", ")
	args := pgx.NamedArgs{
		"id":   id,
		"from": string(from),
		"to":   string(to),
	}
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return model.Reservation{}, false, classify("UpdateStatus", err)
	}
	defer rows.Close()

	res, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Reservation])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Reservation{}, false, nil
		}
		return model.Reservation{}, false, classify("UpdateStatus", err)
	}
	return res, true, nil
}

func (r *repository) ReservationsByPeriod(ctx context.Context, dateStart, dateEnd string) ([]model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns...).
		From(reservationTableName).
		Where(sq.Expr("date between ? and ?", dateStart, dateEnd)).
		OrderBy("date", "time", "id").
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ReservationsByPeriod", zap.String("query", q), zap.Any("args", args))
	return r.collectReservations(ctx, "ReservationsByPeriod", q, args...)
}

func (r *repository) ReservationsByTable(ctx context.Context, tableNumber int) ([]model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns...).
		From(reservationTableName).
		Where(sq.Eq{"table_number": tableNumber}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.collectReservations(ctx, "ReservationsByTable", q, args...)
}

func (r *repository) collectReservations(ctx context.Context, op, q string, args ...any) ([]model.Reservation, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Reservation])
	if err != nil {
		return nil, classify(op, err)
	}
	return items, nil
}

// TablesByLatestStatus ranks each table's reservations by (date, time) and keeps the
// latest one; equal (date, time) pairs fall back to the highest id.
func (r *repository) TablesByLatestStatus(ctx context.Context, status model.Status) ([]model.TableStatus, error) {
	const q = `
	select table_number, status, id, date, time
	from (
		select table_number, status, id, date, time,
		       row_number() over (partition by table_number order by date desc, time desc, id desc) as rn
		from reservations
	) latest
	where rn = 1 and status = @status
	order by table_number`
	args := pgx.NamedArgs{
		"status": string(status),
	}
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, classify("TablesByLatestStatus", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.TableStatus])
	if err != nil {
		return nil, classify("TablesByLatestStatus", err)
	}
	return items, nil
}
