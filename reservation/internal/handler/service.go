package handler

import (
	"context"

	"github.com/Astemirdum/table-reservation/reservation/internal/model"
	"github.com/Astemirdum/table-reservation/reservation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type ReservationService interface {
	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	GetReservation(ctx context.Context, id int64) (model.Reservation, error)
	ConfirmReservation(ctx context.Context, id int64) (model.Reservation, error)
	CancelReservation(ctx context.Context, id int64) (model.Reservation, error)
	ReservationsByPeriod(ctx context.Context, dateStart, dateEnd string) ([]model.Reservation, error)
	ReservationsByTable(ctx context.Context, tableNumber int) ([]model.Reservation, error)
	TablesByLatestStatus(ctx context.Context, status model.Status) ([]model.TableStatus, error)
	ListTables(ctx context.Context) ([]model.Table, error)
}

var _ ReservationService = (*service.Service)(nil)
