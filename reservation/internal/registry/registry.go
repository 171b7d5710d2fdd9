// Package registry holds the fixed set of restaurant tables reservations may refer to.
package registry

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/table-reservation/reservation/internal/errs"
	"github.com/Astemirdum/table-reservation/reservation/internal/model"
)

type Store interface {
	EnsureTables(ctx context.Context, count int) error
	TableExists(ctx context.Context, number int) (bool, error)
	ListTables(ctx context.Context) ([]model.Table, error)
}

type Registry struct {
	store Store
	log   *zap.Logger
}

func New(store Store, log *zap.Logger) *Registry {
	return &Registry{
		store: store,
		log:   log.Named("registry"),
	}
}

// RegisterDefaultTables makes sure tables 1..n exist. Calling it again is a no-op.
func (r *Registry) RegisterDefaultTables(ctx context.Context, n int) error {
	if n <= 0 {
		return errors.Wrapf(errs.ErrInvalidTableCount, "got %d", n)
	}
	if err := r.store.EnsureTables(ctx, n); err != nil {
		return errors.Wrap(err, "ensure tables")
	}
	r.log.Info("tables registered", zap.Int("count", n))
	return nil
}

func (r *Registry) Exists(ctx context.Context, number int) (bool, error) {
	if number <= 0 {
		return false, nil
	}
	return r.store.TableExists(ctx, number)
}

func (r *Registry) List(ctx context.Context) ([]model.Table, error) {
	tables, err := r.store.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	if tables == nil {
		tables = []model.Table{}
	}
	return tables, nil
}
