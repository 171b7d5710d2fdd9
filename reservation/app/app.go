package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/table-reservation/pkg/breaker"
	"github.com/Astemirdum/table-reservation/pkg/kafka"
	"github.com/Astemirdum/table-reservation/pkg/logger"
	"github.com/Astemirdum/table-reservation/pkg/metrics"
	"github.com/Astemirdum/table-reservation/pkg/postgres"
	"github.com/Astemirdum/table-reservation/reservation/config"
	"github.com/Astemirdum/table-reservation/reservation/internal/events"
	"github.com/Astemirdum/table-reservation/reservation/internal/handler"
	"github.com/Astemirdum/table-reservation/reservation/internal/registry"
	"github.com/Astemirdum/table-reservation/reservation/internal/report"
	"github.com/Astemirdum/table-reservation/reservation/internal/repository"
	"github.com/Astemirdum/table-reservation/reservation/internal/server"
	"github.com/Astemirdum/table-reservation/reservation/internal/service"
	"github.com/Astemirdum/table-reservation/reservation/migrations"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "reservation")
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := newRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	tables := registry.New(repo, log)
	if err = tables.RegisterDefaultTables(ctx, cfg.Tables.Count); err != nil {
		return fmt.Errorf("register tables %w", err)
	}

	var opts []service.Option
	if cfg.Report.Sink != "" {
		w, err := report.NewFileWriter(cfg.Report.Sink)
		if err != nil {
			return fmt.Errorf("report sink %w", err)
		}
		defer w.Close() //nolint:errcheck
		opts = append(opts, service.WithObserver(w))
	}
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka.NewProducer %w", err)
		}
		pub := events.NewPublisher(producer, cfg.Kafka.Topic, breaker.New(cfg.Breaker), log)
		defer func() {
			if err := pub.Close(); err != nil {
				log.Error("producer close", zap.Error(err))
			}
		}()
		opts = append(opts, service.WithPublisher(pub))
	}

	svc := service.NewService(repo, tables, log, opts...)
	h := handler.New(svc, log, handler.WithMetrics(metrics.New("reservation")))
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr",
				net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(gctx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})
	if err = g.Wait(); err != nil {
		log.Error("server", zap.Error(err))
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}

func newRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.Repository, func(), error) {
	if cfg.DBDriver == config.DriverMemory {
		log.Warn("in-memory store, reservations are lost on restart")
		return repository.NewMemoryRepository(), func() {}, nil
	}
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return nil, nil, fmt.Errorf("db init %w", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("repo %w", err)
	}
	return repo, db.Close, nil
}
