package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/config"
	"github.com/Astemirdum/library-circulation/circulation/internal/handler"
	"github.com/Astemirdum/library-circulation/circulation/internal/notify"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/circulation/internal/server"
	"github.com/Astemirdum/library-circulation/circulation/internal/service"
	"github.com/Astemirdum/library-circulation/circulation/migrations"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
)

// newRepository opens the configured storage. The returned func releases it.
func newRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.Repository, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		log.Warn("in-memory storage, state is lost on exit")
		return repository.NewMemoryRepository(log), func() {}, nil
	case config.StoragePostgres:
		db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			return nil, nil, errors.Wrap(err, "db init")
		}
		repo, err := repository.NewRepository(db, log)
		if err != nil {
			db.Close()
			return nil, nil, errors.Wrap(err, "repo")
		}
		return repo, db.Close, nil
	default:
		return nil, nil, errors.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func newNotifier(cfg *config.Config, log *zap.Logger) (service.Notifier, func(), error) {
	if !cfg.Kafka.Enabled() {
		return notify.NewLog(log), func() {}, nil
	}
	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return nil, nil, errors.Wrap(err, "kafka.NewProducer")
	}
	p := notify.NewPublisher(producer, kafka.EventsTopic, log)
	return p, func() {
		if err := p.Close(); err != nil {
			log.Warn("producer close", zap.Error(err))
		}
	}, nil
}

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "circulation")
	defer log.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, closeRepo, err := newRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	notifier, closeNotifier, err := newNotifier(cfg, log)
	if err != nil {
		return err
	}
	defer closeNotifier()

	svc := service.NewService(repo, notifier, cfg.Circulation, log)

	if cfg.Kafka.Enabled() {
		consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.CirculationConsumerGroup)
		if err != nil {
			return errors.Wrap(err, "kafka.NewConsumer")
		}
		defer consumer.Close() //nolint:errcheck
		go func() {
			if err := kafka.Consume(ctx, consumer, handler.NewConsumer(svc.ExpireStaleReservations, svc.Now, log), kafka.ExpireTopic); err != nil {
				log.Error("kafka.Consume", zap.Error(err))
			}
		}()
	}

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	cancel()
	log.Info("Graceful shutdown finished")
	return nil
}

// Migrate applies the embedded migrations and exits.
func Migrate(ctx context.Context, cfg *config.Config) error {
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return err
	}
	db.Close()
	return nil
}

// Expire runs one expiry sweep against the configured storage.
func Expire(ctx context.Context, cfg *config.Config, now time.Time) (int, error) {
	log := logger.NewLogger(cfg.Log, "circulation")
	defer log.Sync() //nolint:errcheck

	repo, closeRepo, err := newRepository(ctx, cfg, log)
	if err != nil {
		return 0, err
	}
	defer closeRepo()

	notifier, closeNotifier, err := newNotifier(cfg, log)
	if err != nil {
		return 0, err
	}
	defer closeNotifier()

	return service.NewService(repo, notifier, cfg.Circulation, log).ExpireStaleReservations(ctx, now)
}
