package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
)

const (
	backendNone   = "none"
	backendSQLite = "sqlite"
	backendRedis  = "redis"
)

var ErrUnknownStorageBackend = errors.New("unknown storage backend")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	games, cleanup, err := newGameRepository(ctx, log, conf)
	if err != nil {
		// A broken archive must not stop the game; play on without it.
		log.Error("could not set up game storage, finished games will not be saved", "error", err)
		games = repository.NewNoopGameRepository()
	}

	if cleanup != nil {
		defer cleanup()
	}

	term := console.New(logger, os.Stdin, os.Stdout, games, conf.BoardSize)

	if err = term.Run(ctx); err != nil {
		return fmt.Errorf("console loop failed: %w", err)
	}

	return nil
}

func newGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	switch conf.Storage.Backend {
	case backendNone, "":
		return repository.NewNoopGameRepository(), nil, nil

	case backendSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.Storage.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		cleanup := func() {
			if err := sqliteStorage.Close(); err != nil {
				log.Error("could not close sqlite storage", "error", err)
			}
		}

		return repository.NewSQLiteGameRepository(sqliteStorage), cleanup, nil

	case backendRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Storage.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		cleanup := func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewRedisGameRepository(redisStorage.Connection), cleanup, nil

	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownStorageBackend, conf.Storage.Backend)
	}
}
