package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/config"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-local/internal/service"
	"github.com/rocketscienceinc/tictactoe-local/internal/ui"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

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

	kv, closeStorage, err := NewKeyValue(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open %s storage: %w", conf.Storage.Driver, err)
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	log.Info("Storage opened", "driver", conf.Storage.Driver)

	controller := NewSessionController(logger, conf, kv)
	controller.Load(ctx)

	program := tea.NewProgram(ui.New(ctx, controller), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		return fmt.Errorf("UI error: %w", err)
	}

	log.Info("Application exited")

	return nil
}

// NewSessionController wires the persistence adapter and controller onto a key-value backend.
func NewSessionController(logger *slog.Logger, conf *config.Config, kv storage.KeyValue) *usecase.SessionController {
	sessionRepo := repository.NewSessionRepository(kv)
	leaderboardRepo := repository.NewLeaderboardRepository(kv)
	gameStorage := service.NewGameStorage(logger, sessionRepo, leaderboardRepo)

	policy := usecase.KeepScoreOnReplay
	if conf.Game.ResetScoreOnReplay {
		policy = usecase.ResetScoreOnReplay
	}

	return usecase.NewSessionController(logger, gameStorage, usecase.WithReplayPolicy(policy))
}

// NewKeyValue opens the backend named by storage.driver. The returned func releases it.
func NewKeyValue(ctx context.Context, conf *config.Config) (storage.KeyValue, func() error, error) {
	switch conf.Storage.Driver {
	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, &redis.Options{
			Addr:     redisAddrString,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		}, conf.Redis.KeyPrefix)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return redisStorage, redisStorage.Close, nil

	case config.StorageSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(ctx, conf.Storage.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		return sqliteStorage, sqliteStorage.Close, nil

	case config.StorageMemory:
		return storage.NewMemoryStorage(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownStorageType, conf.Storage.Driver)
	}
}
