package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository"
)

// GameStorage is the best-effort persistence used by the session controller.
// Failures are logged and never returned: a failed save behaves like a
// successful one, and a failed or corrupt read behaves like an absent record.
type GameStorage interface {
	SaveSession(ctx context.Context, snapshot entity.Snapshot)
	LoadSession(ctx context.Context) (entity.Snapshot, bool)
	ClearSession(ctx context.Context)

	AppendLeaderboardEntry(ctx context.Context, result entity.GameResult)
	LoadLeaderboard(ctx context.Context) []entity.GameResult
}

type sessionRepo interface {
	Save(ctx context.Context, snapshot *entity.Snapshot) error
	Get(ctx context.Context) (*entity.Snapshot, error)
	Delete(ctx context.Context) error
}

type leaderboardRepo interface {
	List(ctx context.Context) ([]entity.GameResult, error)
	Replace(ctx context.Context, results []entity.GameResult) error
}

type gameStorage struct {
	logger *slog.Logger

	sessionRepo     sessionRepo
	leaderboardRepo leaderboardRepo
}

func NewGameStorage(logger *slog.Logger, sessionRepo sessionRepo, leaderboardRepo leaderboardRepo) GameStorage {
	return &gameStorage{
		logger:          logger.With("component", "storage"),
		sessionRepo:     sessionRepo,
		leaderboardRepo: leaderboardRepo,
	}
}

func (that *gameStorage) SaveSession(ctx context.Context, snapshot entity.Snapshot) {
	if err := that.sessionRepo.Save(ctx, &snapshot); err != nil {
		that.logger.Error("Error saving game state", "method", "SaveSession", "error", err)
	}
}

func (that *gameStorage) LoadSession(ctx context.Context) (entity.Snapshot, bool) {
	log := that.logger.With("method", "LoadSession")

	snapshot, err := that.sessionRepo.Get(ctx)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return entity.Snapshot{}, false
	}

	if err != nil {
		log.Error("Error loading game state", "error", err)
		return entity.Snapshot{}, false
	}

	return *snapshot, true
}

func (that *gameStorage) ClearSession(ctx context.Context) {
	if err := that.sessionRepo.Delete(ctx); err != nil {
		that.logger.Error("Error clearing game state", "method", "ClearSession", "error", err)
	}
}

// AppendLeaderboardEntry is a read-modify-write without locking; one session per
// process means there is never a concurrent append.
func (that *gameStorage) AppendLeaderboardEntry(ctx context.Context, result entity.GameResult) {
	log := that.logger.With("method", "AppendLeaderboardEntry")

	results := that.LoadLeaderboard(ctx)
	results = append(results, result)
	entity.SortResults(results)

	if err := that.leaderboardRepo.Replace(ctx, results); err != nil {
		log.Error("Error saving to leaderboard", "error", err)
		return
	}

	log.Debug("leaderboard entry saved", "entries", len(results))
}

func (that *gameStorage) LoadLeaderboard(ctx context.Context) []entity.GameResult {
	results, err := that.leaderboardRepo.List(ctx)
	if errors.Is(err, repository.ErrLeaderboardNotFound) {
		return []entity.GameResult{}
	}

	if err != nil {
		that.logger.Error("Error getting leaderboard", "method", "LoadLeaderboard", "error", err)
		return []entity.GameResult{}
	}

	if results == nil {
		results = []entity.GameResult{}
	}

	return results
}
