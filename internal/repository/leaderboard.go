package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository/storage"
)

const leaderboardKey = "leaderboard"

var ErrLeaderboardNotFound = errors.New("leaderboard not found")

type LeaderboardRepository interface {
	List(ctx context.Context) ([]entity.GameResult, error)
	Replace(ctx context.Context, results []entity.GameResult) error
}

type dbLeaderboard struct {
	kv storage.KeyValue
}

func NewLeaderboardRepository(kv storage.KeyValue) LeaderboardRepository {
	return &dbLeaderboard{
		kv: kv,
	}
}

func (that *dbLeaderboard) List(ctx context.Context) ([]entity.GameResult, error) {
	response, err := that.kv.Get(ctx, leaderboardKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, ErrLeaderboardNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	var results []entity.GameResult
	if err = json.Unmarshal([]byte(response), &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leaderboard: %w", err)
	}

	return results, nil
}

func (that *dbLeaderboard) Replace(ctx context.Context, results []entity.GameResult) error {
	if results == nil {
		results = []entity.GameResult{}
	}

	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("could not marshal leaderboard: %w", err)
	}

	if err = that.kv.Set(ctx, leaderboardKey, string(resultsJSON)); err != nil {
		return fmt.Errorf("failed to set leaderboard: %w", err)
	}

	return nil
}
