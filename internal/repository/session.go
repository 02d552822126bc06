package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository/storage"
)

const sessionKey = "currentGame"

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Save(ctx context.Context, snapshot *entity.Snapshot) error
	Get(ctx context.Context) (*entity.Snapshot, error)
	Delete(ctx context.Context) error
}

type dbSession struct {
	kv storage.KeyValue
}

func NewSessionRepository(kv storage.KeyValue) SessionRepository {
	return &dbSession{
		kv: kv,
	}
}

func (that *dbSession) Save(ctx context.Context, snapshot *entity.Snapshot) error {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	if err = that.kv.Set(ctx, sessionKey, string(snapshotJSON)); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (that *dbSession) Get(ctx context.Context) (*entity.Snapshot, error) {
	response, err := that.kv.Get(ctx, sessionKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var snapshot entity.Snapshot
	if err = json.Unmarshal([]byte(response), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if err = snapshot.Validate(); err != nil {
		return nil, err
	}

	return &snapshot, nil
}

func (that *dbSession) Delete(ctx context.Context) error {
	if err := that.kv.Remove(ctx, sessionKey); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
