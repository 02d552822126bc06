package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

// ReplayPolicy decides what happens to the running score when a new round is
// started from the playing or ended screen. Starting from welcome always begins at zero.
type ReplayPolicy int

const (
	KeepScoreOnReplay ReplayPolicy = iota
	ResetScoreOnReplay
)

type gameStorage interface {
	SaveSession(ctx context.Context, snapshot entity.Snapshot)
	LoadSession(ctx context.Context) (entity.Snapshot, bool)
	ClearSession(ctx context.Context)

	AppendLeaderboardEntry(ctx context.Context, result entity.GameResult)
	LoadLeaderboard(ctx context.Context) []entity.GameResult
}

type Option func(*SessionController)

func WithClock(clock func() time.Time) Option {
	return func(that *SessionController) {
		that.clock = clock
	}
}

func WithReplayPolicy(policy ReplayPolicy) Option {
	return func(that *SessionController) {
		that.policy = policy
	}
}

// WithOnStateChanged registers a listener called with the snapshot after every
// transition, once it has been handed to storage.
func WithOnStateChanged(listener func(ctx context.Context, snapshot entity.Snapshot)) Option {
	return func(that *SessionController) {
		that.listeners = append(that.listeners, listener)
	}
}

// SessionController owns the whole session: screen state, board, turn, score,
// player names and the in-memory leaderboard. Transitions are serialized;
// View never waits for storage.
type SessionController struct {
	logger  *slog.Logger
	storage gameStorage
	clock   func() time.Time
	policy  ReplayPolicy

	listeners []func(ctx context.Context, snapshot entity.Snapshot)

	mu            sync.Mutex
	state         entity.SessionState
	board         entity.Board
	currentPlayer string
	score         entity.Score
	playerX       string
	playerO       string
	leaderboard   []entity.GameResult

	view atomic.Pointer[SessionView]
}

func NewSessionController(logger *slog.Logger, storage gameStorage, opts ...Option) *SessionController {
	that := &SessionController{
		logger:  logger.With("component", "session"),
		storage: storage,
		clock:   time.Now,
		policy:  KeepScoreOnReplay,
	}

	for _, opt := range opts {
		opt(that)
	}

	that.resetAll()
	that.publish()

	return that
}

// Load restores the persisted snapshot and leaderboard. Missing records leave the defaults.
func (that *SessionController) Load(ctx context.Context) {
	log := that.logger.With("method", "Load")

	that.mu.Lock()
	defer that.mu.Unlock()

	if snapshot, ok := that.storage.LoadSession(ctx); ok {
		that.state = snapshot.GameState
		that.board = snapshot.Board
		that.currentPlayer = snapshot.CurrentPlayer
		that.score = snapshot.Score
		that.playerX = snapshot.PlayerX
		that.playerO = snapshot.PlayerO

		log.Info("session restored", "state", that.state, "playerX", that.playerX, "playerO", that.playerO)
	}

	that.leaderboard = that.storage.LoadLeaderboard(ctx)
	that.publish()
}

// SetPlayerNames updates the names typed on the welcome screen.
func (that *SessionController) SetPlayerNames(playerX, playerO string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state != entity.StateWelcome {
		return apperror.ErrNamesLocked
	}

	that.playerX = strings.TrimSpace(playerX)
	that.playerO = strings.TrimSpace(playerO)
	that.publish()

	return nil
}

// StartNewGame begins a fresh round. Both names must be set; otherwise nothing changes.
func (that *SessionController) StartNewGame(ctx context.Context) error {
	log := that.logger.With("method", "StartNewGame")

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.playerX == "" || that.playerO == "" {
		return apperror.ErrMissingPlayerName
	}

	switch {
	case that.state == entity.StateWelcome:
		that.score = entity.Score{}
	case that.policy == ResetScoreOnReplay:
		that.score = entity.Score{}
	}

	that.storage.ClearSession(ctx)

	that.board = entity.NewBoard()
	that.currentPlayer = entity.PlayerX
	that.state = entity.StatePlaying

	log.Info("game started", "playerX", that.playerX, "playerO", that.playerO, "scoreX", that.score.X, "scoreO", that.score.O)

	that.stateChanged(ctx)

	return nil
}

// CellTap places the current player's mark. Occupied cells and decided boards
// are rejected with the engine error and leave the session untouched.
func (that *SessionController) CellTap(ctx context.Context, cell int) error {
	log := that.logger.With("method", "CellTap")

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state != entity.StatePlaying {
		return apperror.ErrGameIsNotStarted
	}

	board, err := tictactoe.ApplyMove(that.board, cell, that.currentPlayer)
	if err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.board = board

	if winner := tictactoe.DetectWinner(board); winner != entity.EmptyCell {
		that.score.Increment(winner)
		log.Info("round won", "winner", winner, "scoreX", that.score.X, "scoreO", that.score.O)
	} else {
		that.currentPlayer = tictactoe.NextPlayer(that.currentPlayer)
		log.Debug("turn made", "cell", cell, "next", that.currentPlayer)
	}

	that.stateChanged(ctx)

	return nil
}

// EndGame records the current round on the leaderboard and moves to the end screen.
// The score is kept for display.
func (that *SessionController) EndGame(ctx context.Context) (entity.GameResult, error) {
	log := that.logger.With("method", "EndGame")

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state != entity.StatePlaying {
		return entity.GameResult{}, apperror.ErrGameIsNotStarted
	}

	result := that.buildResult()

	that.storage.AppendLeaderboardEntry(ctx, result)
	that.leaderboard = that.storage.LoadLeaderboard(ctx)

	that.state = entity.StateEnded
	that.board = entity.NewBoard()
	that.currentPlayer = entity.PlayerX

	log.Info("game ended", "draw", result.IsDraw(), "scoreX", result.ScoreX, "scoreO", result.ScoreO)

	that.stateChanged(ctx)

	return result, nil
}

// ResetToWelcome leaves the end screen and forgets the session.
func (that *SessionController) ResetToWelcome(ctx context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state != entity.StateEnded {
		return apperror.ErrGameIsNotEnded
	}

	that.resetAll()
	that.storage.ClearSession(ctx)
	that.publish()

	that.logger.Info("session reset", "method", "ResetToWelcome")

	return nil
}

// View returns the latest published state.
func (that *SessionController) View() SessionView {
	return *that.view.Load()
}

func (that *SessionController) buildResult() entity.GameResult {
	result := entity.GameResult{
		Timestamp: that.clock().UTC(),
		PlayerX:   that.playerX,
		PlayerO:   that.playerO,
		ScoreX:    that.score.X,
		ScoreO:    that.score.O,
	}

	if winner := tictactoe.DetectWinner(that.board); winner != entity.EmptyCell {
		result.Winner = &entity.Player{
			Name:   that.nameOf(winner),
			Symbol: winner,
		}
	}

	return result
}

func (that *SessionController) nameOf(mark string) string {
	if mark == entity.PlayerX {
		return that.playerX
	}
	return that.playerO
}

func (that *SessionController) resetAll() {
	that.state = entity.StateWelcome
	that.board = entity.NewBoard()
	that.currentPlayer = entity.PlayerX
	that.score = entity.Score{}
	that.playerX = ""
	that.playerO = ""
}

func (that *SessionController) snapshot() entity.Snapshot {
	return entity.Snapshot{
		GameState:     that.state,
		Board:         that.board,
		CurrentPlayer: that.currentPlayer,
		Score:         that.score,
		PlayerX:       that.playerX,
		PlayerO:       that.playerO,
	}
}

// stateChanged publishes the new view and persists the snapshot. Caller holds mu.
func (that *SessionController) stateChanged(ctx context.Context) {
	that.publish()

	snapshot := that.snapshot()
	that.storage.SaveSession(ctx, snapshot)

	for _, listener := range that.listeners {
		listener(ctx, snapshot)
	}
}

func (that *SessionController) publish() {
	leaderboard := make([]entity.GameResult, len(that.leaderboard))
	copy(leaderboard, that.leaderboard)

	that.view.Store(&SessionView{
		State:         that.state,
		Board:         that.board,
		CurrentPlayer: that.currentPlayer,
		Score:         that.score,
		PlayerX:       that.playerX,
		PlayerO:       that.playerO,
		Leaderboard:   leaderboard,
	})
}
