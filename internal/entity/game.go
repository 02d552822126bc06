package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// SessionState is the screen the session is currently on.
type SessionState string

const (
	StateWelcome SessionState = "welcome"
	StatePlaying SessionState = "playing"
	StateEnded   SessionState = "ended"
)

func (that SessionState) IsValid() bool {
	switch that {
	case StateWelcome, StatePlaying, StateEnded:
		return true
	default:
		return false
	}
}

// Board holds the nine cells in row-major order.
type Board [9]string

func NewBoard() Board {
	return Board{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell}
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that Board) IsEmpty() bool {
	for _, cell := range that {
		if cell != EmptyCell {
			return false
		}
	}

	return true
}

// Score counts wins per mark for the running session.
type Score struct {
	X int `json:"X"`
	O int `json:"O"`
}

func (that *Score) Increment(mark string) {
	switch mark {
	case PlayerX:
		that.X++
	case PlayerO:
		that.O++
	}
}

func (that Score) Of(mark string) int {
	switch mark {
	case PlayerX:
		return that.X
	case PlayerO:
		return that.O
	default:
		return 0
	}
}

// Snapshot is the persisted form of an in-progress session.
type Snapshot struct {
	GameState     SessionState `json:"gameState"`
	Board         Board        `json:"board"`
	CurrentPlayer string       `json:"currentPlayer"`
	Score         Score        `json:"score"`
	PlayerX       string       `json:"playerX"`
	PlayerO       string       `json:"playerO"`
}

func (that *Snapshot) Validate() error {
	if !that.GameState.IsValid() {
		return fmt.Errorf("%w: unknown game state %q", apperror.ErrInvalidSnapshot, that.GameState)
	}

	if that.CurrentPlayer != PlayerX && that.CurrentPlayer != PlayerO {
		return fmt.Errorf("%w: unknown current player %q", apperror.ErrInvalidSnapshot, that.CurrentPlayer)
	}

	for idx, cell := range that.Board {
		if cell != EmptyCell && cell != PlayerX && cell != PlayerO {
			return fmt.Errorf("%w: cell %d holds %q", apperror.ErrInvalidSnapshot, idx, cell)
		}
	}

	if that.Score.X < 0 || that.Score.O < 0 {
		return fmt.Errorf("%w: negative score", apperror.ErrInvalidSnapshot)
	}

	return nil
}
