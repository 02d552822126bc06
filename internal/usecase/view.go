package usecase

import (
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

// SessionView is an immutable copy of the session for rendering.
type SessionView struct {
	State         entity.SessionState
	Board         entity.Board
	CurrentPlayer string
	Score         entity.Score
	PlayerX       string
	PlayerO       string
	Leaderboard   []entity.GameResult
}

func (that SessionView) NameOf(mark string) string {
	if mark == entity.PlayerX {
		return that.PlayerX
	}
	return that.PlayerO
}

func (that SessionView) Winner() string {
	return tictactoe.DetectWinner(that.Board)
}

func (that SessionView) IsDraw() bool {
	return tictactoe.IsDraw(that.Board)
}

// Status is the line shown above the board.
func (that SessionView) Status() string {
	switch outcome := tictactoe.Outcome(that.Board); outcome {
	case entity.PlayerX, entity.PlayerO:
		return "Winner: " + that.NameOf(outcome) + "!"
	case entity.PlayerTie:
		return "It's a Draw!"
	default:
		return "Next Player: " + that.NameOf(that.CurrentPlayer)
	}
}
