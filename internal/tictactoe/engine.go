// Package tictactoe holds the pure board rules: applying a move, finding a
// winning line, detecting a draw and passing the turn.
package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

var (
	ErrInvalidCell = errors.New("invalid cell index")
	ErrInvalidMark = errors.New("invalid player mark")

	// WinCombos are checked in this order: rows, columns, diagonals.
	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// ApplyMove returns a copy of board with cell set to mark. On any error the
// input board is returned unchanged.
func ApplyMove(board entity.Board, cell int, mark string) (entity.Board, error) {
	if err := validateMove(board, cell, mark); err != nil {
		return board, fmt.Errorf("invalid turn: %w", err)
	}

	next := board
	next[cell] = mark

	return next, nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, cell int, mark string) error {
	if cell < 0 || cell >= len(board) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if mark != entity.PlayerX && mark != entity.PlayerO {
		return fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}

	if DetectWinner(board) != entity.EmptyCell {
		return apperror.ErrGameFinished
	}

	if board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// DetectWinner returns the mark on the first complete line, or EmptyCell.
func DetectWinner(board entity.Board) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	return entity.EmptyCell
}

func IsDraw(board entity.Board) bool {
	return DetectWinner(board) == entity.EmptyCell && board.IsFull()
}

// Outcome reports the winner, PlayerTie for a draw, or EmptyCell while the round is open.
func Outcome(board entity.Board) string {
	if winner := DetectWinner(board); winner != entity.EmptyCell {
		return winner
	}

	if board.IsFull() {
		return entity.PlayerTie
	}

	return entity.EmptyCell
}

func NextPlayer(currentMark string) string {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}
