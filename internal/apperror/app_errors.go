package apperror

import "errors"

var (
	ErrGameFinished       = errors.New("game is already finished")
	ErrGameIsNotStarted   = errors.New("game is not started")
	ErrGameIsNotEnded     = errors.New("game is not ended")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrMissingPlayerName  = errors.New("please enter names for both players")
	ErrNamesLocked        = errors.New("player names can only be changed on the welcome screen")
	ErrInvalidSnapshot    = errors.New("invalid session snapshot")
	ErrUnknownStorageType = errors.New("unknown storage driver")
)
