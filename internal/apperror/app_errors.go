package apperror

import "errors"

var (
	ErrInvalidBoardSize  = errors.New("invalid board size")
	ErrInvalidCell       = errors.New("invalid cell coordinates")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrInvalidCommand    = errors.New("invalid command")
	ErrInvalidMoveInput  = errors.New("invalid move input")
	ErrUnknownPlayerKind = errors.New("unknown player kind")
)
