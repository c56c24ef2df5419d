package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// GameState is an immutable snapshot of a match: the board, whose turn it
// is, and how many moves have been played. Operations never modify the
// receiver; a successful move returns a brand new state.
type GameState struct {
	Board     Board  `json:"board"`
	Turn      string `json:"turn"`
	MoveCount int    `json:"move_count"`
}

// NewGameState returns the starting state: an empty board, X to move,
// zero moves played.
func NewGameState(size int) (GameState, error) {
	board, err := NewBoard(size)
	if err != nil {
		return GameState{}, fmt.Errorf("could not create board: %w", err)
	}

	return GameState{Board: board, Turn: PlayerX}, nil
}

// TryMove places mark at (row, col) and returns the resulting state.
// It fails on out-of-bounds coordinates or an occupied cell, leaving the
// receiver untouched.
//
// The turn always flips between the two fixed marks, no matter which mark
// was passed in. The engine does not check that mark equals Turn; callers
// that want turn order pass state.Turn themselves.
func (that GameState) TryMove(row, col int, mark string) (GameState, error) {
	size := that.Board.Size()
	if row < 0 || row >= size || col < 0 || col >= size {
		return GameState{}, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, row, col)
	}

	if that.Board[row][col] != EmptyCell {
		return GameState{}, fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	board := that.Board.Clone()
	board[row][col] = mark

	return GameState{
		Board:     board,
		Turn:      ToggleMark(that.Turn),
		MoveCount: that.MoveCount + 1,
	}, nil
}

// IsDraw reports whether the board is full. It looks only at the move
// count, so callers must check for wins first.
func (that GameState) IsDraw() bool {
	size := that.Board.Size()

	return that.MoveCount == size*size
}
