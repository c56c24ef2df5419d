package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	// DefaultBoardSize is the classic 3x3 grid.
	DefaultBoardSize = 3

	// maxBoardSize keeps coordinates to a single digit so the
	// "<row> <col>" input format stays unambiguous.
	maxBoardSize = 9
)

// Board is a square grid of cells in row-major order. A cell holds
// a player mark or EmptyCell. Boards are treated as immutable: every
// operation that changes a cell works on a fresh copy.
type Board [][]string

// NewBoard returns an empty size x size board. Each row is allocated
// independently so rows never share storage.
func NewBoard(size int) (Board, error) {
	if size < 1 || size > maxBoardSize {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	board := make(Board, size)
	for row := range board {
		board[row] = make([]string, size)
	}

	return board, nil
}

// Size returns the side length of the board.
func (that Board) Size() int {
	return len(that)
}

// Clone returns a deep copy sharing no storage with the original.
func (that Board) Clone() Board {
	clone := make(Board, len(that))
	for row := range that {
		clone[row] = make([]string, len(that[row]))
		copy(clone[row], that[row])
	}

	return clone
}

// EmptyCells returns the coordinates of every empty cell in row-major order.
func (that Board) EmptyCells() [][2]int {
	cells := make([][2]int, 0, len(that)*len(that))
	for row := range that {
		for col := range that[row] {
			if that[row][col] == EmptyCell {
				cells = append(cells, [2]int{row, col})
			}
		}
	}

	return cells
}

// HasWon reports whether any full row, full column, the main diagonal
// or the anti-diagonal consists entirely of the given mark.
func (that Board) HasWon(mark string) bool {
	size := len(that)

	for row := 0; row < size; row++ {
		if that.lineFilled(mark, func(i int) (int, int) { return row, i }) {
			return true
		}
	}

	for col := 0; col < size; col++ {
		if that.lineFilled(mark, func(i int) (int, int) { return i, col }) {
			return true
		}
	}

	if that.lineFilled(mark, func(i int) (int, int) { return i, i }) {
		return true
	}

	return that.lineFilled(mark, func(i int) (int, int) { return i, size - 1 - i })
}

func (that Board) lineFilled(mark string, cell func(i int) (int, int)) bool {
	for i := 0; i < len(that); i++ {
		row, col := cell(i)
		if that[row][col] != mark {
			return false
		}
	}

	return true
}

// Format renders the board as a bordered multi-line string, one line per
// row between two border lines. Empty cells print as a single space.
func (that Board) Format() string {
	border := strings.Repeat("-", 3*len(that))

	lines := make([]string, 0, len(that)+2)
	lines = append(lines, border)

	for _, row := range that {
		cells := make([]string, len(row))
		for i, cell := range row {
			if cell == EmptyCell {
				cells[i] = " "
			} else {
				cells[i] = cell
			}
		}
		lines = append(lines, "| "+strings.Join(cells, " ")+" |")
	}

	lines = append(lines, border)

	return strings.Join(lines, "\n")
}

// ToggleMark returns the other of the two fixed marks.
func ToggleMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}

	return PlayerX
}
