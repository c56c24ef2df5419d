package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

//nolint:gosec // game moves don't need a crypto source
var defaultRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// TryRandomMove plays a uniformly random empty cell for mark, using the
// supplied source. Given the same source state and board, the choice is
// reproducible.
func TryRandomMove(state entity.GameState, rng *rand.Rand, mark string) (entity.GameState, error) {
	cells := state.Board.EmptyCells()
	if len(cells) == 0 {
		return entity.GameState{}, apperror.ErrNoAvailableMoves
	}

	cell := cells[rng.Intn(len(cells))]

	next, err := state.TryMove(cell[0], cell[1], mark)
	if err != nil {
		return entity.GameState{}, fmt.Errorf("random move: %w", err)
	}

	return next, nil
}

// TryMediumMove plays, in strict priority order: an immediate winning move
// for mark, then a block of the opponent's immediate winning move, then a
// random empty cell.
func TryMediumMove(state entity.GameState, mark string) (entity.GameState, error) {
	if next, err := tryWinningMove(state, mark); err == nil {
		return next, nil
	}

	opponent := entity.ToggleMark(mark)
	if next, err := findBlockingMove(state, opponent, mark); err == nil {
		return next, nil
	}

	return TryRandomMove(state, defaultRand, mark)
}

// TryHardMove behaves exactly like TryMediumMove.
//
// TODO: replace with a minimax search for an unbeatable opponent. Until
// then the medium strategy stands in, and the equivalence is part of the
// tested contract.
func TryHardMove(state entity.GameState, mark string) (entity.GameState, error) {
	return TryMediumMove(state, mark)
}

// tryWinningMove returns the state after the first move, in row-major
// order over empty cells, that wins the game for mark.
func tryWinningMove(state entity.GameState, mark string) (entity.GameState, error) {
	for _, cell := range state.Board.EmptyCells() {
		next, err := state.TryMove(cell[0], cell[1], mark)
		if err != nil {
			return entity.GameState{}, fmt.Errorf("probe winning move: %w", err)
		}

		if next.Board.HasWon(mark) {
			return next, nil
		}
	}

	return entity.GameState{}, apperror.ErrNoAvailableMoves
}

// findBlockingMove finds the first empty cell, in row-major order, where
// the opponent would win, and occupies it with ownMark instead.
func findBlockingMove(state entity.GameState, opponentMark, ownMark string) (entity.GameState, error) {
	for _, cell := range state.Board.EmptyCells() {
		probe, err := state.TryMove(cell[0], cell[1], opponentMark)
		if err != nil {
			return entity.GameState{}, fmt.Errorf("probe blocking move: %w", err)
		}

		if !probe.Board.HasWon(opponentMark) {
			continue
		}

		next, err := state.TryMove(cell[0], cell[1], ownMark)
		if err != nil {
			return entity.GameState{}, fmt.Errorf("apply blocking move: %w", err)
		}

		return next, nil
	}

	return entity.GameState{}, apperror.ErrNoAvailableMoves
}

// BotService picks and applies a move for an automated player.
type BotService interface {
	MakeTurn(state entity.GameState, player entity.Player) (entity.GameState, error)
}

type botService struct {
	rng *rand.Rand
}

func NewBotService() BotService {
	return &botService{rng: defaultRand}
}

func (that *botService) MakeTurn(state entity.GameState, player entity.Player) (entity.GameState, error) {
	switch player.Kind {
	case entity.KindEasy:
		return TryRandomMove(state, that.rng, player.Mark)
	case entity.KindMedium:
		return TryMediumMove(state, player.Mark)
	case entity.KindHard:
		return TryHardMove(state, player.Mark)
	default:
		return entity.GameState{}, fmt.Errorf("%w: %q is not automated", apperror.ErrUnknownPlayerKind, player.Kind)
	}
}
