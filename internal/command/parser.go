package command

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var (
	matchCommandPattern = regexp.MustCompile(`^start (user|easy|medium|hard) (user|easy|medium|hard)$`)
	moveInputPattern    = regexp.MustCompile(`^([1-9]) ([1-9])$`)
)

// ParseMatchCommand turns a "start <kind> <kind>" line into a MatchConfig.
// Kinds must be lowercase, separated by single spaces, with nothing else on
// the line. Player 1 always takes X, player 2 takes O.
func ParseMatchCommand(input string) (entity.MatchConfig, error) {
	if !matchCommandPattern.MatchString(input) {
		return entity.MatchConfig{}, fmt.Errorf("%w: %q", apperror.ErrInvalidCommand, input)
	}

	parts := strings.Split(input, " ")

	kindX, err := entity.ParsePlayerKind(parts[1])
	if err != nil {
		return entity.MatchConfig{}, fmt.Errorf("%w: %q", apperror.ErrInvalidCommand, input)
	}

	kindO, err := entity.ParsePlayerKind(parts[2])
	if err != nil {
		return entity.MatchConfig{}, fmt.Errorf("%w: %q", apperror.ErrInvalidCommand, input)
	}

	return entity.MatchConfig{
		PlayerX: entity.Player{Name: "Player 1", Mark: entity.PlayerX, Kind: kindX},
		PlayerO: entity.Player{Name: "Player 2", Mark: entity.PlayerO, Kind: kindO},
	}, nil
}

// ParseMoveInput turns a "<row> <col>" line of 1-based coordinates into a
// move for the state's current turn mark. Coordinates are single digits
// from 1 to the board size, separated by exactly one space.
func ParseMoveInput(state entity.GameState, input string) (entity.GameState, error) {
	parts := moveInputPattern.FindStringSubmatch(input)
	if parts == nil {
		return entity.GameState{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMoveInput, input)
	}

	row, err := strconv.Atoi(parts[1])
	if err != nil {
		return entity.GameState{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMoveInput, input)
	}

	col, err := strconv.Atoi(parts[2])
	if err != nil {
		return entity.GameState{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMoveInput, input)
	}

	size := state.Board.Size()
	if row > size || col > size {
		return entity.GameState{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMoveInput, input)
	}

	next, err := state.TryMove(row-1, col-1, state.Turn)
	if err != nil {
		return entity.GameState{}, fmt.Errorf("could not apply move: %w", err)
	}

	return next, nil
}
