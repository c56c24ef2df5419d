package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

func TestParseMatchCommand(t *testing.T) {
	t.Run("Human versus easy bot", func(t *testing.T) {
		// When: parsing a well-formed start command
		config, err := ParseMatchCommand("start user easy")

		// Then: player 1 is the human with X, player 2 the easy bot with O
		require.NoError(t, err)
		assert.Equal(t, entity.Player{Name: "Player 1", Mark: entity.PlayerX, Kind: entity.KindUser}, config.PlayerX)
		assert.Equal(t, entity.Player{Name: "Player 2", Mark: entity.PlayerO, Kind: entity.KindEasy}, config.PlayerO)
	})

	t.Run("All kind combinations parse", func(t *testing.T) {
		for _, kind1 := range []string{"user", "easy", "medium", "hard"} {
			for _, kind2 := range []string{"user", "easy", "medium", "hard"} {
				_, err := ParseMatchCommand("start " + kind1 + " " + kind2)
				assert.NoError(t, err, "start %s %s", kind1, kind2)
			}
		}
	})

	t.Run("Malformed commands are rejected", func(t *testing.T) {
		for _, input := range []string{
			"",
			"start",
			"start user",
			"start USER easy",
			"start user Easy",
			"begin user easy",
			"start user easy extra",
			"start  user easy",
			"start user  easy",
			" start user easy",
			"start user easy ",
			"start user robot",
			"exit",
		} {
			_, err := ParseMatchCommand(input)
			assert.ErrorIs(t, err, apperror.ErrInvalidCommand, "input %q", input)
		}
	})
}

func TestParseMoveInput(t *testing.T) {
	newState := func(t *testing.T) entity.GameState {
		t.Helper()

		state, err := entity.NewGameState(entity.DefaultBoardSize)
		require.NoError(t, err)

		return state
	}

	t.Run("One-based coordinates map to zero-based cells", func(t *testing.T) {
		state := newState(t)

		// When: the player enters "1 1"
		next, err := ParseMoveInput(state, "1 1")

		// Then: the move lands on (0, 0) with the current turn's mark
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, next.Board[0][0])
		assert.Equal(t, entity.PlayerO, next.Turn)
	})

	t.Run("Uses the state's current mark", func(t *testing.T) {
		state := newState(t)

		state, err := state.TryMove(0, 0, entity.PlayerX)
		require.NoError(t, err)

		// When: the next player enters a move
		next, err := ParseMoveInput(state, "3 3")

		// Then: it is O's mark that lands
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, next.Board[2][2])
	})

	t.Run("Malformed input is rejected", func(t *testing.T) {
		state := newState(t)

		for _, input := range []string{
			"",
			"abc",
			"1",
			"0 1",
			"1 0",
			"1 4",
			"4 1",
			"1  2",
			" 1 2",
			"1 2 ",
			"1,2",
			"1.0 2",
			"-1 2",
			"1 2 3",
		} {
			_, err := ParseMoveInput(state, input)
			assert.ErrorIs(t, err, apperror.ErrInvalidMoveInput, "input %q", input)
		}
	})

	t.Run("Occupied cell is rejected by the engine", func(t *testing.T) {
		state := newState(t)

		state, err := state.TryMove(0, 0, entity.PlayerX)
		require.NoError(t, err)

		// When: the next player targets the taken cell
		_, err = ParseMoveInput(state, "1 1")

		// Then: the engine rejection surfaces through the parser
		assert.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Digits above the board size are rejected", func(t *testing.T) {
		state, err := entity.NewGameState(4)
		require.NoError(t, err)

		// "4 4" is in range on a 4x4 board, "5 1" is not
		_, err = ParseMoveInput(state, "4 4")
		require.NoError(t, err)

		_, err = ParseMoveInput(state, "5 1")
		assert.ErrorIs(t, err, apperror.ErrInvalidMoveInput)
	})
}
