package console

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
)

func newTestConsole(input string, games repository.GameRepository) (*Console, *strings.Builder) {
	out := &strings.Builder{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if games == nil {
		games = repository.NewNoopGameRepository()
	}

	return New(logger, strings.NewReader(input), out, games, entity.DefaultBoardSize), out
}

// recordingRepository captures the states handed to Save.
type recordingRepository struct {
	saved []entity.GameState
}

func (that *recordingRepository) Save(_ context.Context, state *entity.GameState) error {
	that.saved = append(that.saved, *state)
	return nil
}

func TestConsole_Run(t *testing.T) {
	t.Run("Exit command stops the loop", func(t *testing.T) {
		term, out := newTestConsole("exit\n", nil)

		err := term.Run(context.Background())

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Input command: ")
		assert.Contains(t, out.String(), "Exiting...")
	})

	t.Run("Bad command prints the usage hint", func(t *testing.T) {
		term, out := newTestConsole("begin user easy\nexit\n", nil)

		err := term.Run(context.Background())

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Bad parameters! Expected: start <player1> <player2>")
		assert.Contains(t, out.String(), "Available types: user, easy, medium, hard")
	})

	t.Run("End of input stops the loop", func(t *testing.T) {
		term, _ := newTestConsole("", nil)

		err := term.Run(context.Background())

		require.NoError(t, err)
	})

	t.Run("Cancelled context stops the loop", func(t *testing.T) {
		term, _ := newTestConsole("start easy easy\nexit\n", nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := term.Run(ctx)

		require.NoError(t, err)
	})

	t.Run("Human versus human match to a win", func(t *testing.T) {
		// X takes the top row while O answers on the middle row.
		input := strings.Join([]string{
			"start user user",
			"1 1",
			"2 1",
			"1 2",
			"2 2",
			"1 3",
			"exit",
		}, "\n") + "\n"

		games := &recordingRepository{}
		term, out := newTestConsole(input, games)

		err := term.Run(context.Background())
		require.NoError(t, err)

		// Then: X wins and the final state went to the archive
		assert.Contains(t, out.String(), "X wins")
		require.Len(t, games.saved, 1)
		assert.Equal(t, 5, games.saved[0].MoveCount)
		assert.True(t, games.saved[0].Board.HasWon(entity.PlayerX))
	})

	t.Run("Rejected coordinates ask again", func(t *testing.T) {
		input := strings.Join([]string{
			"start user user",
			"9 9",
			"abc",
			"1 1",
			"2 1",
			"1 2",
			"2 2",
			"1 3",
			"exit",
		}, "\n") + "\n"

		term, out := newTestConsole(input, nil)

		err := term.Run(context.Background())
		require.NoError(t, err)

		assert.Contains(t, out.String(), "You should enter numbers from 1 to 3!")
		assert.Contains(t, out.String(), "X wins")
	})

	t.Run("Bot match runs to a terminal state", func(t *testing.T) {
		games := &recordingRepository{}
		term, out := newTestConsole("start easy medium\nexit\n", games)

		err := term.Run(context.Background())
		require.NoError(t, err)

		// Then: the match ended with one of the three literal outcomes
		output := out.String()
		ended := strings.Contains(output, "X wins") ||
			strings.Contains(output, "O wins") ||
			strings.Contains(output, "Draw")
		assert.True(t, ended, "expected a terminal outcome in output:\n%s", output)

		assert.Contains(t, output, `Making move level "easy"`)
		assert.Contains(t, output, `Making move level "medium"`)
		require.Len(t, games.saved, 1)
	})

	t.Run("Board is printed before every turn", func(t *testing.T) {
		term, out := newTestConsole("start easy easy\nexit\n", nil)

		err := term.Run(context.Background())
		require.NoError(t, err)

		// The empty board appears at least once, borders once per print.
		output := out.String()
		assert.Contains(t, output, "---------")
		assert.Contains(t, output, "|       |")
	})
}
