package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/command"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
)

// Console drives the line-based menu and match loop. It owns no game
// logic: parsing, moves and strategies all go through the core packages,
// and finished games are handed to the repository.
type Console struct {
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer

	games repository.GameRepository
	bots  service.BotService

	boardSize int
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, games repository.GameRepository, boardSize int) *Console {
	return &Console{
		logger:    logger.With("component", "console"),
		in:        bufio.NewScanner(in),
		out:       out,
		games:     games,
		bots:      service.NewBotService(),
		boardSize: boardSize,
	}
}

// Run reads commands until "exit" or end of input. A valid match command
// plays one full match; anything else prints a usage hint.
func (that *Console) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(that.out, "Input command: ")

		line, ok := that.readLine()
		if !ok {
			return nil
		}

		if line == "exit" {
			fmt.Fprintln(that.out, "Exiting...")
			return nil
		}

		config, err := command.ParseMatchCommand(line)
		if err != nil {
			fmt.Fprintln(that.out, "Bad parameters! Expected: start <player1> <player2>")
			fmt.Fprintln(that.out, "Available types: user, easy, medium, hard")
			continue
		}

		if err = that.playMatch(ctx, config); err != nil {
			return fmt.Errorf("match failed: %w", err)
		}
	}
}

// playMatch runs one match to its terminal condition. Wins are checked
// before the draw condition, so a winning final move never reports a draw.
func (that *Console) playMatch(ctx context.Context, config entity.MatchConfig) error {
	state, err := entity.NewGameState(that.boardSize)
	if err != nil {
		return fmt.Errorf("could not create game state: %w", err)
	}

	for {
		fmt.Fprintln(that.out, state.Board.Format())

		if outcome, finished := matchOutcome(state, config); finished {
			fmt.Fprintln(that.out, outcome)
			that.archive(ctx, state)

			return nil
		}

		current := config.CurrentPlayer(state)

		if current.Kind.IsBot() {
			next, err := that.botTurn(state, current)
			if err != nil {
				return fmt.Errorf("bot turn failed: %w", err)
			}

			state = next

			continue
		}

		next, ok := that.humanTurn(state)
		if !ok {
			return nil
		}

		state = next
	}
}

func (that *Console) botTurn(state entity.GameState, player entity.Player) (entity.GameState, error) {
	fmt.Fprintf(that.out, "Making move level %q\n", string(player.Kind))

	return that.bots.MakeTurn(state, player)
}

// humanTurn prompts until the player enters a move the engine accepts.
// The second return value is false once the input is exhausted.
func (that *Console) humanTurn(state entity.GameState) (entity.GameState, bool) {
	for {
		fmt.Fprint(that.out, "Enter the coordinates: ")

		line, ok := that.readLine()
		if !ok {
			return entity.GameState{}, false
		}

		next, err := command.ParseMoveInput(state, line)
		if err != nil {
			fmt.Fprintf(that.out, "You should enter numbers from 1 to %d!\n", state.Board.Size())
			continue
		}

		return next, true
	}
}

func (that *Console) archive(ctx context.Context, state entity.GameState) {
	if err := that.games.Save(ctx, &state); err != nil {
		that.logger.Error("could not save finished game", "error", err)
	}
}

func (that *Console) readLine() (string, bool) {
	if !that.in.Scan() {
		return "", false
	}

	return that.in.Text(), true
}

// matchOutcome reports the terminal result of a state, if any.
func matchOutcome(state entity.GameState, config entity.MatchConfig) (string, bool) {
	if state.Board.HasWon(config.PlayerX.Mark) {
		return config.PlayerX.Mark + " wins", true
	}

	if state.Board.HasWon(config.PlayerO.Mark) {
		return config.PlayerO.Mark + " wins", true
	}

	if state.IsDraw() {
		return "Draw", true
	}

	return "", false
}
