package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// PlayerKind tells how moves for a player are produced: typed in by a
// human or picked by one of the bot strategies.
type PlayerKind string

const (
	KindUser   PlayerKind = "user"
	KindEasy   PlayerKind = "easy"
	KindMedium PlayerKind = "medium"
	KindHard   PlayerKind = "hard"
)

// IsBot reports whether the player moves automatically.
func (that PlayerKind) IsBot() bool {
	return that != KindUser
}

// ParsePlayerKind maps a lowercase kind token to its PlayerKind.
func ParsePlayerKind(raw string) (PlayerKind, error) {
	switch raw {
	case "user":
		return KindUser, nil
	case "easy":
		return KindEasy, nil
	case "medium":
		return KindMedium, nil
	case "hard":
		return KindHard, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownPlayerKind, raw)
	}
}

// Player is one side of a match, built once from a parsed command.
type Player struct {
	Name string     `json:"name"`
	Mark string     `json:"mark"`
	Kind PlayerKind `json:"kind"`
}

// MatchConfig pairs the two players of a match, one per mark.
type MatchConfig struct {
	PlayerX Player `json:"player_x"`
	PlayerO Player `json:"player_o"`
}

// CurrentPlayer returns the player whose mark matches the state's turn.
func (that MatchConfig) CurrentPlayer(state GameState) Player {
	if state.Turn == that.PlayerX.Mark {
		return that.PlayerX
	}

	return that.PlayerO
}
