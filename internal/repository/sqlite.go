package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
)

type sqliteGame struct {
	storage *storage.Storage
}

// NewSQLiteGameRepository writes one row per finished game into the
// game_states table, with the board serialized as JSON.
func NewSQLiteGameRepository(st *storage.Storage) GameRepository {
	return &sqliteGame{
		storage: st,
	}
}

func (that *sqliteGame) Save(ctx context.Context, state *entity.GameState) error {
	boardJSON, err := json.Marshal(state.Board)
	if err != nil {
		return fmt.Errorf("could not marshal board: %w", err)
	}

	query := `INSERT INTO game_states (id, board, current_player, move_count) VALUES (?, ?, ?, ?)`

	_, err = that.storage.Connection.ExecContext(ctx, query,
		uuid.NewString(), string(boardJSON), state.Turn, state.MoveCount)
	if err != nil {
		return fmt.Errorf("failed to insert game state: %w", err)
	}

	return nil
}
