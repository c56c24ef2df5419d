package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// GameRepository archives finished games. Failures are reported to the
// caller but are never fatal to a match.
type GameRepository interface {
	Save(ctx context.Context, state *entity.GameState) error
}

type redisGame struct {
	client *redis.Client
}

// NewRedisGameRepository stores each finished game as a JSON document
// under a fresh "game:<id>" key.
func NewRedisGameRepository(client *redis.Client) GameRepository {
	return &redisGame{
		client: client,
	}
}

func (that *redisGame) Save(ctx context.Context, state *entity.GameState) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("could not marshal game state: %w", err)
	}

	gameKey := "game:" + uuid.NewString()

	if err = that.client.Set(ctx, gameKey, stateJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game state: %w", err)
	}

	return nil
}

type noopGame struct{}

// NewNoopGameRepository discards everything. It backs the "none" storage
// backend so the game runs without any infrastructure.
func NewNoopGameRepository() GameRepository {
	return noopGame{}
}

func (noopGame) Save(_ context.Context, _ *entity.GameState) error {
	return nil
}
