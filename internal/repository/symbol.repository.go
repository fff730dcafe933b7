package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const trackedSymbolsKey = "findata:symbols"

// SymbolRepository persists symbols added at runtime so they survive
// restarts. Order of insertion is kept.
type SymbolRepository interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, symbol string) error
}

type redisSymbolRepositoryHandler struct {
	Client *redis.Client
}

func NewRedisSymbolRepository(client *redis.Client) SymbolRepository {
	return redisSymbolRepositoryHandler{
		Client: client,
	}
}

func (h redisSymbolRepositoryHandler) List(ctx context.Context) ([]string, error) {
	symbols, err := h.Client.LRange(ctx, trackedSymbolsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked symbols: %w", err)
	}
	return symbols, nil
}

func (h redisSymbolRepositoryHandler) Add(ctx context.Context, symbol string) error {
	// LREM first so a re-add never produces duplicates
	_, err := h.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, trackedSymbolsKey, 0, symbol)
		pipe.RPush(ctx, trackedSymbolsKey, symbol)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to persist symbol %s: %w", symbol, err)
	}
	return nil
}

type noopSymbolRepositoryHandler struct{}

func NewNoopSymbolRepository() SymbolRepository {
	return noopSymbolRepositoryHandler{}
}

func (noopSymbolRepositoryHandler) List(ctx context.Context) ([]string, error) {
	return []string{}, nil
}

func (noopSymbolRepositoryHandler) Add(ctx context.Context, symbol string) error {
	return nil
}
