package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const summaryKeyPrefix = "findata:summary:"

// SummaryCacheRepository keeps generated summaries keyed by a digest of the
// data they were generated from.
type SummaryCacheRepository interface {
	Get(ctx context.Context, digest string) (string, bool, error)
	Set(ctx context.Context, digest string, summary string) error
	Invalidate(ctx context.Context) error
}

type redisSummaryCacheRepositoryHandler struct {
	Client *redis.Client
	Ttl    time.Duration
}

func NewRedisSummaryCacheRepository(client *redis.Client, ttl time.Duration) SummaryCacheRepository {
	return redisSummaryCacheRepositoryHandler{
		Client: client,
		Ttl:    ttl,
	}
}

func (h redisSummaryCacheRepositoryHandler) Get(ctx context.Context, digest string) (string, bool, error) {
	summary, err := h.Client.Get(ctx, summaryKeyPrefix+digest).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	} else if err != nil {
		return "", false, fmt.Errorf("failed to read cached summary: %w", err)
	}
	return summary, true, nil
}

func (h redisSummaryCacheRepositoryHandler) Set(ctx context.Context, digest string, summary string) error {
	if err := h.Client.Set(ctx, summaryKeyPrefix+digest, summary, h.Ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache summary: %w", err)
	}
	return nil
}

func (h redisSummaryCacheRepositoryHandler) Invalidate(ctx context.Context) error {
	iter := h.Client.Scan(ctx, 0, summaryKeyPrefix+"*", 100).Iterator()
	keys := []string{}
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached summaries: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := h.Client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached summaries: %w", err)
	}
	return nil
}

type noopSummaryCacheRepositoryHandler struct{}

// NewNoopSummaryCacheRepository never hits, used when redis is disabled
func NewNoopSummaryCacheRepository() SummaryCacheRepository {
	return noopSummaryCacheRepositoryHandler{}
}

func (noopSummaryCacheRepositoryHandler) Get(ctx context.Context, digest string) (string, bool, error) {
	return "", false, nil
}

func (noopSummaryCacheRepositoryHandler) Set(ctx context.Context, digest string, summary string) error {
	return nil
}

func (noopSummaryCacheRepositoryHandler) Invalidate(ctx context.Context) error {
	return nil
}
