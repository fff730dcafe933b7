package repository

import (
	"context"
	"encoding/json"
	"findata/internal/domain"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// AssetEventRepository announces refreshed snapshots to downstream
// consumers.
type AssetEventRepository interface {
	PublishUpdated(ctx context.Context, records []domain.AssetMetrics) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaAssetEventRepositoryHandler struct {
	Writer messageWriter
}

func NewKafkaAssetEventRepository(brokers []string, topic string) AssetEventRepository {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return kafkaAssetEventRepositoryHandler{
		Writer: writer,
	}
}

type assetUpdatedEvent struct {
	Type    string              `json:"type"`
	Payload domain.AssetMetrics `json:"payload"`
}

func (h kafkaAssetEventRepositoryHandler) PublishUpdated(ctx context.Context, records []domain.AssetMetrics) error {
	if len(records) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(records))
	for _, r := range records {
		value, err := json.Marshal(assetUpdatedEvent{
			Type:    "asset_metrics.updated",
			Payload: r,
		})
		if err != nil {
			return fmt.Errorf("failed to encode event for %s: %w", r.Symbol, err)
		}
		// keyed by symbol so per-symbol ordering holds within a partition
		msgs = append(msgs, kafka.Message{
			Key:   []byte(r.Symbol),
			Value: value,
			Time:  r.Timestamp,
		})
	}

	if err := h.Writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("failed to publish %d asset events: %w", len(msgs), err)
	}
	return nil
}

func (h kafkaAssetEventRepositoryHandler) Close() error {
	return h.Writer.Close()
}

type noopAssetEventRepositoryHandler struct{}

func NewNoopAssetEventRepository() AssetEventRepository {
	return noopAssetEventRepositoryHandler{}
}

func (noopAssetEventRepositoryHandler) PublishUpdated(ctx context.Context, records []domain.AssetMetrics) error {
	return nil
}

func (noopAssetEventRepositoryHandler) Close() error {
	return nil
}
