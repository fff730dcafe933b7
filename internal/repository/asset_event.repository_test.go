package repository

import (
	"context"
	"encoding/json"
	"errors"
	"findata/internal/domain"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type fakeMessageWriter struct {
	messages []kafka.Message
	err      error
}

func (f *fakeMessageWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeMessageWriter) Close() error {
	return nil
}

func Test_kafkaAssetEventRepositoryHandler_PublishUpdated(t *testing.T) {
	ctx := context.Background()

	t.Run("one message per record keyed by symbol", func(t *testing.T) {
		writer := &fakeMessageWriter{}
		repo := kafkaAssetEventRepositoryHandler{Writer: writer}

		err := repo.PublishUpdated(ctx, []domain.AssetMetrics{
			testMetrics("AAPL", 170),
			testMetrics("MSFT", 400),
		})
		require.NoError(t, err)
		require.Len(t, writer.messages, 2)
		require.Equal(t, "AAPL", string(writer.messages[0].Key))

		event := assetUpdatedEvent{}
		require.NoError(t, json.Unmarshal(writer.messages[1].Value, &event))
		require.Equal(t, "asset_metrics.updated", event.Type)
		require.Equal(t, "MSFT", event.Payload.Symbol)
		require.Equal(t, 400.0, event.Payload.LatestPrice)
	})

	t.Run("nothing to publish", func(t *testing.T) {
		writer := &fakeMessageWriter{err: errors.New("should not be called")}
		repo := kafkaAssetEventRepositoryHandler{Writer: writer}

		require.NoError(t, repo.PublishUpdated(ctx, nil))
	})

	t.Run("writer failure", func(t *testing.T) {
		writer := &fakeMessageWriter{err: errors.New("broker down")}
		repo := kafkaAssetEventRepositoryHandler{Writer: writer}

		err := repo.PublishUpdated(ctx, []domain.AssetMetrics{testMetrics("AAPL", 170)})
		require.ErrorContains(t, err, "broker down")
	})
}
