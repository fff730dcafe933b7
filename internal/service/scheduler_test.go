package service

import (
	"context"
	"findata/internal/domain"
	mock_repository "findata/internal/repository/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type countingRefreshService struct {
	calls chan []string
}

func (c countingRefreshService) Refresh(ctx context.Context, symbols []string) (*domain.RefreshResult, error) {
	select {
	case c.calls <- symbols:
	default:
	}
	return &domain.RefreshResult{}, nil
}

func TestRefreshScheduler_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	symbolRepository := mock_repository.NewMockSymbolRepository(ctrl)
	symbolRepository.EXPECT().List(gomock.Any()).Return([]string{}, nil)
	registry, err := NewRegistryService(context.Background(), []string{"AAPL"}, nil, symbolRepository, 0)
	require.NoError(t, err)

	refresh := countingRefreshService{calls: make(chan []string, 10)}
	scheduler := RefreshScheduler{
		RefreshService:  refresh,
		RegistryService: registry,
		Interval:        10 * time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(done)
	}()

	for i := 0; i < 2; i++ {
		select {
		case symbols := <-refresh.calls:
			require.Equal(t, []string{"AAPL"}, symbols)
		case <-time.After(time.Second):
			t.Fatal("scheduler did not refresh")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestRefreshScheduler_Run_disabled(t *testing.T) {
	scheduler := RefreshScheduler{Interval: 0}
	// returns immediately without touching its dependencies
	scheduler.Run(context.Background())
}
