package repository

import (
	"context"
	"errors"
	"findata/internal/domain"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeBarIterator struct {
	bars []*finance.ChartBar
	i    int
	err  error
}

func (f *fakeBarIterator) Next() bool {
	if f.i >= len(f.bars) {
		return false
	}
	f.i++
	return true
}

func (f *fakeBarIterator) Bar() *finance.ChartBar {
	return f.bars[f.i-1]
}

func (f *fakeBarIterator) Err() error {
	return f.err
}

func newTestYahooHandler(iter barIterator, lookback int) yahooMarketDataRepositoryHandler {
	return yahooMarketDataRepositoryHandler{
		Options: MarketDataOptions{LookbackDays: lookback},
		GetChart: func(*chart.Params) barIterator {
			return iter
		},
		Now: func() time.Time {
			return time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		},
		Sleep: sleepCtx,
	}
}

func bar(day int, close float64) *finance.ChartBar {
	return &finance.ChartBar{
		Close:     decimal.NewFromFloat(close),
		Timestamp: int(time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC).Unix()),
	}
}

func Test_yahooMarketDataRepositoryHandler_GetDailyCloses(t *testing.T) {
	t.Run("returns most recent closes in order", func(t *testing.T) {
		iter := &fakeBarIterator{bars: []*finance.ChartBar{
			bar(5, 100), bar(1, 90), bar(6, 110), bar(4, 95),
		}}
		h := newTestYahooHandler(iter, 3)

		points, err := h.GetDailyCloses(context.Background(), "AAPL")
		require.NoError(t, err)
		require.Equal(t, []float64{95, 100, 110}, domain.Closes(points))
		require.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), points[2].Date)
	})

	t.Run("skips zero closes", func(t *testing.T) {
		iter := &fakeBarIterator{bars: []*finance.ChartBar{
			bar(1, 90), bar(2, 0), bar(3, 91),
		}}
		h := newTestYahooHandler(iter, 7)

		points, err := h.GetDailyCloses(context.Background(), "AAPL")
		require.NoError(t, err)
		require.Equal(t, []float64{90, 91}, domain.Closes(points))
	})

	t.Run("empty series is not found", func(t *testing.T) {
		h := newTestYahooHandler(&fakeBarIterator{}, 7)

		_, err := h.GetDailyCloses(context.Background(), "NOPE")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("provider not found message", func(t *testing.T) {
		h := newTestYahooHandler(&fakeBarIterator{err: errors.New("remote-error: No data found, symbol may be delisted")}, 7)

		_, err := h.GetDailyCloses(context.Background(), "NOPE")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("other provider errors are transient", func(t *testing.T) {
		h := newTestYahooHandler(&fakeBarIterator{err: errors.New("connection reset by peer")}, 7)

		_, err := h.GetDailyCloses(context.Background(), "AAPL")
		require.ErrorIs(t, err, domain.ErrTransient)
	})

	t.Run("panic is transient", func(t *testing.T) {
		h := newTestYahooHandler(nil, 7)
		h.GetChart = func(*chart.Params) barIterator {
			panic("unexpected payload")
		}

		_, err := h.GetDailyCloses(context.Background(), "AAPL")
		require.ErrorIs(t, err, domain.ErrTransient)
	})

	t.Run("context deadline is transient", func(t *testing.T) {
		block := make(chan struct{})
		defer close(block)
		h := newTestYahooHandler(nil, 7)
		h.GetChart = func(*chart.Params) barIterator {
			<-block
			return &fakeBarIterator{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := h.GetDailyCloses(ctx, "AAPL")
		require.ErrorIs(t, err, domain.ErrTransient)
	})
}

func Test_randomDelay(t *testing.T) {
	for i := 0; i < 100; i++ {
		d := randomDelay(10*time.Millisecond, 20*time.Millisecond)
		require.GreaterOrEqual(t, d, 10*time.Millisecond)
		require.LessOrEqual(t, d, 20*time.Millisecond)
	}
	require.Equal(t, 5*time.Millisecond, randomDelay(5*time.Millisecond, 5*time.Millisecond))
	require.Equal(t, time.Duration(0), randomDelay(0, 0))
}

func Test_userAgentTransport(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	client := &http.Client{Transport: userAgentTransport{UserAgent: "test-agent/1.0"}}
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, "test-agent/1.0", gotUA)
}

type stubMarketData struct {
	points []domain.PricePoint
	err    error
	calls  int
}

func (s *stubMarketData) GetDailyCloses(ctx context.Context, symbol string) ([]domain.PricePoint, error) {
	s.calls++
	return s.points, s.err
}

func Test_fallbackMarketDataRepositoryHandler_GetDailyCloses(t *testing.T) {
	fallbackPoints := []domain.PricePoint{{Price: 1}, {Price: 2}}

	t.Run("uses fallback on transient error", func(t *testing.T) {
		primary := &stubMarketData{err: domain.ErrTransient}
		secondary := &stubMarketData{points: fallbackPoints}
		h := NewFallbackMarketDataRepository(primary, secondary)

		points, err := h.GetDailyCloses(context.Background(), "AAPL")
		require.NoError(t, err)
		require.Equal(t, fallbackPoints, points)
		require.Equal(t, 1, secondary.calls)
	})

	t.Run("not found skips fallback", func(t *testing.T) {
		primary := &stubMarketData{err: domain.ErrNotFound}
		secondary := &stubMarketData{points: fallbackPoints}
		h := NewFallbackMarketDataRepository(primary, secondary)

		_, err := h.GetDailyCloses(context.Background(), "NOPE")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.Equal(t, 0, secondary.calls)
	})

	t.Run("both failing keeps primary classification", func(t *testing.T) {
		primary := &stubMarketData{err: domain.ErrTransient}
		secondary := &stubMarketData{err: domain.ErrNotFound}
		h := NewFallbackMarketDataRepository(primary, secondary)

		_, err := h.GetDailyCloses(context.Background(), "AAPL")
		require.ErrorIs(t, err, domain.ErrTransient)
	})

	t.Run("nil secondary returns primary", func(t *testing.T) {
		primary := &stubMarketData{}
		require.Equal(t, primary, NewFallbackMarketDataRepository(primary, nil))
	})
}

type fakeAlpacaClient struct {
	bars []marketdata.Bar
	err  error
}

func (f fakeAlpacaClient) GetBars(symbol string, req marketdata.GetBarsRequest) ([]marketdata.Bar, error) {
	return f.bars, f.err
}

func Test_alpacaMarketDataRepositoryHandler_GetDailyCloses(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC) }
	noSleep := func(ctx context.Context, d time.Duration) error { return nil }

	t.Run("happy path", func(t *testing.T) {
		h := alpacaMarketDataRepositoryHandler{
			MdClient: fakeAlpacaClient{bars: []marketdata.Bar{
				{Timestamp: time.Date(2024, 3, 7, 5, 0, 0, 0, time.UTC), Close: 10},
				{Timestamp: time.Date(2024, 3, 8, 5, 0, 0, 0, time.UTC), Close: 11},
			}},
			LookbackDays: 7,
			Now:          now,
			Sleep:        noSleep,
		}

		points, err := h.GetDailyCloses(context.Background(), "AAPL")
		require.NoError(t, err)
		require.Equal(t, []float64{10, 11}, domain.Closes(points))
	})

	t.Run("client error is transient", func(t *testing.T) {
		h := alpacaMarketDataRepositoryHandler{
			MdClient:     fakeAlpacaClient{err: errors.New("status 500")},
			LookbackDays: 7,
			Now:          now,
			Sleep:        noSleep,
		}

		_, err := h.GetDailyCloses(context.Background(), "AAPL")
		require.ErrorIs(t, err, domain.ErrTransient)
	})

	t.Run("no bars is not found", func(t *testing.T) {
		h := alpacaMarketDataRepositoryHandler{
			MdClient:     fakeAlpacaClient{},
			LookbackDays: 7,
			Now:          now,
			Sleep:        noSleep,
		}

		_, err := h.GetDailyCloses(context.Background(), "AAPL")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("sleeps a delay within bounds before fetching", func(t *testing.T) {
		var slept []time.Duration
		h := alpacaMarketDataRepositoryHandler{
			MdClient: fakeAlpacaClient{bars: []marketdata.Bar{
				{Timestamp: time.Date(2024, 3, 7, 5, 0, 0, 0, time.UTC), Close: 10},
				{Timestamp: time.Date(2024, 3, 8, 5, 0, 0, 0, time.UTC), Close: 11},
			}},
			LookbackDays: 7,
			MinDelay:     100 * time.Millisecond,
			MaxDelay:     200 * time.Millisecond,
			Now:          now,
			Sleep: func(ctx context.Context, d time.Duration) error {
				slept = append(slept, d)
				return nil
			},
		}

		_, err := h.GetDailyCloses(context.Background(), "AAPL")
		require.NoError(t, err)
		require.Len(t, slept, 1)
		require.GreaterOrEqual(t, slept[0], 100*time.Millisecond)
		require.LessOrEqual(t, slept[0], 200*time.Millisecond)
	})

	t.Run("cancelled delay is transient", func(t *testing.T) {
		h := alpacaMarketDataRepositoryHandler{
			MdClient:     fakeAlpacaClient{},
			LookbackDays: 7,
			Now:          now,
			Sleep:        sleepCtx,
			MinDelay:     time.Second,
			MaxDelay:     time.Second,
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := h.GetDailyCloses(ctx, "AAPL")
		require.ErrorIs(t, err, domain.ErrTransient)
	})
}
