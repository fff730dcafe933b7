package repository

import (
	"context"
	"errors"
	"findata/internal/domain"
	"findata/internal/logger"
	"fmt"
	"math/rand/v2"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// MarketDataRepository returns recent daily closes for a symbol, oldest
// first. Every failure is one of domain.ErrNotFound or domain.ErrTransient.
type MarketDataRepository interface {
	GetDailyCloses(ctx context.Context, symbol string) ([]domain.PricePoint, error)
}

type MarketDataOptions struct {
	LookbackDays int
	MinDelay     time.Duration
	MaxDelay     time.Duration
	UserAgent    string
	// bounds the underlying http client, separate from ctx deadlines
	HttpTimeout time.Duration
}

// barIterator is the part of *chart.Iter we use
type barIterator interface {
	Next() bool
	Bar() *finance.ChartBar
	Err() error
}

type yahooMarketDataRepositoryHandler struct {
	Options  MarketDataOptions
	GetChart func(*chart.Params) barIterator
	Now      func() time.Time
	Sleep    func(ctx context.Context, d time.Duration) error
}

var setFinanceClientOnce sync.Once

func NewYahooMarketDataRepository(opts MarketDataOptions) MarketDataRepository {
	setFinanceClientOnce.Do(func() {
		finance.SetHTTPClient(&http.Client{
			Timeout: opts.HttpTimeout,
			Transport: userAgentTransport{
				UserAgent: opts.UserAgent,
				Base:      http.DefaultTransport,
			},
		})
	})

	return yahooMarketDataRepositoryHandler{
		Options: opts,
		GetChart: func(p *chart.Params) barIterator {
			return chart.Get(p)
		},
		Now:   time.Now,
		Sleep: sleepCtx,
	}
}

// userAgentTransport makes outbound requests look like a regular browser
type userAgentTransport struct {
	UserAgent string
	Base      http.RoundTripper
}

func (t userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	if t.UserAgent != "" {
		r.Header.Set("User-Agent", t.UserAgent)
	}
	if r.Header.Get("Accept") == "" {
		r.Header.Set("Accept", "application/json,text/plain,*/*")
	}
	if r.Header.Get("Accept-Language") == "" {
		r.Header.Set("Accept-Language", "en-US,en;q=0.9")
	}
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(r)
}

func (h yahooMarketDataRepositoryHandler) GetDailyCloses(ctx context.Context, symbol string) ([]domain.PricePoint, error) {
	if err := h.Sleep(ctx, randomDelay(h.Options.MinDelay, h.Options.MaxDelay)); err != nil {
		return nil, fmt.Errorf("%s: delay interrupted: %v: %w", symbol, err, domain.ErrTransient)
	}

	end := h.Now()
	// calendar days, so weekends and holidays still leave enough trading days
	start := end.AddDate(0, 0, -2*h.Options.LookbackDays)
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}

	points, err := runWithContext(ctx, symbol, func() ([]domain.PricePoint, error) {
		iter := h.GetChart(params)
		out := []domain.PricePoint{}
		for iter.Next() {
			bar := iter.Bar()
			if bar == nil {
				continue
			}
			price := bar.Close.InexactFloat64()
			if price == 0 {
				continue
			}
			out = append(out, domain.PricePoint{
				Date:  time.Unix(int64(bar.Timestamp), 0).UTC(),
				Price: price,
			})
		}
		if err := iter.Err(); err != nil {
			return nil, classifyProviderErr(symbol, err)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	return lastN(points, h.Options.LookbackDays, symbol)
}

// runWithContext lets ctx bound a call into a client library that
// doesn't take a context. Panics are reported as transient errors.
func runWithContext(ctx context.Context, symbol string, fn func() ([]domain.PricePoint, error)) ([]domain.PricePoint, error) {
	type result struct {
		points []domain.PricePoint
		err    error
	}
	resultCh := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resultCh <- result{err: fmt.Errorf("%s: provider panicked: %v: %w", symbol, r, domain.ErrTransient)}
			}
		}()
		points, err := fn()
		resultCh <- result{points: points, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %v: %w", symbol, ctx.Err(), domain.ErrTransient)
	case r := <-resultCh:
		return r.points, r.err
	}
}

func classifyProviderErr(symbol string, err error) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrTransient) {
		return err
	}
	msg := strings.ToLower(err.Error())
	for _, s := range []string{"not found", "no data", "delisted", "404"} {
		if strings.Contains(msg, s) {
			return fmt.Errorf("%s: %v: %w", symbol, err, domain.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %v: %w", symbol, err, domain.ErrTransient)
}

// lastN sorts by date and keeps the most recent n points
func lastN(points []domain.PricePoint, n int, symbol string) ([]domain.PricePoint, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%s: empty price series: %w", symbol, domain.ErrNotFound)
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	if n > 0 && len(points) > n {
		points = points[len(points)-n:]
	}
	return points, nil
}

func randomDelay(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int64N(int64(max-min)+1))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type fallbackMarketDataRepositoryHandler struct {
	Primary   MarketDataRepository
	Secondary MarketDataRepository
}

// NewFallbackMarketDataRepository uses secondary only when primary fails
// with a transient error. A nil secondary returns primary as is.
func NewFallbackMarketDataRepository(primary, secondary MarketDataRepository) MarketDataRepository {
	if secondary == nil {
		return primary
	}
	return fallbackMarketDataRepositoryHandler{
		Primary:   primary,
		Secondary: secondary,
	}
}

func (h fallbackMarketDataRepositoryHandler) GetDailyCloses(ctx context.Context, symbol string) ([]domain.PricePoint, error) {
	points, err := h.Primary.GetDailyCloses(ctx, symbol)
	if err == nil || !errors.Is(err, domain.ErrTransient) || ctx.Err() != nil {
		return points, err
	}

	logger.FromContext(ctx).Warnf("primary market data failed for %s, trying fallback: %s", symbol, err.Error())
	fallbackPoints, fallbackErr := h.Secondary.GetDailyCloses(ctx, symbol)
	if fallbackErr != nil {
		return nil, fmt.Errorf("fallback also failed (%v): %w", fallbackErr, err)
	}
	return fallbackPoints, nil
}
