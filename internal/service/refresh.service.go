package service

import (
	"context"
	"findata/internal/calculator"
	"findata/internal/domain"
	"findata/internal/logger"
	"findata/internal/repository"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// RefreshService fetches and recomputes snapshots for a set of symbols
// and swaps them into the store. Per-symbol failures never fail the
// refresh; only a store failure does.
type RefreshService interface {
	Refresh(ctx context.Context, symbols []string) (*domain.RefreshResult, error)
}

type RefreshOptions struct {
	MaxConcurrency int
	FetchTimeout   time.Duration
	// PruneFailed drops the prior snapshot of requested symbols that
	// failed this round instead of keeping it
	PruneFailed bool
}

type refreshServiceHandler struct {
	MarketDataRepository   repository.MarketDataRepository
	AssetMetricsRepository repository.AssetMetricsRepository
	AssetEventRepository   repository.AssetEventRepository
	SummaryCacheRepository repository.SummaryCacheRepository
	Options                RefreshOptions
	ReplaceMutex           *sync.Mutex
	Now                    func() time.Time
}

func NewRefreshService(
	marketDataRepository repository.MarketDataRepository,
	assetMetricsRepository repository.AssetMetricsRepository,
	assetEventRepository repository.AssetEventRepository,
	summaryCacheRepository repository.SummaryCacheRepository,
	options RefreshOptions,
) RefreshService {
	if options.MaxConcurrency <= 0 {
		options.MaxConcurrency = 1
	}
	if options.FetchTimeout <= 0 {
		options.FetchTimeout = 15 * time.Second
	}
	return refreshServiceHandler{
		MarketDataRepository:   marketDataRepository,
		AssetMetricsRepository: assetMetricsRepository,
		AssetEventRepository:   assetEventRepository,
		SummaryCacheRepository: summaryCacheRepository,
		Options:                options,
		ReplaceMutex:           &sync.Mutex{},
		Now:                    time.Now,
	}
}

type symbolResult struct {
	metrics *domain.AssetMetrics
	err     error
}

func (h refreshServiceHandler) Refresh(ctx context.Context, symbols []string) (*domain.RefreshResult, error) {
	log := logger.FromContext(ctx)
	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()
	start := time.Now()

	symbols = dedupeSymbols(symbols)
	result := &domain.RefreshResult{
		Updated:  []domain.AssetMetrics{},
		Outcomes: []domain.RefreshOutcome{},
	}
	if len(symbols) == 0 {
		return result, nil
	}

	_, endSpan := profile.StartNewSpan("fetching prices")
	results := make([]symbolResult, len(symbols))

	// plain Group, not WithContext, so one failure never cancels siblings
	g := errgroup.Group{}
	g.SetLimit(h.Options.MaxConcurrency)
	for i, symbol := range symbols {
		g.Go(func() error {
			metrics, err := h.refreshSymbol(ctx, symbol)
			results[i] = symbolResult{metrics: metrics, err: err}
			return nil
		})
	}
	_ = g.Wait()
	endSpan()

	succeeded := []string{}
	for i, symbol := range symbols {
		r := results[i]
		status := domain.RefreshStatusFromErr(r.err)
		outcome := domain.RefreshOutcome{
			Symbol: symbol,
			Status: status,
		}
		if r.err != nil {
			msg := r.err.Error()
			outcome.Error = &msg
			log.Warnw("failed to refresh symbol", "symbol", symbol, "reason", status, "error", msg)
		} else {
			result.Updated = append(result.Updated, *r.metrics)
			succeeded = append(succeeded, symbol)
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	replaceSymbols := succeeded
	if h.Options.PruneFailed {
		replaceSymbols = symbols
	}

	// fetched results are kept even if the caller gives up now
	storeCtx := context.WithoutCancel(ctx)

	_, endSpan = profile.StartNewSpan("replacing snapshots")
	h.ReplaceMutex.Lock()
	err := h.AssetMetricsRepository.Replace(storeCtx, replaceSymbols, result.Updated)
	h.ReplaceMutex.Unlock()
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to replace asset metrics: %w", err)
	}

	if len(replaceSymbols) > 0 {
		if err := h.SummaryCacheRepository.Invalidate(storeCtx); err != nil {
			log.Warnf("failed to invalidate summary cache: %s", err.Error())
		}
	}
	if err := h.AssetEventRepository.PublishUpdated(storeCtx, result.Updated); err != nil {
		log.Warnf("failed to publish refresh events: %s", err.Error())
	}

	log.Infow(
		"refreshed asset metrics",
		"requested", len(symbols),
		"updated", result.NumUpdated(),
		"elapsedMs", time.Since(start).Milliseconds(),
	)

	return result, nil
}

func (h refreshServiceHandler) refreshSymbol(ctx context.Context, symbol string) (metrics *domain.AssetMetrics, err error) {
	defer func() {
		if r := recover(); r != nil {
			metrics = nil
			err = fmt.Errorf("%s: refresh panicked: %v: %w", symbol, r, domain.ErrTransient)
		}
	}()

	fetchCtx, cancel := context.WithTimeout(ctx, h.Options.FetchTimeout)
	defer cancel()

	points, err := h.MarketDataRepository.GetDailyCloses(fetchCtx, symbol)
	if err != nil {
		return nil, err
	}

	return calculator.ComputeMetrics(symbol, points, h.Now())
}

// dedupeSymbols trims, drops empties and keeps the first occurrence
func dedupeSymbols(symbols []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, s := range symbols {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
