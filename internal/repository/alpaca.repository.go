package repository

import (
	"context"
	"findata/internal/domain"
	"fmt"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
)

type alpacaBarsClient interface {
	GetBars(symbol string, req marketdata.GetBarsRequest) ([]marketdata.Bar, error)
}

type alpacaMarketDataRepositoryHandler struct {
	MdClient     alpacaBarsClient
	LookbackDays int
	MinDelay     time.Duration
	MaxDelay     time.Duration
	Now          func() time.Time
	Sleep        func(ctx context.Context, d time.Duration) error
}

// NewAlpacaMarketDataRepository serves daily bars for US equities. Only
// the lookback and delay settings of opts apply.
func NewAlpacaMarketDataRepository(apiKey, apiSecret, endpoint string, opts MarketDataOptions) MarketDataRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return alpacaMarketDataRepositoryHandler{
		MdClient:     mdClient,
		LookbackDays: opts.LookbackDays,
		MinDelay:     opts.MinDelay,
		MaxDelay:     opts.MaxDelay,
		Now:          time.Now,
		Sleep:        sleepCtx,
	}
}

func (h alpacaMarketDataRepositoryHandler) GetDailyCloses(ctx context.Context, symbol string) ([]domain.PricePoint, error) {
	if err := h.Sleep(ctx, randomDelay(h.MinDelay, h.MaxDelay)); err != nil {
		return nil, fmt.Errorf("%s: delay interrupted: %v: %w", symbol, err, domain.ErrTransient)
	}

	end := h.Now()
	start := end.AddDate(0, 0, -2*h.LookbackDays)

	points, err := runWithContext(ctx, symbol, func() ([]domain.PricePoint, error) {
		bars, err := h.MdClient.GetBars(symbol, marketdata.GetBarsRequest{
			TimeFrame: marketdata.OneDay,
			Start:     start,
			End:       end,
		})
		if err != nil {
			return nil, classifyProviderErr(symbol, fmt.Errorf("alpaca: %w", err))
		}
		out := []domain.PricePoint{}
		for _, b := range bars {
			if b.Close == 0 {
				continue
			}
			out = append(out, domain.PricePoint{
				Date:  b.Timestamp.UTC(),
				Price: b.Close,
			})
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	return lastN(points, h.LookbackDays, symbol)
}
