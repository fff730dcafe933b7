package calculator

import (
	"findata/internal/domain"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

// ComputeMetrics derives the snapshot for a symbol from its daily closes,
// ordering them by date first. The 7d average is taken over every close
// given, so a shorter series just produces a shorter-window average.
func ComputeMetrics(symbol string, points []domain.PricePoint, now time.Time) (*domain.AssetMetrics, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%s has %d closes, need at least 2: %w", symbol, len(points), domain.ErrInsufficientData)
	}

	ordered := make([]domain.PricePoint, len(points))
	copy(ordered, points)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	closes := domain.Closes(ordered)
	for _, c := range closes {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("%s has a non-finite close: %w", symbol, domain.ErrInsufficientData)
		}
	}

	latest := closes[len(closes)-1]
	previous := closes[len(closes)-2]
	change, err := percentChange(latest, previous)
	if err != nil {
		return nil, fmt.Errorf("failed to compute 24h change for %s: %w", symbol, err)
	}

	mean, err := stats.Mean(closes)
	if err != nil {
		return nil, fmt.Errorf("failed to compute average for %s: %w", symbol, err)
	}

	return &domain.AssetMetrics{
		Symbol:           symbol,
		LatestPrice:      latest,
		ChangePercent24h: change,
		AveragePrice7d:   mean,
		Timestamp:        now.UTC(),
	}, nil
}

// percentChange is undefined when start is 0
func percentChange(end, start float64) (float64, error) {
	if start == 0 {
		return 0, fmt.Errorf("previous close is 0: %w", domain.ErrInsufficientData)
	}
	return ((end - start) / start) * 100, nil
}
