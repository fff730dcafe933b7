package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"findata/internal/domain"
	"findata/internal/logger"
	"findata/internal/repository"
	"fmt"
	"math"
	"strings"
	"time"
)

// InsightService turns stored snapshots into prose
type InsightService interface {
	Summary(ctx context.Context) (string, error)
	Analyze(ctx context.Context, question string, symbols []string) (string, error)
}

type insightServiceHandler struct {
	AssetMetricsRepository repository.AssetMetricsRepository
	SummaryCacheRepository repository.SummaryCacheRepository
	// nil when no key is configured
	GptRepository      repository.GptRepository
	AnalysisRepository repository.AnalysisRepository
}

func NewInsightService(
	assetMetricsRepository repository.AssetMetricsRepository,
	summaryCacheRepository repository.SummaryCacheRepository,
	gptRepository repository.GptRepository,
	analysisRepository repository.AnalysisRepository,
) InsightService {
	return insightServiceHandler{
		AssetMetricsRepository: assetMetricsRepository,
		SummaryCacheRepository: summaryCacheRepository,
		GptRepository:          gptRepository,
		AnalysisRepository:     analysisRepository,
	}
}

func (h insightServiceHandler) Summary(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	assets, err := h.AssetMetricsRepository.List(ctx)
	if err != nil {
		return "", err
	}
	if len(assets) == 0 {
		return "", fmt.Errorf("no market data available: %w", domain.ErrNotFound)
	}

	if h.GptRepository == nil {
		return templateSummary(assets), nil
	}

	payload, err := json.MarshalIndent(assets, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode market data: %w", err)
	}
	digest := sha256.Sum256(payload)
	key := hex.EncodeToString(digest[:])

	cached, ok, err := h.SummaryCacheRepository.Get(ctx, key)
	if err != nil {
		log.Warnf("failed to read summary cache: %s", err.Error())
	} else if ok {
		return cached, nil
	}

	summary, err := h.GptRepository.SummarizeMarket(ctx, string(payload))
	if err != nil {
		return "", err
	}

	if err := h.SummaryCacheRepository.Set(ctx, key, summary); err != nil {
		log.Warnf("failed to cache summary: %s", err.Error())
	}

	return summary, nil
}

// templateSummary is used when no text generation backend is configured
func templateSummary(assets []domain.AssetMetrics) string {
	parts := []string{}
	for _, a := range assets {
		trend := "decreased"
		if a.ChangePercent24h > 0 {
			trend = "increased"
		}
		parts = append(parts, fmt.Sprintf(
			"%s %s by %.2f%% over the last 24 hours, with a weekly average price of $%.2f.",
			a.Symbol,
			trend,
			math.Abs(a.ChangePercent24h),
			a.AveragePrice7d,
		))
	}
	return strings.Join(parts, " ")
}

func (h insightServiceHandler) Analyze(ctx context.Context, question string, symbols []string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", domain.ErrEmptyQuestion
	}
	if h.AnalysisRepository == nil {
		return "", fmt.Errorf("analysis: %w", domain.ErrNotConfigured)
	}

	assets, err := h.AssetMetricsRepository.List(ctx)
	if err != nil {
		return "", err
	}

	wanted := map[string]bool{}
	for _, s := range symbols {
		if s = normalizeSymbol(s); s != "" {
			wanted[s] = true
		}
	}

	grouped := map[string][]domain.AssetMetrics{}
	order := []string{}
	for _, a := range assets {
		if len(wanted) > 0 && !wanted[strings.ToUpper(a.Symbol)] {
			continue
		}
		if _, ok := grouped[a.Symbol]; !ok {
			order = append(order, a.Symbol)
		}
		grouped[a.Symbol] = append(grouped[a.Symbol], a)
	}
	if len(order) == 0 {
		return "", fmt.Errorf("no market data available for %v: %w", symbols, domain.ErrNotFound)
	}

	return h.AnalysisRepository.Analyze(ctx, formatMarketData(order, grouped), question)
}

func formatMarketData(order []string, grouped map[string][]domain.AssetMetrics) string {
	sections := []string{}
	for _, symbol := range order {
		sb := strings.Builder{}
		fmt.Fprintf(&sb, "\n%s Data:\n", symbol)
		for _, a := range grouped[symbol] {
			fmt.Fprintf(&sb, "Timestamp: %s\n", a.Timestamp.UTC().Format(time.RFC3339))
			fmt.Fprintf(&sb, "Latest Price: $%.2f\n", a.LatestPrice)
			fmt.Fprintf(&sb, "24h Change: %.2f%%\n", a.ChangePercent24h)
			fmt.Fprintf(&sb, "7d Average Price: $%.2f\n", a.AveragePrice7d)
			sb.WriteString(strings.Repeat("-", 20) + "\n")
		}
		sections = append(sections, sb.String())
	}
	return strings.Join(sections, "\n")
}
