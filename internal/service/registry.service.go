package service

import (
	"context"
	"errors"
	"findata/internal/domain"
	"findata/internal/logger"
	"findata/internal/repository"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// RegistryService is the ordered, duplicate free list of tracked symbols
type RegistryService interface {
	List() []string
	Add(ctx context.Context, symbol string) ([]string, error)
}

type registryServiceHandler struct {
	MarketDataRepository repository.MarketDataRepository
	SymbolRepository     repository.SymbolRepository
	ValidateTimeout      time.Duration

	mutex   *sync.Mutex
	symbols *[]string
}

// NewRegistryService seeds the registry with defaults, then appends any
// symbols persisted by earlier runs.
func NewRegistryService(
	ctx context.Context,
	defaults []string,
	marketDataRepository repository.MarketDataRepository,
	symbolRepository repository.SymbolRepository,
	validateTimeout time.Duration,
) (RegistryService, error) {
	persisted, err := symbolRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tracked symbols: %w", err)
	}

	symbols := []string{}
	for _, s := range append(slices.Clone(defaults), persisted...) {
		s = normalizeSymbol(s)
		if s != "" && !slices.Contains(symbols, s) {
			symbols = append(symbols, s)
		}
	}

	return registryServiceHandler{
		MarketDataRepository: marketDataRepository,
		SymbolRepository:     symbolRepository,
		ValidateTimeout:      validateTimeout,
		mutex:                &sync.Mutex{},
		symbols:              &symbols,
	}, nil
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func (h registryServiceHandler) List() []string {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return slices.Clone(*h.symbols)
}

func (h registryServiceHandler) contains(symbol string) bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return slices.Contains(*h.symbols, symbol)
}

// Add validates symbol against the market data provider and appends it.
// The lock is not held while validating, so the duplicate check runs
// again before the append.
func (h registryServiceHandler) Add(ctx context.Context, symbol string) ([]string, error) {
	symbol = normalizeSymbol(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required: %w", domain.ErrInvalidSymbol)
	}
	if h.contains(symbol) {
		return nil, fmt.Errorf("%s: %w", symbol, domain.ErrAlreadyTracked)
	}

	if err := h.validate(ctx, symbol); err != nil {
		return nil, err
	}

	h.mutex.Lock()
	if slices.Contains(*h.symbols, symbol) {
		h.mutex.Unlock()
		return nil, fmt.Errorf("%s: %w", symbol, domain.ErrAlreadyTracked)
	}
	*h.symbols = append(*h.symbols, symbol)
	out := slices.Clone(*h.symbols)
	h.mutex.Unlock()

	if err := h.SymbolRepository.Add(ctx, symbol); err != nil {
		logger.FromContext(ctx).Warnf("symbol %s is tracked in memory only: %s", symbol, err.Error())
	}

	return out, nil
}

func (h registryServiceHandler) validate(ctx context.Context, symbol string) error {
	if h.ValidateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.ValidateTimeout)
		defer cancel()
	}

	points, err := h.MarketDataRepository.GetDailyCloses(ctx, symbol)
	if err == nil && len(points) == 0 {
		err = domain.ErrNotFound
	}
	if err != nil {
		if errors.Is(err, domain.ErrTransient) {
			logger.FromContext(ctx).Warnf("could not validate %s: %s", symbol, err.Error())
		}
		return fmt.Errorf("%w: %s: %w", domain.ErrInvalidSymbol, symbol, err)
	}
	return nil
}
