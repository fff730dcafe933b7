package cmd

import (
	"context"
	"findata/api"
	"findata/internal/logger"
	"findata/internal/repository"
	"findata/internal/service"
	"findata/internal/util"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Dependencies struct {
	Config     *util.Config
	ApiHandler *api.ApiHandler
	Scheduler  service.RefreshScheduler

	closers []func() error
}

func CloseDependencies(deps *Dependencies) {
	for i := len(deps.closers) - 1; i >= 0; i-- {
		if err := deps.closers[i](); err != nil {
			logger.Warn("failed to close dependency: %s", err.Error())
		}
	}
}

func InitializeDependencies(ctx context.Context) (*Dependencies, error) {
	cfg, err := util.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	deps := &Dependencies{Config: cfg}

	assetMetricsRepository, err := newAssetMetricsRepository(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	deps.closers = append(deps.closers, assetMetricsRepository.Close)

	marketDataOptions := repository.MarketDataOptions{
		LookbackDays: cfg.Refresh.LookbackDays,
		MinDelay:     cfg.Refresh.MinDelay,
		MaxDelay:     cfg.Refresh.MaxDelay,
		UserAgent:    cfg.Market.UserAgent,
		HttpTimeout:  cfg.Refresh.FetchTimeout,
	}
	marketDataRepository := repository.NewYahooMarketDataRepository(marketDataOptions)
	if cfg.Market.Alpaca.Enabled() {
		alpacaRepository := repository.NewAlpacaMarketDataRepository(
			cfg.Market.Alpaca.ApiKey,
			cfg.Market.Alpaca.ApiSecret,
			cfg.Market.Alpaca.BaseURL,
			marketDataOptions,
		)
		marketDataRepository = repository.NewFallbackMarketDataRepository(marketDataRepository, alpacaRepository)
	}

	symbolRepository := repository.NewNoopSymbolRepository()
	summaryCacheRepository := repository.NewNoopSummaryCacheRepository()
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		deps.closers = append(deps.closers, redisClient.Close)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			CloseDependencies(deps)
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}

		symbolRepository = repository.NewRedisSymbolRepository(redisClient)
		summaryCacheRepository = repository.NewRedisSummaryCacheRepository(redisClient, cfg.Redis.SummaryTTL)
	}

	assetEventRepository := repository.NewNoopAssetEventRepository()
	if len(cfg.Kafka.Brokers) > 0 {
		assetEventRepository = repository.NewKafkaAssetEventRepository(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		deps.closers = append(deps.closers, assetEventRepository.Close)
	}

	var gptRepository repository.GptRepository
	if cfg.Llm.OpenAIApiKey != "" {
		gptRepository, err = repository.NewGptRepository(cfg.Llm.OpenAIApiKey, cfg.Llm.SummaryModel)
		if err != nil {
			CloseDependencies(deps)
			return nil, err
		}
	}
	var analysisRepository repository.AnalysisRepository
	if cfg.Llm.AnalysisApiKey != "" {
		analysisRepository = repository.NewAnalysisRepository(
			cfg.Llm.AnalysisApiKey,
			cfg.Llm.AnalysisBaseURL,
			cfg.Llm.AnalysisModel,
			cfg.Llm.Timeout,
		)
	}

	registryService, err := service.NewRegistryService(
		ctx,
		cfg.Symbols.Default,
		marketDataRepository,
		symbolRepository,
		cfg.Refresh.FetchTimeout,
	)
	if err != nil {
		CloseDependencies(deps)
		return nil, err
	}
	refreshService := service.NewRefreshService(
		marketDataRepository,
		assetMetricsRepository,
		assetEventRepository,
		summaryCacheRepository,
		service.RefreshOptions{
			MaxConcurrency: cfg.Refresh.MaxConcurrency,
			FetchTimeout:   cfg.Refresh.FetchTimeout,
			PruneFailed:    cfg.Refresh.PruneFailed,
		},
	)
	insightService := service.NewInsightService(
		assetMetricsRepository,
		summaryCacheRepository,
		gptRepository,
		analysisRepository,
	)

	deps.ApiHandler = &api.ApiHandler{
		RefreshService:         refreshService,
		RegistryService:        registryService,
		InsightService:         insightService,
		AssetMetricsRepository: assetMetricsRepository,
		Prefix:                 cfg.Api.Prefix,
	}
	deps.Scheduler = service.RefreshScheduler{
		RefreshService:  refreshService,
		RegistryService: registryService,
		Interval:        cfg.Refresh.Interval,
	}

	return deps, nil
}

func newAssetMetricsRepository(ctx context.Context, cfg util.StoreConfig) (repository.AssetMetricsRepository, error) {
	switch cfg.Driver {
	case "postgres":
		return repository.NewPostgresAssetMetricsRepository(ctx, cfg.PostgresDsn)
	case "sqlite":
		return repository.NewSqliteAssetMetricsRepository(ctx, cfg.SqlitePath)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
