package service

import (
	"context"
	"findata/internal/logger"
	"time"
)

// RefreshScheduler refreshes every tracked symbol on a fixed interval
// until ctx ends. The first refresh runs immediately.
type RefreshScheduler struct {
	RefreshService  RefreshService
	RegistryService RegistryService
	Interval        time.Duration
}

func (s RefreshScheduler) Run(ctx context.Context) {
	if s.Interval <= 0 {
		return
	}
	log := logger.FromContext(ctx)
	log.Infof("refreshing tracked symbols every %s", s.Interval)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		s.runOnce(ctx)
		select {
		case <-ctx.Done():
			log.Info("refresh scheduler stopped")
			return
		case <-ticker.C:
		}
	}
}

func (s RefreshScheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	result, err := s.RefreshService.Refresh(ctx, s.RegistryService.List())
	if err != nil {
		logger.FromContext(ctx).Errorf("scheduled refresh failed: %s", err.Error())
		return
	}
	logger.FromContext(ctx).Infof("scheduled refresh updated %d symbols", result.NumUpdated())
}
