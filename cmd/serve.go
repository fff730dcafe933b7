package cmd

import (
	"context"
	"errors"
	"findata/internal/logger"
	"fmt"
	"net/http"
	"time"
)

// Serve runs the API and, when configured, the refresh scheduler until
// ctx ends.
func Serve(ctx context.Context, deps *Dependencies) error {
	log := logger.FromContext(ctx)
	go deps.Scheduler.Run(ctx)

	server := deps.ApiHandler.NewServer(deps.Config.Api.Port)

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s%s", server.Addr, deps.Config.Api.Prefix)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down api: %w", err)
	}
	log.Info("api stopped")
	return nil
}
