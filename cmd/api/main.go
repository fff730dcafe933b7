package main

import (
	"context"
	"findata/cmd"
	"findata/internal/logger"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := cmd.InitializeDependencies(ctx)
	if err != nil {
		logger.FromContext(ctx).Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	if err := cmd.Serve(ctx, deps); err != nil {
		logger.FromContext(ctx).Fatal(err)
	}
}
