package main

import (
	"context"
	"encoding/json"
	"findata/cmd"
	"findata/internal/logger"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.FromContext(ctx).Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "findata",
		Short:         "Aggregates daily market data and serves computed asset metrics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newRefreshCmd(),
		newAssetsCmd(),
		newExportCmd(),
		newServeCmd(),
	)
	return root
}

// withDependencies builds the dependency graph for the lifetime of one
// command.
func withDependencies(c *cobra.Command, fn func(ctx context.Context, deps *cmd.Dependencies) error) error {
	ctx := c.Context()
	deps, err := cmd.InitializeDependencies(ctx)
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(deps)
	return fn(ctx, deps)
}

func newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh [symbols...]",
		Short: "Refresh metrics for the given symbols, or every tracked symbol",
		RunE: func(c *cobra.Command, args []string) error {
			return withDependencies(c, func(ctx context.Context, deps *cmd.Dependencies) error {
				symbols := args
				if len(symbols) == 0 {
					symbols = deps.ApiHandler.RegistryService.List()
				}
				result, err := deps.ApiHandler.RefreshService.Refresh(ctx, symbols)
				if err != nil {
					return err
				}
				for _, o := range result.Outcomes {
					line := fmt.Sprintf("%-12s %s", o.Symbol, o.Status)
					if o.Error != nil {
						line += "  " + *o.Error
					}
					fmt.Fprintln(c.OutOrStdout(), line)
				}
				fmt.Fprintf(c.OutOrStdout(), "updated %d of %d symbols\n", result.NumUpdated(), len(result.Outcomes))
				return nil
			})
		},
	}
}

func newAssetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "Print stored metrics as JSON",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return withDependencies(c, func(ctx context.Context, deps *cmd.Dependencies) error {
				assets, err := deps.ApiHandler.AssetMetricsRepository.List(ctx)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(c.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(assets)
			})
		},
	}
}

func newExportCmd() *cobra.Command {
	var out string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write stored metrics as CSV",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return withDependencies(c, func(ctx context.Context, deps *cmd.Dependencies) error {
				assets, err := deps.ApiHandler.AssetMetricsRepository.List(ctx)
				if err != nil {
					return err
				}

				var w io.Writer = c.OutOrStdout()
				if out != "" && out != "-" {
					f, err := os.Create(out)
					if err != nil {
						return fmt.Errorf("failed to create %s: %w", out, err)
					}
					defer f.Close()
					w = f
				}
				return gocsv.Marshal(assets, w)
			})
		},
	}
	exportCmd.Flags().StringVarP(&out, "out", "o", "", "output file, stdout when empty")
	return exportCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return withDependencies(c, cmd.Serve)
		},
	}
}
