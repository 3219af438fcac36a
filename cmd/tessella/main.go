// Command tessella manages the element catalog from the command line:
// element lookups, icon exports, image syncing and catalog checks.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tessella-works/tessella/internal/config"
	"github.com/tessella-works/tessella/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tessella",
		Short:         "Manage the element catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Runs before any subcommand, setting up config and logging.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}
			logger = logging.New(cfg.Logging)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	root.AddCommand(
		newInfoCmd(),
		newExportCmd(),
		newSyncCmd(),
		newCheckCmd(),
	)
	return root
}

func run(ctx context.Context) error {
	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		if logger != nil {
			logger.Error("command failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	if logger != nil {
		logging.Sync(logger)
	}
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		os.Exit(1)
	}
}
