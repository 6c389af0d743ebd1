package main

import (
	"fmt"
	"os"

	"autohuis/backoffice-leads/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the leadparse command tree
func newRootCmd() *cobra.Command {
	var (
		verbose bool
		logger  *zap.Logger
		restore func()
	)

	rootCmd := &cobra.Command{
		Use:   "leadparse",
		Short: "Extract customer details from dealership leads",
		Long: `leadparse runs the lead text extractor offline.

It derives customer name, email, phone, vehicle interest and subject from
the free text of website and portal leads (AutoTrack, Marktplaats, AutoScout24),
one lead at a time or for a whole CSV export.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if verbose {
				level = "debug"
			}
			var err error
			logger, restore, err = logging.Install(level)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
			if restore != nil {
				restore()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newParseCmd(), newBatchCmd())
	return rootCmd
}
