package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"xorcrack/internal/app"
)

var (
	configPath string
	verbose    bool
	workers    int
	serverURL  string

	appCtx *app.Wire
	logger *zap.Logger
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "xorcrack",
		Short:        "Recover single-byte XOR keys by English plausibility scoring",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				cfg.Batch.Workers = workers
			}
			if serverURL != "" {
				cfg.Server.URL = serverURL
			}

			logger, err = app.NewLogger(cfg.Logging, verbose)
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg, logger)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().IntVar(&workers, "workers", 0, "parallel ciphertext searches (0 = GOMAXPROCS)")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "xorcrackd base URL (e.g. http://127.0.0.1:8080)")

	root.AddCommand(breakCmd(), detectCmd(), hexCmd(), fixedXorCmd(), scoreCmd(), genCmd())
	return root
}
