package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"memo/internal/adapters/memory"
	"memo/internal/application"
	"memo/internal/config"
	"memo/internal/logging"
	"memo/internal/ports"
)

var (
	cfg        = config.Load()
	verbose    bool
	filterName string

	logger *zap.Logger
	store  ports.NoteStore
)

var rootCmd = &cobra.Command{
	Use:   "memo-cli",
	Short: "Script-driven note lists",
	Long: `memo-cli runs note scripts against an in-memory note list.

Each line of a script is one command: create, edit, archive, unarchive,
remove, restore, purge, filter or list. Notes live for a single run.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg.Verbose = cfg.Verbose || verbose
		cfg.Filter = filterName

		var err error
		logger, err = logging.New(cfg)
		if err != nil {
			return err
		}

		filter, err := application.ParseFilter(cfg.Filter)
		if err != nil {
			return fmt.Errorf("--filter: %w", err)
		}

		store = memory.NewStore(time.Now, logger)
		store.SetFilter(filter)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&filterName, "filter", "f", cfg.Filter, "initial view: active, archived or removed")
}

// GetStore returns the initialized note store
func GetStore() ports.NoteStore {
	return store
}

// GetLogger returns the initialized logger
func GetLogger() *zap.Logger {
	return logger
}
