package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"community-ads/internal/config"
)

// cfg and logger are initialised before any sub-command runs.
var (
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "community-ads",
	Short: "Community ad campaign builder API",
	Long: `community-ads serves the community catalog and drives campaign drafts
through the five step campaign wizard.

Configuration is read from environment variables (HTTP_*, LOG_*, PSQL_*,
REDIS_*, MEDIA_*, LOCATION_*). Running without a sub-command starts the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		logger = cfg.Log.New(os.Stdout)
		return nil
	},
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// main is the entry point of community-ads. Exit codes: 0 on success, 1 on
// any error, 128+signal when the server was stopped by a signal.
func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
	os.Exit(exitCode)
}
