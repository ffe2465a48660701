package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"ListMender/internal/config"
	"ListMender/internal/logging"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string

	rootCmd := &cobra.Command{
		Use:           "listmender",
		Short:         "Reconcile missing start/finish dates on a MyAnimeList tracked list",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newFixCommand(&configFlag, &logLevelFlag))
	rootCmd.AddCommand(newListCommand(&configFlag, &logLevelFlag))

	return rootCmd
}

// loadConfig resolves the effective configuration and its logger; the
// --log-level flag wins over the config file.
func loadConfig(configPath, logLevel string) (config.Config, *slog.Logger) {
	cfg := config.Load(configPath)
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	return cfg, logging.New(cfg.Logging.Level, cfg.Logging.Format)
}
