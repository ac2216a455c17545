package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reach_backend/internals/configs"
)

var (
	logLevel  string
	logFormat string

	rootCmd = &cobra.Command{
		Use:   "reach",
		Short: "Reach admin backend",
		Long: `Reach admin backend serves the admin API for workshop payment
verification, registrant listings and support queries.

Without a subcommand it starts the HTTP server.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCmd.RunE(cmd, args)
		},
	}
)

// Execute runs the root command. It is called once by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error) (default: info)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, console) (default: json)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(adminCmd)
}

// loadConfig reads .env and the environment, then applies the global flags.
func loadConfig() (configs.Config, error) {
	configs.LoadEnv()
	cfg, err := configs.Load()
	if err != nil {
		return configs.Config{}, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	return cfg, nil
}
