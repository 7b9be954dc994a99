package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cppla/ncnews/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "ncnews",
	Short: "News REST API over topics, articles, comments and users",
	Long: `ncnews serves a JSON API for a news site backed by PostgreSQL.

Configuration is read from config/config.yaml when present, then
environment variables (DATABASE_URL, DB_HOST, APP_PORT, LOG_LEVEL, ...).`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(routesCmd)
}

func loadConfig() (config.AppConfig, error) {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
