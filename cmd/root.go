package cmd

import (
	"context"

	"starwars-api/confs"
	"starwars-api/db"
	"starwars-api/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "starwars-api",
	Short: "REST backend for users, people, planets and favorites",
	Long: `starwars-api serves the blog's users, people and planets and the
favorite links between them as JSON over HTTP.

Configuration is read from the environment, optionally seeded by a .env file.
Without DATABASE_URL or DB_* settings a local SQLite file is used.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command with ctx as the base context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// bootstrap loads configuration, the logger and the store shared by every
// subcommand.
func bootstrap() (*confs.Config, *zap.Logger, db.Database, error) {
	cfg, err := confs.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, nil, err
	}

	database, err := db.Connect(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, err
	}
	return cfg, log, database, nil
}
