package main

import (
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/ja-fashion/internal/auth/infra/gormstore"
	"github.com/dwikikusuma/ja-fashion/pkg/config"
	"github.com/dwikikusuma/ja-fashion/pkg/logger"
	"github.com/dwikikusuma/ja-fashion/pkg/postgres"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel})

		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is not set")
		}
		db, err := postgres.Open(postgres.Config{DSN: cfg.DatabaseURL})
		if err != nil {
			return err
		}
		defer db.Close()

		applied, err := postgres.Migrate(cmd.Context(), db)
		if err != nil {
			return err
		}
		for _, name := range applied {
			log.Info("migration applied", slog.String("name", name))
		}

		users, err := gormstore.Open(db)
		if err != nil {
			return err
		}
		if err := users.AutoMigrate(cmd.Context()); err != nil {
			return fmt.Errorf("auth tables: %w", err)
		}

		log.Info("migrations complete", slog.Int("applied", len(applied)))
		return nil
	},
}
