package main

import (
	"context"

	"github.com/maheshrc27/linkedin-studio/internal/database"
	"go.uber.org/zap"
)

func runMigrate(ctx context.Context) error {
	db, err := database.Open(ctx, cfg.PostgresURI)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}
	zap.L().Info("schema applied")
	return nil
}
