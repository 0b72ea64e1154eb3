package main

import (
	"context"
	"time"

	mongoMigration "careconnect/internal/migrations/mongo"
	"careconnect/pkg/config"
)

const (
	JobName = "careconnect-migrate"

	migrationTimeout = 120 * time.Second
)

func main() {
	cfg := config.Load(JobName)
	if !cfg.UsesMongo() {
		cfg.Log.Fatal("Migrations require the mongo storage driver", "storage_driver", cfg.StorageDriver)
	}

	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	ctx, cancel := context.WithTimeout(context.Background(), migrationTimeout)
	defer cancel()

	cfg.Log.Info("Starting Mongo migration job")
	if err := mongoMigration.RunMigration(ctx, cfg.Client.Mongo, cfg.MongoDatabaseName, cfg.Log); err != nil {
		cfg.Log.Error("Migration failed", "error", err)
		return
	}
	cfg.Log.Info("Migration completed successfully")
}
