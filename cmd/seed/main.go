package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/config"
	"github.com/skillswap/backend/internal/infrastructure/snapshot"
	"github.com/skillswap/backend/internal/seed"
	"github.com/skillswap/backend/pkg/logger"
	boltRepo "github.com/skillswap/backend/repository/bolt"
)

// Seeds the snapshot store with the demo dataset. Safe to run repeatedly;
// a non-empty store is left untouched.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: "console",
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	store, err := snapshot.Open(cfg.Store.Path)
	if err != nil {
		zapLogger.Fatal("failed to open snapshot store", zap.Error(err))
	}
	defer store.Close()

	err = seed.Load(
		context.Background(),
		boltRepo.NewUserRepository(store),
		boltRepo.NewSwapRequestRepository(store),
		boltRepo.NewReviewRepository(store),
		zapLogger,
	)
	if err != nil {
		zapLogger.Fatal("seeding failed", zap.Error(err))
	}
}
