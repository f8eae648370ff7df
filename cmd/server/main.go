package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/skillswap/backend/api/handler"
	"github.com/skillswap/backend/internal/config"
	"github.com/skillswap/backend/internal/infrastructure/monitor"
	"github.com/skillswap/backend/internal/infrastructure/snapshot"
	"github.com/skillswap/backend/internal/middleware"
	"github.com/skillswap/backend/internal/router"
	"github.com/skillswap/backend/internal/seed"
	"github.com/skillswap/backend/internal/services/lifecycle"
	"github.com/skillswap/backend/pkg/httpcontext"
	"github.com/skillswap/backend/pkg/logger"
	boltRepo "github.com/skillswap/backend/repository/bolt"
	adminUC "github.com/skillswap/backend/usecase/admin"
	authUC "github.com/skillswap/backend/usecase/auth"
	directoryUC "github.com/skillswap/backend/usecase/directory"
	profileUC "github.com/skillswap/backend/usecase/profile"
	reviewUC "github.com/skillswap/backend/usecase/review"
	swapUC "github.com/skillswap/backend/usecase/swap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	store, err := snapshot.Open(cfg.Store.Path)
	if err != nil {
		zapLogger.Fatal("failed to open snapshot store", zap.Error(err))
	}
	manager.Register("snapshot_store", func(ctx context.Context) error {
		return store.Close()
	})

	userRepo := boltRepo.NewUserRepository(store)
	swapRepo := boltRepo.NewSwapRequestRepository(store)
	reviewRepo := boltRepo.NewReviewRepository(store)
	sessionRepo := boltRepo.NewSessionRepository(store, cfg.Session.TTL)

	if cfg.Seed.Enabled {
		if err := seed.Load(appCtx, userRepo, swapRepo, reviewRepo, zapLogger); err != nil {
			zapLogger.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	mon := monitor.New(store, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	authUseCase := authUC.New(userRepo, sessionRepo, cfg.Session.TTL, zapLogger)
	profileUseCase := profileUC.New(userRepo, zapLogger)
	directoryUseCase := directoryUC.New(userRepo, reviewRepo, cfg.Directory.PageSize, zapLogger)
	swapUseCase := swapUC.New(swapRepo, userRepo, zapLogger)
	reviewUseCase := reviewUC.New(reviewRepo, swapRepo, userRepo, zapLogger)
	adminUseCase := adminUC.New(userRepo, swapRepo, reviewRepo, reviewUseCase, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:      apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Directory: apiHandler.NewDirectoryHandler(directoryUseCase, ctxAdapter, zapLogger),
		Profile:   apiHandler.NewProfileHandler(profileUseCase, ctxAdapter, zapLogger),
		Swap:      apiHandler.NewSwapHandler(swapUseCase, ctxAdapter, zapLogger),
		Review:    apiHandler.NewReviewHandler(reviewUseCase, ctxAdapter, zapLogger),
		Admin:     apiHandler.NewAdminHandler(adminUseCase, ctxAdapter, zapLogger),
		Health:    apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	sessionAuth := middleware.SessionAuth(authUseCase, zapLogger)
	optionalSession := middleware.OptionalSession(authUseCase, zapLogger)
	requireAdmin := middleware.RequireAdmin(userRepo, zapLogger)
	r := router.New(handlers, sessionAuth, optionalSession, requireAdmin)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
