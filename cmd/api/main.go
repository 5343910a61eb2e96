package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/nghetinhport/tos-bigdata-api/internal/api/http"
	"github.com/nghetinhport/tos-bigdata-api/internal/api/http/handlers"
	"github.com/nghetinhport/tos-bigdata-api/internal/auth"
	"github.com/nghetinhport/tos-bigdata-api/internal/config"
	"github.com/nghetinhport/tos-bigdata-api/internal/observability"
	"github.com/nghetinhport/tos-bigdata-api/internal/persistence"
	"github.com/nghetinhport/tos-bigdata-api/internal/report"
	"github.com/nghetinhport/tos-bigdata-api/internal/repository"
	"github.com/nghetinhport/tos-bigdata-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	users := repository.NewStaticUserRepository(repository.DefaultUsers())

	var throttle service.LoginThrottle
	if redis.Enabled() {
		throttle = redis
	}
	authService := service.NewAuthService(cfg.Auth, users, throttle, logger)
	authMiddleware := auth.NewMiddleware(authService.TokenManager())

	reportService := report.NewService(pg, logger)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Catalog:        handlers.NewCatalogHandler(reportService),
		Volumes:        handlers.NewVolumesHandler(reportService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
