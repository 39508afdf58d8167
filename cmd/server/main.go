package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/tavolo/backoffice/internal/client"
	"github.com/tavolo/backoffice/internal/config"
	"github.com/tavolo/backoffice/internal/handler"
	"github.com/tavolo/backoffice/internal/middleware"
	"github.com/tavolo/backoffice/internal/queue"
	"github.com/tavolo/backoffice/internal/router"
	"github.com/tavolo/backoffice/pkg/logging"
)

func main() {
	// A .env file is optional; real deployments inject the environment.
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()
	backend := client.New(cfg.BackendURL, cfg.BackendToken, cfg.BackendTimeout)

	rdb := config.NewRedisClient()
	if rdb == nil {
		slog.Warn("redis unreachable, response cache and rate limiting disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	cacheMW := middleware.NewRedisCache(cacheCfg, rdb)
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger())

	router.RegisterRoutes(e)
	router.RegisterBackOffice(e, router.BackOfficeHandlers{
		Reservations: handler.NewReservationHandler(backend, cfg.AMQPURL),
		Tables:       handler.NewTableHandler(backend),
		Menu:         handler.NewMenuHandler(backend),
		Orders:       handler.NewOrderHandler(backend),
		Reports:      handler.NewReportHandler(backend),
	}, cfg.JWTSecret, cacheMW)
	router.RegisterPublic(e, handler.NewPublicHandler(backend), rateMW)

	// The event consumer tails reservation lifecycle events, keeps the
	// audit log and purges the response cache after every write.
	go func() {
		err := queue.StartConsumer(queue.ConsumerOptions{
			URL:         cfg.AMQPURL,
			AuditPath:   cfg.AuditLogPath,
			Redis:       rdb,
			CachePrefix: cacheCfg.Prefix,
		})
		slog.Error("event consumer stopped", "err", err)
	}()

	addr := ":" + cfg.Port
	slog.Info("listening", "addr", addr, "env", cfg.Env, "backend", cfg.BackendURL)
	if err := e.Start(addr); err != nil {
		slog.Error("server stopped", "err", err)
	}
}
