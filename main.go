package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"ainews/config"
	"ainews/di"
	"ainews/job"
	"ainews/rest"
	"ainews/utils/logger"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}

	log := logger.InitLogger(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("Starting server", "port", cfg.Server.Port)

	container := di.NewApplicationComponents(cfg)
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Cron.RefreshInterval > 0 {
		scheduler := job.NewScheduler()
		scheduler.Add(job.NewCacheWarmJob(container.AggregateNewsUsecase, cfg.Cron.RefreshInterval))
		scheduler.Start(ctx)
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	rest.RegisterRoutes(e, container, cfg)

	go func() {
		<-ctx.Done()
		log.Info("Shutting down server")
		if err := e.Shutdown(context.Background()); err != nil {
			log.Error("Error during shutdown", "error", err)
		}
	}()

	if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil && err != http.ErrServerClosed {
		logger.Logger.Error("Error starting server", "error", err)
		panic(err)
	}
}
