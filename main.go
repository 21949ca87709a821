package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/config"
	"github.com/heyybhargav/personal-newsletter-sub000/di"
	"github.com/heyybhargav/personal-newsletter-sub000/driver/newsletter_db"
	"github.com/heyybhargav/personal-newsletter-sub000/job"
	"github.com/heyybhargav/personal-newsletter-sub000/rest"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"

	"github.com/labstack/echo/v4"
)

func main() {
	log := logger.InitLogger()
	log.Info("starting briefing service")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := newsletter_db.InitDBPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	// The worker pool executes briefing runs; the dispatch usecase only
	// enqueues, so triggers return before any feed is fetched.
	worker := job.NewDispatchWorker(
		container.DispatchUsecase,
		cfg.Dispatch.Workers,
		cfg.Dispatch.QueueSize,
		cfg.Dispatch.RunTimeout,
	)
	container.DispatchUsecase.SetEnqueuer(worker)
	worker.Start(ctx)

	scheduler := job.NewJobScheduler()
	scheduledDispatch := job.NewScheduledDispatch(container.SubscriberGateway, container.DispatchUsecase)
	scheduler.Add(job.Job{
		Name:     "scheduled_dispatch",
		Interval: cfg.Dispatch.ScheduleInterval,
		Timeout:  cfg.Dispatch.ScheduleInterval,
		Fn:       scheduledDispatch.Tick,
	})
	scheduler.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	rest.RegisterRoutes(e, container, cfg)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", "error", err)
	}

	scheduler.Shutdown()
	worker.Shutdown()
	log.Info("shutdown complete")
}
