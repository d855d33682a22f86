package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/winhire/interview-engine/internal/audit"
	"github.com/winhire/interview-engine/internal/cache"
	"github.com/winhire/interview-engine/internal/config"
	dbpkg "github.com/winhire/interview-engine/internal/db"
	infraRepo "github.com/winhire/interview-engine/internal/infra/repository"
	"github.com/winhire/interview-engine/internal/logger"
	"github.com/winhire/interview-engine/internal/metrics"
	"github.com/winhire/interview-engine/internal/notify"
	"github.com/winhire/interview-engine/internal/routes"
	"github.com/winhire/interview-engine/internal/sweeper"
	"github.com/winhire/interview-engine/internal/timezone"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("failed to load config", zap.Error(err))
	}

	zl := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = zl.Sync() }()
	log := logger.NewZapAdapter(zl)

	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// INFRA
	// ======================================================
	db, err := dbpkg.Open(cfg.Database, log)
	if err != nil {
		zl.Fatal("failed to open database", zap.Error(err))
	}

	rdb, err := cache.NewClient(ctx, cfg.Redis)
	if err != nil {
		zl.Fatal("failed to connect redis", zap.Error(err))
	}
	if rdb != nil {
		defer rdb.Close()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	auditDispatcher := audit.NewDispatcher(audit.New(db), log, audit.DefaultQueueSize)
	defer auditDispatcher.Close()

	channels, err := notify.Channels(ctx, cfg.Notify, log)
	if err != nil {
		zl.Fatal("failed to configure notifications", zap.Error(err))
	}
	notifier := notify.NewDispatcher(channels, log, m, cfg.Notify.QueueSize)
	defer notifier.Close()

	clock := timezone.NewSystemClock(cfg.Scheduling.Timezone)

	// ======================================================
	// SWEEPER
	// ======================================================
	if cfg.Sweeper.Enabled {
		opts := []sweeper.Option{
			sweeper.WithAudit(auditDispatcher),
			sweeper.WithMetrics(m),
		}
		if rdb != nil {
			opts = append(opts, sweeper.WithLease(cache.NewLease(rdb, cfg.Sweeper.LeaseKey, cfg.Sweeper.LeaseTTL)))
		}

		sw := sweeper.New(
			infraRepo.NewInterviewGormRepository(db),
			clock,
			cfg.Sweeper.Interval,
			log,
			opts...,
		)
		go sw.Run(ctx)
	}

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      log,
		Metrics:  m,
		Gatherer: reg,
		Audit:    auditDispatcher,
		Notifier: notifier,
		Clock:    clock,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server running", map[string]interface{}{"addr": cfg.Addr()})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", map[string]interface{}{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", map[string]interface{}{"error": err.Error()})
	}
}
