package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	alerthandler "caresignal/internal/alert/handler"
	alertmetrics "caresignal/internal/alert/metrics"
	alertservice "caresignal/internal/alert/service"
	alertstore "caresignal/internal/alert/store"
	alerttracer "caresignal/internal/alert/tracer"
	"caresignal/internal/assignment"
	"caresignal/internal/audit"
	consenthandler "caresignal/internal/consent/handler"
	consentmetrics "caresignal/internal/consent/metrics"
	consentservice "caresignal/internal/consent/service"
	consentstore "caresignal/internal/consent/store"
	"caresignal/internal/disclosure"
	"caresignal/internal/notify"
	"caresignal/internal/platform/config"
	"caresignal/internal/platform/database"
	"caresignal/internal/platform/health"
	"caresignal/internal/platform/logger"
	"caresignal/internal/platform/metrics"
	httptransport "caresignal/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal service
// packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing caresignal",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
	)

	dbCfg := database.DefaultConfig()
	dbCfg.URL = cfg.DatabaseURL
	pool, err := database.New(dbCfg)
	if err != nil {
		log.Error("database initialization failed", "error", err)
		os.Exit(1)
	}

	var (
		consents    consentservice.Store
		assignments alertservice.AssignmentSource
		alerts      alertservice.Store
		disclosures disclosure.Store
		txRunner    alertservice.TxRunner
		auditStore  audit.Store
	)

	if pool != nil {
		db := pool.DB()
		consents = consentstore.NewPostgres(db)
		assignments = assignment.NewPostgres(db)
		alerts = alertstore.NewPostgres(db)
		disclosures = disclosure.NewPostgres(db)
		txRunner = newReportPostgresTx(db)
		auditStore = audit.NewPostgres(db)
		log.Info("using postgres storage")
	} else {
		consents = consentstore.New()
		assignments = assignment.NewInMemory()
		alerts = alertstore.NewInMemory()
		disclosures = disclosure.NewInMemory()
		messages := notify.NewInMemory()
		txRunner = alertservice.NewPassthroughTx(alertservice.TxStores{
			Alerts:      alerts,
			Messages:    messages,
			Disclosures: disclosures,
		})
		auditStore = audit.NewInMemoryStore()
		log.Warn("DATABASE_URL not set, using in-memory storage")
	}

	auditor := audit.NewPublisher(auditStore,
		audit.WithAsyncBuffer(cfg.AuditBuffer),
		audit.WithPublisherLogger(log),
	)
	defer auditor.Close()

	sharedMetrics := metrics.New()

	consentSvc := consentservice.NewService(
		consents,
		auditor,
		log,
		consentservice.WithMetrics(consentmetrics.New()),
		consentservice.WithConsentTTL(cfg.ConsentTTL),
	)
	alertSvc := alertservice.NewService(
		alerts,
		txRunner,
		consents,
		assignments,
		auditor,
		log,
		alertservice.WithMetrics(alertmetrics.New()),
		alertservice.WithTracer(alerttracer.NewOTel()),
	)

	healthHandler := health.New(cfg.Environment)
	if pool != nil {
		healthHandler.RegisterCheck("database", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Health(ctx)
		})
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:        log,
		Metrics:       sharedMetrics,
		JWTSigningKey: cfg.JWTSigningKey,
		Health:        healthHandler,
		Alerts:        alerthandler.New(alertSvc, log),
		Consents:      consenthandler.New(consentSvc, log),
		Disclosures:   disclosure.NewHandler(disclosures, log),
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	if pool != nil {
		if err := pool.Close(); err != nil {
			log.Error("closing database pool failed", "error", err)
		}
	}

	log.Info("server stopped")
}
