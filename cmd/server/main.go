package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/eliksir/quote-service/internal/catalog"
	"github.com/eliksir/quote-service/internal/config"
	"github.com/eliksir/quote-service/internal/metrics"
	"github.com/eliksir/quote-service/internal/repository/mongodb"
	"github.com/eliksir/quote-service/internal/repository/sheets"
	"github.com/eliksir/quote-service/internal/scheduler"
	"github.com/eliksir/quote-service/internal/server/handlers"
	"github.com/eliksir/quote-service/internal/server/router"
	inquirysvc "github.com/eliksir/quote-service/internal/service/inquiry"
	policysvc "github.com/eliksir/quote-service/internal/service/policy"
	quotesvc "github.com/eliksir/quote-service/internal/service/quote"
	"github.com/eliksir/quote-service/pkg/clients/backend"
	whatsappclient "github.com/eliksir/quote-service/pkg/clients/whatsapp"
	"github.com/eliksir/quote-service/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	reg := metrics.NewRegistry()

	backendClient := backend.NewClient(backend.Config{
		BaseURL:       cfg.Backend.BaseURL,
		Timeout:       cfg.Backend.Timeout,
		MaxRetries:    cfg.Policy.FetchRetries,
		RetryInterval: cfg.Policy.RetryInterval,
	}, baseLogger.Named("client.backend"))

	loader := policysvc.NewFallbackLoader(
		policysvc.NewRemoteSource(backendClient),
		policysvc.NewDefaultSource(),
		reg,
		baseLogger.Named("policy.loader"),
	)
	holder := policysvc.NewHolder()
	refresher := policysvc.NewRefresher(loader, holder, baseLogger.Named("policy.refresher"))

	sched := scheduler.NewScheduler(cfg.Policy.RefreshSchedule, refresher, baseLogger.Named("scheduler"))
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	quotes := quotesvc.NewService(catalog.Default(), holder, reg, baseLogger.Named("svc.quote"))

	var store inquirysvc.Store
	if cfg.MongoEnabled() {
		connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoRepo, err := mongodb.NewMongoDBRepository(connectCtx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		cancel()
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		store = mongoRepo
	} else {
		baseLogger.Warn("mongodb uri missing, inquiries will not be persisted")
	}

	var publishers []inquirysvc.Publisher
	if cfg.SheetsEnabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		publishers = append(publishers, sheets.NewInquiryLedger(sheetsRepo))
	} else {
		baseLogger.Warn("google sheets not configured, inquiry sheet disabled")
	}

	if cfg.WhatsAppEnabled() {
		whatsClient := whatsappclient.NewClient(cfg.WhatsApp)
		publishers = append(publishers, inquirysvc.NewWhatsAppNotifier(whatsClient, cfg.WhatsApp.NotifyTo))
		baseLogger.Info("whatsapp inquiry notifications enabled")
	} else {
		baseLogger.Warn("whatsapp token missing, inquiry notifications disabled")
	}

	inquiries := inquirysvc.NewService(store, quotes, reg, baseLogger.Named("svc.inquiry"), publishers...)

	engine := router.New(router.Deps{
		Calculator:     handlers.NewCalculatorHandler(quotes, holder, baseLogger.Named("handlers.calculator")),
		Inquiries:      handlers.NewInquiryHandler(inquiries, baseLogger.Named("handlers.inquiry")),
		Metrics:        reg.Handler(),
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
