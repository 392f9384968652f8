package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/arsathrahman00-arsath/fpda/internal/config"
	"github.com/arsathrahman00-arsath/fpda/internal/repository/mongodb"
	"github.com/arsathrahman00-arsath/fpda/internal/repository/sheets"
	"github.com/arsathrahman00-arsath/fpda/internal/scheduler"
	"github.com/arsathrahman00-arsath/fpda/internal/server/handlers"
	"github.com/arsathrahman00-arsath/fpda/internal/server/router"
	authsvc "github.com/arsathrahman00-arsath/fpda/internal/service/auth"
	masterdatasvc "github.com/arsathrahman00-arsath/fpda/internal/service/masterdata"
	mediasvc "github.com/arsathrahman00-arsath/fpda/internal/service/media"
	planningsvc "github.com/arsathrahman00-arsath/fpda/internal/service/planning"
	"github.com/arsathrahman00-arsath/fpda/pkg/clients/fpda"
	"github.com/arsathrahman00-arsath/fpda/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	sessionStore, err := mongodb.NewSessionStore(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init session store", zap.Error(err))
	}
	defer func() {
		if err := sessionStore.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var exporter sheets.Exporter
	if cfg.ReportingEnabled() {
		exporter, err = sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init report exporter", zap.Error(err))
		}
		baseLogger.Info("report export enabled")
	} else {
		baseLogger.Warn("sheets credentials missing, report export disabled")
	}

	apiClient := fpda.NewClient(cfg.Backend, baseLogger.Named("clients.fpda"))

	authManager := authsvc.NewManager(apiClient, sessionStore, baseLogger.Named("svc.auth"))
	mastersSvc := masterdatasvc.NewService(baseLogger.Named("svc.masterdata"))
	planner := planningsvc.NewPlanner(apiClient, baseLogger.Named("svc.planning"))
	mediaSvc := mediasvc.NewService(mediasvc.NewPolicy(cfg.Media), apiClient, baseLogger.Named("svc.media"))

	engine := router.New(router.Handlers{
		Auth:     handlers.NewAuthHandler(authManager, cfg.Session.CookieName, baseLogger.Named("handlers.auth")),
		Masters:  handlers.NewMastersHandler(apiClient, mastersSvc, baseLogger.Named("handlers.masters")),
		Workflow: handlers.NewWorkflowHandler(apiClient, exporter, baseLogger.Named("handlers.workflow")),
		Planning: handlers.NewPlanningHandler(planner, exporter, baseLogger.Named("handlers.planning")),
		Media:    handlers.NewMediaHandler(mediaSvc, baseLogger.Named("handlers.media")),
	}, authManager, cfg.Session.CookieName, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Scheduler, planner, exporter, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
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
