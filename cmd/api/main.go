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
	"go.uber.org/zap"

	"github.com/ayushbridge/ayushbridge/internal/config"
	v1 "github.com/ayushbridge/ayushbridge/internal/handler/v1"
	"github.com/ayushbridge/ayushbridge/internal/service"
	"github.com/ayushbridge/ayushbridge/internal/storage/jsonfile"
	"github.com/ayushbridge/ayushbridge/pkg/auth"
	"github.com/ayushbridge/ayushbridge/pkg/logger"
	"github.com/ayushbridge/ayushbridge/pkg/metrics"
	"github.com/ayushbridge/ayushbridge/pkg/tracer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	tp, err := tracer.Init(cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(ctx)
	}()

	collector := metrics.NewCollector("ayushbridge")
	storeObserver := func(store string, elapsed time.Duration, failed bool) {
		collector.StoreWriteDuration.WithLabelValues(store).Observe(elapsed.Seconds())
		if failed {
			collector.StoreWriteFailures.WithLabelValues(store).Inc()
		}
	}

	// The users, records and dictionary documents must exist; a missing
	// source fails the whole process. The audit log starts empty.
	userStore, err := jsonfile.LoadUsers(cfg.Data.UsersPath())
	if err != nil {
		return err
	}
	recordStore, err := jsonfile.LoadRecords(cfg.Data.RecordsPath(), storeObserver)
	if err != nil {
		return err
	}
	dict, err := jsonfile.LoadDictionary(cfg.Data.DictionaryPath())
	if err != nil {
		return err
	}
	auditStore, err := jsonfile.LoadAudit(cfg.Data.AuditPath(), storeObserver)
	if err != nil {
		return err
	}

	log.Info("data stores loaded",
		zap.String("dir", cfg.Data.Dir),
		zap.Int("dictionary_entries", dict.Len()),
	)

	jwtManager := auth.NewJWTManager(cfg.JWT)
	auditSvc := service.NewAuditService(auditStore, log)
	authSvc := service.NewAuthService(userStore, auditSvc, jwtManager, log)
	userSvc := service.NewUserService(userStore, log)
	recordSvc := service.NewRecordService(recordStore, userStore, dict, log)
	termSvc := service.NewTerminologyService(dict, log)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := v1.NewRouter(v1.RouterDeps{
		Config:    cfg,
		AuthSvc:   authSvc,
		UserSvc:   userSvc,
		RecordSvc: recordSvc,
		TermSvc:   termSvc,
		AuditSvc:  auditSvc,
		Collector: collector,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
