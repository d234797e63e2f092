package main

import (
	"StationAdmin/internal/config"
	"StationAdmin/internal/handlers"
	"StationAdmin/internal/middleware"
	"StationAdmin/internal/repo"
	"StationAdmin/internal/scheduler"
	"StationAdmin/internal/service"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	if gormDB == nil {
		sugar.Warnw("DATABASE_URI is empty, running without a data source")
	}

	userService := service.NewUserService(repo.NewUserRepository(gormDB))
	stationService := service.NewStationService(repo.NewStationRepository(gormDB))

	if cfg.ProbeInterval > 0 {
		job := scheduler.NewProbeJob(stationService, cfg.ProbeInterval, sugar)
		if err := job.Start(); err != nil {
			sugar.Fatalw("failed to start probe job", "error", err)
		}
		defer job.Stop()
	}

	h := handlers.NewHandler(userService, stationService, sugar, cfg)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DataSource", gormDB != nil,
		"CORSOrigins", cfg.CORSOrigins,
		"ProbeInterval", cfg.ProbeInterval,
	)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// выходим через return, чтобы отработали defer: остановка задачи и Sync логгера
	if err := serve(ctx, srv, sugar); err != nil {
		sugar.Errorw("Server failed", "error", err)
	}
}

// serve запускает сервер и ждёт либо его ошибки, либо отмены ctx.
// При отмене выполняет graceful shutdown. os.Exit здесь не вызывается.
func serve(ctx context.Context, srv *http.Server, logger *zap.SugaredLogger) error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Infow("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	logger.Infow("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
