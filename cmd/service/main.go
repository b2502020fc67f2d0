// File: cmd/service/main.go
// @title        Star Wars Blog API
// @version      1.0
// @description  使用者、星球、角色與最愛的 REST API
// @host         localhost:3000
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"starwars-api/internal/config"
	"starwars-api/internal/database"
	"starwars-api/internal/logger"
	"starwars-api/internal/router"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

var (
	loadConfig      = config.Load
	newLogger       = logger.New
	openDB          = database.Open
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer  = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	exitFunc        = os.Exit
)

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	log := newLogger(cfg.Log)

	if err := runMigrationsFn(cfg.Database.URL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	db, err := openDB(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("關閉 DB 連線失敗")
		}
	}()

	e := router.New(db, log, cfg.Server)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr()).Msg("server starting")
		errCh <- startServer(e, cfg.Server.Addr())
	}()

	select {
	case err := <-errCh:
		return serveErr(err)
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.Server.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := shutdownServer(shutdownCtx, e); err != nil {
		return fmt.Errorf("server shutdown 失敗: %w", err)
	}
	return serveErr(<-errCh)
}

func serveErr(err error) error {
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("server 執行失敗: %w", err)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		zlog.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		zlog.Error().Err(err).Msg("service stopped")
		exitFunc(1)
	}
}
