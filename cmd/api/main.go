package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Ajayhariharan/activax/internal/api"
	"github.com/Ajayhariharan/activax/internal/core/store"
	"github.com/Ajayhariharan/activax/internal/infrastructure/db/sqlite"
	"github.com/Ajayhariharan/activax/internal/pkg/config"
	"github.com/Ajayhariharan/activax/pkg/logger"
)

// @title           Activax API
// @version         1.0
// @description     Role-based user and activity management service.
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Session token. Format: "Bearer {token}".
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := sqlite.New(cfg.Storage.Path, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Storage.Path).Msg("failed to open storage")
	}
	defer db.Close()

	st := store.New(db, log)
	if err := st.Seed(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to seed store")
	}

	e := api.NewRouter(st, db, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shutdown server")
	}
	log.Info().Msg("server stopped")
}
