package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"retroexchange/backend/internal/auth"
	"retroexchange/backend/internal/config"
	"retroexchange/backend/internal/database"
	"retroexchange/backend/internal/handler"
	"retroexchange/backend/internal/logging"
	"retroexchange/backend/internal/service"
	"retroexchange/backend/internal/store"
	"retroexchange/backend/internal/store/gormstore"
	"retroexchange/backend/internal/store/memstore"

	// Swagger imports
	_ "retroexchange/backend/docs" // This is important for swag to find the generated docs
)

const shutdownTimeout = 5 * time.Second

// @title           Retro Video Game Exchange API
// @version         1.0
// @description     Peer-to-peer exchange for retro video games: register, log in, list, search and trade games.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	gin.SetMode(cfg.GinMode)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	st, err := openStore(cfg, log)
	if err != nil {
		return err
	}

	var codec auth.TokenCodec = auth.IDCodec{}
	if cfg.TokenMode == config.TokenModeJWT {
		codec = auth.JWTCodec{Secret: []byte(cfg.JWTSecret)}
	}
	resolver := auth.NewResolver(st, codec)

	users := service.NewUserService(st, auth.NewHasher(cfg.BcryptCost), resolver)
	games := service.NewGameService(st, cfg.StrictOwnership)
	router := handler.NewRouter(handler.New(users, games, log), resolver, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("token_mode", cfg.TokenMode).
			Bool("strict_ownership", cfg.StrictOwnership).
			Msg("Server is running")
		log.Info().Msgf("Swagger UI is available at http://localhost:%d/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openStore(cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	if cfg.UsesMemoryStore() {
		log.Warn().Msg("DATABASE_URL not set, using in-memory store")
		return memstore.New(), nil
	}

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}
	return gormstore.New(db), nil
}
