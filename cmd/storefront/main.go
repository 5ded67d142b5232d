// Command storefront is the interactive console client for the shoe-shop
// REST backend: catalog browsing, mock login, cart, order history, and the
// admin CRUD console.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/lachei-alvin/shoe-app-frontend/internal/console"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/service"
	"github.com/lachei-alvin/shoe-app-frontend/internal/infrastructure/backend"
	"github.com/lachei-alvin/shoe-app-frontend/internal/infrastructure/config"
	debughttp "github.com/lachei-alvin/shoe-app-frontend/internal/infrastructure/http"
	"github.com/lachei-alvin/shoe-app-frontend/pkg/logger"
)

func main() {
	// Local overrides, best-effort: a missing .env is fine.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	client := backend.NewClient(cfg.APIBaseURL, log)
	fetch := backend.NewSessionFetcher(client, nil, log)
	gateway := backend.NewGateway(client, fetch, log)
	store := service.NewStore(gateway, fetch.Busy, log)

	// Operational endpoint: /health, /health/ready, /metrics.
	if cfg.DebugAddr != "" {
		e := debughttp.NewRouter(gateway)
		go func() {
			if err := e.Start(cfg.DebugAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Str("addr", cfg.DebugAddr).Msg("debug server stopped")
			}
		}()
		log.Info().Str("addr", cfg.DebugAddr).Msg("debug endpoint listening")
	}

	log.Info().Str("backend", cfg.APIBaseURL).Msg("storefront starting")

	shell := console.NewConsole(store, gateway, os.Stdin, os.Stdout, log)
	if err := shell.Run(ctx); err != nil {
		log.Error().Err(err).Msg("console terminated")
		os.Exit(1)
	}
}
