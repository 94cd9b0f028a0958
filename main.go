package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/nikolayk812/checkout/internal/config"
	"github.com/nikolayk812/checkout/internal/db"
	"github.com/nikolayk812/checkout/internal/repository"
	"github.com/nikolayk812/checkout/internal/server"
	"github.com/nikolayk812/checkout/internal/service"
	"github.com/nikolayk812/checkout/internal/stripe"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(".")
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to postgres")
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("apply migrations")
	}

	gateway, err := stripe.New(cfg.StripeSecretKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("init payment gateway")
	}

	items := repository.NewItem(pool)
	orders := repository.NewOrder(pool)

	checkout, err := service.NewCheckout(items, orders, gateway, cfg.PublicBaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("init checkout service")
	}

	handler, err := server.NewHandler(items, orders, checkout, cfg.StripePublicKey, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("init handler")
	}

	srv := server.New(cfg.ServerPort, handler, logger)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}

	logger.Info().Msg("server stopped")
}
