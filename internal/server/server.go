package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type Server struct {
	server *http.Server
	logger zerolog.Logger
}

func New(port string, handler *Handler, logger zerolog.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           Routes(handler, logger),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Routes wires the HTTP surface: storefront pages plus the JSON buy endpoints.
func Routes(handler *Handler, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handler.Home)
	mux.HandleFunc("GET /item/{id}", handler.ItemDetail)
	mux.HandleFunc("GET /buy/{id}", handler.BuyItem)
	mux.HandleFunc("GET /order/{id}", handler.OrderDetail)
	mux.HandleFunc("GET /buy/order/{id}", handler.BuyOrder)
	mux.HandleFunc("GET /success/", handler.Success)
	mux.HandleFunc("GET /cancel/", handler.Cancel)

	return middlewareChain(logger, mux)
}

// middlewareChain keeps recover inside the logger so a panicking request
// still produces an access-log line with the 500 status.
func middlewareChain(logger zerolog.Logger, next http.Handler) http.Handler {
	next = recoverMiddleware(logger)(next)
	next = loggerMiddleware(logger)(next)
	return requestIDMiddleware(next)
}

func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("http server listening")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
