package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"lotledger/internal/api"
	"lotledger/internal/config"
	"lotledger/internal/logging"
	"lotledger/internal/worker"
	"lotledger/pkg/lotledger"
)

func main() {
	var host string
	var port int

	flag.StringVar(&host, "host", "", "Host to bind the server to (overrides LOT_LEDGER_HOST)")
	flag.IntVar(&port, "port", 0, "Port to run the server on (overrides LOT_LEDGER_PORT)")
	flag.Parse()

	cfg := config.Load()
	if host != "" {
		cfg.Host = host
	}
	if port > 0 {
		cfg.Port = port
	}

	logger, writer, err := logging.NewLogger(cfg.LogDir, logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		slog.Error("failed to initialize logger", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := writer.Close(); err != nil {
			logger.Error("failed to close log writer", "err", err)
		}
	}()

	engine := lotledger.NewWithOptions(lotledger.Options{Logger: logger})
	pool := worker.NewPool(worker.Options{
		Engine:     engine,
		Logger:     logger,
		Workers:    cfg.Workers,
		QueueDepth: cfg.QueueDepth,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	pool.Start(ctx)

	handler := api.NewRouter(pool, api.Config{
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		RequestTimeout: cfg.RequestTimeout,
	})
	handler = middleware.Compress(5)(handler)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("server starting", "addr", addr, "workers", cfg.Workers)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
		}
	}()

	<-ctx.Done()

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "err", err)
	}
	pool.Wait()
}
