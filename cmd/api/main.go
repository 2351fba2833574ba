package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bookify/internal/config"
	"bookify/internal/database"
	"bookify/internal/server"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := server.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	srv := server.New(cfg, db, nil)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("http server listening addr=%s dialect=%s", cfg.HTTPAddr, database.Dialect(db))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down timeout=%s", cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown failed: %v", err)
	}
	// Shutdown leaves hijacked websocket connections open.
	srv.Hub.Close()
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
