package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"listkeeper/internal/api"
	"listkeeper/internal/auth"
	"listkeeper/internal/cache"
	"listkeeper/internal/store"
	"listkeeper/internal/utils"
)

func main() {
	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.LogFile)
	if err != nil {
		log.Fatalf("FATAL: logger: %v", err)
	}
	defer logger.Close()

	st, err := store.Open(cfg.DatabaseURL, cfg.MaxDBConns)
	if err != nil {
		log.Fatalf("FATAL: database: %v", err)
	}
	defer st.Close()
	logger.Info("database connected, schema applied")

	var c *cache.Cache
	if cfg.RedisAddr != "" {
		c, err = cache.Connect(context.Background(), cfg.RedisAddr)
		if err != nil {
			log.Fatalf("FATAL: redis: %v", err)
		}
		defer c.Close()
		logger.Info("redis connected at %s", cfg.RedisAddr)
	}

	sessions := auth.NewSessions(cfg.SessionTTL)
	defer sessions.Close()

	server := api.NewServer(st, sessions, c, logger)
	handler := api.WithMiddleware(api.NewRouter(server), cfg.ClientOrigins, logger.Writer())

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running on :%d", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: server: %v", err)
		}
	case sig := <-sigCh:
		logger.Info("received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown: %v", err)
		}
	}
}
