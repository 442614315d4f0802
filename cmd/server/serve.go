package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/711pranjal/Egnyte-TrustLens/internal/api"
	"github.com/711pranjal/Egnyte-TrustLens/internal/auth"
	"github.com/711pranjal/Egnyte-TrustLens/internal/config"
	"github.com/711pranjal/Egnyte-TrustLens/internal/core"
	"github.com/711pranjal/Egnyte-TrustLens/internal/logger"
	"github.com/711pranjal/Egnyte-TrustLens/internal/session"
	"github.com/711pranjal/Egnyte-TrustLens/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.AppConfig

	log := logger.NewZapLogger(cfg.LogFilePath, cfg.IsProduction(), cfg.LogLevel)
	defer log.Sync()

	if !cfg.EnvFileLoaded {
		log.Info("config", "No .env file found, relying on environment variables", nil)
	}

	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	dbStore, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer dbStore.Close()

	contexts := session.NewContextRepository(cfg.SessionTTL, 10*time.Minute)
	chatService := core.NewChatService(dbStore, contexts, eng.responder, log)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.SessionTTL)

	apiHandler := api.NewAPIHandler(chatService, eng.responder, eng.corpus, tokens, log)
	router := api.NewRouter(apiHandler)

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server", "Starting server. Press Ctrl+C to quit.", map[string]interface{}{
			"addr":  serverAddr,
			"files": eng.corpus.Len(),
			"env":   cfg.AppEnv,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("could not listen on %s: %w", serverAddr, err)
	case <-quit:
	}
	log.Info("server", "Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server", "Server exiting gracefully", nil)
	return nil
}
