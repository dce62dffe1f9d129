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

	"github.com/sirupsen/logrus"

	"github.com/rashikfit/backend/config"
	"github.com/rashikfit/backend/internal/app"
	httpDelivery "github.com/rashikfit/backend/internal/delivery/http"
	"github.com/rashikfit/backend/internal/logging"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.Log)
	logger.WithFields(logrus.Fields{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"store":       cfg.Store.Type,
		"cache_ttl":   cfg.Cache.TTL.String(),
	}).Info("Starting Rashik backend v1.0.0")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize storage and the usecase layer
	services, err := app.Open(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize services")
	}
	defer func() {
		if err := services.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close store")
		}
	}()

	handler := httpDelivery.NewHandler(httpDelivery.Services{
		Auth:       services.Auth,
		Calculator: services.Calculator,
		Foods:      services.Foods,
		Recipes:    services.Recipes,
		Plans:      services.Plans,
		Progress:   services.Progress,
	}, logger)

	router := httpDelivery.SetupRouter(cfg, handler, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("Server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Graceful shutdown failed")
	}
}
