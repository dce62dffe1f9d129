// Package app wires the storage backend and the use case services shared by
// the HTTP server and the CLI.
package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rashikfit/backend/config"
	"github.com/rashikfit/backend/internal/domain"
	"github.com/rashikfit/backend/internal/infrastructure/repository"
	"github.com/rashikfit/backend/internal/infrastructure/store"
	"github.com/rashikfit/backend/internal/infrastructure/usda"
	"github.com/rashikfit/backend/internal/usecase"
)

// App owns the store and every service built on top of it
type App struct {
	Store      domain.Store
	Auth       *usecase.AuthService
	Calculator *usecase.CalculatorService
	Foods      *usecase.FoodService
	Recipes    *usecase.RecipeService
	Plans      *usecase.PlanService
	Progress   *usecase.ProgressService
}

// Open connects the configured store and builds the services
func Open(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*App, error) {
	s, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Type, err)
	}
	return New(cfg, s, logger), nil
}

// New builds the services over an already opened store. USDA import stays
// disabled unless an API key is configured.
func New(cfg *config.Config, s domain.Store, logger logrus.FieldLogger) *App {
	repo := repository.NewUserDataRepository(s)

	var usdaClient domain.USDAClient
	if cfg.USDA.APIKey != "" {
		usdaClient = usda.NewClient(cfg.USDA.APIKey, cfg.USDA.BaseURL, cfg.RateLimit.USDA, logger)
	} else {
		logger.Info("USDA API key not configured, food import disabled")
	}

	foods := usecase.NewFoodService(repo, s, usdaClient, usecase.FoodServiceConfig{
		CacheTTL:               cfg.Cache.TTL,
		MinConfidenceThreshold: cfg.Cache.MinConfidenceThreshold,
	}, logger)

	return &App{
		Store:      s,
		Auth:       usecase.NewAuthService(repository.NewUserRegistry(s), logger),
		Calculator: usecase.NewCalculatorService(repo, logger),
		Foods:      foods,
		Recipes:    usecase.NewRecipeService(repo, foods, logger),
		Plans: usecase.NewPlanService(repo, usecase.PlannerConfig{
			DefaultMeals: cfg.Planner.DefaultMeals,
			MinMeals:     cfg.Planner.MinMeals,
			MaxMeals:     cfg.Planner.MaxMeals,
		}, logger),
		Progress: usecase.NewProgressService(repo, logger),
	}
}

func (a *App) Close() error {
	return a.Store.Close()
}
