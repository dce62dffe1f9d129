package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rashikfit/backend/internal/domain"
	"github.com/rashikfit/backend/internal/infrastructure/usda"
)

// FoodServiceConfig holds configuration for the food service
type FoodServiceConfig struct {
	CacheTTL               time.Duration
	MinConfidenceThreshold float64
	AcceptLowConfidence    bool
}

// FoodInput is the user-supplied part of a custom food
type FoodInput struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize string  `json:"servingSize"`
}

func (in FoodInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: food name is required", domain.ErrInvalidRequest)
	}
	if strings.TrimSpace(in.ServingSize) == "" {
		return fmt.Errorf("%w: serving size is required", domain.ErrInvalidRequest)
	}
	if in.Calories < 0 || in.Protein < 0 || in.Carbs < 0 || in.Fat < 0 {
		return fmt.Errorf("%w: nutrition values must not be negative", domain.ErrInvalidRequest)
	}
	return nil
}

// FoodService manages the predefined catalogue, custom foods and USDA imports
type FoodService struct {
	repo       domain.UserDataRepository
	cache      domain.Store
	usdaClient domain.USDAClient
	matcher    *Matcher
	cacheTTL   time.Duration
	acceptLow  bool
	logger     logrus.FieldLogger
	now        func() time.Time
	newID      func() string
}

// NewFoodService creates a food service. usdaClient may be nil, which disables imports.
func NewFoodService(
	repo domain.UserDataRepository,
	cache domain.Store,
	usdaClient domain.USDAClient,
	config FoodServiceConfig,
	logger logrus.FieldLogger,
) *FoodService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 720 * time.Hour
	}

	return &FoodService{
		repo:       repo,
		cache:      cache,
		usdaClient: usdaClient,
		matcher:    NewMatcher(MatchConfig{MinConfidenceThreshold: config.MinConfidenceThreshold, EnableFuzzyMatching: true}),
		cacheTTL:   cacheTTL,
		acceptLow:  config.AcceptLowConfidence,
		logger:     logger,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// ListFoods returns the predefined catalogue followed by the user's custom foods
func (s *FoodService) ListFoods(ctx context.Context, userID string) ([]domain.FoodItem, error) {
	custom, err := s.repo.CustomFoods(ctx, userID)
	if err != nil {
		return nil, err
	}
	return append(PredefinedFoods(), custom...), nil
}

// SearchFoods ranks all visible foods by name similarity. An empty query lists everything.
func (s *FoodService) SearchFoods(ctx context.Context, userID, query string) ([]domain.FoodItem, error) {
	foods, err := s.ListFoods(ctx, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return foods, nil
	}
	return s.matcher.RankFoods(query, foods), nil
}

// EligibleIngredients lists the foods that can be used in a recipe
func (s *FoodService) EligibleIngredients(ctx context.Context, userID string) ([]domain.FoodItem, error) {
	foods, err := s.ListFoods(ctx, userID)
	if err != nil {
		return nil, err
	}
	return EligibleIngredients(foods), nil
}

// FindFood looks a food up by id among the catalogue and the user's foods
func (s *FoodService) FindFood(ctx context.Context, userID, foodID string) (domain.FoodItem, error) {
	foods, err := s.ListFoods(ctx, userID)
	if err != nil {
		return domain.FoodItem{}, err
	}
	for _, f := range foods {
		if f.ID == foodID {
			return f, nil
		}
	}
	return domain.FoodItem{}, fmt.Errorf("%w: %s", domain.ErrFoodNotFound, foodID)
}

// AddCustomFood validates and stores a new food owned by userID
func (s *FoodService) AddCustomFood(ctx context.Context, userID string, in FoodInput) (domain.FoodItem, error) {
	if err := in.validate(); err != nil {
		return domain.FoodItem{}, err
	}

	owner := userID
	item := domain.FoodItem{
		ID:          s.newID(),
		OwnerID:     &owner,
		Name:        strings.TrimSpace(in.Name),
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fat:         in.Fat,
		ServingSize: strings.TrimSpace(in.ServingSize),
		IsCustom:    true,
	}

	foods, err := s.repo.CustomFoods(ctx, userID)
	if err != nil {
		return domain.FoodItem{}, err
	}
	if err := s.repo.SaveCustomFoods(ctx, userID, append(foods, item)); err != nil {
		return domain.FoodItem{}, err
	}

	if _, ok := ParseServingSizeToGrams(item.ServingSize); !ok {
		s.logger.WithFields(logrus.Fields{"user_id": userID, "food": item.Name, "serving": item.ServingSize}).
			Info("custom food has no gram weight and cannot be used as an ingredient")
	}
	return item, nil
}

// DeleteCustomFood removes one of the user's foods. Existing recipes keep their copies.
func (s *FoodService) DeleteCustomFood(ctx context.Context, userID, foodID string) error {
	foods, err := s.repo.CustomFoods(ctx, userID)
	if err != nil {
		return err
	}
	kept := foods[:0]
	for _, f := range foods {
		if f.ID != foodID {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(foods) {
		return fmt.Errorf("%w: %s", domain.ErrFoodNotFound, foodID)
	}
	return s.repo.SaveCustomFoods(ctx, userID, kept)
}

// ImportFromUSDA searches FoodData Central for query, picks the best match and
// saves it as a custom food with macros per 100 g.
// Flow: check cache -> search USDA -> match best result -> cache -> save
func (s *FoodService) ImportFromUSDA(ctx context.Context, userID, query string) (domain.FoodItem, error) {
	if s.usdaClient == nil {
		return domain.FoodItem{}, domain.ErrImportDisabled
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.FoodItem{}, fmt.Errorf("%w: query is required", domain.ErrInvalidRequest)
	}

	log := s.logger.WithFields(logrus.Fields{"user_id": userID, "query": query})
	cacheKey := usdaCacheKey(query)

	imported, err := s.getFromCache(ctx, cacheKey)
	if err != nil {
		imported, err = s.lookupUSDA(ctx, query)
		if err != nil {
			return domain.FoodItem{}, err
		}
		if err := s.setInCache(ctx, cacheKey, imported); err != nil {
			log.WithError(err).Warn("failed to cache USDA lookup")
		}
	} else {
		log.Debug("USDA lookup served from cache")
	}

	return s.saveImported(ctx, userID, imported, log)
}

// ImportByFdcID fetches a single FoodData Central record by id and saves it
// as a custom food with macros per 100 g. No matching is involved.
func (s *FoodService) ImportByFdcID(ctx context.Context, userID string, fdcID int) (domain.FoodItem, error) {
	if s.usdaClient == nil {
		return domain.FoodItem{}, domain.ErrImportDisabled
	}
	if fdcID <= 0 {
		return domain.FoodItem{}, fmt.Errorf("%w: fdcId must be positive", domain.ErrInvalidRequest)
	}

	id := strconv.Itoa(fdcID)
	log := s.logger.WithFields(logrus.Fields{"user_id": userID, "fdc_id": id})
	cacheKey := "usdaFood_" + id

	imported, err := s.getFromCache(ctx, cacheKey)
	if err != nil {
		food, err := s.usdaClient.GetFoodDetails(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				return domain.FoodItem{}, err
			}
			return domain.FoodItem{}, fmt.Errorf("%w: %v", domain.ErrUSDAAPIFailure, err)
		}
		imported = usda.MapToImportedFood(food, 100)
		if err := s.setInCache(ctx, cacheKey, imported); err != nil {
			log.WithError(err).Warn("failed to cache USDA food details")
		}
	} else {
		log.Debug("USDA food details served from cache")
	}

	return s.saveImported(ctx, userID, imported, log)
}

func (s *FoodService) saveImported(ctx context.Context, userID string, imported *domain.ImportedFood, log logrus.FieldLogger) (domain.FoodItem, error) {
	item, err := s.AddCustomFood(ctx, userID, FoodInput{
		Name:        imported.Description,
		Calories:    imported.Macros.Calories,
		Protein:     imported.Macros.Protein,
		Carbs:       imported.Macros.Carbs,
		Fat:         imported.Macros.Fat,
		ServingSize: "100 g",
	})
	if err != nil {
		return domain.FoodItem{}, err
	}
	log.WithFields(logrus.Fields{"fdc_id": imported.FdcID, "confidence": imported.Confidence}).Info("imported USDA food")
	return item, nil
}

func (s *FoodService) lookupUSDA(ctx context.Context, query string) (*domain.ImportedFood, error) {
	result, err := s.usdaClient.SearchFoods(ctx, query)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUSDAAPIFailure, err)
	}
	if result == nil || len(result.Foods) == 0 {
		return nil, domain.ErrProductNotFound
	}

	match, err := s.matcher.FindBestMatch(ctx, query, result.Foods)
	if err != nil {
		if !errors.Is(err, domain.ErrLowConfidence) || !s.acceptLow {
			if match != nil {
				return nil, fmt.Errorf("%w: best candidate %q scored %.1f", err, match.Description, match.MatchScore)
			}
			return nil, err
		}
	}

	for i := range result.Foods {
		if strconv.Itoa(result.Foods[i].FdcID) == match.ID {
			imported := usda.MapToImportedFood(&result.Foods[i], match.MatchScore)
			return imported, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// usdaCacheKey normalizes the query so "Whole Milk" and "whole  milk!" share an entry
func usdaCacheKey(query string) string {
	return "usdaLookup_" + strings.ReplaceAll(normalize(query), " ", "_")
}

func (s *FoodService) getFromCache(ctx context.Context, key string) (*domain.ImportedFood, error) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var imported domain.ImportedFood
	if err := json.Unmarshal(raw, &imported); err != nil {
		return nil, err
	}
	if s.now().Sub(imported.CachedAt) > s.cacheTTL {
		return nil, domain.ErrNotFound
	}
	return &imported, nil
}

func (s *FoodService) setInCache(ctx context.Context, key string, imported *domain.ImportedFood) error {
	imported.CachedAt = s.now()
	raw, err := json.Marshal(imported)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, raw)
}
