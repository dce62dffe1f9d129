package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rashikfit/backend/internal/domain"
)

// FoodFinder resolves a food id visible to a user
type FoodFinder interface {
	FindFood(ctx context.Context, userID, foodID string) (domain.FoodItem, error)
}

// IngredientInput references a food and the grams used
type IngredientInput struct {
	FoodItemID   string  `json:"foodItemId"`
	QuantityGram float64 `json:"quantityGram"`
}

// RecipeInput is the editable part of a recipe. Nutrition is always derived.
type RecipeInput struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	ImageURL    string            `json:"imageUrl"`
	Servings    int               `json:"servings"`
	Ingredients []IngredientInput `json:"ingredients"`
}

func (in RecipeInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: recipe name is required", domain.ErrInvalidRequest)
	}
	if in.Servings < 1 {
		return fmt.Errorf("%w: servings must be at least 1", domain.ErrInvalidRequest)
	}
	if len(in.Ingredients) == 0 {
		return fmt.Errorf("%w: a recipe needs at least one ingredient", domain.ErrInvalidRequest)
	}
	return nil
}

// RecipeService manages a user's recipes and keeps the meal plan consistent on delete
type RecipeService struct {
	repo   domain.UserDataRepository
	foods  FoodFinder
	logger logrus.FieldLogger
	now    func() time.Time
	newID  func() string
}

func NewRecipeService(repo domain.UserDataRepository, foods FoodFinder, logger logrus.FieldLogger) *RecipeService {
	return &RecipeService{
		repo:   repo,
		foods:  foods,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// List returns the user's recipes, newest first
func (s *RecipeService) List(ctx context.Context, userID string) ([]domain.Recipe, error) {
	recipes, err := s.repo.Recipes(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(recipes, func(i, j int) bool { return recipes[i].CreatedAt.After(recipes[j].CreatedAt) })
	return recipes, nil
}

func (s *RecipeService) Get(ctx context.Context, userID, recipeID string) (domain.Recipe, error) {
	recipes, err := s.repo.Recipes(ctx, userID)
	if err != nil {
		return domain.Recipe{}, err
	}
	for _, r := range recipes {
		if r.ID == recipeID && r.OwnerID == userID {
			return r, nil
		}
	}
	return domain.Recipe{}, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, recipeID)
}

// Create builds the ingredient lines from the referenced foods and stores the recipe
func (s *RecipeService) Create(ctx context.Context, userID string, in RecipeInput) (domain.Recipe, error) {
	recipe, err := s.build(ctx, userID, in)
	if err != nil {
		return domain.Recipe{}, err
	}
	recipe.ID = s.newID()
	recipe.CreatedAt = s.now()

	recipes, err := s.repo.Recipes(ctx, userID)
	if err != nil {
		return domain.Recipe{}, err
	}
	if err := s.repo.SaveRecipes(ctx, userID, append(recipes, recipe)); err != nil {
		return domain.Recipe{}, err
	}

	s.logger.WithFields(logrus.Fields{"user_id": userID, "recipe_id": recipe.ID}).Info("recipe created")
	return recipe, nil
}

// Update replaces the editable fields of a recipe. The id and creation time are kept.
// Plans holding a snapshot of the recipe are not touched until they are refreshed.
func (s *RecipeService) Update(ctx context.Context, userID, recipeID string, in RecipeInput) (domain.Recipe, error) {
	recipes, err := s.repo.Recipes(ctx, userID)
	if err != nil {
		return domain.Recipe{}, err
	}
	idx := -1
	for i, r := range recipes {
		if r.ID == recipeID && r.OwnerID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Recipe{}, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, recipeID)
	}

	updated, err := s.build(ctx, userID, in)
	if err != nil {
		return domain.Recipe{}, err
	}
	updated.ID = recipeID
	updated.CreatedAt = recipes[idx].CreatedAt
	recipes[idx] = updated

	if err := s.repo.SaveRecipes(ctx, userID, recipes); err != nil {
		return domain.Recipe{}, err
	}
	return updated, nil
}

// Delete removes a recipe and clears every plan slot that references it
func (s *RecipeService) Delete(ctx context.Context, userID, recipeID string) error {
	recipes, err := s.repo.Recipes(ctx, userID)
	if err != nil {
		return err
	}
	kept := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r.ID != recipeID {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(recipes) {
		return fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, recipeID)
	}
	if err := s.repo.SaveRecipes(ctx, userID, kept); err != nil {
		return err
	}

	plan, err := s.repo.MealPlan(ctx, userID)
	if err != nil || plan == nil {
		return err
	}
	slots, changed := UnassignRecipe(plan.Slots, recipeID)
	if !changed {
		return nil
	}
	plan.Slots = slots
	plan.UpdatedAt = s.now()
	if err := s.repo.SaveMealPlan(ctx, userID, *plan); err != nil {
		return fmt.Errorf("recipe deleted but meal plan not updated: %w", err)
	}
	s.logger.WithFields(logrus.Fields{"user_id": userID, "recipe_id": recipeID}).Info("cleared deleted recipe from meal plan")
	return nil
}

func (s *RecipeService) build(ctx context.Context, userID string, in RecipeInput) (domain.Recipe, error) {
	if err := in.validate(); err != nil {
		return domain.Recipe{}, err
	}

	ingredients := make([]domain.RecipeIngredient, 0, len(in.Ingredients))
	for _, line := range in.Ingredients {
		food, err := s.foods.FindFood(ctx, userID, line.FoodItemID)
		if err != nil {
			return domain.Recipe{}, err
		}
		ing, err := NewRecipeIngredient(food, line.QuantityGram)
		if err != nil {
			return domain.Recipe{}, err
		}
		ingredients = append(ingredients, ing)
	}

	recipe := domain.Recipe{
		OwnerID:     userID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Ingredients: ingredients,
		Servings:    in.Servings,
	}
	RecomputeRecipe(&recipe)
	return recipe, nil
}
