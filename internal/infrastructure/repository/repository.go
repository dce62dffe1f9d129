// Package repository stores typed per-user collections as JSON documents in a
// domain.Store. One key holds one whole collection.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rashikfit/backend/internal/domain"
)

const (
	customFoodsPrefix     = "customFoodItems_user_"
	recipesPrefix         = "customRecipes_user_"
	progressPrefix        = "progressEntries_user_"
	calculatorStatePrefix = "calculatorState_user_"
	mealPlanPrefix        = "mealPlan_user_"

	usersKey   = "simulatedUsersDB"
	sessionKey = "currentUserSessionId"
)

// loadJSON decodes key into out. found is false when the key is missing.
func loadJSON(ctx context.Context, store domain.Store, key string, out any) (found bool, err error) {
	data, err := store.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func saveJSON(ctx context.Context, store domain.Store, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.Set(ctx, key, data)
}

// loadList reads a JSON array; a missing key reads as an empty, non-nil slice
func loadList[T any](ctx context.Context, store domain.Store, key string) ([]T, error) {
	var items []T
	if _, err := loadJSON(ctx, store, key, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// UserDataRepository implements domain.UserDataRepository
type UserDataRepository struct {
	store domain.Store
}

func NewUserDataRepository(store domain.Store) *UserDataRepository {
	return &UserDataRepository{store: store}
}

func (r *UserDataRepository) CustomFoods(ctx context.Context, userID string) ([]domain.FoodItem, error) {
	return loadList[domain.FoodItem](ctx, r.store, customFoodsPrefix+userID)
}

func (r *UserDataRepository) SaveCustomFoods(ctx context.Context, userID string, foods []domain.FoodItem) error {
	return saveJSON(ctx, r.store, customFoodsPrefix+userID, foods)
}

func (r *UserDataRepository) Recipes(ctx context.Context, userID string) ([]domain.Recipe, error) {
	return loadList[domain.Recipe](ctx, r.store, recipesPrefix+userID)
}

func (r *UserDataRepository) SaveRecipes(ctx context.Context, userID string, recipes []domain.Recipe) error {
	return saveJSON(ctx, r.store, recipesPrefix+userID, recipes)
}

func (r *UserDataRepository) WeightEntries(ctx context.Context, userID string) ([]domain.WeightEntry, error) {
	return loadList[domain.WeightEntry](ctx, r.store, progressPrefix+userID)
}

func (r *UserDataRepository) SaveWeightEntries(ctx context.Context, userID string, entries []domain.WeightEntry) error {
	return saveJSON(ctx, r.store, progressPrefix+userID, entries)
}

func (r *UserDataRepository) CalculatorState(ctx context.Context, userID string) (*domain.CalculatorState, error) {
	var state domain.CalculatorState
	found, err := loadJSON(ctx, r.store, calculatorStatePrefix+userID, &state)
	if err != nil || !found {
		return nil, err
	}
	return &state, nil
}

func (r *UserDataRepository) SaveCalculatorState(ctx context.Context, userID string, state domain.CalculatorState) error {
	return saveJSON(ctx, r.store, calculatorStatePrefix+userID, state)
}

func (r *UserDataRepository) ClearCalculatorState(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, calculatorStatePrefix+userID)
}

func (r *UserDataRepository) MealPlan(ctx context.Context, userID string) (*domain.MealPlan, error) {
	var plan domain.MealPlan
	found, err := loadJSON(ctx, r.store, mealPlanPrefix+userID, &plan)
	if err != nil || !found {
		return nil, err
	}
	return &plan, nil
}

func (r *UserDataRepository) SaveMealPlan(ctx context.Context, userID string, plan domain.MealPlan) error {
	return saveJSON(ctx, r.store, mealPlanPrefix+userID, plan)
}

// UserRegistry implements domain.UserRegistry on the same store
type UserRegistry struct {
	store domain.Store
}

func NewUserRegistry(store domain.Store) *UserRegistry {
	return &UserRegistry{store: store}
}

func (r *UserRegistry) Users(ctx context.Context) ([]domain.RegisteredUser, error) {
	return loadList[domain.RegisteredUser](ctx, r.store, usersKey)
}

func (r *UserRegistry) SaveUsers(ctx context.Context, users []domain.RegisteredUser) error {
	return saveJSON(ctx, r.store, usersKey, users)
}

// SessionUserID returns "" when no session is active
func (r *UserRegistry) SessionUserID(ctx context.Context) (string, error) {
	data, err := r.store.Get(ctx, sessionKey)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *UserRegistry) SetSessionUserID(ctx context.Context, userID string) error {
	return r.store.Set(ctx, sessionKey, []byte(userID))
}

func (r *UserRegistry) ClearSession(ctx context.Context) error {
	return r.store.Delete(ctx, sessionKey)
}
