package domain

import "context"

// Store is the key-value persistence collaborator. Get returns ErrNotFound on a miss.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Close() error
}

// UserDataRepository stores per-user collections. Missing keys read as empty.
type UserDataRepository interface {
	CustomFoods(ctx context.Context, userID string) ([]FoodItem, error)
	SaveCustomFoods(ctx context.Context, userID string, foods []FoodItem) error

	Recipes(ctx context.Context, userID string) ([]Recipe, error)
	SaveRecipes(ctx context.Context, userID string, recipes []Recipe) error

	WeightEntries(ctx context.Context, userID string) ([]WeightEntry, error)
	SaveWeightEntries(ctx context.Context, userID string, entries []WeightEntry) error

	// CalculatorState returns nil when nothing was saved
	CalculatorState(ctx context.Context, userID string) (*CalculatorState, error)
	SaveCalculatorState(ctx context.Context, userID string, state CalculatorState) error
	ClearCalculatorState(ctx context.Context, userID string) error

	// MealPlan returns nil when nothing was saved
	MealPlan(ctx context.Context, userID string) (*MealPlan, error)
	SaveMealPlan(ctx context.Context, userID string, plan MealPlan) error
}

// UserRegistry is the simulated user database plus the current session
type UserRegistry interface {
	Users(ctx context.Context) ([]RegisteredUser, error)
	SaveUsers(ctx context.Context, users []RegisteredUser) error
	SessionUserID(ctx context.Context) (string, error)
	SetSessionUserID(ctx context.Context, userID string) error
	ClearSession(ctx context.Context) error
}

// USDAClient defines the interface for interacting with USDA FoodData Central API
type USDAClient interface {
	SearchFoods(ctx context.Context, query string) (*USDASearchResponse, error)
	GetFoodDetails(ctx context.Context, fdcID string) (*USDAFood, error)
}
