package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/rashikfit/backend/internal/domain"
	"github.com/rashikfit/backend/internal/infrastructure/repository"
	"github.com/rashikfit/backend/internal/infrastructure/store"
)

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// testEnv wires every service over one in-memory store
type testEnv struct {
	store    *store.MemoryStore
	repo     *repository.UserDataRepository
	foods    *FoodService
	recipes  *RecipeService
	plans    *PlanService
	calc     *CalculatorService
	progress *ProgressService
	auth     *AuthService
	clock    *fakeClock
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEnv(t *testing.T, usdaClient domain.USDAClient) *testEnv {
	t.Helper()
	s := store.NewMemoryStore()
	repo := repository.NewUserDataRepository(s)
	logger := quietLogger()
	clock := &fakeClock{t: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}

	env := &testEnv{store: s, repo: repo, clock: clock}
	env.foods = NewFoodService(repo, s, usdaClient, FoodServiceConfig{CacheTTL: 24 * time.Hour}, logger)
	env.foods.now = clock.now
	env.recipes = NewRecipeService(repo, env.foods, logger)
	env.recipes.now = clock.now
	env.plans = NewPlanService(repo, PlannerConfig{DefaultMeals: 3, MinMeals: 1, MaxMeals: 10}, logger)
	env.plans.now = clock.now
	env.calc = NewCalculatorService(repo, logger)
	env.progress = NewProgressService(repo, logger)
	env.progress.now = clock.now
	env.auth = NewAuthService(repository.NewUserRegistry(s), logger)
	return env
}

// saveTarget stores a calculator session whose target is calories
func (e *testEnv) saveTarget(t *testing.T, userID string, calories float64) {
	t.Helper()
	require.NoError(t, e.repo.SaveCalculatorState(context.Background(), userID, domain.CalculatorState{
		FinalTDEE:        calories,
		UserTargetMacros: domain.Macros{Calories: calories},
	}))
}
