package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rashikfit/backend/internal/domain"
)

// PlannerConfig bounds the number of meals per day
type PlannerConfig struct {
	DefaultMeals int
	MinMeals     int
	MaxMeals     int
}

// PlanSummary is a plan with its totals and the gap to the calculator target
type PlanSummary struct {
	Plan       domain.MealPlan `json:"plan"`
	Totals     domain.Macros   `json:"totals"`
	Target     *domain.Macros  `json:"target,omitempty"`
	Difference *domain.Macros  `json:"difference,omitempty"` // target minus totals
}

// PlanService owns the persisted daily meal plan of each user
type PlanService struct {
	repo   domain.UserDataRepository
	config PlannerConfig
	logger logrus.FieldLogger
	now    func() time.Time
}

func NewPlanService(repo domain.UserDataRepository, config PlannerConfig, logger logrus.FieldLogger) *PlanService {
	if config.MinMeals <= 0 {
		config.MinMeals = 1
	}
	if config.MaxMeals <= 0 {
		config.MaxMeals = 10
	}
	if config.DefaultMeals <= 0 {
		config.DefaultMeals = 3
	}
	return &PlanService{repo: repo, config: config, logger: logger, now: time.Now}
}

// Get returns the user's plan, creating and saving the default empty plan on first use
func (s *PlanService) Get(ctx context.Context, userID string) (PlanSummary, error) {
	plan, err := s.load(ctx, userID)
	if err != nil {
		return PlanSummary{}, err
	}
	return s.summarize(ctx, userID, plan)
}

// SetNumberOfMeals discards the current plan and creates n empty slots
func (s *PlanService) SetNumberOfMeals(ctx context.Context, userID string, n int) (PlanSummary, error) {
	if n < s.config.MinMeals || n > s.config.MaxMeals {
		return PlanSummary{}, fmt.Errorf("%w: %d (allowed %d-%d)", domain.ErrInvalidMealCount, n, s.config.MinMeals, s.config.MaxMeals)
	}
	plan := NewMealPlan(n, s.now())
	return s.save(ctx, userID, plan)
}

// AssignRecipe places a snapshot of one of the user's recipes into a slot
func (s *PlanService) AssignRecipe(ctx context.Context, userID, slotID, recipeID string) (PlanSummary, error) {
	recipe, err := s.findRecipe(ctx, userID, recipeID)
	if err != nil {
		return PlanSummary{}, err
	}
	plan, err := s.load(ctx, userID)
	if err != nil {
		return PlanSummary{}, err
	}
	if plan.Slots, err = AssignRecipe(plan.Slots, slotID, recipe); err != nil {
		return PlanSummary{}, err
	}
	return s.save(ctx, userID, plan)
}

// SetServings changes the multiplier of one slot
func (s *PlanService) SetServings(ctx context.Context, userID, slotID string, servings float64) (PlanSummary, error) {
	plan, err := s.load(ctx, userID)
	if err != nil {
		return PlanSummary{}, err
	}
	if plan.Slots, err = SetSlotServings(plan.Slots, slotID, servings); err != nil {
		return PlanSummary{}, err
	}
	return s.save(ctx, userID, plan)
}

// Adjust scales the plan so its calories match the saved calculator target.
// The stored plan is left unchanged on error.
func (s *PlanService) Adjust(ctx context.Context, userID string) (PlanSummary, error) {
	plan, err := s.load(ctx, userID)
	if err != nil {
		return PlanSummary{}, err
	}
	target, err := s.target(ctx, userID)
	if err != nil {
		return PlanSummary{}, err
	}
	slots, err := AdjustPlanToTarget(plan.Slots, target)
	if err != nil {
		return PlanSummary{}, err
	}
	plan.Slots = slots

	s.logger.WithFields(logrus.Fields{"user_id": userID, "target_calories": target.Calories}).Info("meal plan adjusted to target")
	return s.save(ctx, userID, plan)
}

// Refresh re-captures recipe snapshots from the user's current recipes
func (s *PlanService) Refresh(ctx context.Context, userID string) (PlanSummary, error) {
	plan, err := s.load(ctx, userID)
	if err != nil {
		return PlanSummary{}, err
	}
	recipes, err := s.repo.Recipes(ctx, userID)
	if err != nil {
		return PlanSummary{}, err
	}
	plan.Slots = RefreshSnapshots(plan.Slots, recipes)
	return s.save(ctx, userID, plan)
}

func (s *PlanService) load(ctx context.Context, userID string) (domain.MealPlan, error) {
	plan, err := s.repo.MealPlan(ctx, userID)
	if err != nil {
		return domain.MealPlan{}, err
	}
	if plan != nil {
		return *plan, nil
	}
	// first use: persist the default plan so its slot ids stay stable
	created := NewMealPlan(s.config.DefaultMeals, s.now())
	if err := s.repo.SaveMealPlan(ctx, userID, created); err != nil {
		return domain.MealPlan{}, err
	}
	return created, nil
}

func (s *PlanService) save(ctx context.Context, userID string, plan domain.MealPlan) (PlanSummary, error) {
	plan.NumberOfMeals = len(plan.Slots)
	plan.UpdatedAt = s.now()
	if err := s.repo.SaveMealPlan(ctx, userID, plan); err != nil {
		return PlanSummary{}, err
	}
	return s.summarize(ctx, userID, plan)
}

func (s *PlanService) summarize(ctx context.Context, userID string, plan domain.MealPlan) (PlanSummary, error) {
	summary := PlanSummary{Plan: plan, Totals: PlanTotals(plan.Slots)}
	target, err := s.target(ctx, userID)
	if err == nil {
		diff := target.Sub(summary.Totals)
		summary.Target = target
		summary.Difference = &diff
	} else if !errors.Is(err, domain.ErrNoTargetMacros) {
		return PlanSummary{}, err
	}
	return summary, nil
}

func (s *PlanService) target(ctx context.Context, userID string) (*domain.Macros, error) {
	state, err := s.repo.CalculatorState(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, domain.ErrNoTargetMacros
	}
	target := state.UserTargetMacros
	return &target, nil
}

func (s *PlanService) findRecipe(ctx context.Context, userID, recipeID string) (domain.Recipe, error) {
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
