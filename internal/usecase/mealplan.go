package usecase

import (
	"fmt"
	"math"
	"time"

	"github.com/rashikfit/backend/internal/domain"
)

// MinSlotServings is the smallest multiplier a user can set on a slot
const MinSlotServings = 0.1

// NewMealPlan returns n empty slots named "Meal 1".."Meal n"
func NewMealPlan(n int, now time.Time) domain.MealPlan {
	if n < 0 {
		n = 0
	}
	slots := make([]domain.MealSlot, n)
	for i := range slots {
		slots[i] = domain.MealSlot{
			ID:                       fmt.Sprintf("meal_slot_%d_%d", now.UnixMilli(), i),
			SlotName:                 fmt.Sprintf("Meal %d", i+1),
			QuantityOfRecipeServings: 1,
		}
	}
	return domain.MealPlan{NumberOfMeals: n, Slots: slots, UpdatedAt: now}
}

// AssignRecipe snapshots recipe into the slot and resets its multiplier to 1
func AssignRecipe(slots []domain.MealSlot, slotID string, recipe domain.Recipe) ([]domain.MealSlot, error) {
	out, idx := cloneSlots(slots), slotIndex(slots, slotID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrSlotNotFound, slotID)
	}
	recipeID := recipe.ID
	snapshot := recipe.Snapshot()
	out[idx].AssignedRecipeID = &recipeID
	out[idx].RecipeSnapshot = &snapshot
	out[idx].QuantityOfRecipeServings = 1
	return out, nil
}

// SetSlotServings sets a slot multiplier, floored at MinSlotServings
func SetSlotServings(slots []domain.MealSlot, slotID string, servings float64) ([]domain.MealSlot, error) {
	if math.IsNaN(servings) || math.IsInf(servings, 0) {
		return nil, fmt.Errorf("%w: servings %v", domain.ErrInvalidQuantity, servings)
	}
	out, idx := cloneSlots(slots), slotIndex(slots, slotID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrSlotNotFound, slotID)
	}
	out[idx].QuantityOfRecipeServings = math.Max(MinSlotServings, servings)
	return out, nil
}

// UnassignRecipe clears every slot that references recipeID. changed reports
// whether any slot was touched.
func UnassignRecipe(slots []domain.MealSlot, recipeID string) (out []domain.MealSlot, changed bool) {
	out = cloneSlots(slots)
	for i := range out {
		if out[i].AssignedRecipeID != nil && *out[i].AssignedRecipeID == recipeID {
			out[i].AssignedRecipeID = nil
			out[i].RecipeSnapshot = nil
			out[i].QuantityOfRecipeServings = 1
			changed = true
		}
	}
	return out, changed
}

// RefreshSnapshots re-captures each assigned slot from the live recipes.
// Multipliers are kept; slots whose recipe no longer exists are cleared.
func RefreshSnapshots(slots []domain.MealSlot, recipes []domain.Recipe) []domain.MealSlot {
	byID := make(map[string]domain.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}
	out := cloneSlots(slots)
	for i := range out {
		if out[i].AssignedRecipeID == nil {
			continue
		}
		recipe, ok := byID[*out[i].AssignedRecipeID]
		if !ok {
			out[i].AssignedRecipeID = nil
			out[i].RecipeSnapshot = nil
			out[i].QuantityOfRecipeServings = 1
			continue
		}
		snapshot := recipe.Snapshot()
		out[i].RecipeSnapshot = &snapshot
	}
	return out
}

// PlanTotals sums per-serving snapshot macros times each slot multiplier
func PlanTotals(slots []domain.MealSlot) domain.Macros {
	var total domain.Macros
	for _, slot := range slots {
		if slot.RecipeSnapshot == nil {
			continue
		}
		total = total.Add(slot.RecipeSnapshot.PerServingMacros.Scale(slot.QuantityOfRecipeServings))
	}
	return total
}

// AdjustPlanToTarget scales every slot multiplier by one factor so the plan's
// calories equal target.Calories. The input slice is never modified and
// nothing is returned on error.
func AdjustPlanToTarget(slots []domain.MealSlot, target *domain.Macros) ([]domain.MealSlot, error) {
	if target == nil {
		return nil, domain.ErrNoTargetMacros
	}
	for _, slot := range slots {
		if !slot.Assigned() {
			return nil, fmt.Errorf("%w: %s is empty", domain.ErrPlanIncomplete, slot.SlotName)
		}
	}

	out := cloneSlots(slots)
	current := PlanTotals(out).Calories
	if current == 0 {
		// Multipliers may have collapsed; fall back to one serving each.
		for i := range out {
			out[i].QuantityOfRecipeServings = 1
		}
		current = PlanTotals(out).Calories
	}
	if current == 0 {
		return nil, domain.ErrZeroCaloriePlan
	}

	factor := target.Calories / current
	for i := range out {
		out[i].QuantityOfRecipeServings *= factor
	}
	return out, nil
}

func cloneSlots(slots []domain.MealSlot) []domain.MealSlot {
	out := make([]domain.MealSlot, len(slots))
	copy(out, slots)
	return out
}

func slotIndex(slots []domain.MealSlot, slotID string) int {
	for i, slot := range slots {
		if slot.ID == slotID {
			return i
		}
	}
	return -1
}
