package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rashikfit/backend/internal/domain"
)

func testRecipe(id string, perServingCalories float64) domain.Recipe {
	return domain.Recipe{
		ID:               id,
		Name:             "Recipe " + id,
		Servings:         2,
		PerServingMacros: domain.Macros{Calories: perServingCalories, Protein: perServingCalories / 20},
	}
}

func assignedPlan(t *testing.T, recipes ...domain.Recipe) []domain.MealSlot {
	t.Helper()
	slots := NewMealPlan(len(recipes), time.Unix(1700000000, 0)).Slots
	for i, r := range recipes {
		var err error
		slots, err = AssignRecipe(slots, slots[i].ID, r)
		require.NoError(t, err)
	}
	return slots
}

func TestNewMealPlan(t *testing.T) {
	now := time.Unix(1700000000, 0)
	plan := NewMealPlan(4, now)

	require.Len(t, plan.Slots, 4)
	assert.Equal(t, 4, plan.NumberOfMeals)
	seen := map[string]bool{}
	for i, slot := range plan.Slots {
		assert.False(t, slot.Assigned())
		assert.Equal(t, 1.0, slot.QuantityOfRecipeServings)
		assert.Equal(t, "Meal "+string(rune('1'+i)), slot.SlotName)
		assert.False(t, seen[slot.ID], "duplicate slot id %s", slot.ID)
		seen[slot.ID] = true
	}
}

func TestAssignRecipe(t *testing.T) {
	slots := NewMealPlan(2, time.Now()).Slots
	slots[0].QuantityOfRecipeServings = 3

	recipe := testRecipe("r1", 400)
	out, err := AssignRecipe(slots, slots[0].ID, recipe)
	require.NoError(t, err)

	assert.True(t, out[0].Assigned())
	assert.Equal(t, "r1", *out[0].AssignedRecipeID)
	assert.Equal(t, 1.0, out[0].QuantityOfRecipeServings)
	assert.Equal(t, 2, out[0].RecipeSnapshot.DefinedServingsInRecipe)
	assert.False(t, slots[0].Assigned(), "input must not change")

	t.Run("snapshot is detached from the live recipe", func(t *testing.T) {
		recipe.PerServingMacros.Calories = 999
		assert.Equal(t, 400.0, out[0].RecipeSnapshot.PerServingMacros.Calories)
	})

	t.Run("unknown slot", func(t *testing.T) {
		_, err := AssignRecipe(slots, "missing", recipe)
		assert.ErrorIs(t, err, domain.ErrSlotNotFound)
	})
}

func TestSetSlotServings(t *testing.T) {
	slots := assignedPlan(t, testRecipe("r1", 400))

	out, err := SetSlotServings(slots, slots[0].ID, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, out[0].QuantityOfRecipeServings)

	out, err = SetSlotServings(slots, slots[0].ID, 0)
	require.NoError(t, err)
	assert.Equal(t, MinSlotServings, out[0].QuantityOfRecipeServings)

	_, err = SetSlotServings(slots, "nope", 1)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestUnassignRecipe(t *testing.T) {
	slots := assignedPlan(t, testRecipe("r1", 400), testRecipe("r2", 300), testRecipe("r1", 400))
	slots[0].QuantityOfRecipeServings = 2

	out, changed := UnassignRecipe(slots, "r1")
	assert.True(t, changed)
	assert.False(t, out[0].Assigned())
	assert.Equal(t, 1.0, out[0].QuantityOfRecipeServings)
	assert.True(t, out[1].Assigned())
	assert.False(t, out[2].Assigned())

	_, changed = UnassignRecipe(out, "r1")
	assert.False(t, changed)
}

func TestRefreshSnapshots(t *testing.T) {
	slots := assignedPlan(t, testRecipe("r1", 400), testRecipe("r2", 300))
	slots[0].QuantityOfRecipeServings = 1.5

	updated := testRecipe("r1", 450)
	out := RefreshSnapshots(slots, []domain.Recipe{updated})

	assert.Equal(t, 450.0, out[0].RecipeSnapshot.PerServingMacros.Calories)
	assert.Equal(t, 1.5, out[0].QuantityOfRecipeServings)
	assert.False(t, out[1].Assigned(), "deleted recipe clears the slot")
	assert.Equal(t, 400.0, slots[0].RecipeSnapshot.PerServingMacros.Calories)
}

func TestPlanTotals(t *testing.T) {
	slots := assignedPlan(t, testRecipe("r1", 500), testRecipe("r2", 300))
	slots[1].QuantityOfRecipeServings = 2

	total := PlanTotals(slots)
	assert.Equal(t, 1100.0, total.Calories)
	assert.Equal(t, 55.0, total.Protein)

	assert.Equal(t, domain.Macros{}, PlanTotals(NewMealPlan(3, time.Now()).Slots))
}

func TestAdjustPlanToTarget(t *testing.T) {
	t.Run("scales every multiplier by one factor", func(t *testing.T) {
		slots := assignedPlan(t, testRecipe("r1", 500), testRecipe("r2", 300))
		slots[1].QuantityOfRecipeServings = 2

		out, err := AdjustPlanToTarget(slots, &domain.Macros{Calories: 2200})
		require.NoError(t, err)

		assert.InDelta(t, 2.0, out[0].QuantityOfRecipeServings, 1e-9)
		assert.InDelta(t, 4.0, out[1].QuantityOfRecipeServings, 1e-9)
		assert.InDelta(t, 2200, PlanTotals(out).Calories, 1e-6)
		assert.Equal(t, 2.0, slots[1].QuantityOfRecipeServings, "input must not change")
	})

	t.Run("missing target", func(t *testing.T) {
		slots := assignedPlan(t, testRecipe("r1", 500))
		out, err := AdjustPlanToTarget(slots, nil)
		assert.ErrorIs(t, err, domain.ErrNoTargetMacros)
		assert.Nil(t, out)
	})

	t.Run("incomplete plan", func(t *testing.T) {
		slots := assignedPlan(t, testRecipe("r1", 500))
		slots = append(slots, NewMealPlan(1, time.Now()).Slots...)
		out, err := AdjustPlanToTarget(slots, &domain.Macros{Calories: 2000})
		assert.ErrorIs(t, err, domain.ErrPlanIncomplete)
		assert.Nil(t, out)
	})

	t.Run("zero calorie plan", func(t *testing.T) {
		slots := assignedPlan(t, testRecipe("r1", 0), testRecipe("r2", 0))
		out, err := AdjustPlanToTarget(slots, &domain.Macros{Calories: 2000})
		assert.ErrorIs(t, err, domain.ErrZeroCaloriePlan)
		assert.Nil(t, out)
	})

	t.Run("zero multipliers fall back to one serving", func(t *testing.T) {
		slots := assignedPlan(t, testRecipe("r1", 500), testRecipe("r2", 500))
		slots[0].QuantityOfRecipeServings = 0
		slots[1].QuantityOfRecipeServings = 0

		out, err := AdjustPlanToTarget(slots, &domain.Macros{Calories: 1500})
		require.NoError(t, err)
		assert.InDelta(t, 1.5, out[0].QuantityOfRecipeServings, 1e-9)
		assert.InDelta(t, 1.5, out[1].QuantityOfRecipeServings, 1e-9)
	})

	t.Run("zero total with calories only on an unserved slot still reaches the target", func(t *testing.T) {
		slots := assignedPlan(t, testRecipe("r1", 0), testRecipe("r2", 500))
		slots[0].QuantityOfRecipeServings = 2
		slots[1].QuantityOfRecipeServings = 0

		out, err := AdjustPlanToTarget(slots, &domain.Macros{Calories: 2000})
		require.NoError(t, err)
		assert.InDelta(t, 4.0, out[0].QuantityOfRecipeServings, 1e-9)
		assert.InDelta(t, 4.0, out[1].QuantityOfRecipeServings, 1e-9)
		assert.InDelta(t, 2000, PlanTotals(out).Calories, 1e-6)
	})
}
