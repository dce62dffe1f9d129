package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rashikfit/backend/internal/domain"
)

func TestPlanService_GetCreatesStableDefaultPlan(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	first, err := env.plans.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, first.Plan.Slots, 3)
	assert.Equal(t, 3, first.Plan.NumberOfMeals)
	assert.Nil(t, first.Target)
	assert.Nil(t, first.Difference)
	assert.Equal(t, domain.Macros{}, first.Totals)

	env.clock.advance(time.Second)
	second, err := env.plans.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first.Plan.Slots[0].ID, second.Plan.Slots[0].ID)
}

func TestPlanService_SetNumberOfMeals(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	for _, n := range []int{0, 11, -1} {
		_, err := env.plans.SetNumberOfMeals(ctx, "u1", n)
		assert.ErrorIs(t, err, domain.ErrInvalidMealCount, "n=%d", n)
	}

	recipe, err := env.recipes.Create(ctx, "u1", chickenAndRice())
	require.NoError(t, err)
	summary, err := env.plans.Get(ctx, "u1")
	require.NoError(t, err)
	_, err = env.plans.AssignRecipe(ctx, "u1", summary.Plan.Slots[0].ID, recipe.ID)
	require.NoError(t, err)

	resized, err := env.plans.SetNumberOfMeals(ctx, "u1", 5)
	require.NoError(t, err)
	require.Len(t, resized.Plan.Slots, 5)
	assert.Equal(t, 5, resized.Plan.NumberOfMeals)
	for _, slot := range resized.Plan.Slots {
		assert.False(t, slot.Assigned())
		assert.Equal(t, 1.0, slot.QuantityOfRecipeServings)
	}
}

func TestPlanService_AssignAndServings(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	recipe, err := env.recipes.Create(ctx, "u1", chickenAndRice())
	require.NoError(t, err)
	foreign, err := env.recipes.Create(ctx, "u2", chickenAndRice())
	require.NoError(t, err)

	summary, err := env.plans.SetNumberOfMeals(ctx, "u1", 2)
	require.NoError(t, err)
	slotID := summary.Plan.Slots[0].ID

	_, err = env.plans.AssignRecipe(ctx, "u1", slotID, foreign.ID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	_, err = env.plans.AssignRecipe(ctx, "u1", "no-such-slot", recipe.ID)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)

	assigned, err := env.plans.AssignRecipe(ctx, "u1", slotID, recipe.ID)
	require.NoError(t, err)
	assert.InDelta(t, 262.5, assigned.Totals.Calories, 1e-9)

	doubled, err := env.plans.SetServings(ctx, "u1", slotID, 2)
	require.NoError(t, err)
	assert.InDelta(t, 525, doubled.Totals.Calories, 1e-9)

	floored, err := env.plans.SetServings(ctx, "u1", slotID, 0.01)
	require.NoError(t, err)
	assert.Equal(t, MinSlotServings, floored.Plan.Slots[0].QuantityOfRecipeServings)

	_, err = env.plans.SetServings(ctx, "u1", "no-such-slot", 1)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestPlanService_Adjust(t *testing.T) {
	ctx := context.Background()

	t.Run("requires calculator target", func(t *testing.T) {
		env := newTestEnv(t, nil)
		_, err := env.plans.Adjust(ctx, "u1")
		assert.ErrorIs(t, err, domain.ErrNoTargetMacros)
	})

	t.Run("requires every slot assigned", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.saveTarget(t, "u1", 2000)
		_, err := env.plans.Adjust(ctx, "u1")
		assert.ErrorIs(t, err, domain.ErrPlanIncomplete)
	})

	t.Run("scales every slot by the same factor", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.saveTarget(t, "u1", 2100)
		recipe, err := env.recipes.Create(ctx, "u1", chickenAndRice())
		require.NoError(t, err)

		summary, err := env.plans.SetNumberOfMeals(ctx, "u1", 2)
		require.NoError(t, err)
		for _, slot := range summary.Plan.Slots {
			_, err = env.plans.AssignRecipe(ctx, "u1", slot.ID, recipe.ID)
			require.NoError(t, err)
		}
		_, err = env.plans.SetServings(ctx, "u1", summary.Plan.Slots[1].ID, 3)
		require.NoError(t, err)

		adjusted, err := env.plans.Adjust(ctx, "u1")
		require.NoError(t, err)
		// 262.5 * (1 + 3) = 1050 kcal, factor 2
		assert.InDelta(t, 2.0, adjusted.Plan.Slots[0].QuantityOfRecipeServings, 1e-9)
		assert.InDelta(t, 6.0, adjusted.Plan.Slots[1].QuantityOfRecipeServings, 1e-9)
		assert.InDelta(t, 2100, adjusted.Totals.Calories, 1e-9)
		require.NotNil(t, adjusted.Difference)
		assert.InDelta(t, 0, adjusted.Difference.Calories, 1e-9)

		stored, err := env.plans.Get(ctx, "u1")
		require.NoError(t, err)
		assert.InDelta(t, 2100, stored.Totals.Calories, 1e-9)
	})
}

func TestPlanService_Refresh(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	recipe, err := env.recipes.Create(ctx, "u1", chickenAndRice())
	require.NoError(t, err)
	summary, err := env.plans.SetNumberOfMeals(ctx, "u1", 1)
	require.NoError(t, err)
	slotID := summary.Plan.Slots[0].ID
	_, err = env.plans.AssignRecipe(ctx, "u1", slotID, recipe.ID)
	require.NoError(t, err)
	_, err = env.plans.SetServings(ctx, "u1", slotID, 2)
	require.NoError(t, err)

	in := chickenAndRice()
	in.Servings = 1
	_, err = env.recipes.Update(ctx, "u1", recipe.ID, in)
	require.NoError(t, err)

	stale, err := env.plans.Get(ctx, "u1")
	require.NoError(t, err)
	assert.InDelta(t, 262.5, stale.Plan.Slots[0].RecipeSnapshot.PerServingMacros.Calories, 1e-9)

	refreshed, err := env.plans.Refresh(ctx, "u1")
	require.NoError(t, err)
	slot := refreshed.Plan.Slots[0]
	assert.InDelta(t, 525, slot.RecipeSnapshot.PerServingMacros.Calories, 1e-9)
	assert.Equal(t, 1, slot.RecipeSnapshot.DefinedServingsInRecipe)
	assert.Equal(t, 2.0, slot.QuantityOfRecipeServings)
	assert.InDelta(t, 1050, refreshed.Totals.Calories, 1e-9)
}
