package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rashikfit/backend/internal/domain"
)

var chickenBreast = domain.FoodItem{
	ID:          "pf1",
	Name:        "Chicken breast (cooked)",
	Calories:    165,
	Protein:     31,
	Carbs:       0,
	Fat:         3.6,
	ServingSize: "100 g",
}

func TestScaleNutrition(t *testing.T) {
	t.Run("base quantity returns the label values", func(t *testing.T) {
		got, ok := ScaleNutrition(chickenBreast, 100)
		require.True(t, ok)
		assertMacrosInDelta(t, chickenBreast.Macros(), got)
	})

	t.Run("scales linearly", func(t *testing.T) {
		got, ok := ScaleNutrition(chickenBreast, 150)
		require.True(t, ok)
		assert.InDelta(t, 247.5, got.Calories, 1e-9)
		assert.InDelta(t, 46.5, got.Protein, 1e-9)
		assert.InDelta(t, 5.4, got.Fat, 1e-9)
	})

	t.Run("unparsable label", func(t *testing.T) {
		item := chickenBreast
		item.ServingSize = "1 handful"
		_, ok := ScaleNutrition(item, 100)
		assert.False(t, ok)
	})

	t.Run("zero base weight", func(t *testing.T) {
		item := chickenBreast
		item.ServingSize = "0 g"
		_, ok := ScaleNutrition(item, 100)
		assert.False(t, ok)
	})
}

func TestNewRecipeIngredient(t *testing.T) {
	t.Run("copies food details", func(t *testing.T) {
		ing, err := NewRecipeIngredient(chickenBreast, 200)
		require.NoError(t, err)
		assert.Equal(t, "pf1", ing.FoodItemID)
		assert.Equal(t, "Chicken breast (cooked)", ing.FoodItemName)
		assert.Equal(t, "100 g", ing.OriginalServingSize)
		assert.Equal(t, 200.0, ing.QuantityGram)
		assert.InDelta(t, 330, ing.Calories, 1e-9)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewRecipeIngredient(chickenBreast, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})

	t.Run("rejects item without base weight", func(t *testing.T) {
		item := chickenBreast
		item.ServingSize = "1 piece"
		_, err := NewRecipeIngredient(item, 50)
		assert.ErrorIs(t, err, domain.ErrNoBaseWeight)
	})
}

func TestRecipeAggregation(t *testing.T) {
	rice := domain.FoodItem{ID: "pf2", Name: "Rice", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, ServingSize: "100 g"}
	oil := domain.FoodItem{ID: "pf3", Name: "Olive oil", Calories: 884, Fat: 100, ServingSize: "100 g"}

	var ingredients []domain.RecipeIngredient
	for _, pair := range []struct {
		item  domain.FoodItem
		grams float64
	}{{chickenBreast, 200}, {rice, 150}, {oil, 10}} {
		ing, err := NewRecipeIngredient(pair.item, pair.grams)
		require.NoError(t, err)
		ingredients = append(ingredients, ing)
	}

	t.Run("single ingredient round trip", func(t *testing.T) {
		ing, err := NewRecipeIngredient(chickenBreast, 100)
		require.NoError(t, err)
		recipe := domain.Recipe{Ingredients: []domain.RecipeIngredient{ing}, Servings: 1}
		RecomputeRecipe(&recipe)
		assertMacrosInDelta(t, chickenBreast.Macros(), recipe.PerServingMacros)
	})

	t.Run("total is additive and order independent", func(t *testing.T) {
		forward := TotalMacros(ingredients)
		reversed := TotalMacros([]domain.RecipeIngredient{ingredients[2], ingredients[1], ingredients[0]})

		assert.InDelta(t, 330+195+88.4, forward.Calories, 1e-9)
		assert.InDelta(t, forward.Calories, reversed.Calories, 1e-9)
		assert.InDelta(t, forward.Protein, reversed.Protein, 1e-9)
		assert.InDelta(t, forward.Carbs, reversed.Carbs, 1e-9)
		assert.InDelta(t, forward.Fat, reversed.Fat, 1e-9)
	})

	t.Run("empty ingredients", func(t *testing.T) {
		assert.Equal(t, domain.Macros{}, TotalMacros(nil))
	})

	t.Run("per serving divides", func(t *testing.T) {
		got := PerServingMacros(domain.Macros{Calories: 900, Protein: 60, Carbs: 30, Fat: 15}, 3)
		assert.Equal(t, domain.Macros{Calories: 300, Protein: 20, Carbs: 10, Fat: 5}, got)
	})

	t.Run("non-positive servings yield zero", func(t *testing.T) {
		total := domain.Macros{Calories: 900}
		assert.Equal(t, domain.Macros{}, PerServingMacros(total, 0))
		assert.Equal(t, domain.Macros{}, PerServingMacros(total, -2))
	})
}

func assertMacrosInDelta(t *testing.T, want, got domain.Macros) {
	t.Helper()
	assert.InDelta(t, want.Calories, got.Calories, 1e-9, "calories")
	assert.InDelta(t, want.Protein, got.Protein, 1e-9, "protein")
	assert.InDelta(t, want.Carbs, got.Carbs, 1e-9, "carbs")
	assert.InDelta(t, want.Fat, got.Fat, 1e-9, "fat")
}
