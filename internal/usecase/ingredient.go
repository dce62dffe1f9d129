package usecase

import (
	"fmt"
	"math"

	"github.com/rashikfit/backend/internal/domain"
)

// ScaleNutrition returns the nutrition of grams of item, computed from the
// per-gram rate of its serving label. No rounding is applied.
func ScaleNutrition(item domain.FoodItem, grams float64) (domain.Macros, bool) {
	base, ok := ParseServingSizeToGrams(item.ServingSize)
	if !ok || base <= 0 {
		return domain.Macros{}, false
	}
	return domain.Macros{
		Calories: item.Calories / base * grams,
		Protein:  item.Protein / base * grams,
		Carbs:    item.Carbs / base * grams,
		Fat:      item.Fat / base * grams,
	}, true
}

// NewRecipeIngredient builds an ingredient line for grams of item, copying the
// food's name and serving label into the line.
func NewRecipeIngredient(item domain.FoodItem, grams float64) (domain.RecipeIngredient, error) {
	if grams <= 0 || math.IsNaN(grams) || math.IsInf(grams, 0) {
		return domain.RecipeIngredient{}, fmt.Errorf("%w: %v g of %q", domain.ErrInvalidQuantity, grams, item.Name)
	}
	macros, ok := ScaleNutrition(item, grams)
	if !ok {
		return domain.RecipeIngredient{}, fmt.Errorf("%w: %q (serving %q)", domain.ErrNoBaseWeight, item.Name, item.ServingSize)
	}
	return domain.RecipeIngredient{
		FoodItemID:          item.ID,
		FoodItemName:        item.Name,
		QuantityGram:        grams,
		Calories:            macros.Calories,
		Protein:             macros.Protein,
		Carbs:               macros.Carbs,
		Fat:                 macros.Fat,
		OriginalServingSize: item.ServingSize,
	}, nil
}
