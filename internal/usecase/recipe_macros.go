package usecase

import "github.com/rashikfit/backend/internal/domain"

// TotalMacros sums the nutrition of every ingredient line
func TotalMacros(ingredients []domain.RecipeIngredient) domain.Macros {
	var total domain.Macros
	for _, ing := range ingredients {
		total = total.Add(ing.Macros())
	}
	return total
}

// PerServingMacros divides total by servings. Non-positive servings yield zero.
func PerServingMacros(total domain.Macros, servings int) domain.Macros {
	if servings <= 0 {
		return domain.Macros{}
	}
	n := float64(servings)
	return domain.Macros{
		Calories: total.Calories / n,
		Protein:  total.Protein / n,
		Carbs:    total.Carbs / n,
		Fat:      total.Fat / n,
	}
}

// RecomputeRecipe re-derives the total and per-serving macros of r in place
func RecomputeRecipe(r *domain.Recipe) {
	r.TotalMacros = TotalMacros(r.Ingredients)
	r.PerServingMacros = PerServingMacros(r.TotalMacros, r.Servings)
}
