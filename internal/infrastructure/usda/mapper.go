package usda

import (
	"strconv"

	"github.com/rashikfit/backend/internal/domain"
)

// USDA Nutrient IDs for key macronutrients
const (
	NutrientIDEnergy       = 1008 // Calories (kcal)
	NutrientIDProtein      = 1003 // Protein (g)
	NutrientIDCarbohydrate = 1005 // Carbohydrates (g)
	NutrientIDTotalFat     = 1004 // Total Fat (g)
)

// MapToImportedFood converts a USDA food into per-100 g macros.
// Search results and food details both report nutrient amounts per 100 g.
func MapToImportedFood(usdaFood *domain.USDAFood, confidence float64) *domain.ImportedFood {
	return &domain.ImportedFood{
		FdcID:       strconv.Itoa(usdaFood.FdcID),
		Description: usdaFood.Description,
		Macros:      extractMacros(usdaFood.Nutrients),
		Confidence:  confidence,
	}
}

func extractMacros(nutrients []domain.USDANutrient) domain.Macros {
	return domain.Macros{
		Calories: FindNutrientValue(nutrients, NutrientIDEnergy),
		Protein:  FindNutrientValue(nutrients, NutrientIDProtein),
		Carbs:    FindNutrientValue(nutrients, NutrientIDCarbohydrate),
		Fat:      FindNutrientValue(nutrients, NutrientIDTotalFat),
	}
}

// FindNutrientValue finds a specific nutrient value by ID
func FindNutrientValue(nutrients []domain.USDANutrient, nutrientID int) float64 {
	for _, nutrient := range nutrients {
		if nutrient.ID() == nutrientID {
			return nutrient.Quantity()
		}
	}
	return 0.0
}
