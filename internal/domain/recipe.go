package domain

import "time"

// RecipeIngredient holds absolute nutrition for QuantityGram of a food.
// FoodItemName and OriginalServingSize are copies taken when the ingredient was built.
type RecipeIngredient struct {
	FoodItemID          string  `json:"foodItemId"`
	FoodItemName        string  `json:"foodItemName"`
	QuantityGram        float64 `json:"quantityGram"`
	Calories            float64 `json:"calories"`
	Protein             float64 `json:"protein"`
	Carbs               float64 `json:"carbs"`
	Fat                 float64 `json:"fat"`
	OriginalServingSize string  `json:"originalServingSize"`
}

func (ri RecipeIngredient) Macros() Macros {
	return Macros{Calories: ri.Calories, Protein: ri.Protein, Carbs: ri.Carbs, Fat: ri.Fat}
}

// Recipe is owned by one user. TotalMacros and PerServingMacros are always
// derived from Ingredients and Servings.
type Recipe struct {
	ID               string             `json:"id"`
	OwnerID          string             `json:"userId"`
	Name             string             `json:"name"`
	Description      string             `json:"description"`
	ImageURL         string             `json:"imageUrl,omitempty"`
	Ingredients      []RecipeIngredient `json:"ingredients"`
	Servings         int                `json:"servings"`
	TotalMacros      Macros             `json:"totalMacros"`
	PerServingMacros Macros             `json:"perServingMacros"`
	CreatedAt        time.Time          `json:"createdAt"`
}

// RecipeSnapshot is the frozen copy of a recipe held by a meal slot
type RecipeSnapshot struct {
	ID                      string             `json:"id"`
	Name                    string             `json:"name"`
	PerServingMacros        Macros             `json:"perServingMacros"`
	Ingredients             []RecipeIngredient `json:"ingredients"`
	DefinedServingsInRecipe int                `json:"definedServingsInRecipe"`
}

// Snapshot copies the nutrition-relevant fields of r
func (r Recipe) Snapshot() RecipeSnapshot {
	ingredients := make([]RecipeIngredient, len(r.Ingredients))
	copy(ingredients, r.Ingredients)
	return RecipeSnapshot{
		ID:                      r.ID,
		Name:                    r.Name,
		PerServingMacros:        r.PerServingMacros,
		Ingredients:             ingredients,
		DefinedServingsInRecipe: r.Servings,
	}
}

// MealSlot is one position of a daily plan
type MealSlot struct {
	ID                       string          `json:"id"`
	SlotName                 string          `json:"slotName"`
	AssignedRecipeID         *string         `json:"assignedRecipeId"`
	RecipeSnapshot           *RecipeSnapshot `json:"recipeSnapshot"`
	QuantityOfRecipeServings float64         `json:"quantityOfRecipeServings"`
}

// Assigned reports whether the slot carries a recipe snapshot
func (s MealSlot) Assigned() bool {
	return s.AssignedRecipeID != nil && s.RecipeSnapshot != nil
}

// MealPlan is the persisted active plan of a user
type MealPlan struct {
	NumberOfMeals int        `json:"numberOfMeals"`
	Slots         []MealSlot `json:"slots"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
