package usecase

import "github.com/rashikfit/backend/internal/domain"

// predefinedFoods is the shared catalogue available to every user
var predefinedFoods = []domain.FoodItem{
	{ID: "pf1", Name: "Skinless chicken breast (grilled/boiled)", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, ServingSize: "100 g"},
	{ID: "pf2", Name: "Lean beef (steak)", Calories: 176, Protein: 26, Carbs: 0, Fat: 7, ServingSize: "100 g"},
	{ID: "pf3", Name: "Salmon (grilled)", Calories: 208, Protein: 20, Carbs: 0, Fat: 13, ServingSize: "100 g"},
	{ID: "pf4", Name: "Egg (boiled)", Calories: 78, Protein: 6, Carbs: 0.6, Fat: 5, ServingSize: "1 large egg (50 g)"},
	{ID: "pf5", Name: "Plain greek yogurt (low fat)", Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4, ServingSize: "100 g"},
	{ID: "pf6", Name: "Cottage cheese", Calories: 98, Protein: 11, Carbs: 3.4, Fat: 4.3, ServingSize: "100 g"},
	{ID: "pf7", Name: "Low fat milk (1%)", Calories: 42, Protein: 3.4, Carbs: 5, Fat: 1, ServingSize: "100 ml"},
	{ID: "pf8", Name: "White rice (cooked)", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, ServingSize: "100 g"},
	{ID: "pf9", Name: "Oats (dry)", Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9, ServingSize: "100 g"},
	{ID: "pf10", Name: "Lentils (cooked)", Calories: 116, Protein: 9, Carbs: 20, Fat: 0.4, ServingSize: "100 g"},
	{ID: "pf11", Name: "Brown bread (slice)", Calories: 70, Protein: 3, Carbs: 12, Fat: 1, ServingSize: "1 slice (25 g)"},
	{ID: "pf12", Name: "Broccoli (cooked)", Calories: 35, Protein: 2.4, Carbs: 7.2, Fat: 0.4, ServingSize: "100 g"},
	{ID: "pf13", Name: "Spinach (fresh)", Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, ServingSize: "100 g"},
	{ID: "pf14", Name: "Sweet potato (baked)", Calories: 90, Protein: 2, Carbs: 21, Fat: 0.1, ServingSize: "100 g"},
	{ID: "pf15", Name: "Apple (medium)", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3, ServingSize: "1 apple (182 g)"},
	{ID: "pf16", Name: "Banana (medium)", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4, ServingSize: "1 banana (118 g)"},
	{ID: "pf17", Name: "Strawberries", Calories: 32, Protein: 0.7, Carbs: 7.7, Fat: 0.3, ServingSize: "100 g"},
	{ID: "pf18", Name: "Olive oil", Calories: 884, Protein: 0, Carbs: 0, Fat: 100, ServingSize: "100 g"},
	{ID: "pf19", Name: "Almonds (dry)", Calories: 579, Protein: 21, Carbs: 22, Fat: 50, ServingSize: "100 g"},
	{ID: "pf20", Name: "Avocado", Calories: 160, Protein: 2, Carbs: 9, Fat: 15, ServingSize: "100 g"},
}

// PredefinedFoods returns a copy of the shared catalogue
func PredefinedFoods() []domain.FoodItem {
	out := make([]domain.FoodItem, len(predefinedFoods))
	copy(out, predefinedFoods)
	return out
}
