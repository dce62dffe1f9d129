package domain

// Macros is the calories/protein/carbs/fat quadruple. Grams for the macronutrients.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add returns the element-wise sum
func (m Macros) Add(other Macros) Macros {
	return Macros{
		Calories: m.Calories + other.Calories,
		Protein:  m.Protein + other.Protein,
		Carbs:    m.Carbs + other.Carbs,
		Fat:      m.Fat + other.Fat,
	}
}

// Sub returns the element-wise difference m - other
func (m Macros) Sub(other Macros) Macros {
	return Macros{
		Calories: m.Calories - other.Calories,
		Protein:  m.Protein - other.Protein,
		Carbs:    m.Carbs - other.Carbs,
		Fat:      m.Fat - other.Fat,
	}
}

// Scale multiplies every field by factor
func (m Macros) Scale(factor float64) Macros {
	return Macros{
		Calories: m.Calories * factor,
		Protein:  m.Protein * factor,
		Carbs:    m.Carbs * factor,
		Fat:      m.Fat * factor,
	}
}

// FoodItem is a food with macros given per ServingSize.
// OwnerID is nil for the shared predefined catalogue.
type FoodItem struct {
	ID          string  `json:"id"`
	OwnerID     *string `json:"userId"`
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize string  `json:"servingSize"` // free text, e.g. "100 g", "1 egg (50 g)"
	IsCustom    bool    `json:"isCustom"`
}

// Macros returns the per-serving nutrition of the item
func (f FoodItem) Macros() Macros {
	return Macros{Calories: f.Calories, Protein: f.Protein, Carbs: f.Carbs, Fat: f.Fat}
}
