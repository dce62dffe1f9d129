package domain

import "time"

// USDAFood represents a food item from the USDA FoodData Central API
type USDAFood struct {
	FdcID       int            `json:"fdcId"`
	Description string         `json:"description"`
	DataType    string         `json:"dataType"`
	BrandOwner  string         `json:"brandOwner,omitempty"`
	Nutrients   []USDANutrient `json:"foodNutrients"`
}

// USDANutrient represents a single nutrient from USDA data. Search results
// carry nutrientId/value; food details nest the id under nutrient and report
// the quantity as amount.
type USDANutrient struct {
	NutrientID   int               `json:"nutrientId,omitempty"`
	NutrientName string            `json:"nutrientName,omitempty"`
	UnitName     string            `json:"unitName,omitempty"`
	Value        float64           `json:"value,omitempty"`
	Nutrient     *USDANutrientInfo `json:"nutrient,omitempty"`
	Amount       float64           `json:"amount,omitempty"`
}

// USDANutrientInfo is the nutrient descriptor of a food details response
type USDANutrientInfo struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	UnitName string `json:"unitName"`
}

// ID returns the nutrient id of either response shape
func (n USDANutrient) ID() int {
	if n.NutrientID == 0 && n.Nutrient != nil {
		return n.Nutrient.ID
	}
	return n.NutrientID
}

// Quantity returns the per-100 g amount of either response shape
func (n USDANutrient) Quantity() float64 {
	if n.Nutrient != nil && n.NutrientID == 0 {
		return n.Amount
	}
	return n.Value
}

// USDASearchResponse represents the response from USDA search API
type USDASearchResponse struct {
	Foods       []USDAFood `json:"foods"`
	TotalHits   int        `json:"totalHits"`
	CurrentPage int        `json:"currentPage"`
	TotalPages  int        `json:"totalPages"`
}

// MatchResult is a scored candidate of a name search
type MatchResult struct {
	ID            string   `json:"id"`
	Description   string   `json:"description"`
	MatchScore    float64  `json:"matchScore"` // 0-100
	MatchedTokens []string `json:"matchedTokens,omitempty"`
}

// ImportedFood is a cached USDA lookup, macros per 100 g
type ImportedFood struct {
	FdcID       string    `json:"fdcId"`
	Description string    `json:"description"`
	Macros      Macros    `json:"macros"`
	Confidence  float64   `json:"confidence"`
	CachedAt    time.Time `json:"cachedAt"`
}
