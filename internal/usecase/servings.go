package usecase

import (
	"regexp"
	"strconv"

	"github.com/rashikfit/backend/internal/domain"
)

// Package-level compiled regex patterns for serving labels.
// A gram amount wins over a millilitre amount; 1 ml is taken as 1 g.
var (
	gramAmountRegex = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:g|جرام|جم)`)
	mlAmountRegex   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*ml`)
)

// ParseServingSizeToGrams extracts the weight in grams from a free-text serving
// label such as "100 g" or "1 large egg (50 g)". ok is false when the label
// carries no gram or millilitre amount.
func ParseServingSizeToGrams(label string) (float64, bool) {
	if label == "" {
		return 0, false
	}
	for _, re := range []*regexp.Regexp{gramAmountRegex, mlAmountRegex} {
		if m := re.FindStringSubmatch(label); m != nil {
			value, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			return value, true
		}
	}
	return 0, false
}

// EligibleIngredients filters items down to those with a usable base weight.
// Foods like "1 handful" never reach a recipe instead of being treated as 0 g.
func EligibleIngredients(items []domain.FoodItem) []domain.FoodItem {
	eligible := make([]domain.FoodItem, 0, len(items))
	for _, item := range items {
		if base, ok := ParseServingSizeToGrams(item.ServingSize); ok && base > 0 {
			eligible = append(eligible, item)
		}
	}
	return eligible
}
