package usecase

import (
	"math"

	"github.com/rashikfit/backend/internal/domain"
)

// Body fat categories, checked from the top. The lower bound of each row is inclusive.
var (
	maleBodyFatCategories = []bodyFatCategory{
		{min: 25, label: "obese"},
		{min: 18, label: "average"},
		{min: 14, label: "fitness"},
		{min: 6, label: "athletes"},
		{min: 2, label: "essential fat"},
	}
	femaleBodyFatCategories = []bodyFatCategory{
		{min: 32, label: "obese"},
		{min: 25, label: "average"},
		{min: 21, label: "fitness"},
		{min: 14, label: "athletes"},
		{min: 10, label: "essential fat"},
	}
)

type bodyFatCategory struct {
	min   float64
	label string
}

// NavyBodyFatPercentage estimates body fat with the U.S. Navy circumference
// method. All inputs are centimetres; hips is only used for females. The result
// is rounded to one decimal and clamped to [0, 100]. ok is false when the
// inputs cannot produce a value (e.g. waist not larger than neck).
func NavyBodyFatPercentage(gender domain.Gender, heightCm, neckCm, waistCm, hipsCm float64) (float64, bool) {
	if heightCm <= 0 || neckCm <= 0 || waistCm <= 0 {
		return 0, false
	}

	var pct float64
	switch gender {
	case domain.GenderMale:
		if waistCm-neckCm <= 0 {
			return 0, false
		}
		pct = 86.010*math.Log10(waistCm-neckCm) - 70.041*math.Log10(heightCm) + 36.76
	case domain.GenderFemale:
		if hipsCm <= 0 || waistCm+hipsCm-neckCm <= 0 {
			return 0, false
		}
		pct = 163.205*math.Log10(waistCm+hipsCm-neckCm) - 97.684*math.Log10(heightCm) - 78.387
	default:
		return 0, false
	}

	pct = roundTo(pct, 1)
	if math.IsNaN(pct) {
		return 0, false
	}
	return math.Max(0, math.Min(100, pct)), true
}

// BodyFatCategory labels a percentage for the given gender
func BodyFatCategory(pct float64, gender domain.Gender) string {
	categories := maleBodyFatCategories
	if gender == domain.GenderFemale {
		categories = femaleBodyFatCategories
	}
	for _, c := range categories {
		if pct >= c.min {
			return c.label
		}
	}
	return "below essential fat"
}

// BodyComposition computes percentage, category and fat/lean mass. Masses are
// only set when weightKg and the percentage are positive.
func BodyComposition(gender domain.Gender, heightCm, weightKg float64, m domain.Measurements) (domain.BodyFatResult, bool) {
	pct, ok := NavyBodyFatPercentage(gender, heightCm, deref(m.Neck), deref(m.Waist), deref(m.Hips))
	if !ok {
		return domain.BodyFatResult{}, false
	}
	result := domain.BodyFatResult{Percentage: pct, Category: BodyFatCategory(pct, gender)}
	if weightKg > 0 && pct > 0 {
		fat := roundTo(weightKg*pct/100, 1)
		lean := roundTo(weightKg-fat, 1)
		result.FatMassKg = &fat
		result.LeanMassKg = &lean
	}
	return result, true
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
