package usecase

import (
	"fmt"
	"math"

	"github.com/rashikfit/backend/internal/domain"
)

// Energy density in kcal per gram
const (
	kcalPerGramProtein = 4.0
	kcalPerGramCarbs   = 4.0
	kcalPerGramFat     = 9.0
)

// Per-kg body weight rates used for the lose and gain goals
const (
	proteinGramsPerKg = 1.6
	fatGramsPerKg     = 1.0
)

// KetoCarbLimitGrams is the daily carb ceiling for ketosis
const KetoCarbLimitGrams = 50

// split is a fractional carbs/protein/fat distribution of calories
type split struct {
	carbs, protein, fat float64
}

var (
	ketoSplit     = split{carbs: 0.05, protein: 0.25, fat: 0.70}
	balancedSplit = split{carbs: 0.40, protein: 0.30, fat: 0.30}

	carbCycleSplits = map[domain.CarbCycleDay]split{
		domain.CarbDayHigh:   {carbs: 0.55, protein: 0.25, fat: 0.20},
		domain.CarbDayMedium: {carbs: 0.35, protein: 0.30, fat: 0.35},
		domain.CarbDayLow:    {carbs: 0.15, protein: 0.40, fat: 0.45},
	}
)

// ComputeMacros distributes target calories into gram targets. The first
// matching rule wins: keto, carb cycling by day type, then the lose/gain
// per-kg rule, then the balanced split. Values are rounded to whole units.
func ComputeMacros(target float64, diet domain.DietProtocol, goal domain.Goal, weightKg float64, day domain.CarbCycleDay) domain.Macros {
	switch diet {
	case domain.DietKeto:
		return fromSplit(target, ketoSplit)
	case domain.DietCarbCycling:
		s, ok := carbCycleSplits[day]
		if !ok {
			s = carbCycleSplits[domain.CarbDayMedium]
		}
		return fromSplit(target, s)
	case domain.DietNone, domain.DietIntermittentFasting:
	}

	switch goal {
	case domain.GoalLose, domain.GoalGain:
		return fromBodyWeight(target, weightKg)
	}
	return fromSplit(target, balancedSplit)
}

func fromSplit(target float64, s split) domain.Macros {
	return domain.Macros{
		Calories: math.Round(target),
		Protein:  math.Round(target * s.protein / kcalPerGramProtein),
		Carbs:    math.Round(target * s.carbs / kcalPerGramCarbs),
		Fat:      math.Round(target * s.fat / kcalPerGramFat),
	}
}

func fromBodyWeight(target, weightKg float64) domain.Macros {
	protein := proteinGramsPerKg * weightKg
	fat := fatGramsPerKg * weightKg
	remaining := target - protein*kcalPerGramProtein - fat*kcalPerGramFat
	carbs := math.Max(0, remaining/kcalPerGramCarbs)
	return domain.Macros{
		Calories: math.Round(target),
		Protein:  math.Round(protein),
		Carbs:    math.Round(carbs),
		Fat:      math.Round(fat),
	}
}

// KetoCarbWarning reports a message when carbs exceed the ketogenic ceiling
func KetoCarbWarning(carbs float64) (string, bool) {
	if carbs <= KetoCarbLimitGrams {
		return "", false
	}
	return fmt.Sprintf("carbohydrates (%.0f g) exceed the %d g ketosis limit", carbs, KetoCarbLimitGrams), true
}

// CarbCyclePlan holds the targets of each day type and the weekly schedule
type CarbCyclePlan struct {
	Config      domain.CarbCycleConfig `json:"config"`
	High        domain.Macros          `json:"high"`
	Medium      domain.Macros          `json:"medium"`
	Low         domain.Macros          `json:"low"`
	WeeklyCarbs float64                `json:"weeklyCarbs"` // grams across the 7 days
}

// CarbCycleBreakdown computes all three day types for target calories
func CarbCycleBreakdown(target float64, cfg domain.CarbCycleConfig) CarbCyclePlan {
	high := ComputeMacros(target, domain.DietCarbCycling, "", 0, domain.CarbDayHigh)
	medium := ComputeMacros(target, domain.DietCarbCycling, "", 0, domain.CarbDayMedium)
	low := ComputeMacros(target, domain.DietCarbCycling, "", 0, domain.CarbDayLow)
	return CarbCyclePlan{
		Config: cfg,
		High:   high,
		Medium: medium,
		Low:    low,
		WeeklyCarbs: high.Carbs*float64(cfg.HighCarbDays) +
			medium.Carbs*float64(cfg.MediumCarbDays) +
			low.Carbs*float64(cfg.LowCarbDays),
	}
}
