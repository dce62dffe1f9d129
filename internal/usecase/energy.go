package usecase

import "github.com/rashikfit/backend/internal/domain"

// activityMultipliers maps activity levels to their TDEE factor
var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// CalculateBMR uses the Mifflin-St Jeor equation (kcal/day)
func CalculateBMR(u domain.UserData) float64 {
	bmr := 10*u.Weight + 6.25*u.Height - 5*u.Age
	if u.Gender == domain.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// CalculateTDEE scales bmr by the activity multiplier. Unknown levels fall back to sedentary.
func CalculateTDEE(bmr float64, level domain.ActivityLevel) float64 {
	multiplier, ok := activityMultipliers[level]
	if !ok {
		multiplier = activityMultipliers[domain.ActivitySedentary]
	}
	return bmr * multiplier
}

// CalculateAdjustedTDEE applies the goal's deficit or surplus. No clamping.
func CalculateAdjustedTDEE(tdee float64, goal domain.GoalSettings) float64 {
	switch goal.Goal {
	case domain.GoalLose:
		return tdee * (1 - goal.Modifier)
	case domain.GoalGain:
		return tdee * (1 + goal.Modifier)
	default:
		return tdee
	}
}
