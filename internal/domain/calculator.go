package domain

import (
	"fmt"
	"strings"
	"time"
)

// Gender selects the Mifflin-St Jeor constant
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel selects the TDEE multiplier
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "veryActive"
)

// Goal is the weight goal of a calculator session
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// DietProtocol is the closed set of supported diets
type DietProtocol string

const (
	DietNone                DietProtocol = "none"
	DietKeto                DietProtocol = "keto"
	DietCarbCycling         DietProtocol = "carbCycling"
	DietIntermittentFasting DietProtocol = "intermittentFasting"
)

// CarbCycleDay is the day type used by the carb cycling split
type CarbCycleDay string

const (
	CarbDayHigh   CarbCycleDay = "high"
	CarbDayMedium CarbCycleDay = "medium"
	CarbDayLow    CarbCycleDay = "low"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

func (g Goal) Valid() bool {
	return g == GoalLose || g == GoalMaintain || g == GoalGain
}

func (d DietProtocol) Valid() bool {
	switch d {
	case DietNone, DietKeto, DietCarbCycling, DietIntermittentFasting:
		return true
	}
	return false
}

// ParseGender accepts "male"/"female" in any case
func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("%w: unknown gender %q", ErrInvalidRequest, s)
	}
	return g, nil
}

// ParseActivityLevel accepts the camelCase names plus "very_active"/"very-active"
func ParseActivityLevel(s string) (ActivityLevel, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", "", "-", "").Replace(normalized)
	switch normalized {
	case "sedentary":
		return ActivitySedentary, nil
	case "light":
		return ActivityLight, nil
	case "moderate":
		return ActivityModerate, nil
	case "active":
		return ActivityActive, nil
	case "veryactive":
		return ActivityVeryActive, nil
	}
	return "", fmt.Errorf("%w: unknown activity level %q", ErrInvalidRequest, s)
}

// ParseGoal accepts both the short names and the loseWeight/maintainWeight/gainWeight spellings
func ParseGoal(s string) (Goal, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.TrimSuffix(normalized, "weight")
	switch normalized {
	case "lose":
		return GoalLose, nil
	case "maintain":
		return GoalMaintain, nil
	case "gain":
		return GoalGain, nil
	}
	return "", fmt.Errorf("%w: unknown goal %q", ErrInvalidRequest, s)
}

// ParseDietProtocol maps an empty string to DietNone
func ParseDietProtocol(s string) (DietProtocol, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", "", "-", "").Replace(normalized)
	switch normalized {
	case "", "none", "balanced":
		return DietNone, nil
	case "keto":
		return DietKeto, nil
	case "carbcycling":
		return DietCarbCycling, nil
	case "intermittentfasting", "if":
		return DietIntermittentFasting, nil
	}
	return "", fmt.Errorf("%w: unknown diet protocol %q", ErrInvalidRequest, s)
}

// ParseCarbCycleDay never fails: anything unrecognized is a medium day
func ParseCarbCycleDay(s string) CarbCycleDay {
	switch CarbCycleDay(strings.ToLower(strings.TrimSpace(s))) {
	case CarbDayHigh:
		return CarbDayHigh
	case CarbDayLow:
		return CarbDayLow
	}
	return CarbDayMedium
}

// UserData holds the biometrics for one calculation
type UserData struct {
	Gender        Gender        `json:"gender"`
	Age           float64       `json:"age"`    // years
	Height        float64       `json:"height"` // cm
	Weight        float64       `json:"weight"` // kg
	ActivityLevel ActivityLevel `json:"activityLevel"`
}

// Validate checks the form-level preconditions of the calculator
func (u UserData) Validate() error {
	if !u.Gender.Valid() {
		return fmt.Errorf("%w: gender must be male or female", ErrInvalidRequest)
	}
	if u.Age <= 0 {
		return fmt.Errorf("%w: age must be > 0", ErrInvalidRequest)
	}
	if u.Height <= 0 {
		return fmt.Errorf("%w: height must be > 0", ErrInvalidRequest)
	}
	if u.Weight <= 0 {
		return fmt.Errorf("%w: weight must be > 0", ErrInvalidRequest)
	}
	if !u.ActivityLevel.Valid() {
		return fmt.Errorf("%w: unknown activity level %q", ErrInvalidRequest, u.ActivityLevel)
	}
	return nil
}

// GoalSettings carries the goal and its fractional deficit/surplus
type GoalSettings struct {
	Goal     Goal    `json:"goal"`
	Modifier float64 `json:"modifier"` // ignored for maintain
}

func (g GoalSettings) Validate() error {
	if !g.Goal.Valid() {
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidRequest, g.Goal)
	}
	if g.Modifier < 0 || g.Modifier >= 1 {
		return fmt.Errorf("%w: goal modifier must be in [0,1)", ErrInvalidRequest)
	}
	return nil
}

// CarbCycleConfig is the weekly distribution of carb day types
type CarbCycleConfig struct {
	HighCarbDays   int `json:"highCarbDays"`
	MediumCarbDays int `json:"mediumCarbDays"`
	LowCarbDays    int `json:"lowCarbDays"`
}

// DefaultCarbCycleConfig is the 2/3/2 week
func DefaultCarbCycleConfig() CarbCycleConfig {
	return CarbCycleConfig{HighCarbDays: 2, MediumCarbDays: 3, LowCarbDays: 2}
}

func (c CarbCycleConfig) Validate() error {
	if c.HighCarbDays < 0 || c.MediumCarbDays < 0 || c.LowCarbDays < 0 {
		return fmt.Errorf("%w: carb cycle day counts must be >= 0", ErrInvalidRequest)
	}
	if total := c.HighCarbDays + c.MediumCarbDays + c.LowCarbDays; total != 7 {
		return fmt.Errorf("%w: carb cycle days must sum to 7, got %d", ErrInvalidRequest, total)
	}
	return nil
}

// IntermittentFastingConfig is the daily eating window, HH:MM on a 24h clock
type IntermittentFastingConfig struct {
	EatingWindowStart string `json:"eatingWindowStart"`
	EatingWindowEnd   string `json:"eatingWindowEnd"`
}

// DefaultIntermittentFastingConfig is the 16/8 window 12:00-20:00
func DefaultIntermittentFastingConfig() IntermittentFastingConfig {
	return IntermittentFastingConfig{EatingWindowStart: "12:00", EatingWindowEnd: "20:00"}
}

func (c IntermittentFastingConfig) Validate() error {
	start, err := time.Parse("15:04", c.EatingWindowStart)
	if err != nil {
		return fmt.Errorf("%w: invalid eating window start %q (expected HH:MM)", ErrInvalidRequest, c.EatingWindowStart)
	}
	end, err := time.Parse("15:04", c.EatingWindowEnd)
	if err != nil {
		return fmt.Errorf("%w: invalid eating window end %q (expected HH:MM)", ErrInvalidRequest, c.EatingWindowEnd)
	}
	if start.Equal(end) {
		return fmt.Errorf("%w: eating window must not be empty", ErrInvalidRequest)
	}
	return nil
}

// WindowHours returns the length of the eating window; windows may wrap past midnight
func (c IntermittentFastingConfig) WindowHours() float64 {
	start, err1 := time.Parse("15:04", c.EatingWindowStart)
	end, err2 := time.Parse("15:04", c.EatingWindowEnd)
	if err1 != nil || err2 != nil {
		return 0
	}
	d := end.Sub(start)
	if d < 0 {
		d += 24 * time.Hour
	}
	return d.Hours()
}

// CalculatorState is the last calculator session of a user
type CalculatorState struct {
	UserData                  UserData                   `json:"userData"`
	GoalSettings              GoalSettings               `json:"goalSettings"`
	SelectedDiet              DietProtocol               `json:"selectedDiet"`
	InitialTDEE               float64                    `json:"initialTdee"`
	FinalTDEE                 float64                    `json:"finalTdee"`
	UserTargetMacros          Macros                     `json:"userTargetMacros"`
	CarbCycleConfig           *CarbCycleConfig           `json:"carbCycleConfig"`
	IntermittentFastingConfig *IntermittentFastingConfig `json:"intermittentFastingConfig"`
}
