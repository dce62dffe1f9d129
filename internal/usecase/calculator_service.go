package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rashikfit/backend/internal/domain"
)

// CalculationInput is one submission of the calculator form
type CalculationInput struct {
	UserData     domain.UserData                   `json:"userData"`
	GoalSettings domain.GoalSettings               `json:"goalSettings"`
	Diet         domain.DietProtocol               `json:"selectedDiet"`
	CarbCycle    *domain.CarbCycleConfig           `json:"carbCycleConfig,omitempty"`
	Fasting      *domain.IntermittentFastingConfig `json:"intermittentFastingConfig,omitempty"`
}

// CalculationResult is the saved state plus values derived for display
type CalculationResult struct {
	State       domain.CalculatorState `json:"state"`
	BMR         float64                `json:"bmr"`
	KetoWarning string                 `json:"ketoWarning,omitempty"`
	CarbCycle   *CarbCyclePlan         `json:"carbCycle,omitempty"`
}

// CalculatorService runs the energy and macro pipeline and keeps the last session per user
type CalculatorService struct {
	repo   domain.UserDataRepository
	logger logrus.FieldLogger
}

func NewCalculatorService(repo domain.UserDataRepository, logger logrus.FieldLogger) *CalculatorService {
	return &CalculatorService{repo: repo, logger: logger}
}

// Calculate validates in and computes BMR, TDEE, the adjusted target and macros.
// Carb cycling targets use the medium day.
func (s *CalculatorService) Calculate(in CalculationInput) (CalculationResult, error) {
	in, err := normalizeInput(in)
	if err != nil {
		return CalculationResult{}, err
	}
	if err := in.UserData.Validate(); err != nil {
		return CalculationResult{}, err
	}
	goal := in.GoalSettings
	if goal.Goal == domain.GoalMaintain {
		goal.Modifier = 0
	}
	if err := goal.Validate(); err != nil {
		return CalculationResult{}, err
	}

	state := domain.CalculatorState{
		UserData:     in.UserData,
		GoalSettings: goal,
		SelectedDiet: in.Diet,
	}

	var result CalculationResult
	switch in.Diet {
	case domain.DietCarbCycling:
		cfg := domain.DefaultCarbCycleConfig()
		if in.CarbCycle != nil {
			cfg = *in.CarbCycle
		}
		if err := cfg.Validate(); err != nil {
			return CalculationResult{}, err
		}
		state.CarbCycleConfig = &cfg
	case domain.DietIntermittentFasting:
		cfg := domain.DefaultIntermittentFastingConfig()
		if in.Fasting != nil {
			cfg = *in.Fasting
		}
		if err := cfg.Validate(); err != nil {
			return CalculationResult{}, err
		}
		state.IntermittentFastingConfig = &cfg
	case domain.DietNone, domain.DietKeto:
	}

	result.BMR = CalculateBMR(in.UserData)
	state.InitialTDEE = CalculateTDEE(result.BMR, in.UserData.ActivityLevel)
	state.FinalTDEE = CalculateAdjustedTDEE(state.InitialTDEE, goal)
	state.UserTargetMacros = ComputeMacros(state.FinalTDEE, in.Diet, goal.Goal, in.UserData.Weight, domain.CarbDayMedium)

	if state.FinalTDEE < result.BMR {
		s.logger.WithFields(logrus.Fields{
			"bmr":    result.BMR,
			"target": state.FinalTDEE,
		}).Warn("adjusted calorie target is below BMR")
	}
	if in.Diet == domain.DietKeto {
		if msg, warn := KetoCarbWarning(state.UserTargetMacros.Carbs); warn {
			result.KetoWarning = msg
		}
	}
	if state.CarbCycleConfig != nil {
		plan := CarbCycleBreakdown(state.FinalTDEE, *state.CarbCycleConfig)
		result.CarbCycle = &plan
	}

	result.State = state
	return result, nil
}

// Run calculates and stores the result as the user's last session
func (s *CalculatorService) Run(ctx context.Context, userID string, in CalculationInput) (CalculationResult, error) {
	result, err := s.Calculate(in)
	if err != nil {
		return CalculationResult{}, err
	}
	if err := s.repo.SaveCalculatorState(ctx, userID, result.State); err != nil {
		return CalculationResult{}, err
	}
	s.logger.WithFields(logrus.Fields{
		"user_id":  userID,
		"diet":     result.State.SelectedDiet,
		"calories": result.State.UserTargetMacros.Calories,
	}).Info("calculator state saved")
	return result, nil
}

// State returns the saved session, or nil when the user never ran the calculator
func (s *CalculatorService) State(ctx context.Context, userID string) (*domain.CalculatorState, error) {
	return s.repo.CalculatorState(ctx, userID)
}

func (s *CalculatorService) Clear(ctx context.Context, userID string) error {
	return s.repo.ClearCalculatorState(ctx, userID)
}

// CarbCycle returns the three day-type targets for the saved session.
// Users without a carb cycle config get the default week.
func (s *CalculatorService) CarbCycle(ctx context.Context, userID string) (CarbCyclePlan, error) {
	state, err := s.repo.CalculatorState(ctx, userID)
	if err != nil {
		return CarbCyclePlan{}, err
	}
	if state == nil {
		return CarbCyclePlan{}, domain.ErrNoTargetMacros
	}
	cfg := domain.DefaultCarbCycleConfig()
	if state.CarbCycleConfig != nil {
		cfg = *state.CarbCycleConfig
	}
	return CarbCycleBreakdown(state.FinalTDEE, cfg), nil
}

// normalizeInput maps the accepted enum spellings onto their canonical values
func normalizeInput(in CalculationInput) (CalculationInput, error) {
	var err error
	if in.UserData.Gender, err = domain.ParseGender(string(in.UserData.Gender)); err != nil {
		return in, err
	}
	if in.UserData.ActivityLevel, err = domain.ParseActivityLevel(string(in.UserData.ActivityLevel)); err != nil {
		return in, err
	}
	if in.GoalSettings.Goal, err = domain.ParseGoal(string(in.GoalSettings.Goal)); err != nil {
		return in, err
	}
	if in.Diet, err = domain.ParseDietProtocol(string(in.Diet)); err != nil {
		return in, err
	}
	return in, nil
}
