package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rashikfit/backend/internal/app"
	"github.com/rashikfit/backend/internal/domain"
	"github.com/rashikfit/backend/internal/usecase"
)

func newCalcCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute calorie and macro targets",
	}

	var (
		gender      string
		age         float64
		height      float64
		weight      float64
		activity    string
		goal        string
		modifier    float64
		diet        string
		highDays    int
		mediumDays  int
		lowDays     int
		windowStart string
		windowEnd   string
	)

	run := &cobra.Command{
		Use:   "run",
		Short: "Calculate and save targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.CalculationInput{
				UserData: domain.UserData{
					Gender:        domain.Gender(gender),
					Age:           age,
					Height:        height,
					Weight:        weight,
					ActivityLevel: domain.ActivityLevel(activity),
				},
				GoalSettings: domain.GoalSettings{Goal: domain.Goal(goal), Modifier: modifier},
				Diet:         domain.DietProtocol(diet),
			}
			flags := cmd.Flags()
			if flags.Changed("high-days") || flags.Changed("medium-days") || flags.Changed("low-days") {
				in.CarbCycle = &domain.CarbCycleConfig{HighCarbDays: highDays, MediumCarbDays: mediumDays, LowCarbDays: lowDays}
			}
			if flags.Changed("window-start") || flags.Changed("window-end") {
				in.Fasting = &domain.IntermittentFastingConfig{EatingWindowStart: windowStart, EatingWindowEnd: windowEnd}
			}

			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				result, err := a.Calculator.Run(ctx, user.ID, in)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "BMR\t%.0f kcal\n", result.BMR)
				printState(w, result.State)
				if result.KetoWarning != "" {
					fmt.Fprintf(w, "WARNING\t%s\n", result.KetoWarning)
				}
				if result.CarbCycle != nil {
					printCarbCycle(w, *result.CarbCycle)
				}
				return nil
			})
		},
	}
	f := run.Flags()
	f.StringVar(&gender, "gender", "", "male or female")
	f.Float64Var(&age, "age", 0, "Age in years")
	f.Float64Var(&height, "height", 0, "Height in cm")
	f.Float64Var(&weight, "weight", 0, "Weight in kg")
	f.StringVar(&activity, "activity", "moderate", "sedentary, light, moderate, active or veryActive")
	f.StringVar(&goal, "goal", "maintain", "lose, maintain or gain")
	f.Float64Var(&modifier, "modifier", 0, "Deficit or surplus as a fraction, e.g. 0.2")
	f.StringVar(&diet, "diet", "none", "none, keto, carbCycling or intermittentFasting")
	f.IntVar(&highDays, "high-days", 2, "High carb days per week")
	f.IntVar(&mediumDays, "medium-days", 3, "Medium carb days per week")
	f.IntVar(&lowDays, "low-days", 2, "Low carb days per week")
	f.StringVar(&windowStart, "window-start", "12:00", "Eating window start (HH:MM)")
	f.StringVar(&windowEnd, "window-end", "20:00", "Eating window end (HH:MM)")

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the saved targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				state, err := a.Calculator.State(ctx, user.ID)
				if err != nil {
					return err
				}
				if state == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "No saved targets (run `rashik calc run`)")
					return nil
				}
				printState(cmd.OutOrStdout(), *state)
				return nil
			})
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Clear the saved targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				if err := a.Calculator.Clear(ctx, user.ID); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Cleared calculator targets")
				return nil
			})
		},
	}

	carbCycle := &cobra.Command{
		Use:   "carb-cycle",
		Short: "Show high, medium and low day macros for the saved target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				plan, err := a.Calculator.CarbCycle(ctx, user.ID)
				if err != nil {
					return err
				}
				printCarbCycle(cmd.OutOrStdout(), plan)
				return nil
			})
		},
	}

	cmd.AddCommand(run, show, reset, carbCycle)
	return cmd
}

func printState(w io.Writer, s domain.CalculatorState) {
	fmt.Fprintf(w, "TDEE\t%.0f kcal\n", s.InitialTDEE)
	fmt.Fprintf(w, "GOAL\t%s\t%.0f kcal\n", s.GoalSettings.Goal, s.FinalTDEE)
	fmt.Fprintf(w, "DIET\t%s\n", s.SelectedDiet)
	printMacros(w, "TARGET", s.UserTargetMacros)
	if s.IntermittentFastingConfig != nil {
		c := s.IntermittentFastingConfig
		fmt.Fprintf(w, "WINDOW\t%s-%s\t%.1f h\n", c.EatingWindowStart, c.EatingWindowEnd, c.WindowHours())
	}
}

func printCarbCycle(w io.Writer, p usecase.CarbCyclePlan) {
	fmt.Fprintf(w, "DAYS\thigh %d\tmedium %d\tlow %d\n", p.Config.HighCarbDays, p.Config.MediumCarbDays, p.Config.LowCarbDays)
	printMacros(w, "HIGH", p.High)
	printMacros(w, "MEDIUM", p.Medium)
	printMacros(w, "LOW", p.Low)
	fmt.Fprintf(w, "WEEKLY_CARBS\t%.0f g\n", p.WeeklyCarbs)
}
