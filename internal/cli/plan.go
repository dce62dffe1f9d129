package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rashikfit/backend/internal/app"
	"github.com/rashikfit/backend/internal/domain"
	"github.com/rashikfit/backend/internal/usecase"
)

// planAction runs fn for the current user and prints the resulting plan
func planAction(opts *options, fn func(context.Context, *app.App, string) (usecase.PlanSummary, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
			summary, err := fn(ctx, a, user.ID)
			if err != nil {
				return err
			}
			printPlan(cmd.OutOrStdout(), summary)
			return nil
		})
	}
}

func newPlanCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build the daily meal plan",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the meal plan with totals and the gap to target",
		Args:  cobra.NoArgs,
		RunE: planAction(opts, func(ctx context.Context, a *app.App, userID string) (usecase.PlanSummary, error) {
			return a.Plans.Get(ctx, userID)
		}),
	}

	meals := &cobra.Command{
		Use:   "meals <n>",
		Short: "Reset the plan to n empty meal slots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid meal count %q", args[0])
			}
			return planAction(opts, func(ctx context.Context, a *app.App, userID string) (usecase.PlanSummary, error) {
				return a.Plans.SetNumberOfMeals(ctx, userID, n)
			})(cmd, args)
		},
	}

	assign := &cobra.Command{
		Use:   "assign <slot-id> <recipe-id>",
		Short: "Put a recipe in a meal slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return planAction(opts, func(ctx context.Context, a *app.App, userID string) (usecase.PlanSummary, error) {
				return a.Plans.AssignRecipe(ctx, userID, args[0], args[1])
			})(cmd, args)
		},
	}

	servings := &cobra.Command{
		Use:   "servings <slot-id> <servings>",
		Short: "Set how many recipe servings a slot holds",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseFloatArg("servings", args[1])
			if err != nil {
				return err
			}
			return planAction(opts, func(ctx context.Context, a *app.App, userID string) (usecase.PlanSummary, error) {
				return a.Plans.SetServings(ctx, userID, args[0], q)
			})(cmd, args)
		},
	}

	adjust := &cobra.Command{
		Use:   "adjust",
		Short: "Scale every slot so the plan matches the calorie target",
		Args:  cobra.NoArgs,
		RunE: planAction(opts, func(ctx context.Context, a *app.App, userID string) (usecase.PlanSummary, error) {
			return a.Plans.Adjust(ctx, userID)
		}),
	}

	refresh := &cobra.Command{
		Use:   "refresh",
		Short: "Re-copy recipe nutrition into the plan after recipe edits",
		Args:  cobra.NoArgs,
		RunE: planAction(opts, func(ctx context.Context, a *app.App, userID string) (usecase.PlanSummary, error) {
			return a.Plans.Refresh(ctx, userID)
		}),
	}

	cmd.AddCommand(show, meals, assign, servings, adjust, refresh)
	return cmd
}
