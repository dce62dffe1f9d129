package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rashikfit/backend/internal/app"
	"github.com/rashikfit/backend/internal/domain"
	"github.com/rashikfit/backend/internal/usecase"
)

func newFoodCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Browse the food catalogue and manage custom foods",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List catalogue and custom foods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				foods, err := a.Foods.ListFoods(ctx, user.ID)
				if err != nil {
					return err
				}
				printFoods(cmd.OutOrStdout(), foods)
				return nil
			})
		},
	}

	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Rank foods by name similarity",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				foods, err := a.Foods.SearchFoods(ctx, user.ID, strings.Join(args, " "))
				if err != nil {
					return err
				}
				printFoods(cmd.OutOrStdout(), foods)
				return nil
			})
		},
	}

	ingredients := &cobra.Command{
		Use:   "ingredients",
		Short: "List foods usable as recipe ingredients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				foods, err := a.Foods.EligibleIngredients(ctx, user.ID)
				if err != nil {
					return err
				}
				printFoods(cmd.OutOrStdout(), foods)
				return nil
			})
		},
	}

	var in usecase.FoodInput
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom food",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Name = args[0]
			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				food, err := a.Foods.AddCustomFood(ctx, user.ID, in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added food %s (%s)\n", food.Name, food.ID)
				return nil
			})
		},
	}
	add.Flags().Float64Var(&in.Calories, "calories", 0, "Calories per serving")
	add.Flags().Float64Var(&in.Protein, "protein", 0, "Protein grams per serving")
	add.Flags().Float64Var(&in.Carbs, "carbs", 0, "Carb grams per serving")
	add.Flags().Float64Var(&in.Fat, "fat", 0, "Fat grams per serving")
	add.Flags().StringVar(&in.ServingSize, "serving", "100 g", "Serving label, e.g. \"1 bar (60 g)\"")

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a custom food",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				if err := a.Foods.DeleteCustomFood(ctx, user.ID, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted food %s\n", args[0])
				return nil
			})
		},
	}

	var fdcID int
	importCmd := &cobra.Command{
		Use:   "import [query]",
		Short: "Import a USDA FoodData Central food as a custom food",
		Long: "Import the best USDA FoodData Central match for query, or the exact\n" +
			"record given with --fdc-id. Macros are stored per 100 g.",
		Args: func(cmd *cobra.Command, args []string) error {
			switch {
			case fdcID != 0 && len(args) > 0:
				return fmt.Errorf("give either a query or --fdc-id, not both")
			case fdcID < 0:
				return fmt.Errorf("--fdc-id must be positive")
			case fdcID == 0 && len(args) == 0:
				return fmt.Errorf("requires a query or --fdc-id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				var (
					food domain.FoodItem
					err  error
				)
				if fdcID > 0 {
					food, err = a.Foods.ImportByFdcID(ctx, user.ID, fdcID)
				} else {
					food, err = a.Foods.ImportFromUSDA(ctx, user.ID, strings.Join(args, " "))
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%s)\n", food.Name, food.ID)
				printFoods(cmd.OutOrStdout(), []domain.FoodItem{food})
				return nil
			})
		},
	}
	importCmd.Flags().IntVar(&fdcID, "fdc-id", 0, "FoodData Central id to import directly")

	cmd.AddCommand(list, search, ingredients, add, remove, importCmd)
	return cmd
}
