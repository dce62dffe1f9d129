package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rashikfit/backend/internal/app"
	"github.com/rashikfit/backend/internal/domain"
	"github.com/rashikfit/backend/internal/usecase"
)

func newRecipeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Manage recipes",
	}

	var (
		description string
		imageURL    string
		servings    int
		ingredients []string
	)
	input := func(name string) (usecase.RecipeInput, error) {
		items, err := parseIngredients(ingredients)
		if err != nil {
			return usecase.RecipeInput{}, err
		}
		return usecase.RecipeInput{
			Name:        name,
			Description: description,
			ImageURL:    imageURL,
			Servings:    servings,
			Ingredients: items,
		}, nil
	}
	recipeFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&description, "description", "", "Recipe description")
		c.Flags().StringVar(&imageURL, "image", "", "Image URL")
		c.Flags().IntVar(&servings, "servings", 1, "Number of servings the recipe makes")
		c.Flags().StringArrayVar(&ingredients, "ingredient", nil, "Ingredient as FOOD_ID:GRAMS (repeatable)")
	}

	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input(args[0])
			if err != nil {
				return err
			}
			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				recipe, err := a.Recipes.Create(ctx, user.ID, in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created recipe %s (%s)\n", recipe.Name, recipe.ID)
				printMacros(cmd.OutOrStdout(), "PER_SERVING", recipe.PerServingMacros)
				return nil
			})
		},
	}
	recipeFlags(create)

	update := &cobra.Command{
		Use:   "update <id> <name>",
		Short: "Replace a recipe's name, servings and ingredients",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input(args[1])
			if err != nil {
				return err
			}
			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				recipe, err := a.Recipes.Update(ctx, user.ID, args[0], in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated recipe %s\n", recipe.ID)
				printMacros(cmd.OutOrStdout(), "PER_SERVING", recipe.PerServingMacros)
				return nil
			})
		},
	}
	recipeFlags(update)

	list := &cobra.Command{
		Use:   "list",
		Short: "List recipes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				recipes, err := a.Recipes.List(ctx, user.ID)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				fmt.Fprintln(w, "ID\tNAME\tSERVINGS\tKCAL/SERVING\tPROTEIN\tCARBS\tFAT")
				for _, r := range recipes {
					m := r.PerServingMacros
					fmt.Fprintf(w, "%s\t%s\t%d\t%.1f\t%.1f\t%.1f\t%.1f\n", r.ID, r.Name, r.Servings, m.Calories, m.Protein, m.Carbs, m.Fat)
				}
				return nil
			})
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a recipe with its ingredients",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				r, err := a.Recipes.Get(ctx, user.ID, args[0])
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "%s\t%s\t%d servings\n", r.ID, r.Name, r.Servings)
				if r.Description != "" {
					fmt.Fprintln(w, r.Description)
				}
				fmt.Fprintln(w, "FOOD_ID\tFOOD\tGRAMS\tKCAL\tPROTEIN\tCARBS\tFAT")
				for _, ing := range r.Ingredients {
					fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\n", ing.FoodItemID, ing.FoodItemName, ing.QuantityGram, ing.Calories, ing.Protein, ing.Carbs, ing.Fat)
				}
				printMacros(w, "TOTAL", r.TotalMacros)
				printMacros(w, "PER_SERVING", r.PerServingMacros)
				return nil
			})
		},
	}

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recipe and clear it from the meal plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				if err := a.Recipes.Delete(ctx, user.ID, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted recipe %s\n", args[0])
				return nil
			})
		},
	}

	cmd.AddCommand(create, list, show, update, remove)
	return cmd
}
