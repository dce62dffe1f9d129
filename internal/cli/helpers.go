package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rashikfit/backend/config"
	"github.com/rashikfit/backend/internal/app"
	"github.com/rashikfit/backend/internal/domain"
	"github.com/rashikfit/backend/internal/logging"
	"github.com/rashikfit/backend/internal/usecase"
)

// withApp loads the configuration, opens the store and runs fn. --db forces
// the sqlite backend at that path.
func (o *options) withApp(cmd *cobra.Command, fn func(context.Context, *app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if o.dbPath != "" {
		cfg.Store.Type = "sqlite"
		cfg.Store.Path = o.dbPath
	}

	logger := logging.New(cfg.Log)
	if !o.verbose {
		logger.SetLevel(logrus.WarnLevel)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := app.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

// withUser is withApp for commands that need a logged in user
func (o *options) withUser(cmd *cobra.Command, fn func(context.Context, *app.App, domain.User) error) error {
	return o.withApp(cmd, func(ctx context.Context, a *app.App) error {
		user, err := a.Auth.CurrentUser(ctx)
		if errors.Is(err, domain.ErrUnauthenticated) {
			return fmt.Errorf("not logged in (run `rashik user login`)")
		}
		if err != nil {
			return err
		}
		return fn(ctx, a, user)
	})
}

func parseFloatArg(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}

func parseDateOrNow(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

// parseIngredients reads FOOD_ID:GRAMS pairs
func parseIngredients(values []string) ([]usecase.IngredientInput, error) {
	out := make([]usecase.IngredientInput, 0, len(values))
	for _, v := range values {
		id, grams, ok := strings.Cut(v, ":")
		if !ok || strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("invalid --ingredient %q (expected FOOD_ID:GRAMS)", v)
		}
		q, err := parseFloatArg("ingredient grams", grams)
		if err != nil {
			return nil, err
		}
		out = append(out, usecase.IngredientInput{FoodItemID: strings.TrimSpace(id), QuantityGram: q})
	}
	return out, nil
}

func printMacros(w io.Writer, label string, m domain.Macros) {
	fmt.Fprintf(w, "%s\t%.0f kcal\tP %.1f g\tC %.1f g\tF %.1f g\n", label, m.Calories, m.Protein, m.Carbs, m.Fat)
}

func printFoods(w io.Writer, foods []domain.FoodItem) {
	fmt.Fprintln(w, "ID\tNAME\tSERVING\tKCAL\tPROTEIN\tCARBS\tFAT\tCUSTOM")
	for _, f := range foods {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.1f\t%.1f\t%.1f\t%t\n", f.ID, f.Name, f.ServingSize, f.Calories, f.Protein, f.Carbs, f.Fat, f.IsCustom)
	}
}

func printPlan(w io.Writer, summary usecase.PlanSummary) {
	fmt.Fprintln(w, "SLOT_ID\tNAME\tRECIPE\tSERVINGS\tKCAL")
	for _, slot := range summary.Plan.Slots {
		recipe, kcal := "-", 0.0
		if slot.Assigned() {
			recipe = slot.RecipeSnapshot.Name
			kcal = slot.RecipeSnapshot.PerServingMacros.Calories * slot.QuantityOfRecipeServings
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.0f\n", slot.ID, slot.SlotName, recipe, slot.QuantityOfRecipeServings, kcal)
	}
	printMacros(w, "TOTAL", summary.Totals)
	if summary.Target != nil {
		printMacros(w, "TARGET", *summary.Target)
		printMacros(w, "REMAINING", *summary.Difference)
	}
}
