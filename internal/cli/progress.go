package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rashikfit/backend/internal/app"
	"github.com/rashikfit/backend/internal/domain"
	"github.com/rashikfit/backend/internal/usecase"
)

func newProgressCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Track weight and body composition",
	}

	var (
		weight float64
		date   string
		neck   float64
		waist  float64
		hips   float64
		thigh  float64
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Log a weigh-in with optional circumferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseDateOrNow(date)
			if err != nil {
				return err
			}
			in := usecase.WeightEntryInput{
				Date:   at,
				Weight: weight,
				Measurements: domain.Measurements{
					Neck:  optionalCm(neck),
					Waist: optionalCm(waist),
					Hips:  optionalCm(hips),
					Thigh: optionalCm(thigh),
				},
			}
			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				entry, err := a.Progress.Add(ctx, user.ID, in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added entry %s\n", entry.ID)
				if entry.BodyFatPercentage != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Body fat %.1f%%\n", *entry.BodyFatPercentage)
				}
				return nil
			})
		},
	}
	add.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	add.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD), defaults to now")
	add.Flags().Float64Var(&neck, "neck", 0, "Neck circumference in cm")
	add.Flags().Float64Var(&waist, "waist", 0, "Waist circumference at the navel in cm")
	add.Flags().Float64Var(&hips, "hips", 0, "Hip circumference in cm")
	add.Flags().Float64Var(&thigh, "thigh", 0, "Thigh circumference in cm")

	list := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				entries, err := a.Progress.List(ctx, user.ID)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				fmt.Fprintln(w, "ID\tDATE\tWEIGHT_KG\tBODY_FAT%\tFAT_KG\tLEAN_KG")
				for _, e := range entries {
					fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\t%s\t%s\n", e.ID, e.Date.Local().Format("2006-01-02"), e.Weight,
						optionalValue(e.BodyFatPercentage), optionalValue(e.BodyFatMass), optionalValue(e.LeanMass))
				}
				return nil
			})
		},
	}

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				if err := a.Progress.Delete(ctx, user.ID, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s\n", args[0])
				return nil
			})
		},
	}

	cmd.AddCommand(add, list, remove)
	return cmd
}

func optionalCm(v float64) *float64 {
	if v <= 0 {
		return nil
	}
	return &v
}

func optionalValue(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.1f", *v)
}
