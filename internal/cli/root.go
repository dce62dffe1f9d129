// Package cli is the rashik command line client. It runs the same services as
// the HTTP server against a local sqlite file.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type options struct {
	dbPath  string
	verbose bool
}

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "rashik",
		Short:         "rashik plans meals against your calorie and macro targets",
		Long:          "rashik computes calorie and macro targets, builds recipes from a food catalogue and scales a daily meal plan to hit them.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Path to SQLite database")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log service activity to stderr")

	root.AddCommand(
		newUserCmd(opts),
		newCalcCmd(opts),
		newFoodCmd(opts),
		newRecipeCmd(opts),
		newPlanCmd(opts),
		newProgressCmd(opts),
	)
	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
