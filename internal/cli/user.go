package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rashikfit/backend/internal/app"
	"github.com/rashikfit/backend/internal/domain"
)

func newUserCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the local account and session",
	}

	var password string
	var google bool

	register := &cobra.Command{
		Use:   "register <email>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				user, err := a.Auth.Register(ctx, args[0], password)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (%s)\n", user.Email, user.ID)
				return nil
			})
		},
	}
	register.Flags().StringVar(&password, "password", "", "Account password")

	login := &cobra.Command{
		Use:   "login <email>",
		Short: "Start a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				var (
					user domain.User
					err  error
				)
				if google {
					user, err = a.Auth.SignInWithGoogle(ctx, args[0])
				} else {
					user, err = a.Auth.Login(ctx, args[0], password)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", user.Email)
				return nil
			})
		},
	}
	login.Flags().StringVar(&password, "password", "", "Account password")
	login.Flags().BoolVar(&google, "google", false, "Sign in with Google, registering the email if needed")

	logout := &cobra.Command{
		Use:   "logout",
		Short: "End the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Auth.Logout(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
				return nil
			})
		},
	}

	whoami := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withUser(cmd, func(ctx context.Context, a *app.App, user domain.User) error {
				kind := "password"
				if user.IsGoogleLogin {
					kind = "google"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", user.ID, user.Email, kind)
				return nil
			})
		},
	}

	cmd.AddCommand(register, login, logout, whoami)
	return cmd
}
