package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"talentia/internal/app"
	"talentia/internal/routes"
)

func (a *App) loginCommand() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.auth.SignIn(cmd.Context(), app.SignInInput{Email: email, Password: password})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Signed in as %s (%s)\n", result.Session.User.FullName(), result.Session.User.Role)
			fmt.Fprintf(a.out, "Home: %s\n", result.Home)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func (a *App) registerCommand() *cobra.Command {
	var input app.SignUpInput
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.auth.SignUp(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Welcome %s (%s)\n", result.Session.User.FullName(), result.Session.User.Role)
			fmt.Fprintf(a.out, "Home: %s\n", result.Home)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&input.Password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&input.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&input.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&input.Account, "account", "student", "account type: student, company, mentor or university")
	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			route, err := a.auth.SignOut()
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Signed out. Home: %s\n", route)
			return nil
		},
	}
}

func (a *App) whoamiCommand() *cobra.Command {
	var refresh bool
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			current := a.auth.Current()
			if current == nil {
				fmt.Fprintf(a.out, "Not logged in. Home: %s\n", routes.Landing)
				return nil
			}
			u := current.User
			if refresh {
				fetched, err := a.auth.Refresh(cmd.Context())
				if err != nil {
					return err
				}
				u = *fetched
			}
			fmt.Fprintf(a.out, "%s <%s>\n", u.FullName(), u.Email)
			fmt.Fprintf(a.out, "Role: %s\n", u.Role)
			fmt.Fprintf(a.out, "Home: %s\n", routes.Home(u.Role))
			return nil
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-fetch the profile from the backend")
	return cmd
}
