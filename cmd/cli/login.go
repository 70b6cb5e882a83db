package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/stayhub/stayctl/internal/common"
	"github.com/stayhub/stayctl/internal/models"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to StayHub",
	Long:  "Signs in with a username and password and keeps the session for later commands",
	RunE:  runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {

	if sessionManager.IsAuthenticated() {
		user := sessionManager.User()
		fmt.Println(infoStyle.Render(fmt.Sprintf("Already signed in as %s", user.Username)))
		fmt.Println("Run 'stayctl logout' first to switch accounts.")
		return nil
	}

	credentials := models.Credentials{}
	credentials.Username, _ = cmd.Flags().GetString("username")
	credentials.Password, _ = cmd.Flags().GetString("password")

	if len(credentials.Username) == 0 || len(credentials.Password) == 0 {
		fmt.Println(titleStyle.Render("Sign in to StayHub"))

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Username").
					Value(&credentials.Username).
					Validate(requiredField("username")),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&credentials.Password).
					Validate(requiredField("password")),
			),
		)

		if err := form.Run(); err != nil {
			return fmt.Errorf("login prompt cancelled: %w", err)
		}
	}

	credentials.Username = strings.TrimSpace(credentials.Username)

	ctx, cleanup := common.WithInterrupt(context.Background())
	defer cleanup()

	user, err := sessionManager.Login(ctx, credentials)
	if err != nil {
		return failed("Login failed", err)
	}

	fmt.Println()
	fmt.Println(successStyle.Render("Login successful!"))
	fmt.Printf("Welcome back, %s\n", user.GetName())
	fmt.Println()

	return nil
}

func requiredField(name string) func(string) error {
	return func(s string) error {
		if len(strings.TrimSpace(s)) == 0 {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		wasSignedIn := sessionManager.IsAuthenticated()

		sessionManager.Logout(cmd.Context())

		if wasSignedIn {
			fmt.Println(successStyle.Render("Signed out"))
		} else {
			fmt.Println(infoStyle.Render("No active session"))
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringP("username", "u", "", "Username to sign in with")
	loginCmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")

	// Add the command to the root
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
