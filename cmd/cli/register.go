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

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a StayHub account",
	Long:  "Creates an account and signs in with it. Missing details are prompted for.",
	RunE:  runRegister,
}

func runRegister(cmd *cobra.Command, args []string) error {

	registration := models.Registration{}
	registration.Username, _ = cmd.Flags().GetString("username")
	registration.Email, _ = cmd.Flags().GetString("email")
	registration.FirstName, _ = cmd.Flags().GetString("first-name")
	registration.LastName, _ = cmd.Flags().GetString("last-name")
	registration.Phone, _ = cmd.Flags().GetString("phone")
	registration.Password, _ = cmd.Flags().GetString("password")
	confirmPassword := registration.Password

	if len(registration.Password) == 0 ||
		len(registration.Username) == 0 ||
		len(registration.Email) == 0 {

		fmt.Println(titleStyle.Render("Create your StayHub account"))

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("First name").
					Value(&registration.FirstName).
					Validate(requiredField("first name")),
				huh.NewInput().
					Title("Last name").
					Value(&registration.LastName).
					Validate(requiredField("last name")),
				huh.NewInput().
					Title("Username").
					Value(&registration.Username).
					Validate(requiredField("username")),
				huh.NewInput().
					Title("Email").
					Value(&registration.Email).
					Validate(func(s string) error {
						if !common.IsValidEmail(strings.TrimSpace(s)) {
							return fmt.Errorf("please enter a valid email address")
						}
						return nil
					}),
				huh.NewInput().
					Title("Phone").
					Description("Optional").
					Value(&registration.Phone),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Password").
					Description("At least 6 characters").
					EchoMode(huh.EchoModePassword).
					Value(&registration.Password).
					Validate(func(s string) error {
						if len(s) < 6 {
							return models.ErrPasswordTooShort
						}
						return nil
					}),
				huh.NewInput().
					Title("Confirm password").
					EchoMode(huh.EchoModePassword).
					Value(&confirmPassword),
			),
		)

		if err := form.Run(); err != nil {
			return fmt.Errorf("registration prompt cancelled: %w", err)
		}
	}

	registration.Username = strings.TrimSpace(registration.Username)
	registration.Email = strings.TrimSpace(registration.Email)

	if err := registration.ValidateForm(confirmPassword); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return err
	}

	ctx, cleanup := common.WithInterrupt(context.Background())
	defer cleanup()

	user, err := sessionManager.Register(ctx, registration)
	if err != nil {
		return failed("Registration failed", err)
	}

	fmt.Println()
	fmt.Println(successStyle.Render("Account created!"))
	fmt.Printf("Signed in as %s\n", user.Username)
	fmt.Println()

	return nil
}

func init() {
	registerCmd.Flags().String("username", "", "Username")
	registerCmd.Flags().String("email", "", "Email address")
	registerCmd.Flags().String("first-name", "", "First name")
	registerCmd.Flags().String("last-name", "", "Last name")
	registerCmd.Flags().String("phone", "", "Phone number")
	registerCmd.Flags().String("password", "", "Password (prompted when omitted)")

	rootCmd.AddCommand(registerCmd)
}
