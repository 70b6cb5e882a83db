package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/stayhub/stayctl/internal/common"
	"github.com/stayhub/stayctl/internal/models"
	"github.com/stayhub/stayctl/internal/sessions"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
	RunE:  runProfileShow,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the signed in user",
	RunE:  runProfileShow,
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your name, phone or email",
	Long: `Updates the profile of the signed in user. Only the fields given are sent.
Without flags the current values are offered for editing.`,
	RunE: runProfileUpdate,
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	user := sessionManager.User()
	if !sessionManager.IsAuthenticated() || user == nil {
		fmt.Println(warningStyle.Render("Not signed in. Run 'stayctl login' first."))
		return sessions.ErrNotAuthenticated
	}

	if wantsJSON(cmd) {
		return printJSON(user)
	}

	printProfile(user)
	return nil
}

func runProfileUpdate(cmd *cobra.Command, args []string) error {
	current := sessionManager.User()
	if !sessionManager.IsAuthenticated() || current == nil {
		fmt.Println(warningStyle.Render("Not signed in. Run 'stayctl login' first."))
		return sessions.ErrNotAuthenticated
	}

	update := models.ProfileUpdate{}
	update.FirstName, _ = cmd.Flags().GetString("first-name")
	update.LastName, _ = cmd.Flags().GetString("last-name")
	update.Phone, _ = cmd.Flags().GetString("phone")
	update.Email, _ = cmd.Flags().GetString("email")

	if update.IsEmpty() {
		update = models.ProfileUpdate{
			FirstName: current.FirstName,
			LastName:  current.LastName,
			Phone:     current.Phone,
			Email:     current.Email,
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("First name").Value(&update.FirstName),
				huh.NewInput().Title("Last name").Value(&update.LastName),
				huh.NewInput().Title("Phone").Value(&update.Phone),
				huh.NewInput().
					Title("Email").
					Value(&update.Email).
					Validate(func(s string) error {
						if len(s) > 0 && !common.IsValidEmail(strings.TrimSpace(s)) {
							return fmt.Errorf("please enter a valid email address")
						}
						return nil
					}),
			),
		)

		if err := form.Run(); err != nil {
			return fmt.Errorf("profile prompt cancelled: %w", err)
		}

		var blanked []string
		update, blanked = changedFields(*current, update)
		if len(blanked) > 0 {
			fmt.Println(warningStyle.Render(fmt.Sprintf("Fields cannot be cleared, keeping the current %s", strings.Join(blanked, ", "))))
		}
		if update.IsEmpty() {
			fmt.Println(infoStyle.Render("Nothing to update"))
			return nil
		}
	}

	if len(update.Email) > 0 && !common.IsValidEmail(update.Email) {
		return fmt.Errorf("invalid email address: %s", update.Email)
	}

	ctx, cleanup := common.WithInterrupt(context.Background())
	defer cleanup()

	user, err := sessionManager.UpdateProfile(ctx, update)
	if err != nil {
		return failed("Profile update failed", err)
	}

	fmt.Println(successStyle.Render("Profile updated"))
	fmt.Println()
	printProfile(user)

	return nil
}

// changedFields keeps only the values that differ from the profile. The
// API cannot clear a field, so blanked values are left out of the update
// and their names returned.
func changedFields(current models.UserProfile, edited models.ProfileUpdate) (models.ProfileUpdate, []string) {
	changed := models.ProfileUpdate{}
	var blanked []string

	diff := func(label string, was string, now string, into *string) {
		now = strings.TrimSpace(now)
		switch {
		case now == was:
		case len(now) == 0:
			blanked = append(blanked, label)
		default:
			*into = now
		}
	}

	diff("first name", current.FirstName, edited.FirstName, &changed.FirstName)
	diff("last name", current.LastName, edited.LastName, &changed.LastName)
	diff("phone", current.Phone, edited.Phone, &changed.Phone)
	diff("email", current.Email, edited.Email, &changed.Email)

	return changed, blanked
}

func init() {
	profileUpdateCmd.Flags().String("first-name", "", "New first name")
	profileUpdateCmd.Flags().String("last-name", "", "New last name")
	profileUpdateCmd.Flags().String("phone", "", "New phone number")
	profileUpdateCmd.Flags().String("email", "", "New email address")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}
