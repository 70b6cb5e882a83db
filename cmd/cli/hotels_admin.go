package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/stayhub/stayctl/internal/common"
	"github.com/stayhub/stayctl/internal/models"
)

// requireAdmin refuses locally when the signed in user is not an admin.
// The server still makes the final decision.
func requireAdmin() error {
	if !sessionManager.IsAuthenticated() {
		fmt.Println(warningStyle.Render("Not signed in. Run 'stayctl login' first."))
		return fmt.Errorf("authentication required")
	}
	if !sessionManager.IsAdmin() {
		fmt.Println(errorStyle.Render("Admin privileges required"))
		return fmt.Errorf("admin privileges required")
	}
	return nil
}

func readHotelInput(cmd *cobra.Command) (*models.HotelInput, error) {
	path, _ := cmd.Flags().GetString("file")
	if len(path) == 0 {
		return nil, fmt.Errorf("a hotel definition is required, pass --file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	input, err := common.DecodeDocument[models.HotelInput](data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return input, nil
}

var hotelsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a hotel from a YAML or JSON file (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}

		input, err := readHotelInput(cmd)
		if err != nil {
			return err
		}

		if len(input.Name) == 0 || input.PricePerNight == nil {
			return fmt.Errorf("a hotel needs at least a name and a price_per_night")
		}

		ctx, cleanup := common.WithInterrupt(context.Background())
		defer cleanup()

		resp, err := clients.Hotels.Create(ctx, *input)
		if err != nil {
			return failed("Failed to create hotel", err)
		}

		if wantsJSON(cmd) {
			return printJSON(resp)
		}

		fmt.Println(successStyle.Render(valueOrDash(resp.Message)))
		if !resp.ID.IsZero() {
			fmt.Printf("Hotel id: %s\n", resp.ID)
		}
		return nil
	},
}

var hotelsUpdateCmd = &cobra.Command{
	Use:   "update <hotel-id>",
	Short: "Update a hotel from a YAML or JSON file (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}

		input, err := readHotelInput(cmd)
		if err != nil {
			return err
		}

		ctx, cleanup := common.WithInterrupt(context.Background())
		defer cleanup()

		resp, err := clients.Hotels.Update(ctx, models.ID(args[0]), *input)
		if err != nil {
			return failed("Failed to update hotel", err)
		}

		if wantsJSON(cmd) {
			return printJSON(resp)
		}

		fmt.Println(successStyle.Render(valueOrDash(resp.Message)))
		return nil
	},
}

var hotelsDeleteCmd = &cobra.Command{
	Use:   "delete <hotel-id>",
	Short: "Delete a hotel (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}

		hotelID := models.ID(args[0])

		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Delete hotel %s?", hotelID)).
						Description("Existing bookings for this hotel will no longer be bookable").
						Value(&confirmed),
				),
			)

			if err := form.Run(); err != nil {
				return fmt.Errorf("delete prompt cancelled: %w", err)
			}
		}

		if !confirmed {
			fmt.Println(infoStyle.Render("Delete cancelled"))
			return nil
		}

		ctx, cleanup := common.WithInterrupt(context.Background())
		defer cleanup()

		resp, err := clients.Hotels.Delete(ctx, hotelID)
		if err != nil {
			return failed("Failed to delete hotel", err)
		}

		fmt.Println(successStyle.Render(valueOrDash(resp.Message)))
		return nil
	},
}

func init() {
	hotelsCreateCmd.Flags().StringP("file", "f", "", "Hotel definition (YAML or JSON)")
	hotelsUpdateCmd.Flags().StringP("file", "f", "", "Fields to change (YAML or JSON)")
	hotelsDeleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	hotelsCmd.AddCommand(hotelsCreateCmd)
	hotelsCmd.AddCommand(hotelsUpdateCmd)
	hotelsCmd.AddCommand(hotelsDeleteCmd)
}
