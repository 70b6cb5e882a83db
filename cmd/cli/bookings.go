package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/stayhub/stayctl/internal/common"
	"github.com/stayhub/stayctl/internal/models"
)

var bookingsCmd = &cobra.Command{
	Use:     "bookings",
	Aliases: []string{"booking"},
	Short:   "Create and manage your bookings",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := preRunConfigE(cmd, args); err != nil {
			return err
		}
		if !sessionManager.IsAuthenticated() {
			// The request is still sent; the server decides.
			fmt.Println(warningStyle.Render("Not signed in, the server will likely reject this. Run 'stayctl login' first."))
		}
		return nil
	},
}

var bookingsCreateCmd = &cobra.Command{
	Use:   "create <hotel-id>",
	Short: "Book a stay",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		request := models.BookingRequest{HotelID: models.ID(args[0])}
		request.CheckInDate, _ = cmd.Flags().GetString("check-in")
		request.CheckOutDate, _ = cmd.Flags().GetString("check-out")
		request.NumGuests, _ = cmd.Flags().GetInt("guests")
		request.RoomType, _ = cmd.Flags().GetString("room-type")
		request.SpecialRequests, _ = cmd.Flags().GetString("requests")

		if len(request.CheckInDate) == 0 || len(request.CheckOutDate) == 0 {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Check in").
						Placeholder(common.DateLayout).
						Value(&request.CheckInDate).
						Validate(dateField),
					huh.NewInput().
						Title("Check out").
						Placeholder(common.DateLayout).
						Value(&request.CheckOutDate).
						Validate(dateField),
					huh.NewSelect[string]().
						Title("Room type").
						Options(huh.NewOptions("standard", "deluxe", "suite")...).
						Value(&request.RoomType),
				),
			)

			if err := form.Run(); err != nil {
				return fmt.Errorf("booking prompt cancelled: %w", err)
			}
		}

		if err := request.Validate(); err != nil {
			return err
		}

		ctx, cleanup := common.WithInterrupt(context.Background())
		defer cleanup()

		booking, err := clients.Bookings.Create(ctx, request)
		if err != nil {
			return failed("Booking failed", err)
		}

		if wantsJSON(cmd) {
			return printJSON(booking)
		}

		fmt.Println(successStyle.Render("Booking confirmed!"))
		fmt.Println()
		printBooking(booking)
		return nil
	},
}

func dateField(s string) error {
	if !common.IsValidDate(s) {
		return fmt.Errorf("use the %s format", common.DateLayout)
	}
	return nil
}

var bookingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		filters := models.BookingFilters{}
		filters.Page, _ = cmd.Flags().GetInt("page")
		filters.PerPage, _ = cmd.Flags().GetInt("per-page")
		filters.Status, _ = cmd.Flags().GetString("status")

		ctx, cleanup := common.WithInterrupt(context.Background())
		defer cleanup()

		list, err := clients.Bookings.List(ctx, filters)
		if err != nil {
			return failed("Failed to list bookings", err)
		}

		if wantsJSON(cmd) {
			return printJSON(list)
		}

		printBookingTable(list.Bookings)
		printPagination(list.Pagination)
		return nil
	},
}

var bookingsGetCmd = &cobra.Command{
	Use:   "get <booking-id>",
	Short: "Show a booking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cleanup := common.WithInterrupt(context.Background())
		defer cleanup()

		booking, err := clients.Bookings.Get(ctx, models.ID(args[0]))
		if err != nil {
			return failed("Failed to get booking", err)
		}

		if wantsJSON(cmd) {
			return printJSON(booking)
		}

		printBooking(booking)
		return nil
	},
}

var bookingsUpdateCmd = &cobra.Command{
	Use:   "update <booking-id>",
	Short: "Change the dates, guests or room of a booking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		update := models.BookingUpdate{}
		update.CheckInDate, _ = cmd.Flags().GetString("check-in")
		update.CheckOutDate, _ = cmd.Flags().GetString("check-out")
		update.NumGuests, _ = cmd.Flags().GetInt("guests")
		update.RoomType, _ = cmd.Flags().GetString("room-type")
		update.SpecialRequests, _ = cmd.Flags().GetString("requests")

		if update.IsEmpty() {
			return fmt.Errorf("nothing to update, pass at least one flag")
		}

		if err := update.Validate(); err != nil {
			return err
		}

		ctx, cleanup := common.WithInterrupt(context.Background())
		defer cleanup()

		booking, err := clients.Bookings.Update(ctx, models.ID(args[0]), update)
		if err != nil {
			return failed("Failed to update booking", err)
		}

		if wantsJSON(cmd) {
			return printJSON(booking)
		}

		fmt.Println(successStyle.Render("Booking updated"))
		fmt.Println()
		printBooking(booking)
		return nil
	},
}

var bookingsCancelCmd = &cobra.Command{
	Use:   "cancel <booking-id>",
	Short: "Cancel a booking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookingID := models.ID(args[0])

		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Cancel booking %s?", bookingID)).
						Value(&confirmed),
				),
			)

			if err := form.Run(); err != nil {
				return fmt.Errorf("cancel prompt cancelled: %w", err)
			}
		}

		if !confirmed {
			fmt.Println(infoStyle.Render("Booking kept"))
			return nil
		}

		ctx, cleanup := common.WithInterrupt(context.Background())
		defer cleanup()

		resp, err := clients.Bookings.Cancel(ctx, bookingID)
		if err != nil {
			return failed("Failed to cancel booking", err)
		}

		if wantsJSON(cmd) {
			return printJSON(resp)
		}

		fmt.Println(successStyle.Render(valueOrDash(resp.Message)))
		return nil
	},
}

func addStayFlags(cmd *cobra.Command, guestsDefault int, roomTypeDefault string) {
	cmd.Flags().String("check-in", "", "Check in date (YYYY-MM-DD)")
	cmd.Flags().String("check-out", "", "Check out date (YYYY-MM-DD)")
	cmd.Flags().Int("guests", guestsDefault, "Number of guests")
	cmd.Flags().String("room-type", roomTypeDefault, "Room type (standard, deluxe, suite)")
	cmd.Flags().String("requests", "", "Special requests")
}

func init() {
	addStayFlags(bookingsCreateCmd, 1, "standard")
	addStayFlags(bookingsUpdateCmd, 0, "")

	bookingsListCmd.Flags().Int("page", 0, "Page number")
	bookingsListCmd.Flags().Int("per-page", 0, "Bookings per page")
	bookingsListCmd.Flags().String("status", "", "Only bookings with this status (confirmed, cancelled, completed)")

	bookingsCancelCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	bookingsCmd.AddCommand(bookingsCreateCmd)
	bookingsCmd.AddCommand(bookingsListCmd)
	bookingsCmd.AddCommand(bookingsGetCmd)
	bookingsCmd.AddCommand(bookingsUpdateCmd)
	bookingsCmd.AddCommand(bookingsCancelCmd)

	rootCmd.AddCommand(bookingsCmd)
}
