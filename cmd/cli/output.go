package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stayhub/stayctl/internal/gateway"
	"github.com/stayhub/stayctl/internal/models"
)

func wantsJSON(cmd *cobra.Command) bool {
	asJSON, err := cmd.Flags().GetBool("json")
	return err == nil && asJSON
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

func formatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

func formatRating(rating float64) string {
	if rating <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f ★", rating)
}

func valueOrDash(s string) string {
	if len(strings.TrimSpace(s)) == 0 {
		return "-"
	}
	return s
}

func printHotelTable(hotels []models.Hotel) {
	if len(hotels) == 0 {
		fmt.Println(infoStyle.Render("No hotels found"))
		return
	}

	rows := make([][]string, 0, len(hotels))
	for _, hotel := range hotels {
		rows = append(rows, []string{
			hotel.ID.String(),
			hotel.Name,
			valueOrDash(hotel.Location()),
			formatRating(hotel.Rating),
			formatPrice(hotel.PricePerNight),
			fmt.Sprintf("%d", hotel.AvailableRooms),
		})
	}

	fmt.Println(renderTable(
		[]string{"ID", "Name", "Location", "Rating", "Per night", "Rooms"},
		rows,
	))
}

func printPagination(p models.Pagination) {
	if p.Pages <= 1 {
		return
	}
	fmt.Println(mutedStyle.Render(fmt.Sprintf(
		"Page %d of %d (%d total)", p.Page, p.Pages, p.Total)))
}

func printBookingTable(bookings []models.Booking) {
	if len(bookings) == 0 {
		fmt.Println(infoStyle.Render("No bookings found"))
		return
	}

	rows := make([][]string, 0, len(bookings))
	for _, booking := range bookings {
		rows = append(rows, []string{
			booking.ID.String(),
			booking.HotelName(),
			booking.CheckInDate,
			booking.CheckOutDate,
			fmt.Sprintf("%d", booking.NumGuests),
			formatPrice(booking.TotalPrice),
			renderBookingStatus(booking.Status),
		})
	}

	fmt.Println(renderTable(
		[]string{"ID", "Hotel", "Check in", "Check out", "Guests", "Total", "Status"},
		rows,
	))
}

func printBooking(booking *models.Booking) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("Booking %s", booking.ID)))
	fmt.Printf("  Hotel:      %s\n", booking.HotelName())
	fmt.Printf("  Check in:   %s\n", booking.CheckInDate)
	fmt.Printf("  Check out:  %s\n", booking.CheckOutDate)
	fmt.Printf("  Guests:     %d\n", booking.NumGuests)
	fmt.Printf("  Room:       %s\n", valueOrDash(booking.RoomType))
	fmt.Printf("  Total:      %s\n", formatPrice(booking.TotalPrice))
	fmt.Printf("  Status:     %s\n", renderBookingStatus(booking.Status))
	if len(booking.SpecialRequests) > 0 {
		fmt.Printf("  Requests:   %s\n", booking.SpecialRequests)
	}
}

func printProfile(user *models.UserProfile) {
	fmt.Println(headerStyle.Render(user.GetName()))
	fmt.Printf("  Username:   %s\n", user.Username)
	fmt.Printf("  Email:      %s\n", valueOrDash(user.Email))
	fmt.Printf("  Phone:      %s\n", valueOrDash(user.Phone))
	if user.IsAdmin {
		fmt.Printf("  Role:       %s\n", renderBadge("ADMIN", colorPurple))
	}
	if len(user.CreatedAt) > 0 {
		fmt.Printf("  Member since: %s\n", user.CreatedAt)
	}
}

// describeError renders err for the terminal. Server side failures are
// reported generically; the detail goes to the debug log.
func describeError(err error) string {
	var gwErr *gateway.Error
	if errors.As(err, &gwErr) {
		return gwErr.UserMessage()
	}
	return err.Error()
}

// errorHint suggests what the user can do about err, if anything.
func errorHint(err error) string {
	switch {
	case errors.Is(err, gateway.ErrAuth):
		return "Run 'stayctl login' to sign in again."
	case errors.Is(err, gateway.ErrNetwork):
		return "Check the API is reachable with 'stayctl health'."
	case errors.Is(err, gateway.ErrParse):
		return "The server sent a response stayctl does not understand; check --api-endpoint."
	default:
		return ""
	}
}

// failed prints the error and returns it so cobra sets the exit code.
func failed(action string, err error) error {
	logrus.WithError(err).WithField("kind", gateway.KindOf(err)).Debugln(action)

	fmt.Println(errorStyle.Render(fmt.Sprintf("%s: %s", action, describeError(err))))
	if hint := errorHint(err); len(hint) > 0 {
		fmt.Println(mutedStyle.Render(hint))
	}
	return fmt.Errorf("%s: %w", strings.ToLower(action), err)
}
