package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/stayhub/stayctl/internal/models"
)

// Shared styles for the CLI package
// All terminal colors and styling definitions are centralized here
var (
	// Primary styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	// Status styles
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280"))

	// Table styles
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#10B981")).
				Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6b7280"))

	// Badge styles
	apiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	statusBadgeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Padding(0, 1)
)

var (
	colorGreen  = lipgloss.Color("#10b981")
	colorRed    = lipgloss.Color("#ef4444")
	colorAmber  = lipgloss.Color("#f59e0b")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorGray   = lipgloss.Color("#6b7280")
	colorPurple = lipgloss.Color("#7D56F4")
)

func renderBadge(text string, color lipgloss.Color) string {
	return statusBadgeStyle.Background(color).Render(text)
}

func renderBookingStatus(status models.BookingStatus) string {
	switch status {
	case models.BookingConfirmed:
		return renderBadge("CONFIRMED", colorGreen)
	case models.BookingCancelled:
		return renderBadge("CANCELLED", colorRed)
	case models.BookingCompleted:
		return renderBadge("COMPLETED", colorBlue)
	default:
		return renderBadge(string(status), colorGray)
	}
}

func renderSessionStatus(status models.SessionStatus) string {
	switch status {
	case models.SessionAuthenticated:
		return renderBadge("SIGNED IN", colorGreen)
	case models.SessionAnonymous:
		return renderBadge("SIGNED OUT", colorGray)
	default:
		return renderBadge(string(status), colorAmber)
	}
}

func renderHealth(health *models.Health) string {
	if health.IsHealthy() {
		return renderBadge("HEALTHY", colorGreen)
	}
	return renderBadge(health.Status, colorRed)
}
