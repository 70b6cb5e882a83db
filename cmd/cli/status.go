package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/stayhub/stayctl/internal/api"
	"github.com/stayhub/stayctl/internal/common"
	"github.com/stayhub/stayctl/internal/models"
)

type healthInfo struct {
	health  *models.Health
	latency time.Duration
}

type errorMsg struct {
	err error
}

type tuiModel struct {
	client     *api.HealthClient
	endpoint   string
	interval   time.Duration
	health     *models.Health
	latency    time.Duration
	spinner    spinner.Model
	loading    bool
	err        error
	lastUpdate time.Time
	quitting   bool
}

func newTuiModel(client *api.HealthClient, endpoint string, interval time.Duration) tuiModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorBlue)

	return tuiModel{
		client:   client,
		endpoint: endpoint,
		interval: interval,
		spinner:  s,
		loading:  true,
	}
}

func (m tuiModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchHealth)
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case healthInfo:
		m.loading = false
		m.err = nil
		m.health = msg.health
		m.latency = msg.latency
		m.lastUpdate = time.Now()
		return m, m.scheduleNext()

	case errorMsg:
		// Keep polling; the backend may come back.
		m.loading = false
		m.err = msg.err
		m.health = nil
		m.lastUpdate = time.Now()
		return m, m.scheduleNext()

	case tea.WindowSizeMsg:
		return m, nil
	}

	return m, nil
}

func (m tuiModel) scheduleNext() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return m.fetchHealth()
	})
}

func (m tuiModel) View() string {
	if m.quitting {
		return ""
	}

	if m.loading {
		return fmt.Sprintf("\n %s Checking %s...\n\n", m.spinner.View(), m.endpoint)
	}

	var content strings.Builder

	content.WriteString(apiTitleStyle.Render("StayHub API: "))
	switch {
	case m.err != nil:
		content.WriteString(renderBadge("UNREACHABLE", colorRed))
	case m.health != nil:
		content.WriteString(renderHealth(m.health))
	}
	content.WriteString("\n\n")

	content.WriteString(fmt.Sprintf("Endpoint:     %s\n", m.endpoint))

	if m.err != nil {
		content.WriteString(errorStyle.Render(fmt.Sprintf("Error:        %s", describeError(m.err))))
		content.WriteString("\n")
	} else if m.health != nil {
		content.WriteString(fmt.Sprintf("Server time:  %s\n", valueOrDash(m.health.Timestamp)))
		content.WriteString(fmt.Sprintf("Latency:      %s\n", m.latency.Round(time.Millisecond)))
	}

	content.WriteString("\n")
	content.WriteString(fmt.Sprintf("%s Last updated: %s\n", m.spinner.View(), m.lastUpdate.Format("15:04:05")))
	content.WriteString("Press q to quit")
	content.WriteString("\n")

	return content.String()
}

func (m tuiModel) fetchHealth() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), m.interval)
	defer cancel()

	started := time.Now()
	health, err := m.client.Check(ctx)
	if err != nil {
		return errorMsg{err: err}
	}

	return healthInfo{health: health, latency: time.Since(started)}
}

// runHealthTUI polls the health endpoint until the user quits.
func runHealthTUI(client *api.HealthClient, endpoint string, interval time.Duration) error {
	model := newTuiModel(client, endpoint, interval)
	program := tea.NewProgram(model)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

func checkHealth(cmd *cobra.Command) (*models.Health, error) {
	ctx, cleanup := common.WithInterrupt(context.Background())
	defer cleanup()

	return clients.Health.Check(ctx)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Test the connection to the StayHub API",
	RunE: func(cmd *cobra.Command, args []string) error {

		watch, _ := cmd.Flags().GetBool("watch")
		if watch {
			interval, _ := cmd.Flags().GetDuration("interval")
			if interval <= 0 {
				interval = 5 * time.Second
			}
			return runHealthTUI(clients.Health, cfg.GetEndpoint(), interval)
		}

		health, err := checkHealth(cmd)
		if err != nil {
			return failed("Connection failed", err)
		}

		if wantsJSON(cmd) {
			return printJSON(health)
		}

		fmt.Printf("%s %s\n", renderHealth(health), cfg.GetEndpoint())
		if len(health.Timestamp) > 0 {
			fmt.Println(mutedStyle.Render(fmt.Sprintf("Server time: %s", health.Timestamp)))
		}

		if !health.IsHealthy() {
			return fmt.Errorf("backend reported status %q", health.Status)
		}

		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the session and backend status",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {

	snapshot := sessionManager.Snapshot()
	health, healthErr := checkHealth(cmd)

	if wantsJSON(cmd) {
		result := struct {
			Endpoint string         `json:"endpoint"`
			Session  models.Session `json:"session"`
			Health   *models.Health `json:"health,omitempty"`
			Error    string         `json:"error,omitempty"`
		}{
			Endpoint: cfg.GetEndpoint(),
			Session:  snapshot,
			Health:   health,
		}
		if healthErr != nil {
			result.Error = describeError(healthErr)
		}
		return printJSON(result)
	}

	fmt.Println(titleStyle.Render("StayHub"))

	fmt.Printf("Endpoint:  %s\n", cfg.GetEndpoint())
	if healthErr != nil {
		fmt.Printf("Backend:   %s %s\n", renderBadge("UNREACHABLE", colorRed), describeError(healthErr))
	} else {
		fmt.Printf("Backend:   %s\n", renderHealth(health))
	}

	fmt.Printf("Session:   %s\n", renderSessionStatus(snapshot.Status))
	if !snapshot.Status.IsSteady() {
		fmt.Println(mutedStyle.Render("The stored session could not be checked, run 'stayctl status' again."))
	}
	if snapshot.IsAuthenticated() {
		fmt.Printf("User:      %s (%s)\n", snapshot.User.GetName(), snapshot.User.Username)
		if snapshot.User.IsAdmin {
			fmt.Printf("Role:      %s\n", renderBadge("ADMIN", colorPurple))
		}
	} else {
		fmt.Println(mutedStyle.Render("Run 'stayctl login' to sign in."))
	}

	return nil
}

func init() {
	healthCmd.Flags().BoolP("watch", "w", false, "Keep polling and show a live view")
	healthCmd.Flags().Duration("interval", 5*time.Second, "Polling interval for --watch")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(statusCmd)
}
