package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stayhub/stayctl/internal/api"
	"github.com/stayhub/stayctl/internal/common"
	"github.com/stayhub/stayctl/internal/config"
	"github.com/stayhub/stayctl/internal/gateway"
	"github.com/stayhub/stayctl/internal/sessions"
)

// Global configuration instance
var cfg *config.Config
var sessionManager *sessions.Manager
var clients *api.Clients

// sessionStore is closed once the command finishes, when it holds a resource.
var sessionStore sessions.Store

// loadConfig loads the configuration based on the --config flag or default locations
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString("config")

	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	return config.Load(configFile)
}

// newSessionStore opens the configured session backend for the endpoint.
func newSessionStore(c *config.Config) (sessions.Store, error) {
	switch c.GetSessionBackend() {
	case config.SessionBackendSQLite:
		if err := os.MkdirAll(c.GetSessionPath(), 0700); err != nil {
			return nil, fmt.Errorf("failed to create session directory: %w", err)
		}
		return sessions.NewSQLStore(c.GetSessionDatabase())
	case config.SessionBackendFile:
		return sessions.NewFileStore(filepath.Join(
			c.GetSessionPath(),
			sessions.SessionFileName(c.GetEndpoint()),
		)), nil
	default:
		return nil, fmt.Errorf("unknown session backend: %s", c.GetSessionBackend())
	}
}

func preRunConfigE(cmd *cobra.Command, _ []string) error {
	// Load configuration before any command runs
	var err error
	cfg, err = loadConfig(cmd)

	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		if err := cfg.ApplyLogging(true); err != nil {
			return err
		}
	}

	// Get the endpoint override from the flag
	endpoint, err := cmd.Flags().GetString("api-endpoint")
	if err == nil && len(endpoint) > 0 {
		if err := cfg.SetEndpoint(endpoint); err != nil {
			return err
		}
	}

	gw := gateway.New(gateway.Config{
		Endpoint:  cfg.GetEndpoint(),
		Timeout:   cfg.GetTimeout(),
		UserAgent: common.GetUserAgent(),
		ClientID:  common.InstallationID().String(),
	})

	sessionStore, err = newSessionStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}

	sessionManager = sessions.NewManager(sessionStore, gw)
	clients = api.NewClients(gw, sessionManager)

	ctx, cleanup := common.WithInterrupt(context.Background())
	defer cleanup()

	// Restore and verify the stored session before any command runs
	if err := sessionManager.Init(ctx); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"endpoint": cfg.GetEndpoint(),
		"status":   sessionManager.Status(),
	}).Debugln("Session initialized")

	return nil
}

func postRunConfig(cmd *cobra.Command, _ []string) {
	if closer, ok := sessionStore.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			logrus.WithError(err).Debugln("Failed to close session store")
		}
	}
}

var rootCmd = &cobra.Command{
	Use:   "stayctl",
	Short: "StayHub - browse, filter and book hotels from the command line",
	Long: `stayctl is the command line client for the StayHub hotel booking service.

Sign in with 'stayctl login', browse with 'stayctl hotels list' and manage your
reservations with 'stayctl bookings'.

If no config file is specified, stayctl will look for config files in the following locations:
  - ./config.yaml
  - ./config/config.yaml
  - ~/.config/stayhub/config.yaml`,
	PersistentPreRunE: preRunConfigE,
	PersistentPostRun: postRunConfig,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd, args)
	},
}

func init() {

	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is $HOME/.config/stayhub/config.yaml)")
	rootCmd.PersistentFlags().String("api-endpoint", "", "Override the API endpoint (e.g., http://localhost:5000/api)")
	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")

}

func GetCommandOptions() *cobra.Command {
	return rootCmd
}
