package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stayhub/stayctl/internal/common"
)

type SessionBackend string

const (
	SessionBackendFile   SessionBackend = "file"
	SessionBackendSQLite SessionBackend = "sqlite"
)

// Config represents the stayctl configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Logging LoggingConfig `mapstructure:"logging"`

	// settings is the merged viper view, kept for debug output.
	settings map[string]any
}

type APIConfig struct {
	Endpoint string        `mapstructure:"endpoint" validate:"required"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type SessionConfig struct {
	Backend SessionBackend `mapstructure:"backend" validate:"oneof=file sqlite"`
	// Path is the directory holding session files or the sqlite database.
	Path string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" default:"info"`
	Format string `mapstructure:"format" default:"text" validate:"omitempty,oneof=text json"`
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !common.IsValidEndpoint(c.API.Endpoint) {
		return fmt.Errorf("invalid api endpoint %q: must be an http or https url", c.API.Endpoint)
	}
	return nil
}

func (c *Config) GetEndpoint() string {
	return strings.TrimRight(c.API.Endpoint, "/")
}

// SetEndpoint overrides the configured endpoint, e.g. from a flag.
func (c *Config) SetEndpoint(endpoint string) error {
	if !common.IsValidEndpoint(endpoint) {
		return fmt.Errorf("invalid api endpoint %q: must be an http or https url", endpoint)
	}
	c.API.Endpoint = endpoint
	return nil
}

func (c *Config) GetEndpointHostname() string {
	parsed, err := url.Parse(c.API.Endpoint)
	if err != nil || len(parsed.Host) == 0 {
		return c.API.Endpoint
	}
	return parsed.Host
}

func (c *Config) GetTimeout() time.Duration {
	return c.API.Timeout
}

func (c *Config) GetSessionBackend() SessionBackend {
	if len(c.Session.Backend) == 0 {
		return SessionBackendFile
	}
	return c.Session.Backend
}

// GetSessionPath is the session directory with a leading ~ expanded.
func (c *Config) GetSessionPath() string {
	return expandHome(c.Session.Path)
}

// GetSessionDatabase is the sqlite database used by the sqlite backend.
func (c *Config) GetSessionDatabase() string {
	return filepath.Join(c.GetSessionPath(), "sessions.db")
}
