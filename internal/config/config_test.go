package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultEndpoint, cfg.API.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.GetTimeout())
	assert.Equal(t, SessionBackendFile, cfg.GetSessionBackend())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
api:
  endpoint: https://stayhub.example/api/
  timeout: 5s
session:
  backend: sqlite
  path: /var/lib/stayhub
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://stayhub.example/api", cfg.GetEndpoint())
	assert.Equal(t, "stayhub.example", cfg.GetEndpointHostname())
	assert.Equal(t, 5*time.Second, cfg.GetTimeout())
	assert.Equal(t, SessionBackendSQLite, cfg.GetSessionBackend())
	assert.Equal(t, "/var/lib/stayhub", cfg.GetSessionPath())
	assert.Equal(t, filepath.Join("/var/lib/stayhub", "sessions.db"), cfg.GetSessionDatabase())
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
api:
  endpoint: https://file.example/api
`)

	t.Setenv("STAYHUB_API_ENDPOINT", "http://env.example:8080/api")
	t.Setenv("STAYHUB_API_TIMEOUT", "2s")
	t.Setenv("STAYHUB_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://env.example:8080/api", cfg.GetEndpoint())
	assert.Equal(t, "env.example:8080", cfg.GetEndpointHostname())
	assert.Equal(t, 2*time.Second, cfg.GetTimeout())
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"endpoint without scheme", "api:\n  endpoint: localhost:5000/api\n"},
		{"unknown session backend", "session:\n  backend: redis\n"},
		{"unknown log level", "logging:\n  level: chatty\n"},
		{"unknown log format", "logging:\n  format: xml\n"},
		{"malformed yaml", "api: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestSetEndpoint(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.SetEndpoint("https://other.example/api"))
	assert.Equal(t, "https://other.example/api", cfg.GetEndpoint())

	assert.Error(t, cfg.SetEndpoint("ftp://other.example"))
	assert.Equal(t, "https://other.example/api", cfg.GetEndpoint())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".config", "stayhub"), expandHome("~/.config/stayhub"))
	assert.Equal(t, home, expandHome("~"))
	assert.Equal(t, "/tmp/x", expandHome("/tmp/x"))
	assert.Equal(t, "~user/x", expandHome("~user/x"))
}

func TestApplyLogging(t *testing.T) {
	level, formatter := logrus.GetLevel(), logrus.StandardLogger().Formatter
	t.Cleanup(func() {
		logrus.SetLevel(level)
		logrus.SetFormatter(formatter)
	})

	cfg := DefaultConfig()
	cfg.Logging.Level = "warn"
	cfg.Logging.Format = "json"

	require.NoError(t, cfg.ApplyLogging(false))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	require.NoError(t, cfg.ApplyLogging(true))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	// Verbose never lowers a more detailed level.
	cfg.Logging.Level = "trace"
	require.NoError(t, cfg.ApplyLogging(true))
	assert.Equal(t, logrus.TraceLevel, logrus.GetLevel())

	cfg.Logging.Level = "chatty"
	assert.Error(t, cfg.ApplyLogging(true))
}
