package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

func (l LoggingConfig) formatter() logrus.Formatter {
	if strings.EqualFold(l.Format, "json") {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{FullTimestamp: true}
}

// ApplyLogging configures the standard logrus logger. Verbose forces the
// debug level whatever the configured one. At debug level the effective
// settings are logged once per call.
func (c *Config) ApplyLogging(verbose bool) error {
	level, err := logrus.ParseLevel(c.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}
	if verbose && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}

	logrus.SetLevel(level)
	logrus.SetFormatter(c.Logging.formatter())

	if level >= logrus.DebugLevel {
		c.logSettings()
	}

	return nil
}

func (c *Config) logSettings() {
	for _, key := range slices.Sorted(maps.Keys(c.settings)) {
		logrus.WithField("value", c.settings[key]).Debugf("Config %s", key)
	}
}
