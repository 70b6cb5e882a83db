package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/stayhub/stayctl/internal/gateway"
)

const (
	DefaultEndpoint = "http://localhost:5000/api"
	EnvPrefix       = "STAYHUB"
	configDirName   = "stayhub"
)

func DefaultConfig() *Config {

	v := viper.New()

	// Set default values
	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		log.Fatalf("error unmarshaling default config: %v", err)
	}

	return &config
}

// Load loads the configuration from various sources
func Load(configFile string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	v := viper.New()

	setupViperConfig(v, configFile)
	bindEnvironmentVariables(v)

	config, err := readAndUnmarshalConfig(v)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.settings = v.AllSettings()

	if err := config.ApplyLogging(false); err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile loads the .env file if it exists
func loadEnvFile() error {
	if err := gotenv.Load(); err != nil {
		// .env file not found, that's okay - continue with other sources
		if !os.IsNotExist(err) {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}
	return nil
}

// setupViperConfig configures viper with file paths and defaults
func setupViperConfig(v *viper.Viper, configFile string) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if dir := configDir(); len(dir) > 0 {
		v.AddConfigPath(dir)
	}

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// bindEnvironmentVariables binds all environment variables to viper
func bindEnvironmentVariables(v *viper.Viper) {

	v.BindEnv("api.endpoint", "STAYHUB_API_ENDPOINT")
	v.BindEnv("api.endpoint", "STAYHUB_API_URL")
	v.BindEnv("api.timeout", "STAYHUB_API_TIMEOUT")

	v.BindEnv("session.backend", "STAYHUB_SESSION_BACKEND")
	v.BindEnv("session.path", "STAYHUB_SESSION_PATH")

	v.BindEnv("logging.level", "STAYHUB_LOGGING_LEVEL")
	v.BindEnv("logging.format", "STAYHUB_LOGGING_FORMAT")
}

// readAndUnmarshalConfig reads the configuration file and unmarshals it
func readAndUnmarshalConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults and environment variables
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {

	// API defaults
	v.SetDefault("api.endpoint", DefaultEndpoint)
	v.SetDefault("api.timeout", gateway.DefaultTimeout)

	// Session defaults
	v.SetDefault("session.backend", string(SessionBackendFile))
	v.SetDefault("session.path", filepath.Join("~", ".config", configDirName))

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// configDir is ~/.config/stayhub, or empty when there is no home directory.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil || len(home) == 0 {
		return ""
	}
	return filepath.Join(home, ".config", configDirName)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		logrus.WithError(err).Warnln("Failed to resolve home directory")
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
