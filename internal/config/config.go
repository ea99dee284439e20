package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/airis-labs/airis-extract/internal/branding"
	"github.com/airis-labs/airis-extract/internal/messages"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyOutputDir = "output_dir"
	KeyLanguage  = "language"
	KeyNoColor   = "no_color"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Keys returns every recognised setting key.
func Keys() []string {
	return []string{KeyOutputDir, KeyLanguage, KeyNoColor, KeyLogLevel, KeyLogFormat}
}

// Dir returns the path to the config directory (~/.airis/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.airis/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetDefault(KeyOutputDir, branding.OutputDir())
	viper.SetDefault(KeyLanguage, "en")
	viper.SetDefault(KeyNoColor, false)
	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeyLogFormat, "text")

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value by key.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// Set checks value for key and saves it to the config file. Only key is
// written; other entries already in the file are kept as they are.
func Set(key, value string) error {
	if !slices.Contains(Keys(), key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}

	parsed, err := parseValue(key, value)
	if err != nil {
		return err
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	// A separate instance keeps defaults and command-line flags out of the file.
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	file.Set(key, parsed)

	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, parsed)
	return nil
}

// parseValue rejects values the commands could not start with and returns
// the value in the type stored in the file.
func parseValue(key, value string) (any, error) {
	switch key {
	case KeyOutputDir:
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%s must not be empty", key)
		}
	case KeyLanguage:
		if _, err := messages.NewPrinter(value); err != nil {
			return nil, err
		}
	case KeyNoColor:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s must be true or false, got %q", key, value)
		}
		return b, nil
	case KeyLogLevel:
		if _, err := parseLevel(value); err != nil {
			return nil, err
		}
	case KeyLogFormat:
		if err := checkFormat(value); err != nil {
			return nil, err
		}
	}
	return value, nil
}
