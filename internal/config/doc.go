// Package config manages user-level settings stored at ~/.airis/config.yaml.
// Settings can also come from AIRIS_* environment variables or command-line
// flags bound through Viper. The package also builds the slog logger used for
// diagnostics.
package config
