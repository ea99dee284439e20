// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork can rename the tool, its default output
// directory and its env prefix without touching Go code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	GoModule     string `yaml:"go_module"`
	OutputDir    string `yaml:"output_dir"`
	DevServerURL string `yaml:"dev_server_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:      "airis-extract",
			DisplayName:  "AIRIS Project Extractor",
			Description:  "Rebuilds an exported AIRIS project as a directory tree",
			HomeDir:      ".airis",
			EnvPrefix:    "AIRIS",
			GoModule:     "github.com/airis-labs/airis-extract",
			OutputDir:    "airis-extracted",
			DevServerURL: "http://localhost:5173",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "airis-extract").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".airis").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "AIRIS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// OutputDir returns the default extraction directory, relative to the
// working directory.
func OutputDir() string { load(); return defaults.OutputDir }

// DevServerURL returns the address the extracted app's dev server listens on.
func DevServerURL() string { load(); return defaults.DevServerURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("LANGUAGE") → "AIRIS_LANGUAGE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
