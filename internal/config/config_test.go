package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func setupHome(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadDefaults(t *testing.T) {
	setupHome(t)
	Load()

	if got := Get(KeyOutputDir); got != "airis-extracted" {
		t.Errorf("output_dir = %q, want %q", got, "airis-extracted")
	}
	if got := Get(KeyLanguage); got != "en" {
		t.Errorf("language = %q, want %q", got, "en")
	}
	if got := Get(KeyLogLevel); got != "warn" {
		t.Errorf("log_level = %q, want %q", got, "warn")
	}
	if GetBool(KeyNoColor) {
		t.Error("no_color should default to false")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	setupHome(t)
	t.Setenv("AIRIS_OUTPUT_DIR", "elsewhere")
	Load()

	if got := Get(KeyOutputDir); got != "elsewhere" {
		t.Errorf("output_dir = %q, want %q", got, "elsewhere")
	}
}

func TestSetPersists(t *testing.T) {
	home := setupHome(t)
	Load()

	if err := Set(KeyLanguage, "bg"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	path := filepath.Join(home, ".airis", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "language: bg") {
		t.Errorf("config file missing language entry:\n%s", data)
	}

	viper.Reset()
	Load()
	if got := Get(KeyLanguage); got != "bg" {
		t.Errorf("language after reload = %q, want %q", got, "bg")
	}
}

func TestSetUnknownKey(t *testing.T) {
	setupHome(t)
	Load()

	if err := Set("colour", "red"); err == nil {
		t.Fatal("expected error for unknown key, got nil")
	}
}

func TestConfigSetRejectsInvalidValue(t *testing.T) {
	home := setupHome(t)
	Load()

	tests := []struct {
		key   string
		value string
	}{
		{KeyLogLevel, "chatty"},
		{KeyLogFormat, "xml"},
		{KeyLanguage, "ja"},
		{KeyLanguage, "not a tag!"},
		{KeyNoColor, "maybe"},
		{KeyOutputDir, "  "},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			if err := Set(tt.key, tt.value); err == nil {
				t.Fatalf("Set(%q, %q) succeeded, want error", tt.key, tt.value)
			}
		})
	}

	if _, err := os.Stat(filepath.Join(home, ".airis", "config.yaml")); !os.IsNotExist(err) {
		t.Errorf("rejected values must not create the config file, stat err = %v", err)
	}
	if got := Get(KeyLogLevel); got != "warn" {
		t.Errorf("log_level = %q after rejected set, want %q", got, "warn")
	}
}

func TestSetAcceptsValidValues(t *testing.T) {
	setupHome(t)
	Load()

	for key, value := range map[string]string{
		KeyLogLevel:  "debug",
		KeyLogFormat: "json",
		KeyLanguage:  "bg-BG",
		KeyNoColor:   "true",
		KeyOutputDir: "out",
	} {
		if err := Set(key, value); err != nil {
			t.Errorf("Set(%q, %q): %v", key, value, err)
		}
	}

	viper.Reset()
	Load()
	if !GetBool(KeyNoColor) {
		t.Error("no_color should read back as true")
	}
	if got := Get(KeyLogLevel); got != "debug" {
		t.Errorf("log_level = %q, want %q", got, "debug")
	}
}

func TestSetWritesOnlyKey(t *testing.T) {
	home := setupHome(t)
	Load()
	viper.Set(KeyLanguage, "bg")

	if err := Set(KeyOutputDir, "first"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := Set(KeyLogLevel, "info"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".airis", "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	content := string(data)
	for _, want := range []string{"output_dir: first", "log_level: info"} {
		if !strings.Contains(content, want) {
			t.Errorf("config file missing %q:\n%s", want, content)
		}
	}
	for _, unwanted := range []string{"language", "no_color", "log_format"} {
		if strings.Contains(content, unwanted) {
			t.Errorf("config file should not contain %q:\n%s", unwanted, content)
		}
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level   string
		format  string
		wantErr bool
	}{
		{"debug", "text", false},
		{"info", "json", false},
		{"", "", false},
		{"WARN", "TEXT", false},
		{"loud", "text", true},
		{"info", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			logger, err := NewLogger(os.Stderr, tt.level, tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewLogger: %v", err)
			}
			if logger == nil {
				t.Fatal("logger is nil")
			}
		})
	}
}

func TestNewLoggerLevelFilters(t *testing.T) {
	var sb strings.Builder
	logger, err := NewLogger(&sb, "warn", "text")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := sb.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn record missing: %s", out)
	}
}
