// Package config loads lift-mcp settings from an optional YAML file and the
// environment.
//
// Example file:
//
//	log_level: debug
//	output_dir: ~/Presets/lift
//	default_intensity: 80
//	default_profile: Adobe Landscape
//	preview_max_dimension: 1024
//
// Environment variables LIFT_MCP_LOG_LEVEL and LIFT_MCP_OUTPUT_DIR take
// precedence over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/ironsheep/lift-mcp/internal/preset"
)

// Environment variables read by the server.
const (
	EnvConfigPath = "LIFT_MCP_CONFIG"
	EnvLogLevel   = "LIFT_MCP_LOG_LEVEL"
	EnvOutputDir  = "LIFT_MCP_OUTPUT_DIR"
)

// Log levels.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds server settings.
type Config struct {
	// LogLevel is "debug" or "info".
	LogLevel string `yaml:"log_level"`

	// OutputDir is where preset_export writes .xmp files unless a call names
	// its own directory.
	OutputDir string `yaml:"output_dir"`

	// DefaultIntensity (0-100) applies when a tool call omits intensity.
	DefaultIntensity float64 `yaml:"default_intensity"`

	// DefaultProfile names the camera profile when a call omits one.
	DefaultProfile string `yaml:"default_profile"`

	// PreviewMaxDimension bounds the longest side of rendered previews.
	PreviewMaxDimension int `yaml:"preview_max_dimension"`
}

// Default returns the settings used when no file or environment overrides are
// present.
func Default() Config {
	return Config{
		LogLevel:            LevelInfo,
		OutputDir:           ".",
		DefaultIntensity:    100,
		DefaultProfile:      preset.DefaultProfile,
		PreviewMaxDimension: 1024,
	}
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	c := Default()

	if path != "" {
		contents, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config %q: %w", path, err)
		}
		if err := yaml.UnmarshalStrict(contents, &c); err != nil {
			return c, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	c.applyEnv(os.Getenv)
	c.OutputDir = expandHome(c.OutputDir)

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
}

// Validate checks every field and normalizes the log level to lower case.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case LevelDebug, LevelInfo:
	default:
		return fmt.Errorf("%w: log_level must be %q or %q, got %q", ErrInvalid, LevelDebug, LevelInfo, c.LogLevel)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is empty", ErrInvalid)
	}
	if c.DefaultIntensity < 0 || c.DefaultIntensity > 100 {
		return fmt.Errorf("%w: default_intensity must be 0-100, got %v", ErrInvalid, c.DefaultIntensity)
	}
	if _, err := preset.ParseProfile(c.DefaultProfile); err != nil {
		return fmt.Errorf("%w: default_profile: %v", ErrInvalid, err)
	}
	if c.PreviewMaxDimension <= 0 {
		return fmt.Errorf("%w: preview_max_dimension must be positive, got %d", ErrInvalid, c.PreviewMaxDimension)
	}
	return nil
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == LevelDebug
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
