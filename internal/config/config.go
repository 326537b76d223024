// Package config provides configuration management for microtools.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vomodo/microtools/pkg/md"
	"github.com/vomodo/microtools/pkg/pomodoro"
)

const (
	defaultOutputFormat = "table"
	defaultRenderStyle  = "auto"
	defaultWordWrap     = 80
)

// EnvVars lists the environment variables that override the config file.
var EnvVars = []string{
	"MICROTOOLS_ENGINE",
	"MICROTOOLS_OUTPUT",
	"MICROTOOLS_RENDER_STYLE",
	"MICROTOOLS_WORD_WRAP",
	"MICROTOOLS_WORK_MINUTES",
	"MICROTOOLS_BREAK_MINUTES",
	"MICROTOOLS_BELL",
}

// Config holds the microtools configuration.
type Config struct {
	Engine       string `yaml:"engine,omitempty"`
	OutputFormat string `yaml:"output_format,omitempty"`
	RenderStyle  string `yaml:"render_style,omitempty"`
	WordWrap     int    `yaml:"word_wrap,omitempty"`
	WorkMinutes  int    `yaml:"work_minutes,omitempty"`
	BreakMinutes int    `yaml:"break_minutes,omitempty"`
	Bell         bool   `yaml:"bell,omitempty"`
}

// Validate checks that all set fields hold valid values.
func (c *Config) Validate() error {
	if _, err := md.ParseEngine(c.Engine); err != nil {
		return err
	}

	switch c.OutputFormat {
	case "", "table", "json", "plain":
	default:
		return fmt.Errorf("invalid output_format %q (valid: table, json, plain)", c.OutputFormat)
	}

	if c.WordWrap < 0 {
		return errors.New("word_wrap must not be negative")
	}
	if c.WorkMinutes < 0 || c.BreakMinutes < 0 {
		return errors.New("work_minutes and break_minutes must not be negative")
	}

	if err := c.Schedule().Validate(); err != nil {
		return fmt.Errorf("invalid timer settings: %w", err)
	}

	return nil
}

// WithDefaults returns a copy of c with unset fields filled in.
func (c Config) WithDefaults() Config {
	if c.Engine == "" {
		c.Engine = string(md.EngineBuiltin)
	}
	if c.OutputFormat == "" {
		c.OutputFormat = defaultOutputFormat
	}
	if c.RenderStyle == "" {
		c.RenderStyle = defaultRenderStyle
	}
	if c.WordWrap == 0 {
		c.WordWrap = defaultWordWrap
	}
	if c.WorkMinutes == 0 {
		c.WorkMinutes = int(pomodoro.DefaultWork / time.Minute)
	}
	if c.BreakMinutes == 0 {
		c.BreakMinutes = int(pomodoro.DefaultBreak / time.Minute)
	}
	return c
}

// Schedule returns the timer schedule, using defaults for unset durations.
func (c *Config) Schedule() pomodoro.Schedule {
	d := c.WithDefaults()
	return pomodoro.Schedule{
		Work:  time.Duration(d.WorkMinutes) * time.Minute,
		Break: time.Duration(d.BreakMinutes) * time.Minute,
	}
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
// Numeric and boolean variables that fail to parse are reported as errors.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("MICROTOOLS_ENGINE"); v != "" {
		c.Engine = v
	}
	if v := os.Getenv("MICROTOOLS_OUTPUT"); v != "" {
		c.OutputFormat = v
	}
	if v := os.Getenv("MICROTOOLS_RENDER_STYLE"); v != "" {
		c.RenderStyle = v
	}

	ints := []struct {
		env string
		dst *int
	}{
		{"MICROTOOLS_WORD_WRAP", &c.WordWrap},
		{"MICROTOOLS_WORK_MINUTES", &c.WorkMinutes},
		{"MICROTOOLS_BREAK_MINUTES", &c.BreakMinutes},
	}
	for _, i := range ints {
		v := os.Getenv(i.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", i.env, err)
		}
		*i.dst = n
	}

	if v := os.Getenv("MICROTOOLS_BELL"); v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid MICROTOOLS_BELL: %w", err)
		}
		c.Bell = b
	}

	return nil
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "microtools", "config.yml")
	}

	// Fall back to ~/.config/microtools/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".microtools", "config.yml")
	}

	return filepath.Join(home, ".config", "microtools", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
// A missing file yields an empty config; a file that exists but cannot be parsed is an error.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve loads the config from path (or the default path when empty), applies
// environment overrides, validates it and fills in defaults.
func Resolve(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg, err := LoadWithEnv(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg.WithDefaults(), nil
}
