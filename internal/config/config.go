package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ServiceNowConfig locates the remote agenda-item table.
type ServiceNowConfig struct {
	Instance  string `yaml:"instance" env:"SERVICENOW_INSTANCE"`
	Table     string `yaml:"table" env:"SERVICENOW_TABLE"`
	Query     string `yaml:"query" env:"SERVICENOW_QUERY"`
	TimeoutMs int    `yaml:"timeout_ms" env:"SERVICENOW_TIMEOUT_MS"`
}

// Config holds all runtime settings. Values come from, in increasing
// precedence: defaults, the YAML config file, a .env file and the process
// environment.
type Config struct {
	DBPath         string           `yaml:"db" env:"AGENDADESK_DB"`
	Source         string           `yaml:"source" env:"AGENDADESK_SOURCE"`
	File           string           `yaml:"file" env:"AGENDADESK_FILE"`
	ReorderDelayMs int              `yaml:"reorder_delay_ms" env:"AGENDADESK_REORDER_DELAY_MS"`
	LogFile        string           `yaml:"log_file" env:"AGENDADESK_LOG_FILE"`
	LogLevel       string           `yaml:"log_level" env:"AGENDADESK_LOG_LEVEL"`
	ServiceNow     ServiceNowConfig `yaml:"servicenow"`
}

// EnvConfigPath names the variable that overrides the YAML config location.
const EnvConfigPath = "AGENDADESK_CONFIG"

// DefaultConfig returns a Config with defaults for every setting.
// homeDir may be empty, in which case the database lives in the working
// directory.
func DefaultConfig(homeDir string) Config {
	return Config{
		DBPath:         filepath.Join(homeDir, ".agendadesk", "agendadesk.db"),
		Source:         "fixture",
		ReorderDelayMs: 800,
		LogLevel:       "info",
		ServiceNow: ServiceNowConfig{
			Table:     "x_agenda_item",
			TimeoutMs: 10000,
		},
	}
}

// Load reads ./.env, then the YAML config file, then the environment.
func Load() (Config, error) {
	home, _ := os.UserHomeDir()
	return LoadFrom(".env", DefaultConfigPath(home), home)
}

// DefaultConfigPath is AGENDADESK_CONFIG or ~/.agendadesk/config.yaml.
func DefaultConfigPath(homeDir string) string {
	if v := os.Getenv(EnvConfigPath); v != "" {
		return v
	}
	return filepath.Join(homeDir, ".agendadesk", "config.yaml")
}

// LoadFrom is Load with explicit file locations. Missing files are skipped.
func LoadFrom(envFile, configFile, homeDir string) (Config, error) {
	if envFile != "" {
		// Variables already set in the process win over .env.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("reading %s: %w", envFile, err)
		}
	}

	cfg := DefaultConfig(homeDir)
	if configFile != "" {
		if err := readYAML(configFile, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings that cannot be used as given.
func (c Config) Validate() error {
	if c.ReorderDelayMs < 0 {
		return fmt.Errorf("reorder delay must not be negative, got %dms", c.ReorderDelayMs)
	}
	if c.ServiceNow.TimeoutMs < 0 {
		return fmt.Errorf("servicenow timeout must not be negative, got %dms", c.ServiceNow.TimeoutMs)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ReorderDelay is the deferred-commit delay for reorders.
func (c Config) ReorderDelay() time.Duration {
	return time.Duration(c.ReorderDelayMs) * time.Millisecond
}

// ServiceNowTimeout is the per-request timeout for the table API.
func (c Config) ServiceNowTimeout() time.Duration {
	return time.Duration(c.ServiceNow.TimeoutMs) * time.Millisecond
}

// SourceName returns the configured source, lower-cased.
func (c Config) SourceName() string {
	return strings.ToLower(strings.TrimSpace(c.Source))
}
