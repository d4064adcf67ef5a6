package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"energycli/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// LoggingConfig contains logging configuration. Output defaults to stderr
// so stdout stays reserved for the JSON payload.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Load builds the configuration in three layers: built-in defaults, an
// optional YAML file, then ENERGY_* environment variables. Later layers
// override earlier ones field by field.
func Load() (*Config, error) {
	cfg := Default()

	if path := configFilePath(); path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("cannot load config file %s", path), err)
		}
	}

	if err := envconfig.Process("ENERGY", cfg); err != nil {
		return nil, errors.NewConfigError("cannot process environment overrides", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile overlays YAML values onto the receiver. Fields absent from
// the document keep their current values.
func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// configFilePath returns the config file to load. ENERGY_CONFIG names one
// explicitly; otherwise common locations are probed and an empty string
// means defaults plus environment only.
func configFilePath() string {
	if path := os.Getenv("ENERGY_CONFIG"); path != "" {
		return path
	}

	locations := []string{
		"energycli.yaml",
		"configs/energycli.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// validate checks the enum fields
func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewConfigError(fmt.Sprintf("invalid logging level: %q", c.Logging.Level), nil)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return errors.NewConfigError(fmt.Sprintf("invalid logging format: %q", c.Logging.Format), nil)
	}

	switch c.Logging.Output {
	case "stderr", "file", "both":
	default:
		return errors.NewConfigError(fmt.Sprintf("invalid logging output: %q", c.Logging.Output), nil)
	}

	if c.Logging.Output != "stderr" && c.Logging.FilePath == "" {
		return errors.NewConfigError("logging file path required for file output", nil)
	}

	return nil
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "stderr",
			FilePath: "logs/energycli.log",
		},
	}
}
