package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energycli/internal/errors"
)

// unsetenv clears keys for the duration of the test and restores any
// prior values afterwards.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if val, ok := os.LookupEnv(key); ok {
			t.Setenv(key, val)
		}
		os.Unsetenv(key)
	}
}

// chdir switches the working directory for the duration of the test so
// config file discovery runs against a known tree.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func writeConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	envVars := []string{
		"ENERGY_CONFIG",
		"ENERGY_LOGGING_LEVEL", "ENERGY_LOGGING_FORMAT",
		"ENERGY_LOGGING_OUTPUT", "ENERGY_LOGGING_FILE_PATH",
	}

	tests := []struct {
		name        string
		setup       func(t *testing.T)
		wantErr     bool
		errContains string
		validateCfg func(t *testing.T, cfg *Config)
	}{
		{
			name: "default configuration with no overrides",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
				assert.Equal(t, "stderr", cfg.Logging.Output)
				assert.Equal(t, "logs/energycli.log", cfg.Logging.FilePath)
			},
		},
		{
			name: "environment overrides defaults",
			setup: func(t *testing.T) {
				t.Setenv("ENERGY_LOGGING_LEVEL", "debug")
				t.Setenv("ENERGY_LOGGING_FORMAT", "json")
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, "stderr", cfg.Logging.Output)
			},
		},
		{
			name: "explicit config file via ENERGY_CONFIG",
			setup: func(t *testing.T) {
				path := writeConfigFile(t, t.TempDir(), "custom.yaml",
					"logging:\n  level: warn\n  output: both\n  file_path: run/out.log\n")
				t.Setenv("ENERGY_CONFIG", path)
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "warn", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
				assert.Equal(t, "both", cfg.Logging.Output)
				assert.Equal(t, "run/out.log", cfg.Logging.FilePath)
			},
		},
		{
			name: "environment overrides config file",
			setup: func(t *testing.T) {
				path := writeConfigFile(t, t.TempDir(), "custom.yaml",
					"logging:\n  level: warn\n  output: file\n")
				t.Setenv("ENERGY_CONFIG", path)
				t.Setenv("ENERGY_LOGGING_LEVEL", "error")
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "error", cfg.Logging.Level)
				assert.Equal(t, "file", cfg.Logging.Output)
				assert.Equal(t, "logs/energycli.log", cfg.Logging.FilePath)
			},
		},
		{
			name: "config file discovered in working directory",
			setup: func(t *testing.T) {
				dir := t.TempDir()
				writeConfigFile(t, dir, "energycli.yaml", "logging:\n  level: debug\n")
				chdir(t, dir)
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
			},
		},
		{
			name: "missing explicit config file",
			setup: func(t *testing.T) {
				t.Setenv("ENERGY_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
			},
			wantErr:     true,
			errContains: "cannot load config file",
		},
		{
			name: "malformed config file",
			setup: func(t *testing.T) {
				path := writeConfigFile(t, t.TempDir(), "broken.yaml", "logging: [not a mapping\n")
				t.Setenv("ENERGY_CONFIG", path)
			},
			wantErr:     true,
			errContains: "cannot load config file",
		},
		{
			name: "invalid logging level",
			setup: func(t *testing.T) {
				t.Setenv("ENERGY_LOGGING_LEVEL", "verbose")
			},
			wantErr:     true,
			errContains: "invalid logging level",
		},
		{
			name: "invalid logging format",
			setup: func(t *testing.T) {
				t.Setenv("ENERGY_LOGGING_FORMAT", "xml")
			},
			wantErr:     true,
			errContains: "invalid logging format",
		},
		{
			name: "stdout is not a logging output",
			setup: func(t *testing.T) {
				t.Setenv("ENERGY_LOGGING_OUTPUT", "stdout")
			},
			wantErr:     true,
			errContains: "invalid logging output",
		},
		{
			name: "file output requires a file path",
			setup: func(t *testing.T) {
				path := writeConfigFile(t, t.TempDir(), "custom.yaml",
					"logging:\n  output: file\n  file_path: \"\"\n")
				t.Setenv("ENERGY_CONFIG", path)
			},
			wantErr:     true,
			errContains: "file path required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetenv(t, envVars...)
			chdir(t, t.TempDir())
			if tt.setup != nil {
				tt.setup(t)
			}

			cfg, err := Load()

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ErrTypeConfig, errors.TypeOf(err))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.validateCfg != nil {
				tt.validateCfg(t, cfg)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "logs/energycli.log", cfg.Logging.FilePath)

	assert.NoError(t, cfg.validate())
}
