// Package config provides layered configuration for the energy tooling.
// It loads settings from multiple sources, validates them, and hands the
// rest of the application a single typed struct.
//
// # Configuration Sources
//
// Configuration is built from the following sources, each layer
// overriding the one below it field by field:
//
//	1. Environment variables (highest priority)
//	2. An optional YAML configuration file
//	3. Built-in defaults (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern ENERGY_* for namespacing:
//
//	ENERGY_LOGGING_LEVEL=debug
//	ENERGY_LOGGING_FORMAT=json
//	ENERGY_LOGGING_OUTPUT=both
//	ENERGY_LOGGING_FILE_PATH=logs/energycli.log
//
// # Configuration File
//
// ENERGY_CONFIG names a YAML file explicitly; when unset, energycli.yaml
// and configs/energycli.yaml are probed in the working directory. A file
// named by ENERGY_CONFIG must exist, probed locations may be absent.
//
//	logging:
//	  level: info
//	  format: text
//	  output: stderr
//
// # Validation
//
// Enum fields are checked at load time. Logging output accepts stderr,
// file, or both; stdout is rejected because it is reserved for the JSON
// payload the converters emit.
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    // fall back to config.Default()
//	}
package config
