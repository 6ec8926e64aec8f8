// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for sirseer-uniq with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// The package supports YAML configuration files and provides automatic
// discovery of configuration in standard locations. All configuration is
// resolved before the first input byte is read; an invalid configuration
// never produces partial output.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sirseerhq/sirseer-uniq/internal/digest"
	uniqerrors "github.com/sirseerhq/sirseer-uniq/internal/errors"
)

// LoadConfig loads configuration from multiple sources and applies them
// in the correct precedence order. If configPath is provided, it loads
// from that specific file. Otherwise, it searches standard locations:
//   - .sirseer-uniq.yaml (current directory)
//   - .sirseer-uniq.yml (current directory)
//   - ~/.sirseer/uniq.yaml
//   - ~/.sirseer/uniq.yml
//
// Environment variables are applied after loading the config file,
// allowing runtime overrides.
//
// Returns an error if the specified config file cannot be loaded, but
// will succeed with defaults if no config file is found in standard
// locations.
func LoadConfig(configPath string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		// Try default locations
		defaultPaths := []string{
			".sirseer-uniq.yaml",
			".sirseer-uniq.yml",
			filepath.Join(os.Getenv("HOME"), ".sirseer", "uniq.yaml"),
			filepath.Join(os.Getenv("HOME"), ".sirseer", "uniq.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if delim := os.Getenv("SIRSEER_UNIQ_DELIMITER"); delim != "" {
		cfg.Defaults.Delimiter = delim
	}
	if algo := os.Getenv("SIRSEER_UNIQ_DIGEST"); algo != "" {
		cfg.Defaults.Digest = algo
	}
	if exact := os.Getenv("SIRSEER_UNIQ_EXACT"); exact != "" {
		cfg.Defaults.Exact = parseBool(exact)
	}
}

// parseBool parses various boolean representations
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "yes" || s == "1" || s == "on"
}

// ParseDelimiter resolves a delimiter setting to its byte value. The
// named values "newline" and "null" are accepted alongside any literal
// single-byte string; anything else returns ErrInvalidDelimiter. Named
// values exist because YAML has no pleasant spelling for a NUL byte.
func ParseDelimiter(s string) (byte, error) {
	switch s {
	case "newline":
		return '\n', nil
	case "null":
		return 0, nil
	}
	if len(s) == 1 {
		return s[0], nil
	}
	return 0, fmt.Errorf("%q: %w", s, uniqerrors.ErrInvalidDelimiter)
}

// Validate checks if the configuration contains valid values. This
// should be called after loading configuration to catch invalid
// settings before any input is read.
func (c *Config) Validate() error {
	if _, err := ParseDelimiter(c.Defaults.Delimiter); err != nil {
		return fmt.Errorf("invalid default delimiter: %w", err)
	}
	if _, err := digest.Parse(c.Defaults.Digest); err != nil {
		return fmt.Errorf("invalid default digest: %w", err)
	}
	return nil
}
