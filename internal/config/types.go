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

// Package config types define the configuration structures used throughout
// sirseer-uniq. These types represent settings that can be loaded from
// YAML configuration files, environment variables, or command-line flags.
package config

// Config represents the complete configuration for sirseer-uniq. It
// consolidates settings from various sources and provides a unified
// interface for accessing configuration values throughout the
// application.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
}

// DefaultsConfig contains default settings applied to every run unless
// overridden by command-line flags. These exist so that pipelines that
// always use, say, NUL-delimited records don't have to repeat flags on
// every invocation.
type DefaultsConfig struct {
	// Delimiter is the record delimiter: "newline", "null", or a single
	// character.
	Delimiter string `yaml:"delimiter"`

	// Digest selects the hash backing the ordered-unique index:
	// "xxh3", "xxh64", or "murmur3".
	Digest string `yaml:"digest"`

	// Exact keys the ordered-unique index on full record content
	// instead of a 64-bit digest.
	Exact bool `yaml:"exact"`
}

// DefaultConfig returns a Config with the built-in defaults: newline
// delimiter, xxh3 digest, digest-backed index.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Delimiter: "newline",
			Digest:    "xxh3",
		},
	}
}
