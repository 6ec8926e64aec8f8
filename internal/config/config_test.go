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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	uniqerrors "github.com/sirseerhq/sirseer-uniq/internal/errors"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Defaults.Delimiter != "newline" {
		t.Errorf("default delimiter = %q, want %q", cfg.Defaults.Delimiter, "newline")
	}
	if cfg.Defaults.Digest != "xxh3" {
		t.Errorf("default digest = %q, want %q", cfg.Defaults.Digest, "xxh3")
	}
	if cfg.Defaults.Exact {
		t.Error("exact should default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfigFile(t, `
defaults:
  delimiter: "null"
  digest: murmur3
  exact: true
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Defaults.Delimiter != "null" {
		t.Errorf("delimiter = %q, want %q", cfg.Defaults.Delimiter, "null")
	}
	if cfg.Defaults.Digest != "murmur3" {
		t.Errorf("digest = %q, want %q", cfg.Defaults.Digest, "murmur3")
	}
	if !cfg.Defaults.Exact {
		t.Error("exact = false, want true")
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `
defaults:
  delimiter: ","
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Defaults.Delimiter != "," {
		t.Errorf("delimiter = %q, want %q", cfg.Defaults.Delimiter, ",")
	}
	if cfg.Defaults.Digest != "xxh3" {
		t.Errorf("digest = %q, want default %q", cfg.Defaults.Digest, "xxh3")
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := writeConfigFile(t, "defaults: [not a mapping")

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
defaults:
  delimiter: ","
  digest: xxh64
`)

	t.Setenv("SIRSEER_UNIQ_DELIMITER", "null")
	t.Setenv("SIRSEER_UNIQ_DIGEST", "murmur3")
	t.Setenv("SIRSEER_UNIQ_EXACT", "yes")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Defaults.Delimiter != "null" {
		t.Errorf("delimiter = %q, want env override %q", cfg.Defaults.Delimiter, "null")
	}
	if cfg.Defaults.Digest != "murmur3" {
		t.Errorf("digest = %q, want env override %q", cfg.Defaults.Digest, "murmur3")
	}
	if !cfg.Defaults.Exact {
		t.Error("exact = false, want env override true")
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		input   string
		want    byte
		wantErr bool
	}{
		{input: "newline", want: '\n'},
		{input: "null", want: 0},
		{input: "\n", want: '\n'},
		{input: ",", want: ','},
		{input: "\x00", want: 0},
		{input: "", wantErr: true},
		{input: "ab", wantErr: true},
		{input: "λ", wantErr: true}, // multi-byte rune
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDelimiter(tt.input)
			if tt.wantErr {
				if !errors.Is(err, uniqerrors.ErrInvalidDelimiter) {
					t.Fatalf("ParseDelimiter(%q) error = %v, want ErrInvalidDelimiter", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDelimiter(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDelimiter(%q) = %#x, want %#x", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad delimiter",
			mutate:  func(c *Config) { c.Defaults.Delimiter = "abc" },
			wantErr: true,
		},
		{
			name:    "bad digest",
			mutate:  func(c *Config) { c.Defaults.Digest = "crc32" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
