// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mchmarny/sysmind/pkg/defaults"
)

// FileName is the default config file name.
const FileName = ".sysmind.yaml"

const (
	EnvSysctlConfig     = "SYSMIND_SYSCTL_CONFIG"
	EnvWriteThrough     = "SYSMIND_WRITE_THROUGH"
	EnvPrimaryInterface = "SYSMIND_PRIMARY_INTERFACE"
	EnvPort             = "PORT"
	EnvShutdownTimeout  = "SHUTDOWN_TIMEOUT_SECONDS"
)

// Config holds every user-tunable setting.
type Config struct {
	Sysctl   SysctlConfig   `yaml:"sysctl" json:"sysctl"`
	Snapshot SnapshotConfig `yaml:"snapshot" json:"snapshot"`
	Server   ServerConfig   `yaml:"server" json:"server"`

	// Path is the file the config was read from, empty when none was found.
	Path string `yaml:"-" json:"-"`
}

// SysctlConfig controls the tunable store.
type SysctlConfig struct {
	ConfigPath   string `yaml:"configPath" json:"configPath"`
	WriteThrough bool   `yaml:"writeThrough" json:"writeThrough"`
	Backup       bool   `yaml:"backup" json:"backup"`
	// Binary is the sysctl executable; empty selects /sbin/sysctl when present.
	Binary string `yaml:"binary,omitempty" json:"binary,omitempty"`
}

// SnapshotConfig controls snapshot collection.
type SnapshotConfig struct {
	// PrimaryInterface overrides the per-family default interface name.
	PrimaryInterface string        `yaml:"primaryInterface,omitempty" json:"primaryInterface,omitempty"`
	CommandTimeout   time.Duration `yaml:"commandTimeout" json:"commandTimeout"`
}

// ServerConfig controls the HTTP daemon.
type ServerConfig struct {
	Port            int           `yaml:"port" json:"port"`
	ReadOnly        bool          `yaml:"readOnly" json:"readOnly"`
	RateLimit       float64       `yaml:"rateLimit" json:"rateLimit"`
	RateLimitBurst  int           `yaml:"rateLimitBurst" json:"rateLimitBurst"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" json:"shutdownTimeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Sysctl: SysctlConfig{
			ConfigPath:   defaults.SysctlConfigPath,
			WriteThrough: true,
			Backup:       true,
		},
		Snapshot: SnapshotConfig{
			CommandTimeout: defaults.CommandTimeout,
		},
		Server: ServerConfig{
			Port:            8080,
			ReadOnly:        true,
			RateLimit:       100,
			RateLimitBurst:  200,
			ShutdownTimeout: defaults.ServerShutdownTimeout,
		},
	}
}

// Load reads configuration from path, or from the default search locations
// when path is empty, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	} else {
		path = find()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		cfg.Path = path
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func find() string {
	var candidates []string
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, FileName))
	}
	candidates = append(candidates, FileName)

	for _, c := range candidates {
		if fi, err := os.Stat(c); err == nil && !fi.IsDir() {
			return c
		}
	}
	return ""
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvSysctlConfig); v != "" {
		c.Sysctl.ConfigPath = v
	}

	if v := os.Getenv(EnvWriteThrough); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvWriteThrough, v, err)
		}
		c.Sysctl.WriteThrough = b
	}

	if v := os.Getenv(EnvPrimaryInterface); v != "" {
		c.Snapshot.PrimaryInterface = v
	}

	if v := os.Getenv(EnvPort); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvPort, v, err)
		}
		c.Server.Port = p
	}

	if v := os.Getenv(EnvShutdownTimeout); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvShutdownTimeout, v, err)
		}
		c.Server.ShutdownTimeout = time.Duration(s) * time.Second
	}

	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Sysctl.ConfigPath == "" {
		return fmt.Errorf("sysctl.configPath must not be empty")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Snapshot.CommandTimeout <= 0 {
		return fmt.Errorf("snapshot.commandTimeout must be positive, got %s", c.Snapshot.CommandTimeout)
	}
	if c.Server.RateLimit < 0 || c.Server.RateLimitBurst < 0 {
		return fmt.Errorf("server rate limit values must not be negative")
	}
	return nil
}
