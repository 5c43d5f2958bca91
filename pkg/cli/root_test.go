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

package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/mchmarny/sysmind/pkg/config"
	"github.com/mchmarny/sysmind/pkg/platform"
	"github.com/mchmarny/sysmind/pkg/serializer"
)

const testListing = `kernel.hostname = node-1
net.ipv4.ip_forward = 0
net.ipv4.tcp_syncookies = 1
vm.swappiness = 60
`

type fakeRunner struct {
	mu     sync.Mutex
	writes []string
}

func (f *fakeRunner) run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if name == "sysctl" && len(args) == 1 && args[0] == "-a" {
		return []byte(testListing), nil
	}
	if name == "sysctl" && len(args) == 2 && args[0] == "-w" {
		f.writes = append(f.writes, args[1])
		return nil, nil
	}
	return nil, errors.New("command not available")
}

type testEnv struct {
	app        *app
	out        *bytes.Buffer
	runner     *fakeRunner
	configFile string
	sysctlConf string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()

	sysctlConf := filepath.Join(dir, "sysctl.conf")
	require.NoError(t, os.WriteFile(sysctlConf, []byte("vm.swappiness = 60\n"), 0o644))

	configFile := filepath.Join(dir, "sysmind.yaml")
	cfg := "sysctl:\n  configPath: " + sysctlConf + "\n  writeThrough: true\n  backup: true\n  binary: sysctl\n"
	require.NoError(t, os.WriteFile(configFile, []byte(cfg), 0o600))

	out := &bytes.Buffer{}
	r := &fakeRunner{}
	return &testEnv{
		app: &app{
			out:    out,
			runner: platform.RunnerFunc(r.run),
			serve:  func(context.Context, *config.Config) error { return nil },
		},
		out:        out,
		runner:     r,
		configFile: configFile,
		sysctlConf: sysctlConf,
	}
}

func (e *testEnv) run(t *testing.T, args ...string) error {
	t.Helper()
	full := append([]string{name, "--config", e.configFile, "--log-level", "error"}, args...)
	return newRootCmd(e.app).Run(context.Background(), full)
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{name: "valid yaml format", format: "yaml", wantFormat: serializer.FormatYAML},
		{name: "valid json format", format: "json", wantFormat: serializer.FormatJSON},
		{name: "valid table format", format: "table", wantFormat: serializer.FormatTable},
		{name: "invalid format xml", format: "xml", wantErr: true},
		{name: "invalid format csv", format: "csv", wantErr: true},
		{name: "empty format", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: tt.format},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if tt.wantErr {
						assert.Error(t, err)
						return nil
					}
					assert.NoError(t, err)
					assert.Equal(t, tt.wantFormat, got)
					return nil
				},
			}
			require.NoError(t, cmd.Run(context.Background(), []string{"test"}))
		})
	}
}

func TestRoot_MissingConfigFails(t *testing.T) {
	env := newTestEnv(t)
	err := newRootCmd(env.app).Run(context.Background(),
		[]string{name, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "sysctl", "list"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRoot_LoadsConfig(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.run(t, "sysctl", "list"))
	require.NotNil(t, env.app.cfg)
	assert.Equal(t, env.sysctlConf, env.app.cfg.Sysctl.ConfigPath)
	assert.Equal(t, env.configFile, env.app.cfg.Path)
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestRoot_LogLevel(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		flag      string
		wantLevel slog.Level
	}{
		{"defaults to info", nil, "", slog.LevelInfo},
		{"LOG_LEVEL", map[string]string{"LOG_LEVEL": "debug"}, "", slog.LevelDebug},
		{"SYSMIND_LOG_LEVEL wins over LOG_LEVEL", map[string]string{"LOG_LEVEL": "debug", "SYSMIND_LOG_LEVEL": "error"}, "", slog.LevelError},
		{"flag wins over env", map[string]string{"LOG_LEVEL": "debug"}, "warn", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t, "LOG_LEVEL")
			unsetEnv(t, "SYSMIND_LOG_LEVEL")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			env := newTestEnv(t)
			args := []string{name, "--config", env.configFile}
			if tt.flag != "" {
				args = append(args, "--log-level", tt.flag)
			}
			args = append(args, "sysctl", "list")
			require.NoError(t, newRootCmd(env.app).Run(context.Background(), args))

			ctx := context.Background()
			require.NotNil(t, env.app.logger)
			assert.True(t, env.app.logger.Enabled(ctx, tt.wantLevel))
			assert.False(t, env.app.logger.Enabled(ctx, tt.wantLevel-1))
		})
	}
}

func TestServe_AppliesFlags(t *testing.T) {
	env := newTestEnv(t)
	var got *config.Config
	env.app.serve = func(_ context.Context, cfg *config.Config) error {
		got = cfg
		return nil
	}

	require.NoError(t, env.run(t, "serve", "--port", "9090", "--allow-writes"))
	require.NotNil(t, got)
	assert.Equal(t, 9090, got.Server.Port)
	assert.False(t, got.Server.ReadOnly)
	// the loaded config is not modified
	assert.True(t, env.app.cfg.Server.ReadOnly)
}

func TestServe_DefaultsReadOnly(t *testing.T) {
	env := newTestEnv(t)
	var got *config.Config
	env.app.serve = func(_ context.Context, cfg *config.Config) error {
		got = cfg
		return nil
	}

	require.NoError(t, env.run(t, "serve"))
	require.NotNil(t, got)
	assert.True(t, got.Server.ReadOnly)
	assert.Equal(t, 8080, got.Server.Port)
}

func TestServe_InvalidPort(t *testing.T) {
	env := newTestEnv(t)
	err := env.run(t, "serve", "--port", "70000")
	require.Error(t, err)
}
