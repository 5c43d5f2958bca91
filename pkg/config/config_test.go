package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/sysmind/pkg/defaults"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	for _, k := range []string{EnvSysctlConfig, EnvWriteThrough, EnvPrimaryInterface, EnvPort, EnvShutdownTimeout} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Path)
	assert.Equal(t, defaults.SysctlConfigPath, cfg.Sysctl.ConfigPath)
	assert.True(t, cfg.Sysctl.WriteThrough)
	assert.True(t, cfg.Sysctl.Backup)
	assert.Equal(t, defaults.CommandTimeout, cfg.Snapshot.CommandTimeout)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Server.ReadOnly)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	content := `sysctl:
  configPath: /tmp/sysctl.conf
  writeThrough: false
snapshot:
  primaryInterface: ens5
  commandTimeout: 15s
server:
  port: 9090
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, "/tmp/sysctl.conf", cfg.Sysctl.ConfigPath)
	assert.False(t, cfg.Sysctl.WriteThrough)
	assert.True(t, cfg.Sysctl.Backup, "absent keys keep defaults")
	assert.Equal(t, "ens5", cfg.Snapshot.PrimaryInterface)
	assert.Equal(t, 15*time.Second, cfg.Snapshot.CommandTimeout)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_SearchWorkingDir(t *testing.T) {
	isolate(t)

	require.NoError(t, os.WriteFile(FileName, []byte("server:\n  port: 7000\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, FileName, cfg.Path)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)

	t.Setenv(EnvSysctlConfig, "/run/sysctl.conf")
	t.Setenv(EnvWriteThrough, "false")
	t.Setenv(EnvPrimaryInterface, "wlan0")
	t.Setenv(EnvPort, "8181")
	t.Setenv(EnvShutdownTimeout, "5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/run/sysctl.conf", cfg.Sysctl.ConfigPath)
	assert.False(t, cfg.Sysctl.WriteThrough)
	assert.Equal(t, "wlan0", cfg.Snapshot.PrimaryInterface)
	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_EnvInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{EnvWriteThrough, "maybe"},
		{EnvPort, "eighty"},
		{EnvShutdownTimeout, "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Sysctl.ConfigPath = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Snapshot.CommandTimeout = 0
	assert.Error(t, cfg.Validate())
}
