package os

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/sysmind/pkg/platform"
)

func TestPOSIXProvider(t *testing.T) {
	dir := t.TempDir()
	wsl := filepath.Join(dir, "wsl")
	require.NoError(t, os.WriteFile(wsl, []byte("Linux version 5.15.90.1-microsoft-standard-WSL2"), 0o600))
	native := filepath.Join(dir, "native")
	require.NoError(t, os.WriteFile(native, []byte("Linux version 6.8.0"), 0o600))

	tests := []struct {
		name   string
		family platform.Family
		path   string
		want   bool
	}{
		{"linux", platform.FamilyLinux, "", true},
		{"macos", platform.FamilyMacOS, "", true},
		{"windows wsl", platform.FamilyWindows, wsl, true},
		{"windows no marker", platform.FamilyWindows, native, false},
		{"windows no proc", platform.FamilyWindows, filepath.Join(dir, "missing"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &POSIXProvider{Family: tt.family, VersionPath: tt.path}
			v, err := p.Collect(context.Background())
			require.NoError(t, err)
			require.NotNil(t, v)
			assert.Equal(t, tt.want, *v)
		})
	}
}

func TestPOSIXProvider_Other(t *testing.T) {
	p := NewPOSIXProvider(platform.FamilyOther)
	v, err := p.Collect(context.Background())
	assert.Error(t, err)
	assert.Nil(t, v)
}
