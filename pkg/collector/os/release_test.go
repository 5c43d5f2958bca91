package os

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/sysmind/pkg/logging"
)

func writeRelease(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "os-release")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDistributionProvider(t *testing.T) {
	tests := []struct {
		name    string
		content string
		id      string
		like    []string
		pm      *string
	}{
		{
			name:    "ubuntu",
			content: "NAME=\"Ubuntu\"\nID=ubuntu\nID_LIKE=debian\nVERSION_ID=\"24.04\"\n",
			id:      "ubuntu",
			like:    []string{"debian"},
			pm:      strPtr("apt"),
		},
		{
			name:    "rocky",
			content: "NAME=\"Rocky Linux\"\nID=\"rocky\"\nID_LIKE=\"rhel centos fedora\"\n",
			id:      "rocky",
			like:    []string{"rhel", "centos", "fedora"},
			pm:      strPtr("yum"),
		},
		{
			name:    "debian without like",
			content: "NAME=\"Debian GNU/Linux\"\nID=debian\n",
			id:      "debian",
			like:    []string{},
			pm:      strPtr("apt"),
		},
		{
			name:    "alpine unknown",
			content: "NAME=\"Alpine Linux\"\nID=alpine\n# comment\nbroken line\n",
			id:      "alpine",
			like:    []string{},
			pm:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &DistributionProvider{
				Paths:  []string{writeRelease(t, tt.content)},
				Logger: logging.Discard(),
			}
			d, err := p.Collect(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.id, d.ID)
			assert.ElementsMatch(t, tt.like, d.Like)
			assert.Equal(t, tt.pm, d.PackageManager)
		})
	}
}

func TestDistributionProvider_Fallback(t *testing.T) {
	dir := t.TempDir()
	fallback := writeRelease(t, "ID=fedora\nNAME=Fedora\n")

	p := &DistributionProvider{
		Paths:  []string{filepath.Join(dir, "missing"), fallback},
		Logger: logging.Discard(),
	}
	d, err := p.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fedora", d.ID)
	assert.Equal(t, "yum", *d.PackageManager)
}

func TestDistributionProvider_NoFile(t *testing.T) {
	p := &DistributionProvider{Paths: []string{filepath.Join(t.TempDir(), "missing")}}
	d, err := p.Collect(context.Background())
	assert.Error(t, err)
	assert.Nil(t, d)
}

func TestDistributionProvider_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewDistributionProvider(logging.Discard())
	_, err := p.Collect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPackageManager(t *testing.T) {
	assert.Equal(t, "apt", PackageManager("Ubuntu", nil))
	assert.Equal(t, "yum", PackageManager("centos", nil))
	assert.Equal(t, "yum", PackageManager("amzn", []string{"centos", "rhel", "fedora"}))
	assert.Equal(t, "", PackageManager("arch", nil))
}

func strPtr(s string) *string {
	return &s
}
