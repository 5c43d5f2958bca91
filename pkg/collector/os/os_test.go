package os

import (
	"context"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/sysmind/pkg/platform"
)

func fakeInfo(info *host.InfoStat, err error) InfoFunc {
	return func(context.Context) (*host.InfoStat, error) {
		return info, err
	}
}

func TestKernelProvider(t *testing.T) {
	info := &host.InfoStat{
		Hostname:        "node-1",
		OS:              "linux",
		KernelVersion:   "6.8.0-45-generic",
		PlatformVersion: "24.04",
	}

	tests := []struct {
		family      platform.Family
		wantName    string
		wantVersion string
	}{
		{platform.FamilyLinux, "Linux", "6.8.0-45-generic"},
		{platform.FamilyMacOS, "Darwin", "6.8.0-45-generic"},
		{platform.FamilyWindows, "Windows", "24.04"},
		{platform.FamilyOther, "linux", "6.8.0-45-generic"},
	}

	for _, tt := range tests {
		t.Run(tt.family.String(), func(t *testing.T) {
			p := &KernelProvider{Family: tt.family, Info: fakeInfo(info, nil)}
			k, err := p.Collect(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, k.Name)
			assert.Equal(t, tt.wantVersion, k.Version)
			assert.Equal(t, "24.04", k.PlatformVersion)
		})
	}
}

func TestKernelProvider_Error(t *testing.T) {
	p := &KernelProvider{Family: platform.FamilyLinux, Info: fakeInfo(nil, errors.New("boom"))}
	k, err := p.Collect(context.Background())
	assert.Error(t, err)
	assert.Nil(t, k)
}

func TestHostnameProvider(t *testing.T) {
	p := &HostnameProvider{Info: fakeInfo(&host.InfoStat{Hostname: "node-1"}, nil)}
	h, err := p.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "node-1", *h)

	p = &HostnameProvider{Info: fakeInfo(&host.InfoStat{}, nil)}
	_, err = p.Collect(context.Background())
	assert.Error(t, err)
}

func TestKernelProvider_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	p := NewKernelProvider(platform.Detect())
	k, err := p.Collect(context.Background())
	if err != nil {
		t.Skipf("host info unavailable: %v", err)
	}
	assert.NotEmpty(t, k.Name)
}
