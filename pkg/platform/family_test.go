package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromGOOS(t *testing.T) {
	tests := []struct {
		goos string
		want Family
	}{
		{"linux", FamilyLinux},
		{"darwin", FamilyMacOS},
		{"windows", FamilyWindows},
		{"freebsd", FamilyOther},
		{"plan9", FamilyOther},
		{"", FamilyOther},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, FromGOOS(tt.goos))
		})
	}
}

func TestDetect(t *testing.T) {
	assert.Equal(t, FromGOOS(runtime.GOOS), Detect())
}

func TestParseFamily(t *testing.T) {
	f, ok := ParseFamily("Darwin")
	assert.True(t, ok)
	assert.Equal(t, FamilyMacOS, f)

	f, ok = ParseFamily("WINDOWS")
	assert.True(t, ok)
	assert.Equal(t, FamilyWindows, f)

	_, ok = ParseFamily("beos")
	assert.False(t, ok)
}

func TestFamily_Conventions(t *testing.T) {
	tests := []struct {
		family    Family
		supported bool
		iface     string
		kernel    string
	}{
		{FamilyLinux, true, "eth0", "Linux"},
		{FamilyMacOS, true, "en0", "Darwin"},
		{FamilyWindows, true, "Ethernet", "Windows"},
		{FamilyOther, false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.family.String(), func(t *testing.T) {
			assert.Equal(t, tt.supported, tt.family.Supported())
			assert.Equal(t, tt.iface, tt.family.PrimaryInterface())
			assert.Equal(t, tt.kernel, tt.family.KernelName())
		})
	}
}
