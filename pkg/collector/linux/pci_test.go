package linux

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/sysmind/pkg/platform"
)

const lspciFixture = `Slot:	00:00.0
Class:	Host bridge [0600]
Vendor:	Intel Corporation [8086]
Device:	440FX - 82441FX PMC [Natoma] [1237]
Rev:	02

Slot:	00:02.0
Class:	VGA compatible controller [0300]
Vendor:	NVIDIA Corporation [10de]
Device:	GA100 [A100 SXM4 40GB] [20b0]
SVendor:	NVIDIA Corporation [10de]
SDevice:	Device [134f]

Slot:	00:03.0
Class:	Unassigned class [ff00]

Slot:	00:04.0
Vendor:	Unknown vendor
Device:	Unknown device
`

func TestParseLspci(t *testing.T) {
	devices := ParseLspci(lspciFixture)
	require.Len(t, devices, 3)

	assert.Equal(t, "8086", *devices[0].VendorID)
	assert.Equal(t, "Intel Corporation", *devices[0].VendorName)
	assert.Equal(t, "1237", *devices[0].DeviceID)
	assert.Equal(t, "440FX - 82441FX PMC [Natoma]", *devices[0].DeviceName)

	assert.Equal(t, "10de", *devices[1].VendorID)
	assert.Equal(t, "GA100 [A100 SXM4 40GB]", *devices[1].DeviceName)
	assert.Equal(t, "20b0", *devices[1].DeviceID)

	assert.Nil(t, devices[2].VendorID)
	assert.Equal(t, "Unknown vendor", *devices[2].VendorName)
}

func TestParseLspci_Empty(t *testing.T) {
	devices := ParseLspci("")
	assert.NotNil(t, devices)
	assert.Empty(t, devices)
}

func TestPCIProvider(t *testing.T) {
	p := NewPCIProvider(platform.RunnerFunc(func(_ context.Context, name string, args ...string) ([]byte, error) {
		assert.Equal(t, "lspci", name)
		assert.Equal(t, []string{"-vmmnn"}, args)
		return []byte(lspciFixture), nil
	}))
	devices, err := p.Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, devices, 3)

	p = NewPCIProvider(platform.RunnerFunc(func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("lspci not found")
	}))
	devices, err = p.Collect(context.Background())
	assert.Error(t, err)
	assert.Nil(t, devices)
}
