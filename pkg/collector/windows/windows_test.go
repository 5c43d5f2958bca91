package windows

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/sysmind/pkg/platform"
)

const servicesFixture = "\ufeff" + `"Name","Status","DisplayName"
"AudioSrv","Running","Windows Audio"
"Spooler","Stopped","Print Spooler, legacy"
"broken","row"
"","Running","Nameless"
"WinRM","Running",""
`

const pnpFixture = `"PNPDeviceID","Manufacturer","Name"
"PCI\VEN_8086&DEV_15F3&SUBSYS_00008086&REV_03\3&11583659&0&F8","Intel Corporation","Intel(R) Ethernet Controller I225-V"
"USB\VID_046D&PID_C52B\5&2A3F1C&0&2","Logitech","Logitech USB Input Device"
"USB\ROOT_HUB30\4&1234&0&0","(Standard USB HUBs)","USB Root Hub (USB 3.0)"
"ACPI\PNP0A08\0","(Standard system devices)","PCI Express Root Complex"
"PCI\VEN_10DE&DEV_2204","NVIDIA","NVIDIA GeForce RTX 3090"
`

func TestParseServices(t *testing.T) {
	services, err := ParseServices([]byte(servicesFixture))
	require.NoError(t, err)
	require.Len(t, services, 3)

	assert.Equal(t, "AudioSrv", services[0].Name)
	assert.Equal(t, "Running", services[0].Status)
	assert.Equal(t, "Windows Audio", *services[0].Description)

	assert.Equal(t, "Print Spooler, legacy", *services[1].Description)

	assert.Equal(t, "WinRM", services[2].Name)
	assert.Nil(t, services[2].Description)
}

func TestParseServices_Empty(t *testing.T) {
	services, err := ParseServices(nil)
	require.NoError(t, err)
	assert.NotNil(t, services)
	assert.Empty(t, services)
}

func TestParseDevices(t *testing.T) {
	pci, err := ParseDevices([]byte(pnpFixture), BusPCI)
	require.NoError(t, err)
	require.Len(t, pci, 2)
	assert.Equal(t, "8086", *pci[0].VendorID)
	assert.Equal(t, "15f3", *pci[0].DeviceID)
	assert.Equal(t, "Intel Corporation", *pci[0].VendorName)
	assert.Equal(t, "10de", *pci[1].VendorID)

	usb, err := ParseDevices([]byte(pnpFixture), BusUSB)
	require.NoError(t, err)
	require.Len(t, usb, 1)
	assert.Equal(t, "046d", *usb[0].VendorID)
	assert.Equal(t, "c52b", *usb[0].DeviceID)
	assert.Equal(t, "Logitech USB Input Device", *usb[0].DeviceName)
}

func TestProviders_RunPowerShell(t *testing.T) {
	var calls [][]string
	r := platform.RunnerFunc(func(_ context.Context, name string, args ...string) ([]byte, error) {
		assert.Equal(t, "powershell", name)
		calls = append(calls, args)
		if args[len(args)-1] == scriptServices {
			return []byte(servicesFixture), nil
		}
		return []byte(pnpFixture), nil
	})

	services, err := NewServicesProvider(r).Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, services, 3)

	devices, err := NewUSBProvider(r).Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, devices, 1)

	require.Len(t, calls, 2)
	assert.Equal(t, "-NoProfile", calls[0][0])
}

func TestProviders_Error(t *testing.T) {
	r := platform.RunnerFunc(func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("powershell not found")
	})

	_, err := NewServicesProvider(r).Collect(context.Background())
	assert.Error(t, err)
	_, err = NewPCIProvider(r).Collect(context.Background())
	assert.Error(t, err)
}
