package linux

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAttrs(t *testing.T, dir string, attrs map[string]string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for k, v := range attrs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, k), []byte(v+"\n"), 0o600))
	}
}

func TestUSBProvider(t *testing.T) {
	root := t.TempDir()
	writeAttrs(t, filepath.Join(root, "usb1"), map[string]string{
		"idVendor":     "1d6b",
		"idProduct":    "0002",
		"manufacturer": "Linux 6.8.0 xhci-hcd",
		"product":      "xHCI Host Controller",
	})
	writeAttrs(t, filepath.Join(root, "1-1"), map[string]string{
		"idVendor":  "046d",
		"idProduct": "c52b",
	})
	writeAttrs(t, filepath.Join(root, "1-1:1.0"), map[string]string{
		"bInterfaceClass": "03",
	})

	devices, err := (&USBProvider{Root: root}).Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 2)

	assert.Equal(t, "046d", *devices[0].VendorID)
	assert.Equal(t, "c52b", *devices[0].DeviceID)
	assert.Nil(t, devices[0].VendorName)
	assert.Nil(t, devices[0].DeviceName)

	assert.Equal(t, "1d6b", *devices[1].VendorID)
	assert.Equal(t, "xHCI Host Controller", *devices[1].DeviceName)
}

func TestUSBProvider_MissingRoot(t *testing.T) {
	devices, err := (&USBProvider{Root: filepath.Join(t.TempDir(), "none")}).Collect(context.Background())
	assert.Error(t, err)
	assert.Nil(t, devices)
}
