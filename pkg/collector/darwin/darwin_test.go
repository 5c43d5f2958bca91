package darwin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/sysmind/pkg/platform"
)

const launchctlFixture = `PID	Status	Label
412	0	com.apple.trustd.agent
-	78	com.apple.mdworker.shared
garbage
-	0	com.example.agent
`

const usbFixture = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<array>
  <dict>
    <key>_dataType</key><string>SPUSBDataType</string>
    <key>_items</key>
    <array>
      <dict>
        <key>_name</key><string>USB31Bus</string>
        <key>_items</key>
        <array>
          <dict>
            <key>_name</key><string>USB2.0 Hub</string>
            <key>vendor_id</key><string>0x05e3  (Genesys Logic, Inc.)</string>
            <key>product_id</key><string>0x0610</string>
            <key>_items</key>
            <array>
              <dict>
                <key>_name</key><string>Magic Keyboard</string>
                <key>vendor_id</key><string>apple_vendor_id</string>
                <key>product_id</key><string>0x029C</string>
                <key>manufacturer</key><string>Apple Inc.</string>
              </dict>
            </array>
          </dict>
        </array>
      </dict>
    </array>
  </dict>
</array>
</plist>
`

const pciFixture = `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<array>
  <dict>
    <key>_items</key>
    <array>
      <dict>
        <key>_name</key><string>ethernet</string>
        <key>sppci_vendor-id</key><string>0x8086</string>
        <key>sppci_device-id</key><string>0x15F3</string>
      </dict>
    </array>
  </dict>
</array>
</plist>
`

func TestParseLaunchctl(t *testing.T) {
	services := ParseLaunchctl(launchctlFixture)
	require.Len(t, services, 3)

	assert.Equal(t, "com.apple.trustd.agent", services[0].Name)
	assert.Equal(t, "0", services[0].Status)
	assert.Equal(t, "78", services[1].Status)
	assert.Nil(t, services[2].Description)
}

func TestParseUSB(t *testing.T) {
	devices, err := ParseUSB([]byte(usbFixture))
	require.NoError(t, err)
	require.Len(t, devices, 2)

	hub := devices[0]
	assert.Equal(t, "05e3", *hub.VendorID)
	assert.Equal(t, "Genesys Logic, Inc.", *hub.VendorName)
	assert.Equal(t, "0610", *hub.DeviceID)
	assert.Equal(t, "USB2.0 Hub", *hub.DeviceName)

	kb := devices[1]
	assert.Equal(t, "05ac", *kb.VendorID)
	assert.Equal(t, "029c", *kb.DeviceID)
	assert.Equal(t, "Apple Inc.", *kb.VendorName)
	assert.Equal(t, "Magic Keyboard", *kb.DeviceName)
}

func TestParsePCI(t *testing.T) {
	devices, err := ParsePCI([]byte(pciFixture))
	require.NoError(t, err)
	require.Len(t, devices, 1)

	assert.Equal(t, "8086", *devices[0].VendorID)
	assert.Equal(t, "15f3", *devices[0].DeviceID)
	assert.Nil(t, devices[0].VendorName)
	assert.Equal(t, "ethernet", *devices[0].DeviceName)
}

func TestParse_Invalid(t *testing.T) {
	_, err := ParseUSB([]byte("<?xml version=\"1.0\"?><plist><array><dict><key>_items</key>"))
	assert.Error(t, err)
}

func TestDevicesProvider(t *testing.T) {
	var gotArgs []string
	r := platform.RunnerFunc(func(_ context.Context, name string, args ...string) ([]byte, error) {
		assert.Equal(t, "system_profiler", name)
		gotArgs = args
		return []byte(usbFixture), nil
	})

	devices, err := NewUSBProvider(r).Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, devices, 2)
	assert.Equal(t, []string{"-xml", "SPUSBDataType"}, gotArgs)

	failing := platform.RunnerFunc(func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("exit status 1")
	})
	_, err = NewPCIProvider(failing).Collect(context.Background())
	assert.Error(t, err)
}
