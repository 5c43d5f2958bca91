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

package windows

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/mchmarny/sysmind/pkg/inventory"
	"github.com/mchmarny/sysmind/pkg/platform"
)

const scriptPnP = "Get-CimInstance Win32_PnPEntity | Select-Object PNPDeviceID,Manufacturer,Name | ConvertTo-Csv -NoTypeInformation"

// Bus selects which PnP enumerator a DevicesProvider reports.
type Bus string

const (
	BusPCI Bus = "PCI"
	BusUSB Bus = "USB"
)

var (
	pciIDs = regexp.MustCompile(`(?i)VEN_([0-9A-F]{4})&DEV_([0-9A-F]{4})`)
	usbIDs = regexp.MustCompile(`(?i)VID_([0-9A-F]{4})&PID_([0-9A-F]{4})`)
)

// DevicesProvider lists PnP devices on one bus.
type DevicesProvider struct {
	Runner platform.Runner
	Bus    Bus
}

// NewPCIProvider creates a PCI device provider.
func NewPCIProvider(runner platform.Runner) *DevicesProvider {
	return &DevicesProvider{Runner: runner, Bus: BusPCI}
}

// NewUSBProvider creates a USB device provider.
func NewUSBProvider(runner platform.Runner) *DevicesProvider {
	return &DevicesProvider{Runner: runner, Bus: BusUSB}
}

// Collect returns devices on the configured bus.
func (p *DevicesProvider) Collect(ctx context.Context) ([]inventory.Device, error) {
	out, err := runPowerShell(ctx, p.Runner, scriptPnP)
	if err != nil {
		return nil, fmt.Errorf("failed to list pnp devices: %w", err)
	}
	return ParseDevices(out, p.Bus)
}

// ParseDevices converts Win32_PnPEntity CSV into devices on bus. Entities
// whose PNPDeviceID does not carry both IDs are skipped.
func ParseDevices(data []byte, bus Bus) ([]inventory.Device, error) {
	rows, err := parseCSV(data)
	if err != nil {
		return nil, err
	}

	re := pciIDs
	if bus == BusUSB {
		re = usbIDs
	}
	prefix := string(bus) + `\`

	devices := make([]inventory.Device, 0)
	for _, row := range rows {
		id := row["PNPDeviceID"]
		if !strings.HasPrefix(strings.ToUpper(id), prefix) {
			continue
		}
		m := re.FindStringSubmatch(id)
		if m == nil {
			continue
		}
		devices = append(devices, inventory.Device{
			VendorID:   inventory.StrPtr(strings.ToLower(m[1])),
			DeviceID:   inventory.StrPtr(strings.ToLower(m[2])),
			VendorName: inventory.StrPtr(row["Manufacturer"]),
			DeviceName: inventory.StrPtr(row["Name"]),
		})
	}
	return devices, nil
}
