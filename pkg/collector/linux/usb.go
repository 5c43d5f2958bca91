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

package linux

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mchmarny/sysmind/pkg/collector/file"
	"github.com/mchmarny/sysmind/pkg/inventory"
)

const sysfsUSBRoot = "/sys/bus/usb/devices"

// USBProvider lists USB devices from sysfs.
type USBProvider struct {
	Root string
}

// NewUSBProvider creates a provider reading the standard sysfs location.
func NewUSBProvider() *USBProvider {
	return &USBProvider{Root: sysfsUSBRoot}
}

// Collect returns USB devices ordered by sysfs name.
func (p *USBProvider) Collect(ctx context.Context) ([]inventory.Device, error) {
	entries, err := os.ReadDir(p.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p.Root, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	devices := make([]inventory.Device, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dir := filepath.Join(p.Root, name)
		vendorID, err := file.ReadValue(filepath.Join(dir, "idVendor"))
		if err != nil {
			// interfaces and hub ports have no idVendor
			continue
		}

		devices = append(devices, inventory.Device{
			VendorID:   inventory.StrPtr(vendorID),
			DeviceID:   readOptional(filepath.Join(dir, "idProduct")),
			VendorName: readOptional(filepath.Join(dir, "manufacturer")),
			DeviceName: readOptional(filepath.Join(dir, "product")),
		})
	}

	return devices, nil
}

func readOptional(path string) *string {
	v, err := file.ReadValue(path)
	if err != nil {
		return nil
	}
	return inventory.StrPtr(v)
}
