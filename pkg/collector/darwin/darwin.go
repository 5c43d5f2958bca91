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

// Package darwin provides the macOS service and hardware providers.
//
// Services come from launchctl list. PCI and USB devices come from the XML
// (plist) output of system_profiler, decoded with howett.net/plist. USB
// devices behind hubs are flattened into a single list.
package darwin

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"howett.net/plist"

	"github.com/mchmarny/sysmind/pkg/collector/file"
	"github.com/mchmarny/sysmind/pkg/inventory"
	"github.com/mchmarny/sysmind/pkg/platform"
)

const (
	dataTypePCI = "SPPCIDataType"
	dataTypeUSB = "SPUSBDataType"
)

// ServicesProvider lists launchd jobs.
type ServicesProvider struct {
	Runner platform.Runner
}

// NewServicesProvider creates a launchctl-backed provider.
func NewServicesProvider(runner platform.Runner) *ServicesProvider {
	return &ServicesProvider{Runner: runner}
}

// Collect returns launchd jobs. Status is the last exit status column.
func (p *ServicesProvider) Collect(ctx context.Context) ([]inventory.Service, error) {
	out, err := p.Runner.Run(ctx, "launchctl", "list")
	if err != nil {
		return nil, fmt.Errorf("failed to list launchd jobs: %w", err)
	}
	return ParseLaunchctl(string(out)), nil
}

// ParseLaunchctl parses launchctl list output, skipping the header and lines
// with fewer than three columns.
func ParseLaunchctl(out string) []inventory.Service {
	lines := file.NewParser(file.WithSkipComments(false)).Lines(out)

	services := make([]inventory.Service, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			slog.Debug("skipping launchctl line", slog.String("line", line))
			continue
		}
		if fields[0] == "PID" {
			continue
		}
		services = append(services, inventory.Service{
			Name:   fields[len(fields)-1],
			Status: fields[1],
		})
	}
	return services
}

type profilerDataType struct {
	Items []profilerItem `plist:"_items"`
}

type profilerItem struct {
	Name         string         `plist:"_name"`
	Items        []profilerItem `plist:"_items"`
	VendorID     string         `plist:"vendor_id"`
	ProductID    string         `plist:"product_id"`
	Manufacturer string         `plist:"manufacturer"`
	PCIVendorID  string         `plist:"sppci_vendor-id"`
	PCIDeviceID  string         `plist:"sppci_device-id"`
	PCIVendor    string         `plist:"sppci_vendor"`
}

// DevicesProvider lists PCI or USB devices from system_profiler.
type DevicesProvider struct {
	Runner   platform.Runner
	DataType string
}

// NewPCIProvider creates a provider for PCI devices.
func NewPCIProvider(runner platform.Runner) *DevicesProvider {
	return &DevicesProvider{Runner: runner, DataType: dataTypePCI}
}

// NewUSBProvider creates a provider for USB devices.
func NewUSBProvider(runner platform.Runner) *DevicesProvider {
	return &DevicesProvider{Runner: runner, DataType: dataTypeUSB}
}

// Collect returns devices of the configured data type.
func (p *DevicesProvider) Collect(ctx context.Context) ([]inventory.Device, error) {
	out, err := p.Runner.Run(ctx, "system_profiler", "-xml", p.DataType)
	if err != nil {
		return nil, fmt.Errorf("failed to run system_profiler %s: %w", p.DataType, err)
	}

	if p.DataType == dataTypePCI {
		return ParsePCI(out)
	}
	return ParseUSB(out)
}

func decode(data []byte) ([]profilerItem, error) {
	var raw []profilerDataType
	if err := plist.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode plist: %w", err)
	}

	var items []profilerItem
	for _, dt := range raw {
		items = append(items, dt.Items...)
	}
	return items, nil
}

// ParsePCI decodes SPPCIDataType output.
func ParsePCI(data []byte) ([]inventory.Device, error) {
	items, err := decode(data)
	if err != nil {
		return nil, err
	}

	devices := make([]inventory.Device, 0, len(items))
	for _, it := range items {
		devices = append(devices, inventory.Device{
			VendorID:   inventory.StrPtr(normalizeID(it.PCIVendorID)),
			DeviceID:   inventory.StrPtr(normalizeID(it.PCIDeviceID)),
			VendorName: inventory.StrPtr(it.PCIVendor),
			DeviceName: inventory.StrPtr(it.Name),
		})
	}
	return devices, nil
}

// ParseUSB decodes SPUSBDataType output. Bus entries carry no vendor ID and
// only contribute their children.
func ParseUSB(data []byte) ([]inventory.Device, error) {
	items, err := decode(data)
	if err != nil {
		return nil, err
	}

	devices := make([]inventory.Device, 0)
	var walk func([]profilerItem)
	walk = func(items []profilerItem) {
		for _, it := range items {
			if it.VendorID != "" || it.ProductID != "" {
				vendorID, vendorName := splitVendor(it.VendorID)
				if it.Manufacturer != "" {
					vendorName = it.Manufacturer
				}
				devices = append(devices, inventory.Device{
					VendorID:   inventory.StrPtr(vendorID),
					DeviceID:   inventory.StrPtr(normalizeID(it.ProductID)),
					VendorName: inventory.StrPtr(vendorName),
					DeviceName: inventory.StrPtr(it.Name),
				})
			}
			walk(it.Items)
		}
	}
	walk(items)

	return devices, nil
}

// system_profiler reports Apple's own devices with a symbolic vendor.
const (
	appleVendorKey = "apple_vendor_id"
	appleVendorID  = "05ac"
)

// vendorWithName matches "0x05ac  (Apple Inc.)".
var vendorWithName = regexp.MustCompile(`^(\S+)\s*\((.*)\)$`)

func splitVendor(s string) (id, name string) {
	s = strings.TrimSpace(s)
	if s == appleVendorKey {
		return appleVendorID, "Apple Inc."
	}
	if m := vendorWithName.FindStringSubmatch(s); m != nil {
		return normalizeID(m[1]), strings.TrimSpace(m[2])
	}
	return normalizeID(s), ""
}

// normalizeID strips the 0x prefix and lower-cases a hex identifier.
func normalizeID(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.TrimPrefix(s, "0x")
}
