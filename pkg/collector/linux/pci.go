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
	"log/slog"
	"regexp"

	"github.com/mchmarny/sysmind/pkg/collector/file"
	"github.com/mchmarny/sysmind/pkg/inventory"
	"github.com/mchmarny/sysmind/pkg/platform"
)

// nameWithID matches "Intel Corporation [8086]".
var nameWithID = regexp.MustCompile(`^(.*?)\s*\[([0-9a-fA-F]{4})\]$`)

// PCIProvider lists PCI devices with lspci.
type PCIProvider struct {
	Runner platform.Runner
}

// NewPCIProvider creates a PCI provider.
func NewPCIProvider(runner platform.Runner) *PCIProvider {
	return &PCIProvider{Runner: runner}
}

// Collect returns PCI devices in bus order.
func (p *PCIProvider) Collect(ctx context.Context) ([]inventory.Device, error) {
	out, err := p.Runner.Run(ctx, "lspci", "-vmmnn")
	if err != nil {
		return nil, fmt.Errorf("failed to list pci devices: %w", err)
	}
	return ParseLspci(string(out)), nil
}

// ParseLspci parses lspci -vmmnn output. Records without both a Vendor and a
// Device line are skipped.
func ParseLspci(out string) []inventory.Device {
	records := file.NewParser(file.WithDelimiter("\n\n"), file.WithSkipComments(false)).Lines(out)
	fields := file.NewParser(file.WithKVDelimiter(":"), file.WithSkipComments(false))

	devices := make([]inventory.Device, 0, len(records))
	for _, rec := range records {
		kv := fields.Map(rec)

		vendor, vok := kv["Vendor"]
		device, dok := kv["Device"]
		if !vok || !dok {
			slog.Debug("skipping incomplete lspci record", slog.String("record", rec))
			continue
		}

		d := inventory.Device{}
		d.VendorName, d.VendorID = splitNameID(vendor)
		d.DeviceName, d.DeviceID = splitNameID(device)
		devices = append(devices, d)
	}
	return devices
}

func splitNameID(s string) (name, id *string) {
	m := nameWithID.FindStringSubmatch(s)
	if m == nil {
		return inventory.StrPtr(s), nil
	}
	return inventory.StrPtr(m[1]), inventory.StrPtr(m[2])
}
