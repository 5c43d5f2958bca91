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

package snapshotter

import (
	"context"

	"github.com/mchmarny/sysmind/pkg/header"
	"github.com/mchmarny/sysmind/pkg/inventory"
	"github.com/mchmarny/sysmind/pkg/platform"
)

// FullAPIVersion is the apiVersion written into every snapshot header.
const FullAPIVersion = "sysmind.dev/v1alpha1"

// Snapshotter captures host state and writes it somewhere.
type Snapshotter interface {
	Measure(ctx context.Context) error
}

// Snapshot is a point-in-time inventory of one host. It is populated once by
// Build and never modified afterwards. Scalar facts that could not be
// determined are nil; collection facts that could not be determined are empty.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	Identity       Identity       `json:"identity" yaml:"identity"`
	Resources      Resources      `json:"resources" yaml:"resources"`
	Network        Network        `json:"network" yaml:"network"`
	Inventory      Inventory      `json:"inventory" yaml:"inventory"`
	NameResolution NameResolution `json:"nameResolution" yaml:"nameResolution"`
}

// Identity describes what the host is.
type Identity struct {
	// Name is the operating-system family.
	Name            platform.Family         `json:"name" yaml:"name"`
	PlatformVersion *string                 `json:"platformVersion" yaml:"platformVersion"`
	KernelName      *string                 `json:"kernelName" yaml:"kernelName"`
	KernelVersion   *string                 `json:"kernelVersion" yaml:"kernelVersion"`
	Architecture    string                  `json:"architecture" yaml:"architecture"`
	Hostname        *string                 `json:"hostname" yaml:"hostname"`
	POSIXCompliant  *bool                   `json:"posixCompliant" yaml:"posixCompliant"`
	Distribution    *inventory.Distribution `json:"distribution" yaml:"distribution"`
}

// Resources holds compute and storage totals.
type Resources struct {
	CPUCount        *int              `json:"cpuCount" yaml:"cpuCount"`
	CPUMaxFrequency *float64          `json:"cpuMaxFrequencyMhz" yaml:"cpuMaxFrequencyMhz"`
	MemoryBytes     *uint64           `json:"memoryBytes" yaml:"memoryBytes"`
	SwapBytes       *uint64           `json:"swapBytes" yaml:"swapBytes"`
	Mounts          []inventory.Mount `json:"mounts" yaml:"mounts"`
}

// Network holds addressing and socket state.
type Network struct {
	PrimaryInterface string                `json:"primaryInterface" yaml:"primaryInterface"`
	PrimaryIP        *string               `json:"primaryIP" yaml:"primaryIP"`
	PrimaryMAC       *string               `json:"primaryMAC" yaml:"primaryMAC"`
	Interfaces       []inventory.Interface `json:"interfaces" yaml:"interfaces"`
	Connections      inventory.Connections `json:"connections" yaml:"connections"`
}

// Inventory holds software and hardware lists.
type Inventory struct {
	Processes  []inventory.Process `json:"processes" yaml:"processes"`
	Services   []inventory.Service `json:"services" yaml:"services"`
	PCIDevices []inventory.Device  `json:"pciDevices" yaml:"pciDevices"`
	USBDevices []inventory.Device  `json:"usbDevices" yaml:"usbDevices"`
}

// NameResolution holds static and DNS name resolution settings.
type NameResolution struct {
	Hosts    []inventory.HostsEntry    `json:"hosts" yaml:"hosts"`
	Resolver *inventory.ResolverConfig `json:"resolver" yaml:"resolver"`
}
