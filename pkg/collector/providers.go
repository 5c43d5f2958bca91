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

package collector

import (
	"context"

	"github.com/mchmarny/sysmind/pkg/inventory"
)

// Domain names one category of host facts.
type Domain string

const (
	DomainConnections  Domain = "connections"
	DomainServices     Domain = "services"
	DomainProcesses    Domain = "processes"
	DomainPCIDevices   Domain = "pci-devices"
	DomainUSBDevices   Domain = "usb-devices"
	DomainHosts        Domain = "hosts"
	DomainResolver     Domain = "resolver"
	DomainKernel       Domain = "kernel"
	DomainPOSIX        Domain = "posix"
	DomainDistribution Domain = "distribution"
	DomainHostname     Domain = "hostname"
	DomainResources    Domain = "resources"
	DomainMounts       Domain = "mounts"
	DomainInterfaces   Domain = "interfaces"
	DomainInterface    Domain = "interface"
)

// ListProvider produces a collection fact.
type ListProvider[T any] interface {
	Collect(ctx context.Context) ([]T, error)
}

// ValueProvider produces a scalar fact. A nil result means unavailable.
type ValueProvider[T any] interface {
	Collect(ctx context.Context) (*T, error)
}

// InterfaceLookup resolves a single network interface by name.
type InterfaceLookup interface {
	Lookup(ctx context.Context, name string) (*inventory.Interface, error)
}

// ListFunc adapts a function to ListProvider.
type ListFunc[T any] func(ctx context.Context) ([]T, error)

// Collect calls f.
func (f ListFunc[T]) Collect(ctx context.Context) ([]T, error) {
	return f(ctx)
}

// ValueFunc adapts a function to ValueProvider.
type ValueFunc[T any] func(ctx context.Context) (*T, error)

// Collect calls f.
func (f ValueFunc[T]) Collect(ctx context.Context) (*T, error) {
	return f(ctx)
}

// Providers is the set of fact providers for one platform family.
// A nil field means the family has no implementation for that domain.
type Providers struct {
	Connections  ValueProvider[inventory.Connections]
	Services     ListProvider[inventory.Service]
	Processes    ListProvider[inventory.Process]
	PCIDevices   ListProvider[inventory.Device]
	USBDevices   ListProvider[inventory.Device]
	Hosts        ListProvider[inventory.HostsEntry]
	Resolver     ValueProvider[inventory.ResolverConfig]
	Kernel       ValueProvider[inventory.KernelInfo]
	POSIX        ValueProvider[bool]
	Distribution ValueProvider[inventory.Distribution]

	// Host facilities available on every family gopsutil supports.
	Hostname   ValueProvider[string]
	Resources  ValueProvider[inventory.Resources]
	Mounts     ListProvider[inventory.Mount]
	Interfaces ListProvider[inventory.Interface]
	Interface  InterfaceLookup
}
