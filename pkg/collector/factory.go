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
	"log/slog"

	"github.com/mchmarny/sysmind/pkg/collector/darwin"
	"github.com/mchmarny/sysmind/pkg/collector/hosts"
	"github.com/mchmarny/sysmind/pkg/collector/linux"
	"github.com/mchmarny/sysmind/pkg/collector/network"
	oscollector "github.com/mchmarny/sysmind/pkg/collector/os"
	"github.com/mchmarny/sysmind/pkg/collector/process"
	"github.com/mchmarny/sysmind/pkg/collector/resolver"
	"github.com/mchmarny/sysmind/pkg/collector/windows"
	"github.com/mchmarny/sysmind/pkg/defaults"
	"github.com/mchmarny/sysmind/pkg/platform"
)

// Factory creates the provider set for a platform family.
// This interface enables dependency injection for testing.
type Factory interface {
	Create(family platform.Family) *Providers
}

// DefaultFactory creates providers with production dependencies.
type DefaultFactory struct {
	// Runner executes external commands for command-backed providers.
	Runner platform.Runner
	Logger *slog.Logger
}

// NewDefaultFactory creates a factory whose commands are bounded by
// defaults.CommandTimeout.
func NewDefaultFactory() *DefaultFactory {
	return &DefaultFactory{
		Runner: platform.NewExecRunner(defaults.CommandTimeout),
	}
}

// Create returns the providers for family. Host facilities backed by gopsutil
// are present for every family; domains without an implementation are nil.
func (f *DefaultFactory) Create(family platform.Family) *Providers {
	runner := f.Runner
	if runner == nil {
		runner = platform.NewExecRunner(defaults.CommandTimeout)
	}

	ifaces := network.NewInterfacesProvider()
	p := &Providers{
		Processes:  process.NewProvider(),
		Hostname:   oscollector.NewHostnameProvider(),
		Resources:  oscollector.NewResourcesProvider(f.Logger),
		Mounts:     oscollector.NewMountsProvider(),
		Interfaces: ifaces,
		Interface:  ifaces,
	}

	if !family.Supported() {
		return p
	}

	p.Connections = network.NewConnectionsProvider()
	p.Hosts = hosts.NewProvider(family)
	p.Kernel = oscollector.NewKernelProvider(family)
	p.POSIX = oscollector.NewPOSIXProvider(family)

	switch family {
	case platform.FamilyLinux:
		p.Services = linux.NewServicesProvider(runner)
		p.PCIDevices = linux.NewPCIProvider(runner)
		p.USBDevices = linux.NewUSBProvider()
		p.Resolver = resolver.NewProvider()
		p.Distribution = oscollector.NewDistributionProvider(f.Logger)
	case platform.FamilyMacOS:
		profiler := runner
		if _, ok := runner.(*platform.ExecRunner); ok {
			profiler = platform.NewExecRunner(defaults.ProfilerTimeout)
		}
		p.Services = darwin.NewServicesProvider(runner)
		p.PCIDevices = darwin.NewPCIProvider(profiler)
		p.USBDevices = darwin.NewUSBProvider(profiler)
		p.Resolver = resolver.NewProvider()
	case platform.FamilyWindows:
		p.Services = windows.NewServicesProvider(runner)
		p.PCIDevices = windows.NewPCIProvider(runner)
		p.USBDevices = windows.NewUSBProvider(runner)
	}

	return p
}
