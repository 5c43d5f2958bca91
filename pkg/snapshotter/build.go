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
	"log/slog"
	"runtime"
	"time"

	"github.com/mchmarny/sysmind/pkg/collector"
	"github.com/mchmarny/sysmind/pkg/header"
	"github.com/mchmarny/sysmind/pkg/inventory"
	"github.com/mchmarny/sysmind/pkg/logging"
	"github.com/mchmarny/sysmind/pkg/platform"
)

// BuildOptions configures Build.
type BuildOptions struct {
	// Selector dispatches to the family's providers. Required.
	Selector *collector.Selector

	// PrimaryInterface overrides the family's conventional interface name.
	PrimaryInterface string

	// Version is recorded in the header metadata.
	Version string

	Logger *slog.Logger
}

// Build queries every fact domain once, in sequence, and returns the frozen
// result. It never fails: unavailable facts are nil or empty.
func Build(ctx context.Context, opts BuildOptions) *Snapshot {
	logger := logging.OrDefault(opts.Logger)
	sel := opts.Selector
	if sel == nil {
		sel = collector.NewSelector(platform.FamilyOther, nil, collector.WithLogger(logger))
	}

	start := time.Now()
	defer func() {
		snapshotBuildDuration.Observe(time.Since(start).Seconds())
		snapshotBuildsTotal.Inc()
	}()

	family := sel.Family()
	logger.Debug("building snapshot", slog.String("family", family.String()))

	snap := &Snapshot{}
	snap.Init(header.KindSnapshot, FullAPIVersion, opts.Version)

	// identity
	snap.Identity = Identity{
		Name:         family,
		Architecture: runtime.GOARCH,
	}
	if k := sel.Kernel(ctx); k != nil {
		snap.Identity.KernelName = inventory.StrPtr(k.Name)
		snap.Identity.KernelVersion = inventory.StrPtr(k.Version)
		snap.Identity.PlatformVersion = inventory.StrPtr(k.PlatformVersion)
	}
	snap.Identity.Hostname = sel.Hostname(ctx)
	snap.Identity.POSIXCompliant = sel.POSIX(ctx)
	snap.Identity.Distribution = sel.Distribution(ctx)

	// resources
	if r := sel.Resources(ctx); r != nil {
		snap.Resources.CPUCount = r.CPUCount
		snap.Resources.CPUMaxFrequency = r.CPUMaxFrequency
		snap.Resources.MemoryBytes = r.MemoryBytes
		snap.Resources.SwapBytes = r.SwapBytes
	}
	snap.Resources.Mounts = sel.Mounts(ctx)

	// network
	primary := opts.PrimaryInterface
	if primary == "" {
		primary = family.PrimaryInterface()
	}
	snap.Network.PrimaryInterface = primary
	if iface := sel.Interface(ctx, primary); iface != nil {
		snap.Network.PrimaryIP = iface.IP
		snap.Network.PrimaryMAC = iface.MAC
	}
	snap.Network.Interfaces = sel.Interfaces(ctx)
	if c := sel.Connections(ctx); c != nil {
		snap.Network.Connections = *c
	} else {
		snap.Network.Connections = *inventory.NewConnections()
	}

	// inventory
	snap.Inventory.Processes = sel.Processes(ctx)
	snap.Inventory.Services = sel.Services(ctx)
	snap.Inventory.PCIDevices = sel.PCIDevices(ctx)
	snap.Inventory.USBDevices = sel.USBDevices(ctx)

	// name resolution
	snap.NameResolution.Hosts = sel.Hosts(ctx)
	snap.NameResolution.Resolver = sel.Resolver(ctx)

	if snap.Identity.Hostname != nil {
		snap.SetMetadata(header.MetaSourceHost, *snap.Identity.Hostname)
	}

	logger.Info("snapshot built",
		slog.String("family", family.String()),
		slog.Int("processes", len(snap.Inventory.Processes)),
		slog.Int("services", len(snap.Inventory.Services)),
		slog.Int("connections", snap.Network.Connections.Total()),
		slog.Duration("duration", time.Since(start)))

	return snap
}
