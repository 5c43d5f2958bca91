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

package os

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/mchmarny/sysmind/pkg/inventory"
	"github.com/mchmarny/sysmind/pkg/logging"
)

// ResourcesProvider reports CPU and memory totals.
type ResourcesProvider struct {
	Counts  func(ctx context.Context) (int, error)
	CPUInfo func(ctx context.Context) ([]cpu.InfoStat, error)
	Memory  func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	Swap    func(ctx context.Context) (*mem.SwapMemoryStat, error)

	// Logger receives one entry per failed source. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewResourcesProvider creates a provider backed by gopsutil.
func NewResourcesProvider(logger *slog.Logger) *ResourcesProvider {
	return &ResourcesProvider{
		Logger: logger,
		Counts: func(ctx context.Context) (int, error) {
			return cpu.CountsWithContext(ctx, true)
		},
		CPUInfo: cpu.InfoWithContext,
		Memory:  mem.VirtualMemoryWithContext,
		Swap:    mem.SwapMemoryWithContext,
	}
}

// Collect returns resource totals. Fields whose source fails are left nil
// and logged; an error is returned only when every source fails.
func (p *ResourcesProvider) Collect(ctx context.Context) (*inventory.Resources, error) {
	r := &inventory.Resources{}
	var errs []error

	if n, err := p.Counts(ctx); err != nil {
		errs = append(errs, fmt.Errorf("cpu count: %w", err))
	} else if n > 0 {
		r.CPUCount = inventory.Ptr(n)
	}

	if infos, err := p.CPUInfo(ctx); err != nil {
		errs = append(errs, fmt.Errorf("cpu info: %w", err))
	} else {
		var maxMhz float64
		for _, i := range infos {
			if i.Mhz > maxMhz {
				maxMhz = i.Mhz
			}
		}
		if maxMhz > 0 {
			r.CPUMaxFrequency = inventory.Ptr(maxMhz)
		}
	}

	if vm, err := p.Memory(ctx); err != nil {
		errs = append(errs, fmt.Errorf("memory: %w", err))
	} else if vm != nil {
		r.MemoryBytes = inventory.Ptr(vm.Total)
	}

	if sw, err := p.Swap(ctx); err != nil {
		errs = append(errs, fmt.Errorf("swap: %w", err))
	} else if sw != nil {
		r.SwapBytes = inventory.Ptr(sw.Total)
	}

	if len(errs) == 4 {
		return nil, errors.Join(errs...)
	}

	logger := logging.OrDefault(p.Logger)
	for _, err := range errs {
		logger.Error("resource fact unavailable",
			slog.String("domain", "resources"),
			slog.String("error", err.Error()))
	}

	return r, nil
}

// MountsProvider lists mounted filesystems.
type MountsProvider struct {
	Partitions func(ctx context.Context, all bool) ([]disk.PartitionStat, error)
}

// NewMountsProvider creates a provider backed by gopsutil.
func NewMountsProvider() *MountsProvider {
	return &MountsProvider{Partitions: disk.PartitionsWithContext}
}

// Collect returns every mount, including pseudo filesystems.
func (p *MountsProvider) Collect(ctx context.Context) ([]inventory.Mount, error) {
	parts, err := p.Partitions(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list partitions: %w", err)
	}

	mounts := make([]inventory.Mount, 0, len(parts))
	for _, part := range parts {
		mounts = append(mounts, inventory.Mount{
			Device:     part.Device,
			Mountpoint: part.Mountpoint,
			FSType:     part.Fstype,
			Options:    strings.Join(part.Opts, ","),
		})
	}
	return mounts, nil
}
