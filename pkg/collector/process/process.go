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

// Package process lists running processes with gopsutil. Stopped processes are
// excluded, and processes that exit while being read are skipped.
package process

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	gprocess "github.com/shirou/gopsutil/v3/process"

	"github.com/mchmarny/sysmind/pkg/inventory"
)

// Info is the raw state of one process.
type Info struct {
	PID     int32
	Name    string
	Cmdline []string
	Status  []string
}

// ListFunc returns raw process state.
type ListFunc func(ctx context.Context) ([]Info, error)

// Provider lists non-stopped processes.
type Provider struct {
	List ListFunc
}

// NewProvider creates a provider backed by gopsutil.
func NewProvider() *Provider {
	return &Provider{List: list}
}

// Collect returns processes ordered by PID.
func (p *Provider) Collect(ctx context.Context) ([]inventory.Process, error) {
	infos, err := p.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	procs := make([]inventory.Process, 0, len(infos))
	for _, i := range infos {
		if stopped(i.Status) {
			continue
		}
		cmd := i.Cmdline
		if cmd == nil {
			cmd = []string{}
		}
		procs = append(procs, inventory.Process{
			PID:     i.PID,
			Name:    i.Name,
			Cmdline: cmd,
		})
	}

	sort.Slice(procs, func(a, b int) bool {
		return procs[a].PID < procs[b].PID
	})

	return procs, nil
}

func stopped(status []string) bool {
	for _, s := range status {
		if s == gprocess.Stop {
			return true
		}
	}
	return false
}

// procReader is the subset of *gprocess.Process that list reads.
type procReader interface {
	NameWithContext(ctx context.Context) (string, error)
	CmdlineSliceWithContext(ctx context.Context) ([]string, error)
	StatusWithContext(ctx context.Context) ([]string, error)
}

func list(ctx context.Context) ([]Info, error) {
	ps, err := gprocess.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	logger := slog.Default()
	infos := make([]Info, 0, len(ps))
	for _, p := range ps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if info, ok := describe(ctx, logger, p.Pid, p); ok {
			infos = append(infos, info)
		}
	}

	return infos, nil
}

// describe reads one process. A process whose name cannot be read is
// skipped. Command line and status failures are logged and leave the field
// empty; kernel threads and restricted processes have no readable command
// line, and an unreadable status means the stopped filter cannot apply.
func describe(ctx context.Context, logger *slog.Logger, pid int32, p procReader) (Info, bool) {
	name, err := p.NameWithContext(ctx)
	if err != nil {
		logger.Debug("skipping unreadable process", slog.Int("pid", int(pid)), slog.String("error", err.Error()))
		return Info{}, false
	}

	cmdline, err := p.CmdlineSliceWithContext(ctx)
	if err != nil {
		logger.Debug("process command line unavailable",
			slog.Int("pid", int(pid)), slog.String("name", name), slog.String("error", err.Error()))
	}

	status, err := p.StatusWithContext(ctx)
	if err != nil {
		logger.Debug("process status unavailable, stopped filter skipped",
			slog.Int("pid", int(pid)), slog.String("name", name), slog.String("error", err.Error()))
	}

	return Info{PID: pid, Name: name, Cmdline: cmdline, Status: status}, true
}
