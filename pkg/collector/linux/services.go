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
	"strings"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/mchmarny/sysmind/pkg/collector/file"
	"github.com/mchmarny/sysmind/pkg/inventory"
	"github.com/mchmarny/sysmind/pkg/platform"
)

// UnitLister returns running service units.
type UnitLister func(ctx context.Context) ([]dbus.UnitStatus, error)

// ServicesProvider lists running systemd services.
type ServicesProvider struct {
	Units  UnitLister
	Runner platform.Runner
}

// NewServicesProvider creates a provider using D-Bus with a systemctl fallback.
func NewServicesProvider(runner platform.Runner) *ServicesProvider {
	return &ServicesProvider{
		Units:  listRunningUnits,
		Runner: runner,
	}
}

// Collect returns running services.
func (p *ServicesProvider) Collect(ctx context.Context) ([]inventory.Service, error) {
	if p.Units != nil {
		units, err := p.Units(ctx)
		if err == nil {
			return fromUnits(units), nil
		}
		slog.Debug("systemd bus unavailable, falling back to systemctl", slog.String("error", err.Error()))
	}

	if p.Runner == nil {
		return nil, fmt.Errorf("no systemd bus and no command runner")
	}

	out, err := p.Runner.Run(ctx, "systemctl", "list-units", "--type=service",
		"--state=running", "--no-legend", "--plain", "--no-pager")
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	return ParseSystemctl(string(out)), nil
}

func listRunningUnits(ctx context.Context) ([]dbus.UnitStatus, error) {
	conn, err := dbus.NewSystemdConnectionContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to systemd: %w", err)
	}
	defer conn.Close()

	units, err := conn.ListUnitsByPatternsContext(ctx, []string{"running"}, []string{"*.service"})
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	return units, nil
}

func fromUnits(units []dbus.UnitStatus) []inventory.Service {
	services := make([]inventory.Service, 0, len(units))
	for _, u := range units {
		if !strings.HasSuffix(u.Name, ".service") {
			continue
		}
		services = append(services, inventory.Service{
			Name:        u.Name,
			Status:      u.SubState,
			Description: inventory.StrPtr(u.Description),
		})
	}
	return services
}

// ParseSystemctl parses list-units output. Lines with fewer than four
// columns and the UNIT header are skipped.
func ParseSystemctl(out string) []inventory.Service {
	lines := file.NewParser(file.WithSkipComments(false)).Lines(out)

	services := make([]inventory.Service, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(strings.TrimPrefix(line, "●"))
		if len(fields) < 4 {
			slog.Debug("skipping systemctl line", slog.String("line", line))
			continue
		}
		if fields[0] == "UNIT" {
			continue
		}

		services = append(services, inventory.Service{
			Name:        fields[0],
			Status:      fields[3],
			Description: inventory.StrPtr(strings.Join(fields[4:], " ")),
		})
	}
	return services
}
