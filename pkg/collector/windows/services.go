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

package windows

import (
	"context"
	"fmt"

	"github.com/mchmarny/sysmind/pkg/inventory"
	"github.com/mchmarny/sysmind/pkg/platform"
)

const scriptServices = "Get-Service | Select-Object Name,Status,DisplayName | ConvertTo-Csv -NoTypeInformation"

// ServicesProvider lists Windows services.
type ServicesProvider struct {
	Runner platform.Runner
}

// NewServicesProvider creates a PowerShell-backed provider.
func NewServicesProvider(runner platform.Runner) *ServicesProvider {
	return &ServicesProvider{Runner: runner}
}

// Collect returns every service with its status and display name.
func (p *ServicesProvider) Collect(ctx context.Context) ([]inventory.Service, error) {
	out, err := runPowerShell(ctx, p.Runner, scriptServices)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return ParseServices(out)
}

// ParseServices converts Get-Service CSV into services. Rows without a name
// are skipped.
func ParseServices(data []byte) ([]inventory.Service, error) {
	rows, err := parseCSV(data)
	if err != nil {
		return nil, err
	}

	services := make([]inventory.Service, 0, len(rows))
	for _, row := range rows {
		if row["Name"] == "" {
			continue
		}
		services = append(services, inventory.Service{
			Name:        row["Name"],
			Status:      row["Status"],
			Description: inventory.StrPtr(row["DisplayName"]),
		})
	}
	return services, nil
}
