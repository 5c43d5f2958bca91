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
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mchmarny/sysmind/pkg/collector/file"
	"github.com/mchmarny/sysmind/pkg/inventory"
	"github.com/mchmarny/sysmind/pkg/logging"
)

var (
	filePathReleasePrimary  = "/etc/os-release"
	filePathReleaseFallback = "/usr/lib/os-release"
	fileKVDelRelease        = "="
)

// Package managers keyed by distribution family names found in ID or ID_LIKE.
var packageManagers = []struct {
	manager  string
	families []string
}{
	{"apt", []string{"debian", "ubuntu"}},
	{"yum", []string{"rhel", "fedora", "centos"}},
}

// DistributionProvider reads Linux distribution identity from os-release.
type DistributionProvider struct {
	// Paths are tried in order; the first existing file is parsed.
	Paths  []string
	Logger *slog.Logger
}

// NewDistributionProvider creates a provider reading the standard locations.
func NewDistributionProvider(logger *slog.Logger) *DistributionProvider {
	return &DistributionProvider{
		Paths:  []string{filePathReleasePrimary, filePathReleaseFallback},
		Logger: logger,
	}
}

// Collect returns the distribution. The package manager is nil when the
// distribution family is not recognized.
func (p *DistributionProvider) Collect(ctx context.Context) (*inventory.Distribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := ""
	for _, candidate := range p.Paths {
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
			break
		}
	}
	if path == "" {
		return nil, fmt.Errorf("no os-release file found in %v", p.Paths)
	}

	parser := file.NewParser(
		file.WithKVDelimiter(fileKVDelRelease),
		file.WithVTrimChars(`"'`),
		file.WithSkipEmptyValues(true),
	)

	params, err := parser.GetMap(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read os release from %s: %w", path, err)
	}

	d := &inventory.Distribution{
		ID:   params["ID"],
		Name: params["NAME"],
		Like: strings.Fields(params["ID_LIKE"]),
	}

	if pm := PackageManager(d.ID, d.Like); pm != "" {
		d.PackageManager = &pm
	} else {
		logging.OrDefault(p.Logger).Warn("unrecognized distribution, package manager unknown",
			slog.String("id", d.ID),
			slog.Any("like", d.Like))
	}

	return d, nil
}

// PackageManager maps a distribution ID and its ID_LIKE list to a package
// manager name, or empty when none matches.
func PackageManager(id string, like []string) string {
	names := append([]string{strings.ToLower(id)}, like...)
	for _, pm := range packageManagers {
		for _, n := range names {
			for _, f := range pm.families {
				if strings.EqualFold(n, f) {
					return pm.manager
				}
			}
		}
	}
	return ""
}
