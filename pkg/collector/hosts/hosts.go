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

// Package hosts reads the static host table.
package hosts

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/mchmarny/sysmind/pkg/collector/file"
	"github.com/mchmarny/sysmind/pkg/inventory"
	"github.com/mchmarny/sysmind/pkg/platform"
)

const filePathHosts = "/etc/hosts"

// Provider parses a hosts file.
type Provider struct {
	Path string
}

// NewProvider creates a provider for the family's hosts file location.
func NewProvider(family platform.Family) *Provider {
	return &Provider{Path: DefaultPath(family)}
}

// DefaultPath returns the hosts file location for family.
func DefaultPath(family platform.Family) string {
	if family == platform.FamilyWindows {
		root := os.Getenv("SystemRoot")
		if root == "" {
			root = `C:\Windows`
		}
		return filepath.Join(root, "System32", "drivers", "etc", "hosts")
	}
	return filePathHosts
}

// Collect returns one entry per valid line, in file order. Comments, blank
// lines, lines with fewer than two fields, and lines whose first field is not
// an IP address are skipped.
func (p *Provider) Collect(ctx context.Context) ([]inventory.HostsEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := file.NewParser(file.WithInlineComments(true))

	lines, err := parser.GetLines(p.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hosts file: %w", err)
	}

	return Parse(lines), nil
}

// Parse converts hosts file lines into entries.
func Parse(lines []string) []inventory.HostsEntry {
	entries := make([]inventory.HostsEntry, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			slog.Debug("skipping hosts line without names", slog.String("line", line))
			continue
		}

		ip := fields[0]
		if i := strings.IndexByte(ip, '%'); i >= 0 {
			ip = ip[:i]
		}
		if net.ParseIP(ip) == nil {
			slog.Debug("skipping hosts line with invalid address", slog.String("line", line))
			continue
		}

		entries = append(entries, inventory.HostsEntry{
			IP:    fields[0],
			Names: fields[1:],
		})
	}
	return entries
}
