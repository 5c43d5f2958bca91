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
	"os"
	"strings"

	"github.com/mchmarny/sysmind/pkg/platform"
)

const filePathProcVersion = "/proc/version"

// POSIXProvider reports whether the host offers a POSIX environment.
// Linux and macOS always do; Windows only under WSL.
type POSIXProvider struct {
	Family platform.Family
	// VersionPath is read on Windows to detect WSL.
	VersionPath string
}

// NewPOSIXProvider creates a POSIX provider for family.
func NewPOSIXProvider(family platform.Family) *POSIXProvider {
	return &POSIXProvider{Family: family, VersionPath: filePathProcVersion}
}

// Collect returns the compliance flag.
func (p *POSIXProvider) Collect(ctx context.Context) (*bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var v bool
	switch p.Family {
	case platform.FamilyLinux, platform.FamilyMacOS:
		v = true
	case platform.FamilyWindows:
		b, err := os.ReadFile(p.VersionPath)
		if err != nil {
			if os.IsNotExist(err) {
				v = false
				break
			}
			return nil, fmt.Errorf("failed to read %s: %w", p.VersionPath, err)
		}
		v = strings.Contains(strings.ToLower(string(b)), "microsoft")
	default:
		return nil, fmt.Errorf("no POSIX detection for family %s", p.Family)
	}

	return &v, nil
}
