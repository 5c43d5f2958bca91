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

	"github.com/shirou/gopsutil/v3/host"

	"github.com/mchmarny/sysmind/pkg/inventory"
	"github.com/mchmarny/sysmind/pkg/platform"
)

// InfoFunc returns host information.
type InfoFunc func(ctx context.Context) (*host.InfoStat, error)

func defaultInfo(ctx context.Context) (*host.InfoStat, error) {
	return host.InfoWithContext(ctx)
}

// KernelProvider reports the running kernel.
type KernelProvider struct {
	Family platform.Family
	Info   InfoFunc
}

// NewKernelProvider creates a kernel provider backed by gopsutil.
func NewKernelProvider(family platform.Family) *KernelProvider {
	return &KernelProvider{Family: family, Info: defaultInfo}
}

// Collect returns the kernel name and version. On Windows the version is the
// platform version since there is no separate kernel release string.
func (p *KernelProvider) Collect(ctx context.Context) (*inventory.KernelInfo, error) {
	info, err := p.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read host info: %w", err)
	}

	name := p.Family.KernelName()
	if name == "" {
		name = info.OS
	}

	k := &inventory.KernelInfo{
		Name:            name,
		Version:         info.KernelVersion,
		PlatformVersion: info.PlatformVersion,
	}

	if p.Family == platform.FamilyWindows {
		k.Version = info.PlatformVersion
	}

	return k, nil
}

// HostnameProvider reports the host name.
type HostnameProvider struct {
	Info InfoFunc
}

// NewHostnameProvider creates a hostname provider backed by gopsutil.
func NewHostnameProvider() *HostnameProvider {
	return &HostnameProvider{Info: defaultInfo}
}

// Collect returns the host name.
func (p *HostnameProvider) Collect(ctx context.Context) (*string, error) {
	info, err := p.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read host info: %w", err)
	}
	if info.Hostname == "" {
		return nil, fmt.Errorf("host name is empty")
	}
	return inventory.Ptr(info.Hostname), nil
}
