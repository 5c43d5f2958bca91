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

package network

import (
	"context"
	"fmt"
	"net"
	"strings"

	gnet "github.com/shirou/gopsutil/v3/net"

	apperrors "github.com/mchmarny/sysmind/pkg/errors"
	"github.com/mchmarny/sysmind/pkg/inventory"
)

// InterfacesFunc enumerates network interfaces.
type InterfacesFunc func(ctx context.Context) (gnet.InterfaceStatList, error)

// InterfacesProvider enumerates interfaces and resolves them by name.
type InterfacesProvider struct {
	List InterfacesFunc
}

// NewInterfacesProvider creates a provider backed by gopsutil.
func NewInterfacesProvider() *InterfacesProvider {
	return &InterfacesProvider{List: gnet.InterfacesWithContext}
}

// Collect returns every interface. Interfaces without an IPv4 address or a
// hardware address carry nil for that field.
func (p *InterfacesProvider) Collect(ctx context.Context) ([]inventory.Interface, error) {
	stats, err := p.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interfaces: %w", err)
	}

	ifaces := make([]inventory.Interface, 0, len(stats))
	for _, s := range stats {
		ifaces = append(ifaces, toInterface(s))
	}
	return ifaces, nil
}

// Lookup returns the interface with the given name.
func (p *InterfacesProvider) Lookup(ctx context.Context, name string) (*inventory.Interface, error) {
	stats, err := p.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interfaces: %w", err)
	}

	for _, s := range stats {
		if s.Name == name {
			i := toInterface(s)
			return &i, nil
		}
	}

	return nil, apperrors.New(apperrors.ErrCodeNotFound, fmt.Sprintf("interface %q not found", name)).
		With("interface", name).
		With("available", len(stats))
}

func toInterface(s gnet.InterfaceStat) inventory.Interface {
	return inventory.Interface{
		Name: s.Name,
		IP:   firstIPv4(s.Addrs),
		MAC:  inventory.StrPtr(strings.ToLower(s.HardwareAddr)),
	}
}

// firstIPv4 returns the first IPv4 address without its prefix length.
func firstIPv4(addrs gnet.InterfaceAddrList) *string {
	for _, a := range addrs {
		ip := a.Addr
		if i := strings.IndexByte(ip, '/'); i >= 0 {
			ip = ip[:i]
		}
		parsed := net.ParseIP(ip)
		if parsed == nil || parsed.To4() == nil {
			continue
		}
		return inventory.Ptr(parsed.String())
	}
	return nil
}
