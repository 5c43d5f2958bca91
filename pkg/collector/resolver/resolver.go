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

// Package resolver reads the system DNS resolver configuration with miekg/dns.
package resolver

import (
	"context"
	"fmt"

	"github.com/miekg/dns"

	"github.com/mchmarny/sysmind/pkg/inventory"
)

const filePathResolvConf = "/etc/resolv.conf"

// Provider reads a resolv.conf style file.
type Provider struct {
	Path string
}

// NewProvider creates a provider for /etc/resolv.conf.
func NewProvider() *Provider {
	return &Provider{Path: filePathResolvConf}
}

// Collect returns the resolver configuration.
func (p *Provider) Collect(ctx context.Context) (*inventory.ResolverConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := dns.ClientConfigFromFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resolver config %s: %w", p.Path, err)
	}

	rc := &inventory.ResolverConfig{
		Nameservers: cfg.Servers,
		Search:      cfg.Search,
		Port:        cfg.Port,
		Ndots:       cfg.Ndots,
		Timeout:     cfg.Timeout,
		Attempts:    cfg.Attempts,
	}
	if rc.Nameservers == nil {
		rc.Nameservers = []string{}
	}
	if rc.Search == nil {
		rc.Search = []string{}
	}

	return rc, nil
}
