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

package collector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/mchmarny/sysmind/pkg/errors"
	"github.com/mchmarny/sysmind/pkg/inventory"
	"github.com/mchmarny/sysmind/pkg/logging"
	"github.com/mchmarny/sysmind/pkg/platform"
)

const (
	reasonUnsupported = "unsupported"
	reasonError       = "error"
	reasonPanic       = "panic"
)

// Selector invokes the provider matching the detected family for each domain.
// Every method is fail-soft: list methods return a non-nil, possibly empty
// slice and value methods return nil when the fact is unavailable.
type Selector struct {
	family    platform.Family
	providers *Providers
	logger    *slog.Logger
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithLogger sets the logger used for fail-soft diagnostics.
func WithLogger(l *slog.Logger) SelectorOption {
	return func(s *Selector) {
		s.logger = l
	}
}

// NewSelector creates a selector for family. A nil providers set behaves as
// a family with no implementations.
func NewSelector(family platform.Family, providers *Providers, opts ...SelectorOption) *Selector {
	if providers == nil {
		providers = &Providers{}
	}
	s := &Selector{
		family:    family,
		providers: providers,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.OrDefault(s.logger)
	return s
}

// Family returns the platform family the selector dispatches for.
func (s *Selector) Family() platform.Family {
	return s.family
}

func (s *Selector) Connections(ctx context.Context) *inventory.Connections {
	return selectValue(ctx, s, DomainConnections, s.providers.Connections)
}

func (s *Selector) Services(ctx context.Context) []inventory.Service {
	return selectList(ctx, s, DomainServices, s.providers.Services)
}

func (s *Selector) Processes(ctx context.Context) []inventory.Process {
	return selectList(ctx, s, DomainProcesses, s.providers.Processes)
}

func (s *Selector) PCIDevices(ctx context.Context) []inventory.Device {
	return selectList(ctx, s, DomainPCIDevices, s.providers.PCIDevices)
}

func (s *Selector) USBDevices(ctx context.Context) []inventory.Device {
	return selectList(ctx, s, DomainUSBDevices, s.providers.USBDevices)
}

func (s *Selector) Hosts(ctx context.Context) []inventory.HostsEntry {
	return selectList(ctx, s, DomainHosts, s.providers.Hosts)
}

func (s *Selector) Resolver(ctx context.Context) *inventory.ResolverConfig {
	return selectValue(ctx, s, DomainResolver, s.providers.Resolver)
}

func (s *Selector) Kernel(ctx context.Context) *inventory.KernelInfo {
	return selectValue(ctx, s, DomainKernel, s.providers.Kernel)
}

// POSIX reports POSIX compliance, nil when it cannot be determined.
func (s *Selector) POSIX(ctx context.Context) *bool {
	return selectValue(ctx, s, DomainPOSIX, s.providers.POSIX)
}

func (s *Selector) Distribution(ctx context.Context) *inventory.Distribution {
	return selectValue(ctx, s, DomainDistribution, s.providers.Distribution)
}

func (s *Selector) Hostname(ctx context.Context) *string {
	return selectValue(ctx, s, DomainHostname, s.providers.Hostname)
}

func (s *Selector) Resources(ctx context.Context) *inventory.Resources {
	return selectValue(ctx, s, DomainResources, s.providers.Resources)
}

func (s *Selector) Mounts(ctx context.Context) []inventory.Mount {
	return selectList(ctx, s, DomainMounts, s.providers.Mounts)
}

func (s *Selector) Interfaces(ctx context.Context) []inventory.Interface {
	return selectList(ctx, s, DomainInterfaces, s.providers.Interfaces)
}

// Interface looks up a single interface by name. An unknown name yields nil.
func (s *Selector) Interface(ctx context.Context, name string) *inventory.Interface {
	var p ValueProvider[inventory.Interface]
	if s.providers.Interface != nil && name != "" {
		lookup := s.providers.Interface
		p = ValueFunc[inventory.Interface](func(ctx context.Context) (*inventory.Interface, error) {
			return lookup.Lookup(ctx, name)
		})
	}
	return selectValue(ctx, s, DomainInterface, p)
}

func selectList[T any](ctx context.Context, s *Selector, d Domain, p ListProvider[T]) (out []T) {
	out = []T{}

	if p == nil {
		s.unsupported(d)
		return out
	}

	defer s.recover(d, func() { out = []T{} })

	start := time.Now()
	res, err := p.Collect(ctx)
	providerDuration.WithLabelValues(string(d)).Observe(time.Since(start).Seconds())

	if err != nil {
		s.failed(d, err)
		return out
	}

	if res == nil {
		return out
	}

	return res
}

func selectValue[T any](ctx context.Context, s *Selector, d Domain, p ValueProvider[T]) (out *T) {
	if p == nil {
		s.unsupported(d)
		return nil
	}

	defer s.recover(d, func() { out = nil })

	start := time.Now()
	res, err := p.Collect(ctx)
	providerDuration.WithLabelValues(string(d)).Observe(time.Since(start).Seconds())

	if err != nil {
		s.failed(d, err)
		return nil
	}

	return res
}

func (s *Selector) unsupported(d Domain) {
	providerFailures.WithLabelValues(string(d), reasonUnsupported).Inc()
	s.logger.Warn("unsupported platform for fact domain",
		slog.String("domain", string(d)),
		slog.String("family", s.family.String()))
}

func (s *Selector) failed(d Domain, err error) {
	providerFailures.WithLabelValues(string(d), reasonError).Inc()

	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeUnsupported:
		s.logger.Warn("fact unavailable",
			slog.String("domain", string(d)),
			slog.String("family", s.family.String()),
			slog.String("error", err.Error()))
	default:
		s.logger.Error("provider failed",
			slog.String("domain", string(d)),
			slog.String("family", s.family.String()),
			slog.String("error", err.Error()))
	}
}

func (s *Selector) recover(d Domain, reset func()) {
	r := recover()
	if r == nil {
		return
	}
	reset()
	providerFailures.WithLabelValues(string(d), reasonPanic).Inc()
	s.logger.Error("provider panicked",
		slog.String("domain", string(d)),
		slog.String("family", s.family.String()),
		slog.String("panic", fmt.Sprint(r)))
}
