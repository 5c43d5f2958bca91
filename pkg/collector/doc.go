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

// Package collector selects and invokes the fact providers for the host's
// operating-system family.
//
// # Overview
//
// Each fact domain (services, PCI devices, connections, ...) has one provider
// per platform family. The Factory builds a Providers set for a family once;
// the Selector then invokes the matching provider for each domain and applies
// a uniform fail-soft policy:
//
//   - no provider for the family: warn, return an empty list or nil
//   - provider error: log, return an empty list or nil
//   - provider panic: recover, log, return an empty list or nil
//
// A single failing domain never prevents the rest of a snapshot from being built.
//
// # Usage
//
//	family := platform.Detect()
//	providers := collector.NewDefaultFactory().Create(family)
//	sel := collector.NewSelector(family, providers, collector.WithLogger(logger))
//
//	services := sel.Services(ctx)   // never nil
//	resolver := sel.Resolver(ctx)   // nil when unavailable
//
// # Providers
//
// Providers live in subpackages (linux, darwin, windows, network, process,
// hosts, resolver, os). They return errors and never log failures themselves.
// Any type with a matching Collect method satisfies ListProvider or
// ValueProvider; ListFunc and ValueFunc adapt plain functions.
//
// # Metrics
//
// Every invocation records sysmind_provider_duration_seconds{domain}; failures
// increment sysmind_provider_failures_total{domain,reason} where reason is one
// of unsupported, error, or panic.
package collector
