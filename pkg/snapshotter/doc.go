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

// Package snapshotter builds point-in-time host snapshots.
//
// # Overview
//
// Build queries every fact domain once through a collector.Selector and
// freezes the results into a Snapshot. Construction never fails: a domain
// that is unsupported on the host, or whose provider errors or panics,
// degrades to nil (scalars) or an empty list (collections) and is logged.
// Callers that need fresh data build a new snapshot.
//
// NodeSnapshotter wraps Build with platform detection, the default provider
// factory, and a serializer:
//
//	s := &snapshotter.NodeSnapshotter{
//	    Version:    "v1.0.0",
//	    Serializer: serializer.NewStdoutWriter(serializer.FormatYAML),
//	}
//	if err := s.Measure(ctx); err != nil {
//	    // only serialization can fail
//	}
//
// # Snapshot Structure
//
//	apiVersion: sysmind.dev/v1alpha1
//	kind: Snapshot
//	metadata:
//	  timestamp: 2025-01-15T10:30:00Z
//	  version: v1.0.0
//	  source-host: node-1
//	identity:
//	  name: linux
//	  kernelName: Linux
//	  kernelVersion: 6.8.0-45-generic
//	  architecture: amd64
//	  posixCompliant: true
//	resources:
//	  cpuCount: 8
//	  memoryBytes: 16777216000
//	network:
//	  primaryInterface: eth0
//	  primaryIP: 10.0.0.5
//	  connections:
//	    listening: [...]
//	    established: [...]
//	    closed: [...]
//	inventory:
//	  processes: [...]
//	  services: [...]
//	  pciDevices: [...]
//	  usbDevices: [...]
//	nameResolution:
//	  hosts: [...]
//	  resolver:
//	    nameservers: [10.0.0.2]
//
// # Sequencing
//
// Providers run one after another; the total duration is bounded by the sum
// of the per-command timeouts. Summarize renders a short human-readable
// digest for the CLI.
//
// # Observability
//
//   - sysmind_snapshot_build_duration_seconds
//   - sysmind_snapshot_builds_total
//   - sysmind_snapshot_serialize_total{status}
package snapshotter
