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

package defaults

import "time"

// Command timeouts for external command invocations.
const (
	// CommandTimeout bounds every external command (lspci, systemctl, sysctl, ...).
	// Callers should respect parent context deadlines when shorter.
	CommandTimeout = 10 * time.Second

	// ProfilerTimeout bounds macOS system_profiler, which is considerably slower
	// than the other listing commands.
	ProfilerTimeout = 30 * time.Second
)

// Snapshot timeouts.
const (
	// SnapshotTimeout is the upper bound for building a complete host snapshot.
	SnapshotTimeout = 2 * time.Minute

	// SnapshotHandlerTimeout is the timeout for the snapshot HTTP handler.
	SnapshotHandlerTimeout = 2*time.Minute + 10*time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// Must exceed SnapshotHandlerTimeout.
	ServerWriteTimeout = 3 * time.Minute

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Output timeouts for remote serializer sinks.
const (
	// ConfigMapWriteTimeout is the timeout for writing to ConfigMaps.
	ConfigMapWriteTimeout = 30 * time.Second

	// OCIPushTimeout is the timeout for pushing a document to an OCI registry.
	OCIPushTimeout = 2 * time.Minute
)

// Tunable store locations.
const (
	// SysctlConfigPath is the configuration file the tunable store persists to.
	SysctlConfigPath = "/etc/sysctl.conf"

	// SysctlBinary is the preferred sysctl location; PATH lookup is used when absent.
	SysctlBinary = "/sbin/sysctl"
)
