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

// Package defaults provides centralized configuration constants for sysmind.
//
// This package defines timeout values and file locations used across the
// codebase. Centralizing these values ensures consistency and makes tuning
// easier.
//
// # Timeout Categories
//
//   - Command timeouts: every external command a provider or the tunable store runs
//   - Snapshot timeouts: the upper bound on building one host snapshot
//   - Server timeouts: HTTP server configuration
//   - Output timeouts: ConfigMap and OCI registry writes
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CommandTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
//   - Commands: 10s default, respects parent context deadline when shorter
//   - Snapshot: bounded by the sum of provider timeouts, capped at 2m
//   - Server shutdown: 30s for graceful shutdown
package defaults
