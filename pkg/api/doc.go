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

// Package api wires the sysmind daemon: it builds the tunable store and the
// snapshotter from configuration and exposes them over pkg/server.
//
// # Endpoints
//
// Application endpoints (rate limited):
//
//	GET  /v1/snapshot               fresh host snapshot
//	GET  /v1/tunables[?filter=p]    tunables in enumeration order; filter repeats
//	GET  /v1/tunables/{name}        one tunable, 404 when unknown
//	PUT  /v1/tunables/{name}        body {"value": "..."}; 403 when read-only
//	POST /v1/sync                   rewrite the config file; 403 when read-only,
//	                                409 when the store is write-through
//
// System endpoints (no rate limiting): GET /health, GET /ready, GET /metrics.
//
// Writes are refused unless the configuration sets server.readOnly to false
// (sysmind serve --allow-writes). A PUT always updates the in-memory value;
// whether the change reached the config file and the kernel is reported
// only through logs and the sysmind_tunable_writes_total metric.
//
// # Example
//
//	curl -s localhost:8080/v1/tunables?filter=net.ipv4.*
//	curl -s -X PUT localhost:8080/v1/tunables/vm.swappiness -d '{"value":"10"}'
//
// # Configuration
//
// See pkg/config. PORT and SHUTDOWN_TIMEOUT_SECONDS are honored.
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/sysmind/pkg/api.version=1.0.0'"
package api
