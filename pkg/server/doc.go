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

// Package server provides the HTTP server used by the sysmind daemon.
//
// The server owns lifecycle, middleware and system endpoints. Application
// routes are supplied by the caller as a pattern to handler map and are
// registered on a Go 1.22 ServeMux, so patterns may carry a method and
// wildcards ("GET /v1/tunables/{name}").
//
// # Usage
//
//	s := server.New(
//	    server.WithName("sysmindd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "GET /v1/snapshot": h.Snapshot,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until ctx is cancelled or SIGINT/SIGTERM arrives, then drains
// in-flight requests for up to Config.ShutdownTimeout.
//
// # Middleware
//
// Application routes run through, outermost first:
//
//  1. metrics: request count, latency, in-flight gauge, write outcomes
//  2. version: API version negotiation and X-API-Version
//  3. request ID: X-Request-Id, generated when absent or not a UUID
//  4. panic recovery: 500 instead of a dropped connection
//  5. rate limit: token bucket, 429 with Retry-After
//  6. access log: one entry per request; writes at info, reads at debug
//
// # System Endpoints
//
// These bypass the middleware chain:
//
//	GET /health   liveness
//	GET /ready    readiness (503 until Run starts and after shutdown begins)
//	GET /metrics  Prometheus exposition
//	GET /         name, version and registered routes
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr. Both emit
// ErrorResponse, mapping pkg/errors codes to HTTP status:
//
//	INVALID_REQUEST      400
//	UNAUTHORIZED         401
//	FORBIDDEN            403
//	NOT_FOUND            404
//	METHOD_NOT_ALLOWED   405
//	RATE_LIMIT_EXCEEDED  429
//	INTERNAL             500
//	UNSUPPORTED          501
//	SERVICE_UNAVAILABLE  503
//	TIMEOUT              504
//
// # Configuration
//
// Environment variables:
//   - PORT: listen port (default 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown bound (default 30)
//
// # Metrics
//
//   - sysmind_http_requests_total{method,path,status}
//   - sysmind_http_request_duration_seconds{method,path}
//   - sysmind_http_requests_in_flight
//   - sysmind_rate_limit_rejects_total
//   - sysmind_panic_recoveries_total
//   - sysmind_write_requests_total{outcome}
package server
