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

// Package sysctl provides a live, mutable view over kernel tunables that
// persists changes to a sysctl configuration file.
//
// # Lifecycle
//
// New runs the platform listing command (sysctl -a) once and loads every
// name=value line into memory, in enumeration order. If the command is
// unavailable the store starts empty and the condition is logged.
//
// Reads never reload from the platform:
//
//	store := sysctl.New(ctx, sysctl.WithConfigPath("/etc/sysctl.conf"))
//	v, err := store.Get("net.ipv4.ip_forward")
//	if errors.Is(err, sysctl.ErrUnknownKey) {
//	    // not a known tunable
//	}
//
// # Writes
//
// Set updates the in-memory value first; that step cannot fail. With
// write-through enabled (the default) it then runs the persist sequence:
//
//  1. backup: copy the config file to <path>.<unix-seconds>.bkp
//  2. rewrite: overwrite the config file with every entry as "name = value"
//  3. apply: sysctl -w name=value for the changed key only
//
// Each step logs its own failure and never aborts the steps after it. The
// in-memory value is authoritative regardless of persistence outcome; Set
// returns nothing, so durability can only be observed through logs, metrics,
// or the files themselves.
//
// With write-through disabled, Set only updates memory and Sync runs steps
// 1 and 2 over the whole mapping without applying anything to the kernel.
// Calling Sync while write-through is enabled is a usage error: it is logged
// and ignored.
//
// Backups are never removed. Two writes within the same second reuse the
// same backup name, and the later copy replaces the earlier one.
//
// # Concurrency
//
// A single mutex guards the mapping and the whole persist sequence, so
// concurrent writers cannot interleave backups and rewrites.
//
// # Metrics
//
//   - sysmind_tunable_writes_total{step,status}: step is backup, rewrite, or
//     apply; status is success, failure, or skipped
//   - sysmind_tunables_loaded: entries loaded by the last New
package sysctl
