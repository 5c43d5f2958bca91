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

// Package network provides socket and network interface providers backed by
// gopsutil.
//
// ConnectionsProvider partitions inet sockets at collection time:
//
//	listening    LISTEN (local address only)
//	established  ESTABLISHED
//	closed       CLOSE_WAIT, CLOSE, NONE, or no state (UDP)
//
// Sockets in any other state (SYN_SENT, TIME_WAIT, ...) are skipped.
//
// InterfacesProvider enumerates interfaces with their first IPv4 address and
// hardware address. Lookup resolves one interface by name and returns a
// NOT_FOUND error when the name is not present.
package network
