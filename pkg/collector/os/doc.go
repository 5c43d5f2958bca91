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

// Package os provides kernel identity, POSIX compliance, Linux distribution,
// and host resource providers.
//
// # Providers
//
//   - KernelProvider: kernel name and version, plus the platform version
//   - POSIXProvider: whether the host offers a POSIX environment
//   - DistributionProvider: /etc/os-release identity and package manager
//   - ResourcesProvider: CPU count and max frequency, memory and swap totals
//   - MountsProvider: mounted filesystems
//   - HostnameProvider: host name
//
// Host facts come from gopsutil. Each provider holds its data sources as
// function fields so tests can substitute fixtures:
//
//	p := &os.ResourcesProvider{
//	    Memory: func(ctx context.Context) (*mem.VirtualMemoryStat, error) {
//	        return &mem.VirtualMemoryStat{Total: 8 << 30}, nil
//	    },
//	}
//
// ResourcesProvider degrades per field: a failing source leaves its field nil
// and is logged at error level while the rest are still reported.
package os
