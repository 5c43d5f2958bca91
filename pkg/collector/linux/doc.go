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

// Package linux provides the Linux service and hardware providers.
//
// # Services
//
// Running services are listed over the systemd D-Bus API. When the bus is
// unreachable (containers, minimal images) the provider falls back to parsing
//
//	systemctl list-units --type=service --state=running --no-legend --plain --no-pager
//
// Each service carries its unit name, sub-state, and description.
//
// # PCI devices
//
// Parsed from the machine-readable output of lspci -vmmnn, which carries both
// names and numeric IDs:
//
//	Slot:   00:02.0
//	Class:  VGA compatible controller [0300]
//	Vendor: Intel Corporation [8086]
//	Device: UHD Graphics 620 [5917]
//
// # USB devices
//
// Read from sysfs under /sys/bus/usb/devices. Interface nodes without
// idVendor are skipped.
package linux
