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

package snapshotter

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
)

const unavailable = "unavailable"

// Summarize renders the headline facts of a snapshot as human-readable text.
func Summarize(s *Snapshot) map[string]string {
	if s == nil {
		return map[string]string{}
	}

	m := map[string]string{
		"family":       s.Identity.Name.String(),
		"architecture": s.Identity.Architecture,
		"hostname":     strOr(s.Identity.Hostname),
		"kernel":       kernel(s.Identity),
		"cpus":         unavailable,
		"cpu-max-freq": unavailable,
		"memory":       bytesOr(s.Resources.MemoryBytes),
		"swap":         bytesOr(s.Resources.SwapBytes),
		"mounts":       strconv.Itoa(len(s.Resources.Mounts)),
		"primary-ip":   strOr(s.Network.PrimaryIP),
		"interfaces":   strconv.Itoa(len(s.Network.Interfaces)),
		"connections": fmt.Sprintf("listening=%d established=%d closed=%d",
			len(s.Network.Connections.Listening),
			len(s.Network.Connections.Established),
			len(s.Network.Connections.Closed)),
		"processes":     humanize.Comma(int64(len(s.Inventory.Processes))),
		"services":      humanize.Comma(int64(len(s.Inventory.Services))),
		"pci-devices":   strconv.Itoa(len(s.Inventory.PCIDevices)),
		"usb-devices":   strconv.Itoa(len(s.Inventory.USBDevices)),
		"hosts-entries": strconv.Itoa(len(s.NameResolution.Hosts)),
		"nameservers":   unavailable,
	}

	if s.Resources.CPUCount != nil {
		m["cpus"] = strconv.Itoa(*s.Resources.CPUCount)
	}
	if s.Resources.CPUMaxFrequency != nil {
		m["cpu-max-freq"] = humanize.SIWithDigits(*s.Resources.CPUMaxFrequency*1e6, 2, "Hz")
	}
	if s.NameResolution.Resolver != nil {
		m["nameservers"] = strconv.Itoa(len(s.NameResolution.Resolver.Nameservers))
	}
	if s.Identity.Distribution != nil {
		m["distribution"] = s.Identity.Distribution.Name
	}

	return m
}

func kernel(id Identity) string {
	if id.KernelName == nil {
		return unavailable
	}
	if id.KernelVersion == nil {
		return *id.KernelName
	}
	return *id.KernelName + " " + *id.KernelVersion
}

func strOr(s *string) string {
	if s == nil {
		return unavailable
	}
	return *s
}

func bytesOr(b *uint64) string {
	if b == nil {
		return unavailable
	}
	return humanize.IBytes(*b)
}
