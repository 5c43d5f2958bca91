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

package inventory

// Device is a PCI or USB device. All fields are optional.
type Device struct {
	VendorID   *string `json:"vendor_id" yaml:"vendor_id"`
	DeviceID   *string `json:"device_id" yaml:"device_id"`
	VendorName *string `json:"vendor_name" yaml:"vendor_name"`
	DeviceName *string `json:"device_name" yaml:"device_name"`
}

// Connection is one inet socket.
type Connection struct {
	LocalIP    string  `json:"local_ip" yaml:"local_ip"`
	LocalPort  uint32  `json:"local_port" yaml:"local_port"`
	RemoteIP   *string `json:"remote_ip,omitempty" yaml:"remote_ip,omitempty"`
	RemotePort *uint32 `json:"remote_port,omitempty" yaml:"remote_port,omitempty"`
	Status     string  `json:"status" yaml:"status"`
}

// Connections partitions sockets by state at collection time.
type Connections struct {
	Listening   []Connection `json:"listening" yaml:"listening"`
	Established []Connection `json:"established" yaml:"established"`
	Closed      []Connection `json:"closed" yaml:"closed"`
}

// NewConnections returns a value with every bucket non-nil.
func NewConnections() *Connections {
	return &Connections{
		Listening:   []Connection{},
		Established: []Connection{},
		Closed:      []Connection{},
	}
}

// Total returns the number of connections across all buckets.
func (c *Connections) Total() int {
	if c == nil {
		return 0
	}
	return len(c.Listening) + len(c.Established) + len(c.Closed)
}

// Service is a running system service.
type Service struct {
	Name        string  `json:"name" yaml:"name"`
	Status      string  `json:"status" yaml:"status"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Process is a non-stopped process.
type Process struct {
	PID     int32    `json:"pid" yaml:"pid"`
	Name    string   `json:"name" yaml:"name"`
	Cmdline []string `json:"cmdline" yaml:"cmdline"`
}

// Interface is a network interface with its first IPv4 address and MAC.
type Interface struct {
	Name string  `json:"name" yaml:"name"`
	IP   *string `json:"ip" yaml:"ip"`
	MAC  *string `json:"mac" yaml:"mac"`
}

// Mount is one mounted filesystem.
type Mount struct {
	Device     string `json:"device" yaml:"device"`
	Mountpoint string `json:"mountpoint" yaml:"mountpoint"`
	FSType     string `json:"fstype" yaml:"fstype"`
	Options    string `json:"options,omitempty" yaml:"options,omitempty"`
}

// HostsEntry maps one IP to its hostnames.
type HostsEntry struct {
	IP    string   `json:"ip" yaml:"ip"`
	Names []string `json:"names" yaml:"names"`
}

// ResolverConfig is the system DNS resolver configuration.
type ResolverConfig struct {
	Nameservers []string `json:"nameservers" yaml:"nameservers"`
	Search      []string `json:"search" yaml:"search"`
	Port        string   `json:"port,omitempty" yaml:"port,omitempty"`
	Ndots       int      `json:"ndots" yaml:"ndots"`
	Timeout     int      `json:"timeout" yaml:"timeout"`
	Attempts    int      `json:"attempts" yaml:"attempts"`
}

// KernelInfo identifies the running kernel.
type KernelInfo struct {
	Name            string `json:"name" yaml:"name"`
	Version         string `json:"version" yaml:"version"`
	PlatformVersion string `json:"platform_version,omitempty" yaml:"platform_version,omitempty"`
}

// Distribution identifies a Linux distribution.
type Distribution struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Like           []string `json:"like" yaml:"like"`
	PackageManager *string  `json:"package_manager" yaml:"package_manager"`
}

// Resources holds CPU and memory totals.
type Resources struct {
	CPUCount        *int     `json:"cpu_count" yaml:"cpu_count"`
	CPUMaxFrequency *float64 `json:"cpu_max_frequency_mhz" yaml:"cpu_max_frequency_mhz"`
	MemoryBytes     *uint64  `json:"memory_bytes" yaml:"memory_bytes"`
	SwapBytes       *uint64  `json:"swap_bytes" yaml:"swap_bytes"`
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// StrPtr returns a pointer to s, or nil when s is empty.
func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
