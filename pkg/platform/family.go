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

// Package platform identifies the operating-system family sysmind runs on and
// provides the bounded-timeout command runner every provider uses.
package platform

import (
	"runtime"
	"strings"
)

// Family is an operating-system family with its own set of fact providers.
type Family string

const (
	FamilyLinux   Family = "linux"
	FamilyMacOS   Family = "macos"
	FamilyWindows Family = "windows"
	FamilyOther   Family = "other"
)

// Families lists every supported family, FamilyOther last.
var Families = []Family{
	FamilyLinux,
	FamilyMacOS,
	FamilyWindows,
	FamilyOther,
}

// String returns the family name.
func (f Family) String() string {
	return string(f)
}

// Supported reports whether the family has provider implementations.
func (f Family) Supported() bool {
	return f == FamilyLinux || f == FamilyMacOS || f == FamilyWindows
}

// Detect returns the family of the running process.
func Detect() Family {
	return FromGOOS(runtime.GOOS)
}

// FromGOOS maps a GOOS value to a Family. darwin maps to FamilyMacOS.
func FromGOOS(goos string) Family {
	switch strings.ToLower(goos) {
	case "linux":
		return FamilyLinux
	case "darwin":
		return FamilyMacOS
	case "windows":
		return FamilyWindows
	default:
		return FamilyOther
	}
}

// ParseFamily parses a family name, accepting "darwin" as an alias for macos.
// Returns false when the name is not recognized.
func ParseFamily(s string) (Family, bool) {
	if strings.EqualFold(s, "darwin") {
		return FamilyMacOS, true
	}
	for _, f := range Families {
		if strings.EqualFold(string(f), s) {
			return f, true
		}
	}
	return "", false
}

// PrimaryInterface returns the interface name conventionally used as the
// primary network interface on the family, or empty for FamilyOther.
func (f Family) PrimaryInterface() string {
	switch f {
	case FamilyLinux:
		return "eth0"
	case FamilyMacOS:
		return "en0"
	case FamilyWindows:
		return "Ethernet"
	default:
		return ""
	}
}

// KernelName returns the conventional kernel name for the family, or empty
// for FamilyOther.
func (f Family) KernelName() string {
	switch f {
	case FamilyLinux:
		return "Linux"
	case FamilyMacOS:
		return "Darwin"
	case FamilyWindows:
		return "Windows"
	default:
		return ""
	}
}
