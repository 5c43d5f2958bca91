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

// Package file parses line-oriented text from files and command output.
//
// The same Parser handles /etc/os-release, /etc/hosts, sysfs attribute files
// and the stdout of listing commands such as sysctl -a. Parsing is lenient:
// blank lines and comments are skipped, and lines that cannot be split are
// either defaulted or dropped depending on the options.
//
// # Usage
//
// Read key/value pairs from os-release, stripping quotes:
//
//	p := file.NewParser(file.WithVTrimChars(`"'`))
//	m, err := p.GetMap("/etc/os-release")
//
// Split command output into ordered pairs:
//
//	pairs := file.NewParser(file.WithSkipComments(false)).Pairs(string(out))
//
// Read a single sysfs attribute:
//
//	v, err := file.ReadValue("/sys/bus/usb/devices/1-1/idVendor")
//
// Parsers are immutable after construction and safe for concurrent use.
package file
