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

package sysctl

import "strings"

// Filter returns entries whose names match any of the patterns, in
// enumeration order. No patterns matches everything.
//
// Patterns support '*' wildcards:
//   - "net.ipv4.*" prefix
//   - "*.forwarding" suffix
//   - "*tcp*" contains
//   - "net.*.rp_filter" prefix and suffix
func (s *Store) Filter(patterns ...string) []Entry {
	all := s.Entries()
	if len(patterns) == 0 {
		return all
	}

	out := make([]Entry, 0)
	for _, e := range all {
		for _, p := range patterns {
			if MatchesPattern(e.Name, p) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// MatchesPattern reports whether name matches a wildcard pattern.
func MatchesPattern(name, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		return name == pattern
	}

	segments := strings.Split(pattern, "*")

	pos := 0
	for i, segment := range segments {
		if segment == "" {
			continue
		}

		// anchored at the start unless the pattern begins with '*'
		if i == 0 {
			if !strings.HasPrefix(name, segment) {
				return false
			}
			pos = len(segment)
			continue
		}

		// anchored at the end unless the pattern ends with '*'
		if i == len(segments)-1 {
			return len(name)-pos >= len(segment) && strings.HasSuffix(name[pos:], segment)
		}

		idx := strings.Index(name[pos:], segment)
		if idx == -1 {
			return false
		}
		pos += idx + len(segment)
	}

	return true
}

// ValidName reports whether name can be written to the configuration file
// without corrupting it.
func ValidName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	return !strings.ContainsAny(name, "=:\n\r \t#")
}

// ValidValue reports whether value fits on one configuration file line.
func ValidValue(value string) bool {
	return !strings.ContainsAny(value, "\r\n")
}
