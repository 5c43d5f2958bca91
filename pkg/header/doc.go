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

// Package header provides the common header carried by every document sysmind
// serializes: host snapshots and tunable listings.
//
// # Header Structure
//
//	type Header struct {
//	    Kind       Kind              `json:"kind" yaml:"kind"`
//	    APIVersion string            `json:"apiVersion" yaml:"apiVersion"`
//	    Metadata   map[string]string `json:"metadata" yaml:"metadata"`
//	}
//
// # Usage
//
//	var h header.Header
//	h.Init(header.KindSnapshot, "sysmind.dev/v1alpha1", version)
//	h.SetMetadata(header.MetaSourceHost, hostname)
//
// Init stamps an RFC3339 UTC timestamp under the "timestamp" key and the tool
// version under "version".
//
// # Kind Field
//
//   - Snapshot: point-in-time host inventory
//   - Tunables: listing of kernel tunable parameters
package header
