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

// Package checksum computes SHA256 digests for files sysmind writes.
//
// The sysctl store records the digest of every configuration backup, and
// the snapshot command can write a sha256sum-compatible manifest next to a
// snapshot file:
//
//	path, err := checksum.WriteSums(ctx, dir, []string{"/tmp/out/snapshot.json"})
//
// The manifest verifies with:
//
//	sha256sum -c SHA256SUMS
package checksum
