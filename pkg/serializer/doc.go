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

// Package serializer writes sysmind documents to their destinations.
//
// # Formats
//
//   - json: indented JSON, the default for unknown formats
//   - yaml: two-space YAML
//   - table: sorted FIELD/VALUE rows with nested keys flattened
//     ("Network.Interfaces.[0].Name")
//
// # Destinations
//
// NewFileWriterOrStdout picks the sink from the target string:
//
//	""                          stdout
//	cm://namespace/name         Kubernetes ConfigMap (server-side apply)
//	oci://registry/repo[:tag]   OCI artifact with a single document layer
//	anything else               local file
//
// File and stdout writers hold an io.Writer and must be closed:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "/tmp/snapshot.yaml")
//	defer serializer.Close(w)
//	if err := w.Serialize(ctx, snap); err != nil {
//	    return err
//	}
//
// The ConfigMap writer stores the document under snapshot.<ext> along with
// its format and timestamp, and labels the ConfigMap with the document kind
// and version taken from its header.
//
// # HTTP
//
// Respond picks JSON or YAML from the Accept header; RespondJSON always
// writes JSON. Both encode before writing headers so a failed encode never
// produces a partial 200 response.
package serializer
