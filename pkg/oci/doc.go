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

// Package oci publishes a single serialized document as an OCI artifact.
//
// The artifact is an OCI 1.1 manifest carrying one layer: the document
// itself, annotated with its file name. Nothing is tarred or compressed, so
// the layer digest is the digest of the document bytes.
//
// # Usage
//
//	ref, err := oci.ParseReference("oci://ghcr.io/acme/snapshots:node-1")
//	if err != nil {
//	    return err
//	}
//	res, err := oci.Push(ctx, oci.PushOptions{
//	    Reference: ref,
//	    Content:   data,
//	    FileName:  "snapshot.json",
//	    MediaType: oci.MediaTypeJSON,
//	})
//
// A reference without a tag gets DefaultTag.
//
// # Authentication
//
// Credentials come from the Docker configuration (~/.docker/config.json)
// through the ORAS credentials package.
//
// # Artifact Type
//
// Artifacts are pushed with the artifact type
// "application/vnd.sysmind.snapshot". Consumers that do not understand the
// type should treat the artifact as a non-executable blob.
package oci
