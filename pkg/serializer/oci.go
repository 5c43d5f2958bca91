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

package serializer

import (
	"context"
	"fmt"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/mchmarny/sysmind/pkg/oci"
)

// PushFunc publishes an OCI artifact.
type PushFunc func(ctx context.Context, opts oci.PushOptions) (*oci.PushResult, error)

// OCIWriter publishes each document as an OCI artifact.
type OCIWriter struct {
	ref    *oci.Reference
	format Format
	push   PushFunc

	// PlainHTTP and InsecureTLS are passed through to the registry client.
	PlainHTTP   bool
	InsecureTLS bool
}

// NewOCIWriter creates a writer that pushes to ref.
func NewOCIWriter(ref *oci.Reference, format Format) *OCIWriter {
	return &OCIWriter{
		ref:    ref,
		format: normalizeFormat(format),
		push:   oci.Push,
	}
}

// Serialize encodes doc and pushes it as a single-layer artifact.
func (w *OCIWriter) Serialize(ctx context.Context, doc any) error {
	content, err := Encode(w.format, doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	_, version, timestamp := documentInfo(doc)

	_, err = w.push(ctx, oci.PushOptions{
		Reference: w.ref,
		Content:   content,
		FileName:  "snapshot." + w.format.Extension(),
		MediaType: mediaType(w.format),
		Annotations: map[string]string{
			ociv1.AnnotationVersion: version,
			ociv1.AnnotationCreated: timestamp,
			ociv1.AnnotationTitle:   "sysmind snapshot",
		},
		PlainHTTP:   w.PlainHTTP,
		InsecureTLS: w.InsecureTLS,
	})
	return err
}

// Close is a no-op.
func (w *OCIWriter) Close() error {
	return nil
}

func mediaType(f Format) string {
	switch f {
	case FormatYAML:
		return oci.MediaTypeYAML
	case FormatTable:
		return oci.MediaTypeText
	default:
		return oci.MediaTypeJSON
	}
}
