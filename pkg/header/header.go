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

package header

import (
	"time"
)

// Kind represents the type of a serialized sysmind document.
type Kind string

const (
	KindSnapshot Kind = "Snapshot"
	KindTunables Kind = "Tunables"
)

// Metadata keys written by Init and the snapshot builder.
const (
	MetaTimestamp  = "timestamp"
	MetaVersion    = "version"
	MetaSourceHost = "source-host"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a known document kind.
func (k Kind) IsValid() bool {
	return k == KindSnapshot || k == KindTunables
}

// Header carries Kubernetes-style type and versioning fields. Documents
// embed it inline so the fields appear at the top level when serialized.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Describer is implemented by every document that embeds a Header. Sinks use
// it to label what they store.
type Describer interface {
	GetKind() Kind
	GetMetadata() map[string]string
}

var _ Describer = (*Header)(nil)

// Init resets the header to kind and apiVersion and stamps the current UTC
// time and the tool version.
func (h *Header) Init(kind Kind, apiVersion string, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = map[string]string{
		MetaTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
	h.SetMetadata(MetaVersion, version)
}

// SetMetadata stores a metadata key. Empty values are not recorded.
func (h *Header) SetMetadata(key, value string) {
	if value == "" {
		return
	}
	if h.Metadata == nil {
		h.Metadata = make(map[string]string)
	}
	h.Metadata[key] = value
}

// GetKind returns the document kind.
func (h *Header) GetKind() Kind {
	return h.Kind
}

// GetMetadata returns the metadata map, which may be nil.
func (h *Header) GetMetadata() map[string]string {
	return h.Metadata
}

// Timestamp returns the parsed creation time, if one was recorded.
func (h *Header) Timestamp() (time.Time, bool) {
	ts, err := time.Parse(time.RFC3339, h.Metadata[MetaTimestamp])
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
