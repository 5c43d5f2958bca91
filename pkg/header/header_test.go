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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKind_IsValid(t *testing.T) {
	for _, k := range []Kind{KindSnapshot, KindTunables} {
		assert.True(t, k.IsValid(), k.String())
	}
	assert.False(t, Kind("Inventory").IsValid())
	assert.False(t, Kind("").IsValid())
}

func TestHeader_Init(t *testing.T) {
	var h Header
	h.Init(KindSnapshot, "sysmind.dev/v1alpha1", "v0.3.0")

	assert.Equal(t, KindSnapshot, h.GetKind())
	assert.Equal(t, "sysmind.dev/v1alpha1", h.APIVersion)
	assert.Equal(t, "v0.3.0", h.GetMetadata()[MetaVersion])

	ts, ok := h.Timestamp()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestHeader_InitResetsMetadata(t *testing.T) {
	var h Header
	h.SetMetadata(MetaSourceHost, "db-01")
	h.Init(KindTunables, "sysmind.dev/v1alpha1", "")

	assert.NotContains(t, h.Metadata, MetaVersion)
	assert.NotContains(t, h.Metadata, MetaSourceHost)
	assert.Contains(t, h.Metadata, MetaTimestamp)
}

func TestHeader_SetMetadata(t *testing.T) {
	var h Header
	h.SetMetadata(MetaSourceHost, "")
	assert.Nil(t, h.Metadata)

	h.SetMetadata(MetaSourceHost, "web-02")
	assert.Equal(t, "web-02", h.Metadata[MetaSourceHost])
}

func TestHeader_TimestampMissing(t *testing.T) {
	var h Header
	_, ok := h.Timestamp()
	assert.False(t, ok)
}

func TestDescriber_Embedded(t *testing.T) {
	type doc struct {
		Header
		Name string
	}
	d := &doc{Name: "x"}
	d.Init(KindSnapshot, "sysmind.dev/v1alpha1", "dev")

	var desc Describer = d
	assert.Equal(t, KindSnapshot, desc.GetKind())
	assert.Equal(t, "dev", desc.GetMetadata()[MetaVersion])
}
