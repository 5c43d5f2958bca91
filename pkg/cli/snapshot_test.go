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

package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/sysmind/pkg/checksum"
)

func TestSnapshot_ToFile(t *testing.T) {
	if testing.Short() {
		t.Skip("queries host facilities")
	}
	env := newTestEnv(t)
	target := filepath.Join(t.TempDir(), "snapshot.json")

	require.NoError(t, env.run(t, "snapshot", "--format", "json", "--output", target,
		"--primary-interface", "eth9"))

	data, err := os.ReadFile(target)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Snapshot", doc["kind"])

	identity, ok := doc["identity"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, runtime.GOARCH, identity["architecture"])

	network, ok := doc["network"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "eth9", network["primaryInterface"])
}

func TestSnapshot_Checksum(t *testing.T) {
	if testing.Short() {
		t.Skip("queries host facilities")
	}
	env := newTestEnv(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "snapshot.yaml")

	require.NoError(t, env.run(t, "snapshot", "--output", target, "--checksum"))

	sum, err := checksum.File(target)
	require.NoError(t, err)

	data, err := os.ReadFile(checksum.SumsPath(dir))
	require.NoError(t, err)
	assert.Equal(t, sum+"  snapshot.yaml\n", string(data))
}

func TestSnapshot_ChecksumNeedsFile(t *testing.T) {
	env := newTestEnv(t)
	err := env.run(t, "snapshot", "--output", "cm://default/snap", "--checksum")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a file")
}

func TestIsFileTarget(t *testing.T) {
	assert.True(t, isFileTarget("/tmp/snapshot.json"))
	assert.False(t, isFileTarget(""))
	assert.False(t, isFileTarget("cm://default/snap"))
	assert.False(t, isFileTarget("oci://ghcr.io/acme/snap:v1"))
}

func TestSnapshot_Summary(t *testing.T) {
	if testing.Short() {
		t.Skip("queries host facilities")
	}
	env := newTestEnv(t)
	require.NoError(t, env.run(t, "snapshot", "--summary"))

	out := env.out.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "architecture")
	assert.Contains(t, out, runtime.GOARCH)
}

func TestSnapshot_UnknownFormat(t *testing.T) {
	env := newTestEnv(t)
	err := env.run(t, "snapshot", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
