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

package snapshotter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mchmarny/sysmind/pkg/collector"
	"github.com/mchmarny/sysmind/pkg/logging"
	"github.com/mchmarny/sysmind/pkg/platform"
	"github.com/mchmarny/sysmind/pkg/serializer"
)

// NodeSnapshotter builds a snapshot of the current host and serializes it.
type NodeSnapshotter struct {
	// Version is the snapshotter version.
	Version string

	// Family overrides platform detection. Empty means platform.Detect().
	Family platform.Family

	// Factory is the provider factory to use. If nil, the default factory is used.
	Factory collector.Factory

	// PrimaryInterface overrides the family's conventional interface name.
	PrimaryInterface string

	// Serializer is the serializer to use for output. If nil, a default stdout JSON serializer is used.
	Serializer serializer.Serializer

	Logger *slog.Logger
}

// Snapshot builds and returns a snapshot without serializing it.
func (n *NodeSnapshotter) Snapshot(ctx context.Context) *Snapshot {
	logger := logging.OrDefault(n.Logger)

	family := n.Family
	if family == "" {
		family = platform.Detect()
	}

	factory := n.Factory
	if factory == nil {
		factory = &collector.DefaultFactory{
			Runner: platform.NewExecRunner(0),
			Logger: logger,
		}
	}

	sel := collector.NewSelector(family, factory.Create(family), collector.WithLogger(logger))

	return Build(ctx, BuildOptions{
		Selector:         sel,
		PrimaryInterface: n.PrimaryInterface,
		Version:          n.Version,
		Logger:           logger,
	})
}

// Measure builds a snapshot and serializes it. Only serialization can fail.
func (n *NodeSnapshotter) Measure(ctx context.Context) error {
	snap := n.Snapshot(ctx)

	s := n.Serializer
	if s == nil {
		s = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := s.Serialize(ctx, snap); err != nil {
		snapshotSerializeTotal.WithLabelValues("error").Inc()
		logging.OrDefault(n.Logger).Error("failed to serialize", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize: %w", err)
	}

	snapshotSerializeTotal.WithLabelValues("success").Inc()
	return nil
}
