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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	snapshotBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sysmind",
		Subsystem: "snapshot",
		Name:      "build_duration_seconds",
		Help:      "Wall time to collect every fact domain into one snapshot.",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
	})

	snapshotBuildsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sysmind",
		Subsystem: "snapshot",
		Name:      "builds_total",
		Help:      "Snapshots built.",
	})

	// status is success or error.
	snapshotSerializeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sysmind",
		Subsystem: "snapshot",
		Name:      "serialize_total",
		Help:      "Snapshot writes to an output sink by status.",
	}, []string{"status"})
)
