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

package sysctl

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// step is backup, rewrite or apply; status is success, failure or skipped.
	tunableWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sysmind",
		Subsystem: "tunable",
		Name:      "writes_total",
		Help:      "Persist sequence steps by outcome.",
	}, []string{"step", "status"})

	tunablesLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "sysmind",
		Name:      "tunables_loaded",
		Help:      "Tunables read from the last platform listing.",
	})
)
