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

package collector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	providerDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sysmind",
		Subsystem: "provider",
		Name:      "duration_seconds",
		Help:      "Fact provider latency by domain.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
	}, []string{"domain"})

	// reason is unsupported, error or panic.
	providerFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sysmind",
		Subsystem: "provider",
		Name:      "failures_total",
		Help:      "Provider calls that degraded to an empty result.",
	}, []string{"domain", "reason"})
)
