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
	// Collection run metrics
	collectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "popsupport_collection_duration_seconds",
			Help:    "Time taken to collect and archive a support bundle",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	collectionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "popsupport_collection_total",
			Help: "Total number of collection runs",
		},
		[]string{"status"}, // success or error code
	)

	sourceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "popsupport_source_duration_seconds",
			Help:    "Time taken by individual sources",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 10, 30, 120},
		},
		[]string{"source"},
	)

	sourceTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "popsupport_source_total",
			Help: "Total number of source acquisitions by outcome",
		},
		[]string{"source", "status"},
	)

	archiveEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "popsupport_archive_entries",
			Help: "Number of top-level entries in the last archive",
		},
	)
)
