// Copyright 2019 eBay Inc.
// Primary authors: Simon Fell, Diego Ongaro,
//                  Raymond Kroeker, and Sathish Kandasamy.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package graph

import (
	"github.com/prometheus/client_golang/prometheus"
	metricsutil "github.com/retog/rdfwrapper-example/util/metrics"
)

type graphMetrics struct {
	filterCalls     *prometheus.CounterVec
	recordsExpanded prometheus.Counter
	triplesProduced prometheus.Counter
	sizeSeconds     prometheus.Summary
}

var metrics graphMetrics

func init() {
	mr := metricsutil.Registry{R: prometheus.DefaultRegisterer}
	metrics = graphMetrics{
		filterCalls: mr.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rdfwrapper",
			Subsystem: "graph",
			Name:      "filter_calls_total",
			Help: `The number of filter calls, by the database query chosen to find candidates.

The access_path label is one of "rejected" (the pattern can't match anything
and no query was issued), "subject", "first_name", "last_name", or "scan". A
high share of scans means most patterns can't use an index.
`,
		}, []string{"access_path"}),
		recordsExpanded: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "rdfwrapper",
			Subsystem: "graph",
			Name:      "records_expanded_total",
			Help: `The number of records read from the database and expanded into triples.

Compare with 'triples_produced_total' to see how much work the residual filter
throws away.
`,
		}),
		triplesProduced: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "rdfwrapper",
			Subsystem: "graph",
			Name:      "triples_produced_total",
			Help:      `The number of matching triples handed to callers.`,
		}),
		sizeSeconds: mr.NewSummary(prometheus.SummaryOpts{
			Namespace: "rdfwrapper",
			Subsystem: "graph",
			Name:      "size_seconds",
			Help: `The time taken to count every triple in a graph.

Size is not cached; every call walks the whole database.
`,
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}),
	}
}
