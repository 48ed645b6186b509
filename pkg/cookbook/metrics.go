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

package cookbook

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recipesParsed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cookbook_recipes_parsed_total",
			Help: "Total number of recipe blocks parsed",
		},
	)
	linesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cookbook_lines_skipped_total",
			Help: "Total number of non-ingredient lines skipped inside recipe blocks",
		},
	)
	parseErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cookbook_parse_errors_total",
			Help: "Total number of documents rejected with a parse error",
		},
	)
	parseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cookbook_parse_duration_seconds",
			Help:    "Duration of recipe document parsing in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)
)
