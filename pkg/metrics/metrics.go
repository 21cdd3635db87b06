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

// Package metrics records compile and invocation counters for generated
// command trees on a private Prometheus registry. A run can export them in
// the node-exporter textfile format with WriteTextfile.
package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/NVIDIA/sigcli/pkg/errors"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

// Registry holds every sigcli collector.
var Registry = prometheus.NewRegistry()

var (
	commandsCompiled = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sigcli_commands_compiled_total",
			Help: "Total number of commands compiled, by node kind",
		},
		[]string{"kind"},
	)

	invocationsTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sigcli_invocations_total",
			Help: "Total number of leaf invocations, by command path and outcome",
		},
		[]string{"command", "outcome"},
	)

	bindErrors = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sigcli_bind_errors_total",
			Help: "Total number of argument binding failures, by error code",
		},
		[]string{"code"},
	)

	invocationDuration = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sigcli_invocation_duration_seconds",
			Help:    "Leaf invocation latency in seconds, binding included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)
)

// RecordCompiled counts one compiled node of the given kind.
func RecordCompiled(kind string) {
	commandsCompiled.WithLabelValues(kind).Inc()
}

// RecordBindError counts one binding failure.
func RecordBindError(err error) {
	bindErrors.WithLabelValues(outcome(err)).Inc()
}

// RecordInvocation counts one leaf invocation and observes its duration.
func RecordInvocation(command string, err error, d time.Duration) {
	invocationsTotal.WithLabelValues(command, outcome(err)).Inc()
	invocationDuration.WithLabelValues(command).Observe(d.Seconds())
}

// WriteTextfile writes the current metric values to path atomically.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}

func outcome(err error) string {
	if err == nil {
		return outcomeSuccess
	}
	if code := errors.CodeOf(err); code != "" {
		return strings.ToLower(string(code))
	}
	return outcomeError
}
