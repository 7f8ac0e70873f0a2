/*
Copyright 2026 The burstplan Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package metrics defines the Prometheus collectors emitted by the planner.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "burstplan"

// Sweep modes used as label values.
const (
	ModeSingle = "single"
	ModeMulti  = "multi"
)

// Recorder owns the planner collectors. A nil *Recorder is valid and records nothing,
// so engines can be used without a registry.
type Recorder struct {
	scheduleRuns     prometheus.Counter
	scheduleDuration prometheus.Histogram
	sweepPoints      *prometheus.CounterVec
	frontierPoints   *prometheus.GaugeVec
	recommendedCost  *prometheus.GaugeVec
	recommendedSpan  *prometheus.GaugeVec
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		scheduleRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schedule_runs_total",
			Help:      "Total number of scheduler invocations.",
		}),
		scheduleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "schedule_duration_seconds",
			Help:      "Wall-clock time of one scheduler invocation.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
		sweepPoints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_points_total",
			Help:      "Total number of swept configurations.",
		}, []string{"mode"}),
		frontierPoints: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "frontier_points",
			Help:      "Number of Pareto-optimal configurations in the last evaluation.",
		}, []string{"site"}),
		recommendedCost: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "recommended_cost_dollars",
			Help:      "Elastic cost of the last recommended configuration.",
		}, []string{"site"}),
		recommendedSpan: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "recommended_makespan_seconds",
			Help:      "Makespan of the last recommended configuration.",
		}, []string{"site"}),
	}
	for _, c := range r.Collectors() {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Collectors returns every collector owned by the recorder.
func (r *Recorder) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		r.scheduleRuns, r.scheduleDuration, r.sweepPoints,
		r.frontierPoints, r.recommendedCost, r.recommendedSpan,
	}
}

// ObserveSchedule records one scheduler invocation.
func (r *Recorder) ObserveSchedule(elapsed time.Duration) {
	if r == nil {
		return
	}
	r.scheduleRuns.Inc()
	r.scheduleDuration.Observe(elapsed.Seconds())
}

// AddSweepPoints counts swept configurations for a mode.
func (r *Recorder) AddSweepPoints(mode string, n int) {
	if r == nil {
		return
	}
	r.sweepPoints.WithLabelValues(mode).Add(float64(n))
}

// SetFrontier records the frontier size and, when present, the recommendation of a site.
func (r *Recorder) SetFrontier(site string, optimal int, recommended bool, cost, makespan float64) {
	if r == nil {
		return
	}
	r.frontierPoints.WithLabelValues(site).Set(float64(optimal))
	if !recommended {
		r.recommendedCost.DeleteLabelValues(site)
		r.recommendedSpan.DeleteLabelValues(site)
		return
	}
	r.recommendedCost.WithLabelValues(site).Set(cost)
	r.recommendedSpan.WithLabelValues(site).Set(makespan)
}
