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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Label names of the desired elastic processors gauge.
const (
	LabelNamespace    = "namespace"
	LabelPlan         = "plan"
	LabelInstanceType = "instance_type"
	LabelPricingTier  = "pricing_tier"
)

// MetricsEmitter publishes the elastic pool size each plan asks for, so an
// external autoscaler can provision it. A nil *MetricsEmitter emits nothing.
type MetricsEmitter struct {
	desiredElastic *prometheus.GaugeVec
}

// NewMetricsEmitter creates the gauge and registers it on reg.
func NewMetricsEmitter(reg prometheus.Registerer) (*MetricsEmitter, error) {
	e := &MetricsEmitter{
		desiredElastic: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "desired_elastic_processors",
			Help:      "Elastic pool size recommended for a plan.",
		}, []string{LabelNamespace, LabelPlan, LabelInstanceType, LabelPricingTier}),
	}
	if err := reg.Register(e.desiredElastic); err != nil {
		return nil, err
	}
	return e, nil
}

// EmitDesiredElastic sets the desired elastic pool size of a plan, replacing
// any series the plan emitted for another instance type or tier.
func (e *MetricsEmitter) EmitDesiredElastic(ns, plan, instanceType, tier string, count int) {
	if e == nil {
		return
	}
	e.Clear(ns, plan)
	e.desiredElastic.WithLabelValues(ns, plan, instanceType, tier).Set(float64(count))
}

// Clear removes every series of a plan.
func (e *MetricsEmitter) Clear(ns, plan string) {
	if e == nil {
		return
	}
	e.desiredElastic.DeletePartialMatch(prometheus.Labels{LabelNamespace: ns, LabelPlan: plan})
}
