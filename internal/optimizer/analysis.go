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

package optimizer

import (
	"context"
	"fmt"
	"math"

	"k8s.io/utils/ptr"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/burstplan/burstplan/internal/logging"
	"github.com/burstplan/burstplan/pkg/catalog"
	"github.com/burstplan/burstplan/pkg/core"
)

// DefaultSensitivityRates are the hourly rates swept by the rate sensitivity analysis.
var DefaultSensitivityRates = []float64{0.25, 0.526, 0.75, 1.00, 1.50}

// DefaultSensitivityRatio is the Tesla T4 speed ratio used by the rate sensitivity analysis.
const DefaultSensitivityRatio = 2.18

// DefaultProcessingTimes are the per-job elastic durations, in minutes, swept by
// the processing-time sensitivity analysis.
var DefaultProcessingTimes = []float64{10, 15, 23, 30, 45}

// SensitivityDimension selects the input varied by a sensitivity analysis.
type SensitivityDimension string

const (
	// VaryRate sweeps hourly rates at a fixed speed ratio.
	VaryRate SensitivityDimension = "rate"
	// VaryInstance sweeps every instance type at one pricing tier.
	VaryInstance SensitivityDimension = "instance"
	// VaryPricing sweeps every instance type and offered pricing tier.
	VaryPricing SensitivityDimension = "pricing"
	// VaryProcessingTime sweeps fixed per-job elastic durations at one hourly rate.
	VaryProcessingTime SensitivityDimension = "processing-time"
)

// ParseSensitivityDimension converts a name into a SensitivityDimension.
func ParseSensitivityDimension(s string) (SensitivityDimension, error) {
	switch d := SensitivityDimension(s); d {
	case VaryRate, VaryInstance, VaryPricing, VaryProcessingTime:
		return d, nil
	default:
		return "", fmt.Errorf("%w: unknown sensitivity dimension %q", core.ErrConfiguration, s)
	}
}

// Scenario is one labelled variant of a sensitivity analysis.
type Scenario struct {
	Label  string                `json:"label"`
	Model  core.ElasticCostModel `json:"model"`
	Result *Result               `json:"result"`
}

// SiteResult is the outcome of planning one site in a comparison.
type SiteResult struct {
	Profile core.PoolProfile `json:"profile"`
	Result  *Result          `json:"result"`
}

// CompareSites plans every profile with the same cost model, in profile order.
func (o *Optimizer) CompareSites(
	ctx context.Context,
	jobs []core.Job,
	profiles []core.PoolProfile,
	model core.ElasticCostModel,
	maxElastic int,
) ([]SiteResult, error) {
	out := make([]SiteResult, 0, len(profiles))
	for _, p := range profiles {
		res, err := o.Plan(ctx, jobs, p, model, maxElastic)
		if err != nil {
			return nil, fmt.Errorf("site %s: %w", p.Name, err)
		}
		out = append(out, SiteResult{Profile: p, Result: res})
	}
	ctrl.LoggerFrom(ctx).V(logging.DEBUG).Info("Site comparison completed", "sites", len(out))
	return out, nil
}

// RateSensitivity plans one scenario per hourly rate, all at the given speed ratio.
// base supplies the overheads.
func (o *Optimizer) RateSensitivity(
	ctx context.Context,
	jobs []core.Job,
	profile core.PoolProfile,
	base core.ElasticCostModel,
	ratio float64,
	rates []float64,
	maxElastic int,
) ([]Scenario, error) {
	models := make([]labelledModel, len(rates))
	for i, rate := range rates {
		m := base
		m.InstanceType = ""
		m.PricingTier = ""
		m.HourlyRate = rate
		m.Ratio = ptr.To(ratio)
		models[i] = labelledModel{label: fmt.Sprintf("$%.3f/hr", rate), model: m}
	}
	return o.scenarios(ctx, jobs, profile, models, maxElastic)
}

// InstanceSensitivity plans one scenario per instance type at tier.
// Instances that do not offer tier are skipped.
func (o *Optimizer) InstanceSensitivity(
	ctx context.Context,
	jobs []core.Job,
	profile core.PoolProfile,
	instances []catalog.InstanceType,
	tier core.PricingTier,
	base core.ElasticCostModel,
	maxElastic int,
) ([]Scenario, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("%w: unknown pricing tier %q", core.ErrConfiguration, tier)
	}
	var models []labelledModel
	for _, it := range instances {
		if !it.Offers(tier) {
			continue
		}
		m, err := it.CostModel(tier, base)
		if err != nil {
			return nil, err
		}
		models = append(models, labelledModel{label: fmt.Sprintf("%s (%.2fx)", it.GPU, it.Ratio), model: m})
	}
	return o.scenarios(ctx, jobs, profile, models, maxElastic)
}

// PricingSensitivity plans one scenario per instance type and offered tier.
func (o *Optimizer) PricingSensitivity(
	ctx context.Context,
	jobs []core.Job,
	profile core.PoolProfile,
	instances []catalog.InstanceType,
	base core.ElasticCostModel,
	maxElastic int,
) ([]Scenario, error) {
	var models []labelledModel
	for _, it := range instances {
		for _, tier := range it.AvailableTiers() {
			m, err := it.CostModel(tier, base)
			if err != nil {
				return nil, err
			}
			models = append(models, labelledModel{label: fmt.Sprintf("%s %s", it.GPU, tier.Label()), model: m})
		}
	}
	return o.scenarios(ctx, jobs, profile, models, maxElastic)
}

// ProcessingTimeSensitivity plans one scenario per fixed per-job elastic
// duration, given in minutes. Every scenario runs in fixed processing mode:
// base supplies the rate and overheads and its ratio is dropped.
func (o *Optimizer) ProcessingTimeSensitivity(
	ctx context.Context,
	jobs []core.Job,
	profile core.PoolProfile,
	base core.ElasticCostModel,
	minutes []float64,
	maxElastic int,
) ([]Scenario, error) {
	models := make([]labelledModel, len(minutes))
	for i, t := range minutes {
		if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
			return nil, fmt.Errorf("%w: processing time must be a positive number of minutes, got %v",
				core.ErrConfiguration, t)
		}
		m := base
		m.Ratio = nil
		m.FixedJobDuration = t * 60
		models[i] = labelledModel{label: fmt.Sprintf("%g min/job", t), model: m}
	}
	return o.scenarios(ctx, jobs, profile, models, maxElastic)
}

type labelledModel struct {
	label string
	model core.ElasticCostModel
}

func (o *Optimizer) scenarios(
	ctx context.Context,
	jobs []core.Job,
	profile core.PoolProfile,
	models []labelledModel,
	maxElastic int,
) ([]Scenario, error) {
	out := make([]Scenario, 0, len(models))
	for _, lm := range models {
		res, err := o.Plan(ctx, jobs, profile, lm.model, maxElastic)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", lm.label, err)
		}
		out = append(out, Scenario{Label: lm.label, Model: lm.model, Result: res})
	}
	ctrl.LoggerFrom(ctx).V(logging.DEBUG).Info("Sensitivity analysis completed",
		"site", profile.Name, "scenarios", len(out))
	return out, nil
}
