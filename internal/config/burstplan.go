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

package config

import (
	"fmt"
	"os"
	"strconv"

	"sigs.k8s.io/yaml"

	"github.com/burstplan/burstplan/api/v1alpha1"
	"github.com/burstplan/burstplan/pkg/core"
)

// LoadBurstPlan reads a BurstPlan manifest. Unknown fields are rejected.
func LoadBurstPlan(path string) (*v1alpha1.BurstPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read plan %s: %w", core.ErrConfiguration, path, err)
	}
	return ParseBurstPlan(data)
}

// ParseBurstPlan decodes a BurstPlan manifest and checks its kind.
func ParseBurstPlan(data []byte) (*v1alpha1.BurstPlan, error) {
	var plan v1alpha1.BurstPlan
	if err := yaml.UnmarshalStrict(data, &plan); err != nil {
		return nil, fmt.Errorf("%w: parse plan: %w", core.ErrConfiguration, err)
	}
	if plan.Kind != "" && plan.Kind != "BurstPlan" {
		return nil, fmt.Errorf("%w: expected kind BurstPlan, got %q", core.ErrConfiguration, plan.Kind)
	}
	if plan.APIVersion != "" && plan.APIVersion != v1alpha1.GroupVersion.String() {
		return nil, fmt.Errorf("%w: unsupported apiVersion %q", core.ErrConfiguration, plan.APIVersion)
	}
	return &plan, nil
}

// FromBurstPlan overlays the spec of plan onto base. Fields left unset in the
// spec keep the value from base. The result is validated.
func FromBurstPlan(plan *v1alpha1.BurstPlan, base PlannerConfig) (*PlannerConfig, error) {
	if plan == nil {
		return nil, fmt.Errorf("%w: plan cannot be nil", core.ErrConfiguration)
	}
	spec := plan.Spec
	cfg := base

	if spec.Jobs.Path != "" {
		cfg.JobsPath = spec.Jobs.Path
		cfg.LedgerPath = spec.Jobs.LedgerPath
	} else if spec.Jobs.LedgerPath != "" {
		cfg.LedgerPath = spec.Jobs.LedgerPath
	}
	if spec.Jobs.BatchSize != nil {
		cfg.BatchSize = int(*spec.Jobs.BatchSize)
	}
	if spec.Jobs.Seed != nil {
		if *spec.Jobs.Seed < 0 {
			return nil, fmt.Errorf("%w: spec.jobs.seed must be >= 0, got %d", core.ErrConfiguration, *spec.Jobs.Seed)
		}
		cfg.Seed = uint64(*spec.Jobs.Seed)
	}

	if spec.Site == "" {
		return nil, fmt.Errorf("%w: spec.site is required", core.ErrConfiguration)
	}
	cfg.Site = spec.Site
	if spec.FixedCount != nil {
		cfg.Fixed = int(*spec.FixedCount)
	}
	if spec.MaxElastic != nil {
		cfg.MaxElastic = int(*spec.MaxElastic)
	}
	if spec.Step != 0 {
		cfg.Step = int(spec.Step)
	}

	if spec.Elastic.InstanceType != "" {
		cfg.Instance = spec.Elastic.InstanceType
	}
	if spec.Elastic.PricingTier != "" {
		cfg.Tier = spec.Elastic.PricingTier
	}
	cfg.Multi = spec.Elastic.MultiInstance
	if len(spec.Elastic.PricingTiers) > 0 {
		cfg.Tiers = append([]string(nil), spec.Elastic.PricingTiers...)
	}
	cfg.ProcessingMode = ProcessingModeRatio
	if d := spec.Elastic.FixedJobDurationSeconds; d != nil {
		cfg.ProcessingMode = ProcessingModeFixed
		cfg.FixedJobDuration = float64(*d)
	}

	if spec.CostWeight != "" {
		w, err := strconv.ParseFloat(spec.CostWeight, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: spec.costWeight %q is not a number", core.ErrConfiguration, spec.CostWeight)
		}
		cfg.CostWeight = w
	}
	if spec.Constraints.MaxCost != "" {
		c, err := strconv.ParseFloat(spec.Constraints.MaxCost, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: spec.constraints.maxCost %q is not a number", core.ErrConfiguration, spec.Constraints.MaxCost)
		}
		cfg.MaxCost = c
	}
	if spec.Constraints.MaxMakespanSeconds != 0 {
		cfg.MaxMakespan = float64(spec.Constraints.MaxMakespanSeconds)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("plan %s: %w", plan.Name, err)
	}
	return &cfg, nil
}
