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

// Package catalog holds the immutable collections of elastic instance types
// and fixed pool profiles that a planning run is evaluated against.
package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/burstplan/burstplan/pkg/core"
)

var errTierUnavailable = errors.New("pricing tier not available")

// Rates holds the hourly price of an instance under each pricing tier.
// Reserved tiers are optional: nil means the tier is not offered, which is
// different from a zero rate.
type Rates struct {
	OnDemand    float64  `json:"ondemand" yaml:"ondemand"`
	Spot        float64  `json:"spot" yaml:"spot"`
	Reserved1Yr *float64 `json:"1yr_ri,omitempty" yaml:"1yr_ri,omitempty"`
	Reserved3Yr *float64 `json:"3yr_ri,omitempty" yaml:"3yr_ri,omitempty"`
}

// InstanceType is one metered processor type.
type InstanceType struct {
	// Name is the provider instance name (e.g. "g4dn.xlarge").
	Name string `json:"name" yaml:"name"`
	// GPU is the accelerator model (e.g. "Tesla T4").
	GPU string `json:"gpu" yaml:"gpu"`

	Rates Rates `json:"rates" yaml:"rates"`

	// Ratio is the elastic/fixed processing time ratio measured in benchmarks.
	// Required and strictly positive.
	Ratio float64 `json:"ratio" yaml:"ratio"`

	// Measured is true when Ratio comes from real benchmark data.
	Measured bool `json:"measured,omitempty" yaml:"measured,omitempty"`
}

// Validate checks names, rates and ratio.
func (it InstanceType) Validate() error {
	if it.Name == "" {
		return fmt.Errorf("%w: instance type has empty name", core.ErrConfiguration)
	}
	if it.GPU == "" {
		return fmt.Errorf("%w: instance type %q has empty gpu", core.ErrConfiguration, it.Name)
	}
	if it.Rates.OnDemand < 0 || it.Rates.Spot < 0 {
		return fmt.Errorf("%w: instance type %q has a negative rate", core.ErrConfiguration, it.Name)
	}
	for _, r := range []*float64{it.Rates.Reserved1Yr, it.Rates.Reserved3Yr} {
		if r != nil && *r < 0 {
			return fmt.Errorf("%w: instance type %q has a negative reserved rate", core.ErrConfiguration, it.Name)
		}
	}
	// A missing ratio decodes as zero, which would make elastic compute free.
	if math.IsNaN(it.Ratio) || math.IsInf(it.Ratio, 0) || it.Ratio <= 0 {
		return fmt.Errorf("%w: instance type %q needs a positive ratio, got %v", core.ErrConfiguration, it.Name, it.Ratio)
	}
	return nil
}

// RateFor returns the hourly rate for a tier. Requesting a tier the instance
// does not offer is a configuration error; no other tier is substituted.
func (it InstanceType) RateFor(tier core.PricingTier) (float64, error) {
	var rate *float64
	switch tier {
	case core.TierOnDemand:
		rate = &it.Rates.OnDemand
	case core.TierSpot:
		rate = &it.Rates.Spot
	case core.TierReserved1Yr:
		rate = it.Rates.Reserved1Yr
	case core.TierReserved3Yr:
		rate = it.Rates.Reserved3Yr
	default:
		return 0, fmt.Errorf("%w: unknown pricing tier %q", core.ErrConfiguration, tier)
	}
	if rate == nil {
		return 0, fmt.Errorf("%w: %w: %s pricing for %s (%s)", core.ErrConfiguration, errTierUnavailable, tier, it.Name, it.GPU)
	}
	return *rate, nil
}

// Offers reports whether the tier is available for this instance.
func (it InstanceType) Offers(tier core.PricingTier) bool {
	_, err := it.RateFor(tier)
	return err == nil
}

// AvailableTiers lists the tiers this instance offers, in display order.
func (it InstanceType) AvailableTiers() []core.PricingTier {
	tiers := make([]core.PricingTier, 0, len(core.PricingTiers))
	for _, t := range core.PricingTiers {
		if it.Offers(t) {
			tiers = append(tiers, t)
		}
	}
	return tiers
}

// CostModel builds a ratio-mode cost model for the given tier. Overheads
// (start-up, transfer) are taken from base; rate, ratio and provenance come
// from the instance.
func (it InstanceType) CostModel(tier core.PricingTier, base core.ElasticCostModel) (core.ElasticCostModel, error) {
	rate, err := it.RateFor(tier)
	if err != nil {
		return core.ElasticCostModel{}, err
	}
	ratio := it.Ratio
	m := base
	m.InstanceType = it.Name
	m.PricingTier = tier
	m.HourlyRate = rate
	m.Ratio = &ratio
	if err := m.Validate(); err != nil {
		return core.ElasticCostModel{}, fmt.Errorf("cost model for %s/%s: %w", it.Name, tier, err)
	}
	return m, nil
}
