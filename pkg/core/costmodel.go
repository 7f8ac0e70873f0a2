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

package core

import (
	"fmt"
	"math"
)

// PricingTier is a billing mode of an elastic instance type.
type PricingTier string

const (
	TierOnDemand    PricingTier = "ondemand"
	TierSpot        PricingTier = "spot"
	TierReserved1Yr PricingTier = "1yr_ri"
	TierReserved3Yr PricingTier = "3yr_ri"
)

// PricingTiers lists every known tier in display order.
var PricingTiers = []PricingTier{TierOnDemand, TierSpot, TierReserved1Yr, TierReserved3Yr}

var tierLabels = map[PricingTier]string{
	TierOnDemand:    "On-Demand",
	TierSpot:        "Spot",
	TierReserved1Yr: "1yr RI",
	TierReserved3Yr: "3yr RI",
}

// ParsePricingTier converts a string into a known PricingTier.
func ParsePricingTier(s string) (PricingTier, error) {
	t := PricingTier(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown pricing tier %q", ErrConfiguration, s)
	}
	return t, nil
}

// Valid reports whether t is one of the known tiers.
func (t PricingTier) Valid() bool {
	_, ok := tierLabels[t]
	return ok
}

// Label returns a human-readable name of the tier.
func (t PricingTier) Label() string {
	if l, ok := tierLabels[t]; ok {
		return l
	}
	return string(t)
}

const (
	// SecondsPerHour converts durations in seconds to billed hours.
	SecondsPerHour = 3600.0

	// DefaultStartupOverhead is the elastic processor start-up time in seconds.
	DefaultStartupOverhead = 30.0
	// DefaultTransferCost is the per-job data transfer charge in dollars.
	DefaultTransferCost = 0.02
	// DefaultFixedJobDuration is the per-job elastic duration in seconds used when no
	// speed ratio is configured (23 min average from the T4 pilot).
	DefaultFixedJobDuration = 1378.0
	// DefaultHourlyRate is the on-demand rate of the reference instance.
	DefaultHourlyRate = 0.526
)

// ElasticCostModel describes price and speed of one elastic processor configuration.
//
// Timing supports two modes:
//   - ratio mode (Ratio != nil): elastic duration = Ratio * local duration
//   - fixed mode: every job takes FixedJobDuration seconds
//
// Ratio mode takes precedence. In both modes TransferSeconds is added to the
// elapsed time of each job and TransferCost is charged once per job.
// StartupOverhead is charged once per elastic processor by the scheduler, never per job.
type ElasticCostModel struct {
	// InstanceType and PricingTier record provenance only.
	InstanceType string      `json:"instanceType,omitempty"`
	PricingTier  PricingTier `json:"pricingTier,omitempty"`

	// HourlyRate is the price of one elastic processor in dollars per hour.
	HourlyRate float64 `json:"hourlyRate"`

	// StartupOverhead is paid once per elastic processor, in seconds.
	StartupOverhead float64 `json:"startupOverhead"`

	// TransferSeconds is the per-job data transfer time.
	TransferSeconds float64 `json:"transferSeconds"`

	// TransferCost is the per-job data transfer charge in dollars.
	TransferCost float64 `json:"transferCost"`

	// FixedJobDuration is the per-job duration in seconds when Ratio is nil.
	FixedJobDuration float64 `json:"fixedJobDuration"`

	// Ratio converts a local duration into an elastic duration.
	Ratio *float64 `json:"ratio,omitempty"`
}

// DefaultElasticCostModel returns the reference on-demand configuration in fixed-duration mode.
func DefaultElasticCostModel() ElasticCostModel {
	return ElasticCostModel{
		InstanceType:     "g4dn.xlarge",
		PricingTier:      TierOnDemand,
		HourlyRate:       DefaultHourlyRate,
		StartupOverhead:  DefaultStartupOverhead,
		TransferCost:     DefaultTransferCost,
		FixedJobDuration: DefaultFixedJobDuration,
	}
}

// Validate checks that every rate, duration and ratio is a finite non-negative number.
func (m ElasticCostModel) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"hourlyRate", m.HourlyRate},
		{"startupOverhead", m.StartupOverhead},
		{"transferSeconds", m.TransferSeconds},
		{"transferCost", m.TransferCost},
		{"fixedJobDuration", m.FixedJobDuration},
	}
	for _, f := range fields {
		if !nonNegative(f.value) {
			return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrConfiguration, f.name, f.value)
		}
	}
	if m.Ratio != nil && !nonNegative(*m.Ratio) {
		return fmt.Errorf("%w: ratio must be a non-negative number, got %v", ErrConfiguration, *m.Ratio)
	}
	if m.PricingTier != "" && !m.PricingTier.Valid() {
		return fmt.Errorf("%w: unknown pricing tier %q", ErrConfiguration, m.PricingTier)
	}
	return nil
}

// RatioMode reports whether elastic durations scale with the local duration.
func (m ElasticCostModel) RatioMode() bool {
	return m.Ratio != nil
}

// ProcessingTime returns the compute time of a job on an elastic processor, excluding transfer.
func (m ElasticCostModel) ProcessingTime(localDuration float64) float64 {
	if m.Ratio != nil {
		return *m.Ratio * localDuration
	}
	return m.FixedJobDuration
}

// JobDuration returns the elapsed time a job occupies an elastic processor.
func (m ElasticCostModel) JobDuration(localDuration float64) float64 {
	return m.ProcessingTime(localDuration) + m.TransferSeconds
}

// JobCost returns the dollar cost of one job on an elastic processor (compute + transfer).
func (m ElasticCostModel) JobCost(localDuration float64) float64 {
	return m.ProcessingTime(localDuration)/SecondsPerHour*m.HourlyRate + m.TransferCost
}

// LocalHourCost is the price of doing one fixed-pool hour of work on the elastic pool.
// It is only meaningful in ratio mode; in fixed mode it returns the hourly rate.
func (m ElasticCostModel) LocalHourCost() float64 {
	if m.Ratio != nil {
		return m.HourlyRate * *m.Ratio
	}
	return m.HourlyRate
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
