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

import "fmt"

// Assignment records where the scheduler placed one job.
type Assignment struct {
	JobName  string   `json:"jobName"`
	Category string   `json:"category,omitempty"`
	FPS      *float64 `json:"fps,omitempty"`

	// ProcessorID indexes fixed processors first, then elastic ones.
	ProcessorID int      `json:"processorID"`
	Pool        PoolKind `json:"pool"`

	// LocalDuration is the job's measured fixed-pool duration.
	LocalDuration float64 `json:"localDuration"`
	// EffectiveDuration is the time actually consumed on the assigned processor.
	EffectiveDuration float64 `json:"effectiveDuration"`
}

// RunResult is the outcome of scheduling one batch on one configuration.
type RunResult struct {
	ConfigID     string `json:"configID"`
	TotalJobs    int    `json:"totalJobs"`
	FixedCount   int    `json:"fixedCount"`
	ElasticCount int    `json:"elasticCount"`

	// ElasticCost is the total dollar cost incurred on the elastic pool.
	ElasticCost float64 `json:"elasticCost"`
	// Makespan is the maximum processor finish time across both pools, in seconds.
	Makespan float64 `json:"makespan"`

	FixedJobs     int     `json:"fixedJobs"`
	ElasticJobs   int     `json:"elasticJobs"`
	FixedFinish   float64 `json:"fixedFinish"`
	ElasticFinish float64 `json:"elasticFinish"`

	// Assignments is populated only when tracking was requested.
	Assignments []Assignment `json:"assignments,omitempty"`
}

// Bottleneck returns the pool that finishes last.
func (r RunResult) Bottleneck() PoolKind {
	if r.FixedFinish >= r.ElasticFinish {
		return PoolFixed
	}
	return PoolElastic
}

// SweepPoint is one swept configuration: its objectives and provenance.
type SweepPoint struct {
	ConfigID string `json:"configID"`

	// Cost and Makespan are the two minimised objectives.
	Cost     float64 `json:"cost"`
	Makespan float64 `json:"makespan"`

	FixedCount   int `json:"fixedCount"`
	ElasticCount int `json:"elasticCount"`

	// Provenance of multi-instance sweeps. Empty for single-instance sweeps
	// unless the cost model carried it.
	InstanceType string      `json:"instanceType,omitempty"`
	PricingTier  PricingTier `json:"pricingTier,omitempty"`
}

// FrontierPoint is a SweepPoint after the dominance pass.
type FrontierPoint struct {
	SweepPoint `json:",inline"`

	// Optimal is true when no other point in the evaluated set dominates this one.
	Optimal bool `json:"optimal"`
}

// ConfigID builds the single-instance configuration identifier, e.g. "G5_C10".
func ConfigID(fixedCount, elasticCount int) string {
	return fmt.Sprintf("G%d_C%d", fixedCount, elasticCount)
}

// MultiConfigID builds a configuration identifier carrying instance and tier,
// e.g. "NVIDIA L4_spot_G5_C10".
func MultiConfigID(gpu string, tier PricingTier, fixedCount, elasticCount int) string {
	return fmt.Sprintf("%s_%s_%s", gpu, tier, ConfigID(fixedCount, elasticCount))
}
