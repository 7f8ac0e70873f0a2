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

package pareto

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/burstplan/burstplan/pkg/core"
)

// Share counts the optimal points contributed by one instance type and pricing tier.
type Share struct {
	InstanceType string           `json:"instanceType,omitempty"`
	PricingTier  core.PricingTier `json:"pricingTier,omitempty"`
	Count        int              `json:"count"`
}

// Summary describes a frontier.
type Summary struct {
	Total     int `json:"total"`
	Optimal   int `json:"optimal"`
	Dominated int `json:"dominated"`
	// DominatedShare is the fraction of points that are dominated, in [0, 1].
	DominatedShare float64 `json:"dominatedShare"`

	// Baseline is the first fixed-pool-only point, if the sweep included one.
	Baseline *core.FrontierPoint `json:"baseline,omitempty"`
	// Fastest is the optimal point with the lowest makespan.
	Fastest *core.FrontierPoint `json:"fastest,omitempty"`
	// Speedup is Baseline.Makespan / Fastest.Makespan, or 0 when either is missing.
	Speedup float64 `json:"speedup,omitempty"`

	MinOptimalCost  float64 `json:"minOptimalCost"`
	MaxOptimalCost  float64 `json:"maxOptimalCost"`
	MeanOptimalCost float64 `json:"meanOptimalCost"`

	// Composition lists optimal point counts per (instance, tier) in order of first appearance.
	Composition []Share `json:"composition,omitempty"`
}

// Summarize computes statistics over a flagged frontier.
func Summarize(frontier []core.FrontierPoint) Summary {
	s := Summary{Total: len(frontier)}
	if len(frontier) == 0 {
		return s
	}

	for _, p := range frontier {
		if p.ElasticCount == 0 {
			baseline := p
			s.Baseline = &baseline
			break
		}
	}

	optimal := Optimal(frontier)
	s.Optimal = len(optimal)
	s.Dominated = s.Total - s.Optimal
	s.DominatedShare = float64(s.Dominated) / float64(s.Total)
	if len(optimal) == 0 {
		return s
	}

	cost := make([]float64, len(optimal))
	span := make([]float64, len(optimal))
	for i, p := range optimal {
		cost[i] = p.Cost
		span[i] = p.Makespan
	}
	s.MinOptimalCost = floats.Min(cost)
	s.MaxOptimalCost = floats.Max(cost)
	s.MeanOptimalCost = stat.Mean(cost, nil)

	fastest := optimal[floats.MinIdx(span)]
	s.Fastest = &fastest
	if s.Baseline != nil && fastest.Makespan > 0 {
		s.Speedup = s.Baseline.Makespan / fastest.Makespan
	}

	for _, p := range optimal {
		i := slices.IndexFunc(s.Composition, func(sh Share) bool {
			return sh.InstanceType == p.InstanceType && sh.PricingTier == p.PricingTier
		})
		if i < 0 {
			s.Composition = append(s.Composition, Share{InstanceType: p.InstanceType, PricingTier: p.PricingTier})
			i = len(s.Composition) - 1
		}
		s.Composition[i].Count++
	}
	return s
}

// SortByCost returns a copy of points ordered by cost, then makespan.
// Points with equal cost and makespan keep their relative order.
func SortByCost(points []core.FrontierPoint) []core.FrontierPoint {
	out := slices.Clone(points)
	slices.SortStableFunc(out, func(a, b core.FrontierPoint) int {
		switch {
		case a.Cost < b.Cost:
			return -1
		case a.Cost > b.Cost:
			return 1
		case a.Makespan < b.Makespan:
			return -1
		case a.Makespan > b.Makespan:
			return 1
		}
		return 0
	})
	return out
}
