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
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/burstplan/burstplan/pkg/core"
)

var errUnknownMethod = errors.New("unknown dominance method")

// Dominates reports whether a dominates b: a is weakly better on both cost and
// makespan and strictly better on at least one.
func Dominates(a, b core.SweepPoint) bool {
	if a.Cost > b.Cost || a.Makespan > b.Makespan {
		return false
	}
	return a.Cost < b.Cost || a.Makespan < b.Makespan
}

// Method selects a dominance engine implementation.
type Method int

// enumeration of Method
const (
	Pairwise Method = iota
	Vectorized
)

func (m Method) String() string {
	switch m {
	case Pairwise:
		return "pairwise"
	case Vectorized:
		return "vectorized"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts a method name into a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pairwise":
		return Pairwise, nil
	case "vectorized":
		return Vectorized, nil
	default:
		return 0, fmt.Errorf("%w: %w %q", core.ErrConfiguration, errUnknownMethod, s)
	}
}

// Engine flags every point of a sweep as Pareto-optimal or dominated.
type Engine interface {
	// Frontier returns one FrontierPoint per input point, in input order.
	// Provenance fields are carried over unchanged.
	Frontier(points []core.SweepPoint) []core.FrontierPoint
}

// NewEngine is a factory that creates an Engine for the given method.
func NewEngine(method Method) (Engine, error) {
	switch method {
	case Pairwise:
		return PairwiseEngine{}, nil
	case Vectorized:
		return VectorizedEngine{}, nil
	default:
		return nil, fmt.Errorf("%w: %w: %v", core.ErrConfiguration, errUnknownMethod, method)
	}
}

// PairwiseEngine checks every ordered pair of points.
type PairwiseEngine struct{}

// Frontier implements Engine.
func (PairwiseEngine) Frontier(points []core.SweepPoint) []core.FrontierPoint {
	out := make([]core.FrontierPoint, len(points))
	for i, p := range points {
		optimal := true
		for j, q := range points {
			if i != j && Dominates(q, p) {
				optimal = false
				break
			}
		}
		out[i] = core.FrontierPoint{SweepPoint: p, Optimal: optimal}
	}
	return out
}

// VectorizedEngine evaluates each point against whole cost and makespan columns.
type VectorizedEngine struct{}

// Frontier implements Engine.
func (VectorizedEngine) Frontier(points []core.SweepPoint) []core.FrontierPoint {
	n := len(points)
	cost := make([]float64, n)
	span := make([]float64, n)
	for i, p := range points {
		cost[i] = p.Cost
		span[i] = p.Makespan
	}

	// dc[j] and ds[j] hold the signed distance of every point from point i;
	// for finite values the sign of a-b matches the comparison of a and b.
	dc := make([]float64, n)
	ds := make([]float64, n)
	out := make([]core.FrontierPoint, n)
	for i, p := range points {
		copy(dc, cost)
		copy(ds, span)
		floats.AddConst(-cost[i], dc)
		floats.AddConst(-span[i], ds)

		optimal := true
		for j := range n {
			if dc[j] <= 0 && ds[j] <= 0 && (dc[j] < 0 || ds[j] < 0) {
				optimal = false
				break
			}
		}
		out[i] = core.FrontierPoint{SweepPoint: p, Optimal: optimal}
	}
	return out
}

// Optimal returns the Pareto-optimal points of a frontier, in input order.
func Optimal(frontier []core.FrontierPoint) []core.FrontierPoint {
	var out []core.FrontierPoint
	for _, p := range frontier {
		if p.Optimal {
			out = append(out, p)
		}
	}
	return out
}
