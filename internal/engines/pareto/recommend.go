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
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/burstplan/burstplan/pkg/core"
)

// DefaultCostWeight balances cost and makespan equally.
const DefaultCostWeight = 0.5

// Recommend returns the Pareto-optimal point with the lowest weighted score
//
//	score = costWeight*costNorm + (1-costWeight)*makespanNorm
//
// where both axes are min-max normalized over the optimal points. Ties go to
// the earliest point. If no point is flagged optimal the first input point is
// returned; an empty frontier yields nil.
func Recommend(frontier []core.FrontierPoint, costWeight float64) (*core.FrontierPoint, error) {
	if math.IsNaN(costWeight) || costWeight < 0 || costWeight > 1 {
		return nil, fmt.Errorf("%w: cost weight must be in [0, 1], got %v", core.ErrConfiguration, costWeight)
	}
	if len(frontier) == 0 {
		return nil, nil
	}

	optimal := Optimal(frontier)
	if len(optimal) == 0 {
		first := frontier[0]
		return &first, nil
	}

	cost := make([]float64, len(optimal))
	span := make([]float64, len(optimal))
	for i, p := range optimal {
		cost[i] = p.Cost
		span[i] = p.Makespan
	}
	normalize(cost)
	normalize(span)

	// score = w*cost + (1-w)*span, computed in place in cost
	floats.Scale(costWeight, cost)
	floats.AddScaled(cost, 1-costWeight, span)

	best := optimal[floats.MinIdx(cost)]
	return &best, nil
}

// normalize rescales v to [0, 1] in place. A constant column becomes all zeros.
func normalize(v []float64) {
	lo, hi := floats.Min(v), floats.Max(v)
	if hi == lo {
		for i := range v {
			v[i] = 0
		}
		return
	}
	floats.AddConst(-lo, v)
	floats.Scale(1/(hi-lo), v)
}
