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

// Package optimizer implements the planning pipeline.
//
// The optimizer package orchestrates a planning run by coordinating the sweep
// generator, the dominance engine and the constraint limiter.
//
// Architecture:
//
// The optimizer follows a pipeline pattern:
//
//	Sweep → Dominance → Limiter → Recommendation
//	(Sweeper)  (Engine)   (Limiter)   (Recommend)
//
// Example usage:
//
//	opt, err := optimizer.NewOptimizer(optimizer.Config{
//	    CostWeight: 0.5,
//	    Limits:     limiter.LimiterConfig{MaxCost: 25},
//	}, recorder)
//	if err != nil {
//	    return err
//	}
//
//	result, err := opt.Plan(ctx, jobs, profile, model, 30)
//	if err != nil {
//	    return err
//	}
//	if result.Recommendation != nil {
//	    log.Info("recommended configuration",
//	        "config", result.Recommendation.ConfigID,
//	        "cost", result.Recommendation.Cost,
//	        "makespan", result.Recommendation.Makespan)
//	}
//
// Planning Flow:
//
//  1. Sweep
//     - Schedule the batch once per elastic pool size
//     - Multi-instance runs add every instance type and offered pricing tier
//
//  2. Dominance
//     - Flag every swept point Pareto-optimal or dominated
//     - Summarize the frontier
//
//  3. Limit
//     - Drop points that exceed the budget or deadline
//
//  4. Recommend
//     - Pick the feasible optimal point with the lowest weighted score
//     - Record frontier size and recommendation metrics
//
// Analyses:
//
// CompareSites runs the single-instance pipeline for several pool profiles with
// one cost model. The sensitivity analyses rerun it while varying one input:
// the hourly rate at a fixed speed ratio, the instance type at one pricing tier,
// or every instance type and pricing tier combination.
//
// Error Handling:
//
// Any configuration or input error aborts the run; there are no partial
// results. A run whose constraints exclude every point succeeds with a nil
// Recommendation.
package optimizer
