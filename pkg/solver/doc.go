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

// Package solver implements the batch scheduler of the burst planner.
//
// The solver assigns a batch of independent jobs to the processors of a
// fixed pool and an elastic pool so as to approximately minimise the makespan,
// and reports the elastic cost incurred.
//
// Algorithm:
//
// Longest-Processing-Time-First (LPT), a 4/3-approximation of the optimal
// makespan for independent jobs on identical machines:
//  1. Sort jobs by local duration, longest first
//  2. Start fixed processors at load 0 and elastic processors at their start-up overhead
//  3. Place each job on the least-loaded processor; elastic placements take the
//     cost model's duration (including transfer) and accrue its cost
//  4. The makespan is the largest final load; per-pool finish times are the
//     largest final loads within each pool
//
// The processor loads live in an index-backed min-heap, so one run costs
// O(N log P) for N jobs and P processors with no per-job allocation.
//
// Example usage:
//
//	result, err := solver.Schedule(jobs, profile.FixedCount, 10, model, false)
//	if err != nil {
//	    return err
//	}
//	log.Info("scheduled batch",
//	    "config", result.ConfigID,
//	    "makespan", result.Makespan,
//	    "cost", result.ElasticCost)
//
// Schedule is deterministic and safe to call concurrently: jobs are read only
// and every call owns its processor state.
package solver
