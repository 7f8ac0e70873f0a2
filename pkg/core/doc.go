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

// Package core provides the domain model of the burst planner.
//
// The planner decides how a fixed-size batch of independent jobs should be
// split between a fixed pool of local processors (already paid for) and an
// elastic pool of metered processors. The types in this package describe:
//
//   - Job: one unit of work with a duration measured on the fixed pool
//   - PoolProfile: a named fixed pool (site) and its processor count
//   - ElasticCostModel: price and speed of one elastic configuration
//   - RunResult: the outcome of scheduling one batch on one configuration
//   - SweepPoint / FrontierPoint: one swept configuration before and after
//     the dominance pass
//
// Example usage:
//
//	model := core.DefaultElasticCostModel()
//	model.HourlyRate = 0.344
//	model.Ratio = ptr.To(1.278)
//
//	elapsed := model.JobDuration(job.LocalDuration)
//	dollars := model.JobCost(job.LocalDuration)
//
// All types are value objects. Nothing in the planner mutates a Job after it
// has been loaded.
package core
