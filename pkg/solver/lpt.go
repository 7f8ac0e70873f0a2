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

package solver

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/burstplan/burstplan/pkg/core"
)

// Schedule assigns jobs to fixedCount fixed and elasticCount elastic processors
// using LPT and reports cost and timing. It fails with core.ErrConfiguration
// when no processor is available or a count is negative, and with
// core.ErrInvalidInput when a job has a non-positive duration.
// When trackAssignments is set, the result lists one Assignment per job in
// placement order.
func Schedule(
	jobs []core.Job,
	fixedCount, elasticCount int,
	model core.ElasticCostModel,
	trackAssignments bool,
) (core.RunResult, error) {
	if fixedCount < 0 || elasticCount < 0 {
		return core.RunResult{}, fmt.Errorf("%w: processor counts must be non-negative, got fixed=%d elastic=%d",
			core.ErrConfiguration, fixedCount, elasticCount)
	}
	if fixedCount+elasticCount == 0 {
		return core.RunResult{}, fmt.Errorf("%w: at least one processor (fixed or elastic) is required", core.ErrConfiguration)
	}
	if err := model.Validate(); err != nil {
		return core.RunResult{}, err
	}
	if err := core.ValidateJobs(jobs); err != nil {
		return core.RunResult{}, err
	}

	result := core.RunResult{
		ConfigID:     core.ConfigID(fixedCount, elasticCount),
		TotalJobs:    len(jobs),
		FixedCount:   fixedCount,
		ElasticCount: elasticCount,
	}
	if trackAssignments {
		result.Assignments = make([]core.Assignment, 0, len(jobs))
	}

	h := newLoadHeap(fixedCount, elasticCount, model.StartupOverhead)
	for _, idx := range longestFirst(jobs) {
		job := &jobs[idx]
		id := h.least()
		elastic := h.procs[id].elastic

		var elapsed float64
		if elastic {
			elapsed = model.JobDuration(job.LocalDuration)
			result.ElasticCost += model.JobCost(job.LocalDuration)
			result.ElasticJobs++
		} else {
			elapsed = job.LocalDuration
			result.FixedJobs++
		}

		if trackAssignments {
			pool := core.PoolFixed
			if elastic {
				pool = core.PoolElastic
			}
			result.Assignments = append(result.Assignments, core.Assignment{
				JobName:           job.Name,
				Category:          job.Category,
				FPS:               job.FPS,
				ProcessorID:       id,
				Pool:              pool,
				LocalDuration:     job.LocalDuration,
				EffectiveDuration: elapsed,
			})
		}

		h.addToLeast(elapsed)
	}

	for _, p := range h.procs {
		result.Makespan = max(result.Makespan, p.load)
		if p.elastic {
			result.ElasticFinish = max(result.ElasticFinish, p.load)
		} else {
			result.FixedFinish = max(result.FixedFinish, p.load)
		}
	}
	return result, nil
}

// longestFirst returns job indices sorted by local duration, longest first.
// Equal durations keep input order.
func longestFirst(jobs []core.Job) []int {
	order := make([]int, len(jobs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(jobs[b].LocalDuration, jobs[a].LocalDuration)
	})
	return order
}
