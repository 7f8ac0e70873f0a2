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

package report

import (
	"gonum.org/v1/gonum/stat"

	"github.com/burstplan/burstplan/internal/utils/category"
	"github.com/burstplan/burstplan/pkg/core"
)

// PoolBreakdown describes how one pool was used by a schedule.
type PoolBreakdown struct {
	Pool       core.PoolKind `json:"pool"`
	Processors int           `json:"processors"`
	Jobs       int           `json:"jobs"`
	Finish     float64       `json:"finish"`
	// MeanLocalDuration is the mean fixed-pool duration of the jobs placed on the pool.
	MeanLocalDuration float64                   `json:"meanLocalDuration"`
	Categories        map[category.Category]int `json:"categories"`
}

// Breakdown summarises a tracked schedule per pool.
type Breakdown struct {
	ConfigID   string          `json:"configID"`
	TotalJobs  int             `json:"totalJobs"`
	Makespan   float64         `json:"makespan"`
	Cost       float64         `json:"cost"`
	Bottleneck core.PoolKind   `json:"bottleneck"`
	Pools      []PoolBreakdown `json:"pools"`
}

// NewBreakdown builds a Breakdown from a schedule run with assignment tracking.
// Pools are listed fixed first.
func NewBreakdown(run core.RunResult, labels category.LabelConfig) Breakdown {
	b := Breakdown{
		ConfigID:   run.ConfigID,
		TotalJobs:  run.TotalJobs,
		Makespan:   run.Makespan,
		Cost:       run.ElasticCost,
		Bottleneck: run.Bottleneck(),
	}
	pools := []struct {
		kind       core.PoolKind
		processors int
		finish     float64
	}{
		{core.PoolFixed, run.FixedCount, run.FixedFinish},
		{core.PoolElastic, run.ElasticCount, run.ElasticFinish},
	}
	for _, p := range pools {
		pb := PoolBreakdown{
			Pool:       p.kind,
			Processors: p.processors,
			Finish:     p.finish,
			Categories: make(map[category.Category]int, len(category.All)),
		}
		for _, c := range category.All {
			pb.Categories[c] = 0
		}
		var durations []float64
		for _, a := range run.Assignments {
			if a.Pool != p.kind {
				continue
			}
			pb.Jobs++
			pb.Categories[category.Detect(a.Category, labels)]++
			durations = append(durations, a.LocalDuration)
		}
		if len(durations) > 0 {
			pb.MeanLocalDuration = stat.Mean(durations, nil)
		}
		b.Pools = append(b.Pools, pb)
	}
	return b
}
