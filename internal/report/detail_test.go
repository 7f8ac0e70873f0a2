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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/burstplan/burstplan/internal/utils/category"
	"github.com/burstplan/burstplan/pkg/core"
	"github.com/burstplan/burstplan/pkg/solver"
)

func TestNewBreakdown(t *testing.T) {
	jobs := []core.Job{
		{Name: "a", Category: "Pitching", LocalDuration: 100},
		{Name: "b", Category: "batting", LocalDuration: 80},
		{Name: "c", Category: "Pitching", LocalDuration: 60},
		{Name: "d", Category: "bullpen", LocalDuration: 40},
	}
	model := core.ElasticCostModel{HourlyRate: 3600, Ratio: ptr.To(1.0)}
	run, err := solver.Schedule(jobs, 1, 1, model, true)
	require.NoError(t, err)

	b := NewBreakdown(run, category.DefaultLabelConfig())
	assert.Equal(t, "G1_C1", b.ConfigID)
	assert.Equal(t, 4, b.TotalJobs)
	assert.Equal(t, run.Makespan, b.Makespan)
	assert.Equal(t, run.ElasticCost, b.Cost)
	require.Len(t, b.Pools, 2)

	fixed, elastic := b.Pools[0], b.Pools[1]
	assert.Equal(t, core.PoolFixed, fixed.Pool)
	assert.Equal(t, core.PoolElastic, elastic.Pool)

	// 100 -> fixed, 80 -> elastic, 60 -> elastic (80 < 100), 40 -> fixed (100 < 140)
	assert.Equal(t, 2, fixed.Jobs)
	assert.Equal(t, 2, elastic.Jobs)
	assert.Equal(t, 140.0, fixed.Finish)
	assert.Equal(t, 140.0, elastic.Finish)
	assert.InDelta(t, 70.0, fixed.MeanLocalDuration, 1e-12)
	assert.InDelta(t, 70.0, elastic.MeanLocalDuration, 1e-12)

	assert.Equal(t, map[category.Category]int{category.Pitching: 1, category.Batting: 0, category.Unknown: 1}, fixed.Categories)
	assert.Equal(t, map[category.Category]int{category.Pitching: 1, category.Batting: 1, category.Unknown: 0}, elastic.Categories)
	assert.Equal(t, core.PoolFixed, b.Bottleneck)
}

func TestNewBreakdownWithoutAssignments(t *testing.T) {
	run, err := solver.Schedule([]core.Job{{Name: "a", LocalDuration: 10}}, 1, 0, core.DefaultElasticCostModel(), false)
	require.NoError(t, err)

	b := NewBreakdown(run, category.DefaultLabelConfig())
	require.Len(t, b.Pools, 2)
	for _, p := range b.Pools {
		assert.Zero(t, p.Jobs)
		assert.Zero(t, p.MeanLocalDuration)
	}
	assert.Equal(t, 10.0, b.Pools[0].Finish)
}
