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

package limiter

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burstplan/burstplan/pkg/core"
)

func fp(id string, cost, makespan float64) core.FrontierPoint {
	return core.FrontierPoint{SweepPoint: core.SweepPoint{ConfigID: id, Cost: cost, Makespan: makespan}, Optimal: true}
}

func ids(points []core.FrontierPoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.ConfigID
	}
	return out
}

var frontier = []core.FrontierPoint{
	fp("G5_C0", 0, 10000),
	fp("G5_C5", 50, 7000),
	fp("G5_C10", 100, 5000),
	fp("G5_C20", 180, 4200),
}

func TestNewLimiter(t *testing.T) {
	tests := []struct {
		name     string
		strategy LimiterStrategy
		config   *LimiterConfig
		wantErr  bool
	}{
		{name: "Test case 1: Budget", strategy: BudgetStrategy, config: &LimiterConfig{MaxCost: 10}},
		{name: "Test case 2: Deadline", strategy: DeadlineStrategy, config: &LimiterConfig{MaxMakespan: 3600}},
		{name: "Test case 3: Envelope", strategy: EnvelopeStrategy, config: &LimiterConfig{MaxCost: 1, MaxMakespan: 1}},
		{name: "Test case 4: Nil configuration", strategy: BudgetStrategy, config: nil, wantErr: true},
		{name: "Test case 5: Nil configuration for envelope", strategy: EnvelopeStrategy, config: nil, wantErr: true},
		{name: "Test case 6: Negative budget", strategy: BudgetStrategy, config: &LimiterConfig{MaxCost: -1}, wantErr: true},
		{name: "Test case 7: NaN deadline", strategy: DeadlineStrategy, config: &LimiterConfig{MaxMakespan: math.NaN()}, wantErr: true},
		{name: "Test case 8: Unknown strategy", strategy: LimiterStrategy(42), config: &LimiterConfig{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewLimiter(tt.strategy, tt.config)
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrConfiguration)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestLimit(t *testing.T) {
	tests := []struct {
		name     string
		strategy LimiterStrategy
		config   LimiterConfig
		want     []string
	}{
		{name: "no budget keeps everything", strategy: BudgetStrategy, want: []string{"G5_C0", "G5_C5", "G5_C10", "G5_C20"}},
		{name: "budget is inclusive", strategy: BudgetStrategy, config: LimiterConfig{MaxCost: 100}, want: []string{"G5_C0", "G5_C5", "G5_C10"}},
		{name: "budget ignores deadline", strategy: BudgetStrategy, config: LimiterConfig{MaxCost: 60, MaxMakespan: 1}, want: []string{"G5_C0", "G5_C5"}},
		{name: "deadline", strategy: DeadlineStrategy, config: LimiterConfig{MaxMakespan: 7000}, want: []string{"G5_C5", "G5_C10", "G5_C20"}},
		{name: "envelope", strategy: EnvelopeStrategy, config: LimiterConfig{MaxCost: 150, MaxMakespan: 8000}, want: []string{"G5_C5", "G5_C10"}},
		{name: "nothing feasible", strategy: EnvelopeStrategy, config: LimiterConfig{MaxCost: 10, MaxMakespan: 4000}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLimiter(tt.strategy, &tt.config)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(l.Limit(context.Background(), frontier)))
		})
	}
}

func TestForConfig(t *testing.T) {
	tests := []struct {
		name   string
		config LimiterConfig
		want   any
	}{
		{name: "unlimited", config: LimiterConfig{}, want: &BudgetLimiter{}},
		{name: "budget only", config: LimiterConfig{MaxCost: 5}, want: &BudgetLimiter{}},
		{name: "deadline only", config: LimiterConfig{MaxMakespan: 5}, want: &DeadlineLimiter{}},
		{name: "both", config: LimiterConfig{MaxCost: 5, MaxMakespan: 5}, want: &EnvelopeLimiter{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := ForConfig(tt.config)
			require.NoError(t, err)
			assert.IsType(t, tt.want, l)
		})
	}

	_, err := ForConfig(LimiterConfig{MaxCost: -3})
	assert.ErrorIs(t, err, core.ErrConfiguration)
}

func TestLimitKeepsFlagsAndInput(t *testing.T) {
	in := []core.FrontierPoint{fp("a", 1, 1), {SweepPoint: core.SweepPoint{ConfigID: "b", Cost: 2, Makespan: 2}}}
	l, err := NewBudgetLimiter(&LimiterConfig{MaxCost: 5})
	require.NoError(t, err)

	out := l.Limit(context.Background(), in)
	require.Len(t, out, 2)
	assert.True(t, out[0].Optimal)
	assert.False(t, out[1].Optimal)

	out[0].ConfigID = "changed"
	assert.Equal(t, "a", in[0].ConfigID)
}

func TestLimiterConfig(t *testing.T) {
	assert.True(t, LimiterConfig{}.Unlimited())
	assert.False(t, LimiterConfig{MaxCost: 1}.Unlimited())
	assert.Equal(t, "envelope", EnvelopeStrategy.String())
	assert.Equal(t, "LimiterStrategy(9)", LimiterStrategy(9).String())
}
