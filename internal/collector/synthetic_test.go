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

package collector

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/burstplan/burstplan/pkg/core"
)

func TestSyntheticSource(t *testing.T) {
	cfg := DefaultSyntheticConfig()
	src, err := NewSyntheticSource(cfg)
	require.NoError(t, err)
	assert.Equal(t, "synthetic(n=600, seed=42)", src.Name())

	jobs, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 600)
	require.NoError(t, core.ValidateJobs(jobs))

	durations := make([]float64, len(jobs))
	var pitching int
	for i, j := range jobs {
		durations[i] = j.LocalDuration
		assert.GreaterOrEqual(t, j.LocalDuration, cfg.MinDuration)
		if j.Category == "Pitching" {
			pitching++
		}
	}
	slices.Sort(durations)
	median := stat.Quantile(0.5, stat.Empirical, durations, nil)
	assert.InEpsilon(t, cfg.Median, median, 0.15)
	assert.InDelta(t, cfg.PitchingShare, float64(pitching)/600, 0.1)

	again, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, jobs, again, "same seed yields the same batch")
}

func TestSyntheticSourceSeedsDiffer(t *testing.T) {
	a, err := NewSyntheticSource(SyntheticConfig{Size: 20, Seed: 1, Median: 600, Spread: 0.3, PitchingShare: 0.5})
	require.NoError(t, err)
	b, err := NewSyntheticSource(SyntheticConfig{Size: 20, Seed: 2, Median: 600, Spread: 0.3, PitchingShare: 0.5})
	require.NoError(t, err)

	ja, err := a.Load(context.Background())
	require.NoError(t, err)
	jb, err := b.Load(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, ja, jb)
}

func TestSyntheticSourceZeroSpread(t *testing.T) {
	src, err := NewSyntheticSource(SyntheticConfig{Size: 5, Median: 300, PitchingShare: 1})
	require.NoError(t, err)
	jobs, err := src.Load(context.Background())
	require.NoError(t, err)
	for _, j := range jobs {
		assert.InDelta(t, 300.0, j.LocalDuration, 1e-9)
		assert.Equal(t, "Pitching", j.Category)
	}
}

func TestNewSyntheticSourceRejectsBadConfig(t *testing.T) {
	base := DefaultSyntheticConfig()
	tests := []struct {
		name   string
		modify func(*SyntheticConfig)
	}{
		{name: "negative size", modify: func(c *SyntheticConfig) { c.Size = -1 }},
		{name: "zero median", modify: func(c *SyntheticConfig) { c.Median = 0 }},
		{name: "negative spread", modify: func(c *SyntheticConfig) { c.Spread = -0.1 }},
		{name: "share above one", modify: func(c *SyntheticConfig) { c.PitchingShare = 1.5 }},
		{name: "negative min duration", modify: func(c *SyntheticConfig) { c.MinDuration = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.modify(&cfg)
			_, err := NewSyntheticSource(cfg)
			assert.ErrorIs(t, err, core.ErrConfiguration)
		})
	}
}

func TestSyntheticSourceCancelled(t *testing.T) {
	src, err := NewSyntheticSource(DefaultSyntheticConfig())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
