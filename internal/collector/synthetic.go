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
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/burstplan/burstplan/pkg/core"
)

const (
	// DefaultSyntheticMedian is the median local duration of a synthetic job in seconds.
	DefaultSyntheticMedian = 632.0
	// DefaultSyntheticSpread is the log-space standard deviation of synthetic durations.
	DefaultSyntheticSpread = 0.35
	// DefaultPitchingShare is the fraction of synthetic jobs tagged as pitching.
	DefaultPitchingShare = 0.7
)

// SyntheticConfig controls a SyntheticSource.
type SyntheticConfig struct {
	Size          int
	Seed          uint64
	Median        float64
	Spread        float64
	PitchingShare float64
	// MinDuration clamps generated durations from below.
	MinDuration float64
}

// DefaultSyntheticConfig returns a batch shaped like one game of captures.
func DefaultSyntheticConfig() SyntheticConfig {
	return SyntheticConfig{
		Size:          DefaultBatchSize,
		Seed:          DefaultSeed,
		Median:        DefaultSyntheticMedian,
		Spread:        DefaultSyntheticSpread,
		PitchingShare: DefaultPitchingShare,
		MinDuration:   DefaultMinDuration,
	}
}

// SyntheticSource generates log-normally distributed job durations when no
// measured results are available.
type SyntheticSource struct {
	config SyntheticConfig
}

// NewSyntheticSource validates config and creates a SyntheticSource.
func NewSyntheticSource(config SyntheticConfig) (*SyntheticSource, error) {
	switch {
	case config.Size < 0:
		return nil, fmt.Errorf("%w: synthetic batch size must be non-negative, got %d", core.ErrConfiguration, config.Size)
	case !(config.Median > 0) || math.IsInf(config.Median, 0):
		return nil, fmt.Errorf("%w: synthetic median must be positive, got %v", core.ErrConfiguration, config.Median)
	case !(config.Spread >= 0) || math.IsInf(config.Spread, 0):
		return nil, fmt.Errorf("%w: synthetic spread must be non-negative, got %v", core.ErrConfiguration, config.Spread)
	case !(config.PitchingShare >= 0 && config.PitchingShare <= 1):
		return nil, fmt.Errorf("%w: pitching share must be between 0 and 1, got %v", core.ErrConfiguration, config.PitchingShare)
	case config.MinDuration < 0:
		return nil, fmt.Errorf("%w: min duration must be non-negative, got %v", core.ErrConfiguration, config.MinDuration)
	}
	return &SyntheticSource{config: config}, nil
}

// Name implements JobSource.
func (s *SyntheticSource) Name() string {
	return fmt.Sprintf("synthetic(n=%d, seed=%d)", s.config.Size, s.config.Seed)
}

// Load implements JobSource. The same config always yields the same jobs.
func (s *SyntheticSource) Load(ctx context.Context) ([]core.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := s.config
	src := rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)
	rng := rand.New(src)
	durations := distuv.LogNormal{Mu: math.Log(cfg.Median), Sigma: cfg.Spread, Src: src}

	jobs := make([]core.Job, cfg.Size)
	for i := range jobs {
		category := "Batting"
		if rng.Float64() < cfg.PitchingShare {
			category = "Pitching"
		}
		jobs[i] = core.Job{
			Name:          fmt.Sprintf("synthetic-%04d", i),
			Category:      category,
			LocalDuration: math.Max(durations.Rand(), math.Max(cfg.MinDuration, 1)),
		}
	}
	return jobs, nil
}
