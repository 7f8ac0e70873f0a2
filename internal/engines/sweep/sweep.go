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

// Package sweep drives the scheduler across ranges of elastic pool sizes,
// for one cost model or for every instance type and pricing tier of a catalog.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/burstplan/burstplan/internal/logging"
	"github.com/burstplan/burstplan/internal/metrics"
	"github.com/burstplan/burstplan/pkg/catalog"
	"github.com/burstplan/burstplan/pkg/core"
	"github.com/burstplan/burstplan/pkg/solver"
)

const (
	// DefaultStep is the elastic pool size increment.
	DefaultStep = 1
	// DefaultMaxElastic is the largest elastic pool size swept by default.
	DefaultMaxElastic = 30
)

// CostModelFactory produces the cost model used by a single-instance sweep.
type CostModelFactory func() (core.ElasticCostModel, error)

// FixedModel returns a factory that always yields m.
func FixedModel(m core.ElasticCostModel) CostModelFactory {
	return func() (core.ElasticCostModel, error) { return m, nil }
}

// Options configures a Sweeper.
type Options struct {
	// Step is the elastic pool size increment. Defaults to DefaultStep.
	Step int
	// Workers bounds the number of concurrent scheduler runs. Defaults to GOMAXPROCS.
	Workers int
	// Overheads supplies startup, transfer and fixed-duration settings for the
	// cost models built by MultiSweep. Defaults to core.DefaultElasticCostModel.
	Overheads *core.ElasticCostModel
}

// Sweeper runs one scheduler invocation per swept configuration. Points are
// independent, so they run concurrently; output order is the same as a
// sequential sweep.
type Sweeper struct {
	step     int
	workers  int
	base     core.ElasticCostModel
	recorder *metrics.Recorder
}

// NewSweeper validates opts and creates a Sweeper. recorder may be nil.
func NewSweeper(opts Options, recorder *metrics.Recorder) (*Sweeper, error) {
	if opts.Step == 0 {
		opts.Step = DefaultStep
	}
	if opts.Step < 0 {
		return nil, fmt.Errorf("%w: sweep step must be positive, got %d", core.ErrConfiguration, opts.Step)
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Workers < 0 {
		return nil, fmt.Errorf("%w: sweep workers must be positive, got %d", core.ErrConfiguration, opts.Workers)
	}
	base := core.DefaultElasticCostModel()
	if opts.Overheads != nil {
		base = *opts.Overheads
	}
	return &Sweeper{step: opts.Step, workers: opts.Workers, base: base, recorder: recorder}, nil
}

// Sizes returns the swept elastic pool sizes 0, step, 2*step, ... up to maxElastic.
// Size 0 (the fixed-pool-only baseline) is always first.
func (s *Sweeper) Sizes(maxElastic int) ([]int, error) {
	if maxElastic < 0 {
		return nil, fmt.Errorf("%w: max elastic pool size must be non-negative, got %d", core.ErrConfiguration, maxElastic)
	}
	sizes := make([]int, 0, maxElastic/s.step+1)
	for c := 0; c <= maxElastic; c += s.step {
		sizes = append(sizes, c)
	}
	return sizes, nil
}

// task is one sweep point waiting to be scheduled into slot.
type task struct {
	slot     int
	elastic  int
	model    core.ElasticCostModel
	configID string
}

// Sweep schedules the batch once per elastic pool size with the cost model
// produced by factory, returning one point per size in ascending size order.
func (s *Sweeper) Sweep(
	ctx context.Context,
	jobs []core.Job,
	profile core.PoolProfile,
	factory CostModelFactory,
	maxElastic int,
) ([]core.SweepPoint, error) {
	logger := ctrl.LoggerFrom(ctx)

	if err := s.validate(jobs, profile); err != nil {
		return nil, err
	}
	if factory == nil {
		return nil, fmt.Errorf("%w: cost model factory is nil", core.ErrConfiguration)
	}
	model, err := factory()
	if err != nil {
		return nil, err
	}
	sizes, err := s.Sizes(maxElastic)
	if err != nil {
		return nil, err
	}

	tasks := make([]task, len(sizes))
	for i, c := range sizes {
		tasks[i] = task{slot: i, elastic: c, model: model, configID: core.ConfigID(profile.FixedCount, c)}
	}
	points, err := s.run(ctx, jobs, profile.FixedCount, tasks)
	if err != nil {
		return nil, err
	}
	s.recorder.AddSweepPoints(metrics.ModeSingle, len(points))

	logger.V(logging.DEBUG).Info("Single-instance sweep completed",
		"site", profile.Name,
		"fixedCount", profile.FixedCount,
		"instance", model.InstanceType,
		"tier", model.PricingTier,
		"points", len(points))
	return points, nil
}

// MultiSweep schedules the batch for every instance type × requested tier the
// instance offers × elastic pool size. Tiers an instance does not offer are
// skipped; unknown tier names are a configuration error.
// Points are grouped by instance, then tier, then ascending size.
func (s *Sweeper) MultiSweep(
	ctx context.Context,
	jobs []core.Job,
	profile core.PoolProfile,
	instances []catalog.InstanceType,
	tiers []core.PricingTier,
	maxElastic int,
) ([]core.SweepPoint, error) {
	logger := ctrl.LoggerFrom(ctx)

	if err := s.validate(jobs, profile); err != nil {
		return nil, err
	}
	for _, t := range tiers {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: unknown pricing tier %q", core.ErrConfiguration, t)
		}
	}
	sizes, err := s.Sizes(maxElastic)
	if err != nil {
		return nil, err
	}

	var tasks []task
	for _, it := range instances {
		for _, tier := range tiers {
			if !it.Offers(tier) {
				logger.V(logging.TRACE).Info("Skipping pricing tier not offered by instance",
					"instance", it.Name, "tier", tier)
				continue
			}
			model, err := it.CostModel(tier, s.base)
			if err != nil {
				return nil, err
			}
			for _, c := range sizes {
				tasks = append(tasks, task{
					slot:     len(tasks),
					elastic:  c,
					model:    model,
					configID: core.MultiConfigID(it.GPU, tier, profile.FixedCount, c),
				})
			}
		}
	}

	points, err := s.run(ctx, jobs, profile.FixedCount, tasks)
	if err != nil {
		return nil, err
	}
	s.recorder.AddSweepPoints(metrics.ModeMulti, len(points))

	logger.V(logging.DEBUG).Info("Multi-instance sweep completed",
		"site", profile.Name,
		"fixedCount", profile.FixedCount,
		"instances", len(instances),
		"tiers", tiers,
		"points", len(points))
	return points, nil
}

func (s *Sweeper) validate(jobs []core.Job, profile core.PoolProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	return core.ValidateJobs(jobs)
}

// run executes tasks on a bounded errgroup. The first failure cancels the
// remaining tasks and is returned; no partial result is produced.
func (s *Sweeper) run(ctx context.Context, jobs []core.Job, fixedCount int, tasks []task) ([]core.SweepPoint, error) {
	points := make([]core.SweepPoint, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, t := range tasks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			result, err := solver.Schedule(jobs, fixedCount, t.elastic, t.model, false)
			s.recorder.ObserveSchedule(time.Since(start))
			if err != nil {
				return fmt.Errorf("sweep point %s: %w", t.configID, err)
			}
			points[t.slot] = core.SweepPoint{
				ConfigID:     t.configID,
				Cost:         result.ElasticCost,
				Makespan:     result.Makespan,
				FixedCount:   fixedCount,
				ElasticCount: t.elastic,
				InstanceType: t.model.InstanceType,
				PricingTier:  t.model.PricingTier,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}
