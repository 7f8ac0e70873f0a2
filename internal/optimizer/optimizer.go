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

package optimizer

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/burstplan/burstplan/internal/engines/limiter"
	"github.com/burstplan/burstplan/internal/engines/pareto"
	"github.com/burstplan/burstplan/internal/engines/sweep"
	"github.com/burstplan/burstplan/internal/logging"
	"github.com/burstplan/burstplan/internal/metrics"
	"github.com/burstplan/burstplan/pkg/catalog"
	"github.com/burstplan/burstplan/pkg/core"
	"github.com/burstplan/burstplan/pkg/solver"
)

// Config holds the settings shared by every run of an Optimizer.
type Config struct {
	Sweep  sweep.Options
	Method pareto.Method
	// CostWeight is the weight of cost versus makespan, in [0, 1].
	CostWeight float64
	Limits     limiter.LimiterConfig
}

// DefaultConfig returns a balanced, unconstrained configuration.
func DefaultConfig() Config {
	return Config{Method: pareto.Pairwise, CostWeight: pareto.DefaultCostWeight}
}

// Optimizer runs the sweep, dominance, limit and recommendation stages.
type Optimizer struct {
	config   Config
	sweeper  *sweep.Sweeper
	engine   pareto.Engine
	limiter  limiter.Limiter
	recorder *metrics.Recorder
}

// NewOptimizer validates config and wires the pipeline stages. recorder may be nil.
func NewOptimizer(config Config, recorder *metrics.Recorder) (*Optimizer, error) {
	if math.IsNaN(config.CostWeight) || config.CostWeight < 0 || config.CostWeight > 1 {
		return nil, fmt.Errorf("%w: cost weight must be in [0, 1], got %v", core.ErrConfiguration, config.CostWeight)
	}
	sweeper, err := sweep.NewSweeper(config.Sweep, recorder)
	if err != nil {
		return nil, err
	}
	engine, err := pareto.NewEngine(config.Method)
	if err != nil {
		return nil, err
	}
	lim, err := limiter.ForConfig(config.Limits)
	if err != nil {
		return nil, err
	}
	return &Optimizer{
		config:   config,
		sweeper:  sweeper,
		engine:   engine,
		limiter:  lim,
		recorder: recorder,
	}, nil
}

// Result is the outcome of one planning run.
type Result struct {
	RunID      string `json:"runID"`
	Site       string `json:"site"`
	FixedCount int    `json:"fixedCount"`
	Mode       string `json:"mode"`

	// Frontier holds every swept point in sweep order, flagged optimal or dominated.
	Frontier []core.FrontierPoint `json:"frontier"`
	Summary  pareto.Summary       `json:"summary"`

	// Feasible counts optimal points that satisfy the constraints.
	Feasible int `json:"feasible"`
	// Recommendation is nil when the sweep was empty or no point satisfies the constraints.
	Recommendation *core.FrontierPoint `json:"recommendation,omitempty"`

	Elapsed time.Duration `json:"elapsed"`
}

// Plan runs the pipeline for a single cost model over elastic pool sizes 0..maxElastic.
func (o *Optimizer) Plan(
	ctx context.Context,
	jobs []core.Job,
	profile core.PoolProfile,
	model core.ElasticCostModel,
	maxElastic int,
) (*Result, error) {
	start := time.Now()
	points, err := o.sweeper.Sweep(ctx, jobs, profile, sweep.FixedModel(model), maxElastic)
	if err != nil {
		return nil, err
	}
	return o.evaluate(ctx, profile, metrics.ModeSingle, points, start)
}

// PlanMulti runs the pipeline over every instance type and offered tier.
func (o *Optimizer) PlanMulti(
	ctx context.Context,
	jobs []core.Job,
	profile core.PoolProfile,
	instances []catalog.InstanceType,
	tiers []core.PricingTier,
	maxElastic int,
) (*Result, error) {
	start := time.Now()
	points, err := o.sweeper.MultiSweep(ctx, jobs, profile, instances, tiers, maxElastic)
	if err != nil {
		return nil, err
	}
	return o.evaluate(ctx, profile, metrics.ModeMulti, points, start)
}

// Detail schedules a single configuration and keeps the per-job assignments.
func (o *Optimizer) Detail(
	ctx context.Context,
	jobs []core.Job,
	profile core.PoolProfile,
	model core.ElasticCostModel,
	elasticCount int,
) (core.RunResult, error) {
	start := time.Now()
	result, err := solver.Schedule(jobs, profile.FixedCount, elasticCount, model, true)
	o.recorder.ObserveSchedule(time.Since(start))
	if err != nil {
		return core.RunResult{}, err
	}
	ctrl.LoggerFrom(ctx).V(logging.DEBUG).Info("Scheduled configuration",
		"site", profile.Name,
		"config", result.ConfigID,
		"makespan", result.Makespan,
		"cost", result.ElasticCost,
		"bottleneck", result.Bottleneck())
	return result, nil
}

func (o *Optimizer) evaluate(
	ctx context.Context,
	profile core.PoolProfile,
	mode string,
	points []core.SweepPoint,
	start time.Time,
) (*Result, error) {
	logger := ctrl.LoggerFrom(ctx)

	frontier := o.engine.Frontier(points)
	feasible := frontier
	if !o.config.Limits.Unlimited() {
		feasible = o.limiter.Limit(ctx, frontier)
	}
	rec, err := pareto.Recommend(feasible, o.config.CostWeight)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:          uuid.NewString(),
		Site:           profile.Name,
		FixedCount:     profile.FixedCount,
		Mode:           mode,
		Frontier:       frontier,
		Summary:        pareto.Summarize(frontier),
		Feasible:       len(pareto.Optimal(feasible)),
		Recommendation: rec,
		Elapsed:        time.Since(start),
	}

	if rec != nil {
		o.recorder.SetFrontier(profile.Name, result.Summary.Optimal, true, rec.Cost, rec.Makespan)
		logger.Info("Planning completed",
			"runID", result.RunID,
			"site", profile.Name,
			"mode", mode,
			"points", len(frontier),
			"optimal", result.Summary.Optimal,
			"recommended", rec.ConfigID,
			"cost", rec.Cost,
			"makespan", rec.Makespan)
	} else {
		o.recorder.SetFrontier(profile.Name, result.Summary.Optimal, false, 0, 0)
		logger.Info("Planning completed without a recommendation",
			"runID", result.RunID,
			"site", profile.Name,
			"mode", mode,
			"points", len(frontier),
			"maxCost", o.config.Limits.MaxCost,
			"maxMakespan", o.config.Limits.MaxMakespan)
	}
	return result, nil
}
