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

package controller

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/burstplan/burstplan/api/v1alpha1"
	"github.com/burstplan/burstplan/internal/actuator"
	"github.com/burstplan/burstplan/internal/config"
	"github.com/burstplan/burstplan/internal/logging"
	"github.com/burstplan/burstplan/internal/metrics"
	"github.com/burstplan/burstplan/internal/optimizer"
	"github.com/burstplan/burstplan/pkg/catalog"
	"github.com/burstplan/burstplan/pkg/core"
)

// BurstPlanReconciler evaluates BurstPlan resources.
type BurstPlanReconciler struct {
	// Catalog supplies instance types and site profiles. Nil uses the built-in catalog.
	Catalog *catalog.Catalog
	// Defaults fill every field the BurstPlan spec leaves unset.
	Defaults config.PlannerConfig
	// Recorder may be nil.
	Recorder *metrics.Recorder
	// Actuator may be nil, in which case nothing is actuated.
	Actuator *actuator.Actuator
	// Now returns the evaluation time. Nil uses time.Now.
	Now func() time.Time
}

// Reconcile runs the planning pipeline for plan and updates plan.Status in place.
// The status reflects the outcome even when an error is returned.
func (r *BurstPlanReconciler) Reconcile(ctx context.Context, plan *v1alpha1.BurstPlan) (*optimizer.Result, error) {
	if plan == nil {
		return nil, fmt.Errorf("%w: plan cannot be nil", core.ErrConfiguration)
	}
	logger := ctrl.LoggerFrom(ctx).WithValues("plan", plan.Name, "namespace", plan.Namespace)
	ctx = ctrl.LoggerInto(ctx, logger)

	cat := r.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	plan.Status.LastRunTime = metav1.NewTime(r.now())

	cfg, err := config.FromBurstPlan(plan, r.Defaults)
	if err != nil {
		r.setCondition(plan, v1alpha1.TypeOptimizationReady, metav1.ConditionFalse,
			v1alpha1.ReasonInvalidConfiguration, err.Error())
		return nil, err
	}
	profile, err := cfg.Profile(cat)
	if err != nil {
		r.setCondition(plan, v1alpha1.TypeOptimizationReady, metav1.ConditionFalse,
			v1alpha1.ReasonInvalidConfiguration, err.Error())
		return nil, err
	}

	jobs, src, err := cfg.LoadBatch(ctx)
	if err != nil {
		r.setCondition(plan, v1alpha1.TypeJobsLoaded, metav1.ConditionFalse, v1alpha1.ReasonJobsMissing, err.Error())
		r.setCondition(plan, v1alpha1.TypeOptimizationReady, metav1.ConditionFalse,
			v1alpha1.ReasonOptimizationFailed, "no jobs to plan")
		return nil, err
	}
	reason := v1alpha1.ReasonJobsFound
	if cfg.JobsPath == "" {
		reason = v1alpha1.ReasonSyntheticBatch
	}
	r.setCondition(plan, v1alpha1.TypeJobsLoaded, metav1.ConditionTrue, reason,
		fmt.Sprintf("Loaded %d jobs from %s", len(jobs), src.Name()))
	plan.Status.Jobs = int32(len(jobs))

	result, err := r.run(ctx, cfg, cat, jobs, profile)
	if err != nil {
		reason := v1alpha1.ReasonOptimizationFailed
		if errors.Is(err, core.ErrConfiguration) {
			reason = v1alpha1.ReasonInvalidConfiguration
		}
		r.setCondition(plan, v1alpha1.TypeOptimizationReady, metav1.ConditionFalse, reason, err.Error())
		return nil, err
	}

	plan.Status.RunID = result.RunID
	plan.Status.SweptConfigurations = int32(result.Summary.Total)
	plan.Status.ParetoOptimal = int32(result.Summary.Optimal)
	plan.Status.Feasible = int32(result.Feasible)
	plan.Status.Recommendation = toRecommendation(result.Recommendation)

	if rec := plan.Status.Recommendation; rec != nil {
		r.setCondition(plan, v1alpha1.TypeOptimizationReady, metav1.ConditionTrue,
			v1alpha1.ReasonOptimizationSucceeded,
			fmt.Sprintf("Recommended %s at $%s", rec.ConfigID, rec.Cost))
	} else {
		r.setCondition(plan, v1alpha1.TypeOptimizationReady, metav1.ConditionFalse,
			v1alpha1.ReasonNoFeasibleConfiguration,
			fmt.Sprintf("None of %d Pareto-optimal configurations satisfies the constraints", result.Summary.Optimal))
	}

	if r.Actuator != nil {
		if err := r.Actuator.Actuate(ctx, plan); err != nil {
			return result, err
		}
	}
	logger.V(logging.DEBUG).Info("Reconciled plan",
		"runID", result.RunID, "jobs", len(jobs), "recommended", plan.Status.Recommendation != nil)
	return result, nil
}

func (r *BurstPlanReconciler) run(
	ctx context.Context,
	cfg *config.PlannerConfig,
	cat *catalog.Catalog,
	jobs []core.Job,
	profile core.PoolProfile,
) (*optimizer.Result, error) {
	optCfg, err := cfg.OptimizerConfig()
	if err != nil {
		return nil, err
	}
	opt, err := optimizer.NewOptimizer(optCfg, r.Recorder)
	if err != nil {
		return nil, err
	}
	if cfg.Multi {
		tiers, err := cfg.PricingTiers()
		if err != nil {
			return nil, err
		}
		return opt.PlanMulti(ctx, jobs, profile, cat.Instances(), tiers, cfg.MaxElastic)
	}
	model, err := cfg.CostModel(cat)
	if err != nil {
		return nil, err
	}
	return opt.Plan(ctx, jobs, profile, model, cfg.MaxElastic)
}

func (r *BurstPlanReconciler) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *BurstPlanReconciler) setCondition(plan *v1alpha1.BurstPlan, condType string, status metav1.ConditionStatus, reason, message string) {
	meta.SetStatusCondition(&plan.Status.Conditions, metav1.Condition{
		Type:               condType,
		Status:             status,
		ObservedGeneration: plan.Generation,
		LastTransitionTime: metav1.NewTime(r.now()),
		Reason:             reason,
		Message:            message,
	})
}

func toRecommendation(p *core.FrontierPoint) *v1alpha1.Recommendation {
	if p == nil {
		return nil
	}
	return &v1alpha1.Recommendation{
		ConfigID:        p.ConfigID,
		InstanceType:    p.InstanceType,
		PricingTier:     string(p.PricingTier),
		FixedCount:      int32(p.FixedCount),
		ElasticCount:    int32(p.ElasticCount),
		Cost:            fmt.Sprintf("%.2f", p.Cost),
		MakespanSeconds: int64(math.Ceil(p.Makespan)),
	}
}
