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

package main

import (
	"fmt"

	"github.com/spf13/pflag"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/burstplan/burstplan/internal/actuator"
	"github.com/burstplan/burstplan/internal/config"
	"github.com/burstplan/burstplan/internal/controller"
	"github.com/burstplan/burstplan/internal/metrics"
	"github.com/burstplan/burstplan/internal/optimizer"
	"github.com/burstplan/burstplan/internal/report"
	"github.com/burstplan/burstplan/internal/utils/category"
	"github.com/burstplan/burstplan/pkg/core"
)

// Flag names local to one command.
const (
	flagVary     = "vary"
	flagRatio    = "ratio"
	flagRates    = "rates"
	flagTimes    = "times"
	flagElastic  = "elastic"
	flagFilename = "filename"
	flagWrite    = "write"
)

type command struct {
	flags func(*pflag.FlagSet)
	run   func(*env) error
}

var commands = map[string]command{
	"plan":          {run: runPlan},
	"compare-sites": {run: runCompareSites},
	"sensitivity":   {flags: sensitivityFlags, run: runSensitivity},
	"detail":        {flags: detailFlags, run: runDetail},
	"apply":         {flags: applyFlags, run: runApply},
	"pricing":       {run: runPricing},
}

func runPlan(e *env) error {
	jobs, _, err := e.cfg.LoadBatch(e.ctx)
	if err != nil {
		return err
	}
	profile, err := e.cfg.Profile(e.catalog)
	if err != nil {
		return err
	}
	opt, err := e.optimizer()
	if err != nil {
		return err
	}

	var res *optimizer.Result
	if e.cfg.Multi {
		tiers, err := e.cfg.PricingTiers()
		if err != nil {
			return err
		}
		res, err = opt.PlanMulti(e.ctx, jobs, profile, e.catalog.Instances(), tiers, e.cfg.MaxElastic)
		if err != nil {
			return err
		}
	} else {
		model, err := e.cfg.CostModel(e.catalog)
		if err != nil {
			return err
		}
		res, err = opt.Plan(e.ctx, jobs, profile, model, e.cfg.MaxElastic)
		if err != nil {
			return err
		}
	}
	return e.render.Plan(res)
}

func runCompareSites(e *env) error {
	jobs, _, err := e.cfg.LoadBatch(e.ctx)
	if err != nil {
		return err
	}
	model, err := e.cfg.CostModel(e.catalog)
	if err != nil {
		return err
	}
	opt, err := e.optimizer()
	if err != nil {
		return err
	}
	sites, err := opt.CompareSites(e.ctx, jobs, e.catalog.Profiles(), model, e.cfg.MaxElastic)
	if err != nil {
		return err
	}
	return e.render.Sites(sites)
}

func sensitivityFlags(fs *pflag.FlagSet) {
	fs.String(flagVary, string(optimizer.VaryRate), "Dimension to vary (rate, instance, pricing, processing-time).")
	fs.Float64(flagRatio, optimizer.DefaultSensitivityRatio, "Speed ratio of every scenario when varying the rate.")
	fs.Float64Slice(flagRates, optimizer.DefaultSensitivityRates, "Hourly rates to compare when varying the rate.")
	fs.Float64Slice(flagTimes, optimizer.DefaultProcessingTimes,
		"Per-job elastic minutes to compare when varying the processing time. Priced at --instance and --tier.")
}

func runSensitivity(e *env) error {
	vary, _ := e.fs.GetString(flagVary)
	dim, err := optimizer.ParseSensitivityDimension(vary)
	if err != nil {
		return err
	}
	jobs, _, err := e.cfg.LoadBatch(e.ctx)
	if err != nil {
		return err
	}
	profile, err := e.cfg.Profile(e.catalog)
	if err != nil {
		return err
	}
	opt, err := e.optimizer()
	if err != nil {
		return err
	}

	base := e.cfg.Overheads()
	var scenarios []optimizer.Scenario
	switch dim {
	case optimizer.VaryRate:
		ratio, _ := e.fs.GetFloat64(flagRatio)
		rates, _ := e.fs.GetFloat64Slice(flagRates)
		scenarios, err = opt.RateSensitivity(e.ctx, jobs, profile, base, ratio, rates, e.cfg.MaxElastic)
	case optimizer.VaryInstance:
		var tier core.PricingTier
		if tier, err = e.cfg.PricingTier(); err == nil {
			scenarios, err = opt.InstanceSensitivity(e.ctx, jobs, profile, e.catalog.Instances(), tier, base, e.cfg.MaxElastic)
		}
	case optimizer.VaryPricing:
		scenarios, err = opt.PricingSensitivity(e.ctx, jobs, profile, e.catalog.Instances(), base, e.cfg.MaxElastic)
	case optimizer.VaryProcessingTime:
		var model core.ElasticCostModel
		if model, err = e.cfg.CostModel(e.catalog); err == nil {
			times, _ := e.fs.GetFloat64Slice(flagTimes)
			scenarios, err = opt.ProcessingTimeSensitivity(e.ctx, jobs, profile, model, times, e.cfg.MaxElastic)
		}
	}
	if err != nil {
		return err
	}
	return e.render.Scenarios(scenarios)
}

func detailFlags(fs *pflag.FlagSet) {
	fs.Int(flagElastic, 0, "Elastic pool size of the configuration to schedule.")
}

func runDetail(e *env) error {
	elastic, _ := e.fs.GetInt(flagElastic)
	if elastic < 0 {
		return fmt.Errorf("%w: --%s must be >= 0, got %d", core.ErrConfiguration, flagElastic, elastic)
	}
	jobs, _, err := e.cfg.LoadBatch(e.ctx)
	if err != nil {
		return err
	}
	profile, err := e.cfg.Profile(e.catalog)
	if err != nil {
		return err
	}
	model, err := e.cfg.CostModel(e.catalog)
	if err != nil {
		return err
	}
	opt, err := e.optimizer()
	if err != nil {
		return err
	}
	result, err := opt.Detail(e.ctx, jobs, profile, model, elastic)
	if err != nil {
		return err
	}
	return e.render.Detail(report.NewBreakdown(result, category.DefaultLabelConfig()))
}

func applyFlags(fs *pflag.FlagSet) {
	fs.StringP(flagFilename, "f", "", "BurstPlan manifest to evaluate.")
	fs.Bool(flagWrite, false, "Write the evaluated plan, status included, back to the manifest.")
}

func runApply(e *env) error {
	path, _ := e.fs.GetString(flagFilename)
	if path == "" {
		return fmt.Errorf("%w: --%s is required", core.ErrConfiguration, flagFilename)
	}
	plan, err := config.LoadBurstPlan(path)
	if err != nil {
		return err
	}
	emitter, err := metrics.NewMetricsEmitter(e.registry)
	if err != nil {
		return err
	}
	r := &controller.BurstPlanReconciler{
		Catalog:  e.catalog,
		Defaults: *e.cfg,
		Recorder: e.recorder,
		Actuator: actuator.NewActuator(emitter),
	}
	_, reconcileErr := r.Reconcile(e.ctx, plan)

	if write, _ := e.fs.GetBool(flagWrite); write {
		if err := actuator.WriteManifest(path, plan); err != nil {
			return err
		}
		ctrl.LoggerFrom(e.ctx).Info("Updated manifest", "path", path)
	}
	if err := e.render.Object(plan); err != nil {
		return err
	}
	return reconcileErr
}

func runPricing(e *env) error {
	return e.render.Pricing(e.catalog.Instances())
}
