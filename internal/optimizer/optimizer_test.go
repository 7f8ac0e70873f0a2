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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/burstplan/burstplan/internal/engines/limiter"
	"github.com/burstplan/burstplan/internal/engines/pareto"
	"github.com/burstplan/burstplan/internal/metrics"
	"github.com/burstplan/burstplan/pkg/catalog"
	"github.com/burstplan/burstplan/pkg/core"
)

func testBatch(n int) []core.Job {
	jobs := make([]core.Job, n)
	for i := range jobs {
		tag := "Pitching"
		if i%3 == 0 {
			tag = "Batting"
		}
		jobs[i] = core.Job{Name: fmt.Sprintf("event-%03d", i), Category: tag, LocalDuration: float64(400 + (i*131)%1400)}
	}
	return jobs
}

func mustOptimizer(cfg Config, rec *metrics.Recorder) *Optimizer {
	o, err := NewOptimizer(cfg, rec)
	Expect(err).NotTo(HaveOccurred())
	return o
}

func t4OnDemand() core.ElasticCostModel {
	m, err := catalog.Default().CostModel("g4dn.xlarge", core.TierOnDemand, core.DefaultElasticCostModel())
	Expect(err).NotTo(HaveOccurred())
	return m
}

var _ = Describe("Optimizer", func() {
	var (
		ctx     context.Context
		jobs    []core.Job
		profile core.PoolProfile
	)

	BeforeEach(func() {
		ctx = context.Background()
		jobs = testBatch(120)
		profile = core.PoolProfile{Name: "Boston Red Sox", Code: "BOS", FixedCount: 5}
	})

	Context("construction", func() {
		It("should reject a cost weight outside [0, 1]", func() {
			cfg := DefaultConfig()
			cfg.CostWeight = 1.2
			_, err := NewOptimizer(cfg, nil)
			Expect(err).To(MatchError(core.ErrConfiguration))
		})

		It("should reject an unknown dominance method", func() {
			cfg := DefaultConfig()
			cfg.Method = pareto.Method(9)
			_, err := NewOptimizer(cfg, nil)
			Expect(err).To(MatchError(core.ErrConfiguration))
		})

		It("should reject negative limits", func() {
			cfg := DefaultConfig()
			cfg.Limits = limiter.LimiterConfig{MaxCost: -1}
			_, err := NewOptimizer(cfg, nil)
			Expect(err).To(MatchError(core.ErrConfiguration))
		})
	})

	Context("single-instance planning", func() {
		It("should flag every swept size and recommend an optimal point", func() {
			o := mustOptimizer(DefaultConfig(), nil)
			res, err := o.Plan(ctx, jobs, profile, t4OnDemand(), 30)
			Expect(err).NotTo(HaveOccurred())

			Expect(res.RunID).NotTo(BeEmpty())
			Expect(res.Mode).To(Equal(metrics.ModeSingle))
			Expect(res.Frontier).To(HaveLen(31))
			Expect(res.Frontier[0].ConfigID).To(Equal("G5_C0"))
			Expect(res.Frontier[0].Cost).To(BeZero())
			Expect(res.Summary.Baseline).NotTo(BeNil())
			Expect(res.Recommendation).NotTo(BeNil())
			Expect(res.Recommendation.Optimal).To(BeTrue())
			Expect(res.Feasible).To(Equal(res.Summary.Optimal))
		})

		It("should follow the cost weight", func() {
			cheap := DefaultConfig()
			cheap.CostWeight = 1
			res, err := mustOptimizer(cheap, nil).Plan(ctx, jobs, profile, t4OnDemand(), 20)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Recommendation.Cost).To(BeZero())

			fast := DefaultConfig()
			fast.CostWeight = 0
			res, err = mustOptimizer(fast, nil).Plan(ctx, jobs, profile, t4OnDemand(), 20)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Recommendation.Makespan).To(Equal(res.Summary.Fastest.Makespan))
		})

		It("should give the same frontier with either dominance method", func() {
			pairwise := mustOptimizer(DefaultConfig(), nil)
			cfg := DefaultConfig()
			cfg.Method = pareto.Vectorized
			vectorized := mustOptimizer(cfg, nil)

			a, err := pairwise.Plan(ctx, jobs, profile, t4OnDemand(), 30)
			Expect(err).NotTo(HaveOccurred())
			b, err := vectorized.Plan(ctx, jobs, profile, t4OnDemand(), 30)
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Frontier).To(Equal(a.Frontier))
			Expect(b.Recommendation).To(Equal(a.Recommendation))
		})

		It("should fail on zero processors instead of dropping the baseline", func() {
			o := mustOptimizer(DefaultConfig(), nil)
			_, err := o.Plan(ctx, jobs, core.PoolProfile{Name: "empty"}, t4OnDemand(), 5)
			Expect(err).To(MatchError(core.ErrConfiguration))
		})
	})

	Context("with constraints", func() {
		It("should only recommend points within budget", func() {
			cfg := DefaultConfig()
			cfg.CostWeight = 0
			cfg.Limits = limiter.LimiterConfig{MaxCost: 2}
			res, err := mustOptimizer(cfg, nil).Plan(ctx, jobs, profile, t4OnDemand(), 30)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Recommendation).NotTo(BeNil())
			Expect(res.Recommendation.Cost).To(BeNumerically("<=", 2))
			Expect(res.Feasible).To(BeNumerically("<", res.Summary.Optimal))
		})

		It("should return no recommendation when nothing is feasible", func() {
			cfg := DefaultConfig()
			cfg.Limits = limiter.LimiterConfig{MaxMakespan: 1}
			res, err := mustOptimizer(cfg, nil).Plan(ctx, jobs, profile, t4OnDemand(), 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Recommendation).To(BeNil())
			Expect(res.Feasible).To(BeZero())
			Expect(res.Frontier).To(HaveLen(11))
		})
	})

	Context("multi-instance planning", func() {
		It("should sweep every offered tier and keep provenance", func() {
			o := mustOptimizer(DefaultConfig(), nil)
			res, err := o.PlanMulti(ctx, jobs, profile, catalog.DefaultInstances(), core.PricingTiers, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Mode).To(Equal(metrics.ModeMulti))
			Expect(res.Frontier).To(HaveLen((4 + 4 + 4 + 2) * 11))
			Expect(res.Recommendation).NotTo(BeNil())
			Expect(res.Recommendation.InstanceType).NotTo(BeEmpty())
			Expect(res.Summary.Composition).NotTo(BeEmpty())
		})
	})

	Context("site comparison", func() {
		It("should plan sites in order with shrinking baselines", func() {
			o := mustOptimizer(DefaultConfig(), nil)
			sites, err := o.CompareSites(ctx, jobs, catalog.DefaultProfiles()[:4], t4OnDemand(), 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(sites).To(HaveLen(4))
			for i := 1; i < len(sites); i++ {
				Expect(sites[i].Profile.FixedCount).To(BeNumerically(">", sites[i-1].Profile.FixedCount))
				Expect(sites[i].Result.Summary.Baseline.Makespan).
					To(BeNumerically("<=", sites[i-1].Result.Summary.Baseline.Makespan))
			}
		})

		It("should name the failing site", func() {
			o := mustOptimizer(DefaultConfig(), nil)
			_, err := o.CompareSites(ctx, jobs, []core.PoolProfile{profile, {Name: "Nowhere"}}, t4OnDemand(), 3)
			Expect(err).To(MatchError(ContainSubstring("site Nowhere")))
		})
	})

	Context("sensitivity analysis", func() {
		It("should vary the hourly rate", func() {
			o := mustOptimizer(DefaultConfig(), nil)
			scenarios, err := o.RateSensitivity(ctx, jobs, profile, core.DefaultElasticCostModel(),
				DefaultSensitivityRatio, DefaultSensitivityRates, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(scenarios).To(HaveLen(5))
			Expect(scenarios[0].Label).To(Equal("$0.250/hr"))
			Expect(scenarios[1].Label).To(Equal("$0.526/hr"))

			// same configuration, higher rate, higher cost
			last := len(scenarios[0].Result.Frontier) - 1
			for i := 1; i < len(scenarios); i++ {
				Expect(scenarios[i].Result.Frontier[last].Cost).
					To(BeNumerically(">", scenarios[i-1].Result.Frontier[last].Cost))
				Expect(scenarios[i].Result.Frontier[last].Makespan).
					To(Equal(scenarios[0].Result.Frontier[last].Makespan))
			}
		})

		It("should vary the instance type at one tier", func() {
			o := mustOptimizer(DefaultConfig(), nil)
			spot, err := o.InstanceSensitivity(ctx, jobs, profile, catalog.DefaultInstances(), core.TierSpot, core.DefaultElasticCostModel(), 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(spot).To(HaveLen(4))
			Expect(spot[0].Label).To(Equal("Tesla T4 (2.18x)"))

			reserved, err := o.InstanceSensitivity(ctx, jobs, profile, catalog.DefaultInstances(), core.TierReserved1Yr, core.DefaultElasticCostModel(), 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(reserved).To(HaveLen(3))

			_, err = o.InstanceSensitivity(ctx, jobs, profile, catalog.DefaultInstances(), "weekly", core.DefaultElasticCostModel(), 5)
			Expect(err).To(MatchError(core.ErrConfiguration))
		})

		It("should vary every instance and offered tier", func() {
			o := mustOptimizer(DefaultConfig(), nil)
			scenarios, err := o.PricingSensitivity(ctx, jobs, profile, catalog.DefaultInstances(), core.DefaultElasticCostModel(), 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(scenarios).To(HaveLen(14))
			Expect(scenarios[0].Label).To(Equal("Tesla T4 On-Demand"))
			Expect(scenarios[13].Label).To(Equal("Tesla V100 Spot"))
		})

		It("should vary the fixed per-job processing time", func() {
			o := mustOptimizer(DefaultConfig(), nil)
			scenarios, err := o.ProcessingTimeSensitivity(ctx, jobs, profile, t4OnDemand(), DefaultProcessingTimes, 6)
			Expect(err).NotTo(HaveOccurred())
			Expect(scenarios).To(HaveLen(5))
			Expect(scenarios[0].Label).To(Equal("10 min/job"))
			Expect(scenarios[2].Label).To(Equal("23 min/job"))
			for i, sc := range scenarios {
				Expect(sc.Model.RatioMode()).To(BeFalse())
				Expect(sc.Model.FixedJobDuration).To(BeNumerically("~", DefaultProcessingTimes[i]*60, 1e-9))
				Expect(sc.Model.HourlyRate).To(BeNumerically("~", 0.526, 1e-12))
				Expect(sc.Result.Frontier).To(HaveLen(7))
			}

			// every elastic job takes the same time, whatever its local duration
			res, err := o.Detail(ctx, jobs, profile, scenarios[1].Model, 4)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.ElasticJobs).To(BeNumerically(">", 0))
			for _, a := range res.Assignments {
				if a.Pool == core.PoolElastic {
					Expect(a.EffectiveDuration).To(BeNumerically("~", 900, 1e-9))
				}
			}

			_, err = o.ProcessingTimeSensitivity(ctx, jobs, profile, t4OnDemand(), []float64{15, 0}, 6)
			Expect(err).To(MatchError(core.ErrConfiguration))
		})

		It("should parse dimensions", func() {
			d, err := ParseSensitivityDimension("pricing")
			Expect(err).NotTo(HaveOccurred())
			Expect(d).To(Equal(VaryPricing))
			d, err = ParseSensitivityDimension("processing-time")
			Expect(err).NotTo(HaveOccurred())
			Expect(d).To(Equal(VaryProcessingTime))
			_, err = ParseSensitivityDimension("weather")
			Expect(err).To(MatchError(core.ErrConfiguration))
		})
	})

	Context("detail", func() {
		It("should keep one assignment per job", func() {
			o := mustOptimizer(DefaultConfig(), nil)
			res, err := o.Detail(ctx, jobs, profile, t4OnDemand(), 8)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Assignments).To(HaveLen(len(jobs)))
			Expect(res.FixedJobs + res.ElasticJobs).To(Equal(len(jobs)))
			Expect(res.ConfigID).To(Equal("G5_C8"))
		})
	})

	Context("metrics", func() {
		It("should record the frontier and the recommendation", func() {
			reg := prometheus.NewRegistry()
			rec, err := metrics.NewRecorder(reg)
			Expect(err).NotTo(HaveOccurred())

			o := mustOptimizer(DefaultConfig(), rec)
			res, err := o.Plan(ctx, jobs, profile, t4OnDemand(), 10)
			Expect(err).NotTo(HaveOccurred())

			Expect(testutil.ToFloat64(rec.Collectors()[0])).To(BeNumerically("==", 11))
			Expect(testutil.CollectAndCount(rec.Collectors()[3], "burstplan_frontier_points")).To(Equal(1))
			Expect(testutil.CollectAndCount(rec.Collectors()[4], "burstplan_recommended_cost_dollars")).To(Equal(1))
			Expect(res.Recommendation).NotTo(BeNil())
		})
	})
})
