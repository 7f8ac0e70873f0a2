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
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/viper"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/burstplan/burstplan/api/v1alpha1"
	"github.com/burstplan/burstplan/internal/actuator"
	"github.com/burstplan/burstplan/internal/config"
	"github.com/burstplan/burstplan/internal/metrics"
	"github.com/burstplan/burstplan/pkg/catalog"
	"github.com/burstplan/burstplan/pkg/core"
)

var _ = Describe("BurstPlanReconciler", func() {
	var (
		ctx        context.Context
		reconciler *BurstPlanReconciler
		plan       *v1alpha1.BurstPlan
		clock      time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		defaults, err := config.Load(viper.New(), nil, "")
		Expect(err).NotTo(HaveOccurred())

		clock = time.Date(2026, 3, 28, 19, 5, 0, 0, time.UTC)
		reconciler = &BurstPlanReconciler{
			Catalog:  catalog.Default(),
			Defaults: *defaults,
			Now:      func() time.Time { return clock },
		}
		plan = &v1alpha1.BurstPlan{
			ObjectMeta: metav1.ObjectMeta{Name: "bos-opening-day", Namespace: "default", Generation: 3},
			Spec: v1alpha1.BurstPlanSpec{
				Site:       "BOS",
				MaxElastic: ptr.To[int32](6),
				Jobs:       v1alpha1.JobSourceSpec{BatchSize: ptr.To[int32](40)},
				Elastic:    v1alpha1.ElasticSpec{InstanceType: "g6.xlarge", PricingTier: "spot"},
			},
		}
	})

	Context("with a synthetic batch", func() {
		It("should recommend a configuration and mark the plan ready", func() {
			result, err := reconciler.Reconcile(ctx, plan)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Frontier).To(HaveLen(7))

			status := plan.Status
			Expect(status.LastRunTime.Time.Equal(clock)).To(BeTrue())
			Expect(status.RunID).To(Equal(result.RunID))
			Expect(status.Jobs).To(Equal(int32(40)))
			Expect(status.SweptConfigurations).To(Equal(int32(7)))
			Expect(status.ParetoOptimal).To(BeNumerically(">", 0))
			Expect(status.Recommendation).NotTo(BeNil())
			Expect(status.Recommendation.FixedCount).To(Equal(int32(5)))
			Expect(status.Recommendation.InstanceType).To(Equal("g6.xlarge"))
			Expect(status.Recommendation.PricingTier).To(Equal("spot"))
			Expect(status.Recommendation.MakespanSeconds).To(BeNumerically(">=", int64(result.Recommendation.Makespan)))

			jobs := meta.FindStatusCondition(status.Conditions, v1alpha1.TypeJobsLoaded)
			Expect(jobs).NotTo(BeNil())
			Expect(jobs.Status).To(Equal(metav1.ConditionTrue))
			Expect(jobs.Reason).To(Equal(v1alpha1.ReasonSyntheticBatch))

			ready := meta.FindStatusCondition(status.Conditions, v1alpha1.TypeOptimizationReady)
			Expect(ready).NotTo(BeNil())
			Expect(ready.Status).To(Equal(metav1.ConditionTrue))
			Expect(ready.Reason).To(Equal(v1alpha1.ReasonOptimizationSucceeded))
			Expect(ready.ObservedGeneration).To(Equal(int64(3)))
		})

		It("should keep the transition time when the outcome does not change", func() {
			_, err := reconciler.Reconcile(ctx, plan)
			Expect(err).NotTo(HaveOccurred())
			first := clock

			clock = clock.Add(time.Hour)
			_, err = reconciler.Reconcile(ctx, plan)
			Expect(err).NotTo(HaveOccurred())

			ready := meta.FindStatusCondition(plan.Status.Conditions, v1alpha1.TypeOptimizationReady)
			Expect(ready.LastTransitionTime.Time.Equal(first)).To(BeTrue())
			Expect(plan.Status.LastRunTime.Time.Equal(clock)).To(BeTrue())
		})

		It("should sweep every instance type in multi-instance mode", func() {
			plan.Spec.Elastic = v1alpha1.ElasticSpec{MultiInstance: true, PricingTiers: []string{"spot"}}
			result, err := reconciler.Reconcile(ctx, plan)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Frontier).To(HaveLen(4 * 7))
			Expect(plan.Status.SweptConfigurations).To(Equal(int32(28)))
		})

		It("should report when no configuration meets the constraints", func() {
			plan.Spec.Constraints.MaxMakespanSeconds = 1
			result, err := reconciler.Reconcile(ctx, plan)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Recommendation).To(BeNil())
			Expect(plan.Status.Recommendation).To(BeNil())
			Expect(plan.Status.Feasible).To(BeZero())

			ready := meta.FindStatusCondition(plan.Status.Conditions, v1alpha1.TypeOptimizationReady)
			Expect(ready.Status).To(Equal(metav1.ConditionFalse))
			Expect(ready.Reason).To(Equal(v1alpha1.ReasonNoFeasibleConfiguration))
		})

		It("should emit the desired elastic pool size through the actuator", func() {
			reg := prometheus.NewRegistry()
			emitter, err := metrics.NewMetricsEmitter(reg)
			Expect(err).NotTo(HaveOccurred())
			reconciler.Actuator = actuator.NewActuator(emitter)

			_, err = reconciler.Reconcile(ctx, plan)
			Expect(err).NotTo(HaveOccurred())
			Expect(plan.Status.Actuation.Applied).To(BeTrue())

			count, err := testutil.GatherAndCount(reg, "burstplan_desired_elastic_processors")
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))
		})
	})

	Context("with an invalid plan", func() {
		It("should reject an unknown site", func() {
			plan.Spec.Site = "nowhere"
			_, err := reconciler.Reconcile(ctx, plan)
			Expect(err).To(MatchError(catalog.ErrUnknownProfile))

			ready := meta.FindStatusCondition(plan.Status.Conditions, v1alpha1.TypeOptimizationReady)
			Expect(ready.Status).To(Equal(metav1.ConditionFalse))
			Expect(ready.Reason).To(Equal(v1alpha1.ReasonInvalidConfiguration))
		})

		It("should reject a cost weight outside [0, 1]", func() {
			plan.Spec.CostWeight = "2"
			_, err := reconciler.Reconcile(ctx, plan)
			Expect(err).To(MatchError(core.ErrConfiguration))
			Expect(plan.Status.Recommendation).To(BeNil())
		})

		It("should report a missing results file", func() {
			plan.Spec.Jobs.Path = filepath.Join(GinkgoT().TempDir(), "missing.csv")
			_, err := reconciler.Reconcile(ctx, plan)
			Expect(err).To(HaveOccurred())

			jobs := meta.FindStatusCondition(plan.Status.Conditions, v1alpha1.TypeJobsLoaded)
			Expect(jobs.Status).To(Equal(metav1.ConditionFalse))
			Expect(jobs.Reason).To(Equal(v1alpha1.ReasonJobsMissing))
		})

		It("should reject a nil plan", func() {
			_, err := reconciler.Reconcile(ctx, nil)
			Expect(err).To(MatchError(core.ErrConfiguration))
		})
	})
})
