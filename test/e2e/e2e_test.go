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

package e2e

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"sigs.k8s.io/yaml"

	"github.com/burstplan/burstplan/api/v1alpha1"
	"github.com/burstplan/burstplan/internal/optimizer"
)

const resultsCSV = `event_name,event_type,onprem_time_sec,fps_category
game-01,Pitching,1378,300
game-02,Pitching,1205,300
game-03,Batting,2410,600
game-04,Batting,1980,600
game-05,Pitching,640,300
game-06,Pitching,95,300
game-07,Batting,3100,600
game-08,Pitching,870,300
`

var _ = Describe("burstplan CLI", Ordered, func() {
	var resultsPath string

	BeforeAll(func() {
		resultsPath = filepath.Join(workDir, "results.csv")
		Expect(os.WriteFile(resultsPath, []byte(resultsCSV), 0o600)).To(Succeed())
	})

	Context("plan", func() {
		It("should produce a frontier with the baseline and a recommendation", func() {
			out, err := run("plan", "--jobs", resultsPath, "--batch-size=0",
				"--site=MIN", "--max-elastic=8", "--tier=spot", "-o", "json")
			Expect(err).NotTo(HaveOccurred())

			var res optimizer.Result
			Expect(json.Unmarshal([]byte(out), &res)).To(Succeed())
			Expect(res.Site).To(Equal("Minnesota Twins"))
			Expect(res.FixedCount).To(Equal(3))
			Expect(res.Frontier).To(HaveLen(9))
			Expect(res.Frontier[0].ConfigID).To(Equal("G3_C0"))
			Expect(res.Frontier[0].Cost).To(BeZero())
			Expect(res.Frontier[0].Optimal).To(BeTrue(), "the zero-cost baseline is never dominated")
			Expect(res.Recommendation).NotTo(BeNil())
		})

		It("should report no recommendation when the budget excludes every elastic configuration", func() {
			out, err := run("plan", "--batch-size=40", "--max-elastic=4",
				"--max-makespan=1", "-o", "json")
			Expect(err).NotTo(HaveOccurred())

			var res optimizer.Result
			Expect(json.Unmarshal([]byte(out), &res)).To(Succeed())
			Expect(res.Recommendation).To(BeNil())
			Expect(res.Feasible).To(BeZero())
		})

		It("should sweep every instance and tier in multi-instance mode", func() {
			out, err := run("plan", "--batch-size=40", "--max-elastic=3", "--multi", "--tiers=spot,ondemand")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("Configurations: 32 swept"))
			Expect(out).To(ContainSubstring("Recommended:"))
		})
	})

	Context("apply", func() {
		It("should evaluate a BurstPlan manifest and write its status back", func() {
			manifest := filepath.Join(workDir, "plan.yaml")
			Expect(os.WriteFile(manifest, []byte(fmt.Sprintf(`
apiVersion: burstplan.io/v1alpha1
kind: BurstPlan
metadata:
  name: e2e
  namespace: default
spec:
  site: BOS
  maxElastic: 6
  jobs:
    path: %s
  elastic:
    instanceType: g5.xlarge
    pricingTier: ondemand
  costWeight: "0.3"
`, resultsPath)), 0o600)).To(Succeed())

			_, err := run("apply", "-f", manifest, "--write")
			Expect(err).NotTo(HaveOccurred())

			data, err := os.ReadFile(manifest)
			Expect(err).NotTo(HaveOccurred())
			var plan v1alpha1.BurstPlan
			Expect(yaml.Unmarshal(data, &plan)).To(Succeed())

			Expect(plan.Status.SweptConfigurations).To(Equal(int32(7)))
			Expect(plan.Status.RunID).NotTo(BeEmpty())
			Expect(plan.Status.Recommendation).NotTo(BeNil())
			Expect(plan.Status.Recommendation.InstanceType).To(Equal("g5.xlarge"))
			Expect(plan.Status.Actuation.Applied).To(BeTrue())

			types := make([]string, 0, len(plan.Status.Conditions))
			for _, c := range plan.Status.Conditions {
				types = append(types, c.Type)
			}
			Expect(types).To(ContainElements(v1alpha1.TypeJobsLoaded, v1alpha1.TypeOptimizationReady))
		})

		It("should fail with a non-zero exit code on an invalid manifest", func() {
			manifest := filepath.Join(workDir, "broken.yaml")
			Expect(os.WriteFile(manifest, []byte("kind: Deployment\n"), 0o600)).To(Succeed())

			_, err := run("apply", "-f", manifest)
			var exitErr *exec.ExitError
			Expect(errors.As(err, &exitErr)).To(BeTrue())
			Expect(exitErr.ExitCode()).To(Equal(1))
		})
	})

	Context("usage", func() {
		It("should exit with status 2 on an unknown command", func() {
			_, err := run("scale")
			var exitErr *exec.ExitError
			Expect(errors.As(err, &exitErr)).To(BeTrue())
			Expect(exitErr.ExitCode()).To(Equal(2))
		})

		It("should print the rate card", func() {
			out, err := run("pricing")
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Count(out, "xlarge")).To(Equal(4))
		})
	})
})
