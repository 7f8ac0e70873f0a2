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

package category

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/burstplan/burstplan/pkg/core"
)

func makeJob(name, tag string) core.Job {
	return core.Job{Name: name, Category: tag, LocalDuration: 100}
}

var _ = Describe("Detect", func() {
	var defaultConfig LabelConfig

	BeforeEach(func() {
		defaultConfig = DefaultLabelConfig()
	})

	Context("with default config", func() {
		It("should detect pitching", func() {
			Expect(Detect("Pitching", defaultConfig)).To(Equal(Pitching))
		})

		It("should detect batting", func() {
			Expect(Detect("Batting", defaultConfig)).To(Equal(Batting))
		})

		It("should ignore case and surrounding whitespace", func() {
			Expect(Detect("  PITCHING ", defaultConfig)).To(Equal(Pitching))
			Expect(Detect("hitting", defaultConfig)).To(Equal(Batting))
		})

		It("should return unknown for an unrecognized tag", func() {
			Expect(Detect("Fielding", defaultConfig)).To(Equal(Unknown))
		})

		It("should return unknown for an empty tag", func() {
			Expect(Detect("", defaultConfig)).To(Equal(Unknown))
			Expect(Detect("   ", defaultConfig)).To(Equal(Unknown))
		})
	})

	Context("with custom label config", func() {
		It("should use the configured values only", func() {
			config := LabelConfig{PitchingValues: []string{"P"}, BattingValues: []string{"B"}}
			Expect(Detect("p", config)).To(Equal(Pitching))
			Expect(Detect("b", config)).To(Equal(Batting))
			Expect(Detect("Pitching", config)).To(Equal(Unknown))
		})

		It("should return unknown when no values are configured", func() {
			Expect(Detect("Pitching", LabelConfig{})).To(Equal(Unknown))
		})
	})
})

var _ = Describe("Tally", func() {
	It("should count every category, including empty ones", func() {
		jobs := []core.Job{
			makeJob("a", "Pitching"),
			makeJob("b", "pitching"),
			makeJob("c", "Batting"),
		}
		Expect(Tally(jobs, DefaultLabelConfig())).To(Equal(map[Category]int{
			Pitching: 2,
			Batting:  1,
			Unknown:  0,
		}))
	})

	It("should return zero counts for no jobs", func() {
		counts := Tally(nil, DefaultLabelConfig())
		Expect(counts).To(HaveLen(len(All)))
		for _, c := range All {
			Expect(counts[c]).To(BeZero())
		}
	})

	It("should classify a job by its tag", func() {
		Expect(OfJob(makeJob("x", "bat"), DefaultLabelConfig())).To(Equal(Batting))
	})
})

var _ = Describe("DefaultLabelConfig", func() {
	It("should return standard configuration", func() {
		config := DefaultLabelConfig()
		Expect(config.PitchingValues).To(Equal([]string{"pitching", "pitch"}))
		Expect(config.BattingValues).To(Equal([]string{"batting", "bat", "hitting"}))
	})
})
