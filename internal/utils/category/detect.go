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
	"strings"

	"github.com/burstplan/burstplan/pkg/core"
)

// Detect maps a raw tag to its category. Tags matching no configured value,
// including the empty tag, are Unknown.
func Detect(tag string, config LabelConfig) Category {
	value := strings.TrimSpace(tag)
	if value == "" {
		return Unknown
	}
	return matchValue(value, config)
}

// OfJob returns the category of a job's tag.
func OfJob(job core.Job, config LabelConfig) Category {
	return Detect(job.Category, config)
}

// Tally counts jobs per category. Every category in All is present in the result.
func Tally(jobs []core.Job, config LabelConfig) map[Category]int {
	counts := make(map[Category]int, len(All))
	for _, c := range All {
		counts[c] = 0
	}
	for _, j := range jobs {
		counts[OfJob(j, config)]++
	}
	return counts
}

// matchValue matches a tag against the config's value lists.
func matchValue(value string, config LabelConfig) Category {
	for _, v := range config.PitchingValues {
		if strings.EqualFold(value, v) {
			return Pitching
		}
	}
	for _, v := range config.BattingValues {
		if strings.EqualFold(value, v) {
			return Batting
		}
	}
	return Unknown
}
