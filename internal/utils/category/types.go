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

// Package category normalises the free-form job type tags found in results
// files into a small set of reporting categories.
package category

// Category is a normalised job type. The scheduler never looks at it; it is
// used only to break results down for reporting.
type Category string

const (
	// Pitching marks a pitching motion capture.
	Pitching Category = "Pitching"
	// Batting marks a batting motion capture.
	Batting Category = "Batting"
	// Unknown marks a tag that matched no configured value.
	Unknown Category = "Unknown"
)

// All lists every category in report order.
var All = []Category{Pitching, Batting, Unknown}

// LabelConfig describes which raw tag values map to which category.
// Matching ignores case and surrounding whitespace.
type LabelConfig struct {
	// PitchingValues are tag values that indicate a pitching job.
	PitchingValues []string
	// BattingValues are tag values that indicate a batting job.
	BattingValues []string
}

// DefaultLabelConfig returns the tag values used by the capture pipeline.
func DefaultLabelConfig() LabelConfig {
	return LabelConfig{
		PitchingValues: []string{"pitching", "pitch"},
		BattingValues:  []string{"batting", "bat", "hitting"},
	}
}
