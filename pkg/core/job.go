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

package core

import (
	"fmt"
	"math"
)

// Job is one independent unit of work in a batch.
// Jobs are created by a loader and never modified afterwards.
type Job struct {
	// Name identifies the job (e.g. the event name).
	Name string `json:"name"`

	// Category is an opaque type tag ("Pitching", "Batting", ...) used only for reporting.
	Category string `json:"category,omitempty"`

	// LocalDuration is the processing time in seconds measured once on the fixed pool.
	LocalDuration float64 `json:"localDuration"`

	// Optional enrichment fields, passed through untouched.
	FPS         *float64 `json:"fps,omitempty"`
	Session     string   `json:"session,omitempty"`
	StoragePath string   `json:"storagePath,omitempty"`
}

// Validate rejects jobs whose duration would corrupt load balancing.
func (j Job) Validate() error {
	if math.IsNaN(j.LocalDuration) || math.IsInf(j.LocalDuration, 0) || j.LocalDuration <= 0 {
		return fmt.Errorf("%w: job %q has non-positive local duration %v", ErrInvalidInput, j.Name, j.LocalDuration)
	}
	return nil
}

// ValidateJobs validates every job in the batch and returns the first failure.
func ValidateJobs(jobs []Job) error {
	for i := range jobs {
		if err := jobs[i].Validate(); err != nil {
			return fmt.Errorf("job %d: %w", i, err)
		}
	}
	return nil
}

// TotalLocalDuration returns the sum of local durations of the batch.
func TotalLocalDuration(jobs []Job) float64 {
	var total float64
	for i := range jobs {
		total += jobs[i].LocalDuration
	}
	return total
}
