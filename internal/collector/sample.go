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

package collector

import (
	"fmt"
	"math/rand/v2"

	"github.com/burstplan/burstplan/pkg/core"
)

const (
	// DefaultBatchSize is a typical number of events produced by one game.
	DefaultBatchSize = 600
	// DefaultSeed makes default sampling reproducible.
	DefaultSeed uint64 = 42
)

// SampleBatch draws size jobs from jobs uniformly with replacement.
// The same jobs, size and seed always yield the same batch. Sampled jobs share
// their names with the originals; use the returned order, not the name, to
// tell draws apart.
func SampleBatch(jobs []core.Job, size int, seed uint64) ([]core.Job, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: batch size must be non-negative, got %d", core.ErrConfiguration, size)
	}
	if size > 0 && len(jobs) == 0 {
		return nil, fmt.Errorf("%w: cannot sample %d jobs from an empty dataset", core.ErrInvalidInput, size)
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]core.Job, size)
	for i := range out {
		out[i] = jobs[rng.IntN(len(jobs))]
	}
	return out, nil
}
