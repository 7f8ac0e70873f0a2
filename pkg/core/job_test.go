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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobValidate(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		wantErr  bool
	}{
		{name: "positive", duration: 120},
		{name: "tiny positive", duration: 1e-9},
		{name: "zero", duration: 0, wantErr: true},
		{name: "negative", duration: -5, wantErr: true},
		{name: "NaN", duration: math.NaN(), wantErr: true},
		{name: "infinite", duration: math.Inf(1), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Job{Name: "evt", LocalDuration: tt.duration}.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateJobsReportsIndex(t *testing.T) {
	jobs := []Job{
		{Name: "a", LocalDuration: 10},
		{Name: "b", LocalDuration: 0},
	}
	err := ValidateJobs(jobs)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "job 1")

	assert.NoError(t, ValidateJobs(nil))
	assert.Equal(t, 10.0, TotalLocalDuration(jobs))
}

func TestConfigIDs(t *testing.T) {
	assert.Equal(t, "G5_C10", ConfigID(5, 10))
	assert.Equal(t, "NVIDIA L4_spot_G5_C0", MultiConfigID("NVIDIA L4", TierSpot, 5, 0))
}

func TestPoolProfile(t *testing.T) {
	p := PoolProfile{Name: "Boston Red Sox", Code: "BOS", FixedCount: 5, Tier: "gpu_poor"}
	assert.NoError(t, p.Validate())
	assert.Equal(t, p, p.WithFixedCount(5))

	custom := p.WithFixedCount(8)
	assert.Equal(t, 8, custom.FixedCount)
	assert.Equal(t, "Boston Red Sox (custom)", custom.Name)

	assert.ErrorIs(t, PoolProfile{Name: "bad", FixedCount: -1}.Validate(), ErrConfiguration)
}

func TestRunResultBottleneck(t *testing.T) {
	assert.Equal(t, PoolFixed, RunResult{FixedFinish: 10, ElasticFinish: 10}.Bottleneck())
	assert.Equal(t, PoolElastic, RunResult{FixedFinish: 9, ElasticFinish: 10}.Bottleneck())
}
