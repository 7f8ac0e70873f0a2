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
	"context"

	"github.com/burstplan/burstplan/pkg/core"
)

// JobSource is the interface for pluggable job sources.
type JobSource interface {
	// Name returns a short description of the source (e.g. the file it reads).
	Name() string

	// Load returns the jobs of the source. Every returned job passes core.Job.Validate.
	Load(ctx context.Context) ([]core.Job, error)
}

// StaticSource serves a fixed job list.
type StaticSource struct {
	name string
	jobs []core.Job
}

// NewStaticSource validates jobs and wraps them in a JobSource.
func NewStaticSource(name string, jobs []core.Job) (*StaticSource, error) {
	if err := core.ValidateJobs(jobs); err != nil {
		return nil, err
	}
	return &StaticSource{name: name, jobs: jobs}, nil
}

// Name implements JobSource.
func (s *StaticSource) Name() string { return s.name }

// Load implements JobSource. The returned slice is a copy.
func (s *StaticSource) Load(_ context.Context) ([]core.Job, error) {
	out := make([]core.Job, len(s.jobs))
	copy(out, s.jobs)
	return out, nil
}
