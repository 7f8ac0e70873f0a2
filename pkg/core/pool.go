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

import "fmt"

// PoolKind identifies which pool a processor belongs to.
type PoolKind string

const (
	// PoolFixed is the on-site pool: fixed size, zero marginal cost.
	PoolFixed PoolKind = "fixed"
	// PoolElastic is the metered pool, billed per pricing tier.
	PoolElastic PoolKind = "elastic"
)

// PoolProfile describes a fixed processor pool at one site.
type PoolProfile struct {
	// Name is the display name of the site (e.g. "Boston Red Sox").
	Name string `json:"name" yaml:"name"`

	// Code is a short site code (e.g. "BOS").
	Code string `json:"code,omitempty" yaml:"code,omitempty"`

	// FixedCount is the number of fixed processors available.
	FixedCount int `json:"fixedCount" yaml:"fixedCount"`

	// Tier is an informational label ("gpu_poor", "gpu_moderate", "gpu_rich").
	Tier string `json:"tier,omitempty" yaml:"tier,omitempty"`
}

// Validate checks the profile for negative processor counts.
func (p PoolProfile) Validate() error {
	if p.FixedCount < 0 {
		return fmt.Errorf("%w: pool profile %q has negative fixed count %d", ErrConfiguration, p.Name, p.FixedCount)
	}
	return nil
}

// WithFixedCount returns a copy of the profile with an overridden processor count.
func (p PoolProfile) WithFixedCount(count int) PoolProfile {
	if count != p.FixedCount {
		p.Name = fmt.Sprintf("%s (custom)", p.Name)
		p.FixedCount = count
	}
	return p
}
