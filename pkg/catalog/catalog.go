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

package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"k8s.io/utils/ptr"

	"github.com/burstplan/burstplan/pkg/core"
)

var (
	ErrUnknownInstance = errors.New("unknown instance type")
	ErrUnknownProfile  = errors.New("unknown pool profile")
)

// Catalog is an immutable set of instance types and pool profiles.
// It is built once at startup and passed by pointer; accessors return copies.
type Catalog struct {
	instances []InstanceType
	profiles  []core.PoolProfile

	instanceIndex map[string]int
	profileIndex  map[string]int
}

// New validates and indexes the given entries. Names must be unique; profiles
// are also indexed by their (case-insensitive) code.
func New(instances []InstanceType, profiles []core.PoolProfile) (*Catalog, error) {
	c := &Catalog{
		instances:     slices.Clone(instances),
		profiles:      slices.Clone(profiles),
		instanceIndex: make(map[string]int, len(instances)),
		profileIndex:  make(map[string]int, 2*len(profiles)),
	}
	for i, it := range c.instances {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.instanceIndex[it.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate instance type %q", core.ErrConfiguration, it.Name)
		}
		// clone reserved rates so the catalog never aliases caller memory
		c.instances[i].Rates.Reserved1Yr = clonePtr(it.Rates.Reserved1Yr)
		c.instances[i].Rates.Reserved3Yr = clonePtr(it.Rates.Reserved3Yr)
		c.instanceIndex[it.Name] = i
	}
	for i, p := range c.profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		keys := []string{strings.ToLower(p.Name)}
		if p.Code != "" && !strings.EqualFold(p.Code, p.Name) {
			keys = append(keys, strings.ToLower(p.Code))
		}
		for _, k := range keys {
			if _, dup := c.profileIndex[k]; dup {
				return nil, fmt.Errorf("%w: duplicate pool profile %q", core.ErrConfiguration, k)
			}
			c.profileIndex[k] = i
		}
	}
	return c, nil
}

// Instances returns a copy of all instance types in catalog order.
func (c *Catalog) Instances() []InstanceType {
	out := make([]InstanceType, len(c.instances))
	for i, it := range c.instances {
		out[i] = copyInstance(it)
	}
	return out
}

// Instance looks up an instance type by name.
func (c *Catalog) Instance(name string) (InstanceType, error) {
	i, ok := c.instanceIndex[name]
	if !ok {
		return InstanceType{}, fmt.Errorf("%w: %w %q", core.ErrConfiguration, ErrUnknownInstance, name)
	}
	return copyInstance(c.instances[i]), nil
}

// Profiles returns a copy of all pool profiles in catalog order.
func (c *Catalog) Profiles() []core.PoolProfile {
	return slices.Clone(c.profiles)
}

// Profile looks up a pool profile by name or code, case-insensitively.
func (c *Catalog) Profile(key string) (core.PoolProfile, error) {
	i, ok := c.profileIndex[strings.ToLower(key)]
	if !ok {
		return core.PoolProfile{}, fmt.Errorf("%w: %w %q", core.ErrConfiguration, ErrUnknownProfile, key)
	}
	return c.profiles[i], nil
}

// CostModel resolves an instance and tier into a cost model.
func (c *Catalog) CostModel(instance string, tier core.PricingTier, base core.ElasticCostModel) (core.ElasticCostModel, error) {
	it, err := c.Instance(instance)
	if err != nil {
		return core.ElasticCostModel{}, err
	}
	return it.CostModel(tier, base)
}

func copyInstance(it InstanceType) InstanceType {
	it.Rates.Reserved1Yr = clonePtr(it.Rates.Reserved1Yr)
	it.Rates.Reserved3Yr = clonePtr(it.Rates.Reserved3Yr)
	return it
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return ptr.To(*p)
}
