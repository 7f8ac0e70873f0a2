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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/burstplan/burstplan/internal/logging"
	"github.com/burstplan/burstplan/pkg/catalog"
	"github.com/burstplan/burstplan/pkg/core"
)

// CatalogFile is the on-disk catalog layout:
//
//	instances:
//	  - name: g4dn.xlarge
//	    gpu: Tesla T4
//	    rates: {ondemand: 0.526, spot: 0.208, 1yr_ri: 0.309, 3yr_ri: 0.198}
//	    ratio: 2.18
//	sites:
//	  - name: Boston Red Sox
//	    code: BOS
//	    fixedCount: 5
//	    tier: gpu_poor
//
// Either section may be omitted, in which case the built-in entries are used.
type CatalogFile struct {
	Instances []catalog.InstanceType `yaml:"instances,omitempty" json:"instances,omitempty"`
	Sites     []core.PoolProfile     `yaml:"sites,omitempty" json:"sites,omitempty"`
}

// Validate checks every entry and names the first invalid one.
func (f *CatalogFile) Validate() error {
	for i, it := range f.Instances {
		if err := it.Validate(); err != nil {
			return fmt.Errorf("instances[%d] (%s): %w", i, it.Name, err)
		}
	}
	for i, p := range f.Sites {
		if p.Name == "" {
			return fmt.Errorf("sites[%d]: %w: site has empty name", i, core.ErrConfiguration)
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("sites[%d] (%s): %w", i, p.Name, err)
		}
	}
	return nil
}

// ParseCatalog decodes a catalog file. Unknown fields are rejected and any
// invalid entry fails the whole parse.
func ParseCatalog(data []byte) (*catalog.Catalog, error) {
	var file CatalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parse catalog: %w", core.ErrConfiguration, err)
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}

	instances, sites := file.Instances, file.Sites
	if len(instances) == 0 {
		instances = catalog.DefaultInstances()
	}
	if len(sites) == 0 {
		sites = catalog.DefaultProfiles()
	}
	c, err := catalog.New(instances, sites)
	if err != nil {
		return nil, err
	}

	ctrl.Log.V(logging.DEBUG).Info("Parsed catalog",
		"instanceCount", len(instances),
		"siteCount", len(sites),
		"defaultInstances", len(file.Instances) == 0,
		"defaultSites", len(file.Sites) == 0)
	return c, nil
}

// LoadCatalog reads the catalog file at path, or returns the built-in catalog when path is empty.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}
