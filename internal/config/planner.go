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

// Package config loads planner settings from defaults, a config file,
// BURSTPLAN_* environment variables and command-line flags, in increasing
// order of precedence, and parses catalog files.
package config

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/burstplan/burstplan/internal/collector"
	"github.com/burstplan/burstplan/internal/engines/limiter"
	"github.com/burstplan/burstplan/internal/engines/pareto"
	"github.com/burstplan/burstplan/internal/engines/sweep"
	"github.com/burstplan/burstplan/internal/optimizer"
	"github.com/burstplan/burstplan/pkg/catalog"
	"github.com/burstplan/burstplan/pkg/core"
)

// EnvPrefix prefixes every environment variable read by the planner.
const EnvPrefix = "BURSTPLAN"

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Keys double as flag names and config file keys.
const (
	KeyJobs               = "jobs"
	KeyLedger             = "ledger"
	KeyCatalog            = "catalog"
	KeyMinDuration        = "min-duration"
	KeyRequireValidOutput = "require-valid-output"
	KeyBatchSize          = "batch-size"
	KeySeed               = "seed"
	KeySite               = "site"
	KeyFixed              = "fixed"
	KeyMaxElastic         = "max-elastic"
	KeyStep               = "step"
	KeyCostWeight         = "cost-weight"
	KeyInstance           = "instance"
	KeyTier               = "tier"
	KeyTiers              = "tiers"
	KeyMulti              = "multi"
	KeyMethod             = "method"
	KeyWorkers            = "workers"
	KeyMaxCost            = "max-cost"
	KeyMaxMakespan        = "max-makespan"
	KeyStartupOverhead    = "startup-overhead"
	KeyTransferSeconds    = "transfer-seconds"
	KeyTransferCost       = "transfer-cost"
	KeyFixedJobDuration   = "fixed-job-duration"
	KeyProcessingMode     = "processing-mode"
	KeyOutput             = "output"
	KeyMetricsBindAddress = "metrics-bind-address"
)

// Processing modes of single-instance cost models.
const (
	// ProcessingModeRatio scales each job's local duration by the instance's speed ratio.
	ProcessingModeRatio = "ratio"
	// ProcessingModeFixed charges every elastic job the fixed-job-duration.
	ProcessingModeFixed = "fixed"
)

// FixedFromSite means the fixed pool size is taken from the site profile.
const FixedFromSite = -1

// PlannerConfig holds every setting of a planning run.
type PlannerConfig struct {
	JobsPath           string  `mapstructure:"jobs"`
	LedgerPath         string  `mapstructure:"ledger"`
	CatalogPath        string  `mapstructure:"catalog"`
	MinDuration        float64 `mapstructure:"min-duration"`
	RequireValidOutput bool    `mapstructure:"require-valid-output"`
	BatchSize          int     `mapstructure:"batch-size"`
	Seed               uint64  `mapstructure:"seed"`

	Site string `mapstructure:"site"`
	// Fixed overrides the site's fixed pool size unless it is FixedFromSite.
	Fixed      int     `mapstructure:"fixed"`
	MaxElastic int     `mapstructure:"max-elastic"`
	Step       int     `mapstructure:"step"`
	CostWeight float64 `mapstructure:"cost-weight"`

	Instance string   `mapstructure:"instance"`
	Tier     string   `mapstructure:"tier"`
	Tiers    []string `mapstructure:"tiers"`
	Multi    bool     `mapstructure:"multi"`

	Method  string `mapstructure:"method"`
	Workers int    `mapstructure:"workers"`

	MaxCost     float64 `mapstructure:"max-cost"`
	MaxMakespan float64 `mapstructure:"max-makespan"`

	StartupOverhead  float64 `mapstructure:"startup-overhead"`
	TransferSeconds  float64 `mapstructure:"transfer-seconds"`
	TransferCost     float64 `mapstructure:"transfer-cost"`
	FixedJobDuration float64 `mapstructure:"fixed-job-duration"`
	ProcessingMode   string  `mapstructure:"processing-mode"`

	Output             string `mapstructure:"output"`
	MetricsBindAddress string `mapstructure:"metrics-bind-address"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyMinDuration, collector.DefaultMinDuration)
	v.SetDefault(KeyRequireValidOutput, true)
	v.SetDefault(KeyBatchSize, collector.DefaultBatchSize)
	v.SetDefault(KeySeed, collector.DefaultSeed)
	v.SetDefault(KeySite, catalog.DefaultProfile)
	v.SetDefault(KeyFixed, FixedFromSite)
	v.SetDefault(KeyMaxElastic, sweep.DefaultMaxElastic)
	v.SetDefault(KeyStep, sweep.DefaultStep)
	v.SetDefault(KeyCostWeight, pareto.DefaultCostWeight)
	v.SetDefault(KeyInstance, catalog.DefaultInstance)
	v.SetDefault(KeyTier, string(core.TierOnDemand))
	v.SetDefault(KeyTiers, tierNames(core.PricingTiers))
	v.SetDefault(KeyMethod, pareto.Pairwise.String())
	v.SetDefault(KeyStartupOverhead, core.DefaultStartupOverhead)
	v.SetDefault(KeyTransferCost, core.DefaultTransferCost)
	v.SetDefault(KeyFixedJobDuration, core.DefaultFixedJobDuration)
	v.SetDefault(KeyProcessingMode, ProcessingModeRatio)
	v.SetDefault(KeyOutput, OutputTable)
}

// BindFlags registers the planner flags on fs. Flag defaults are left to
// SetDefaults so that unset flags do not shadow file and environment values.
func BindFlags(fs *pflag.FlagSet) {
	fs.String(KeyJobs, "", "Results CSV with measured fixed-pool durations. Empty uses a synthetic batch.")
	fs.String(KeyLedger, "", "Optional ledger CSV joined onto jobs by event name.")
	fs.String(KeyCatalog, "", "Catalog YAML with instance types and sites. Empty uses the built-in catalog.")
	fs.Float64(KeyMinDuration, 0, "Skip jobs measured below this many seconds.")
	fs.Bool(KeyRequireValidOutput, false, "Skip legacy rows whose output failed validation.")
	fs.Int(KeyBatchSize, 0, "Resample the dataset with replacement to this many jobs. 0 keeps the dataset as is.")
	fs.Uint64(KeySeed, 0, "Seed for batch resampling.")
	fs.String(KeySite, "", "Site profile name or code.")
	fs.Int(KeyFixed, 0, "Fixed pool size, overriding the site profile.")
	fs.Int(KeyMaxElastic, 0, "Largest elastic pool size to sweep.")
	fs.Int(KeyStep, 0, "Elastic pool size increment.")
	fs.Float64(KeyCostWeight, 0, "Weight of cost versus makespan in the recommendation, in [0, 1].")
	fs.String(KeyInstance, "", "Elastic instance type for single-instance sweeps.")
	fs.String(KeyTier, "", "Pricing tier for single-instance sweeps (ondemand, spot, 1yr_ri, 3yr_ri).")
	fs.StringSlice(KeyTiers, nil, "Pricing tiers for multi-instance sweeps.")
	fs.Bool(KeyMulti, false, "Sweep every catalog instance type and tier.")
	fs.String(KeyMethod, "", "Dominance method (pairwise, vectorized).")
	fs.Int(KeyWorkers, 0, "Concurrent scheduler runs. 0 uses GOMAXPROCS.")
	fs.Float64(KeyMaxCost, 0, "Budget cap in dollars. 0 means no limit.")
	fs.Float64(KeyMaxMakespan, 0, "Deadline cap in seconds. 0 means no limit.")
	fs.Float64(KeyStartupOverhead, 0, "Seconds each elastic processor needs before its first job.")
	fs.Float64(KeyTransferSeconds, 0, "Per-job data transfer time in seconds.")
	fs.Float64(KeyTransferCost, 0, "Per-job data transfer cost in dollars.")
	fs.Float64(KeyFixedJobDuration, 0, "Per-job elastic duration in seconds in fixed processing mode.")
	fs.String(KeyProcessingMode, "", "Elastic duration model for single-instance runs (ratio, fixed).")
	fs.StringP(KeyOutput, "o", "", "Output format (table, json, yaml).")
	fs.String(KeyMetricsBindAddress, "", "Serve Prometheus metrics on this address, e.g. :8080. Empty disables it.")
}

// Load builds a PlannerConfig from v. Flags in fs that were set explicitly take
// precedence over BURSTPLAN_* environment variables, which take precedence
// over configFile. The result is validated.
func Load(v *viper.Viper, fs *pflag.FlagSet, configFile string) (*PlannerConfig, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: read config %s: %w", core.ErrConfiguration, configFile, err)
		}
	}
	if fs != nil {
		var bindErr error
		fs.VisitAll(func(f *pflag.Flag) {
			if bindErr == nil && f.Changed {
				bindErr = v.BindPFlag(f.Name, f)
			}
		})
		if bindErr != nil {
			return nil, bindErr
		}
	}

	var cfg PlannerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: decode config: %w", core.ErrConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and cross-field constraints.
func (c *PlannerConfig) Validate() error {
	if c.BatchSize < 0 {
		return fmt.Errorf("%w: %s must be >= 0, got %d", core.ErrConfiguration, KeyBatchSize, c.BatchSize)
	}
	if c.Fixed < FixedFromSite {
		return fmt.Errorf("%w: %s must be >= 0, got %d", core.ErrConfiguration, KeyFixed, c.Fixed)
	}
	if c.MaxElastic < 0 {
		return fmt.Errorf("%w: %s must be >= 0, got %d", core.ErrConfiguration, KeyMaxElastic, c.MaxElastic)
	}
	if c.Step <= 0 {
		return fmt.Errorf("%w: %s must be > 0, got %d", core.ErrConfiguration, KeyStep, c.Step)
	}
	if math.IsNaN(c.CostWeight) || c.CostWeight < 0 || c.CostWeight > 1 {
		return fmt.Errorf("%w: %s must be between 0 and 1, got %.2f", core.ErrConfiguration, KeyCostWeight, c.CostWeight)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %s must be >= 0, got %d", core.ErrConfiguration, KeyWorkers, c.Workers)
	}
	if c.MinDuration < 0 {
		return fmt.Errorf("%w: %s must be >= 0, got %.1f", core.ErrConfiguration, KeyMinDuration, c.MinDuration)
	}
	if _, err := c.PricingTier(); err != nil {
		return err
	}
	if _, err := c.PricingTiers(); err != nil {
		return err
	}
	if _, err := c.DominanceMethod(); err != nil {
		return err
	}
	if err := c.Limits().Validate(); err != nil {
		return err
	}
	if err := c.Overheads().Validate(); err != nil {
		return err
	}
	if !slices.Contains([]string{OutputTable, OutputJSON, OutputYAML}, c.Output) {
		return fmt.Errorf("%w: unknown %s %q", core.ErrConfiguration, KeyOutput, c.Output)
	}
	switch c.ProcessingMode {
	case ProcessingModeRatio:
	case ProcessingModeFixed:
		if c.FixedJobDuration <= 0 {
			return fmt.Errorf("%w: %s must be > 0 in %s processing mode, got %.1f",
				core.ErrConfiguration, KeyFixedJobDuration, ProcessingModeFixed, c.FixedJobDuration)
		}
		if c.Multi {
			return fmt.Errorf("%w: %s %s applies to single-instance runs, not %s",
				core.ErrConfiguration, KeyProcessingMode, ProcessingModeFixed, KeyMulti)
		}
	default:
		return fmt.Errorf("%w: unknown %s %q", core.ErrConfiguration, KeyProcessingMode, c.ProcessingMode)
	}
	if c.LedgerPath != "" && c.JobsPath == "" {
		return fmt.Errorf("%w: %s requires %s", core.ErrConfiguration, KeyLedger, KeyJobs)
	}
	return nil
}

// PricingTier returns the tier of single-instance sweeps.
func (c *PlannerConfig) PricingTier() (core.PricingTier, error) {
	return core.ParsePricingTier(c.Tier)
}

// PricingTiers returns the tiers of multi-instance sweeps, in configured order.
func (c *PlannerConfig) PricingTiers() ([]core.PricingTier, error) {
	tiers := make([]core.PricingTier, 0, len(c.Tiers))
	for _, s := range c.Tiers {
		t, err := core.ParsePricingTier(s)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(tiers, t) {
			tiers = append(tiers, t)
		}
	}
	return tiers, nil
}

// DominanceMethod returns the configured dominance engine.
func (c *PlannerConfig) DominanceMethod() (pareto.Method, error) {
	return pareto.ParseMethod(c.Method)
}

// Limits returns the recommendation constraints.
func (c *PlannerConfig) Limits() limiter.LimiterConfig {
	return limiter.LimiterConfig{MaxCost: c.MaxCost, MaxMakespan: c.MaxMakespan}
}

// Overheads returns the cost model settings shared by every swept instance.
// Instance, tier, rate and ratio are filled in from the catalog.
func (c *PlannerConfig) Overheads() core.ElasticCostModel {
	m := core.DefaultElasticCostModel()
	m.StartupOverhead = c.StartupOverhead
	m.TransferSeconds = c.TransferSeconds
	m.TransferCost = c.TransferCost
	m.FixedJobDuration = c.FixedJobDuration
	return m
}

// SweepOptions returns the sweeper settings.
func (c *PlannerConfig) SweepOptions() sweep.Options {
	overheads := c.Overheads()
	return sweep.Options{Step: c.Step, Workers: c.Workers, Overheads: &overheads}
}

// SourceConfig returns the CSV source settings.
func (c *PlannerConfig) SourceConfig() collector.CSVSourceConfig {
	return collector.CSVSourceConfig{
		Path:               c.JobsPath,
		LedgerPath:         c.LedgerPath,
		MinDuration:        c.MinDuration,
		RequireValidOutput: c.RequireValidOutput,
	}
}

// Profile resolves the site profile from cat and applies the fixed pool override.
func (c *PlannerConfig) Profile(cat *catalog.Catalog) (core.PoolProfile, error) {
	p, err := cat.Profile(c.Site)
	if err != nil {
		return core.PoolProfile{}, err
	}
	if c.Fixed != FixedFromSite {
		p = p.WithFixedCount(c.Fixed)
	}
	return p, nil
}

// CostModel returns the cost model of single-instance sweeps. In fixed
// processing mode the instance's ratio is dropped so every job takes
// FixedJobDuration on the elastic pool.
func (c *PlannerConfig) CostModel(cat *catalog.Catalog) (core.ElasticCostModel, error) {
	tier, err := c.PricingTier()
	if err != nil {
		return core.ElasticCostModel{}, err
	}
	m, err := cat.CostModel(c.Instance, tier, c.Overheads())
	if err != nil {
		return core.ElasticCostModel{}, err
	}
	if c.ProcessingMode == ProcessingModeFixed {
		m.Ratio = nil
	}
	return m, nil
}

// OptimizerConfig returns the pipeline settings.
func (c *PlannerConfig) OptimizerConfig() (optimizer.Config, error) {
	method, err := c.DominanceMethod()
	if err != nil {
		return optimizer.Config{}, err
	}
	return optimizer.Config{
		Sweep:      c.SweepOptions(),
		Method:     method,
		CostWeight: c.CostWeight,
		Limits:     c.Limits(),
	}, nil
}

// JobSource returns the CSV source of JobsPath, or a synthetic batch of
// BatchSize jobs when no path is set.
func (c *PlannerConfig) JobSource() (collector.JobSource, error) {
	if c.JobsPath != "" {
		return collector.NewCSVSource(c.SourceConfig())
	}
	synth := collector.DefaultSyntheticConfig()
	synth.Seed = c.Seed
	synth.MinDuration = c.MinDuration
	if c.BatchSize > 0 {
		synth.Size = c.BatchSize
	}
	return collector.NewSyntheticSource(synth)
}

// LoadBatch loads the jobs of JobSource and, for measured results, resamples
// them to BatchSize. A zero BatchSize keeps the dataset as is.
func (c *PlannerConfig) LoadBatch(ctx context.Context) ([]core.Job, collector.JobSource, error) {
	src, err := c.JobSource()
	if err != nil {
		return nil, nil, err
	}
	jobs, err := src.Load(ctx)
	if err != nil {
		return nil, src, err
	}
	if c.JobsPath == "" || c.BatchSize == 0 {
		return jobs, src, nil
	}
	batch, err := collector.SampleBatch(jobs, c.BatchSize, c.Seed)
	if err != nil {
		return nil, src, err
	}
	return batch, src, nil
}

func tierNames(tiers []core.PricingTier) []string {
	out := make([]string, len(tiers))
	for i, t := range tiers {
		out[i] = string(t)
	}
	return out
}
