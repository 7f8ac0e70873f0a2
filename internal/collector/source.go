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
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/burstplan/burstplan/internal/logging"
	"github.com/burstplan/burstplan/pkg/core"
)

// DefaultMinDuration is the shortest measured duration, in seconds, kept by default.
// Shorter runs are failed or truncated events.
const DefaultMinDuration = 60.0

// CSVSourceConfig holds configuration for a CSVSource.
type CSVSourceConfig struct {
	// Path is the results CSV.
	Path string
	// LedgerPath is an optional ledger CSV joined by event name.
	LedgerPath string
	// MinDuration skips rows measured below this many seconds. Zero keeps every row.
	MinDuration float64
	// RequireValidOutput skips legacy rows whose output failed validation.
	RequireValidOutput bool
}

// DefaultCSVSourceConfig returns the default configuration for path.
func DefaultCSVSourceConfig(path string) CSVSourceConfig {
	return CSVSourceConfig{Path: path, MinDuration: DefaultMinDuration, RequireValidOutput: true}
}

// CSVSource loads jobs from a results CSV file.
type CSVSource struct {
	config CSVSourceConfig
}

// NewCSVSource creates a new CSVSource instance.
func NewCSVSource(config CSVSourceConfig) (*CSVSource, error) {
	if config.Path == "" {
		return nil, fmt.Errorf("%w: results CSV path is empty", core.ErrConfiguration)
	}
	if math.IsNaN(config.MinDuration) || config.MinDuration < 0 {
		return nil, fmt.Errorf("%w: min duration must be non-negative, got %v", core.ErrConfiguration, config.MinDuration)
	}
	return &CSVSource{config: config}, nil
}

// Name implements JobSource.
func (s *CSVSource) Name() string { return s.config.Path }

// Load implements JobSource.
func (s *CSVSource) Load(ctx context.Context) ([]core.Job, error) {
	logger := ctrl.LoggerFrom(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var ledger map[string]LedgerEntry
	if s.config.LedgerPath != "" {
		f, err := os.Open(s.config.LedgerPath)
		if err != nil {
			return nil, fmt.Errorf("open ledger: %w", err)
		}
		defer f.Close()
		if ledger, err = LoadLedger(f); err != nil {
			return nil, fmt.Errorf("load ledger %s: %w", s.config.LedgerPath, err)
		}
	}

	f, err := os.Open(s.config.Path)
	if err != nil {
		return nil, fmt.Errorf("open results: %w", err)
	}
	defer f.Close()

	jobs, stats, err := s.parse(f, ledger)
	if err != nil {
		return nil, fmt.Errorf("load results %s: %w", s.config.Path, err)
	}
	if stats.unmeasured > 0 {
		logger.Info("Skipped rows without a positive duration",
			"path", s.config.Path, "rows", stats.unmeasured)
	}
	logger.V(logging.DEBUG).Info("Loaded jobs from CSV",
		"path", s.config.Path,
		"format", stats.format,
		"jobs", len(jobs),
		"skippedUnmeasured", stats.unmeasured,
		"skippedShort", stats.short,
		"skippedInvalid", stats.invalid,
		"enriched", stats.enriched)
	return jobs, nil
}

type parseStats struct {
	format     Format
	unmeasured int
	short      int
	invalid    int
	enriched   int
}

// parse reads results rows from r and joins them with ledger.
func (s *CSVSource) parse(r io.Reader, ledger map[string]LedgerEntry) ([]core.Job, parseStats, error) {
	var stats parseStats

	t, err := newTable(r)
	if err != nil {
		return nil, stats, err
	}
	if stats.format, err = DetectFormat(t.header); err != nil {
		return nil, stats, err
	}

	durationCol := colOnPremTime
	required := []string{colEventName, colEventType, colOnPremTime}
	if stats.format == FormatLegacy {
		durationCol = colProcessingTime
		required = []string{colEventName, colEventType, colProcessingTime, colOutputValid}
	}
	if err := t.require(required...); err != nil {
		return nil, stats, err
	}

	var jobs []core.Job
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, err
		}

		raw := rec.get(durationCol)
		duration, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, stats, fmt.Errorf("line %d: %w: %s %q", t.line(), core.ErrInvalidInput, durationCol, raw)
		}
		job := core.Job{
			Name:          rec.get(colEventName),
			Category:      rec.get(colEventType),
			LocalDuration: duration,
		}
		// Unmeasured rows never reach the scheduler.
		if err := job.Validate(); err != nil {
			stats.unmeasured++
			continue
		}
		if duration < s.config.MinDuration {
			stats.short++
			continue
		}
		if stats.format == FormatLegacy && s.config.RequireValidOutput &&
			!strings.EqualFold(rec.get(colOutputValid), "true") {
			stats.invalid++
			continue
		}

		if stats.format == FormatCombined {
			job.FPS = fpsFromCategory(rec.get(colFPSCategory))
		}
		if entry, ok := ledger[job.Name]; ok {
			stats.enriched++
			job.Session = entry.Session
			job.StoragePath = entry.StoragePath
			if entry.FPS != nil {
				fps := *entry.FPS
				job.FPS = &fps
			}
		}
		jobs = append(jobs, job)
	}
	return jobs, stats, nil
}
