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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Format identifies a results CSV layout.
type Format string

const (
	// FormatCombined has fixed-pool and elastic measurements per event.
	FormatCombined Format = "combined"
	// FormatLegacy has fixed-pool measurements and output validation columns.
	FormatLegacy Format = "legacy"
)

// Column names.
const (
	colEventName = "event_name"
	colEventType = "event_type"

	colOnPremTime  = "onprem_time_sec"
	colFPSCategory = "fps_category"

	colProcessingTime = "processing_time_sec"
	colOutputValid    = "c3d_valid"

	colSession     = "session"
	colFPS         = "fps"
	colStoragePath = "s3_path"
)

var (
	errUnsupportedFormat = errors.New("unsupported results format")
	errMissingColumn     = errors.New("missing column")
)

// DetectFormat inspects a header row.
func DetectFormat(header []string) (Format, error) {
	switch {
	case slices.Contains(header, colOnPremTime):
		return FormatCombined, nil
	case slices.Contains(header, colProcessingTime):
		return FormatLegacy, nil
	default:
		return "", fmt.Errorf("%w: header has neither %s nor %s", errUnsupportedFormat, colOnPremTime, colProcessingTime)
	}
}

// LedgerEntry holds per-event metadata joined onto jobs by event name.
type LedgerEntry struct {
	Session     string
	FPS         *float64
	StoragePath string
}

// record is one CSV row addressed by column name.
type record struct {
	index map[string]int
	row   []string
}

func (r record) get(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.row) {
		return ""
	}
	return strings.TrimSpace(r.row[i])
}

// table reads a CSV with a header row.
type table struct {
	header []string
	index  map[string]int
	reader *csv.Reader
}

func newTable(r io.Reader) (*table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	return &table{header: header, index: index, reader: cr}, nil
}

func (t *table) require(cols ...string) error {
	for _, c := range cols {
		if _, ok := t.index[c]; !ok {
			return fmt.Errorf("%w %q", errMissingColumn, c)
		}
	}
	return nil
}

// next returns the next record, or io.EOF.
func (t *table) next() (record, error) {
	row, err := t.reader.Read()
	if err != nil {
		return record{}, err
	}
	return record{index: t.index, row: row}, nil
}

// line returns the input line of the last record read.
func (t *table) line() int {
	line, _ := t.reader.FieldPos(0)
	return line
}

// LoadLedger reads a ledger CSV keyed by event_name. Later rows win.
func LoadLedger(r io.Reader) (map[string]LedgerEntry, error) {
	t, err := newTable(r)
	if err != nil {
		return nil, err
	}
	if err := t.require(colEventName); err != nil {
		return nil, err
	}

	ledger := map[string]LedgerEntry{}
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		name := rec.get(colEventName)
		if name == "" {
			continue
		}
		entry := LedgerEntry{Session: rec.get(colSession), StoragePath: rec.get(colStoragePath)}
		if v := rec.get(colFPS); v != "" {
			fps, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("ledger line %d: fps %q: %w", t.line(), v, err)
			}
			entry.FPS = &fps
		}
		ledger[name] = entry
	}
	return ledger, nil
}

// fpsFromCategory maps the combined format's fps_category to a sampling rate.
func fpsFromCategory(category string) *float64 {
	var fps float64
	switch category {
	case "300":
		fps = 300
	case "600":
		fps = 600
	default:
		return nil
	}
	return &fps
}
