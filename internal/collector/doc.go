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

// Package collector loads the batch of jobs to plan for.
//
// # Overview
//
// A JobSource produces validated core.Job values. Two sources are provided:
//
//   - CSVSource reads measured fixed-pool processing results from a CSV file.
//   - StaticSource serves an in-memory job list, mainly for tests.
//
// # CSV formats
//
// CSVSource detects the format from the header row:
//
// Combined results (one row per event, fixed-pool and elastic measurements side by side):
//
//	event_name,event_type,onprem_time_sec,onprem_exit_code,cloud_time_sec,fps_category,...
//
// Legacy fixed-pool results:
//
//	event_name,venue,event_type,processing_time_sec,exit_code,c3d_valid,c3d_size_bytes
//
// Rows shorter than the minimum duration (60 seconds by default) are skipped,
// as are legacy rows whose output failed validation when RequireValidOutput is set.
// Rows whose duration is zero, negative or NaN are skipped and counted in the
// load log, so they never reach the scheduler. A missing or unparseable
// duration fails the load with core.ErrInvalidInput.
//
// # Ledger enrichment
//
// When a ledger CSV is configured, rows are joined by event_name and the job
// receives the ledger's session, sampling rate (fps) and storage path. A ledger
// fps overrides the combined format's fps_category.
//
// # Sampling
//
// A measured dataset is usually smaller than a real batch. SampleBatch resamples
// it with replacement to the requested size, deterministically for a given seed.
package collector
