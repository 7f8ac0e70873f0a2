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

import "errors"

var (
	// ErrConfiguration marks a fatal configuration error, such as a schedule with no
	// processors or a pricing tier the instance does not offer.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidInput marks input records that must be rejected, such as a job with a
	// non-positive duration.
	ErrInvalidInput = errors.New("invalid input")
)
