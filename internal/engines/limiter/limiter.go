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

// Package limiter restricts a frontier to the configurations that satisfy
// user constraints such as a budget or a deadline.
package limiter

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/burstplan/burstplan/pkg/core"
)

var errUnsupportedStrategy = errors.New("unsupported limiter strategy")

// Limiter is an interface that defines the method for restricting a frontier to feasible points
type Limiter interface {
	// Limit returns the points of frontier that satisfy the constraint, in input order.
	// The Optimal flag of returned points is left unchanged.
	Limit(ctx context.Context, frontier []core.FrontierPoint) []core.FrontierPoint
}

// LimiterConfig holds the constraints shared by all limiters. A zero value means no limit.
type LimiterConfig struct {
	// MaxCost is the largest acceptable elastic cost in dollars.
	MaxCost float64 `json:"maxCost,omitempty" yaml:"maxCost,omitempty"`
	// MaxMakespan is the largest acceptable makespan in seconds.
	MaxMakespan float64 `json:"maxMakespan,omitempty" yaml:"maxMakespan,omitempty"`
}

// Validate checks that the constraints are finite and non-negative.
func (c LimiterConfig) Validate() error {
	if math.IsNaN(c.MaxCost) || math.IsInf(c.MaxCost, 0) || c.MaxCost < 0 {
		return fmt.Errorf("%w: max cost must be a non-negative number, got %v", core.ErrConfiguration, c.MaxCost)
	}
	if math.IsNaN(c.MaxMakespan) || math.IsInf(c.MaxMakespan, 0) || c.MaxMakespan < 0 {
		return fmt.Errorf("%w: max makespan must be a non-negative number, got %v", core.ErrConfiguration, c.MaxMakespan)
	}
	return nil
}

// Unlimited reports whether the config sets no constraint at all.
func (c LimiterConfig) Unlimited() bool {
	return c.MaxCost == 0 && c.MaxMakespan == 0
}

// LimiterStrategy is an enumeration of the different strategies that can be used by the Limiter
type LimiterStrategy int

// enumeration of LimiterStrategy
const (
	BudgetStrategy LimiterStrategy = iota
	DeadlineStrategy
	EnvelopeStrategy
)

func (s LimiterStrategy) String() string {
	switch s {
	case BudgetStrategy:
		return "budget"
	case DeadlineStrategy:
		return "deadline"
	case EnvelopeStrategy:
		return "envelope"
	default:
		return fmt.Sprintf("LimiterStrategy(%d)", int(s))
	}
}

// NewLimiter is a factory that creates a new Limiter based on the provided strategy
func NewLimiter(strategy LimiterStrategy, config *LimiterConfig) (Limiter, error) {
	switch strategy {
	case BudgetStrategy:
		return NewBudgetLimiter(config)
	case DeadlineStrategy:
		return NewDeadlineLimiter(config)
	case EnvelopeStrategy:
		return NewEnvelopeLimiter(config)
	default:
		return nil, fmt.Errorf("%w: %w: %v", core.ErrConfiguration, errUnsupportedStrategy, strategy)
	}
}

// ForConfig picks the strategy that enforces every constraint set in config.
func ForConfig(config LimiterConfig) (Limiter, error) {
	switch {
	case config.MaxCost > 0 && config.MaxMakespan > 0:
		return NewLimiter(EnvelopeStrategy, &config)
	case config.MaxMakespan > 0:
		return NewLimiter(DeadlineStrategy, &config)
	default:
		return NewLimiter(BudgetStrategy, &config)
	}
}

// filter returns the points of frontier accepted by keep, in input order.
func filter(frontier []core.FrontierPoint, keep func(core.FrontierPoint) bool) []core.FrontierPoint {
	out := make([]core.FrontierPoint, 0, len(frontier))
	for _, p := range frontier {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// within reports whether v satisfies limit, where a zero limit means unbounded.
func within(v, limit float64) bool {
	return limit == 0 || v <= limit
}
