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

package limiter

import (
	"context"
	"fmt"

	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/burstplan/burstplan/internal/logging"
	"github.com/burstplan/burstplan/pkg/core"
)

// BudgetLimiter keeps the configurations whose elastic cost fits the budget.
type BudgetLimiter struct {
	config *LimiterConfig
}

// NewBudgetLimiter creates a new BudgetLimiter instance.
func NewBudgetLimiter(config *LimiterConfig) (*BudgetLimiter, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: budget limiter config cannot be nil", core.ErrConfiguration)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &BudgetLimiter{config: config}, nil
}

// Limit implements Limiter.
func (l *BudgetLimiter) Limit(ctx context.Context, frontier []core.FrontierPoint) []core.FrontierPoint {
	out := filter(frontier, func(p core.FrontierPoint) bool {
		return within(p.Cost, l.config.MaxCost)
	})
	ctrl.LoggerFrom(ctx).V(logging.DEBUG).Info("Applied budget limit",
		"maxCost", l.config.MaxCost, "points", len(frontier), "feasible", len(out))
	return out
}

// DeadlineLimiter keeps the configurations that finish before the deadline.
type DeadlineLimiter struct {
	config *LimiterConfig
}

// NewDeadlineLimiter creates a new DeadlineLimiter instance.
func NewDeadlineLimiter(config *LimiterConfig) (*DeadlineLimiter, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: deadline limiter config cannot be nil", core.ErrConfiguration)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &DeadlineLimiter{config: config}, nil
}

// Limit implements Limiter.
func (l *DeadlineLimiter) Limit(ctx context.Context, frontier []core.FrontierPoint) []core.FrontierPoint {
	out := filter(frontier, func(p core.FrontierPoint) bool {
		return within(p.Makespan, l.config.MaxMakespan)
	})
	ctrl.LoggerFrom(ctx).V(logging.DEBUG).Info("Applied deadline limit",
		"maxMakespan", l.config.MaxMakespan, "points", len(frontier), "feasible", len(out))
	return out
}

// EnvelopeLimiter keeps the configurations that satisfy both the budget and the deadline.
type EnvelopeLimiter struct {
	budget   *BudgetLimiter
	deadline *DeadlineLimiter
}

// NewEnvelopeLimiter creates a new EnvelopeLimiter instance.
func NewEnvelopeLimiter(config *LimiterConfig) (*EnvelopeLimiter, error) {
	budget, err := NewBudgetLimiter(config)
	if err != nil {
		return nil, err
	}
	deadline, err := NewDeadlineLimiter(config)
	if err != nil {
		return nil, err
	}
	return &EnvelopeLimiter{budget: budget, deadline: deadline}, nil
}

// Limit implements Limiter.
func (l *EnvelopeLimiter) Limit(ctx context.Context, frontier []core.FrontierPoint) []core.FrontierPoint {
	return l.deadline.Limit(ctx, l.budget.Limit(ctx, frontier))
}
