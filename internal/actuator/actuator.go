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

package actuator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/yaml"

	"github.com/burstplan/burstplan/api/v1alpha1"
	"github.com/burstplan/burstplan/internal/logging"
	"github.com/burstplan/burstplan/internal/metrics"
)

var errNilPlan = errors.New("plan cannot be nil")

// Actuator publishes the recommendation of evaluated plans.
type Actuator struct {
	emitter *metrics.MetricsEmitter
}

// NewActuator creates an Actuator. A nil emitter turns Actuate into a status-only update.
func NewActuator(emitter *metrics.MetricsEmitter) *Actuator {
	return &Actuator{emitter: emitter}
}

// Actuate emits the desired elastic pool size of plan and records in its
// status whether it was applied.
func (a *Actuator) Actuate(ctx context.Context, plan *v1alpha1.BurstPlan) error {
	if plan == nil {
		return errNilPlan
	}
	logger := ctrl.LoggerFrom(ctx).WithValues("plan", plan.Name)

	rec := plan.Status.Recommendation
	if rec == nil || a.emitter == nil {
		a.emitter.Clear(plan.Namespace, plan.Name)
		plan.Status.Actuation.Applied = false
		logger.V(logging.DEBUG).Info("Nothing to actuate", "recommended", rec != nil)
		return nil
	}

	a.emitter.EmitDesiredElastic(plan.Namespace, plan.Name, rec.InstanceType, rec.PricingTier, int(rec.ElasticCount))
	plan.Status.Actuation.Applied = true
	logger.Info("Emitted desired elastic processors",
		"config", rec.ConfigID, "elastic", rec.ElasticCount, "instance", rec.InstanceType, "tier", rec.PricingTier)
	return nil
}

// WriteManifest writes plan as YAML to path. The file is replaced atomically.
func WriteManifest(path string, plan *v1alpha1.BurstPlan) error {
	if plan == nil {
		return errNilPlan
	}
	data, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encode plan %s: %w", plan.Name, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
