// Package controller evaluates BurstPlan resources.
//
// The BurstPlanReconciler turns a BurstPlan manifest into a planning run and
// records the outcome in the plan's status. It orchestrates job loading,
// the sweep and Pareto pipeline, and actuation.
//
// # Reconciliation Flow
//
//  1. Overlay the BurstPlan spec onto the planner defaults and validate it
//  2. Resolve the site profile and cost model from the catalog
//  3. Load the batch (results CSV resampled to the batch size, or a synthetic batch)
//  4. Run the single-instance or multi-instance pipeline
//  5. Update BurstPlan status with the recommendation and frontier counts
//  6. Set conditions (JobsLoaded, OptimizationReady)
//  7. Hand the plan to the actuator, which emits the desired elastic pool size
//
// # Error Handling
//
// Every failure is reflected in a condition before it is returned:
//   - JobsLoaded=False/JobsMissing: the results file could not be read
//   - OptimizationReady=False/InvalidConfiguration: the spec is invalid
//   - OptimizationReady=False/OptimizationFailed: the sweep failed
//   - OptimizationReady=False/NoFeasibleConfiguration: no configuration meets
//     the constraints; this is not an error
//
// # Usage
//
//	r := &controller.BurstPlanReconciler{
//		Catalog:  cat,
//		Defaults: *cfg,
//		Recorder: recorder,
//		Actuator: actuator.NewActuator(emitter),
//	}
//	result, err := r.Reconcile(ctx, plan)
package controller
