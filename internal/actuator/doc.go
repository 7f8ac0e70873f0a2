// Package actuator publishes BurstPlan recommendations.
//
// The planner does not provision elastic capacity itself. The actuator exposes
// the recommended elastic pool size as a Prometheus gauge that an external
// autoscaler consumes, and writes the evaluated plan back to its manifest:
//
//	Reconciler → Actuator → burstplan_desired_elastic_processors → autoscaler
//
// The gauge carries namespace, plan, instance_type and pricing_tier labels.
// A plan without a recommendation has its series removed, so stale sizes are
// never acted on:
//
//	burstplan_desired_elastic_processors{
//	  namespace="default",
//	  plan="bos-game-day",
//	  instance_type="g6.xlarge",
//	  pricing_tier="spot"
//	} = 12
//
// Status.Actuation.Applied records whether a size was emitted for the last
// evaluation.
//
// # Usage Example
//
//	emitter, err := metrics.NewMetricsEmitter(registry)
//	act := actuator.NewActuator(emitter)
//	if err := act.Actuate(ctx, plan); err != nil {
//	    return err
//	}
//	err = actuator.WriteManifest(path, plan)
package actuator
