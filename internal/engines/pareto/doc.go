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

/*
Package pareto reduces a swept configuration space to its non-dominated
frontier and selects a single recommended configuration.

Both objectives, elastic cost and makespan, are minimized. A point A
dominates B when A is no worse than B on both axes and strictly better on
at least one; points with identical cost and makespan never dominate each
other, so duplicates are all kept on the frontier.

Two engines implement the same partition:

  - Pairwise compares every ordered pair of points directly.
  - Vectorized keeps cost and makespan in separate columns and evaluates
    each point against a whole column at once using gonum's floats package.
    It has the same O(n²) complexity with a smaller constant factor and is
    intended for large multi-instance sweeps.

Recommend min-max normalizes cost and makespan over the optimal points only
and picks the lowest weighted score. An axis whose optimal points all share
one value contributes nothing to the score.

Summarize reports frontier statistics such as the dominated share, the
fixed-pool-only baseline and the fastest optimal configuration.
*/
package pareto
