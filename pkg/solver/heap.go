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

package solver

import "container/heap"

// processor is one slot of the processor arena.
type processor struct {
	load    float64
	elastic bool
}

// loadHeap is a min-heap of processor ids ordered by current load, ties broken
// by the lower id. Loads are stored in the arena, the heap only moves ids.
type loadHeap struct {
	procs []processor
	ids   []int
}

var _ heap.Interface = (*loadHeap)(nil)

func newLoadHeap(fixedCount, elasticCount int, startup float64) *loadHeap {
	total := fixedCount + elasticCount
	h := &loadHeap{
		procs: make([]processor, total),
		ids:   make([]int, total),
	}
	for i := range total {
		if i >= fixedCount {
			h.procs[i] = processor{load: startup, elastic: true}
		}
		h.ids[i] = i
	}
	heap.Init(h)
	return h
}

func (h *loadHeap) Len() int { return len(h.ids) }

func (h *loadHeap) Less(i, j int) bool {
	a, b := h.ids[i], h.ids[j]
	if h.procs[a].load != h.procs[b].load {
		return h.procs[a].load < h.procs[b].load
	}
	return a < b
}

func (h *loadHeap) Swap(i, j int) { h.ids[i], h.ids[j] = h.ids[j], h.ids[i] }

func (h *loadHeap) Push(x any) { h.ids = append(h.ids, x.(int)) }

func (h *loadHeap) Pop() any {
	n := len(h.ids) - 1
	id := h.ids[n]
	h.ids = h.ids[:n]
	return id
}

// least returns the id of the least-loaded processor without removing it.
func (h *loadHeap) least() int { return h.ids[0] }

// addToLeast adds d to the least-loaded processor and restores heap order.
// It is the pop/push-back step of LPT done in place.
func (h *loadHeap) addToLeast(d float64) {
	h.procs[h.ids[0]].load += d
	heap.Fix(h, 0)
}
