package routing

import (
	"fmt"
	"math"

	da "github.com/lintang-b-s/campusnav/pkg/datastructure"
)

type FrontierType uint8

const (
	// LinearScanFrontier. O(V) scan per selection, ties go to the location that comes first in graph order.
	LinearScanFrontier FrontierType = iota
	// HeapFrontier. 4-ary heap with decrease key.
	HeapFrontier
)

func (f FrontierType) String() string {
	switch f {
	case HeapFrontier:
		return "heap"
	default:
		return "linear"
	}
}

// ParseFrontierType. "heap" or "linear" (default)
func ParseFrontierType(s string) FrontierType {
	if s == "heap" {
		return HeapFrontier
	}
	return LinearScanFrontier
}

// frontier. set of locations whose distance is not final yet.
type frontier interface {
	// extractMin. remove the frontier location with the smallest tentative distance.
	// false if the frontier is empty or every remaining location is unreachable.
	extractMin() (da.Index, bool)
	// decrease. dist[v] was lowered to d.
	decrease(v da.Index, d float64)
	contains(v da.Index) bool
}

func newFrontier(t FrontierType, dist []float64) frontier {
	switch t {
	case HeapFrontier:
		return newHeapFrontier(dist)
	default:
		return newLinearScanFrontier(dist)
	}
}

type linearScanFrontier struct {
	dist       []float64
	inFrontier []bool
	remaining  int
}

func newLinearScanFrontier(dist []float64) *linearScanFrontier {
	inFrontier := make([]bool, len(dist))
	for i := range inFrontier {
		inFrontier[i] = true
	}
	return &linearScanFrontier{
		dist:       dist,
		inFrontier: inFrontier,
		remaining:  len(dist),
	}
}

func (f *linearScanFrontier) extractMin() (da.Index, bool) {
	if f.remaining == 0 {
		return da.INVALID_INDEX, false
	}

	best := da.INVALID_INDEX
	bestDist := math.Inf(1)
	for u := range f.inFrontier {
		if f.inFrontier[u] && f.dist[u] < bestDist {
			best = da.Index(u)
			bestDist = f.dist[u]
		}
	}
	if best == da.INVALID_INDEX {
		// only unreachable locations left
		return da.INVALID_INDEX, false
	}

	f.inFrontier[best] = false
	f.remaining--
	return best, true
}

func (f *linearScanFrontier) decrease(v da.Index, d float64) {
	// dist is shared with the search, nothing to maintain
}

func (f *linearScanFrontier) contains(v da.Index) bool {
	return f.inFrontier[v]
}

// heapFrontier. locations at +inf are implicit members: they enter the heap on their first relaxation.
type heapFrontier struct {
	pq      *da.MinHeap[da.Index]
	nodes   []*da.PriorityQueueNode[da.Index]
	settled []bool
}

func newHeapFrontier(dist []float64) *heapFrontier {
	pq := da.NewFourAryHeap[da.Index]()
	pq.Preallocate(len(dist))
	return &heapFrontier{
		pq:      pq,
		nodes:   make([]*da.PriorityQueueNode[da.Index], len(dist)),
		settled: make([]bool, len(dist)),
	}
}

func (f *heapFrontier) extractMin() (da.Index, bool) {
	node, err := f.pq.ExtractMin()
	if err != nil {
		return da.INVALID_INDEX, false
	}
	u := node.GetItem()
	f.settled[u] = true
	return u, true
}

func (f *heapFrontier) decrease(v da.Index, d float64) {
	if f.nodes[v] == nil {
		f.nodes[v] = da.NewPriorityQueueNode(d, v)
		f.pq.Insert(f.nodes[v])
		return
	}
	// callers only decrease unsettled nodes to a strictly smaller distance
	if err := f.pq.DecreaseKey(f.nodes[v], d); err != nil {
		panic(fmt.Sprintf("heap frontier: decrease of location %d to %v: %v", v, d, err))
	}
}

func (f *heapFrontier) contains(v da.Index) bool {
	return !f.settled[v]
}
