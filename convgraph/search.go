package convgraph

import (
	"container/heap"
	"math"
	"sort"

	"github.com/katalvlaran/unitgraph/affine"
)

// Path discovery models the dimension's edge set as a weighted graph and
// runs a Dijkstra-style search for the minimum-total-error walk, with a
// min-heap under the lazy decrease-key strategy: shorter tentative walks
// push duplicate heap entries, stale entries are skipped when popped.
//
// A hop traverses a registered edge in either direction: forward at the
// edge's own TotalAbsError, backward at the inverted edge's error. Priority
// order is total error, then hop count, then the lexically smaller symbol;
// neighbor lists are sorted so the result does not depend on map iteration.
//
// Complexity: O((V + E) log V) time, O(V + E) space, with V the dimension's
// unit symbols and E its registered edges.

// neighbor is one traversable hop out of a vertex.
type neighbor struct {
	to      string            // the unit reached by the hop
	edge    affine.Conversion // the registered edge, as stored
	forward bool              // true when edge.Src is the hop's origin
	weight  float64           // TotalAbsError in the traversal direction
}

// traversal is one hop of a finished walk, in walk order.
type traversal struct {
	edge    affine.Conversion
	forward bool
}

// pathItem is a heap entry: a vertex and the tentative cost of reaching it.
type pathItem struct {
	sym  string
	err  float64
	hops int
}

// pathPQ is a min-heap of *pathItem ordered by (err, hops, sym).
type pathPQ []*pathItem

func (pq pathPQ) Len() int { return len(pq) }

func (pq pathPQ) Less(i, j int) bool {
	if pq[i].err != pq[j].err {
		return pq[i].err < pq[j].err
	}
	if pq[i].hops != pq[j].hops {
		return pq[i].hops < pq[j].hops
	}

	return pq[i].sym < pq[j].sym
}

func (pq pathPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pathPQ) Push(x interface{}) { *pq = append(*pq, x.(*pathItem)) }

func (pq *pathPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// discover searches for the minimum-error walk src→dst over the unprefixed
// edge set and composes it into a single direct conversion. The bool is
// false when no walk exists. Callers hold discoverMu; the graph is read
// under a short read lock while building the adjacency snapshot.
func (c *Converter) discover(src, dst string) (affine.Conversion, bool) {
	// 1) Snapshot the adjacency lists. Each stored edge is traversable both
	//    ways; the backward weight is the inverted edge's error.
	adj := c.snapshotAdjacency()
	if _, ok := adj[src]; !ok {
		return affine.Conversion{}, false
	}
	if _, ok := adj[dst]; !ok {
		return affine.Conversion{}, false
	}

	// 2) Initialize tentative costs and the heap with the source at zero.
	dist := make(map[string]float64, len(adj))
	hops := make(map[string]int, len(adj))
	for sym := range adj {
		dist[sym] = math.Inf(1)
	}
	dist[src] = 0

	prev := make(map[string]traversal, len(adj))
	prevSym := make(map[string]string, len(adj))
	visited := make(map[string]bool, len(adj))

	pq := make(pathPQ, 0, len(adj))
	heap.Init(&pq)
	heap.Push(&pq, &pathItem{sym: src})

	// 3) Main loop: settle the cheapest vertex, relax its hops.
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*pathItem)
		u := item.sym
		if visited[u] {
			continue // stale lazy-decrease-key entry
		}
		visited[u] = true
		if u == dst {
			break
		}

		for _, nb := range adj[u] {
			if visited[nb.to] {
				continue
			}
			newErr := item.err + nb.weight
			newHops := item.hops + 1
			if !better(newErr, newHops, dist[nb.to], hops[nb.to]) {
				continue
			}
			dist[nb.to] = newErr
			hops[nb.to] = newHops
			prev[nb.to] = traversal{edge: nb.edge, forward: nb.forward}
			prevSym[nb.to] = u
			heap.Push(&pq, &pathItem{sym: nb.to, err: newErr, hops: newHops})
		}
	}

	if !visited[dst] {
		return affine.Conversion{}, false
	}

	// 4) Reconstruct the walk dst→src, then compose it front to back.
	walk := make([]traversal, 0, hops[dst])
	for at := dst; at != src; at = prevSym[at] {
		walk = append(walk, prev[at])
	}
	reverse(walk)

	return compose(walk)
}

// better reports whether a tentative (err, hops) strictly improves on the
// recorded pair: lower error wins, equal error falls back to fewer hops.
func better(newErr float64, newHops int, oldErr float64, oldHops int) bool {
	if newErr != oldErr {
		return newErr < oldErr
	}

	return newHops < oldHops
}

// snapshotAdjacency copies the edge set into per-vertex neighbor lists,
// sorted by destination symbol for deterministic relaxation order.
func (c *Converter) snapshotAdjacency() map[string][]neighbor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	adj := make(map[string][]neighbor, len(c.units))
	for sym := range c.units {
		adj[sym] = nil
	}
	for _, dsts := range c.edges {
		for _, e := range dsts {
			adj[e.Src()] = append(adj[e.Src()], neighbor{
				to: e.Dst(), edge: e, forward: true, weight: e.TotalAbsError(),
			})
			adj[e.Dst()] = append(adj[e.Dst()], neighbor{
				to: e.Src(), edge: e, forward: false, weight: e.Invert().TotalAbsError(),
			})
		}
	}
	for sym := range adj {
		sort.Slice(adj[sym], func(i, j int) bool { return adj[sym][i].to < adj[sym][j].to })
	}

	return adj
}

// compose folds a walk into one direct conversion. The combination operator
// at each junction follows from the two edges' directions relative to their
// shared unit: sequential when the walk passes straight through, convergent
// when both edges enter it, divergent when both leave it, opposite when the
// first leaves and the second enters.
func compose(walk []traversal) (affine.Conversion, bool) {
	if len(walk) == 0 {
		return affine.Conversion{}, false
	}

	// Single hop: the edge itself, inverted when traversed backward.
	first := walk[0]
	if len(walk) == 1 {
		if first.forward {
			return first.edge, true
		}

		return first.edge.Invert(), true
	}

	// The first junction picks among all four operators.
	acc, err := combineFirst(first, walk[1])
	if err != nil {
		return affine.Conversion{}, false
	}

	// Every further hop extends acc (src→current): a forward edge continues
	// the chain, a backward edge converges on the current unit.
	for _, hop := range walk[2:] {
		if hop.forward {
			acc, err = acc.CombineSequential(hop.edge)
		} else {
			acc, err = acc.CombineConvergent(hop.edge)
		}
		if err != nil {
			return affine.Conversion{}, false
		}
	}

	return acc, true
}

// combineFirst merges the first two hops of a walk by orientation:
//
//	forward+forward  →  sequential  (A→n, n→C)
//	forward+backward →  convergent  (A→n, C→n)
//	backward+forward →  divergent   (n→A, n→C)
//	backward+backward → opposite    (n→A, C→n)
func combineFirst(h1, h2 traversal) (affine.Conversion, error) {
	switch {
	case h1.forward && h2.forward:
		return h1.edge.CombineSequential(h2.edge)
	case h1.forward && !h2.forward:
		return h1.edge.CombineConvergent(h2.edge)
	case !h1.forward && h2.forward:
		return h1.edge.CombineDivergent(h2.edge)
	default:
		return h1.edge.CombineOpposite(h2.edge)
	}
}

func reverse(walk []traversal) {
	for i, j := 0, len(walk)-1; i < j; i, j = i+1, j-1 {
		walk[i], walk[j] = walk[j], walk[i]
	}
}
