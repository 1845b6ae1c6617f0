// Package dijkstra implements Dijkstra's shortest-path search over a station network.
//
// It processes stations in order of increasing cumulative distance using a
// min-heap priority queue, relaxing edges and recording, for every improved
// station, the predecessor and the line used to reach it.
//
// Notes on implementation choices:
//
//   - Unknown stations and unreachable destinations are not errors: the result is nil.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Finalized stations are never relaxed again, so the predecessor records always form a tree.
//   - The search stops as soon as the destination is popped; its distance is final at that point.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/metro/core"
)

// ShortestPath returns the minimum-distance route from source to destination
// as an ordered sequence of PathStep, source first.
//
// Both names are normalized before lookup. The result is nil when g is nil,
// when either station is unknown, or when no path connects them (including
// paths pruned by WithMaxDistance or WithLines). When source and destination
// normalize to the same station, the route is that single station at distance 0.
//
// Edge distances are assumed non-negative; with negative distances the
// search still terminates but the route is not guaranteed minimal.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, source, destination string, opts ...Option) []PathStep {
	src, dst := core.Normalize(source), core.Normalize(destination)
	if g == nil || !g.HasStation(src) || !g.HasStation(dst) {
		return nil
	}

	r := newRunner(g, src, dst, opts)
	r.init()
	r.process()

	return r.reconstruct()
}

// Distances returns the minimum cumulative distance from source to every
// station it can reach, the source itself included at 0. Unreachable stations
// are omitted. The result is nil when g is nil or source is unknown.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Distances(g *core.Graph, source string, opts ...Option) map[string]int64 {
	src := core.Normalize(source)
	if g == nil || !g.HasStation(src) {
		return nil
	}

	r := newRunner(g, src, "", opts)
	r.init()
	r.process()

	out := make(map[string]int64, len(r.dist))
	for id, d := range r.dist {
		if d != math.MaxInt64 {
			out[id] = d
		}
	}

	return out
}

// hop records how a station was reached on the current best path.
type hop struct {
	from string // predecessor station
	line string // line of the edge from → station
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *core.Graph         // The input graph; read-only within the search.
	options Options             // Configuration options.
	lines   map[string]struct{} // Normalized allowed lines; nil means all.
	source  string              // Normalized source station.
	target  string              // Normalized destination; "" disables early stop.
	dist    map[string]int64    // Station → current best distance from source.
	prev    map[string]hop      // Station → predecessor on the best path.
	visited map[string]bool     // Tracks if a station's distance is finalized.
	pq      nodePQ              // Min-heap of *nodeItem for lazy priority queue.
}

// newRunner applies opts over DefaultOptions and allocates the per-query maps.
func newRunner(g *core.Graph, source, target string, opts []Option) *runner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var lines map[string]struct{}
	if len(cfg.Lines) > 0 {
		lines = make(map[string]struct{}, len(cfg.Lines))
		for _, ln := range cfg.Lines {
			lines[core.Normalize(ln)] = struct{}{}
		}
	}

	V := g.StationCount()

	return &runner{
		g:       g,
		options: cfg,
		lines:   lines,
		source:  source,
		target:  target,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]hop, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
}

// init sets every tentative distance to +∞ (MaxInt64) except the source,
// and pushes the source with distance 0 onto the heap.
func (r *runner) init() {
	for _, v := range r.g.Stations() {
		r.dist[v] = math.MaxInt64
	}
	r.dist[r.source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0})
}

// process is the core loop. It repeatedly extracts the station with the
// minimum distance and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable stations processed).
//   - The destination is popped (its distance is final).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if u == r.target {
			return
		}
		r.relax(u)
	}
}

// relax examines each adjacency entry of u and improves the distance of its
// neighbors when going through u is strictly shorter.
// Parallel edges are separate entries, so every line competes.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) {
	du := r.dist[u]
	for _, nb := range r.g.Neighbors(u) {
		v := nb.Station
		if r.visited[v] {
			continue
		}
		if r.lines != nil {
			if _, ok := r.lines[nb.Line]; !ok {
				continue
			}
		}

		newDist := du + nb.Distance
		if newDist > r.options.MaxDistance {
			continue
		}

		// Strict "<": equal distances keep the first path found.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = hop{from: u, line: nb.Line}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a station and its tentative distance from the source.
type nodeItem struct {
	id   string // station ID
	dist int64  // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
// Outdated entries stay in the heap and are ignored when popped (checked via visited).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
