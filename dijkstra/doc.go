// Package dijkstra finds minimum-distance routes between stations of a
// core.Graph with non-negative edge distances.
//
// Overview:
//
//   - ShortestPath runs a single-source search from the source station and stops
//     as soon as the destination's distance is final, in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always expand the next-closest station.
//   - The route is rebuilt from predecessor records: every step carries its
//     cumulative distance, the station it came from and the line it arrived on.
//   - Distances runs the same search to exhaustion and reports every reachable station.
//
// When to use:
//
//   - Journey planning on a static network where only total distance matters.
//   - Fare tables ("how far is every station from here?") via Distances.
//
// Key features:
//
//   - Names are normalized exactly like core.Graph does, so raw user input is accepted.
//   - Parallel edges (two lines between the same pair) all compete; the shorter wins.
//   - WithMaxDistance: aborts exploration beyond a cumulative distance.
//   - WithLines: restricts traversal to a set of lines.
//
// Empty results:
//
//   - Unknown source or destination → nil.
//   - Destination in a different component (or pruned by options) → nil.
//   - The two cases are indistinguishable from the result alone; callers that need
//     to tell them apart check core.Graph.HasStation first.
//
// API reference:
//
//	func ShortestPath(g *core.Graph, source, destination string, opts ...Option) []PathStep
//	func Distances(g *core.Graph, source string, opts ...Option) map[string]int64
//	func TotalDistance(path []PathStep) int64
//
// Ties:
//
//   - Equal-distance alternatives are resolved by heap order and insertion order
//     of the adjacency lists; any returned route is a valid minimal one.
//
// Thread safety:
//
//   - Each call allocates its own state. Concurrent calls on a finalized graph are safe.
//   - Mutating the graph during a call is unsupported; synchronize externally.
package dijkstra
