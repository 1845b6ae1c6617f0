// Package bfs walks a core.Graph breadth-first, counting stops instead of
// kilometres.
//
// What
//
//   - Explore stations in non-decreasing stop count from a start station.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Stops: map from station → edges travelled from start
//   - Parent: map from station → its predecessor in the BFS tree
//   - OnVisit hook (may abort the walk with an error).
//   - WithLines restricts the walk to edges on the given lines.
//   - Honors a MaxStops limit (n>0) or explicit "no limit" (n==0).
//   - Components partitions every station into connected groups.
//
// Determinism
//
//	core.Graph returns neighbours in insertion order and BFS enqueues them
//	in that order, so the visit sequence is reproducible for a given graph.
//	Components are listed in first-reference order of their first station.
//
// Complexity (V = stations, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
