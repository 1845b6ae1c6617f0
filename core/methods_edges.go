// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & adjacency queries: AddEdge/Neighbors/Edges/EdgeCount/AdjacencyList.
// Determinism:
//   - Neighbors() returns entries in insertion order.
//   - Edges() returns edges in insertion order.
// Concurrency:
//   - AddEdge under the write lock.
//   - Read queries under the read lock; results are copies.

package core

// AddEdge connects stations a and b with an undirected edge of the given
// distance on the given line.
//
// Steps:
//  1. Normalize a, b and line (trim + lowercase).
//  2. Reject empty station names with ErrEmptyStation.
//  3. Register unseen stations in first-reference order.
//  4. Append Neighbor{b} to a's list and Neighbor{a} to b's list.
//
// Distance is stored as given: zero and negative values are accepted and
// produce undefined shortest-path results. Calling AddEdge twice with the
// same arguments stores a parallel edge; parallel edges on different lines
// all take part in path finding.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, distance int64, line string) error {
	from, to := Normalize(a), Normalize(b)
	if from == "" || to == "" {
		return ErrEmptyStation
	}
	ln := Normalize(line)

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureStation(from)
	g.ensureStation(to)

	g.adjacency[from] = append(g.adjacency[from], Neighbor{Station: to, Distance: distance, Line: ln})
	g.adjacency[to] = append(g.adjacency[to], Neighbor{Station: from, Distance: distance, Line: ln})
	g.edges = append(g.edges, Edge{From: from, To: to, Distance: distance, Line: ln})

	return nil
}

// Neighbors returns a copy of the adjacency entries of station, in insertion
// order. The name is normalized before lookup. Unknown stations yield nil.
//
// Complexity: O(deg(station)).
func (g *Graph) Neighbors(station string) []Neighbor {
	id := Normalize(station)

	g.mu.RLock()
	defer g.mu.RUnlock()

	nbs, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	out := make([]Neighbor, len(nbs))
	copy(out, nbs)

	return out
}

// Edges returns every inserted edge once, in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of undirected edges (AddEdge calls that succeeded).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// AdjacencyList returns a deep copy of the adjacency map.
// Iterate Stations() alongside it for a stable order.
//
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string][]Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]Neighbor, len(g.adjacency))
	for id, nbs := range g.adjacency {
		cp := make([]Neighbor, len(nbs))
		copy(cp, nbs)
		out[id] = cp
	}

	return out
}

// ensureStation registers id if it has never been referenced.
// Caller must hold the write lock.
func (g *Graph) ensureStation(id string) {
	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.adjacency[id] = nil
	g.order = append(g.order, id)
}
