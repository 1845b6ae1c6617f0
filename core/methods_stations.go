// SPDX-License-Identifier: MIT
//
// File: methods_stations.go
// Role: Station identity & queries: Normalize, HasStation, Stations,
// SortedStations, StationCount, Search, Lines, StationsOnLine.
//
// Determinism:
//   - Stations() returns first-reference order.
//   - SortedStations(), Search() and Lines() return lexicographic order.
//
// Concurrency:
//   - All queries take the read lock and return fresh slices.
package core

import (
	"sort"
	"strings"
)

// Normalize maps a raw station or line name onto its identifier:
// surrounding whitespace stripped, lowercased.
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// HasStation reports whether the normalized name is a known station.
//
// Implementation:
//   - Stage 1: Normalize the input; empty names are never present.
//   - Stage 2: Check adjacency membership under the read lock.
//
// Complexity:
//   - Time O(len(name)), Space O(1).
func (g *Graph) HasStation(name string) bool {
	id := Normalize(name)
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]
	return ok
}

// Stations returns every station in the order it was first referenced by AddEdge.
// Complexity: O(V).
func (g *Graph) Stations() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// SortedStations returns every station sorted lexicographically ascending.
// Complexity: O(V log V).
func (g *Graph) SortedStations() []string {
	out := g.Stations()
	sort.Strings(out)

	return out
}

// StationCount returns the number of known stations.
// Complexity: O(1).
func (g *Graph) StationCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Search returns the stations whose identifier contains the normalized query,
// sorted ascending. An empty query matches every station.
//
// Complexity: O(V·|query| + V log V).
func (g *Graph) Search(query string) []string {
	q := Normalize(query)

	g.mu.RLock()
	out := make([]string, 0, len(g.order))
	for _, id := range g.order {
		if strings.Contains(id, q) {
			out = append(out, id)
		}
	}
	g.mu.RUnlock()

	sort.Strings(out)

	return out
}

// Lines returns the distinct non-empty line labels, sorted ascending.
// Complexity: O(E + L log L).
func (g *Graph) Lines() []string {
	g.mu.RLock()
	seen := make(map[string]struct{})
	for _, e := range g.edges {
		if e.Line != "" {
			seen[e.Line] = struct{}{}
		}
	}
	g.mu.RUnlock()

	out := make([]string, 0, len(seen))
	for ln := range seen {
		out = append(out, ln)
	}
	sort.Strings(out)

	return out
}

// StationsOnLine returns the stations touched by at least one edge of the
// normalized line, in first-reference order. Unknown lines yield an empty slice.
//
// Complexity: O(V + E).
func (g *Graph) StationsOnLine(line string) []string {
	ln := Normalize(line)

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0)
	for _, id := range g.order {
		for _, nb := range g.adjacency[id] {
			if nb.Line == ln {
				out = append(out, id)
				break
			}
		}
	}

	return out
}
