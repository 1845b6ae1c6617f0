// Package core provides the in-memory station Graph of a transit network with
// a minimal, composable API surface.
//
// The Graph G = (V,E) is undirected and weighted:
//
//   - Vertices are station identifiers: names trimmed and lowercased by Normalize.
//     " Ameerpet " and "AMEERPET" denote the same station "ameerpet".
//   - Edges carry an int64 distance (km) and a normalized line label.
//     Every AddEdge stores exactly two Neighbor entries, one per direction,
//     identical in distance and line.
//   - Parallel edges are allowed: two lines serving the same pair of stations
//     are kept side by side, and path finding considers both.
//   - Stations are created implicitly the first time an edge references them.
//
// Why a plain adjacency map?
//
//   - Path finding only ever asks "who is next to u?", answered in O(deg(u)).
//   - Insertion order is preserved, so display and tie-breaking are reproducible.
//
// Core Methods:
//
//	// Construction
//	NewGraph() *Graph                                   // O(1)
//	AddEdge(a, b string, km int64, line string) error   // O(1) amortized
//
//	// Identity
//	Normalize(name string) string                       // trim + lowercase
//	HasStation(name string) bool                        // O(1)
//
//	// Query
//	Neighbors(name string) []Neighbor                   // O(deg), insertion order
//	Stations() []string                                 // O(V), first-reference order
//	SortedStations() []string                           // O(V log V)
//	Search(query string) []string                       // substring match, sorted
//	Lines() []string                                    // distinct lines, sorted
//	StationsOnLine(line string) []string                // O(V+E)
//	Edges() []Edge                                      // O(E), insertion order
//	AdjacencyList() map[string][]Neighbor               // O(V+E) deep copy
//	StationCount() int / EdgeCount() int                // O(1)
//
// Validation:
//
//	AddEdge rejects only empty station names (ErrEmptyStation). Distances are
//	stored as given; supplying non-positive values is accepted but leaves
//	shortest-path results undefined.
//
// Concurrency:
//
//	A sync.RWMutex guards the Graph. Concurrent reads of a finalized graph are
//	safe. Mutating the graph while queries run is unsupported: serialize the
//	setup phase externally.
package core
