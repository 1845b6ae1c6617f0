// SPDX-License-Identifier: MIT
// Package core defines the station Graph, its Neighbor and Edge records,
// and the thread-safe primitives for building and querying a transit network.
//
// A single sync.RWMutex guards the adjacency map, the station order and the
// edge log. Queries take the read lock; AddEdge takes the write lock.
//
// Errors:
//
//	ErrEmptyStation - a station name normalizes to the empty string.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyStation indicates that a station name is empty after normalization.
	ErrEmptyStation = errors.New("core: station name is empty")
)

// Neighbor is one directed adjacency entry: the station reached, the distance
// of the connecting edge and the line it belongs to.
type Neighbor struct {
	// Station is the normalized identifier of the adjacent station.
	Station string

	// Distance is the edge length in kilometres.
	Distance int64

	// Line is the normalized label of the line serving this edge.
	Line string
}

// Edge is one undirected connection as it was inserted into the Graph.
// Each Edge is mirrored into two Neighbor entries.
type Edge struct {
	From     string // normalized first endpoint
	To       string // normalized second endpoint
	Distance int64  // kilometres
	Line     string // normalized line label
}

// Graph is an undirected, weighted multigraph of stations.
//
// adjacency[station] holds the Neighbor entries in insertion order.
// order records stations in first-reference order for reproducible display.
// edges logs every AddEdge call once.
type Graph struct {
	mu sync.RWMutex // guards adjacency, order and edges

	adjacency map[string][]Neighbor
	order     []string
	edges     []Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string][]Neighbor),
	}
}
