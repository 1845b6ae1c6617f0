// Package dijkstra defines the route types and configuration options
// for Dijkstra's shortest-path search over a core.Graph station network.
//
// The search computes the minimum-distance route from a source station to a
// destination station over non-negative edge distances. It keeps a priority
// queue of stations to explore and relaxes edges in increasing order of
// distance from the source.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |stations|, E = |adjacency entries|
//	– Space: O(V + E)
//	   • O(V) for tentative distances and predecessor records.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– MaxDistance: cap on cumulative distance; stations beyond it are not explored.
//	– Lines:       restrict traversal to edges of the listed lines (empty = all lines).
//
// Errors (sentinel):
//
//	– ErrBadMaxDistance if WithMaxDistance receives a negative value (panics).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors of the dijkstra package.
var (
	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// PathStep is one station of a reconstructed route.
//
// Station  – normalized station identifier at this step.
// Distance – cumulative distance from the source up to and including this station.
// Prev     – station this step was reached from ("" for the source).
// Line     – line used to arrive from Prev ("" for the source).
type PathStep struct {
	Station  string
	Distance int64
	Prev     string
	Line     string
}

// Options configures the behavior of the search.
//
// MaxDistance – stations whose cumulative distance would exceed this value are
//
//	not explored. Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// Lines – when non-empty, only edges whose normalized line is listed are traversed.
type Options struct {
	MaxDistance int64    // Maximum cumulative distance to explore
	Lines       []string // Allowed line labels; nil means every line
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithMaxDistance sets a maximum cumulative distance.
// Stations whose shortest distance would exceed this value are not explored,
// so a destination beyond the cap yields an empty route.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithLines restricts traversal to edges served by the given lines.
// Labels are normalized the same way the graph normalizes them.
// Repeated calls accumulate.
func WithLines(lines ...string) Option {
	return func(o *Options) {
		o.Lines = append(o.Lines, lines...)
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MaxDistance: math.MaxInt64 (no distance limit).
//   - Lines:       nil (every line is traversable).
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
	}
}
