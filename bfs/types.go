package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/metro/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start station is absent.
	ErrStartNotFound = errors.New("bfs: start station not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative stop limit), it is recorded
// internally and surfaced as ErrOptionViolation when Walk is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a station. If it returns an error,
	// the walk aborts and propagates that error.
	OnVisit func(station string, stops int) error

	// MaxStops, if > 0, stops exploring beyond this many edges.
	// A value of 0 disables the limit.
	MaxStops int

	// Lines holds the normalized lines that may be travelled; empty means all.
	Lines map[string]struct{}

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no limit, no line filter and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit(fn func(station string, stops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxStops limits the walk to stations at most n edges from the start.
//
//	n > 0: limit to n stops
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStops = n
	}
}

// WithLines restricts the walk to edges on the given lines. Calls accumulate.
func WithLines(lines ...string) Option {
	return func(o *Options) {
		for _, ln := range lines {
			if id := core.Normalize(ln); id != "" {
				if o.Lines == nil {
					o.Lines = make(map[string]struct{}, len(lines))
				}
				o.Lines[id] = struct{}{}
			}
		}
	}
}

// Result holds the outcome of a walk.
type Result struct {
	Order  []string
	Stops  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the fewest-stops path from the start station to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	dest = core.Normalize(dest)
	if _, ok := r.Stops[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}

	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
