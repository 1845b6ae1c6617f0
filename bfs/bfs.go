package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/metro/core"
)

// queueItem pairs a station with its stop count.
type queueItem struct {
	station string
	stops   int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Walk runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any error returned by the OnVisit hook.
func Walk(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start = core.Normalize(start)
	if !g.HasStation(start) {
		return nil, ErrStartNotFound
	}

	n := g.StationCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Stops:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(start, 0, "")
	return w.res, w.loop()
}

// enqueue marks station visited at the given stop count and records its parent.
func (w *walker) enqueue(station string, stops int, parent string) {
	w.visited[station] = true
	w.res.Stops[station] = stops
	if parent != "" {
		w.res.Parent[station] = parent
	}
	w.queue = append(w.queue, queueItem{station: station, stops: stops})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.station)
		if err := w.opts.OnVisit(item.station, item.stops); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.station, err)
		}

		next := item.stops + 1
		if w.opts.MaxStops > 0 && next > w.opts.MaxStops {
			continue
		}
		for _, nb := range w.graph.Neighbors(item.station) {
			if w.opts.Lines != nil {
				if _, ok := w.opts.Lines[nb.Line]; !ok {
					continue
				}
			}
			if !w.visited[nb.Station] {
				w.enqueue(nb.Station, next, item.station)
			}
		}
	}
	return nil
}
