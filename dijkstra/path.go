package dijkstra

import "math"

// reconstruct walks the predecessor records backward from the target and
// returns the route in source-to-target order, or nil if the target was
// never reached.
func (r *runner) reconstruct() []PathStep {
	if r.dist[r.target] == math.MaxInt64 {
		return nil
	}

	var rev []PathStep
	at := r.target
	for {
		h, ok := r.prev[at]
		if !ok {
			break
		}
		rev = append(rev, PathStep{Station: at, Distance: r.dist[at], Prev: h.from, Line: h.line})
		at = h.from
	}

	// The walk must end at the source; anything else means a broken chain.
	if at != r.source {
		return nil
	}
	rev = append(rev, PathStep{Station: r.source})

	path := make([]PathStep, len(rev))
	for i, step := range rev {
		path[len(rev)-1-i] = step
	}

	return path
}

// TotalDistance returns the cumulative distance of a route: the Distance of
// its last step, or 0 for an empty route.
func TotalDistance(path []PathStep) int64 {
	if len(path) == 0 {
		return 0
	}

	return path[len(path)-1].Distance
}
