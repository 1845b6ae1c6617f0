// Package journey turns a route found by dijkstra into what a rider reads:
// legs travelled on one line, the stations where the line changes, the total
// distance and the fare.
package journey

import (
	"strings"

	"github.com/katalvlaran/metro/dijkstra"
	"github.com/katalvlaran/metro/fare"
)

// Leg is a maximal run of consecutive steps on the same line.
type Leg struct {
	Line     string // line label of every edge in the leg
	From     string // boarding station
	To       string // alighting station
	Stops    int    // number of edges travelled
	Distance int64  // kilometres covered within the leg
}

// Travel time estimate: MinutesPerStop for every edge travelled plus a fixed
// BufferMinutes for entry, exit and waiting.
const (
	MinutesPerStop = 2
	BufferMinutes  = 10
)

// Journey is a summarized route. The zero value means no route was found.
type Journey struct {
	Steps         []dijkstra.PathStep
	TotalDistance int64
	Fare          int64
	Stops         int // edges travelled, len(Steps)-1
	Minutes       int // estimated travel time
	Legs          []Leg
	Interchanges  []string // stations where the rider changes line, in travel order
}

// Summarize groups path into legs and prices it with s.
// An empty path yields the zero Journey.
func Summarize(path []dijkstra.PathStep, s fare.Schedule) Journey {
	if len(path) == 0 {
		return Journey{}
	}

	total := dijkstra.TotalDistance(path)
	j := Journey{
		Steps:         path,
		TotalDistance: total,
		Fare:          s.Calculate(total),
		Stops:         len(path) - 1,
	}
	j.Minutes = j.Stops*MinutesPerStop + BufferMinutes

	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		km := cur.Distance - prev.Distance

		if n := len(j.Legs); n > 0 && j.Legs[n-1].Line == cur.Line {
			leg := &j.Legs[n-1]
			leg.To = cur.Station
			leg.Stops++
			leg.Distance += km
			continue
		}

		if len(j.Legs) > 0 {
			j.Interchanges = append(j.Interchanges, prev.Station)
		}
		j.Legs = append(j.Legs, Leg{
			Line:     cur.Line,
			From:     prev.Station,
			To:       cur.Station,
			Stops:    1,
			Distance: km,
		})
	}

	return j
}

// Found reports whether the journey holds a route.
func (j Journey) Found() bool { return len(j.Steps) > 0 }

// Format renders the route as "a (line) -> b (line) -> c", naming the line
// used to reach each next station.
func (j Journey) Format() string {
	var b strings.Builder
	for i, step := range j.Steps {
		b.WriteString(step.Station)
		if i < len(j.Steps)-1 {
			b.WriteString(" (")
			b.WriteString(j.Steps[i+1].Line)
			b.WriteString(") -> ")
		}
	}

	return b.String()
}
