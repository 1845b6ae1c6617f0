// SPDX-License-Identifier: MIT
// Package core_test verifies station normalization, edge mirroring and the
// read-only query surface of core.Graph.

package core_test

import (
	"testing"

	"github.com/katalvlaran/metro/core"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Ameerpet":         "ameerpet",
		"  HITEC City\t":   "hitec city",
		"MG BUS STATION":   "mg bus station",
		"":                 "",
		"   ":              "",
		"already normal":   "already normal",
		"\n Blue Line \n ": "blue line",
	}
	for in, want := range cases {
		if got := core.Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q; want %q", in, got, want)
		}
		// Idempotence.
		if got := core.Normalize(core.Normalize(in)); got != want {
			t.Errorf("Normalize(Normalize(%q)) = %q; want %q", in, got, want)
		}
	}
}

func TestAddEdge_MirrorsNeighbors(t *testing.T) {
	g := core.NewGraph()
	MustNoError(t, g.AddEdge(" Ameerpet ", "MADHAPUR", 4, " Blue Line"), "AddEdge")

	a := g.Neighbors("ameerpet")
	b := g.Neighbors("madhapur")
	MustEqualInt(t, len(a), 1, "len(Neighbors(ameerpet))")
	MustEqualInt(t, len(b), 1, "len(Neighbors(madhapur))")

	if a[0] != (core.Neighbor{Station: "madhapur", Distance: 4, Line: "blue line"}) {
		t.Fatalf("ameerpet neighbor = %+v", a[0])
	}
	if b[0] != (core.Neighbor{Station: "ameerpet", Distance: 4, Line: "blue line"}) {
		t.Fatalf("madhapur neighbor = %+v", b[0])
	}
}

func TestAddEdge_EmptyStation(t *testing.T) {
	g := core.NewGraph()

	MustErrorIs(t, g.AddEdge(StationEmpty, StationAmeerpet, 1, LineBlue), core.ErrEmptyStation, "AddEdge(empty,a)")
	MustErrorIs(t, g.AddEdge(StationAmeerpet, "", 1, LineBlue), core.ErrEmptyStation, "AddEdge(a,empty)")
	MustEqualInt(t, g.StationCount(), 0, "StationCount after rejected edges")
	MustEqualInt(t, g.EdgeCount(), 0, "EdgeCount after rejected edges")
}

func TestAddEdge_ParallelEdgesKept(t *testing.T) {
	g := core.NewGraph()
	MustNoError(t, g.AddEdge("A", "B", 5, "red"), "AddEdge red")
	MustNoError(t, g.AddEdge("A", "B", 5, "red"), "AddEdge red again")
	MustNoError(t, g.AddEdge("a", "b", 2, "blue"), "AddEdge blue")

	MustEqualInt(t, len(g.Neighbors("a")), 3, "parallel edges on a")
	MustEqualInt(t, len(g.Neighbors("b")), 3, "parallel edges on b")
	MustEqualInt(t, g.EdgeCount(), 3, "EdgeCount")
	MustEqualInt(t, g.StationCount(), 2, "StationCount")
}

func TestAddEdge_NonPositiveDistanceAccepted(t *testing.T) {
	g := core.NewGraph()
	MustNoError(t, g.AddEdge("A", "B", 0, "x"), "AddEdge zero")
	MustNoError(t, g.AddEdge("B", "C", -3, "x"), "AddEdge negative")

	nbs := g.Neighbors("c")
	MustEqualInt(t, len(nbs), 1, "len(Neighbors(c))")
	MustTrue(t, nbs[0].Distance == -3, "negative distance stored as given")
}

func TestAddEdge_SelfLoopStoresTwoEntries(t *testing.T) {
	g := core.NewGraph()
	MustNoError(t, g.AddEdge("Loop", "loop", 1, "x"), "AddEdge loop")

	MustEqualInt(t, len(g.Neighbors("loop")), 2, "self-loop entries")
	MustEqualInt(t, g.StationCount(), 1, "StationCount")
}

func TestNeighbors_UnknownAndCopy(t *testing.T) {
	g := NewMetroGraph(t)

	if nbs := g.Neighbors("Nowhere"); nbs != nil {
		t.Fatalf("Neighbors(unknown) = %v; want nil", nbs)
	}

	nbs := g.Neighbors(StationAmeerpet)
	nbs[0].Distance = 999
	MustTrue(t, g.Neighbors(StationAmeerpet)[0].Distance == 4, "Neighbors must return a copy")
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g := NewMetroGraph(t)

	nbs := g.Neighbors(StationAmeerpet)
	got := make([]string, 0, len(nbs))
	for _, nb := range nbs {
		got = append(got, nb.Station)
	}
	MustEqualStrings(t, got, []string{"madhapur", "begumpet"}, "Neighbors(ameerpet) order")
}

func TestHasStation(t *testing.T) {
	g := NewMetroGraph(t)

	MustTrue(t, g.HasStation(" hitec CITY "), "HasStation normalizes input")
	MustFalse(t, g.HasStation("Lalapet"), "HasStation(unknown)")
	MustFalse(t, g.HasStation(StationEmpty), "HasStation(empty)")
}

func TestStations_Order(t *testing.T) {
	g := NewMetroGraph(t)

	want := []string{"ameerpet", "madhapur", "hitec city", "gachibowli", "begumpet", "mg bus station"}
	MustEqualStrings(t, g.Stations(), want, "Stations() first-reference order")

	sorted := g.SortedStations()
	MustSortedStrings(t, sorted, "SortedStations()")
	MustEqualInt(t, len(sorted), len(want), "len(SortedStations())")
	MustEqualInt(t, g.StationCount(), len(want), "StationCount")
}

func TestSearch(t *testing.T) {
	g := NewMetroGraph(t)

	MustEqualStrings(t, g.Search("PET"), []string{"ameerpet", "begumpet"}, "Search(PET)")
	MustEqualStrings(t, g.Search("station"), []string{"mg bus station"}, "Search(station)")
	MustEqualInt(t, len(g.Search("zzz")), 0, "Search(no match)")
	MustEqualInt(t, len(g.Search("")), g.StationCount(), "Search(empty) matches all")
}

func TestLines(t *testing.T) {
	g := NewMetroGraph(t)
	MustNoError(t, g.AddEdge("x", "y", 1, ""), "AddEdge unlabeled")

	MustEqualStrings(t, g.Lines(), []string{"blue line", "red line"}, "Lines()")
}

func TestStationsOnLine(t *testing.T) {
	g := NewMetroGraph(t)

	MustEqualStrings(t, g.StationsOnLine("RED LINE"),
		[]string{"ameerpet", "begumpet", "mg bus station"}, "StationsOnLine(red)")
	MustEqualStrings(t, g.StationsOnLine(LineBlue),
		[]string{"ameerpet", "madhapur", "hitec city", "gachibowli"}, "StationsOnLine(blue)")
	MustEqualInt(t, len(g.StationsOnLine("green line")), 0, "StationsOnLine(unknown)")
}

func TestEdges_InsertionOrder(t *testing.T) {
	g := NewMetroGraph(t)

	edges := g.Edges()
	MustEqualInt(t, len(edges), 5, "len(Edges())")
	first := edges[0]
	if first != (core.Edge{From: "ameerpet", To: "madhapur", Distance: 4, Line: "blue line"}) {
		t.Fatalf("Edges()[0] = %+v", first)
	}
	last := edges[len(edges)-1]
	MustTrue(t, last.From == "begumpet" && last.To == "mg bus station", "Edges() last")
}

func TestAdjacencyList_Symmetric(t *testing.T) {
	g := NewMetroGraph(t)

	adj := g.AdjacencyList()
	MustEqualInt(t, len(adj), g.StationCount(), "len(AdjacencyList())")

	// Every entry u→v must have a mirrored v→u with the same distance and line.
	for u, nbs := range adj {
		for _, nb := range nbs {
			found := false
			for _, back := range adj[nb.Station] {
				if back.Station == u && back.Distance == nb.Distance && back.Line == nb.Line {
					found = true
					break
				}
			}
			MustTrue(t, found, "mirror of "+u+"→"+nb.Station)
		}
	}

	// Mutating the copy leaves the graph untouched.
	adj["ameerpet"] = nil
	MustEqualInt(t, len(g.Neighbors("ameerpet")), 2, "AdjacencyList must deep-copy")
}
