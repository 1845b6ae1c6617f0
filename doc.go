// Package metro finds the shortest route between stations of a metro network
// and prices it.
//
// 🚀 What is metro?
//
//	A small, thread-safe station graph with everything a journey planner needs:
//		• Graph store: stations + undirected weighted edges tagged with a line
//		• Shortest paths: Dijkstra with per-step arrival line
//		• Stop counts: breadth-first walks and connectivity
//		• Fares: base + per-km rate, capped
//		• Networks: TOML definitions, Hyderabad Metro built in
//		• Journeys: legs per line and interchange stations
//		• Diagrams: Graphviz DOT and SVG export
//
// Under the hood, everything is organized into subpackages:
//
//	core/       Graph, Neighbor, Edge & name normalization
//	dijkstra/   ShortestPath, Distances, options (WithLines, WithMaxDistance)
//	bfs/        stop-count walks & connected components
//	fare/       Schedule & Calculate
//	network/    TOML loader, validation & the embedded default network
//	journey/    route summaries: legs, interchanges, "a (line) -> b"
//	render/     DOT text & SVG rendering
//	cmd/metro/  the command-line front end
//
// Quick ASCII example (Blue Line west of Ameerpet):
//
//	ameerpet ─4─ madhapur ─3─ hitec city ─5─ gachibowli
//
//	ameerpet → gachibowli: 12 km, Rs. 34.
//
//	go install github.com/katalvlaran/metro/cmd/metro@latest
package metro
