package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/metro/bfs"
	"github.com/katalvlaran/metro/core"
)

// ExampleWalk lists the stations within two stops of Ameerpet.
func ExampleWalk() {
	g := core.NewGraph()
	_ = g.AddEdge("Ameerpet", "Madhapur", 4, "Blue Line")
	_ = g.AddEdge("Madhapur", "HITEC City", 3, "Blue Line")
	_ = g.AddEdge("HITEC City", "Gachibowli", 5, "Blue Line")
	_ = g.AddEdge("Ameerpet", "Begumpet", 3, "Red Line")

	res, err := bfs.Walk(g, "Ameerpet", bfs.WithMaxStops(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range res.Order {
		fmt.Println(res.Stops[s], s)
	}
	// Output:
	// 0 ameerpet
	// 1 madhapur
	// 1 begumpet
	// 2 hitec city
}

// ExampleComponents reports a network split in two.
func ExampleComponents() {
	g := core.NewGraph()
	_ = g.AddEdge("Ameerpet", "Begumpet", 3, "Red Line")
	_ = g.AddEdge("Nagole", "Uppal", 2, "Blue Line")

	fmt.Println(bfs.Components(g))
	// Output:
	// [[ameerpet begumpet] [nagole uppal]]
}
