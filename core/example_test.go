package core_test

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// ExampleGraph demonstrates bulk ingestion, queries and one contraction.
func ExampleGraph() {
	// 1) Build a triangle with one doubled side:
	g := core.NewGraph()
	added, _ := g.AddEdges([]string{"A -- B", "B--C", "C--A", "C--A", "not an edge"})
	fmt.Println("added:", added, "edges:", g.NumEdges(), "degree sum:", g.DegreeSum())

	// 2) Contract A—C; both parallel copies disappear:
	m, _ := g.MergeLabels("A", "C")
	nbrs, _ := g.ConnectedLabelsOf("B")
	fmt.Println("merged:", m, "B sees:", nbrs)
	fmt.Println("edges left:", g.NumEdges())

	// Output:
	// added: 4 edges: 4 degree sum: 8
	// merged: (A/C) B sees: [(A/C) (A/C)]
	// edges left: 2
}

// ExampleGraph_String shows the diagnostic dump format.
func ExampleGraph_String() {
	g := core.NewGraph()
	_ = g.AddEdgeLabels("A", "B")
	fmt.Print(g.String())

	// Output:
	// A --> B
	//
	// B --> A
}
