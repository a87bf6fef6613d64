package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/lexigraph/sparse"
)

// ExampleBuild ranks a tiny vocabulary and prints the stored coordinates.
func ExampleBuild() {
	idx, g, err := sparse.Build(mapRelations{
		"manger":  {"dévorer", "avaler"},
		"avaler":  {"manger"},
		"dévorer": {},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(idx.Terms())
	for _, c := range g.Coords() {
		fmt.Printf("(%d,%d) ", c.Row, c.Col)
	}
	fmt.Println()
	// Output:
	// [avaler dévorer manger]
	// (0,2) (2,1) (2,0)
}

// ExampleCompose shows the two-hop relation of a chain.
func ExampleCompose() {
	g, _ := sparse.NewGraph(3, []sparse.Coord{
		{Row: 0, Col: 1, Present: true},
		{Row: 1, Col: 2, Present: true},
	})
	g2, _ := sparse.Compose(g, g)
	fmt.Println(g2.EdgeCount(), g2.HasEdge(0, 2))
	// Output: 1 true
}
