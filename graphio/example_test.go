package graphio_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvwalk/graphio"
)

func ExampleReadAdjList() {
	g, err := graphio.ReadAdjList(strings.NewReader("a b c\nb c\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	nbrs, _ := g.NeighborIDs("c")
	fmt.Println(g.VertexCount(), g.EdgeCount(), nbrs)
	// Output: 3 3 [a b]
}
