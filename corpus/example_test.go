package corpus_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/corpus"
	"github.com/katalvlaran/lvwalk/node2vec"
)

func ExampleTextWriter() {
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddEdge("a", "b", 0)
	_ = g.AddEdge("b", "c", 0)

	w, err := node2vec.NewWalker(g, node2vec.WithWeighted(false))
	if err != nil {
		fmt.Println(err)
		return
	}
	tw := corpus.NewTextWriter(os.Stdout)
	it, _ := w.Simulate(1, 5)
	for it.Next() {
		if it.Walk()[0] == "a" {
			_ = tw.WriteWalk(it.Walk())
		}
	}
	_ = tw.Flush()
	// Output: a b c
}
