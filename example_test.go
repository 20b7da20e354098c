package graphlib_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/TheRadDani/graphlib"
)

// Example loads an edge list, queries neighbors, deletes a node and samples walks.
func Example() {
	dir, _ := os.MkdirTemp("", "graphlib-example")
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "path.txt")
	_ = os.WriteFile(path, []byte("# a path\n1 2\n2 3\n"), 0o644)

	g := graphlib.New(graphlib.WithSeed(42))
	if err := g.Load(path); err != nil {
		fmt.Println(err)
		return
	}
	nbrs, _ := g.GetNeighbors(2)
	fmt.Println("neighbors of 2:", nbrs)

	walks, _ := g.RandomWalk(1, 2, 2)
	fmt.Println("walks from 1:", walks)

	_ = g.DeleteNode(2)
	nbrs, _ = g.GetNeighbors(1)
	fmt.Println("neighbors of 1:", nbrs)

	_, err := g.GetNeighbors(2)
	fmt.Println(err)
	// Output:
	// neighbors of 2: [1 3]
	// walks from 1: [[1 2] [1 2]]
	// neighbors of 1: []
	// node 2: core: node not found
}
