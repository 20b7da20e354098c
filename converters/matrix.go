// File: matrix.go
// Role: Dense matrix views of small graphs for linear-algebra analysis.
//
// Determinism:
//   - Row/column i corresponds to the i-th node in ascending ID order; the
//     returned index slice records that order.
//
// Policy:
//   - A[i][j] is the number of parallel edges between i and j; a self-loop
//     contributes 1 to A[i][i], matching its single neighbor-list entry.
//   - Views are O(V²) memory; graphs above MaxDenseNodes are rejected.
package converters

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/TheRadDani/graphlib/core"
)

// MaxDenseNodes bounds the node count accepted by the dense views.
const MaxDenseNodes = 1 << 13

// ErrTooLarge indicates a graph too large for a dense view.
var ErrTooLarge = errors.New("converters: graph too large for a dense matrix")

// AdjacencyMatrix returns the symmetric adjacency matrix of g and the node ID
// of each row.
//
// Errors:
//   - ErrGraphNil; ErrTooLarge (wrapped) above MaxDenseNodes nodes.
//
// Complexity: O(V² + E) time and memory.
func AdjacencyMatrix(g *core.Graph) (*mat.SymDense, []uint64, error) {
	snap, ids, err := denseSnapshot(g)
	if err != nil {
		return nil, nil, err
	}
	if len(ids) == 0 {
		return &mat.SymDense{}, ids, nil
	}
	a := mat.NewSymDense(len(ids), nil)
	row := indexOf(ids)
	for _, e := range snap.Edges() {
		i, j := row[e.A], row[e.B]
		a.SetSym(i, j, a.At(i, j)+1)
	}

	return a, ids, nil
}

// TransitionMatrix returns the random-walk transition matrix P of g, where
// P[i][j] is the probability that one walk step from node i lands on node j:
// its multiplicity over i's neighbor-list length. Rows of isolated nodes are
// all zero, matching a walk that stops there.
//
// Errors:
//   - ErrGraphNil; ErrTooLarge (wrapped) above MaxDenseNodes nodes.
//
// Complexity: O(V² + E) time and memory.
func TransitionMatrix(g *core.Graph) (*mat.Dense, []uint64, error) {
	snap, ids, err := denseSnapshot(g)
	if err != nil {
		return nil, nil, err
	}
	if len(ids) == 0 {
		return &mat.Dense{}, ids, nil
	}
	p := mat.NewDense(len(ids), len(ids), nil)
	row := indexOf(ids)
	for i, id := range ids {
		nbrs, err := snap.Neighbors(id)
		if err != nil {
			return nil, nil, err
		}
		if len(nbrs) == 0 {
			continue
		}
		step := 1 / float64(len(nbrs))
		for _, nb := range nbrs {
			j := row[nb]
			p.Set(i, j, p.At(i, j)+step)
		}
	}

	return p, ids, nil
}

func denseSnapshot(g *core.Graph) (*core.Graph, []uint64, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	snap := g.Clone()
	ids := snap.Nodes()
	if len(ids) > MaxDenseNodes {
		return nil, nil, fmt.Errorf("%w: %d nodes > %d", ErrTooLarge, len(ids), MaxDenseNodes)
	}

	return snap, ids, nil
}

func indexOf(ids []uint64) map[uint64]int {
	row := make(map[uint64]int, len(ids))
	for i, id := range ids {
		row[id] = i
	}

	return row
}
