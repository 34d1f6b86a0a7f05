package edgelist

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/apclust/affinity"
)

// FromDirected converts g into a link list. Node ids must be exactly
// 0..n-1; links come out sorted by (source, target).
// Complexity: O(V + E log E).
func FromDirected(g graph.Directed) ([]affinity.Link, int, error) {
	nodes := graph.NodesOf(g.Nodes())
	n := len(nodes)
	for _, u := range nodes {
		if id := u.ID(); id < 0 || id >= int64(n) {
			return nil, 0, fmt.Errorf("%w: id %d with %d nodes", ErrSparseIDs, id, n)
		}
	}

	var links []affinity.Link
	for _, u := range nodes {
		to := g.From(u.ID())
		for to.Next() {
			links = append(links, affinity.Link{Source: int(u.ID()), Target: int(to.Node().ID())})
		}
	}
	slices.SortFunc(links, func(a, b affinity.Link) int {
		if a.Source != b.Source {
			return a.Source - b.Source
		}
		return a.Target - b.Target
	})

	return links, n, nil
}
