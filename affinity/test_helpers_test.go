package affinity_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/apclust/affinity"
	"github.com/stretchr/testify/require"
)

// ctx returns a background context for calls that never expect cancellation.
func ctx() context.Context { return context.Background() }

// mustGraph builds a graph or fails the test immediately.
func mustGraph(t testing.TB, n int, links []affinity.Link) *affinity.Graph {
	t.Helper()
	g, err := affinity.NewGraph(n, links)
	require.NoError(t, err)
	return g
}

// snapshot copies every candidate list so message values can be compared
// after further mutation.
func snapshot(g *affinity.Graph) [][]affinity.CandidateEdge {
	out := make([][]affinity.CandidateEdge, g.Order())
	for i := range out {
		out[i] = append([]affinity.CandidateEdge(nil), g.Candidates(i)...)
	}
	return out
}

// triangle is the three-node scenario 0→1, 1→0, 2→0.
func triangle() []affinity.Link {
	return []affinity.Link{{0, 1}, {1, 0}, {2, 0}}
}
