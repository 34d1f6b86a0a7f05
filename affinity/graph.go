package affinity

import "fmt"

// Graph is the candidate graph: for every node a list of candidate exemplars.
//
// Layout:
//
//	candidates[i] = [link_0, link_1, ..., link_m, self]
//
// The outer slice is pre-sized to n and never resized. Only the
// Responsibility and Availability fields change after construction.
type Graph struct {
	candidates [][]CandidateEdge
	edges      int
}

// NewGraph builds the candidate graph for n nodes from the given links.
//
// Steps:
//  1. Validate n ≥ 1 (ErrConfiguration + ErrBadNodeCount).
//  2. Validate every link endpoint lies in [0, n) (ErrMalformedInput).
//  3. Count links per source so each list is allocated exactly once.
//  4. Append links in input order with LinkSimilarity.
//  5. Append one self-link with SelfPreference to every list.
//
// Duplicate links are kept; each becomes its own candidate.
//
// Complexity: O(n + L) time and space, L = len(links).
func NewGraph(n int, links []Link) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %w: n=%d", ErrConfiguration, ErrBadNodeCount, n)
	}

	degree := make([]int, n)
	for idx, l := range links {
		if l.Source < 0 || l.Source >= n || l.Target < 0 || l.Target >= n {
			return nil, fmt.Errorf("%w: link %d (%d→%d) outside [0,%d)",
				ErrMalformedInput, idx, l.Source, l.Target, n)
		}
		degree[l.Source]++
	}

	g := &Graph{
		candidates: make([][]CandidateEdge, n),
		edges:      len(links) + n,
	}
	for i := range g.candidates {
		g.candidates[i] = make([]CandidateEdge, 0, degree[i]+1)
	}
	for _, l := range links {
		g.candidates[l.Source] = append(g.candidates[l.Source], CandidateEdge{
			Target:     l.Target,
			Similarity: LinkSimilarity,
		})
	}
	for i := range g.candidates {
		g.candidates[i] = append(g.candidates[i], CandidateEdge{
			Target:     i,
			Similarity: SelfPreference,
		})
	}

	return g, nil
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.candidates) }

// EdgeCount returns the total number of candidates, self-links included.
func (g *Graph) EdgeCount() int { return g.edges }

// Candidates returns node i's candidate list. The slice aliases the graph's
// storage and must be treated as read-only.
// Panics if i is outside [0, Order()).
func (g *Graph) Candidates(i int) []CandidateEdge { return g.candidates[i] }

// SelfLink returns node k's self-link, the last entry of its list.
func (g *Graph) SelfLink(k int) *CandidateEdge {
	list := g.candidates[k]
	return &list[len(list)-1]
}

// Reset zeroes every message so the graph can be clustered again.
func (g *Graph) Reset() {
	for i := range g.candidates {
		list := g.candidates[i]
		for j := range list {
			list[j].Responsibility = 0
			list[j].Availability = 0
		}
	}
}
