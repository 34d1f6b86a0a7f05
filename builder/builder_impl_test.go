// File: builder_impl_test.go
// Package builder_test contains functional tests for every Constructor,
// verifying emission order, counts, composition and error sentinels.
package builder_test

import (
	"testing"

	"github.com/katalvlaran/apclust/affinity"
	"github.com/katalvlaran/apclust/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// l is shorthand for a link literal.
func l(u, v int) affinity.Link { return affinity.Link{Source: u, Target: v} }

// TestBuilders_Functional runs table-driven functional tests for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		opts []builder.BuilderOption
		ctor builder.Constructor
		want []affinity.Link
	}{
		{"Path", 5, nil, builder.Path(1, 3), []affinity.Link{l(1, 2), l(2, 3)}},
		{"Path symmetric", 2, []builder.BuilderOption{builder.WithSymmetric()}, builder.Path(0, 2),
			[]affinity.Link{l(0, 1), l(1, 0)}},
		{"Cycle", 4, nil, builder.Cycle(1, 3), []affinity.Link{l(1, 2), l(2, 3), l(3, 1)}},
		{"Star", 4, nil, builder.Star(0, 4), []affinity.Link{l(1, 0), l(2, 0), l(3, 0)}},
		{"Star symmetric", 3, []builder.BuilderOption{builder.WithSymmetric()}, builder.Star(0, 3),
			[]affinity.Link{l(1, 0), l(0, 1), l(2, 0), l(0, 2)}},
		{"Clique", 3, nil, builder.Clique(0, 3),
			[]affinity.Link{l(0, 1), l(0, 2), l(1, 0), l(1, 2), l(2, 0), l(2, 1)}},
		{"Clique ignores symmetric", 2, []builder.BuilderOption{builder.WithSymmetric()}, builder.Clique(0, 2),
			[]affinity.Link{l(0, 1), l(1, 0)}},
		{"RandomSparse p=1", 3, nil, builder.RandomSparse(0, 3, 1),
			[]affinity.Link{l(0, 1), l(0, 2), l(1, 0), l(1, 2), l(2, 0), l(2, 1)}},
		{"RandomSparse p=0", 3, nil, builder.RandomSparse(0, 3, 0), nil},
		{"Bridge", 4, nil, builder.Bridge(3, 0), []affinity.Link{l(3, 0)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := builder.BuildLinks(tc.n, tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestBuildLinks_Composition plants two cliques joined by a bridge.
func TestBuildLinks_Composition(t *testing.T) {
	got, err := builder.BuildLinks(6, nil,
		builder.Clique(0, 3),
		builder.Clique(3, 3),
		builder.Bridge(2, 3),
	)
	require.NoError(t, err)
	assert.Len(t, got, 6+6+1)
	assert.Equal(t, l(2, 3), got[len(got)-1])
	for _, link := range got[:6] {
		assert.Less(t, link.Source, 3)
		assert.Less(t, link.Target, 3)
	}
}

// TestRandomSparse_Deterministic expects identical lists for identical seeds
// and a different list for a different seed.
func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) []affinity.Link {
		links, err := builder.BuildLinks(50,
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(0, 50, 0.1),
		)
		require.NoError(t, err)
		return links
	}

	a, b, c := build(42), build(42), build(43)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEmpty(t, a)
	for _, link := range a {
		assert.NotEqual(t, link.Source, link.Target)
	}
}

// TestBuilders_Errors checks every constructor's sentinel errors.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Path too small", 5, nil, builder.Path(0, 1), builder.ErrTooFewVertices},
		{"Path outside", 5, nil, builder.Path(3, 3), builder.ErrOutOfRange},
		{"Cycle too small", 5, nil, builder.Cycle(0, 2), builder.ErrTooFewVertices},
		{"Star negative offset", 5, nil, builder.Star(-1, 3), builder.ErrOutOfRange},
		{"Clique too small", 5, nil, builder.Clique(0, 1), builder.ErrTooFewVertices},
		{"RandomSparse bad p", 5, nil, builder.RandomSparse(0, 5, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", 5, nil, builder.RandomSparse(0, 5, 0.5), builder.ErrNeedRandSource},
		{"Bridge outside", 5, nil, builder.Bridge(0, 5), builder.ErrOutOfRange},
		{"nil constructor", 5, nil, nil, builder.ErrConstructFailed},
		{"empty universe", 0, nil, builder.Bridge(0, 0), builder.ErrTooFewVertices},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			links, err := builder.BuildLinks(tc.n, tc.opts, tc.ctor)
			assert.Nil(t, links)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestBuildLinks_FeedsGraph checks that built lists are accepted by affinity.NewGraph.
func TestBuildLinks_FeedsGraph(t *testing.T) {
	links, err := builder.BuildLinks(10, []builder.BuilderOption{builder.WithSeed(1)},
		builder.Cycle(0, 5),
		builder.RandomSparse(5, 5, 0.5),
		builder.Bridge(4, 5),
	)
	require.NoError(t, err)

	g, err := affinity.NewGraph(10, links)
	require.NoError(t, err)
	assert.Equal(t, len(links)+10, g.EdgeCount())
}
