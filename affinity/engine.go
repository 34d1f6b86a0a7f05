package affinity

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// floor seeds the running maxima of the responsibility pass. A node whose
// only candidate is its self-link competes against floor, which keeps its
// self-responsibility large but finite.
const floor = -1e9

// Engine performs the per-epoch message updates on a Graph it does not own
// exclusively: callers must not mutate the graph while Step runs.
//
// One Step is:
//
//	pass 1  responsibilities of every node      (parallel over node ranges)
//	        ── barrier ──
//	        support[k] = Σ max(0, r(i,k)) over all candidates targeting k
//	pass 2  availabilities of every node        (parallel over node ranges)
//
// support is indexed by the candidate's target node, never by the
// candidate's position inside its source list.
type Engine struct {
	g       *Graph
	damping float64
	workers int
	support []float64
}

// NewEngine returns an Engine updating g with the given damping factor
// using up to workers goroutines per pass.
//
// Errors: ErrConfiguration wrapping ErrBadNodeCount, ErrBadDamping or
// ErrBadWorkers.
func NewEngine(g *Graph, damping float64, workers int) (*Engine, error) {
	if g == nil || g.Order() == 0 {
		return nil, fmt.Errorf("%w: %w: empty graph", ErrConfiguration, ErrBadNodeCount)
	}
	if err := validateDamping(damping); err != nil {
		return nil, err
	}
	if err := validateWorkers(workers); err != nil {
		return nil, err
	}

	return &Engine{
		g:       g,
		damping: damping,
		workers: workers,
		support: make([]float64, g.Order()),
	}, nil
}

// Step runs one epoch. All reads of a pass observe the values committed by
// the previous pass; pass 2 starts only after pass 1 finished for every node.
//
// The only possible error is ctx's: cancellation is checked before each
// pass and before each parallel chunk. A cancelled Step may leave the
// graph between passes; callers should discard it.
func (e *Engine) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := e.run(ctx, e.updateResponsibilities); err != nil {
		return err
	}

	e.accumulate()

	if err := ctx.Err(); err != nil {
		return err
	}

	return e.run(ctx, e.updateAvailabilities)
}

// Support returns the positive responsibility total accumulated for node k
// during the last Step.
func (e *Engine) Support(k int) float64 { return e.support[k] }

// run applies fn to [0,n) either inline or split into contiguous ranges.
func (e *Engine) run(ctx context.Context, fn func(lo, hi int)) error {
	n := e.g.Order()
	if e.workers == 1 || n < 2 {
		fn(0, n)
		return nil
	}

	chunk := (n + e.workers - 1) / e.workers
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(e.workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(lo, hi)
			return nil
		})
	}

	return eg.Wait()
}

// updateResponsibilities is pass 1 for nodes [lo, hi).
//
//	r(i,k) ← d·r(i,k) + (1−d)·(s(i,k) − competing)
//
// competing is best2 for the single argmax candidate and best1 for all others.
func (e *Engine) updateResponsibilities(lo, hi int) {
	d := e.damping
	blend := 1 - d
	for i := lo; i < hi; i++ {
		list := e.g.candidates[i]
		best1, best2, arg := top2(list)
		for j := range list {
			c := &list[j]
			competing := best1
			if j == arg {
				competing = best2
			}
			c.Responsibility = d*c.Responsibility + blend*(c.Similarity-competing)
		}
	}
}

// accumulate rebuilds support sequentially in node order, so the sums are
// bit-identical whatever the worker count.
func (e *Engine) accumulate() {
	clear(e.support)
	for i := range e.g.candidates {
		list := e.g.candidates[i]
		for j := range list {
			e.support[list[j].Target] += positive(list[j].Responsibility)
		}
	}
}

// updateAvailabilities is pass 2 for nodes [lo, hi).
//
//	excess = support[k] − max(0, r(i,k)) − max(0, r(k,k))
//	i ≠ k: a(i,k) ← d·a(i,k) + (1−d)·min(0, r(k,k) + excess)
//	i = k: a(i,k) ← d·a(i,k) + (1−d)·excess
//
// Both terms are removed for every candidate, the self-link included.
func (e *Engine) updateAvailabilities(lo, hi int) {
	d := e.damping
	blend := 1 - d
	for i := lo; i < hi; i++ {
		list := e.g.candidates[i]
		for j := range list {
			c := &list[j]
			k := c.Target
			selfResp := e.g.SelfLink(k).Responsibility
			excess := e.support[k] - positive(c.Responsibility) - positive(selfResp)

			if k != i {
				c.Availability = d*c.Availability + blend*min(0, selfResp+excess)
			} else {
				c.Availability = d*c.Availability + blend*excess
			}
		}
	}
}

// top2 returns the largest and second-largest values of
// availability+similarity over list, and the position of the first candidate
// attaining the largest. On ties the later candidates count towards best2.
func top2(list []CandidateEdge) (best1, best2 float64, arg int) {
	best1, best2, arg = floor, floor, -1
	for j := range list {
		v := list[j].Availability + list[j].Similarity
		if v > best1 {
			best2 = best1
			best1 = v
			arg = j
		} else if v > best2 {
			best2 = v
		}
	}

	return best1, best2, arg
}

func positive(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}
