package affinity

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Cluster runs affinity propagation on g until the assignment converges or
// Options.MaxEpochs epochs have run, whichever comes first. Reaching the cap
// is not an error; Result.Converged reports which case happened.
//
// Steps:
//  1. Resolve Options from DefaultOptions and opts, validate them.
//  2. Build an Engine and a Monitor.
//  3. For each epoch: Step, extract exemplars, observe, call OnEpoch.
//  4. Report the last assignment and its cluster count.
//
// Cluster mutates the messages stored in g. Call g.Reset to start over.
//
// Errors:
//   - ErrConfiguration (wrapping the specific sentinel) for invalid options or a nil graph.
//   - ctx.Err() wrapped with the epoch number if ctx is cancelled.
//   - any OnEpoch error, wrapped with the epoch number.
//
// Complexity: O(MaxEpochs · E) time, O(E + n) space.
func Cluster(ctx context.Context, g *Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, fmt.Errorf("%w: %w: graph is nil", ErrConfiguration, ErrBadNodeCount)
	}
	if err := validateOptions(cfg); err != nil {
		return nil, err
	}

	// 2) Engine and monitor
	engine, err := NewEngine(g, cfg.Damping, cfg.Workers)
	if err != nil {
		return nil, err
	}
	r := &runner{
		g:       g,
		options: cfg,
		engine:  engine,
		monitor: NewMonitor(cfg.StabilityThreshold),
		log:     cfg.Logger,
		mark:    make([]bool, g.Order()),
	}

	// 3) Epoch loop
	return r.process(ctx)
}

// runner holds the mutable state of one Cluster call.
type runner struct {
	g       *Graph
	options Options
	engine  *Engine
	monitor *Monitor
	log     *zap.Logger

	cur  []int  // assignment being built this epoch
	prev []int  // assignment of the previous epoch, nil before epoch 1
	mark []bool // scratch for counting distinct exemplars
}

func (r *runner) process(ctx context.Context) (*Result, error) {
	var (
		epoch int
		state State
	)
	r.log.Debug("affinity propagation started",
		zap.Int("nodes", r.g.Order()),
		zap.Int("candidates", r.g.EdgeCount()),
		zap.Float64("damping", r.options.Damping),
		zap.Int("max_epochs", r.options.MaxEpochs),
		zap.Int("stability_threshold", r.options.StabilityThreshold),
		zap.Int("workers", r.options.Workers))

	for epoch = 1; epoch <= r.options.MaxEpochs; epoch++ {
		if err := r.engine.Step(ctx); err != nil {
			return nil, fmt.Errorf("affinity: epoch %d: %w", epoch, err)
		}

		r.cur = r.g.ExemplarsInto(r.cur)
		state = r.monitor.Observe(r.cur)

		stats := EpochStats{
			Epoch:        epoch,
			Streak:       r.monitor.Streak(),
			State:        state,
			Changed:      changed(r.prev, r.cur),
			ClusterCount: r.distinct(r.cur),
		}
		r.log.Debug("epoch",
			zap.Int("epoch", stats.Epoch),
			zap.Int("streak", stats.Streak),
			zap.Stringer("state", stats.State),
			zap.Int("changed", stats.Changed),
			zap.Int("clusters", stats.ClusterCount))

		if r.options.OnEpoch != nil {
			if err := r.options.OnEpoch(stats); err != nil {
				return nil, fmt.Errorf("affinity: epoch %d hook: %w", epoch, err)
			}
		}

		// The freshly built assignment becomes prev; the old prev is reused.
		r.prev, r.cur = r.cur, r.prev

		if state == Converged {
			break
		}
	}
	if epoch > r.options.MaxEpochs {
		epoch = r.options.MaxEpochs
	}

	res := &Result{
		Exemplars:    r.prev,
		Epochs:       epoch,
		Converged:    state == Converged,
		ClusterCount: r.distinct(r.prev),
	}
	r.log.Info("affinity propagation finished",
		zap.Int("epochs", res.Epochs),
		zap.Bool("converged", res.Converged),
		zap.Int("clusters", res.ClusterCount))

	return res, nil
}

// distinct counts distinct exemplars using the reusable mark slice;
// exemplars are always valid node indices.
func (r *runner) distinct(assignment []int) int {
	clear(r.mark)
	n := 0
	for _, x := range assignment {
		if !r.mark[x] {
			r.mark[x] = true
			n++
		}
	}

	return n
}
