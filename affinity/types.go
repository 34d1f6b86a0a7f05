package affinity

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors returned by the affinity package.
var (
	// ErrMalformedInput indicates a link that cannot be placed in the graph,
	// e.g. a node index outside [0, n).
	ErrMalformedInput = errors.New("affinity: malformed input")

	// ErrConfiguration indicates an invalid run or graph configuration.
	// The specific reason is wrapped alongside it.
	ErrConfiguration = errors.New("affinity: invalid configuration")

	// ErrBadNodeCount indicates a node universe smaller than one node.
	ErrBadNodeCount = errors.New("affinity: node count must be positive")

	// ErrBadDamping indicates a damping factor outside the open interval (0,1).
	ErrBadDamping = errors.New("affinity: damping must lie in (0,1)")

	// ErrBadMaxEpochs indicates a non-positive epoch cap.
	ErrBadMaxEpochs = errors.New("affinity: max epochs must be positive")

	// ErrBadThreshold indicates a negative stability threshold.
	ErrBadThreshold = errors.New("affinity: stability threshold must be non-negative")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("affinity: workers must be at least 1")
)

// Fixed similarity values.
const (
	// LinkSimilarity is the similarity of every declared link.
	LinkSimilarity = 1.0

	// SelfPreference is the similarity of a node's self-link.
	SelfPreference = -1.0
)

// Defaults for Options.
const (
	DefaultDamping            = 0.5
	DefaultMaxEpochs          = 200
	DefaultStabilityThreshold = 9
	DefaultWorkers            = 1
)

// Link is one directed similarity link Source → Target from the input.
type Link struct {
	Source int
	Target int
}

// CandidateEdge proposes Target as an exemplar for the node owning the list.
//
// Similarity is fixed at construction. Responsibility and Availability are
// the message accumulators rewritten once per epoch.
type CandidateEdge struct {
	Target         int
	Similarity     float64
	Responsibility float64
	Availability   float64
}

// State is the Convergence Monitor state.
type State int

const (
	// Running means the last assignment differed from its predecessor
	// (or there was no predecessor yet).
	Running State = iota

	// Stable means the assignment repeated at least once but the streak has
	// not exceeded the threshold yet.
	Stable

	// Converged is terminal: the streak exceeded the threshold.
	Converged
)

// String returns the lower-case name of the state.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stable:
		return "stable"
	case Converged:
		return "converged"
	default:
		return "unknown"
	}
}

// EpochStats describes one finished epoch. It is passed to the OnEpoch hook.
type EpochStats struct {
	Epoch        int   // 1-based epoch number
	Streak       int   // consecutive identical assignments so far
	State        State // monitor state after this epoch
	Changed      int   // nodes whose exemplar differs from the previous epoch
	ClusterCount int   // distinct exemplars in this epoch's assignment
}

// Options configures Cluster.
//
// Damping            – smoothing factor in (0,1). Default 0.5.
// MaxEpochs          – hard cap on epochs, > 0. Default 200.
// StabilityThreshold – converge once the streak exceeds this value, ≥ 0. Default 9.
// Workers            – goroutines per pass, ≥ 1. Default 1 (sequential).
// Logger             – progress logger. Default zap.NewNop().
// OnEpoch            – optional hook called after every epoch; an error aborts the run.
type Options struct {
	Damping            float64
	MaxEpochs          int
	StabilityThreshold int
	Workers            int
	Logger             *zap.Logger
	OnEpoch            func(EpochStats) error
}

// Option represents a functional option for configuring Cluster.
type Option func(*Options)

// WithDamping sets the damping factor. Values outside (0,1) make Cluster
// return ErrConfiguration.
func WithDamping(d float64) Option {
	return func(o *Options) {
		o.Damping = d
	}
}

// WithMaxEpochs sets the hard epoch cap.
func WithMaxEpochs(n int) Option {
	return func(o *Options) {
		o.MaxEpochs = n
	}
}

// WithStabilityThreshold sets how many repeated assignments must be exceeded
// before the run is considered converged.
func WithStabilityThreshold(n int) Option {
	return func(o *Options) {
		o.StabilityThreshold = n
	}
}

// WithWorkers sets the number of goroutines used inside each pass.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger sets the progress logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnEpoch registers a hook invoked after every epoch.
func WithOnEpoch(fn func(EpochStats) error) Option {
	return func(o *Options) {
		o.OnEpoch = fn
	}
}

// DefaultOptions returns Options initialized with the reference settings.
//
// Defaults:
//   - Damping:            0.5
//   - MaxEpochs:          200
//   - StabilityThreshold: 9 (ten identical assignments in a row)
//   - Workers:            1
//   - Logger:             zap.NewNop()
//   - OnEpoch:            nil
func DefaultOptions() Options {
	return Options{
		Damping:            DefaultDamping,
		MaxEpochs:          DefaultMaxEpochs,
		StabilityThreshold: DefaultStabilityThreshold,
		Workers:            DefaultWorkers,
		Logger:             zap.NewNop(),
	}
}

// Result is the outcome of Cluster.
type Result struct {
	// Exemplars[i] is the exemplar chosen for node i in the final epoch.
	Exemplars []int

	// Epochs is the number of epochs executed (1..MaxEpochs).
	Epochs int

	// Converged is false when the run stopped at the epoch cap.
	Converged bool

	// ClusterCount is the number of distinct exemplars.
	ClusterCount int
}

// Clusters groups the nodes by exemplar.
func (r *Result) Clusters() map[int][]int {
	return Members(r.Exemplars)
}
