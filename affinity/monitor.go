package affinity

import "slices"

// Monitor detects convergence of successive assignments.
//
// State machine:
//
//	Running ──equal──▶ Stable ──streak > threshold──▶ Converged (terminal)
//	   ▲                  │
//	   └────differs───────┘
//
// The first observation has no predecessor and leaves the streak at 0.
type Monitor struct {
	threshold int
	streak    int
	state     State
	prev      []int
	seen      bool
}

// NewMonitor returns a Monitor that converges once more than threshold
// consecutive observations repeated their predecessor.
func NewMonitor(threshold int) *Monitor {
	return &Monitor{threshold: threshold}
}

// Observe records the next assignment and returns the new state.
// The monitor keeps its own copy; the caller may reuse assignment.
func (m *Monitor) Observe(assignment []int) State {
	if m.state == Converged {
		return m.state
	}

	if m.seen && slices.Equal(m.prev, assignment) {
		m.streak++
	} else {
		m.streak = 0
	}
	m.prev = append(m.prev[:0], assignment...)
	m.seen = true

	switch {
	case m.streak > m.threshold:
		m.state = Converged
	case m.streak > 0:
		m.state = Stable
	default:
		m.state = Running
	}

	return m.state
}

// Streak returns the number of consecutive repeated assignments.
func (m *Monitor) Streak() int { return m.streak }

// State returns the current state.
func (m *Monitor) State() State { return m.state }

// Reset forgets all observations.
func (m *Monitor) Reset() {
	m.streak = 0
	m.state = Running
	m.prev = m.prev[:0]
	m.seen = false
}
