// Package affinity_test provides runnable examples for the affinity package.
package affinity_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/apclust/affinity"
)

// ExampleCluster clusters three nodes where 0 and 1 point at each other and
// 2 points at 0. Node 0 ends up as the exemplar of everyone.
func ExampleCluster() {
	g, err := affinity.NewGraph(3, []affinity.Link{{0, 1}, {1, 0}, {2, 0}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := affinity.Cluster(context.Background(), g,
		affinity.WithMaxEpochs(50),
		affinity.WithStabilityThreshold(2),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("exemplars:", res.Exemplars)
	fmt.Println("clusters:", res.ClusterCount, "epochs:", res.Epochs, "converged:", res.Converged)
	// Output:
	// exemplars: [0 0 0]
	// clusters: 1 epochs: 5 converged: true
}

// ExampleEngine drives the epochs by hand and watches the monitor.
func ExampleEngine() {
	g, _ := affinity.NewGraph(3, []affinity.Link{{0, 1}, {1, 0}, {2, 0}})
	e, _ := affinity.NewEngine(g, 0.5, 1)
	m := affinity.NewMonitor(2)

	for epoch := 1; epoch <= 10; epoch++ {
		_ = e.Step(context.Background())
		a := affinity.Exemplars(g)
		state := m.Observe(a)
		fmt.Println(epoch, a, state)
		if state == affinity.Converged {
			break
		}
	}
	// Output:
	// 1 [1 0 0] running
	// 2 [0 0 0] running
	// 3 [0 0 0] stable
	// 4 [0 0 0] stable
	// 5 [0 0 0] converged
}
