// Package affinity clusters the nodes of a sparse similarity graph with
// affinity propagation.
//
// What is affinity propagation?
//
//	Every node repeatedly exchanges two kinds of messages with the nodes it
//	considers as possible exemplars (its "candidates"):
//	  • responsibility r(i,k): how well-suited k is to represent i, relative
//	    to i's next-best candidate;
//	  • availability   a(k,i): how much accumulated support k has as an
//	    exemplar from everyone except i.
//	After each epoch every node picks the candidate maximizing r + a. The
//	loop stops once the assignment has not changed for a run of epochs, or
//	when the epoch cap is reached.
//
// Model:
//
//   - Nodes are dense indices 0..n-1; n is fixed before construction.
//   - Each input link (s → t) becomes one candidate in s's list with
//     similarity LinkSimilarity (1.0). Links are directed.
//   - Every node additionally gets a self-link with similarity
//     SelfPreference (-1.0), appended last.
//
// Components:
//
//	Graph    — per-node candidate lists with mutable message accumulators.
//	Engine   — one epoch = responsibility pass, barrier, availability pass.
//	Exemplars — argmax of r + a per node, first candidate wins ties.
//	Monitor  — Running → Stable → Converged streak detector.
//	CountClusters — number of distinct exemplars.
//	Cluster  — the epoch loop tying the above together.
//
// Determinism:
//
//   - Argmax ties are broken by list order (input-link order, self-link last).
//   - The per-target positive responsibility sum is accumulated in node
//     order after the responsibility pass, so results are bit-identical for
//     any worker count.
//
// Complexity:
//
//   - Time:  O(E) per epoch, E = number of candidates (links + n self-links).
//   - Space: O(E + n).
//
// Errors:
//
//   - ErrMalformedInput: a link references a node outside [0, n).
//   - ErrConfiguration:  bad node count, damping outside (0,1), non-positive
//     epoch cap, negative stability threshold or worker count < 1. The
//     specific reason (ErrBadNodeCount, ErrBadDamping, ...) is wrapped too.
//
// Example:
//
//	g, err := affinity.NewGraph(3, []affinity.Link{{0, 1}, {1, 0}, {2, 0}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := affinity.Cluster(ctx, g, affinity.WithStabilityThreshold(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Exemplars, res.ClusterCount)
package affinity
