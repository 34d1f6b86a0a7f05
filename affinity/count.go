package affinity

// CountClusters returns the number of distinct exemplars in assignment.
// Complexity: O(n) time and space.
func CountClusters(assignment []int) int {
	seen := make(map[int]struct{}, len(assignment))
	for _, x := range assignment {
		seen[x] = struct{}{}
	}

	return len(seen)
}

// Members groups node indices by exemplar. Each member list is in
// ascending node order.
func Members(assignment []int) map[int][]int {
	out := make(map[int][]int)
	for i, x := range assignment {
		out[x] = append(out[x], i)
	}

	return out
}

// changed counts the positions where prev and cur differ; a nil prev counts
// every node as changed.
func changed(prev, cur []int) int {
	if prev == nil {
		return len(cur)
	}
	n := 0
	for i := range cur {
		if prev[i] != cur[i] {
			n++
		}
	}

	return n
}
