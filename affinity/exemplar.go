package affinity

// Exemplars returns a fresh assignment: entry i is the target of node i's
// candidate with the largest responsibility + availability.
//
// Ties go to the first candidate in list order, so the self-link (scanned
// last) wins only when it is strictly better than every real link.
//
// Complexity: O(E) time, O(n) space.
func Exemplars(g *Graph) []int {
	return g.ExemplarsInto(nil)
}

// ExemplarsInto writes the current assignment into dst, reallocating it
// when its length differs from Order(), and returns it.
func (g *Graph) ExemplarsInto(dst []int) []int {
	n := g.Order()
	if len(dst) != n {
		dst = make([]int, n)
	}
	for i, list := range g.candidates {
		best := list[0].Responsibility + list[0].Availability
		target := list[0].Target
		for j := 1; j < len(list); j++ {
			if v := list[j].Responsibility + list[j].Availability; v > best {
				best = v
				target = list[j].Target
			}
		}
		dst[i] = target
	}

	return dst
}
