package coloring

// IsProper reports whether classes is a proper coloring of adj:
// every node of adj appears in exactly one class and no class contains two
// adjacent nodes. It is the executable form of the Strategy contract and is
// primarily used by tests.
//
// Complexity: O(V + Σ deg) time, O(V) extra space.
func IsProper(adj Adjacency, classes [][]int) bool {
	classOf := make(map[int]int, len(adj))

	var (
		c     int
		v     int
		u     int
		seen  int
		nodes []int
	)
	for c, nodes = range classes {
		for _, v = range nodes {
			if _, dup := classOf[v]; dup {
				return false // node colored twice
			}
			classOf[v] = c
			seen++
		}
	}
	if seen != len(adj) {
		return false // some node missing or foreign node present
	}
	for v = range adj {
		if _, ok := classOf[v]; !ok {
			return false
		}
	}

	// No edge may stay inside one class.
	for v, nodes = range adj {
		for _, u = range nodes {
			if classOf[v] == classOf[u] {
				return false
			}
		}
	}

	return true
}
