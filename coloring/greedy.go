package coloring

import "sort"

// Greedy is the first-fit coloring strategy: nodes are visited in ascending
// ID order and each receives the smallest color unused by its already-colored
// neighbors.
//
// Properness follows directly from the assignment rule; the number of colors
// is at most maxDegree+1.
//
// Complexity: O(V log V + Σ deg) time, O(V) extra space.
type Greedy struct{}

// Color implements Strategy.
func (Greedy) Color(adj Adjacency) [][]int {
	return firstFit(adj, sortedNodes(adj))
}

// sortedNodes returns the keys of adj in ascending order.
// Complexity: O(V log V).
func sortedNodes(adj Adjacency) []int {
	nodes := make([]int, 0, len(adj))
	for v := range adj {
		nodes = append(nodes, v)
	}
	sort.Ints(nodes)

	return nodes
}

// firstFit assigns each node of order, in sequence, the smallest color not
// taken by an already-colored neighbor, then groups nodes by color.
//
// Shared by Greedy and DegreeOrdered; only the visit order differs.
// Complexity: O(Σ deg) beyond the order slice.
func firstFit(adj Adjacency, order []int) [][]int {
	colorOf := make(map[int]int, len(order))

	var (
		v       int
		u       int
		c       int
		ok      bool
		taken   []bool // scratch: colors used by neighbors of the current node
		highest = -1   // highest color assigned so far
	)
	for _, v = range order {
		// Mark colors already used around v.
		taken = taken[:0]
		for i := 0; i <= highest; i++ {
			taken = append(taken, false)
		}
		for _, u = range adj[v] {
			if c, ok = colorOf[u]; ok {
				taken[c] = true
			}
		}

		// Smallest free color.
		c = 0
		for c < len(taken) && taken[c] {
			c++
		}
		colorOf[v] = c
		if c > highest {
			highest = c
		}
	}

	// Group by color. Degree-ordered visits do not preserve ascending IDs
	// inside a class, so each class is sorted explicitly.
	classes := make([][]int, highest+1)
	for _, v = range order {
		c = colorOf[v]
		classes[c] = append(classes[c], v)
	}
	for c = range classes {
		sort.Ints(classes[c])
	}

	return classes
}
