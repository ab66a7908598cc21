package coloring

import "sort"

// DegreeOrdered is the Welsh–Powell strategy: nodes are visited in order of
// descending degree (ties broken by ascending ID) and colored first-fit.
// High-degree nodes grab low colors early, which usually yields fewer color
// classes than plain Greedy on irregular graphs.
//
// Complexity: O(V log V + Σ deg) time, O(V) extra space.
type DegreeOrdered struct{}

// Color implements Strategy.
func (DegreeOrdered) Color(adj Adjacency) [][]int {
	order := sortedNodes(adj)
	sort.SliceStable(order, func(i, j int) bool {
		di, dj := len(adj[order[i]]), len(adj[order[j]])
		if di != dj {
			return di > dj
		}

		return order[i] < order[j]
	})

	return firstFit(adj, order)
}
