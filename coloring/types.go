// Package coloring - strategy contract shared by all implementations.
package coloring

// Adjacency is the neighbor view a strategy consumes: node → neighbor IDs.
// The view is expected to be symmetric (u lists v iff v lists u); strategies
// treat it as read-only. model.Adjacency converts to this type directly.
type Adjacency map[int][]int

// Strategy produces a proper coloring of an adjacency view.
//
// Contract:
//   - the returned slice is indexed by color: classes[c] lists the nodes of
//     color c, sorted ascending;
//   - every node of adj appears in exactly one class;
//   - no two nodes within one class are adjacent (the coloring invariant);
//   - the result is a deterministic function of the adjacency content.
//
// Minimality is NOT required; any proper coloring is valid.
type Strategy interface {
	Color(adj Adjacency) [][]int
}
