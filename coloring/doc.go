// Package coloring assigns colors to graph nodes so that no two adjacent
// nodes share a color, enabling conflict-free simultaneous updates within
// a color class.
//
// 🚀 Why color a graph before sampling?
//
//	Two nodes of the same color are never adjacent, so their Metropolis
//	updates cannot influence each other's energy delta. A whole color class
//	can therefore be updated as one batch — sequentially or in parallel —
//	and the result is equivalent to any per-node update order.
//
// ✨ Key features:
//   - Strategy interface: any proper coloring satisfies the contract,
//     minimality is never required
//   - Greedy: ascending-ID first-fit, the fastest baseline
//   - DegreeOrdered: Welsh–Powell ordering, usually fewer colors on
//     irregular graphs
//   - IsProper: contract verifier used by tests and paranoid callers
//
// ⚙️ Usage:
//
//	classes := coloring.Greedy{}.Color(adj)
//	for c, nodes := range classes {
//	  // nodes of class c are mutually non-adjacent
//	}
//
// Determinism: both strategies are pure functions of the adjacency content.
// Iteration over the input map is replaced by sorted node order, so the same
// adjacency always yields the same classes.
//
// Performance: O(V log V + Σ deg) for both strategies.
package coloring
