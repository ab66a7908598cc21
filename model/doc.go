// Package model defines the Ising energy model used throughout the library:
// per-node biases, pairwise couplings, the adjacency view derived from them,
// and the energy/local-field observables.
//
// 🚀 What is an Ising model?
//
//	A set of binary spins s(v) ∈ {−1,+1}, one per node, with energy
//
//	    E(s) = −Σ_v bias(v)·s(v) − Σ_{(u,v)} J(u,v)·s(u)·s(v)
//
//	Low-energy configurations are the high-probability states of the
//	Boltzmann distribution P(s) ∝ exp(−β·E(s)). Under this sign convention
//	a positive coupling favors aligned neighbor spins and a positive bias
//	favors s(v) = +1.
//
// ✨ Key features:
//   - couplings keyed by ordered pair; (u,v) and (v,u) denote the same
//     undirected interaction and are looked up in either direction
//   - Adjacency() derives a deterministic neighbor view for traversal,
//     coloring and batched updates
//   - Energy / LocalField observables for scoring sampled assignments
//   - strict sentinel errors; validation never mutates the model
//
// ⚙️ Usage:
//
//	m := model.New()
//	m.SetBias(0, 0.5)
//	m.SetBias(1, -0.5)
//	_ = m.SetCoupling(0, 1, 2.0) // ferromagnetic pair
//
//	if err := m.Validate(); err != nil {
//	  // ErrUnknownCouplingNode, ...
//	}
//	e, _ := m.Energy(map[int]model.Spin{0: model.SpinUp, 1: model.SpinUp})
//
// Performance:
//
//   - SetBias / SetCoupling / CouplingWeight: O(1)
//   - Nodes / Adjacency: O(V log V + E) (sorted, deterministic output)
//   - Energy: O(V + E)
//
// See the anneal package for sampling low-energy configurations.
package model
