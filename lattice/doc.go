// Package lattice constructs canonical Ising models: chains, rings, grids,
// complete graphs and random spin glasses.
//
// 🚀 Why a lattice package?
//
//	Hand-wiring biases and couplings is fine for three nodes and tedious for
//	three hundred. These constructors produce validated models with uniform
//	(or randomized) parameters, ready to feed into anneal.Sample — and they
//	are what the examples, benchmarks and scenario tests build on.
//
// ✨ Key features:
//   - Chain / Ring: 1-D nearest-neighbor topologies
//   - Grid: 2-D rows×cols nearest-neighbor lattice
//   - Complete: all-pairs couplings (fully connected Boltzmann machine shape)
//   - RandomSpinGlass: seeded ±J disorder on a complete topology
//
// ⚙️ Usage:
//
//	m, err := lattice.Grid(4, 4, 0 /* bias */, 1 /* coupling */)
//	if err != nil { /* ErrBadDimension */ }
//	res, _ := anneal.Sample(m, nil, anneal.LinearSchedule(0.1, 2, 500), nil)
//
// Sign convention follows the model package: positive couplings favor
// aligned neighbors (ferromagnetic), negative favor anti-aligned.
//
// Determinism: RandomSpinGlass derives all disorder from its seed; seed==0
// selects a fixed default stream.
package lattice
