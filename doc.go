// Package ising is your in-memory toolkit for building Ising-type energy
// models (Markov random fields / Boltzmann machines) and sampling their
// low-energy configurations with clamped, color-batched simulated annealing.
//
// 🚀 What is ising?
//
//	A small, deterministic, testable library that brings together:
//		• Model primitives: per-node biases, pairwise couplings, derived adjacency
//		• Graph coloring: greedy & degree-ordered strategies for conflict-free batch updates
//		• Annealing: clamped Metropolis/Gibbs sweeps over a caller-supplied β schedule
//		• Lattices: ready-made chain, ring, grid, complete and spin-glass models
//
// ✨ Why choose ising?
//
//   - Reproducible – all randomness is injected & seedable; same seed ⇒ same spins
//   - Rock-solid guarantees – strict sentinel errors, fail-fast validation, no panics
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – swap the coloring strategy or the random source without touching the sampler
//
// Under the hood, everything is organized under four subpackages:
//
//	anneal/   — the clamped Gibbs/simulated-annealing sampler & cooling schedules
//	coloring/ — proper graph-coloring strategies (greedy, Welsh–Powell)
//	lattice/  — canonical model constructors (chain, ring, grid, complete, spin glass)
//	model/    — the Ising energy model: biases, couplings, adjacency, energy
//
// Quick ASCII example:
//
//	    (+1)──J──(−1)
//	     │         │
//	     J         J
//	     │         │
//	    (−1)──J──(+1)
//
//	a 2×2 spin lattice; positive J favors aligned neighbors.
//
// Dive into the per-package docs for contracts, complexity notes and
// runnable examples, or start from examples/ for end-to-end scenarios.
//
//	go get github.com/katalvlaran/ising
package ising
