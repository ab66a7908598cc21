// Package model - central types and sentinel errors for Ising energy models.
//
// This file declares Spin, Pair, Adjacency, the Model container and its
// sentinel errors. Methods live in model.go (structure) and energy.go
// (observables).
package model

import "errors"

// Sentinel errors for model construction and evaluation.
var (
	// ErrSelfCoupling indicates a coupling whose endpoints coincide;
	// self-interactions are not part of the Ising energy.
	ErrSelfCoupling = errors.New("model: coupling endpoints must differ")

	// ErrUnknownCouplingNode indicates a coupling endpoint with no bias entry;
	// the bias map defines the node set, so such a coupling is dangling.
	ErrUnknownCouplingNode = errors.New("model: coupling references unknown node")

	// ErrUnknownNode indicates an operation referenced a node absent from the model.
	ErrUnknownNode = errors.New("model: node not found")

	// ErrBadSpin indicates a spin value outside {-1, +1}.
	ErrBadSpin = errors.New("model: spin value outside {-1,+1}")

	// ErrMissingSpin indicates an assignment that does not cover every model node.
	ErrMissingSpin = errors.New("model: assignment missing spin for node")
)

// Spin is a single binary spin value. Valid values are SpinDown (−1) and
// SpinUp (+1); the zero value is deliberately invalid so that forgotten
// initialization is caught by Validate/Energy rather than silently sampled.
type Spin int8

const (
	// SpinDown is the −1 spin state.
	SpinDown Spin = -1

	// SpinUp is the +1 spin state.
	SpinUp Spin = +1
)

// Valid reports whether s is one of the two admissible spin states.
func (s Spin) Valid() bool { return s == SpinDown || s == SpinUp }

// Pair is an ordered coupling key between two node IDs.
//
// (U,V) and (V,U) denote the same undirected interaction; at most one
// direction is expected to be populated per pair. The model does not enforce
// that expectation — CouplingWeight accumulates both directions if a caller
// populates both, which keeps lookups total and deterministic.
type Pair struct {
	// U is the first endpoint as stored.
	U int

	// V is the second endpoint as stored.
	V int
}

// Assignment maps every node ID to its current spin. It is the unit of work
// mutated in place by the sampler and returned to callers.
type Assignment map[int]Spin

// Clone returns an independent copy of the assignment.
// Complexity: O(V).
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for v, s := range a {
		out[v] = s
	}

	return out
}

// Adjacency maps each node to its sorted neighbor list, derived from the
// coupling set (either stored direction). Every model node appears as a key,
// isolated nodes with an empty list.
type Adjacency map[int][]int

// Model is the in-memory Ising energy model.
//
// The bias map defines the node set: every key is a node. Couplings are
// stored keyed by ordered pair exactly as provided by the caller.
// Model is not safe for concurrent mutation; the sampler only reads it.
type Model struct {
	biases    map[int]float64
	couplings map[Pair]float64
}
