package lattice

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/ising/model"
)

// ErrBadDimension indicates a non-positive node count or grid side.
var ErrBadDimension = errors.New("lattice: dimensions must be positive")

// defaultSeed is the fixed “zero” seed used when callers pass seed==0,
// matching the seeding policy of the anneal package.
const defaultSeed int64 = 1

// Chain returns an open 1-D chain of n nodes (0..n−1) with uniform bias and
// nearest-neighbor coupling weight j.
//
// Complexity: O(n).
func Chain(n int, bias, j float64) (*model.Model, error) {
	if n <= 0 {
		return nil, ErrBadDimension
	}

	m := model.New()
	for v := 0; v < n; v++ {
		m.SetBias(v, bias)
	}
	for v := 0; v+1 < n; v++ {
		if err := m.SetCoupling(v, v+1, j); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Ring returns a closed 1-D chain: Chain(n, …) plus the wrap-around coupling
// (n−1, 0). Rings of fewer than 3 nodes degenerate (the wrap edge would
// duplicate or self-couple), so n must be ≥ 3.
//
// Complexity: O(n).
func Ring(n int, bias, j float64) (*model.Model, error) {
	if n < 3 {
		return nil, ErrBadDimension
	}

	m, err := Chain(n, bias, j)
	if err != nil {
		return nil, err
	}
	if err = m.SetCoupling(n-1, 0, j); err != nil {
		return nil, err
	}

	return m, nil
}

// Grid returns a rows×cols nearest-neighbor lattice. Node IDs are assigned
// row-major: node(r, c) = r·cols + c.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int, bias, j float64) (*model.Model, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadDimension
	}

	m := model.New()

	var r, c, v int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			m.SetBias(r*cols+c, bias)
		}
	}
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			v = r*cols + c
			if c+1 < cols {
				if err := m.SetCoupling(v, v+1, j); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := m.SetCoupling(v, v+cols, j); err != nil {
					return nil, err
				}
			}
		}
	}

	return m, nil
}

// Complete returns n nodes with a coupling of weight j between every pair —
// the topology of a fully connected Boltzmann machine.
//
// Complexity: O(n²).
func Complete(n int, bias, j float64) (*model.Model, error) {
	if n <= 0 {
		return nil, ErrBadDimension
	}

	m := model.New()

	var u, v int
	for v = 0; v < n; v++ {
		m.SetBias(v, bias)
	}
	for u = 0; u < n; u++ {
		for v = u + 1; v < n; v++ {
			if err := m.SetCoupling(u, v, j); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// RandomSpinGlass returns a complete topology over n nodes where every
// coupling is independently ±j with equal probability and every bias is
// zero — the classic frustrated disorder benchmark for annealers.
// All randomness derives from seed; seed==0 selects the default stream.
//
// Complexity: O(n²).
func RandomSpinGlass(n int, j float64, seed int64) (*model.Model, error) {
	if n <= 0 {
		return nil, ErrBadDimension
	}
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	m := model.New()

	var u, v int
	for v = 0; v < n; v++ {
		m.SetBias(v, 0)
	}
	for u = 0; u < n; u++ {
		for v = u + 1; v < n; v++ {
			w := j
			if rng.Intn(2) == 0 {
				w = -j
			}
			if err := m.SetCoupling(u, v, w); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
