// Package anneal - the per-class Metropolis update kernel.
//
// Correctness of batching rests on the coloring invariant: nodes of one
// class share no coupling, so no update in the class can change another
// member's local field. Every member therefore reads the spins as they
// stood at the start of the class — with or without parallelism.
package anneal

import (
	"math"
	"sync"
)

// minParallelClass is the class size below which goroutine fan-out costs
// more than it saves; smaller classes always update sequentially.
const minParallelClass = 64

// updateClass runs one Metropolis pass over the free members of a color
// class at inverse temperature beta.
//
// Acceptance uniforms are pre-drawn from src in class order regardless of
// the execution mode, so the parallel path consumes the stream identically
// to the sequential one and produces the same spins.
//
// The draws scratch slice is returned (possibly regrown) for reuse.
//
// Complexity: O(Σ deg over the class).
func (st *state) updateClass(class []int, beta float64, src Source, workers int, draws []float64) []float64 {
	n := len(class)
	if n == 0 {
		return draws
	}

	draws = draws[:0]
	for k := 0; k < n; k++ {
		draws = append(draws, uniformOpen01(src))
	}

	if workers <= 1 || n < minParallelClass {
		st.flipRange(class, draws, 0, n, beta)

		return draws
	}

	// Contiguous chunks, one goroutine each. Members write only their own
	// spin slot and read neighbor slots no class member writes, so chunked
	// slice access is race-free.
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			st.flipRange(class, draws, lo, hi, beta)
		}(lo, hi)
	}
	wg.Wait()

	return draws
}

// flipRange applies the Metropolis acceptance rule to class[lo:hi].
//
// For member i with spin s, the energy delta of flipping is
//
//	ΔE = 2·s·bias(i) + 2·s·Σ_j w(i,j)·spin(j)
//
// and the flip is accepted iff log(U) < −β·ΔE. ΔE ≤ 0 accepts with
// certainty (log U < 0 ≤ −β·ΔE); ΔE = 0 needs no special-casing.
func (st *state) flipRange(class []int, draws []float64, lo, hi int, beta float64) {
	var (
		k     int
		i     int
		s     float64
		field float64
		dE    float64
		t     neighborTerm
	)
	for k = lo; k < hi; k++ {
		i = class[k]
		s = float64(st.spins[i])

		field = st.bias[i]
		for _, t = range st.rows[i] {
			field += t.w * float64(st.spins[t.j])
		}

		dE = 2 * s * field
		if math.Log(draws[k]) < -beta*dE {
			st.spins[i] = -st.spins[i]
		}
	}
}
