// Package anneal samples low-energy configurations of an Ising model with
// clamped, color-batched Metropolis/Gibbs updates over a caller-supplied
// cooling schedule.
//
// 🚀 How does it work?
//
//	One sweep per schedule entry β, executed strictly in order. Within a
//	sweep, color classes are visited in ascending color index; within a
//	class every non-clamped node computes the energy delta of flipping,
//
//	    ΔE = 2·s(v)·bias(v) + 2·s(v)·Σ_u J(v,u)·s(u),
//
//	and flips iff log(U) < −β·ΔE for a fresh uniform U ∈ (0,1). Because
//	same-color nodes are never adjacent, all updates of one class read a
//	consistent snapshot and may run in any order — or in parallel.
//
// ✨ Key features:
//   - clamping: fixed-spin nodes are set once and never updated, turning
//     annealing into conditional (clamped) inference
//   - pluggable coloring.Strategy and random Source; seed==0 means a fixed
//     default stream, so results are reproducible by default
//   - Workers>1 parallelizes within-class updates with bit-identical output
//     to the sequential path (acceptance draws are pre-drawn in class order)
//   - MaxSweeps soft cap: an early stop returns the current state, a valid
//     if less converged answer
//   - fail-fast validation: every malformed input is rejected with a
//     sentinel wrapping ErrInvalidModel before any sweep runs
//
// ⚙️ Usage:
//
//	m := model.New()
//	m.SetBias(0, 0)
//	m.SetBias(1, 0)
//	_ = m.SetCoupling(0, 1, 5) // strong ferromagnetic pair
//
//	res, err := anneal.Sample(m,
//	  model.Assignment{0: model.SpinDown},      // clamp node 0
//	  anneal.LinearSchedule(1.0, 0.05, 1000),   // β ramp, direction is yours
//	  nil,                                      // default options
//	)
//	// res.Spins[1] == model.SpinDown with overwhelming probability
//
// The schedule is an arbitrary positive-β sequence: increase β to anneal
// toward a ground state, hold or decrease it to sample at finite temperature.
// The package deliberately does not impose a direction.
//
// Complexity per sweep: O(V + Σ deg); setup (adjacency, coloring, dense
// rows): O(V log V + E log E), done once and reused across all sweeps.
package anneal
