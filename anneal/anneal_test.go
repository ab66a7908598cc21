// Package anneal_test contains unit tests for the clamped simulated
// annealing sampler. They validate fail-fast input checking, seeded
// determinism, clamp immutability, the Metropolis acceptance law on
// isolated nodes, parallel/sequential equivalence, and convergence on
// small ferromagnetic scenarios.
package anneal_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ising/anneal"
	"github.com/katalvlaran/ising/coloring"
	"github.com/katalvlaran/ising/lattice"
	"github.com/katalvlaran/ising/model"
)

// cycleSource is a scripted anneal.Source: it replays its float and int
// scripts cyclically, making every draw of a run predictable by hand.
type cycleSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (c *cycleSource) Float64() float64 {
	v := c.floats[c.fi%len(c.floats)]
	c.fi++

	return v
}

func (c *cycleSource) Intn(n int) int {
	v := c.ints[c.ii%len(c.ints)]
	c.ii++

	return v % n
}

// threeChain builds the 0—1—2 chain with zero biases and coupling j on both
// edges; positive j favors aligned spins.
func threeChain(t *testing.T, j float64) *model.Model {
	t.Helper()
	m := model.New()
	m.SetBias(0, 0)
	m.SetBias(1, 0)
	m.SetBias(2, 0)
	require.NoError(t, m.SetCoupling(0, 1, j))
	require.NoError(t, m.SetCoupling(1, 2, j))

	return m
}

// ------------------------------------------------------------------------
// 1. Validation: every malformed input fails fast with a sentinel wrapping
//    ErrInvalidModel, before any sweep runs.
// ------------------------------------------------------------------------

func TestSample_NilModel(t *testing.T) {
	_, err := anneal.Sample(nil, nil, anneal.ConstantSchedule(1, 1), nil)
	assert.ErrorIs(t, err, anneal.ErrNilModel)
	assert.ErrorIs(t, err, anneal.ErrInvalidModel)
}

func TestSample_DanglingCoupling(t *testing.T) {
	// Coupling (0,7) references node 7, which has no bias entry.
	m := model.New()
	m.SetBias(0, 0)
	require.NoError(t, m.SetCoupling(0, 7, 1))

	_, err := anneal.Sample(m, nil, anneal.ConstantSchedule(1, 1), nil)
	assert.ErrorIs(t, err, model.ErrUnknownCouplingNode)
	assert.ErrorIs(t, err, anneal.ErrInvalidModel)
}

func TestSample_EmptySchedule(t *testing.T) {
	m := threeChain(t, 1)

	_, err := anneal.Sample(m, nil, nil, nil)
	assert.ErrorIs(t, err, anneal.ErrEmptySchedule)
	assert.ErrorIs(t, err, anneal.ErrInvalidModel)
}

func TestSample_BadBeta(t *testing.T) {
	m := threeChain(t, 1)

	for _, sched := range [][]float64{{0}, {-1}, {math.Inf(1)}, {math.NaN()}, {1, 0.5, 0}} {
		_, err := anneal.Sample(m, nil, sched, nil)
		assert.ErrorIs(t, err, anneal.ErrBadBeta, "schedule %v must be rejected", sched)
	}
}

func TestSample_UnknownClampNode(t *testing.T) {
	m := threeChain(t, 1)

	_, err := anneal.Sample(m, model.Assignment{9: model.SpinUp}, anneal.ConstantSchedule(1, 1), nil)
	assert.ErrorIs(t, err, anneal.ErrUnknownClampNode)
}

func TestSample_BadClampSpin(t *testing.T) {
	m := threeChain(t, 1)

	_, err := anneal.Sample(m, model.Assignment{0: 0}, anneal.ConstantSchedule(1, 1), nil)
	assert.ErrorIs(t, err, anneal.ErrBadClampSpin)

	_, err = anneal.Sample(m, model.Assignment{0: 3}, anneal.ConstantSchedule(1, 1), nil)
	assert.ErrorIs(t, err, anneal.ErrBadClampSpin)
}

func TestSample_BadOptionBounds(t *testing.T) {
	m := threeChain(t, 1)
	sched := anneal.ConstantSchedule(1, 1)

	_, err := anneal.Sample(m, nil, sched, &anneal.Options{Workers: -1})
	assert.ErrorIs(t, err, anneal.ErrBadWorkers)

	_, err = anneal.Sample(m, nil, sched, &anneal.Options{MaxSweeps: -1})
	assert.ErrorIs(t, err, anneal.ErrBadMaxSweeps)
}

// ------------------------------------------------------------------------
// 2. Acceptance law on isolated nodes: flip-away from the low-energy spin
//    is rejected when log(U) ≥ −β·ΔE; flips with ΔE ≤ 0 are certain.
// ------------------------------------------------------------------------

func TestSample_IsolatedNode_RejectsUphillFlip(t *testing.T) {
	// Single node, bias = +10. Low-energy spin is +1 (E = −bias·s).
	// Init draws +1 (int script 1). Flipping has ΔE = 2·1·10 = +20, so at
	// β=1 a draw of U=0.9 (log ≈ −0.105 ≥ −20) must be rejected.
	m := model.New()
	m.SetBias(0, 10)

	src := &cycleSource{floats: []float64{0.9}, ints: []int{1}}
	res, err := anneal.Sample(m, nil, []float64{1}, &anneal.Options{Rand: src})
	require.NoError(t, err)
	assert.Equal(t, model.SpinUp, res.Spins[0], "uphill flip must be rejected for U near 1")
	assert.Equal(t, -10.0, res.Energy)
}

func TestSample_IsolatedNode_AcceptsDownhillFlip(t *testing.T) {
	// Same node, but initialized to −1 (int script 0). Flipping has
	// ΔE = 2·(−1)·10 = −20 ≤ 0: acceptance is certain for every U,
	// including U arbitrarily close to 1.
	m := model.New()
	m.SetBias(0, 10)

	src := &cycleSource{floats: []float64{0.999999}, ints: []int{0}}
	res, err := anneal.Sample(m, nil, []float64{1}, &anneal.Options{Rand: src})
	require.NoError(t, err)
	assert.Equal(t, model.SpinUp, res.Spins[0], "downhill flip must be certain")
}

func TestSample_IsolatedNode_UphillAcceptedForTinyU(t *testing.T) {
	// A draw with log(U) < −β·ΔE must accept even uphill:
	// U = e^{−25} < e^{−20} at β=1, ΔE=+20.
	m := model.New()
	m.SetBias(0, 10)

	src := &cycleSource{floats: []float64{math.Exp(-25)}, ints: []int{1}}
	res, err := anneal.Sample(m, nil, []float64{1}, &anneal.Options{Rand: src})
	require.NoError(t, err)
	assert.Equal(t, model.SpinDown, res.Spins[0], "sufficiently small U must accept the uphill flip")
}

func TestSample_ZeroDelta_AlwaysFlips(t *testing.T) {
	// Zero bias, no couplings: ΔE = 0 for any flip, and log(U) < 0 holds
	// for every U in (0,1), so each sweep flips the spin.
	m := model.New()
	m.SetBias(0, 0)

	src := &cycleSource{floats: []float64{0.5}, ints: []int{1}}
	res, err := anneal.Sample(m, nil, anneal.ConstantSchedule(1, 2), &anneal.Options{Rand: src})
	require.NoError(t, err)
	// Up → down → up over two sweeps.
	assert.Equal(t, model.SpinUp, res.Spins[0])
	assert.Equal(t, 2, res.Sweeps)
}

// ------------------------------------------------------------------------
// 3. Determinism: a fixed seed reproduces the exact assignment; the zero
//    seed is itself a fixed stream.
// ------------------------------------------------------------------------

func TestSample_SeededDeterminism(t *testing.T) {
	m, err := lattice.RandomSpinGlass(12, 1, 42)
	require.NoError(t, err)

	sched := anneal.LinearSchedule(0.1, 2, 60)

	a, err := anneal.Sample(m, nil, sched, &anneal.Options{Seed: 7})
	require.NoError(t, err)
	b, err := anneal.Sample(m, nil, sched, &anneal.Options{Seed: 7})
	require.NoError(t, err)

	assert.Equal(t, a.Spins, b.Spins, "identical inputs and seed must reproduce the assignment")
	assert.Equal(t, a.Energy, b.Energy)
}

func TestSample_ZeroSeedIsStable(t *testing.T) {
	m, err := lattice.Grid(4, 4, 0.1, 1)
	require.NoError(t, err)

	sched := anneal.ConstantSchedule(0.5, 20)

	a, err := anneal.Sample(m, nil, sched, nil)
	require.NoError(t, err)
	b, err := anneal.Sample(m, nil, sched, &anneal.Options{Seed: 0})
	require.NoError(t, err)

	assert.Equal(t, a.Spins, b.Spins, "nil options and Seed=0 share the default stream")
}

// ------------------------------------------------------------------------
// 4. Clamping: clamped nodes hold their value for every schedule, strategy
//    and seed; free nodes still cover the whole model.
// ------------------------------------------------------------------------

func TestSample_ClampedSpinsNeverChange(t *testing.T) {
	m, err := lattice.Grid(5, 5, 0, 1)
	require.NoError(t, err)

	clamped := model.Assignment{0: model.SpinDown, 12: model.SpinUp, 24: model.SpinDown}

	for _, seed := range []int64{1, 2, 3, 99} {
		res, serr := anneal.Sample(m, clamped, anneal.LinearSchedule(2, 0.1, 40), &anneal.Options{Seed: seed})
		require.NoError(t, serr)

		for v, want := range clamped {
			assert.Equal(t, want, res.Spins[v], "clamped node %d drifted (seed %d)", v, seed)
		}
		assert.Len(t, res.Spins, m.NumNodes(), "every node must be assigned")
	}
}

func TestSample_AllNodesClamped(t *testing.T) {
	// Fully clamped model: no free node, so the result is the clamp itself
	// and no random draw can alter it.
	m := threeChain(t, 5)
	clamped := model.Assignment{0: model.SpinUp, 1: model.SpinDown, 2: model.SpinUp}

	res, err := anneal.Sample(m, clamped, anneal.ConstantSchedule(1, 10), nil)
	require.NoError(t, err)
	assert.Equal(t, clamped, res.Spins)
}

// ------------------------------------------------------------------------
// 5. Scenarios: small models whose minimum-energy configuration the sampler
//    must find under a cooling (β-increasing) ramp.
// ------------------------------------------------------------------------

func TestSample_FerromagneticChain_ClampPropagates(t *testing.T) {
	// 0—1—2 with strong positive (aligned-favoring) couplings and node 0
	// clamped down. Every misaligned state reaches all-down through
	// ΔE ≤ 0 flips, which are certain; escaping costs ΔE = +10 or +20,
	// which the high-β tail of the ramp suppresses to e^{−30} and below.
	m := threeChain(t, 5)
	clamped := model.Assignment{0: model.SpinDown}
	sched := anneal.LinearSchedule(0.2, 3, 1000)

	want := model.Assignment{0: model.SpinDown, 1: model.SpinDown, 2: model.SpinDown}
	for _, seed := range []int64{1, 2, 3, 4, 5} {
		res, err := anneal.Sample(m, clamped, sched, &anneal.Options{Seed: seed})
		require.NoError(t, err)
		assert.Equal(t, want, res.Spins, "seed %d did not reach the aligned ground state", seed)

		e, eerr := m.Energy(res.Spins)
		require.NoError(t, eerr)
		assert.Equal(t, e, res.Energy)
		assert.Equal(t, -10.0, res.Energy, "ground-state energy of the clamped chain")
	}
}

func TestSample_AntiferromagneticChain_Alternates(t *testing.T) {
	// Negative couplings favor anti-aligned neighbors: with node 0 clamped
	// down the ground state alternates −1, +1, −1.
	m := threeChain(t, -5)
	clamped := model.Assignment{0: model.SpinDown}
	sched := anneal.LinearSchedule(0.2, 3, 1000)

	want := model.Assignment{0: model.SpinDown, 1: model.SpinUp, 2: model.SpinDown}
	for _, seed := range []int64{1, 2, 3} {
		res, err := anneal.Sample(m, clamped, sched, &anneal.Options{Seed: seed})
		require.NoError(t, err)
		assert.Equal(t, want, res.Spins, "seed %d did not reach the alternating ground state", seed)
	}
}

func TestSample_BiasOnly_FollowsBiasSign(t *testing.T) {
	// No couplings: each node relaxes independently toward sign(bias).
	m := model.New()
	m.SetBias(0, 4)
	m.SetBias(1, -4)
	m.SetBias(2, 4)

	res, err := anneal.Sample(m, nil, anneal.LinearSchedule(0.5, 4, 400), &anneal.Options{Seed: 11})
	require.NoError(t, err)
	assert.Equal(t, model.SpinUp, res.Spins[0])
	assert.Equal(t, model.SpinDown, res.Spins[1])
	assert.Equal(t, model.SpinUp, res.Spins[2])
}

// ------------------------------------------------------------------------
// 6. Parallel path: Workers > 1 must be bit-identical to the sequential
//    run, because acceptance draws are pre-drawn in class order.
// ------------------------------------------------------------------------

func TestSample_ParallelMatchesSequential(t *testing.T) {
	// A 16×16 grid colors into two large classes, well above the parallel
	// threshold, so Workers=4 actually exercises the chunked path.
	m, err := lattice.Grid(16, 16, 0, 1)
	require.NoError(t, err)

	sched := anneal.LinearSchedule(0.1, 1.5, 30)

	seq, err := anneal.Sample(m, nil, sched, &anneal.Options{Seed: 5, Workers: 1})
	require.NoError(t, err)
	par, err := anneal.Sample(m, nil, sched, &anneal.Options{Seed: 5, Workers: 4})
	require.NoError(t, err)

	assert.Equal(t, seq.Spins, par.Spins, "parallel updates must reproduce the sequential spins")
	assert.Equal(t, seq.Energy, par.Energy)
}

// ------------------------------------------------------------------------
// 7. Budgets, strategies and result metadata.
// ------------------------------------------------------------------------

func TestSample_MaxSweepsCapsRun(t *testing.T) {
	m := threeChain(t, 1)

	res, err := anneal.Sample(m, nil, anneal.ConstantSchedule(1, 100), &anneal.Options{MaxSweeps: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, res.Sweeps, "MaxSweeps must cap the executed sweeps")

	res, err = anneal.Sample(m, nil, anneal.ConstantSchedule(1, 3), &anneal.Options{MaxSweeps: 50})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Sweeps, "a cap beyond the schedule has no effect")
}

func TestSample_StrategySwap(t *testing.T) {
	// Both bundled strategies must yield valid results; the chain needs
	// exactly two colors either way.
	m := threeChain(t, 1)
	sched := anneal.ConstantSchedule(1, 5)

	for name, st := range map[string]coloring.Strategy{
		"greedy": coloring.Greedy{},
		"degree": coloring.DegreeOrdered{},
	} {
		res, err := anneal.Sample(m, nil, sched, &anneal.Options{Strategy: st})
		require.NoError(t, err, name)
		assert.Equal(t, 2, res.Colors, "chain 0—1—2 is 2-colorable (%s)", name)
		assert.Len(t, res.Spins, 3, name)
	}
}

func TestSample_InputsNotMutated(t *testing.T) {
	m := threeChain(t, 5)
	clamped := model.Assignment{0: model.SpinDown}

	_, err := anneal.Sample(m, clamped, anneal.ConstantSchedule(1, 10), nil)
	require.NoError(t, err)

	assert.Equal(t, model.Assignment{0: model.SpinDown}, clamped, "clamp map must stay untouched")
	assert.Equal(t, 3, m.NumNodes())
	assert.Equal(t, 2, m.NumCouplings())
}

func TestSample_FailedRunReturnsZeroResult(t *testing.T) {
	m := threeChain(t, 1)

	res, err := anneal.Sample(m, nil, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, anneal.ErrInvalidModel))
	assert.Nil(t, res.Spins, "a failed run must not return a partial assignment")
	assert.Zero(t, res.Sweeps)
}
