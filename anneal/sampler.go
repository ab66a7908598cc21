// Package anneal - the clamped Gibbs/simulated-annealing sampler.
//
// This file builds the dense sampling state (index, bias and neighbor rows,
// color classes) and runs the sweep loop. The per-class update kernel lives
// in sweep.go.
//
// Design principles:
//   - Derive once, reuse everywhere: adjacency, coloring and neighbor rows
//     are computed before the first sweep and never again.
//   - Hot-path discipline: sweeps touch only dense slices; no map access and
//     no allocations inside the sweep loop.
//   - Strict sentinels: validation happens up front; the loop cannot fail.
package anneal

import (
	"github.com/katalvlaran/ising/coloring"
	"github.com/katalvlaran/ising/model"
)

// neighborTerm is one coupling term of a node's local field: the dense index
// of the neighbor and the undirected interaction weight.
type neighborTerm struct {
	j int     // dense index of the neighbor
	w float64 // coupling weight J(v, u)
}

// state is the dense, run-private form of one sampling request. Node IDs are
// mapped to dense indices so that spins live in a slice: same-class updates
// may then write distinct entries concurrently, which a map would not allow.
type state struct {
	nodes   []int            // dense index → node ID, ascending
	bias    []float64        // dense index → bias
	rows    [][]neighborTerm // dense index → local-field terms
	spins   []model.Spin     // dense index → current spin, mutated in place
	classes [][]int          // color → dense indices of NON-clamped members
	colors  int              // total color classes produced by the strategy
}

// newState derives the dense sampling state: index mapping, bias and
// neighbor rows, the proper coloring, and the per-class free-node lists.
// Clamped nodes keep their slot in spins but never appear in classes.
//
// Complexity: O(V log V + E log E) — dominated by adjacency derivation and
// the coloring strategy.
func newState(m *model.Model, clamped model.Assignment, strategy coloring.Strategy) *state {
	var (
		ids = m.Nodes()
		adj = m.Adjacency()
		n   = len(ids)
	)

	st := &state{
		nodes: ids,
		bias:  make([]float64, n),
		rows:  make([][]neighborTerm, n),
		spins: make([]model.Spin, n),
	}

	index := make(map[int]int, n)

	var (
		i int
		v int
	)
	for i, v = range ids {
		index[v] = i
		st.bias[i], _ = m.Bias(v)
	}
	for i, v = range ids {
		nb := adj[v]
		if len(nb) == 0 {
			continue
		}
		row := make([]neighborTerm, 0, len(nb))
		for _, u := range nb {
			row = append(row, neighborTerm{j: index[u], w: m.CouplingWeight(v, u)})
		}
		st.rows[i] = row
	}

	// Color classes over node IDs, then translate to dense indices and drop
	// clamped members: they are skipped for the lifetime of the run.
	classes := strategy.Color(coloring.Adjacency(adj))
	st.colors = len(classes)
	st.classes = make([][]int, 0, len(classes))

	var free []int
	for _, nodes := range classes {
		free = free[:0]
		for _, v = range nodes {
			if _, isClamped := clamped[v]; !isClamped {
				free = append(free, index[v])
			}
		}
		st.classes = append(st.classes, append([]int(nil), free...))
	}

	return st
}

// initSpins assigns the starting configuration: clamped nodes take their
// fixed value, free nodes draw uniformly from {−1,+1} in ascending node
// order (so a seeded source always initializes identically).
//
// Complexity: O(V).
func (st *state) initSpins(clamped model.Assignment, src Source) {
	var (
		i int
		v int
	)
	for i, v = range st.nodes {
		if s, ok := clamped[v]; ok {
			st.spins[i] = s

			continue
		}
		st.spins[i] = randomSpin(src)
	}
}

// assignment converts the dense spins back to the public map form.
// Complexity: O(V).
func (st *state) assignment() model.Assignment {
	out := make(model.Assignment, len(st.nodes))
	for i, v := range st.nodes {
		out[v] = st.spins[i]
	}

	return out
}

// Sample draws an approximate low-energy configuration of m, holding the
// clamped nodes fixed and executing one Metropolis sweep per schedule entry.
//
// Contracts:
//   - m must be non-nil and structurally valid;
//   - clamped may be nil or empty; every entry must name a model node and a
//     spin in {−1,+1};
//   - schedule must be non-empty with positive finite β entries, used in
//     order, one sweep each — the direction of the ramp is the caller's
//     choice;
//   - opts may be nil (defaults: greedy coloring, seeded default stream,
//     sequential updates, full schedule).
//
// The returned Result owns its Spins map; the inputs are never mutated.
// Sweep order is significant and never parallelized; only updates inside a
// single color class run concurrently when opts.Workers > 1, and that path
// is bit-identical to the sequential one.
//
// Errors: sentinels from types.go, all wrapping ErrInvalidModel; after
// validation the run is pure arithmetic and cannot fail.
//
// Complexity: O(V log V + E log E) setup + O(S·(V + E)) for S sweeps.
func Sample(m *model.Model, clamped model.Assignment, schedule []float64, opts *Options) (Result, error) {
	var o Options
	if opts != nil {
		o = *opts
	}

	if err := validateRequest(m, clamped, schedule, o); err != nil {
		return Result{}, err
	}

	strategy := o.Strategy
	if strategy == nil {
		strategy = coloring.Greedy{}
	}
	src := o.Rand
	if src == nil {
		src = rngFromSeed(o.Seed)
	}

	st := newState(m, clamped, strategy)
	st.initSpins(clamped, src)

	sweeps := len(schedule)
	if o.MaxSweeps > 0 && o.MaxSweeps < sweeps {
		sweeps = o.MaxSweeps
	}

	// Scratch for pre-drawn acceptance uniforms, reused across classes.
	var draws []float64

	var (
		s    int
		beta float64
		c    int
	)
	for s = 0; s < sweeps; s++ {
		beta = schedule[s]
		for c = range st.classes {
			draws = st.updateClass(st.classes[c], beta, src, o.Workers, draws)
		}
	}

	spins := st.assignment()
	energy, err := m.Energy(spins)
	if err != nil {
		// Unreachable after validateRequest; kept to honor the Energy contract.
		return Result{}, err
	}

	return Result{Spins: spins, Energy: energy, Sweeps: sweeps, Colors: st.colors}, nil
}
