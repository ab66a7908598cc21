package model

import "sort"

// New creates an empty Model with no nodes and no couplings.
// Complexity: O(1).
func New() *Model {
	return &Model{
		biases:    make(map[int]float64),
		couplings: make(map[Pair]float64),
	}
}

// NewFromMaps creates a Model from caller-supplied bias and coupling maps.
// Both maps are copied; the caller keeps ownership of its arguments.
// Use Validate to check the result before sampling.
//
// Complexity: O(V + E).
func NewFromMaps(biases map[int]float64, couplings map[Pair]float64) *Model {
	m := &Model{
		biases:    make(map[int]float64, len(biases)),
		couplings: make(map[Pair]float64, len(couplings)),
	}
	for v, b := range biases {
		m.biases[v] = b
	}
	for p, w := range couplings {
		m.couplings[p] = w
	}

	return m
}

// SetBias sets the bias of node v, creating the node if it does not exist.
// Complexity: O(1).
func (m *Model) SetBias(v int, bias float64) {
	m.biases[v] = bias
}

// Bias returns the bias of node v and whether v exists in the model.
// Complexity: O(1).
func (m *Model) Bias(v int) (float64, bool) {
	b, ok := m.biases[v]

	return b, ok
}

// Has reports whether node v exists in the model.
// Complexity: O(1).
func (m *Model) Has(v int) bool {
	_, ok := m.biases[v]

	return ok
}

// SetCoupling stores the coupling weight for the ordered pair (u,v).
// Endpoints need not exist yet; Validate checks them against the bias map.
// Returns ErrSelfCoupling when u == v.
//
// Complexity: O(1).
func (m *Model) SetCoupling(u, v int, weight float64) error {
	if u == v {
		return ErrSelfCoupling
	}
	m.couplings[Pair{U: u, V: v}] = weight

	return nil
}

// CouplingWeight returns the undirected interaction weight between u and v,
// looked up in whichever stored direction is present, 0 when absent in both.
// If both directions were populated their weights accumulate.
//
// Complexity: O(1).
func (m *Model) CouplingWeight(u, v int) float64 {
	var w float64
	if x, ok := m.couplings[Pair{U: u, V: v}]; ok {
		w += x
	}
	if x, ok := m.couplings[Pair{U: v, V: u}]; ok {
		w += x
	}

	return w
}

// NumNodes returns the number of nodes (bias entries).
func (m *Model) NumNodes() int { return len(m.biases) }

// NumCouplings returns the number of stored coupling entries.
func (m *Model) NumCouplings() int { return len(m.couplings) }

// Nodes returns all node IDs in ascending order.
// Complexity: O(V log V).
func (m *Model) Nodes() []int {
	out := make([]int, 0, len(m.biases))
	for v := range m.biases {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// Pairs returns all stored coupling keys sorted by (U, V).
// Complexity: O(E log E).
func (m *Model) Pairs() []Pair {
	out := make([]Pair, 0, len(m.couplings))
	for p := range m.couplings {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// Adjacency derives the neighbor view from the coupling set. Every model
// node appears as a key; neighbor lists are sorted ascending and free of
// duplicates even when both directions of a pair are populated.
//
// Complexity: O(V + E log E).
func (m *Model) Adjacency() Adjacency {
	// Collect neighbor sets first; duplicates arise when both (u,v) and (v,u)
	// are stored, so a set is required before sorting.
	sets := make(map[int]map[int]struct{}, len(m.biases))
	for v := range m.biases {
		sets[v] = make(map[int]struct{})
	}
	for p := range m.couplings {
		if _, ok := sets[p.U]; !ok {
			sets[p.U] = make(map[int]struct{})
		}
		if _, ok := sets[p.V]; !ok {
			sets[p.V] = make(map[int]struct{})
		}
		sets[p.U][p.V] = struct{}{}
		sets[p.V][p.U] = struct{}{}
	}

	adj := make(Adjacency, len(sets))
	for v, nb := range sets {
		list := make([]int, 0, len(nb))
		for u := range nb {
			list = append(list, u)
		}
		sort.Ints(list)
		adj[v] = list
	}

	return adj
}

// Validate checks structural integrity of the model:
//   - every coupling endpoint must have a bias entry (ErrUnknownCouplingNode);
//   - no coupling may connect a node to itself (ErrSelfCoupling).
//
// It is side-effect free and deterministic. Complexity: O(E).
func (m *Model) Validate() error {
	for p := range m.couplings {
		if p.U == p.V {
			return ErrSelfCoupling
		}
		if _, ok := m.biases[p.U]; !ok {
			return ErrUnknownCouplingNode
		}
		if _, ok := m.biases[p.V]; !ok {
			return ErrUnknownCouplingNode
		}
	}

	return nil
}
