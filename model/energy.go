// Package model - energy and local-field observables.
//
// The library-wide sign convention is
//
//	E(s) = −Σ_v bias(v)·s(v) − Σ_{(u,v)} J(u,v)·s(u)·s(v)
//
// so that flipping spin v changes the energy by
//
//	ΔE = 2·s(v)·bias(v) + 2·s(v)·Σ_u J(v,u)·s(u) = 2·s(v)·LocalField(v).
//
// Positive couplings therefore favor aligned neighbors; positive biases
// favor s(v) = +1.
package model

// Energy evaluates E(s) for a full assignment.
//
// Errors:
//   - ErrMissingSpin when the assignment lacks a model node;
//   - ErrBadSpin when any supplied spin is outside {−1,+1};
//   - ErrUnknownCouplingNode via the coupling sum when the model is malformed
//     (call Validate first to fail fast with a precise sentinel).
//
// Complexity: O(V + E).
func (m *Model) Energy(spins Assignment) (float64, error) {
	var e float64

	var (
		v int
		b float64
		s Spin
		p Pair
		w float64
	)
	for v, b = range m.biases {
		s = spins[v]
		if !s.Valid() {
			if _, ok := spins[v]; !ok {
				return 0, ErrMissingSpin
			}

			return 0, ErrBadSpin
		}
		e -= b * float64(s)
	}
	for p, w = range m.couplings {
		su, okU := spins[p.U]
		sv, okV := spins[p.V]
		if !okU || !okV {
			return 0, ErrUnknownCouplingNode
		}
		e -= w * float64(su) * float64(sv)
	}

	return e, nil
}

// LocalField returns bias(v) + Σ_u J(v,u)·s(u) over the neighbors of v,
// the quantity whose product with 2·s(v) is the energy delta of flipping v.
// Neighbor spins absent from the assignment contribute 0, matching the
// contract that a non-edge contributes nothing.
//
// Errors: ErrUnknownNode if v has no bias entry.
//
// Complexity: O(deg v) given the adjacency row for v; O(E) when adj is nil
// and the coupling set must be scanned.
func (m *Model) LocalField(v int, spins Assignment, adj Adjacency) (float64, error) {
	b, ok := m.biases[v]
	if !ok {
		return 0, ErrUnknownNode
	}

	h := b
	if adj != nil {
		var u int
		for _, u = range adj[v] {
			if s, present := spins[u]; present {
				h += m.CouplingWeight(v, u) * float64(s)
			}
		}

		return h, nil
	}

	// No adjacency supplied: scan stored couplings for rows touching v.
	for p, w := range m.couplings {
		switch v {
		case p.U:
			if s, present := spins[p.V]; present {
				h += w * float64(s)
			}
		case p.V:
			if s, present := spins[p.U]; present {
				h += w * float64(s)
			}
		}
	}

	return h, nil
}
