// Package anneal - validation utilities for Sample.
//
// All input-validation failures are detected here, synchronously, before any
// sweep executes. A failed request never mutates any state and never returns
// a partial assignment.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinels from types.go
//     (every one of them wrapping ErrInvalidModel).
//   - O(V log V + E) worst case; no hidden allocations beyond the sorted
//     clamp-key scan.
package anneal

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ising/model"
)

// validateRequest verifies the model, the clamped set, the schedule and the
// option fields, in that order.
//
// Contract:
//   - m non-nil and structurally valid (couplings reference known nodes);
//   - every clamped node exists in m and carries a spin in {−1,+1};
//   - schedule non-empty, every entry a positive finite real;
//   - Workers and MaxSweeps non-negative.
//
// Complexity: O(E + C log C + S) where C = len(clamped), S = len(schedule).
func validateRequest(m *model.Model, clamped model.Assignment, schedule []float64, opts Options) error {
	// Stage 1: model shape.
	if m == nil {
		return ErrNilModel
	}
	if err := m.Validate(); err != nil {
		// Surface the precise model sentinel while keeping the umbrella
		// matchable: errors.Is(err, ErrInvalidModel) holds for the result.
		return fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	// Stage 2: clamped set, scanned in sorted node order so the reported
	// sentinel does not depend on map iteration order.
	if len(clamped) > 0 {
		keys := make([]int, 0, len(clamped))
		for v := range clamped {
			keys = append(keys, v)
		}
		sort.Ints(keys)

		var v int
		for _, v = range keys {
			if !m.Has(v) {
				return ErrUnknownClampNode
			}
			if !clamped[v].Valid() {
				return ErrBadClampSpin
			}
		}
	}

	// Stage 3: schedule.
	if len(schedule) == 0 {
		return ErrEmptySchedule
	}
	for _, b := range schedule {
		if !(b > 0) || math.IsInf(b, +1) || math.IsNaN(b) {
			return ErrBadBeta
		}
	}

	// Stage 4: option bounds.
	if opts.Workers < 0 {
		return ErrBadWorkers
	}
	if opts.MaxSweeps < 0 {
		return ErrBadMaxSweeps
	}

	return nil
}
