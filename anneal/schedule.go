// Package anneal - cooling-schedule constructors.
//
// A schedule is just an ordered []float64 of inverse temperatures, one per
// sweep. Conventional simulated annealing increases β over time (cooling
// toward a ground state); sampling at finite temperature holds or even
// decreases it. The constructors support both directions and Sample treats
// the sequence as opaque.
package anneal

// LinearSchedule returns n β values interpolated linearly from `from` to
// `to`, both ends inclusive. `from` may be larger or smaller than `to`;
// n == 1 yields [from]. For n <= 0 the result is nil (Sample rejects empty
// schedules with ErrEmptySchedule).
//
// Complexity: O(n).
func LinearSchedule(from, to float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = from

		return out
	}

	step := (to - from) / float64(n-1)
	for i := 0; i < n; i++ {
		out[i] = from + float64(i)*step
	}
	// Pin the last entry to the exact target; accumulated FP steps may
	// otherwise land a few ulps off.
	out[n-1] = to

	return out
}

// ConstantSchedule returns n copies of beta — fixed-temperature Gibbs
// sampling rather than annealing. For n <= 0 the result is nil.
//
// Complexity: O(n).
func ConstantSchedule(beta float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = beta
	}

	return out
}

// GeometricSchedule returns n β values starting at `from`, each subsequent
// entry multiplied by `factor`. factor > 1 cools (β grows), factor < 1
// heats. For n <= 0 the result is nil.
//
// Complexity: O(n).
func GeometricSchedule(from, factor float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	b := from
	for i := 0; i < n; i++ {
		out[i] = b
		b *= factor
	}

	return out
}
