// Package anneal - options, result type and sentinel errors.
//
// Every validation sentinel wraps ErrInvalidModel, so callers may match the
// whole family with errors.Is(err, anneal.ErrInvalidModel) or pin the exact
// cause with the specific sentinel.
package anneal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ising/coloring"
	"github.com/katalvlaran/ising/model"
)

// ErrInvalidModel is the umbrella sentinel for all input-validation
// failures. Detection is synchronous and happens before any sweep executes;
// a failed Sample never mutates or returns a partial assignment.
var ErrInvalidModel = errors.New("anneal: invalid model")

// Specific validation sentinels; each wraps ErrInvalidModel.
var (
	// ErrNilModel indicates a nil *model.Model was passed to Sample.
	ErrNilModel = fmt.Errorf("%w: model is nil", ErrInvalidModel)

	// ErrUnknownClampNode indicates a clamped node with no bias entry.
	ErrUnknownClampNode = fmt.Errorf("%w: clamped node not in model", ErrInvalidModel)

	// ErrBadClampSpin indicates a clamped value outside {-1,+1}.
	ErrBadClampSpin = fmt.Errorf("%w: clamped spin outside {-1,+1}", ErrInvalidModel)

	// ErrEmptySchedule indicates an empty cooling schedule.
	ErrEmptySchedule = fmt.Errorf("%w: cooling schedule is empty", ErrInvalidModel)

	// ErrBadBeta indicates a schedule entry that is not a positive finite real.
	ErrBadBeta = fmt.Errorf("%w: schedule entries must be positive finite", ErrInvalidModel)

	// ErrBadWorkers indicates a negative Workers option.
	ErrBadWorkers = fmt.Errorf("%w: Workers must be non-negative", ErrInvalidModel)

	// ErrBadMaxSweeps indicates a negative MaxSweeps option.
	ErrBadMaxSweeps = fmt.Errorf("%w: MaxSweeps must be non-negative", ErrInvalidModel)
)

// Options configures a Sample run. The zero value (and a nil *Options) is
// fully usable: greedy coloring, the fixed default random stream, sequential
// updates, full schedule.
//
//	– Strategy:  proper-coloring strategy; nil ⇒ coloring.Greedy{}.
//	– Rand:      random source for initialization and acceptance draws;
//	             nil ⇒ deterministic math/rand stream derived from Seed.
//	– Seed:      seed for the default stream; 0 ⇒ fixed default seed, so runs
//	             are reproducible out of the box. Ignored when Rand is set.
//	– Workers:   parallel goroutines for within-class updates; ≤1 ⇒ sequential.
//	             Output is bit-identical either way.
//	– MaxSweeps: soft cap on executed sweeps; 0 ⇒ run the full schedule.
//	             A capped run returns the current state as-is.
type Options struct {
	Strategy  coloring.Strategy // coloring backend (nil ⇒ Greedy)
	Rand      Source            // injected randomness (nil ⇒ seeded stream)
	Seed      int64             // seed for the default stream; 0 ⇒ default seed
	Workers   int               // within-class parallelism; ≤1 ⇒ sequential
	MaxSweeps int               // early-stop budget; 0 ⇒ unlimited
}

// DefaultOptions returns the canonical zero configuration. Provided for
// symmetry with the rest of the library; Sample(nil opts) behaves the same.
func DefaultOptions() Options {
	return Options{
		Strategy:  coloring.Greedy{},
		Rand:      nil,
		Seed:      0,
		Workers:   1,
		MaxSweeps: 0,
	}
}

// Result holds the outcome of a Sample run.
type Result struct {
	// Spins is the terminal assignment: every model node mapped to ±1.
	// Clamped nodes hold their clamped value. It approximates a low-energy
	// (high-probability) configuration, not an exact optimum.
	Spins model.Assignment

	// Energy is E(Spins) under the model's sign convention.
	Energy float64

	// Sweeps is the number of sweeps actually executed (< len(schedule)
	// only when MaxSweeps capped the run).
	Sweeps int

	// Colors is the number of color classes the strategy produced.
	Colors int
}
