// Package solve is the thin facade wiring constructors and metaheuristics
// together (analogue of tsp's SolveWithMatrix dispatcher): pick an initial
// construction, optionally polish it with one metaheuristic, and return the
// resulting Solution.
package solve

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"

	"github.com/eser-chr/scdf-heuristics-core/anneal"
	"github.com/eser-chr/scdf-heuristics-core/construct"
	"github.com/eser-chr/scdf-heuristics-core/encoding"
	"github.com/eser-chr/scdf-heuristics-core/genetic"
	"github.com/eser-chr/scdf-heuristics-core/grasp"
	"github.com/eser-chr/scdf-heuristics-core/instance"
	"github.com/eser-chr/scdf-heuristics-core/lns"
	"github.com/eser-chr/scdf-heuristics-core/localsearch"
	"github.com/eser-chr/scdf-heuristics-core/solution"
)

// ErrUnsupportedConstruction is returned when Options.Construction selects
// an unrecognized constructor.
var ErrUnsupportedConstruction = errors.New("solve: unsupported construction algorithm")

// ErrUnsupportedMetaheuristic is returned when Options.Metaheuristic
// selects an unrecognized polishing strategy.
var ErrUnsupportedMetaheuristic = errors.New("solve: unsupported metaheuristic")

// ErrNoNeighborhoods is returned when a metaheuristic that needs a
// neighborhood pool (LS, VND, SA, GRASP's polish step) is run with none
// configured.
var ErrNoNeighborhoods = errors.New("solve: no neighborhoods configured")

// Construction selects the initial-solution builder spec §4.5 names.
type Construction int

const (
	// Deterministic runs construct.Deterministic.
	Deterministic Construction = iota
	// Randomized runs construct.Randomized.
	Randomized
	// BeamConstruction runs construct.Beam.
	BeamConstruction
	// GRASPConstruction runs construct.GRASPRandomized.
	GRASPConstruction
)

// Metaheuristic selects the optional polishing strategy spec §4.9–§4.13
// names. None skips polishing and returns the raw construction.
type Metaheuristic int

const (
	// None returns the constructed solution unpolished.
	None Metaheuristic = iota
	// LocalSearch polishes with localsearch.Run over Neighborhoods[0].
	LocalSearch
	// VND polishes with localsearch.RunVND over the full Neighborhoods list.
	VND
	// SimulatedAnnealing polishes with anneal.Run.
	SimulatedAnnealing
	// GRASPMetaheuristic discards the construction and runs grasp.Run,
	// which performs its own repeated construction internally.
	GRASPMetaheuristic
	// LargeNeighborhood polishes with lns.Run over an Encoding of the
	// construction.
	LargeNeighborhood
	// Genetic discards the construction and runs genetic.Run, which seeds
	// and evolves its own population internally.
	Genetic
)

// Options configures one end-to-end solve. Zero value is not meaningful;
// use DefaultOptions and override as needed.
type Options struct {
	Construction Construction
	Metaheuristic Metaheuristic

	// Lambda is the softmin sharpness used by Randomized construction.
	Lambda float64
	// A is the ordering-metric mixing parameter used by BeamConstruction,
	// GRASPConstruction and GRASPMetaheuristic.
	A float64
	// Alpha sizes the RCL used by GRASPConstruction and GRASPMetaheuristic.
	Alpha float64
	// BeamWidth sizes the beam search used by BeamConstruction, and the
	// Encoding decodes of LargeNeighborhood/Genetic whose own
	// DecodeBeamWidth is left at 0.
	BeamWidth int

	// Neighborhoods is the pool LocalSearch/VND/SimulatedAnnealing/
	// GRASPMetaheuristic's polish step draw from.
	Neighborhoods []localsearch.Factory

	LocalSearch localsearch.Options
	Anneal      anneal.Options
	GRASP       grasp.Options
	LNS         lns.Options
	Genetic     genetic.Options

	// Seed seeds every randomized component this facade drives directly
	// (construction). Sub-options carry their own Seed for their own
	// internals.
	Seed int64

	// Logger receives one line per solve milestone when non-nil. A nil
	// Logger makes Solve silent (spec §3.3 of SPEC_FULL.md).
	Logger *slog.Logger
}

// DefaultOptions returns deterministic construction with no polishing
// metaheuristic, beam width 5 for any Encoding decode a chosen metaheuristic
// performs, and the localsearch and grasp package defaults (GRASP's
// neighborhoods come from Options.Neighborhoods at Solve time).
func DefaultOptions() Options {
	return Options{
		Construction:  Deterministic,
		Metaheuristic: None,
		Lambda:        1.0,
		A:             0.5,
		Alpha:         0.3,
		BeamWidth:     5,
		LocalSearch:   localsearch.DefaultOptions(),
		GRASP:         grasp.DefaultOptions(nil),
		Seed:          0,
	}
}

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (o Options) log() *slog.Logger {
	if o.Logger == nil {
		return noopLogger
	}
	return o.Logger
}

func construction(inst *instance.Instance, opts Options, rng *rand.Rand) (*solution.Solution, error) {
	switch opts.Construction {
	case Deterministic:
		return construct.Deterministic(inst, rng)
	case Randomized:
		return construct.Randomized(inst, opts.Lambda, rng)
	case BeamConstruction:
		return construct.Beam(inst, opts.A, opts.BeamWidth)
	case GRASPConstruction:
		return construct.GRASPRandomized(inst, opts.A, opts.Alpha, rng)
	default:
		return nil, ErrUnsupportedConstruction
	}
}

// Solve builds an initial solution per opts.Construction and, unless
// opts.Metaheuristic is None, polishes it with the selected metaheuristic,
// logging one line per milestone to opts.Logger when non-nil.
func Solve(ctx context.Context, inst *instance.Instance, opts Options) (*solution.Solution, error) {
	logger := opts.log()
	rng := rand.New(rand.NewSource(opts.Seed))

	initial, err := construction(inst, opts, rng)
	if err != nil {
		logger.Error("construction failed", "error", err)
		return nil, err
	}
	f0, _ := initial.Objective(inst)
	logger.Info("constructed initial solution", "objective", f0)

	switch opts.Metaheuristic {
	case None:
		return initial, nil

	case LocalSearch:
		if len(opts.Neighborhoods) == 0 {
			return nil, ErrNoNeighborhoods
		}
		result, err := localsearch.Run(inst, initial, opts.Neighborhoods[0], opts.LocalSearch)
		if err != nil {
			return nil, err
		}
		logger.Info("local search finished", "run_id", result.RunID, "objective", result.Objective, "iterations", result.Iterations)
		return result.Solution, nil

	case VND:
		if len(opts.Neighborhoods) == 0 {
			return nil, ErrNoNeighborhoods
		}
		result, err := localsearch.RunVND(inst, initial, opts.Neighborhoods, opts.LocalSearch)
		if err != nil {
			return nil, err
		}
		logger.Info("VND finished", "run_id", result.RunID, "objective", result.Objective, "iterations", result.Iterations)
		return result.Solution, nil

	case SimulatedAnnealing:
		annealOpts := opts.Anneal
		if len(annealOpts.Neighborhoods) == 0 {
			annealOpts.Neighborhoods = opts.Neighborhoods
		}
		if len(annealOpts.Neighborhoods) == 0 {
			return nil, ErrNoNeighborhoods
		}
		result, err := anneal.Run(ctx, inst, initial, annealOpts)
		if err != nil {
			return nil, err
		}
		logger.Info("simulated annealing finished", "run_id", result.RunID, "objective", result.Objective, "iterations", result.Iterations)
		return result.Solution, nil

	case GRASPMetaheuristic:
		graspOpts := opts.GRASP
		if len(graspOpts.Neighborhoods) == 0 {
			graspOpts.Neighborhoods = opts.Neighborhoods
		}
		if len(graspOpts.Neighborhoods) == 0 {
			return nil, ErrNoNeighborhoods
		}
		result, err := grasp.Run(ctx, inst, graspOpts)
		if err != nil {
			return nil, err
		}
		logger.Info("GRASP finished", "run_id", result.RunID, "objective", result.Objective, "restarts", result.Restarts)
		return result.Solution, nil

	case LargeNeighborhood:
		enc := encoding.New(inst, initial)
		lnsOpts := opts.LNS
		if lnsOpts.DecodeBeamWidth == 0 {
			lnsOpts.DecodeBeamWidth = opts.BeamWidth
		}
		result, err := lns.Run(ctx, inst, enc, lnsOpts)
		if err != nil {
			return nil, err
		}
		logger.Info("large neighborhood search finished", "run_id", result.RunID, "objective", result.Objective, "iterations", result.Iterations)
		return result.Solution, nil

	case Genetic:
		geneticOpts := opts.Genetic
		if geneticOpts.DecodeBeamWidth == 0 {
			geneticOpts.DecodeBeamWidth = opts.BeamWidth
		}
		result, err := genetic.Run(ctx, inst, geneticOpts)
		if err != nil {
			return nil, err
		}
		logger.Info("genetic algorithm finished", "run_id", result.RunID, "objective", result.Objective, "generations", result.Generations)
		return result.Solution, nil

	default:
		return nil, ErrUnsupportedMetaheuristic
	}
}
