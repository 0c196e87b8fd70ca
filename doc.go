// Package scdf is a solver for the Selective Pickup-and-Delivery Problem
// with Fairness (SPDPF): given a homogeneous capacitated fleet and a set of
// candidate pickup/delivery requests, select at least gamma of them and
// build one route per vehicle minimizing total distance plus a fairness
// penalty over per-vehicle route distances.
//
// The module is organized one concern per subpackage:
//
//	instance/    — problem definition, validation, sentinel errors
//	solution/    — route type, feasibility checks, cached totals
//	objective/   — distance/cargo/fairness metrics
//	cluster/     — balanced k-means used during construction
//	routebuild/  — beam and greedy route builders
//	encoding/    — boolean vehicle x request assignment matrix
//	construct/   — deterministic, randomized, beam and GRASP constructors
//	neighborhood/ — TwoOpt, IntraSwap, Relocate local moves
//	step/        — first/best-improvement and random move selection
//	stopping/    — iteration/objective/improvement stopping criteria
//	localsearch/ — Local Search and Variable Neighborhood Descent
//	anneal/      — Simulated Annealing
//	grasp/       — GRASP construct-and-polish restarts
//	lns/         — Large Neighborhood Search (ruin and recreate)
//	genetic/     — Genetic Algorithm over an Encoding population
//	solve/       — facade wiring constructors and metaheuristics together
//
// Randomized constructors and the clusterer take a caller-owned *rand.Rand,
// and the randomized metaheuristics take a Seed option; long-running metaheuristics
// accept a context.Context for cooperative cancellation between iterations.
// The core packages are pure — no logging, no I/O; optional diagnostic
// logging lives at the solve facade only.
package scdf
