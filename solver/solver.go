// Package solver turns a milp.Model into a solution, relaxing the integer
// program to a sequence of LP relaxations solved by gonum's simplex
// implementation and branching on fractional binaries until the search tree
// is exhausted or the time budget runs out (SPEC_FULL.md §4.5 / §4.6A). No pack repo ships an MILP
// solver directly, so this package is original engineering grounded only
// on gonum's LP relaxation primitive; the branch-and-bound search and the
// standard-form translation are this package's own contribution.
package solver

import (
	"context"
	"time"

	"github.com/cepro/fleetoptimizer/errs"
	"github.com/cepro/fleetoptimizer/milp"
)

// Status classifies the outcome of a Solve call.
type Status int

const (
	StatusOptimal Status = iota
	StatusFeasible
	StatusInfeasible
	StatusUnbounded
	StatusTimeout
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Solution is the result of solving one Model: the value of every column in
// the model's original variable order, the objective value, and the search
// status.
type Solution struct {
	Status    Status
	X         []float64
	Objective float64
	Nodes     int
	Gap       float64
}

// Options configures the branch-and-bound search.
type Options struct {
	// TimeLimit bounds wall-clock search time; the best incumbent found so
	// far is returned with StatusTimeout if the limit is hit before the
	// search tree is exhausted. Defaults to 60s.
	TimeLimit time.Duration

	// MIPGap is the relative optimality-gap tolerance. Defaults to 1e-4.
	// The branch-and-bound search does not read it: it keeps no global
	// best-bound, so it never stops early on gap closure.
	MIPGap float64

	// Tol is the feasibility/integrality tolerance passed to the simplex
	// solver and used to decide whether a binary value is "integral
	// enough". Defaults to 1e-7.
	Tol float64
}

func (o Options) withDefaults() Options {
	if o.TimeLimit <= 0 {
		o.TimeLimit = 60 * time.Second
	}
	if o.MIPGap <= 0 {
		o.MIPGap = 1e-4
	}
	if o.Tol <= 0 {
		o.Tol = 1e-7
	}
	return o
}

// CancelToken lets a caller abort an in-progress Solve, wrapping a plain
// context.CancelFunc so callers never need to import context themselves to
// hold onto it.
type CancelToken struct {
	cancel context.CancelFunc
}

func (c CancelToken) Cancel() {
	if c.cancel != nil {
		c.cancel()
	}
}

// Harness runs Solve calls; it holds no state between calls and is safe to
// reuse (but not to call concurrently on overlapping Solve invocations,
// mirroring FleetOptimizer's own single-call-at-a-time contract).
type Harness struct{}

// NewHarness returns a ready-to-use Harness.
func NewHarness() *Harness { return &Harness{} }

// Solve runs branch-and-bound on m until the search tree is exhausted, the
// context is cancelled, or TimeLimit elapses. It always returns the best
// incumbent found, even under StatusTimeout; a timeout before any
// integer-feasible solution returns a Solution with no X.
func (h *Harness) Solve(ctx context.Context, m *milp.Model, opts Options) (Solution, error) {
	opts = opts.withDefaults()

	ctx, cancel := context.WithTimeout(ctx, opts.TimeLimit)
	defer cancel()

	std, err := translate(m)
	if err != nil {
		return Solution{}, errs.Internalf("failed to translate model to standard form: %v", err)
	}

	search := newBranchAndBound(m, std, opts)
	sol, err := search.run(ctx)
	if err != nil {
		return Solution{}, err
	}
	return sol, nil
}
