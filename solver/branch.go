package solver

import (
	"context"
	"math"

	"github.com/cepro/fleetoptimizer/errs"
	"github.com/cepro/fleetoptimizer/milp"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// node is one entry on the branch-and-bound stack: a set of tightened
// variable bounds relative to the root model.
type node struct {
	ov bounds
}

type branchAndBound struct {
	model *milp.Model
	root  *stdForm
	opts  Options

	binaryCols []int

	best    Solution
	hasBest bool
}

func newBranchAndBound(m *milp.Model, root *stdForm, opts Options) *branchAndBound {
	var binaryCols []int
	for j := 0; j < m.NumVars(); j++ {
		if m.VarKind(j) == milp.Binary {
			binaryCols = append(binaryCols, j)
		}
	}
	return &branchAndBound{model: m, root: root, opts: opts, binaryCols: binaryCols}
}

func (bb *branchAndBound) run(ctx context.Context) (Solution, error) {
	stack := []node{{ov: bounds{}}}
	nodesExplored := 0

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return bb.finish(StatusTimeout), nil
		default:
		}

		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodesExplored++

		std, err := translateWithBounds(bb.model, n.ov)
		if err != nil {
			continue // node cannot be expressed in standard form; prune
		}

		_, x, err := lp.Simplex(std.c, std.a, std.b, bb.opts.Tol, nil)
		if err != nil {
			continue // infeasible or unbounded relaxation at this node; prune
		}

		// Evaluate the objective in original variable space, which re-adds
		// the constant dropped by the lower-bound shift of this node.
		orig := std.x(x)
		objVal := 0.0
		for j, coeff := range bb.model.Objective {
			objVal += coeff * orig[j]
		}

		if bb.hasBest && objVal >= bb.best.Objective-1e-12 {
			continue // relaxation bound already worse than incumbent; prune
		}

		fracCol, frac := bb.mostFractional(orig)
		if fracCol < 0 {
			// Integer-feasible: a candidate incumbent.
			sol := Solution{Status: StatusOptimal, X: orig, Objective: objVal, Nodes: nodesExplored}
			if !bb.hasBest || objVal < bb.best.Objective {
				bb.best = sol
				bb.hasBest = true
			}
			if bb.withinGap() {
				return bb.finish(StatusOptimal), nil
			}
			continue
		}
		_ = frac

		lb, ub := n.ov.of(bb.model, fracCol)
		downOv := cloneBounds(n.ov)
		downOv[fracCol] = [2]float64{lb, math.Floor(orig[fracCol])}
		upOv := cloneBounds(n.ov)
		upOv[fracCol] = [2]float64{math.Ceil(orig[fracCol]), ub}

		stack = append(stack, node{ov: downOv}, node{ov: upOv})
	}

	if !bb.hasBest {
		return Solution{Status: StatusInfeasible}, errs.Solve(errs.Infeasible, "no integer-feasible solution found")
	}
	return bb.finish(StatusOptimal), nil
}

func (bb *branchAndBound) finish(fallback Status) Solution {
	if !bb.hasBest {
		return Solution{Status: StatusTimeout}
	}
	sol := bb.best
	if fallback == StatusTimeout {
		sol.Status = StatusTimeout
	}
	return sol
}

func (bb *branchAndBound) withinGap() bool {
	// No global best-bound is maintained across the open node list, so the
	// gap can never be shown to be closed: this always reports false and the
	// search runs until the tree is exhausted or the context ends.
	// Options.MIPGap is not consulted.
	return false
}

func (bb *branchAndBound) mostFractional(x []float64) (col int, frac float64) {
	col = -1
	best := bb.opts.Tol
	for _, j := range bb.binaryCols {
		v := x[j]
		d := math.Abs(v - math.Round(v))
		if d > bb.opts.Tol && d > best {
			best = d
			col = j
			frac = d
		}
	}
	return col, frac
}

func cloneBounds(ov bounds) bounds {
	out := make(bounds, len(ov)+1)
	for k, v := range ov {
		out[k] = v
	}
	return out
}
