package solver

import (
	"context"
	"testing"
	"time"

	"github.com/cepro/fleetoptimizer/milp"
)

func TestSolve_SimpleKnapsackPicksBestBinary(t *testing.T) {
	m := milp.NewModel()
	x := m.AddVar("x", 0, 1, milp.Binary)
	y := m.AddVar("y", 0, 1, milp.Binary)
	// At most one of x, y may be chosen.
	m.AddLeq("at_most_one", map[int]float64{x: 1, y: 1}, 1)
	// Maximize 2x + 3y  <=>  minimize -2x - 3y; y is the better pick.
	m.AddObjTerm(x, -2)
	m.AddObjTerm(y, -3)

	h := NewHarness()
	sol, err := h.Solve(context.Background(), m, Options{TimeLimit: 5 * time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sol.Status != StatusOptimal {
		t.Fatalf("expected StatusOptimal, got %v", sol.Status)
	}
	if sol.X[y] < 0.5 {
		t.Fatalf("expected y to be selected (better unit value), got x=%v y=%v", sol.X[x], sol.X[y])
	}
	if sol.X[x] > 0.5 {
		t.Fatalf("expected x to be left unselected, got x=%v", sol.X[x])
	}
}

func TestSolve_InfeasibleModelReturnsError(t *testing.T) {
	m := milp.NewModel()
	x := m.AddVar("x", 5, 10, milp.Continuous)
	m.AddEq("impossible", map[int]float64{x: 1}, 1) // x must be 1, but lb is 5

	h := NewHarness()
	_, err := h.Solve(context.Background(), m, Options{TimeLimit: time.Second})
	if err == nil {
		t.Fatal("expected an error for an infeasible model")
	}
}

func TestMostFractional_PicksFurthestFromInteger(t *testing.T) {
	m := milp.NewModel()
	a := m.AddVar("a", 0, 1, milp.Binary)
	b := m.AddVar("b", 0, 1, milp.Binary)
	bb := newBranchAndBound(m, &stdForm{}, Options{Tol: 1e-7})

	x := make([]float64, 2)
	x[a] = 0.9
	x[b] = 0.5
	col, frac := bb.mostFractional(x)
	if col != b {
		t.Fatalf("expected column %d (0.5 is most fractional), got %d (frac=%v)", b, col, frac)
	}
}

func TestMostFractional_ReturnsNegativeOneWhenAllIntegral(t *testing.T) {
	m := milp.NewModel()
	a := m.AddVar("a", 0, 1, milp.Binary)
	bb := newBranchAndBound(m, &stdForm{}, Options{Tol: 1e-7})

	x := make([]float64, 1)
	x[a] = 1
	col, _ := bb.mostFractional(x)
	if col != -1 {
		t.Fatalf("expected -1 for an all-integral vector, got %d", col)
	}
}
