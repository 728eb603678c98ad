package milp

import (
	"math"
	"testing"
)

func TestModel_AddVarAndBounds(t *testing.T) {
	m := NewModel()
	idx := m.AddVar("x", 0, 5, Continuous)
	lb, ub := m.VarBounds(idx)
	if lb != 0 || ub != 5 {
		t.Fatalf("got bounds [%v, %v], want [0, 5]", lb, ub)
	}
	if m.VarKind(idx) != Continuous {
		t.Fatalf("expected Continuous kind")
	}
}

func TestModel_AddGeqNegatesIntoLeq(t *testing.T) {
	m := NewModel()
	x := m.AddVar("x", 0, math.Inf(1), Continuous)
	m.AddGeq("x_ge_3", map[int]float64{x: 1}, 3)
	if len(m.LeqRows) != 1 {
		t.Fatalf("expected 1 Leq row, got %d", len(m.LeqRows))
	}
	row := m.LeqRows[0]
	if row.Coeffs[x] != -1 || row.RHS != -3 {
		t.Fatalf("expected negated row {-1}x <= -3, got coeffs=%v rhs=%v", row.Coeffs, row.RHS)
	}
}

func TestModel_AddObjTermAccumulates(t *testing.T) {
	m := NewModel()
	x := m.AddVar("x", 0, 1, Continuous)
	m.AddObjTerm(x, 2)
	m.AddObjTerm(x, 3)
	if m.Objective[x] != 5 {
		t.Fatalf("expected accumulated objective coefficient 5, got %v", m.Objective[x])
	}
}
