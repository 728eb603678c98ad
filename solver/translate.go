package solver

import (
	"fmt"

	"github.com/cepro/fleetoptimizer/milp"
	"gonum.org/v1/gonum/mat"
)

// bounds overrides a variable's [lb, ub] for one branch-and-bound node
// without mutating the shared milp.Model.
type bounds map[int][2]float64

func (b bounds) of(m *milp.Model, j int) (lb, ub float64) {
	if ov, ok := b[j]; ok {
		return ov[0], ov[1]
	}
	return m.VarBounds(j)
}

// stdForm is a Model translated into gonum/lp's required standard form:
// minimize c^T x subject to A x = b, x >= 0. Every original variable is
// shifted by its lower bound; every finite upper bound and every
// inequality row contributes one non-negative slack column.
type stdForm struct {
	c []float64
	a *mat.Dense
	b []float64

	// shift[j] is the lower bound that was subtracted from original
	// variable j to produce its standard-form column origToStd[j].
	shift    []float64
	origToStd []int
	numOrig  int
}

// x maps a standard-form solution vector back to original variable space.
func (s *stdForm) x(std []float64) []float64 {
	out := make([]float64, s.numOrig)
	for j := 0; j < s.numOrig; j++ {
		out[j] = std[s.origToStd[j]] + s.shift[j]
	}
	return out
}

// translate builds the root relaxation's standard form. bb nodes call
// translateWithBounds directly to re-derive a tightened standard form per
// node rather than mutating this one.
func translate(m *milp.Model) (*stdForm, error) {
	return translateWithBounds(m, nil)
}

func translateWithBounds(m *milp.Model, ov bounds) (*stdForm, error) {
	n := m.NumVars()
	shift := make([]float64, n)
	origToStd := make([]int, n)

	type upperRow struct {
		origCol int
		width   float64
	}
	var upperRows []upperRow

	numStdCols := n
	for j := 0; j < n; j++ {
		lb, ub := ov.of(m, j)
		if lb < 0 && !isInf(lb) {
			// A finite negative lower bound still shifts cleanly; only an
			// unbounded-below column (-Inf) cannot be expressed in
			// shift-by-lb form.
		}
		if isInf(lb) && lb < 0 {
			return nil, fmt.Errorf("variable %q is unbounded below, which standard-form LP cannot represent directly", m.VarName(j))
		}
		shift[j] = lb
		origToStd[j] = j

		if !isInf(ub) {
			upperRows = append(upperRows, upperRow{origCol: j, width: ub - lb})
		}
	}

	numSlackForUpper := len(upperRows)
	numSlackForLeq := len(m.LeqRows)
	totalCols := numStdCols + numSlackForUpper + numSlackForLeq

	rows := len(m.EqRows) + numSlackForUpper + numSlackForLeq
	a := mat.NewDense(rows, totalCols, nil)
	b := make([]float64, rows)

	row := 0
	for _, r := range m.EqRows {
		rhs := r.RHS
		for j, coeff := range r.Coeffs {
			lb, _ := ov.of(m, j)
			a.Set(row, origToStd[j], coeff)
			rhs -= coeff * lb
		}
		b[row] = rhs
		row++
	}

	slackCol := numStdCols
	for _, ur := range upperRows {
		a.Set(row, ur.origCol, 1)
		a.Set(row, slackCol, 1)
		b[row] = ur.width
		slackCol++
		row++
	}

	for _, r := range m.LeqRows {
		rhs := r.RHS
		for j, coeff := range r.Coeffs {
			lb, _ := ov.of(m, j)
			a.Set(row, origToStd[j], coeff)
			rhs -= coeff * lb
		}
		a.Set(row, slackCol, 1)
		b[row] = rhs
		slackCol++
		row++
	}

	c := make([]float64, totalCols)
	for j, coeff := range m.Objective {
		lb, _ := ov.of(m, j)
		c[origToStd[j]] += coeff
		// Shifting x_j = lb + x'_j adds a constant coeff*lb to the
		// objective; constants don't affect the argmin so they're dropped
		// here and re-added by the caller if reporting absolute cost.
		_ = lb
	}

	// A row whose RHS is negative after shifting is multiplied through by
	// -1 so that b >= 0; this leaves the row's solution set unchanged.
	for i, bVal := range b {
		if bVal < 0 {
			for j := 0; j < totalCols; j++ {
				a.Set(i, j, -a.At(i, j))
			}
			b[i] = -bVal
		}
	}

	return &stdForm{
		c:         c,
		a:         a,
		b:         b,
		shift:     shift,
		origToStd: origToStd,
		numOrig:   n,
	}, nil
}

func isInf(f float64) bool {
	return f > 1e300 || f < -1e300
}
