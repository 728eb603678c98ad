package milp

// VarKind distinguishes continuous decision variables from the binary
// indicators used to linearize exclusivity/session/assignment logic.
type VarKind int

const (
	Continuous VarKind = iota
	Binary
)

// varInfo describes one column of the model in its original (unshifted)
// variable space; the solver package is responsible for translating this
// into whatever standard form its LP relaxation needs.
type varInfo struct {
	Name string
	LB   float64
	UB   float64 // +Inf if unbounded above
	Kind VarKind
}

// Row is one linear constraint, expressed as a sparse map of column index
// to coefficient plus a right-hand side.
type Row struct {
	Name   string
	Coeffs map[int]float64
	RHS    float64
}

// Model is a solver-agnostic description of a MILP: its variables (C3),
// its constraint rows (C4), and its objective (C5). A Model does not know
// how to solve itself - that's the solver package's job (C6).
type Model struct {
	vars      []varInfo
	varByName map[string]int

	EqRows  []Row
	LeqRows []Row

	// Objective maps column index to its (minimize) cost coefficient.
	Objective map[int]float64
}

func NewModel() *Model {
	return &Model{
		varByName: make(map[string]int),
		Objective: make(map[int]float64),
	}
}

// AddVar declares a new column and returns its index. ub may be
// math.Inf(1) for an unbounded-above variable.
func (m *Model) AddVar(name string, lb, ub float64, kind VarKind) int {
	idx := len(m.vars)
	m.vars = append(m.vars, varInfo{Name: name, LB: lb, UB: ub, Kind: kind})
	m.varByName[name] = idx
	return idx
}

// NumVars returns the number of declared columns.
func (m *Model) NumVars() int { return len(m.vars) }

func (m *Model) VarName(idx int) string { return m.vars[idx].Name }
func (m *Model) VarBounds(idx int) (lb, ub float64) {
	v := m.vars[idx]
	return v.LB, v.UB
}
func (m *Model) VarKind(idx int) VarKind { return m.vars[idx].Kind }

// AddEq appends an equality row: Sum(coeffs[j]*x_j) = rhs.
func (m *Model) AddEq(name string, coeffs map[int]float64, rhs float64) {
	m.EqRows = append(m.EqRows, Row{Name: name, Coeffs: coeffs, RHS: rhs})
}

// AddLeq appends an inequality row: Sum(coeffs[j]*x_j) <= rhs.
func (m *Model) AddLeq(name string, coeffs map[int]float64, rhs float64) {
	m.LeqRows = append(m.LeqRows, Row{Name: name, Coeffs: coeffs, RHS: rhs})
}

// AddGeq appends Sum(coeffs[j]*x_j) >= rhs by negating into a Leq row.
func (m *Model) AddGeq(name string, coeffs map[int]float64, rhs float64) {
	negated := make(map[int]float64, len(coeffs))
	for j, c := range coeffs {
		negated[j] = -c
	}
	m.AddLeq(name, negated, -rhs)
}

// AddObjTerm accumulates a (minimize) cost coefficient onto column idx.
func (m *Model) AddObjTerm(idx int, coeff float64) {
	m.Objective[idx] += coeff
}
