// Package results projects a solved milp.Model back into asset-shaped
// tables: a FleetResult per optimize() call, and a PoolResult that
// holds several sites' FleetResults in a map keyed by site ID
// (SPEC_FULL.md §4.6). Tables are built with go-gota/gota, the pack's
// dataframe library, the same way a pandas-originated result table would
// be represented in Go.
package results

import (
	"fmt"

	"github.com/cepro/fleetoptimizer/assets"
	"github.com/cepro/fleetoptimizer/horizon"
	"github.com/cepro/fleetoptimizer/milp"
	"github.com/cepro/fleetoptimizer/solver"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// FleetResult is the projected outcome of one Build+Solve call: a
// per-step power/energy table plus the scalar summary values a caller
// typically reports (objective, status, peaks).
type FleetResult struct {
	Status    solver.Status
	Objective float64
	Nodes     int

	PeakImport float64
	PeakExport float64

	// Power is indexed by step, with one column per battery ("chg_<id>",
	// "dis_<id>", "energy_<id>") plus "p_site", "p_imp", "p_exp".
	Power dataframe.DataFrame
}

// Project reads a solver.Solution back out of a milp.Model's variable
// registry into a FleetResult.
func Project(h horizon.Horizon, batteries []assets.Battery, v *milp.Vars, sol solver.Solution) FleetResult {
	labels := make([]string, h.T)
	pSite := make([]float64, h.T)
	pImp := make([]float64, h.T)
	pExp := make([]float64, h.T)

	for t := 0; t < h.T; t++ {
		labels[t] = h.Label(t)
		pSite[t] = valueAt1(sol.X, v.PSite, t)
		pImp[t] = valueAt1(sol.X, v.PImp, t)
		pExp[t] = valueAt1(sol.X, v.PExp, t)
	}

	cols := []series.Series{
		series.New(labels, series.String, "step"),
		series.New(pSite, series.Float, "p_site"),
		series.New(pImp, series.Float, "p_imp"),
		series.New(pExp, series.Float, "p_exp"),
	}

	for _, b := range batteries {
		chg := make([]float64, h.T)
		dis := make([]float64, h.T)
		energy := make([]float64, h.T)
		for t := 0; t < h.T; t++ {
			chg[t] = valueAt2(sol.X, v.Chg, b.ID, t)
			dis[t] = valueAt2(sol.X, v.Dis, b.ID, t)
			energy[t] = valueAt2(sol.X, v.E, b.ID, t)
		}
		cols = append(cols,
			series.New(chg, series.Float, fmt.Sprintf("chg_%d", b.ID)),
			series.New(dis, series.Float, fmt.Sprintf("dis_%d", b.ID)),
			series.New(energy, series.Float, fmt.Sprintf("energy_%d", b.ID)),
		)
	}

	peakImp := 0.0
	if v.PeakImp >= 0 {
		peakImp = sol.X[v.PeakImp]
	}
	peakExp := 0.0
	if v.PeakExp >= 0 {
		peakExp = sol.X[v.PeakExp]
	}

	return FleetResult{
		Status:     sol.Status,
		Objective:  sol.Objective,
		Nodes:      sol.Nodes,
		PeakImport: peakImp,
		PeakExport: peakExp,
		Power:      dataframe.New(cols...),
	}
}

func valueAt1(x []float64, t milp.Table1, step int) float64 {
	col, ok := t[step]
	if !ok {
		return 0
	}
	return x[col]
}

func valueAt2(x []float64, t milp.Table2, id, step int) float64 {
	inner, ok := t[id]
	if !ok {
		return 0
	}
	col, ok := inner[step]
	if !ok {
		return 0
	}
	return x[col]
}
