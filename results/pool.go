package results

import (
	"github.com/cepro/fleetoptimizer/errs"
	"github.com/cepro/fleetoptimizer/solver"
)

// PoolResult composes several sites' FleetResults into one keyed set, the
// Go counterpart of building `PoolResult({42: result1, 27: result2})` from
// per-site results in the original source's pool-result example.
type PoolResult struct {
	BySite map[int]FleetResult
}

// NewPoolResult validates that every site's result shares the same horizon
// length before composing them - a pool whose members disagree on their
// step count cannot be summed or compared meaningfully.
func NewPoolResult(bySite map[int]FleetResult) (PoolResult, error) {
	rowCount := -1
	for siteID, r := range bySite {
		n := r.Power.Nrow()
		if rowCount == -1 {
			rowCount = n
			continue
		}
		if n != rowCount {
			return PoolResult{}, errs.Validationf("pool_result", "site %d has %d rows, expected %d to match the rest of the pool", siteID, n, rowCount)
		}
	}
	return PoolResult{BySite: bySite}, nil
}

// TotalObjective sums the objective value across every site in the pool.
func (p PoolResult) TotalObjective() float64 {
	total := 0.0
	for _, r := range p.BySite {
		total += r.Objective
	}
	return total
}

// AnyInfeasible reports whether any site in the pool failed to solve.
func (p PoolResult) AnyInfeasible() bool {
	for _, r := range p.BySite {
		if r.Status == solver.StatusInfeasible {
			return true
		}
	}
	return false
}
