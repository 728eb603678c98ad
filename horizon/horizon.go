// Package horizon resolves the time discretization and index sets that the
// milp package builds variables and constraints over (SPEC_FULL.md C2).
package horizon

import (
	"strconv"
	"time"

	"github.com/cepro/fleetoptimizer/errs"
)

// Horizon is the frozen time discretization for one optimize() call: a step
// size Dt (hours) and a step count T, derived from the longest registered
// series. DateIndex, if present, labels each step with an absolute time for
// use by the result projector.
type Horizon struct {
	Dt        float64
	T         int
	DateIndex []time.Time // len 0 or T
}

// Series names a registered time series purely for error messages.
type Series struct {
	Name string
	Len  int
}

// Resolve computes T as the maximum length of the given series, and
// validates that every series is either empty (not registered) or exactly
// length T - equal-length is required, per SPEC_FULL.md §4.1.
func Resolve(dt float64, dateIndex []time.Time, series []Series) (Horizon, error) {
	if dt <= 0 {
		return Horizon{}, errs.Validationf("dt", "dt (%v) must be positive", dt)
	}

	t := 0
	for _, s := range series {
		if s.Len > t {
			t = s.Len
		}
	}
	if len(dateIndex) > t {
		t = len(dateIndex)
	}

	if t == 0 {
		return Horizon{}, errs.Validation("horizon", "no series were registered to determine the horizon length")
	}

	for _, s := range series {
		if s.Len != 0 && s.Len != t {
			return Horizon{}, errs.Validationf(s.Name, "series length %d does not match horizon length %d", s.Len, t)
		}
	}

	if len(dateIndex) != 0 {
		if len(dateIndex) != t {
			return Horizon{}, errs.Validationf("date_index", "date index length %d does not match horizon length %d", len(dateIndex), t)
		}
		for i := 1; i < len(dateIndex); i++ {
			if !dateIndex[i].After(dateIndex[i-1]) {
				return Horizon{}, errs.Validation("date_index", "date index must be strictly monotonically increasing")
			}
		}
	}

	return Horizon{Dt: dt, T: t, DateIndex: dateIndex}, nil
}

// Label returns a human/label-friendly identifier for step t: the
// corresponding datetime if a DateIndex was registered, otherwise the
// integer step number.
func (h Horizon) Label(t int) string {
	if len(h.DateIndex) == h.T {
		return h.DateIndex[t].Format(time.RFC3339)
	}
	return strconv.Itoa(t)
}
