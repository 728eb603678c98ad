package assets

import (
	"sort"
	"time"

	"github.com/cepro/fleetoptimizer/errs"
	timeutils "github.com/cepro/fleetoptimizer/time_utils"
)

// ChargingPoint is a physical charge point shared by one or more batteries.
// Its rated powers bound the charge/discharge power flowing through it, and
// its booking timeline (used by the request handler, not the MILP itself -
// see SPEC_FULL.md §6.3) tracks which absolute time intervals are already
// committed.
type ChargingPoint struct {
	AssetID int

	ChargingPowerKW    float64
	DischargingPowerKW float64

	ExpectedChargingEfficiency    float64 // defaults to 1.0
	ExpectedDischargingEfficiency float64 // defaults to 1.0

	// MaxBatteries is the number of batteries that may be assigned to this
	// charging point simultaneously; 1 unless multi-battery-per-CP is
	// enabled for the fleet.
	MaxBatteries int

	bookings []timeutils.Period // sorted, non-overlapping
}

// ChargingPointParams mirrors ChargingPoint's constructor kwargs in the
// original source.
type ChargingPointParams struct {
	AssetID                       int
	ChargingPowerKW               float64
	DischargingPowerKW            float64
	ExpectedChargingEfficiency    float64
	ExpectedDischargingEfficiency float64
	MaxBatteries                  int
}

func NewChargingPoint(p ChargingPointParams) ChargingPoint {
	if p.ExpectedChargingEfficiency == 0 {
		p.ExpectedChargingEfficiency = 1.0
	}
	if p.ExpectedDischargingEfficiency == 0 {
		p.ExpectedDischargingEfficiency = 1.0
	}
	if p.MaxBatteries == 0 {
		p.MaxBatteries = 1
	}
	return ChargingPoint{
		AssetID:                       p.AssetID,
		ChargingPowerKW:               p.ChargingPowerKW,
		DischargingPowerKW:            p.DischargingPowerKW,
		ExpectedChargingEfficiency:    p.ExpectedChargingEfficiency,
		ExpectedDischargingEfficiency: p.ExpectedDischargingEfficiency,
		MaxBatteries:                  p.MaxBatteries,
	}
}

// IsAvailable returns true if the given interval does not overlap any
// existing booking.
func (c *ChargingPoint) IsAvailable(start, end time.Time) bool {
	interval := timeutils.Period{Start: start, End: end}
	for _, booked := range c.bookings {
		if periodsOverlap(interval, booked) {
			return false
		}
	}
	return true
}

// Book reserves the given interval, rejecting the booking if it overlaps an
// existing one. Accepted bookings are merged with any adjoining bookings on
// the timeline (union-on-overlap, per SPEC_FULL.md §6.3).
func (c *ChargingPoint) Book(start, end time.Time) error {
	if !start.Before(end) {
		return errs.Validation("booking", "start must be before end")
	}
	if !c.IsAvailable(start, end) {
		return errs.Validationf("booking", "charging point %d is not available between %s and %s", c.AssetID, start, end)
	}
	c.bookings = append(c.bookings, timeutils.Period{Start: start, End: end})
	c.mergeBookings()
	return nil
}

// Reset clears all bookings from the charging point's timeline.
func (c *ChargingPoint) Reset() {
	c.bookings = nil
}

func (c *ChargingPoint) mergeBookings() {
	sort.Slice(c.bookings, func(i, j int) bool {
		return c.bookings[i].Start.Before(c.bookings[j].Start)
	})

	merged := c.bookings[:0:0]
	for _, p := range c.bookings {
		if len(merged) > 0 && !p.Start.After(merged[len(merged)-1].End) {
			last := &merged[len(merged)-1]
			if p.End.After(last.End) {
				last.End = p.End
			}
			continue
		}
		merged = append(merged, p)
	}
	c.bookings = merged
}

func periodsOverlap(a, b timeutils.Period) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
