package assets

import (
	"fmt"

	"github.com/cepro/fleetoptimizer/errs"
)

// Grid describes the physical connection between a site and the public
// electricity network: import/export power limits and efficiencies, held
// constant over the horizon.
type Grid struct {
	FeedPowerLimit     float64 // kW, export limit, >= 0
	PurchasePowerLimit float64 // kW, import limit, >= 0
	FeedEfficiency     float64 // (0, 1]
	PurchaseEfficiency float64 // (0, 1]
}

type GridParams struct {
	FeedPowerLimit     float64
	PurchasePowerLimit float64
	FeedEfficiency     float64 // defaults to 1.0
	PurchaseEfficiency float64 // defaults to 1.0
}

func NewGrid(p GridParams) (Grid, error) {
	if p.FeedEfficiency == 0 {
		p.FeedEfficiency = 1.0
	}
	if p.PurchaseEfficiency == 0 {
		p.PurchaseEfficiency = 1.0
	}

	g := Grid{
		FeedPowerLimit:     p.FeedPowerLimit,
		PurchasePowerLimit: p.PurchasePowerLimit,
		FeedEfficiency:     p.FeedEfficiency,
		PurchaseEfficiency: p.PurchaseEfficiency,
	}

	if g.FeedPowerLimit < 0 {
		return Grid{}, errs.Validationf("feed_power_limit", "feed_power_limit (%v) must be >= 0", g.FeedPowerLimit)
	}
	if g.PurchasePowerLimit < 0 {
		return Grid{}, errs.Validationf("purchase_power_limit", "purchase_power_limit (%v) must be >= 0", g.PurchasePowerLimit)
	}
	if g.FeedEfficiency <= 0 || g.FeedEfficiency > 1 {
		return Grid{}, errs.Validationf("feed_efficiency", "feed_efficiency (%v) must be in (0, 1]", g.FeedEfficiency)
	}
	if g.PurchaseEfficiency <= 0 || g.PurchaseEfficiency > 1 {
		return Grid{}, errs.Validationf("purchase_efficiency", "purchase_efficiency (%v) must be in (0, 1]", g.PurchaseEfficiency)
	}

	return g, nil
}

func (g Grid) String() string {
	return fmt.Sprintf(
		"Grid(feed_power_limit=%v, purchase_power_limit=%v, feed_efficiency=%v, purchase_efficiency=%v)",
		g.FeedPowerLimit, g.PurchasePowerLimit, g.FeedEfficiency, g.PurchaseEfficiency,
	)
}
