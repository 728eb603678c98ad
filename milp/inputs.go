package milp

import (
	"github.com/cepro/fleetoptimizer/assets"
	"github.com/cepro/fleetoptimizer/horizon"
)

// Inputs is the frozen snapshot that Build turns into a Model. It is
// produced by the fleetoptimizer package from its builder state - see
// SPEC_FULL.md §4.2.
type Inputs struct {
	Horizon horizon.Horizon

	Batteries      []assets.Battery
	ChargingPoints []assets.ChargingPoint
	Grid           *assets.Grid // nil if no grid limits registered

	SiteLoad []float64 // nil if none registered

	TariffImport []float64
	TariffExport []float64 // defaults to TariffImport if nil

	CapacityTariffImport float64
	CapacityTariffExport float64

	TriadImport []float64
	TriadExport []float64

	// MarketedVolumes[t] is non-nil where the site-aggregate net battery
	// power is pinned to a committed value (spec.md §4.3 "Marketed
	// volume").
	MarketedVolumes []*float64

	FlexPricesPos []float64 // nil if flex market disabled
	FlexPricesNeg []float64

	MarketedFlexPos []*float64
	MarketedFlexNeg []*float64

	SiteLoadRestrictionCharge    *float64 // kW
	SiteLoadRestrictionDischarge *float64 // kW

	Config Config
}

// FlexEnabled reports whether flex-market variables/constraints should be
// built at all.
func (in *Inputs) FlexEnabled() bool {
	return len(in.FlexPricesPos) > 0 || len(in.FlexPricesNeg) > 0
}

// CPEnabled reports whether charging-point capacity constraints apply.
func (in *Inputs) CPEnabled() bool {
	return len(in.ChargingPoints) > 0
}
