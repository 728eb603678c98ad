// Package request ingests the wire-format JSON document a caller submits
// to ask for a dispatch plan, and turns it into the assets and
// fleetoptimizer registrations that package builds constraints from
// (SPEC_FULL.md §6.4). The "current_asset_status" / SOC-folding feature
// here supplements the distilled spec from the original source's
// examples/requests/basic.py, which the asset-registration API alone
// leaves out.
package request

import (
	"encoding/json"
	"time"

	"github.com/cepro/fleetoptimizer/assets"
	"github.com/cepro/fleetoptimizer/errs"
)

// Document is the top-level JSON request body.
type Document struct {
	Request             RequestMeta          `json:"request"`
	SiteSpecifications  []SiteSpecification   `json:"site_specifications"`
	CurrentAssetStatus  []AssetStatus         `json:"current_asset_status"`
	MarketData          *MarketData           `json:"market_data,omitempty"`
}

// RequestMeta identifies the request and its horizon.
type RequestMeta struct {
	ID        int       `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// SiteSpecification mirrors one entry of the "site_specifications" array.
type SiteSpecification struct {
	SiteID              int                      `json:"site_id"`
	Country             string                   `json:"country"`
	VoltageLevel        float64                  `json:"voltage_level"`
	StationaryBatteries []BatterySpec            `json:"stationary_batteries"`
	MobileBatteries     []BatterySpec            `json:"mobile_batteries"`
	ChargingPoints      []ChargingPointSpec      `json:"charging_points"`
	Grid                *GridSpec                `json:"grid,omitempty"`
}

// BatterySpec mirrors the dict kwargs a Battery/StationaryBattery is built
// from in the original source.
type BatterySpec struct {
	ID                      int      `json:"id"`
	EnergyMin               float64  `json:"energy_min"`
	EnergyMax               float64  `json:"energy_max"`
	EnergyStart             *float64 `json:"energy_start,omitempty"`
	EnergyEnd               *float64 `json:"energy_end,omitempty"`
	PowerChargeMax          float64  `json:"power_charge_max"`
	PowerDischargeMax       float64  `json:"power_discharge_max"`
	PowerChargeMin          float64  `json:"power_charge_min"`
	Capacity                float64  `json:"capacity"`
	EfficiencyCharge        float64  `json:"efficiency_charge"`
	EfficiencyDischarge     float64  `json:"efficiency_discharge"`
	CycleLife               int      `json:"cycle_life"`
	BatteryCosts            float64  `json:"battery_costs"`
	AffectedChargingPointID *int     `json:"affected_charging_point_id,omitempty"`
	Connected               []bool   `json:"connected,omitempty"`
}

type ChargingPointSpec struct {
	AssetID                       int     `json:"asset_id"`
	ChargingPowerKW               float64 `json:"charging_power_kw"`
	DischargingPowerKW            float64 `json:"discharging_power_kw"`
	ExpectedChargingEfficiency    float64 `json:"expected_charging_efficiency"`
	ExpectedDischargingEfficiency float64 `json:"expected_discharging_efficiency"`
	MaxBatteries                  int     `json:"max_batteries"`
}

type GridSpec struct {
	FeedPowerLimit     float64 `json:"feed_power_limit"`
	PurchasePowerLimit float64 `json:"purchase_power_limit"`
	FeedEfficiency     float64 `json:"feed_efficiency"`
	PurchaseEfficiency float64 `json:"purchase_efficiency"`
}

// AssetStatus mirrors one entry of "current_asset_status": the live state
// of a mobile battery at request time, expressed as a state-of-charge
// fraction of capacity (0..1) rather than an absolute energy value.
type AssetStatus struct {
	AssetID           int     `json:"asset_id"`
	SOCCurrentPerc    float64 `json:"soc_current_perc"`
	SOCTargetPerc     float64 `json:"soc_target_perc"`
	BatteryCapacityKWh float64 `json:"battery_capacity_kwh"`
}

// MarketData carries the tariff/flex series a request may pre-populate
// instead of the caller doing separate AddPrices/AddFlex calls.
type MarketData struct {
	TariffImport []float64 `json:"tariff_import,omitempty"`
	TariffExport []float64 `json:"tariff_export,omitempty"`
	FlexPricesPos []float64 `json:"flex_prices_pos,omitempty"`
	FlexPricesNeg []float64 `json:"flex_prices_neg,omitempty"`
}

// Parse decodes a wire-format document.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, errs.Validationf("document", "invalid JSON: %v", err)
	}
	if doc.Request.ID == 0 {
		return Document{}, errs.Validation("request.id", "request id is required")
	}
	if !doc.Request.EndTime.After(doc.Request.StartTime) {
		return Document{}, errs.Validation("request", "end_time must be after start_time")
	}
	return doc, nil
}

// ApplyAssetStatus folds a battery's live state-of-charge into its spec,
// clamping the reported percentage into [0,1] and converting it to the
// absolute energy_start/energy_end the asset package expects - the
// request-time SOC-folding step the distilled spec leaves to the caller.
func ApplyAssetStatus(spec BatterySpec, status AssetStatus) BatterySpec {
	capacity := status.BatteryCapacityKWh
	if capacity == 0 {
		capacity = spec.Capacity
	}

	start := clampFraction(status.SOCCurrentPerc) * capacity
	end := clampFraction(status.SOCTargetPerc) * capacity

	spec.EnergyStart = &start
	if status.SOCTargetPerc > 0 {
		spec.EnergyEnd = &end
	}
	return spec
}

func clampFraction(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// ToBatteryParams converts a BatterySpec into assets.BatteryParams,
// defaulting EnergyStart/EnergyEnd to EnergyMin when the request (and no
// asset status) supplied neither.
func ToBatteryParams(spec BatterySpec) assets.BatteryParams {
	start := spec.EnergyMin
	if spec.EnergyStart != nil {
		start = *spec.EnergyStart
	}
	end := spec.EnergyMin
	if spec.EnergyEnd != nil {
		end = *spec.EnergyEnd
	}

	return assets.BatteryParams{
		ID:                      spec.ID,
		Capacity:                spec.Capacity,
		EnergyMin:               spec.EnergyMin,
		EnergyMax:               spec.EnergyMax,
		EnergyStart:             start,
		EnergyEnd:               end,
		PowerChargeMax:          spec.PowerChargeMax,
		PowerDischargeMax:       spec.PowerDischargeMax,
		PowerChargeMin:          spec.PowerChargeMin,
		EfficiencyCharge:        spec.EfficiencyCharge,
		EfficiencyDischarge:     spec.EfficiencyDischarge,
		Connected:               spec.Connected,
		CycleLife:               spec.CycleLife,
		BatteryCosts:            spec.BatteryCosts,
		AffectedChargingPointID: spec.AffectedChargingPointID,
	}
}

// ToChargingPointParams converts a ChargingPointSpec into
// assets.ChargingPointParams.
func ToChargingPointParams(spec ChargingPointSpec) assets.ChargingPointParams {
	return assets.ChargingPointParams{
		AssetID:                       spec.AssetID,
		ChargingPowerKW:               spec.ChargingPowerKW,
		DischargingPowerKW:            spec.DischargingPowerKW,
		ExpectedChargingEfficiency:    spec.ExpectedChargingEfficiency,
		ExpectedDischargingEfficiency: spec.ExpectedDischargingEfficiency,
		MaxBatteries:                  spec.MaxBatteries,
	}
}

// ToGridParams converts a GridSpec into assets.GridParams.
func ToGridParams(spec GridSpec) assets.GridParams {
	return assets.GridParams{
		FeedPowerLimit:     spec.FeedPowerLimit,
		PurchasePowerLimit: spec.PurchasePowerLimit,
		FeedEfficiency:     spec.FeedEfficiency,
		PurchaseEfficiency: spec.PurchaseEfficiency,
	}
}
