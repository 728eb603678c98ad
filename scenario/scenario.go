// Package scenario loads a demo dispatch scenario from a YAML file on disk,
// the on-disk counterpart to the JSON wire-format request package handles
// for live callers (SPEC_FULL.md §9).
package scenario

import (
	"fmt"
	"os"
	"time"

	"github.com/cepro/fleetoptimizer/assets"
	"github.com/cepro/fleetoptimizer/milp"
	"gopkg.in/yaml.v3"
)

// Scenario is a complete, self-contained dispatch problem: a horizon, a
// fleet, market data, and the feature configuration to build with.
type Scenario struct {
	Dt          float64         `yaml:"dt"`
	StartTime   time.Time       `yaml:"startTime"`
	Batteries   []BatteryConfig `yaml:"batteries"`
	Grid        *GridConfig     `yaml:"grid"`
	SiteLoad    []float64       `yaml:"siteLoad"`
	TariffImport []float64      `yaml:"tariffImport"`
	TariffExport []float64      `yaml:"tariffExport"`
	CapacityTariffImport float64 `yaml:"capacityTariffImport"`
	CapacityTariffExport float64 `yaml:"capacityTariffExport"`
	Config      milp.Config     `yaml:"config"`
}

type BatteryConfig struct {
	ID                int       `yaml:"id"`
	Stationary        bool      `yaml:"stationary"`
	Capacity          float64   `yaml:"capacity"`
	EnergyMin         float64   `yaml:"energyMin"`
	EnergyMax         float64   `yaml:"energyMax"`
	EnergyStart       float64   `yaml:"energyStart"`
	EnergyEnd         float64   `yaml:"energyEnd"`
	PowerChargeMax    float64   `yaml:"powerChargeMax"`
	PowerDischargeMax float64   `yaml:"powerDischargeMax"`
	EfficiencyCharge  float64   `yaml:"efficiencyCharge"`
	EfficiencyDischarge float64 `yaml:"efficiencyDischarge"`
	Connected         []bool    `yaml:"connected"`
}

type GridConfig struct {
	FeedPowerLimit     float64 `yaml:"feedPowerLimit"`
	PurchasePowerLimit float64 `yaml:"purchasePowerLimit"`
}

// Read loads and parses a scenario file.
func Read(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario file: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario file: %w", err)
	}
	return s, nil
}

// Batteries constructs the assets.Battery values this scenario describes.
func (s Scenario) Batteries() ([]assets.Battery, error) {
	out := make([]assets.Battery, 0, len(s.Batteries))
	for _, bc := range s.Batteries {
		params := assets.BatteryParams{
			ID:                  bc.ID,
			Capacity:            bc.Capacity,
			EnergyMin:           bc.EnergyMin,
			EnergyMax:           bc.EnergyMax,
			EnergyStart:         bc.EnergyStart,
			EnergyEnd:           bc.EnergyEnd,
			PowerChargeMax:      bc.PowerChargeMax,
			PowerDischargeMax:   bc.PowerDischargeMax,
			EfficiencyCharge:    bc.EfficiencyCharge,
			EfficiencyDischarge: bc.EfficiencyDischarge,
			Connected:           bc.Connected,
		}

		var (
			b   assets.Battery
			err error
		)
		if bc.Stationary {
			b, err = assets.NewStationaryBattery(params)
		} else {
			b, err = assets.NewBattery(params)
		}
		if err != nil {
			return nil, fmt.Errorf("battery %d: %w", bc.ID, err)
		}
		out = append(out, b)
	}
	return out, nil
}

// Grid constructs the assets.Grid this scenario describes, if any.
func (s Scenario) Grid() (*assets.Grid, error) {
	if s.Grid == nil {
		return nil, nil
	}
	g, err := assets.NewGrid(assets.GridParams{
		FeedPowerLimit:     s.Grid.FeedPowerLimit,
		PurchasePowerLimit: s.Grid.PurchasePowerLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	return &g, nil
}

// DateIndex returns the absolute timestamp of every step, derived from
// StartTime/Dt and the horizon length implied by the tariff/site-load
// series.
func (s Scenario) DateIndex(t int) []time.Time {
	if s.StartTime.IsZero() {
		return nil
	}
	out := make([]time.Time, t)
	step := time.Duration(s.Dt * float64(time.Hour))
	for i := range out {
		out[i] = s.StartTime.Add(time.Duration(i) * step)
	}
	return out
}
