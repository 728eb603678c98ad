package fleetoptimizer

import (
	"context"
	"testing"
	"time"

	"github.com/cepro/fleetoptimizer/assets"
	"github.com/cepro/fleetoptimizer/solver"
)

func TestOptimize_SimpleSingleBatteryDispatch(t *testing.T) {
	f := New(0.5, FleetConfig{})

	b, err := assets.NewBattery(assets.BatteryParams{
		ID: 1, Capacity: 20, EnergyMin: 0, EnergyMax: 20, EnergyStart: 10, EnergyEnd: 10,
		PowerChargeMax: 5, PowerDischargeMax: 5, Connected: []bool{true, true},
	})
	if err != nil {
		t.Fatalf("unexpected error building battery: %v", err)
	}
	f.AddBattery(b)
	f.AddSiteLoad([]float64{1, 1})
	f.AddPrices([]float64{0.2, 0.2}, []float64{0.2, 0.2}, 0, 0, nil, nil)

	res, err := f.Optimize(context.Background(), solver.Options{TimeLimit: 5 * time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != solver.StatusOptimal {
		t.Fatalf("expected an optimal dispatch, got status %v", res.Status)
	}
	if res.Power.Nrow() != 2 {
		t.Fatalf("expected 2 rows in the power table, got %d", res.Power.Nrow())
	}
}

func TestOptimize_NoBatteriesRejected(t *testing.T) {
	f := New(0.5, FleetConfig{})
	f.AddSiteLoad([]float64{1, 1})

	_, err := f.Optimize(context.Background(), solver.Options{TimeLimit: time.Second})
	if err == nil {
		t.Fatal("expected an error when no batteries have been registered")
	}
}

func TestAddPrices_RegistersCapacityTariffsAndTriads(t *testing.T) {
	f := New(1, FleetConfig{})
	f.AddPrices([]float64{0.1}, []float64{0.1}, 5, 6, []float64{1}, []float64{1})

	if f.capacityTariffImport != 5 || f.capacityTariffExport != 6 {
		t.Fatalf("expected capacity tariffs to be stored, got %v/%v", f.capacityTariffImport, f.capacityTariffExport)
	}
	if len(f.triadImport) != 1 || len(f.triadExport) != 1 {
		t.Fatal("expected triad series to be stored")
	}
}
