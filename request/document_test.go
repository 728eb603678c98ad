package request

import (
	"testing"
)

func TestParse_ValidDocument(t *testing.T) {
	body := []byte(`{
		"request": {"id": 7, "start_time": "2026-01-01T00:00:00Z", "end_time": "2026-01-01T01:00:00Z"},
		"site_specifications": [{"site_id": 1}]
	}`)
	doc, err := Parse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Request.ID != 7 {
		t.Fatalf("expected request id 7, got %d", doc.Request.ID)
	}
	if len(doc.SiteSpecifications) != 1 || doc.SiteSpecifications[0].SiteID != 1 {
		t.Fatalf("expected one site specification with site_id 1, got %+v", doc.SiteSpecifications)
	}
}

func TestParse_RejectsMissingID(t *testing.T) {
	body := []byte(`{"request": {"start_time": "2026-01-01T00:00:00Z", "end_time": "2026-01-01T01:00:00Z"}}`)
	if _, err := Parse(body); err == nil {
		t.Fatal("expected error for a missing request id")
	}
}

func TestParse_RejectsEndBeforeStart(t *testing.T) {
	body := []byte(`{"request": {"id": 1, "start_time": "2026-01-01T02:00:00Z", "end_time": "2026-01-01T01:00:00Z"}}`)
	if _, err := Parse(body); err == nil {
		t.Fatal("expected error when end_time does not come after start_time")
	}
}

func TestParse_RejectsInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestApplyAssetStatus_ConvertsSOCToAbsoluteEnergy(t *testing.T) {
	spec := BatterySpec{ID: 1, Capacity: 50}
	status := AssetStatus{AssetID: 1, SOCCurrentPerc: 0.4, SOCTargetPerc: 0.9, BatteryCapacityKWh: 40}

	out := ApplyAssetStatus(spec, status)
	if out.EnergyStart == nil || *out.EnergyStart != 16 {
		t.Fatalf("expected energy_start 16 (0.4*40), got %v", out.EnergyStart)
	}
	if out.EnergyEnd == nil || *out.EnergyEnd != 36 {
		t.Fatalf("expected energy_end 36 (0.9*40), got %v", out.EnergyEnd)
	}
}

func TestApplyAssetStatus_ClampsOutOfRangePercentages(t *testing.T) {
	spec := BatterySpec{ID: 1, Capacity: 10}
	status := AssetStatus{SOCCurrentPerc: 1.5, SOCTargetPerc: -0.2, BatteryCapacityKWh: 10}

	out := ApplyAssetStatus(spec, status)
	if *out.EnergyStart != 10 {
		t.Fatalf("expected SOC to clamp to 1.0 (energy 10), got %v", *out.EnergyStart)
	}
}

func TestApplyAssetStatus_FallsBackToSpecCapacity(t *testing.T) {
	spec := BatterySpec{ID: 1, Capacity: 20}
	status := AssetStatus{SOCCurrentPerc: 0.5, BatteryCapacityKWh: 0}

	out := ApplyAssetStatus(spec, status)
	if *out.EnergyStart != 10 {
		t.Fatalf("expected spec capacity fallback (0.5*20=10), got %v", *out.EnergyStart)
	}
}

func TestToBatteryParams_DefaultsEnergyToEnergyMin(t *testing.T) {
	spec := BatterySpec{ID: 3, EnergyMin: 5, EnergyMax: 30, Capacity: 30}
	p := ToBatteryParams(spec)
	if p.EnergyStart != 5 || p.EnergyEnd != 5 {
		t.Fatalf("expected energy start/end to default to energy_min=5, got %v/%v", p.EnergyStart, p.EnergyEnd)
	}
}

func TestToBatteryParams_UsesExplicitEnergyValues(t *testing.T) {
	start, end := 12.0, 18.0
	spec := BatterySpec{ID: 3, EnergyMin: 5, EnergyMax: 30, EnergyStart: &start, EnergyEnd: &end}
	p := ToBatteryParams(spec)
	if p.EnergyStart != 12 || p.EnergyEnd != 18 {
		t.Fatalf("expected explicit energy values to be used, got %v/%v", p.EnergyStart, p.EnergyEnd)
	}
}

func TestToGridParams_CarriesLimits(t *testing.T) {
	gp := ToGridParams(GridSpec{FeedPowerLimit: 10, PurchasePowerLimit: 20})
	if gp.FeedPowerLimit != 10 || gp.PurchasePowerLimit != 20 {
		t.Fatalf("expected limits to be carried through, got %+v", gp)
	}
}
