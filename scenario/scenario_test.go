package scenario

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleYAML = `
dt: 0.5
startTime: "2026-01-01T00:00:00Z"
siteLoad: [1, 2]
tariffImport: [0.1, 0.2]
tariffExport: [0.1, 0.2]
batteries:
  - id: 1
    capacity: 40
    energyMin: 5
    energyMax: 40
    energyStart: 10
    energyEnd: 30
    powerChargeMax: 7
    powerDischargeMax: 7
    connected: [true, true]
  - id: 2
    stationary: true
    capacity: 20
    energyMin: 5
    energyMax: 20
    powerChargeMax: 4
    powerDischargeMax: 4
grid:
  feedPowerLimit: 50
  purchasePowerLimit: 50
`

func writeScenario(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestRead_ParsesScenarioFile(t *testing.T) {
	path := writeScenario(t, sampleYAML)
	s, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Dt != 0.5 || len(s.Batteries) != 2 {
		t.Fatalf("unexpected scenario contents: %+v", s)
	}
}

func TestRead_MissingFileReturnsError(t *testing.T) {
	if _, err := Read("/nonexistent/path/scenario.yaml"); err == nil {
		t.Fatal("expected error for a missing scenario file")
	}
}

func TestBatteries_BuildsStationaryAndMobile(t *testing.T) {
	path := writeScenario(t, sampleYAML)
	s, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	batteries, err := s.Batteries()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batteries) != 2 {
		t.Fatalf("expected 2 batteries, got %d", len(batteries))
	}
	if batteries[1].EnergyStart != 5 || batteries[1].EnergyEnd != 5 {
		t.Fatalf("expected stationary battery to pin energy to energy_min, got start=%v end=%v", batteries[1].EnergyStart, batteries[1].EnergyEnd)
	}
}

func TestGrid_BuildsWhenRegistered(t *testing.T) {
	path := writeScenario(t, sampleYAML)
	s, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g, err := s.Grid()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g == nil || g.FeedPowerLimit != 50 {
		t.Fatalf("expected grid with feed_power_limit 50, got %+v", g)
	}
}

func TestGrid_NilWhenNotRegistered(t *testing.T) {
	s := Scenario{Dt: 1}
	g, err := s.Grid()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g != nil {
		t.Fatal("expected nil grid when none is registered")
	}
}

func TestDateIndex_DerivesFromStartTimeAndDt(t *testing.T) {
	s := Scenario{Dt: 0.5, StartTime: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	dates := s.DateIndex(3)
	if len(dates) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(dates))
	}
	if !dates[1].Equal(s.StartTime.Add(30 * time.Minute)) {
		t.Fatalf("expected step 1 to be 30 minutes after start, got %v", dates[1])
	}
}

func TestDateIndex_NilWhenStartTimeUnset(t *testing.T) {
	s := Scenario{Dt: 1}
	if s.DateIndex(4) != nil {
		t.Fatal("expected nil date index when start_time is zero-valued")
	}
}
