package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBattery_Defaults(t *testing.T) {
	b, err := NewBattery(BatteryParams{
		ID:                1,
		Capacity:          40,
		EnergyMin:         5,
		EnergyMax:         40,
		EnergyStart:       10,
		EnergyEnd:         30,
		PowerChargeMax:    7,
		PowerDischargeMax: 7,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1.0, b.EfficiencyCharge)
	assert.Equal(t, 1.0, b.EfficiencyDischarge)
	assert.Equal(t, 5000, b.CycleLife)
	assert.Equal(t, KindMobile, b.Kind)
}

func TestNewBattery_ValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		params BatteryParams
	}{
		{"zero capacity", BatteryParams{Capacity: 0, EnergyMin: 0, EnergyMax: 1}},
		{"energy min above max", BatteryParams{Capacity: 10, EnergyMin: 8, EnergyMax: 2}},
		{"energy max exceeds capacity", BatteryParams{Capacity: 10, EnergyMin: 0, EnergyMax: 20}},
		{"energy start out of bounds", BatteryParams{Capacity: 10, EnergyMin: 2, EnergyMax: 8, EnergyStart: 20, EnergyEnd: 5}},
		{"negative power", BatteryParams{Capacity: 10, EnergyMin: 0, EnergyMax: 10, EnergyStart: 5, EnergyEnd: 5, PowerChargeMax: -1}},
		{"bad efficiency", BatteryParams{Capacity: 10, EnergyMin: 0, EnergyMax: 10, EnergyStart: 5, EnergyEnd: 5, EfficiencyCharge: 1.5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewBattery(c.params)
			assert.Error(t, err)
		})
	}
}

func TestNewBattery_ChargeMinRequiresNoDischarge(t *testing.T) {
	_, err := NewBattery(BatteryParams{
		Capacity: 10, EnergyMin: 0, EnergyMax: 10, EnergyStart: 5, EnergyEnd: 5,
		PowerChargeMin: 1.3, PowerDischargeMax: 5,
	})
	assert.Error(t, err)
}

func TestNewStationaryBattery_ForcesEnergyAndConnection(t *testing.T) {
	b, err := NewStationaryBattery(BatteryParams{
		ID: 2, Capacity: 40, EnergyMin: 10, EnergyMax: 40, PowerChargeMax: 5, PowerDischargeMax: 5,
	})
	assert.NoError(t, err)
	assert.Equal(t, KindStationary, b.Kind)
	assert.Equal(t, 10.0, b.EnergyStart)
	assert.Equal(t, 10.0, b.EnergyEnd)
	assert.Equal(t, []bool{true}, b.Connected)
}

func TestCalculateCycleCosts(t *testing.T) {
	b, err := NewBattery(BatteryParams{
		Capacity: 40, EnergyMin: 0, EnergyMax: 40, EnergyStart: 10, EnergyEnd: 10,
		PowerChargeMax: 5, PowerDischargeMax: 5, BatteryCosts: 8000, CycleLife: 2000,
	})
	assert.NoError(t, err)
	// cycleCost = 8000/2000 = 4; per kWh = 4 / (2*40) = 0.05
	assert.InDelta(t, 0.05, b.CycleCostPerKWh, 1e-9)
}

func TestHasSingleSession(t *testing.T) {
	assert.True(t, HasSingleSession([]bool{false, false, true, true, true, false, false}))
	assert.False(t, HasSingleSession([]bool{true, false, true, false, true}))
	assert.True(t, HasSingleSession([]bool{true, true, true}))
	assert.True(t, HasSingleSession([]bool{}))
}
