package assets

import (
	"fmt"

	"github.com/cepro/fleetoptimizer/errs"
)

// Kind distinguishes a mobile (EV) battery from a stationary on-site battery,
// per the "single tagged record" design note - a stationary battery is a
// mobile battery with its connection/energy fields forced to particular
// values, not a distinct subtype.
type Kind int

const (
	KindMobile Kind = iota
	KindStationary
)

func (k Kind) String() string {
	if k == KindStationary {
		return "stationary"
	}
	return "mobile"
}

// Battery is a value-typed descriptor for a dispatchable battery asset,
// either a mobile EV battery or a stationary on-site battery.
type Battery struct {
	ID int

	Kind Kind

	Capacity float64 // kWh, > 0

	EnergyMin   float64 // kWh
	EnergyMax   float64 // kWh
	EnergyStart float64 // kWh, energy at the start of the horizon
	EnergyEnd   float64 // kWh, target energy at the end of the horizon

	PowerChargeMax    float64 // kW, >= 0
	PowerDischargeMax float64 // kW, >= 0
	PowerChargeMin    float64 // kW, >= 0; only permitted when PowerDischargeMax == 0 (V1G only)

	EfficiencyCharge    float64 // (0, 1]
	EfficiencyDischarge float64 // (0, 1]

	Connected []bool // length T, whether the battery is plugged in at step t

	CycleLife     int     // full cycles over the battery's lifetime
	BatteryCosts  float64 // monetary cost of a full replacement
	CycleUsage    int
	AffectedChargingPointID *int // non-nil if this battery is pinned to a single charging point

	// CycleCostPerKWh is the amortized wear cost per kWh of charge/discharge
	// throughput: BatteryCosts / (CycleLife * 2 * Capacity). It is derived,
	// not set directly.
	CycleCostPerKWh float64
}

// BatteryParams is the set of fields a caller supplies to NewBattery; fields
// left at their zero value take the defaults documented below.
type BatteryParams struct {
	ID                      int
	Capacity                float64
	EnergyMin               float64
	EnergyMax               float64
	EnergyStart             float64
	EnergyEnd               float64
	PowerChargeMax          float64
	PowerDischargeMax       float64
	PowerChargeMin          float64
	EfficiencyCharge        float64 // defaults to 1.0
	EfficiencyDischarge     float64 // defaults to 1.0
	Connected               []bool
	CycleLife               int // defaults to 5000
	BatteryCosts            float64
	CycleUsage              int
	AffectedChargingPointID *int
}

// NewBattery validates and constructs a mobile battery, mirroring the
// invariant checks of the original Battery dataclass's __post_init__.
func NewBattery(p BatteryParams) (Battery, error) {
	if p.EfficiencyCharge == 0 {
		p.EfficiencyCharge = 1.0
	}
	if p.EfficiencyDischarge == 0 {
		p.EfficiencyDischarge = 1.0
	}
	if p.CycleLife == 0 {
		p.CycleLife = 5000
	}

	b := Battery{
		ID:                      p.ID,
		Kind:                    KindMobile,
		Capacity:                p.Capacity,
		EnergyMin:               p.EnergyMin,
		EnergyMax:               p.EnergyMax,
		EnergyStart:             p.EnergyStart,
		EnergyEnd:               p.EnergyEnd,
		PowerChargeMax:          p.PowerChargeMax,
		PowerDischargeMax:       p.PowerDischargeMax,
		PowerChargeMin:          p.PowerChargeMin,
		EfficiencyCharge:        p.EfficiencyCharge,
		EfficiencyDischarge:     p.EfficiencyDischarge,
		Connected:               p.Connected,
		CycleLife:               p.CycleLife,
		BatteryCosts:            p.BatteryCosts,
		CycleUsage:              p.CycleUsage,
		AffectedChargingPointID: p.AffectedChargingPointID,
	}

	if err := b.validate(); err != nil {
		return Battery{}, err
	}
	b.calculateCycleCosts()

	return b, nil
}

// NewStationaryBattery constructs a stationary battery: always connected,
// and with EnergyStart/EnergyEnd forced to EnergyMin, matching
// StationaryBattery.__init__ in the original source.
func NewStationaryBattery(p BatteryParams) (Battery, error) {
	p.EnergyStart = p.EnergyMin
	p.EnergyEnd = p.EnergyMin
	p.Connected = []bool{true}

	b, err := NewBattery(p)
	if err != nil {
		return Battery{}, err
	}
	b.Kind = KindStationary
	return b, nil
}

func (b *Battery) validate() error {
	if b.Capacity <= 0 {
		return errs.Validationf("capacity", "capacity (%v) must be positive", b.Capacity)
	}
	if !(b.EnergyMin <= b.EnergyMax) {
		return errs.Validationf("energy_min/energy_max", "energy_min (%v) must be <= energy_max (%v)", b.EnergyMin, b.EnergyMax)
	}
	if b.EnergyMin < 0 || b.EnergyMax > b.Capacity {
		return errs.Validationf("energy_min/energy_max", "energy bounds [%v, %v] must fall within [0, capacity=%v]", b.EnergyMin, b.EnergyMax, b.Capacity)
	}
	if err := b.validateEnergy(b.EnergyStart, "energy_start"); err != nil {
		return err
	}
	if err := b.validateEnergy(b.EnergyEnd, "energy_end"); err != nil {
		return err
	}
	if b.PowerDischargeMax != 0 && b.PowerChargeMin != 0 {
		return errs.Validation("power_charge_min", "cannot set power_charge_min when power_discharge_max is not 0")
	}
	if b.PowerChargeMax < 0 || b.PowerDischargeMax < 0 || b.PowerChargeMin < 0 {
		return errs.Validation("power", "power bounds must be non-negative")
	}
	if b.EfficiencyCharge <= 0 || b.EfficiencyCharge > 1 {
		return errs.Validationf("efficiency_charge", "efficiency_charge (%v) must be in (0, 1]", b.EfficiencyCharge)
	}
	if b.EfficiencyDischarge <= 0 || b.EfficiencyDischarge > 1 {
		return errs.Validationf("efficiency_discharge", "efficiency_discharge (%v) must be in (0, 1]", b.EfficiencyDischarge)
	}
	return nil
}

func (b *Battery) validateEnergy(energy float64, field string) error {
	if energy < b.EnergyMin || energy > b.EnergyMax {
		return errs.Validationf(field, "energy (%v) outside of battery limits [%v, %v]", energy, b.EnergyMin, b.EnergyMax)
	}
	return nil
}

func (b *Battery) calculateCycleCosts() {
	if b.CycleLife == 0 || b.Capacity == 0 {
		return
	}
	cycleCost := b.BatteryCosts / float64(b.CycleLife)
	b.CycleCostPerKWh = cycleCost / (2 * b.Capacity)
}

// AddCycleCosts sets the lifecycle economics of the battery after
// construction, re-deriving CycleCostPerKWh - mirrors
// Battery.add_cycle_costs in the original source.
func (b *Battery) AddCycleCosts(batteryCosts float64, cycleLife int) {
	b.CycleLife = cycleLife
	b.BatteryCosts = batteryCosts
	b.calculateCycleCosts()
}

// IsConnected returns true if the battery is plugged in for at least one
// step of the horizon.
func (b *Battery) IsConnected() bool {
	for _, c := range b.Connected {
		if c {
			return true
		}
	}
	return false
}

// HasSingleChargingSession returns true if Connected contains at most one
// contiguous run of true values, reimplemented as a linear scan per the
// "has_single_charging_session" design note rather than a pandas diff.
func (b *Battery) HasSingleChargingSession() bool {
	return HasSingleSession(b.Connected)
}

// HasSingleSession returns true if the given boolean series contains at
// most one contiguous run of true values.
func HasSingleSession(series []bool) bool {
	runs := 0
	for i, on := range series {
		if on && (i == 0 || !series[i-1]) {
			runs++
		}
	}
	return runs <= 1
}

func (b *Battery) String() string {
	return fmt.Sprintf("Battery %d", b.ID)
}

// Info returns a short human-readable summary, mirroring Battery.info().
func (b *Battery) Info() string {
	return fmt.Sprintf(
		"%s\nBattery %d (%s)\nAllowed Energy [%v-%v]\nEnergy Beginning/End [%v-%v]\n",
		"-------------------------", b.ID, b.Kind, b.EnergyMin, b.EnergyMax, b.EnergyStart, b.EnergyEnd,
	)
}
