package assets

import (
	"fmt"

	"github.com/cepro/fleetoptimizer/errs"
	"github.com/google/uuid"
)

// Site groups the charging infrastructure, stationary batteries, grid
// connection and site-level limits/tariffs for one physical location. A
// fleet is optimized per site; PoolResult (see results package) composes
// several sites into a portfolio view keyed by the integer site ID. Each
// Site also carries a uuid.UUID, mirroring how every device in the
// teacher's config package carries one.
type Site struct {
	ID   int
	UUID uuid.UUID

	Country      string
	VoltageLevel float64

	NChargingPoints int

	ChargingPoints      []ChargingPoint
	StationaryBatteries []Battery
	Grid                Grid

	// SiteLoad is an optional per-step series (kW, positive = consumption,
	// negative = net generation e.g. PV surplus).
	SiteLoad []float64

	// Half-hourly site caps on the net battery power at the grid meter.
	SiteLoadRestrictionHalfHourCharge    *float64
	SiteLoadRestrictionHalfHourDischarge *float64

	// CapacityTariffImport/Export price the site-wide running-maximum
	// import/export power (the "demand charge").
	CapacityTariffImport float64
	CapacityTariffExport float64

	// TriadImport/Export are optional per-step surcharge series applied to
	// p_imp[t]/p_exp[t].
	TriadImport []float64
	TriadExport []float64

	SiteLoadComponents []string
}

type SiteParams struct {
	ID                                   int
	Country                              string
	VoltageLevel                         float64
	NChargingPoints                      int
	ChargingPoints                       []ChargingPoint
	StationaryBatteries                  []Battery
	Grid                                 Grid
	SiteLoad                             []float64
	SiteLoadRestrictionHalfHourCharge    *float64
	SiteLoadRestrictionHalfHourDischarge *float64
	CapacityTariffImport                 float64
	CapacityTariffExport                 float64
	TriadImport                          []float64
	TriadExport                          []float64
	SiteLoadComponents                   []string
}

func NewSite(p SiteParams) (Site, error) {
	if p.ID < 0 {
		return Site{}, errs.Validationf("site_id", "site_id (%v) must be >= 0", p.ID)
	}
	if p.NChargingPoints < 0 {
		return Site{}, errs.Validationf("n_charging_points", "n_charging_points (%v) must be >= 0", p.NChargingPoints)
	}

	return Site{
		ID:                                   p.ID,
		UUID:                                 uuid.New(),
		Country:                              p.Country,
		VoltageLevel:                         p.VoltageLevel,
		NChargingPoints:                      p.NChargingPoints,
		ChargingPoints:                       p.ChargingPoints,
		StationaryBatteries:                  p.StationaryBatteries,
		Grid:                                 p.Grid,
		SiteLoad:                             p.SiteLoad,
		SiteLoadRestrictionHalfHourCharge:    p.SiteLoadRestrictionHalfHourCharge,
		SiteLoadRestrictionHalfHourDischarge: p.SiteLoadRestrictionHalfHourDischarge,
		CapacityTariffImport:                 p.CapacityTariffImport,
		CapacityTariffExport:                 p.CapacityTariffExport,
		TriadImport:                          p.TriadImport,
		TriadExport:                          p.TriadExport,
		SiteLoadComponents:                   p.SiteLoadComponents,
	}, nil
}

func (s *Site) AddChargingPoint(cp ChargingPoint) {
	s.ChargingPoints = append(s.ChargingPoints, cp)
	s.NChargingPoints++
}

func (s *Site) AddStationaryBattery(b Battery) {
	s.StationaryBatteries = append(s.StationaryBatteries, b)
}

func (s *Site) String() string {
	return fmt.Sprintf(
		"Site %d\n- Stationary Batteries: %v\n- Charging Points: %v",
		s.ID, s.StationaryBatteries, s.ChargingPoints,
	)
}
