// Package fleetoptimizer is the top-level entry point: register assets and
// market data onto a FleetOptimizer, then call Optimize to build, solve,
// and project a MILP dispatch for the horizon those registrations imply
// (SPEC_FULL.md §2, component C8).
package fleetoptimizer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cepro/fleetoptimizer/assets"
	"github.com/cepro/fleetoptimizer/errs"
	"github.com/cepro/fleetoptimizer/horizon"
	"github.com/cepro/fleetoptimizer/milp"
	"github.com/cepro/fleetoptimizer/results"
	"github.com/cepro/fleetoptimizer/solver"
)

// FleetConfig is the explicit set of feature flags read once by Optimize.
// It is the same type the milp package builds constraints from.
type FleetConfig = milp.Config

// FleetOptimizer accumulates registrations (batteries, charging points,
// market data) and produces a dispatch via Optimize. It is not safe for
// concurrent registration or Optimize calls from multiple goroutines - the
// same single-call-at-a-time contract the Controller documents for its own
// channel-fed state.
type FleetOptimizer struct {
	config FleetConfig

	batteries      []assets.Battery
	chargingPoints []assets.ChargingPoint
	grid           *assets.Grid

	dateIndex []time.Time

	siteLoad []float64

	tariffImport []float64
	tariffExport []float64

	capacityTariffImport float64
	capacityTariffExport float64

	triadImport []float64
	triadExport []float64

	marketedVolumes []*float64

	flexPricesPos []float64
	flexPricesNeg []float64

	marketedFlexPos []*float64
	marketedFlexNeg []*float64

	siteLoadRestrictionCharge    *float64
	siteLoadRestrictionDischarge *float64

	dt float64
}

// New creates a FleetOptimizer with the given step size (hours) and
// feature configuration.
func New(dt float64, config FleetConfig) *FleetOptimizer {
	return &FleetOptimizer{
		dt:     dt,
		config: config,
	}
}

// AddBattery registers a mobile or stationary battery asset.
func (f *FleetOptimizer) AddBattery(b assets.Battery) {
	f.batteries = append(f.batteries, b)
}

// AddChargingPoint registers a shared charging point.
func (f *FleetOptimizer) AddChargingPoint(cp assets.ChargingPoint) {
	f.chargingPoints = append(f.chargingPoints, cp)
}

// AddGrid registers the site's grid connection limits.
func (f *FleetOptimizer) AddGrid(g assets.Grid) {
	f.grid = &g
}

// AddDateRange registers the absolute datetime labeling each step of the
// horizon; optional, used only for result labeling.
func (f *FleetOptimizer) AddDateRange(dates []time.Time) {
	f.dateIndex = dates
}

// AddPrices registers the per-step import/export energy tariffs, the
// capacity (demand charge) tariffs, and the triad surcharge series.
func (f *FleetOptimizer) AddPrices(tariffImport, tariffExport []float64, capacityImport, capacityExport float64, triadImport, triadExport []float64) {
	f.tariffImport = tariffImport
	f.tariffExport = tariffExport
	f.capacityTariffImport = capacityImport
	f.capacityTariffExport = capacityExport
	f.triadImport = triadImport
	f.triadExport = triadExport
}

// AddSiteLoad registers the site's fixed (non-battery) load series.
func (f *FleetOptimizer) AddSiteLoad(load []float64) {
	f.siteLoad = load
}

// AddSiteLimits registers a restriction on net site charge/discharge
// power, independent of the grid connection's limits. It is a hard bound
// unless Config.LimitAsPenalty is set, in which case breaches are
// penalized slack.
func (f *FleetOptimizer) AddSiteLimits(chargeLimitKW, dischargeLimitKW *float64) {
	f.siteLoadRestrictionCharge = chargeLimitKW
	f.siteLoadRestrictionDischarge = dischargeLimitKW
}

// AddMarketedVolumes registers committed net-power volumes (e.g. from a
// day-ahead market), pinning the site's net battery power at those steps.
func (f *FleetOptimizer) AddMarketedVolumes(volumes []*float64) {
	f.marketedVolumes = volumes
}

// AddFlex registers flex-market participation prices; nil/empty disables
// the flex market entirely.
func (f *FleetOptimizer) AddFlex(pricesPos, pricesNeg []float64) {
	f.flexPricesPos = pricesPos
	f.flexPricesNeg = pricesNeg
}

// AddMarketedFlex registers already-accepted flex offer volumes as floors
// on the flex variables.
func (f *FleetOptimizer) AddMarketedFlex(pos, neg []*float64) {
	f.marketedFlexPos = pos
	f.marketedFlexNeg = neg
}

// CancelToken is an alias of solver.CancelToken. New does not take one;
// an in-progress Optimize call is cancelled through the ctx passed to it.
type CancelToken = solver.CancelToken

// Optimize resolves the horizon, builds the MILP, solves it, and projects
// the solution into a FleetResult. It returns a *errs.ValidationError,
// *errs.ConfigError, or *errs.SolveError on failure, per SPEC_FULL.md §6.5.
func (f *FleetOptimizer) Optimize(ctx context.Context, opts solver.Options) (results.FleetResult, error) {
	in, h, err := f.snapshot()
	if err != nil {
		return results.FleetResult{}, err
	}

	slog.Info("Building fleet dispatch model",
		"num_batteries", len(in.Batteries),
		"num_charging_points", len(in.ChargingPoints),
		"horizon_steps", h.T,
		"dt_hours", h.Dt,
	)

	built, err := milp.Build(in, milp.BuildOptions{})
	if err != nil {
		return results.FleetResult{}, err
	}

	slog.Info("Solving fleet dispatch model", "num_vars", built.Model.NumVars())

	harness := solver.NewHarness()
	sol, err := harness.Solve(ctx, built.Model, opts)
	if err != nil {
		return results.FleetResult{}, fmt.Errorf("solving dispatch model: %w", err)
	}

	if sol.Status == solver.StatusInfeasible {
		return results.FleetResult{}, errs.Solve(errs.Infeasible, "fleet dispatch model is infeasible given the registered constraints")
	}
	if sol.Status == solver.StatusTimeout && len(sol.X) == 0 {
		return results.FleetResult{}, errs.Solve(errs.Timeout, "time limit reached before any integer-feasible dispatch was found")
	}

	slog.Info("Solved fleet dispatch model", "status", sol.Status.String(), "objective", sol.Objective, "nodes", sol.Nodes)

	return results.Project(h, in.Batteries, built.Vars, sol), nil
}

func (f *FleetOptimizer) snapshot() (milp.Inputs, horizon.Horizon, error) {
	series := []horizon.Series{
		{Name: "site_load", Len: len(f.siteLoad)},
		{Name: "tariff_import", Len: len(f.tariffImport)},
		{Name: "tariff_export", Len: len(f.tariffExport)},
	}
	for _, b := range f.batteries {
		if b.Kind == assets.KindStationary {
			continue // always connected; its Connected is expanded below
		}
		series = append(series, horizon.Series{Name: fmt.Sprintf("battery_%d_connected", b.ID), Len: len(b.Connected)})
	}

	h, err := horizon.Resolve(f.dt, f.dateIndex, series)
	if err != nil {
		return milp.Inputs{}, horizon.Horizon{}, err
	}

	batteries := make([]assets.Battery, len(f.batteries))
	copy(batteries, f.batteries)
	for i := range batteries {
		if batteries[i].Kind == assets.KindStationary {
			connected := make([]bool, h.T)
			for t := range connected {
				connected[t] = true
			}
			batteries[i].Connected = connected
		}
	}

	in := milp.Inputs{
		Horizon:                      h,
		Batteries:                    batteries,
		ChargingPoints:                f.chargingPoints,
		Grid:                          f.grid,
		SiteLoad:                      f.siteLoad,
		TariffImport:                  f.tariffImport,
		TariffExport:                  f.tariffExport,
		CapacityTariffImport:          f.capacityTariffImport,
		CapacityTariffExport:          f.capacityTariffExport,
		TriadImport:                   f.triadImport,
		TriadExport:                   f.triadExport,
		MarketedVolumes:               f.marketedVolumes,
		FlexPricesPos:                 f.flexPricesPos,
		FlexPricesNeg:                 f.flexPricesNeg,
		MarketedFlexPos:               f.marketedFlexPos,
		MarketedFlexNeg:               f.marketedFlexNeg,
		SiteLoadRestrictionCharge:     f.siteLoadRestrictionCharge,
		SiteLoadRestrictionDischarge:  f.siteLoadRestrictionDischarge,
		Config:                        f.config,
	}
	return in, h, nil
}
