package milp

import (
	"sort"
)

// Penalties holds the soft-constraint weights the objective assembler uses
// when Config softens what would otherwise be a hard bound. Calling code
// may override any of these via BuildOptions; defaultPenalties derives
// sensible defaults from the registered tariffs so that a penalty always
// dominates a genuine cost term (SPEC_FULL.md §4.4).
type Penalties struct {
	Full  float64 // λ_full, per kWh of terminal energy shortfall
	Spike float64 // λ_spike, per kW of step-to-step power change
	Limit float64 // λ_limit, per kW of soft site/grid limit breach
}

// defaultPenalties sets λ_full = 10x max tariff, λ_limit = 100x max tariff,
// and λ_spike = 0.001x the median import tariff, so that a unit of genuine
// energy/capacity cost never makes violating a soft constraint cheaper than
// respecting it.
func defaultPenalties(in *Inputs) Penalties {
	maxTariff := 0.0
	for _, r := range in.TariffImport {
		if r > maxTariff {
			maxTariff = r
		}
	}
	for _, r := range in.TariffExport {
		if r > maxTariff {
			maxTariff = r
		}
	}
	if maxTariff == 0 {
		maxTariff = 1
	}

	medianImport := median(in.TariffImport)
	if medianImport == 0 {
		medianImport = maxTariff
	}

	return Penalties{
		Full:  10 * maxTariff,
		Spike: 0.001 * medianImport,
		Limit: 100 * maxTariff,
	}
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// addObjective assembles the minimize-cost objective: energy import/export
// cost, capacity (demand) charge, triad surcharge, cycle-wear cost, flex
// market revenue (as a negative cost), and any penalty terms Config enables.
func addObjective(m *Model, in *Inputs, v *Vars, pen Penalties) {
	dt := in.Horizon.Dt
	tariffExport := in.TariffExport
	if len(tariffExport) == 0 {
		tariffExport = in.TariffImport
	}

	for step := 0; step < in.Horizon.T; step++ {
		if step < len(in.TariffImport) {
			m.AddObjTerm(v.PImp[step], in.TariffImport[step]*dt)
		}
		if step < len(tariffExport) {
			m.AddObjTerm(v.PExp[step], -tariffExport[step]*dt)
		}

		if in.Config.TriadMode == TriadPerStep {
			if step < len(in.TriadImport) {
				m.AddObjTerm(v.PImp[step], in.TriadImport[step])
			}
			if step < len(in.TriadExport) {
				m.AddObjTerm(v.PExp[step], in.TriadExport[step])
			}
		}

		if in.FlexEnabled() {
			for _, b := range in.Batteries {
				if fp, ok := v.FlexPos.get(b.ID, step); ok && step < len(in.FlexPricesPos) {
					m.AddObjTerm(fp, -in.FlexPricesPos[step])
				}
				if fn, ok := v.FlexNeg.get(b.ID, step); ok && step < len(in.FlexPricesNeg) {
					m.AddObjTerm(fn, -in.FlexPricesNeg[step])
				}
			}
		}

		if in.Config.PenalizeSpikyBehaviour {
			for _, b := range in.Batteries {
				if dp, ok := v.DPChg.get(b.ID, step); ok {
					m.AddObjTerm(dp, pen.Spike)
				}
				if dp, ok := v.DPDis.get(b.ID, step); ok {
					m.AddObjTerm(dp, pen.Spike)
				}
			}
		}

		if in.Config.LimitAsPenalty {
			if s, ok := v.SlackSiteChg[step]; ok {
				m.AddObjTerm(s, pen.Limit)
			}
			if s, ok := v.SlackSiteDis[step]; ok {
				m.AddObjTerm(s, pen.Limit)
			}
			if s, ok := v.SlackGridImp[step]; ok {
				m.AddObjTerm(s, pen.Limit)
			}
			if s, ok := v.SlackGridExp[step]; ok {
				m.AddObjTerm(s, pen.Limit)
			}
		}

		if in.Config.IncludeBatteryCosts {
			for _, b := range in.Batteries {
				chg, _ := v.Chg.get(b.ID, step)
				dis, _ := v.Dis.get(b.ID, step)
				m.AddObjTerm(chg, b.CycleCostPerKWh*dt)
				m.AddObjTerm(dis, b.CycleCostPerKWh*dt)
			}
		}
	}

	if in.Config.TriadMode == TriadCollapsedPeak {
		rate := firstNonZero(in.TriadImport)
		for step := 0; step < in.Horizon.T; step++ {
			m.AddObjTerm(v.PImp[step], rate*dt)
		}
	}

	if v.PeakImp >= 0 {
		m.AddObjTerm(v.PeakImp, in.CapacityTariffImport)
	}
	if v.PeakExp >= 0 {
		m.AddObjTerm(v.PeakExp, in.CapacityTariffExport)
	}

	if in.Config.FullyChargedAsPenalty {
		for _, b := range in.Batteries {
			if short, ok := v.EEndShort[b.ID]; ok {
				m.AddObjTerm(short, pen.Full)
			}
		}
	}
}

func firstNonZero(xs []float64) float64 {
	for _, x := range xs {
		if x != 0 {
			return x
		}
	}
	return 0
}
