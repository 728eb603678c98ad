package milp

import (
	"fmt"
	"math"
)

// declareVars adds every decision-variable column the given inputs require
// and returns the registry that the constraint library and objective
// assembler will look columns up in. This is the variable factory, C3 of
// SPEC_FULL.md.
func declareVars(m *Model, in *Inputs) *Vars {
	v := newVars()
	t := in.Horizon.T

	for _, b := range in.Batteries {
		for step := 0; step < t; step++ {
			chg := m.AddVar(fmt.Sprintf("chg[%d,%d]", b.ID, step), 0, b.PowerChargeMax, Continuous)
			v.Chg.set(b.ID, step, chg)

			dis := m.AddVar(fmt.Sprintf("dis[%d,%d]", b.ID, step), 0, b.PowerDischargeMax, Continuous)
			v.Dis.set(b.ID, step, dis)

			// Exclusivity binaries are only needed when a non-zero charge
			// floor requires linearization (power_charge_min > 0), or when
			// both directions are available and could otherwise be used
			// simultaneously at no cost.
			if b.PowerChargeMin > 0 || (b.PowerChargeMax > 0 && b.PowerDischargeMax > 0) {
				zChg := m.AddVar(fmt.Sprintf("z_chg[%d,%d]", b.ID, step), 0, 1, Binary)
				v.ZChg.set(b.ID, step, zChg)
				zDis := m.AddVar(fmt.Sprintf("z_dis[%d,%d]", b.ID, step), 0, 1, Binary)
				v.ZDis.set(b.ID, step, zDis)
			}

			if in.Config.PenalizeSpikyBehaviour && step > 0 {
				dpChg := m.AddVar(fmt.Sprintf("dp_chg[%d,%d]", b.ID, step), 0, math.Inf(1), Continuous)
				v.DPChg.set(b.ID, step, dpChg)
				dpDis := m.AddVar(fmt.Sprintf("dp_dis[%d,%d]", b.ID, step), 0, math.Inf(1), Continuous)
				v.DPDis.set(b.ID, step, dpDis)
			}

			if in.FlexEnabled() {
				fp := m.AddVar(fmt.Sprintf("flex_pos[%d,%d]", b.ID, step), 0, math.Inf(1), Continuous)
				v.FlexPos.set(b.ID, step, fp)
				fn := m.AddVar(fmt.Sprintf("flex_neg[%d,%d]", b.ID, step), 0, math.Inf(1), Continuous)
				v.FlexNeg.set(b.ID, step, fn)
			}

			if in.Config.SingleContinuousSessionAllowed {
				yOn := m.AddVar(fmt.Sprintf("y_on[%d,%d]", b.ID, step), 0, 1, Binary)
				v.YOn.set(b.ID, step, yOn)
				yStart := m.AddVar(fmt.Sprintf("y_start[%d,%d]", b.ID, step), 0, 1, Binary)
				v.YStart.set(b.ID, step, yStart)
				yEnd := m.AddVar(fmt.Sprintf("y_end[%d,%d]", b.ID, step), 0, 1, Binary)
				v.YEnd.set(b.ID, step, yEnd)
			}

			if in.CPEnabled() && b.AffectedChargingPointID == nil {
				for _, cp := range in.ChargingPoints {
					x := m.AddVar(fmt.Sprintf("x[%d,%d,%d]", b.ID, cp.AssetID, step), 0, 1, Binary)
					v.XAssign.set(b.ID, cp.AssetID, step, x)
				}
			}
		}

		// Energy content is tracked at T+1 step boundaries: e[0] is the
		// opening energy, e[T] is the terminal energy.
		for step := 0; step <= t; step++ {
			e := m.AddVar(fmt.Sprintf("e[%d,%d]", b.ID, step), b.EnergyMin, b.EnergyMax, Continuous)
			v.E.set(b.ID, step, e)
		}
	}

	// p_site is Sum_b(chg - dis), so its range follows from the batteries'
	// power maxima; a finite lower bound keeps the column expressible in the
	// solver's lower-bound-shifted standard form.
	pSiteLB, pSiteUB := 0.0, 0.0
	for _, b := range in.Batteries {
		pSiteLB -= b.PowerDischargeMax
		pSiteUB += b.PowerChargeMax
	}

	for step := 0; step < t; step++ {
		pSite := m.AddVar(fmt.Sprintf("p_site[%d]", step), pSiteLB, pSiteUB, Continuous)
		v.PSite[step] = pSite

		pImpUB := math.Inf(1)
		pExpUB := math.Inf(1)
		if in.Grid != nil && !in.Config.LimitAsPenalty {
			pImpUB = in.Grid.PurchasePowerLimit
			pExpUB = in.Grid.FeedPowerLimit
		}
		pImp := m.AddVar(fmt.Sprintf("p_imp[%d]", step), 0, pImpUB, Continuous)
		v.PImp[step] = pImp
		pExp := m.AddVar(fmt.Sprintf("p_exp[%d]", step), 0, pExpUB, Continuous)
		v.PExp[step] = pExp

		if in.Config.AllowCurtailment {
			curt := m.AddVar(fmt.Sprintf("curt[%d]", step), 0, math.Inf(1), Continuous)
			v.Curt[step] = curt
		}

		if in.Config.LimitAsPenalty {
			if in.SiteLoadRestrictionCharge != nil {
				s := m.AddVar(fmt.Sprintf("slack_site_chg[%d]", step), 0, math.Inf(1), Continuous)
				v.SlackSiteChg[step] = s
			}
			if in.SiteLoadRestrictionDischarge != nil {
				s := m.AddVar(fmt.Sprintf("slack_site_dis[%d]", step), 0, math.Inf(1), Continuous)
				v.SlackSiteDis[step] = s
			}
			if in.Grid != nil {
				s1 := m.AddVar(fmt.Sprintf("slack_grid_imp[%d]", step), 0, math.Inf(1), Continuous)
				v.SlackGridImp[step] = s1
				s2 := m.AddVar(fmt.Sprintf("slack_grid_dis[%d]", step), 0, math.Inf(1), Continuous)
				v.SlackGridExp[step] = s2
			}
		}
	}

	if in.CapacityTariffImport > 0 {
		v.PeakImp = m.AddVar("peak_imp", 0, math.Inf(1), Continuous)
	}
	if in.CapacityTariffExport > 0 {
		v.PeakExp = m.AddVar("peak_exp", 0, math.Inf(1), Continuous)
	}

	return v
}
