package milp

import "fmt"

// addSiteConstraints aggregates per-battery power into the site-level net
// power, balances it against grid import/export (with optional
// curtailment), tracks the billing peak for capacity-charge pricing, and
// applies any registered site-load restriction or marketed-volume pin.
func addSiteConstraints(m *Model, in *Inputs, v *Vars) {
	for step := 0; step < in.Horizon.T; step++ {
		coeffs := map[int]float64{}
		for _, b := range in.Batteries {
			chg, _ := v.Chg.get(b.ID, step)
			dis, _ := v.Dis.get(b.ID, step)
			coeffs[chg] += 1
			coeffs[dis] += -1
		}
		pSite := v.PSite[step]
		coeffs[pSite] = -1
		m.AddEq(fmt.Sprintf("p_site_def[%d]", step), coeffs, 0)

		siteLoad := 0.0
		if step < len(in.SiteLoad) {
			siteLoad = in.SiteLoad[step]
		}

		pImp := v.PImp[step]
		pExp := v.PExp[step]
		netCoeffs := map[int]float64{pSite: 1, pImp: -1, pExp: 1}
		rhs := -siteLoad

		if in.Config.AllowCurtailment {
			curt := v.Curt[step]
			netCoeffs[curt] = 1
		}
		if mv := marketedVolumeAt(in, step); mv != nil {
			// Pin net battery power to the committed value instead of
			// leaving it free.
			m.AddEq(fmt.Sprintf("marketed_volume[%d]", step), map[int]float64{pSite: 1}, *mv)
		}
		m.AddEq(fmt.Sprintf("grid_balance[%d]", step), netCoeffs, rhs)

		applySiteLoadRestriction(m, in, v, step)
		applyGridLimit(m, in, v, step)
	}

	addPeakTracking(m, in, v)
}

func marketedVolumeAt(in *Inputs, step int) *float64 {
	if step < len(in.MarketedVolumes) {
		return in.MarketedVolumes[step]
	}
	return nil
}

func applySiteLoadRestriction(m *Model, in *Inputs, v *Vars, step int) {
	pSite := v.PSite[step]

	if in.SiteLoadRestrictionCharge != nil {
		if in.Config.LimitAsPenalty {
			slack := v.SlackSiteChg[step]
			m.AddLeq(fmt.Sprintf("site_chg_limit[%d]", step), map[int]float64{
				pSite: 1, slack: -1,
			}, *in.SiteLoadRestrictionCharge)
		} else {
			m.AddLeq(fmt.Sprintf("site_chg_limit[%d]", step), map[int]float64{pSite: 1}, *in.SiteLoadRestrictionCharge)
		}
	}
	if in.SiteLoadRestrictionDischarge != nil {
		if in.Config.LimitAsPenalty {
			slack := v.SlackSiteDis[step]
			m.AddLeq(fmt.Sprintf("site_dis_limit[%d]", step), map[int]float64{
				pSite: -1, slack: -1,
			}, *in.SiteLoadRestrictionDischarge)
		} else {
			m.AddLeq(fmt.Sprintf("site_dis_limit[%d]", step), map[int]float64{pSite: -1}, *in.SiteLoadRestrictionDischarge)
		}
	}
}

func applyGridLimit(m *Model, in *Inputs, v *Vars, step int) {
	if in.Grid == nil || !in.Config.LimitAsPenalty {
		// Hard bounds are already encoded as the p_imp/p_exp variable
		// bounds declared in variables.go.
		return
	}
	pImp := v.PImp[step]
	pExp := v.PExp[step]
	slackImp := v.SlackGridImp[step]
	slackExp := v.SlackGridExp[step]
	m.AddLeq(fmt.Sprintf("grid_imp_limit[%d]", step), map[int]float64{
		pImp: 1, slackImp: -1,
	}, in.Grid.PurchasePowerLimit)
	m.AddLeq(fmt.Sprintf("grid_exp_limit[%d]", step), map[int]float64{
		pExp: 1, slackExp: -1,
	}, in.Grid.FeedPowerLimit)
}

// addPeakTracking links the peak_imp/peak_exp scalar columns (used for
// capacity/demand-charge pricing) to every step's import/export power: a
// running maximum, expressed linearly as peak >= p[t] for all t.
func addPeakTracking(m *Model, in *Inputs, v *Vars) {
	if v.PeakImp >= 0 {
		for step := 0; step < in.Horizon.T; step++ {
			pImp := v.PImp[step]
			m.AddLeq(fmt.Sprintf("peak_imp_ge[%d]", step), map[int]float64{
				pImp: 1, v.PeakImp: -1,
			}, 0)
		}
	}
	if v.PeakExp >= 0 {
		for step := 0; step < in.Horizon.T; step++ {
			pExp := v.PExp[step]
			m.AddLeq(fmt.Sprintf("peak_exp_ge[%d]", step), map[int]float64{
				pExp: 1, v.PeakExp: -1,
			}, 0)
		}
	}
}
