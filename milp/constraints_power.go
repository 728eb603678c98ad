package milp

import "fmt"

// addPowerConstraints enforces per-battery power envelopes: charge/discharge
// exclusivity (a battery cannot do both in the same step), the
// power_charge_min floor, and connection gating (a disconnected mobile
// battery carries zero power).
func addPowerConstraints(m *Model, in *Inputs, v *Vars) {
	for _, b := range in.Batteries {
		for step := 0; step < in.Horizon.T; step++ {
			chg, _ := v.Chg.get(b.ID, step)
			dis, _ := v.Dis.get(b.ID, step)

			zChg, hasZ := v.ZChg.get(b.ID, step)
			zDis, _ := v.ZDis.get(b.ID, step)

			if hasZ {
				// chg <= P_max * z_chg, dis <= P_max * z_dis, z_chg+z_dis<=1
				m.AddLeq(fmt.Sprintf("chg_exclusive[%d,%d]", b.ID, step), map[int]float64{
					chg: 1, zChg: -b.PowerChargeMax,
				}, 0)
				m.AddLeq(fmt.Sprintf("dis_exclusive[%d,%d]", b.ID, step), map[int]float64{
					dis: 1, zDis: -b.PowerDischargeMax,
				}, 0)
				m.AddLeq(fmt.Sprintf("exclusivity[%d,%d]", b.ID, step), map[int]float64{
					zChg: 1, zDis: 1,
				}, 1)

				if b.PowerChargeMin > 0 {
					// chg >= P_min * z_chg  <=>  -chg + P_min*z_chg <= 0
					m.AddLeq(fmt.Sprintf("chg_floor[%d,%d]", b.ID, step), map[int]float64{
						chg: -1, zChg: b.PowerChargeMin,
					}, 0)
				}
			}

			if step < len(b.Connected) && !b.Connected[step] {
				m.AddEq(fmt.Sprintf("disconnected_chg[%d,%d]", b.ID, step), map[int]float64{chg: 1}, 0)
				m.AddEq(fmt.Sprintf("disconnected_dis[%d,%d]", b.ID, step), map[int]float64{dis: 1}, 0)
			}
		}
	}
}
