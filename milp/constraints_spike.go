package milp

import "fmt"

// addSpikeConstraints links the dp_chg/dp_dis auxiliary columns to the
// absolute step-to-step change in each battery's charge/discharge power, so
// the objective can penalize chattering (|chg[t]-chg[t-1]|, linearized the
// usual way as two one-sided bounds on a non-negative auxiliary variable).
func addSpikeConstraints(m *Model, in *Inputs, v *Vars) {
	if !in.Config.PenalizeSpikyBehaviour {
		return
	}

	for _, b := range in.Batteries {
		for step := 1; step < in.Horizon.T; step++ {
			dpChg, ok := v.DPChg.get(b.ID, step)
			if !ok {
				continue
			}
			dpDis, _ := v.DPDis.get(b.ID, step)

			chgNow, _ := v.Chg.get(b.ID, step)
			chgPrev, _ := v.Chg.get(b.ID, step-1)
			disNow, _ := v.Dis.get(b.ID, step)
			disPrev, _ := v.Dis.get(b.ID, step-1)

			// dp_chg[t] >= chg[t] - chg[t-1]   and   dp_chg[t] >= chg[t-1] - chg[t]
			m.AddGeq(fmt.Sprintf("dp_chg_pos[%d,%d]", b.ID, step), map[int]float64{
				dpChg: 1, chgNow: -1, chgPrev: 1,
			}, 0)
			m.AddGeq(fmt.Sprintf("dp_chg_neg[%d,%d]", b.ID, step), map[int]float64{
				dpChg: 1, chgNow: 1, chgPrev: -1,
			}, 0)

			m.AddGeq(fmt.Sprintf("dp_dis_pos[%d,%d]", b.ID, step), map[int]float64{
				dpDis: 1, disNow: -1, disPrev: 1,
			}, 0)
			m.AddGeq(fmt.Sprintf("dp_dis_neg[%d,%d]", b.ID, step), map[int]float64{
				dpDis: 1, disNow: 1, disPrev: -1,
			}, 0)
		}
	}
}
