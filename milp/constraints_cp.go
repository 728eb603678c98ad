package milp

import "fmt"

// addChargingPointConstraints ties battery power to the rated power of the
// charging point it is assigned to, and caps simultaneous assignment at the
// charging point's MaxBatteries (1 unless MultipleBatteriesPerCP is set).
func addChargingPointConstraints(m *Model, in *Inputs, v *Vars) {
	if !in.CPEnabled() {
		return
	}

	for step := 0; step < in.Horizon.T; step++ {
		for _, cp := range in.ChargingPoints {
			assignmentCoeffs := map[int]float64{}

			for _, b := range in.Batteries {
				chg, _ := v.Chg.get(b.ID, step)
				dis, _ := v.Dis.get(b.ID, step)

				if b.AffectedChargingPointID != nil {
					if *b.AffectedChargingPointID != cp.AssetID {
						continue
					}
					// Pinned batteries draw on the charging point's rating
					// directly, with no assignment binary.
					m.AddLeq(fmt.Sprintf("cp_chg_pinned[%d,%d,%d]", b.ID, cp.AssetID, step), map[int]float64{chg: 1}, cp.ChargingPowerKW)
					m.AddLeq(fmt.Sprintf("cp_dis_pinned[%d,%d,%d]", b.ID, cp.AssetID, step), map[int]float64{dis: 1}, cp.DischargingPowerKW)
					continue
				}

				if x, ok := v.XAssign.get(b.ID, cp.AssetID, step); ok {
					assignmentCoeffs[x] = 1
				}
			}

			if len(assignmentCoeffs) > 0 {
				capacity := 1.0
				if in.Config.MultipleBatteriesPerCP {
					capacity = float64(cp.MaxBatteries)
				}
				m.AddLeq(fmt.Sprintf("cp_capacity[%d,%d]", cp.AssetID, step), assignmentCoeffs, capacity)
			}
		}

		// Each freely-assignable battery may occupy at most one charging
		// point per step, and its power is bounded by the rating of the one
		// it is assigned to: chg[b,t] <= Sum_c P_c * x[b,c,t].
		for _, b := range in.Batteries {
			if b.AffectedChargingPointID != nil {
				continue
			}
			chg, _ := v.Chg.get(b.ID, step)
			dis, _ := v.Dis.get(b.ID, step)
			oneCPCoeffs := map[int]float64{}
			chgCoeffs := map[int]float64{chg: 1}
			disCoeffs := map[int]float64{dis: 1}
			for _, cp := range in.ChargingPoints {
				if x, ok := v.XAssign.get(b.ID, cp.AssetID, step); ok {
					oneCPCoeffs[x] = 1
					chgCoeffs[x] = -cp.ChargingPowerKW
					disCoeffs[x] = -cp.DischargingPowerKW
				}
			}
			if len(oneCPCoeffs) > 0 {
				m.AddLeq(fmt.Sprintf("battery_one_cp[%d,%d]", b.ID, step), oneCPCoeffs, 1)
				m.AddLeq(fmt.Sprintf("cp_chg_assigned[%d,%d]", b.ID, step), chgCoeffs, 0)
				m.AddLeq(fmt.Sprintf("cp_dis_assigned[%d,%d]", b.ID, step), disCoeffs, 0)
			}
		}
	}
}
