package milp

import "fmt"

// addEnergyConstraints wires each battery's energy content across steps to
// its charge/discharge power, and pins the horizon boundary conditions.
func addEnergyConstraints(m *Model, in *Inputs, v *Vars) {
	dt := in.Horizon.Dt

	for _, b := range in.Batteries {
		e0, _ := v.E.get(b.ID, 0)
		m.AddEq(fmt.Sprintf("e_start[%d]", b.ID), map[int]float64{e0: 1}, b.EnergyStart)

		for step := 0; step < in.Horizon.T; step++ {
			eNow, _ := v.E.get(b.ID, step)
			eNext, _ := v.E.get(b.ID, step+1)
			chg, _ := v.Chg.get(b.ID, step)
			dis, _ := v.Dis.get(b.ID, step)

			// e[t+1] - e[t] - dt*eff_c*chg[t] + dt*dis[t]/eff_d = 0
			m.AddEq(fmt.Sprintf("energy_balance[%d,%d]", b.ID, step), map[int]float64{
				eNext: 1,
				eNow:  -1,
				chg:   -dt * b.EfficiencyCharge,
				dis:   dt / b.EfficiencyDischarge,
			}, 0)
		}

		eT, _ := v.E.get(b.ID, in.Horizon.T)
		if in.Config.FullyChargedAsPenalty {
			// Soft terminal target: e[T] + shortfall - surplus = e_end. Only
			// the shortfall is penalized in the objective; ending above
			// e_end carries no penalty.
			short := m.AddVar(fmt.Sprintf("e_end_short[%d]", b.ID), 0, b.EnergyMax-b.EnergyMin, Continuous)
			surplus := m.AddVar(fmt.Sprintf("e_end_surplus[%d]", b.ID), 0, b.EnergyMax-b.EnergyMin, Continuous)
			v.EEndShort[b.ID] = short
			v.EEndSurplus[b.ID] = surplus
			m.AddEq(fmt.Sprintf("e_end[%d]", b.ID), map[int]float64{
				eT:      1,
				short:   1,
				surplus: -1,
			}, b.EnergyEnd)
		} else {
			m.AddEq(fmt.Sprintf("e_end[%d]", b.ID), map[int]float64{eT: 1}, b.EnergyEnd)
		}
	}
}
