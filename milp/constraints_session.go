package milp

import "fmt"

// addSessionConstraints enforces, via y_on/y_start/y_end indicators, that a
// battery has at most one contiguous "plugged in and actively dispatched"
// session across the horizon - the MILP-linearized counterpart of
// HasSingleSession used at validation time on historical connection data.
func addSessionConstraints(m *Model, in *Inputs, v *Vars) {
	if !in.Config.SingleContinuousSessionAllowed {
		return
	}

	for _, b := range in.Batteries {
		for step := 0; step < in.Horizon.T; step++ {
			yOn, ok := v.YOn.get(b.ID, step)
			if !ok {
				continue
			}
			chg, _ := v.Chg.get(b.ID, step)
			dis, _ := v.Dis.get(b.ID, step)

			// Power can only flow while the session is on.
			m.AddLeq(fmt.Sprintf("session_chg_gate[%d,%d]", b.ID, step), map[int]float64{
				chg: 1, yOn: -b.PowerChargeMax,
			}, 0)
			m.AddLeq(fmt.Sprintf("session_dis_gate[%d,%d]", b.ID, step), map[int]float64{
				dis: 1, yOn: -b.PowerDischargeMax,
			}, 0)

			yStart, _ := v.YStart.get(b.ID, step)
			yEnd, _ := v.YEnd.get(b.ID, step)

			if step == 0 {
				// y_start[0] = y_on[0]
				m.AddEq(fmt.Sprintf("session_start0[%d]", b.ID), map[int]float64{yStart: 1, yOn: -1}, 0)
			} else {
				yOnPrev, _ := v.YOn.get(b.ID, step-1)
				// y_start[t] >= y_on[t] - y_on[t-1]
				m.AddGeq(fmt.Sprintf("session_start[%d,%d]", b.ID, step), map[int]float64{
					yStart: 1, yOn: -1, yOnPrev: 1,
				}, 0)
				// y_end[t-1] >= y_on[t-1] - y_on[t]
				yEndPrev, _ := v.YEnd.get(b.ID, step-1)
				m.AddGeq(fmt.Sprintf("session_end[%d,%d]", b.ID, step-1), map[int]float64{
					yEndPrev: 1, yOnPrev: 1, yOn: -1,
				}, 0)
			}
			_ = yEnd
		}

		// At most one start, and symmetrically at most one end, across the
		// horizon => at most one session.
		startCoeffs := map[int]float64{}
		endCoeffs := map[int]float64{}
		for step := 0; step < in.Horizon.T; step++ {
			if yStart, ok := v.YStart.get(b.ID, step); ok {
				startCoeffs[yStart] = 1
			}
			if yEnd, ok := v.YEnd.get(b.ID, step); ok {
				endCoeffs[yEnd] = 1
			}
		}
		if len(startCoeffs) > 0 {
			m.AddLeq(fmt.Sprintf("single_session_start[%d]", b.ID), startCoeffs, 1)
		}
		if len(endCoeffs) > 0 {
			m.AddLeq(fmt.Sprintf("single_session_end[%d]", b.ID), endCoeffs, 1)
		}
	}
}
