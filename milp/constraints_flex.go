package milp

import (
	"fmt"

	"github.com/cepro/fleetoptimizer/assets"
)

// addFlexConstraints wires the flexibility-market offer variables: each
// battery's positive/negative flex offer cannot exceed its available
// charge/discharge headroom (gated by connection status), and marketed flex
// volumes (once accepted) are pinned as a site-aggregate floor across all
// batteries rather than a per-battery one.
func addFlexConstraints(m *Model, in *Inputs, v *Vars) {
	if !in.FlexEnabled() {
		return
	}

	for step := 0; step < in.Horizon.T; step++ {
		posCoeffs := map[int]float64{}
		negCoeffs := map[int]float64{}

		for _, b := range in.Batteries {
			chg, _ := v.Chg.get(b.ID, step)
			dis, _ := v.Dis.get(b.ID, step)
			flexPos, _ := v.FlexPos.get(b.ID, step)
			flexNeg, _ := v.FlexNeg.get(b.ID, step)

			conn := connectedAt(b, step)

			// flex_pos[b,t] <= chg[b,t] + p_dis_max(b)*conn[b,t]
			m.AddLeq(fmt.Sprintf("flex_pos_headroom[%d,%d]", b.ID, step), map[int]float64{
				flexPos: 1, chg: -1,
			}, conn*b.PowerDischargeMax)

			// flex_neg[b,t] <= p_chg_max(b)*conn[b,t] - chg[b,t] + dis[b,t]
			m.AddLeq(fmt.Sprintf("flex_neg_headroom[%d,%d]", b.ID, step), map[int]float64{
				flexNeg: 1, chg: 1, dis: -1,
			}, conn*b.PowerChargeMax)

			if in.Config.SymmetricalFlex {
				m.AddEq(fmt.Sprintf("flex_symmetry[%d,%d]", b.ID, step), map[int]float64{
					flexPos: 1, flexNeg: -1,
				}, 0)
			}

			posCoeffs[flexPos] += 1
			negCoeffs[flexNeg] += 1
		}

		if mv := marketedFlexAt(in.MarketedFlexPos, step); mv != nil {
			m.AddGeq(fmt.Sprintf("marketed_flex_pos[%d]", step), posCoeffs, *mv)
		}
		if mv := marketedFlexAt(in.MarketedFlexNeg, step); mv != nil {
			m.AddGeq(fmt.Sprintf("marketed_flex_neg[%d]", step), negCoeffs, *mv)
		}
	}
}

func connectedAt(b assets.Battery, step int) float64 {
	if step < len(b.Connected) && b.Connected[step] {
		return 1
	}
	return 0
}

func marketedFlexAt(series []*float64, step int) *float64 {
	if step < len(series) {
		return series[step]
	}
	return nil
}
