package milp

import "github.com/cepro/fleetoptimizer/errs"

// BuildOptions lets a caller override the derived soft-constraint
// penalties; the zero value uses defaultPenalties.
type BuildOptions struct {
	Penalties *Penalties
}

// Result is everything Build produces: the assembled model and the
// variable registry the solver/result-projector packages need to read a
// solution back out.
type Result struct {
	Model *Model
	Vars  *Vars
	Pen   Penalties
}

// Build assembles a complete Model from Inputs: variables, then every
// constraint family in a fixed order, then the objective. The ordering
// mirrors the ordered composition of independent components the way a
// control loop runs each of its components in sequence - each family only
// reads the Vars columns it needs and never depends on another family
// having run first.
func Build(in Inputs, opts BuildOptions) (*Result, error) {
	if err := validateInputs(&in); err != nil {
		return nil, err
	}

	m := NewModel()
	v := declareVars(m, &in)

	addEnergyConstraints(m, &in, v)
	addPowerConstraints(m, &in, v)
	addSiteConstraints(m, &in, v)
	addFlexConstraints(m, &in, v)
	addChargingPointConstraints(m, &in, v)
	addSessionConstraints(m, &in, v)
	addSpikeConstraints(m, &in, v)

	pen := defaultPenalties(&in)
	if opts.Penalties != nil {
		pen = *opts.Penalties
	}
	addObjective(m, &in, v, pen)

	return &Result{Model: m, Vars: v, Pen: pen}, nil
}

func validateInputs(in *Inputs) error {
	if in.Horizon.T <= 0 {
		return errs.Validation("horizon", "horizon must have a positive number of steps")
	}
	if len(in.Batteries) == 0 {
		return errs.Validation("batteries", "at least one battery must be registered")
	}
	seen := map[int]bool{}
	for _, b := range in.Batteries {
		if seen[b.ID] {
			return errs.Validationf("batteries", "duplicate battery id %d", b.ID)
		}
		seen[b.ID] = true
		if len(b.Connected) != 0 && len(b.Connected) != in.Horizon.T {
			return errs.Validationf("batteries", "battery %d connected series length %d does not match horizon length %d", b.ID, len(b.Connected), in.Horizon.T)
		}
	}
	if in.Config.MultipleBatteriesPerCP {
		for _, cp := range in.ChargingPoints {
			if cp.MaxBatteries < 1 {
				return errs.Validationf("charging_points", "charging point %d must allow at least one battery", cp.AssetID)
			}
		}
	}
	return nil
}
