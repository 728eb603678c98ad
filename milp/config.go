package milp

// TriadMode selects how triad surcharges are folded into the objective
// (SPEC_FULL.md §4.4A resolves the ambiguity the distilled spec leaves
// open between per-step triad pricing and a demo-path peak collapse).
type TriadMode int

const (
	// TriadPerStep adds tau+[t]*p_imp[t] + tau-[t]*p_exp[t] to the
	// objective at every step.
	TriadPerStep TriadMode = iota
	// TriadCollapsedPeak adds a single Sum_t(tau * p_imp[t]) * dt term
	// using the first non-zero triad rate, matching the demo paths
	// referenced in spec.md §4.4.
	TriadCollapsedPeak
)

// Config is the explicit record of feature flags read once by Build, per
// the "re-architect as an explicit FleetConfig record" design note in
// spec.md §9. The fleetoptimizer package's FleetConfig is this same type.
type Config struct {
	// FullyChargedAsPenalty softens the terminal e_end equality into a
	// penalized shortfall rather than a hard equality.
	FullyChargedAsPenalty bool

	// SingleContinuousSessionAllowed enforces at most one contiguous
	// connected "session" per battery via y_on/y_start/y_end variables.
	SingleContinuousSessionAllowed bool

	// PenalizeSpikyBehaviour adds an L1 regularizer on step-to-step power
	// changes to discourage chattering.
	PenalizeSpikyBehaviour bool

	// IncludeBatteryCosts adds the cycle-wear term to the objective.
	IncludeBatteryCosts bool

	// AllowCurtailment enables the curt[t] variable so PV surplus can be
	// dropped instead of forcing an infeasible export.
	AllowCurtailment bool

	// CalculateSavings has no effect on the model built here, and
	// fleetoptimizer.Optimize does not read it: no baseline
	// (no-optimization) pass is run and no savings are reported.
	CalculateSavings bool

	// IncludeSiteLoadCosts is not read by Build. The site load always
	// enters the grid-balance rows, so it is priced through p_imp/p_exp
	// whether or not this is set.
	IncludeSiteLoadCosts bool

	// SymmetricalFlex forces flex_pos[b,t] == flex_neg[b,t].
	SymmetricalFlex bool

	// LimitAsPenalty softens site/grid power caps into penalized slack
	// rather than hard bounds.
	LimitAsPenalty bool

	// MultipleBatteriesPerCP relaxes the "one battery per charging point
	// per step" constraint to "up to N_c batteries", per
	// multiple_batteries_per_cp.py in the original source.
	MultipleBatteriesPerCP bool

	TriadMode TriadMode
}
