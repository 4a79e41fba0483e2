package sat

// Heuristic is the pluggable decision strategy the DPLL core delegates
// variable and phase selection to (spec §6). It is intentionally out of
// scope for the core search algorithm: implementations live in the
// top-level heuristics package and are supplied to NewSolver.
//
// Both methods are read-only with respect to the search state: they may
// inspect the trail and formula through the Solver's exported accessors but
// must not mutate anything.
type Heuristic interface {
	// ChooseVariable returns an UNASSIGNED variable to decide on next, and
	// true. It returns false to decline (equivalent to the source's
	// "not implemented" exception) and let the driver fall back to the
	// first unassigned variable in ascending label order.
	ChooseVariable(s *Solver) (variable int, ok bool)

	// ChoosePhase returns the phase (true = TRUE) for a decision on
	// variable. It is consulted on every decision, including a variable
	// decided again after a backtrack unassigned it; the flip after a
	// conflict does not consult it.
	ChoosePhase(s *Solver, variable int) bool
}
