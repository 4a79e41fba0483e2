//go:build satdebug

package sat

// autoCheckInvariants is wired into the search loop after every successful
// Propagate and every backtrack. Building with -tags satdebug checks on
// every call regardless of logger level, for tests and debug builds that
// want the assertion unconditionally; see invariants_release.go for the
// logger-gated behavior used by a normal CLI build. It panics with an
// InvariantViolation (never a plain error) since these assertions catching
// anything means the solver itself is broken, not the input formula.
func (s *Solver) autoCheckInvariants() {
	if err := s.CheckInvariants(); err != nil {
		invariantf("%s", err)
	}
}
