//go:build !satdebug

package sat

import "github.com/sirupsen/logrus"

// autoCheckInvariants runs CheckInvariants only when the solver's logger is
// at debug level or below, i.e. when the caller ran with -vv (see
// cmd/dpllsat). Outside of -tags satdebug builds this is the only place
// invariant checking happens, so a production binary run without -vv pays
// nothing for it; see invariants_debug.go for the always-on build.
func (s *Solver) autoCheckInvariants() {
	if s.logger == nil || !s.logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	if err := s.CheckInvariants(); err != nil {
		invariantf("%s", err)
	}
}
