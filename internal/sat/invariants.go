package sat

import "fmt"

// CheckInvariants verifies the four assertions spec §7 requires at
// debug/test builds:
//
//	(a) no clause watches both of its watched literals FALSE;
//	(b) every clause's two watched literals list that clause in their
//	    watch list;
//	(c) every clause appearing in a literal's watch list has that literal
//	    as one of its two watched positions;
//	(d) a clause never watches the same literal twice, and never has
//	    w0 == w1.
//
// It is always compiled and always runs when called, so tests can call it
// directly regardless of build configuration; autoCheckInvariants, which
// Solve runs after each conflict-free Propagate and each backtrack, only
// checks under the satdebug build tag or at debug log level.
func (s *Solver) CheckInvariants() error {
	// registeredW0/registeredW1 track, independently, whether a clause was
	// found in the watch list of its own literals[0] and literals[1]. A
	// single shared flag would let a clause that is registered under one
	// watched literal but missing from the other slip through undetected.
	registeredW0 := make([]bool, s.numClauses)
	registeredW1 := make([]bool, s.numClauses)

	for l := Literal(0); int(l) < len(s.watchers); l++ {
		s.clauseSeen.Clear()
		for _, w := range s.watchers[l] {
			if s.clauseSeen.Contains(w.clause.id) {
				return fmt.Errorf("clause %s watches literal %s twice", w.clause, l)
			}
			s.clauseSeen.Add(w.clause.id)

			lits := w.clause.literals
			switch l {
			case lits[0]:
				registeredW0[w.clause.id] = true
			case lits[1]:
				registeredW1[w.clause.id] = true
			default:
				return fmt.Errorf("clause %s is in the watch list of %s but does not watch it", w.clause, l)
			}
		}
	}

	for _, c := range s.constraints {
		if c.literals[0] == c.literals[1] {
			return fmt.Errorf("clause %s has w0 == w1", c)
		}
		if s.Value(c.literals[0]) == False && s.Value(c.literals[1]) == False {
			return fmt.Errorf("clause %s watches both literals FALSE", c)
		}
		if !registeredW0[c.id] {
			return fmt.Errorf("clause %s's watched literal 0 (%s) does not list it in its watch list", c, c.literals[0])
		}
		if !registeredW1[c.id] {
			return fmt.Errorf("clause %s's watched literal 1 (%s) does not list it in its watch list", c, c.literals[1])
		}
	}

	return nil
}
