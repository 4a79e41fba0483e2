package heuristics

import "github.com/gosat/dpllsat/internal/sat"

// JeroslowWangPhase implements the Jeroslow-Wang-like phase heuristic from
// spec §6: count the occurrences of a variable's positive and negative
// literal across every clause in the formula, and choose TRUE iff positive
// occurrences are at least negative occurrences. Counts are computed once,
// the first time ChoosePhase is called, and cached; this engine has no
// clause learning so the counts never need to change afterwards.
//
// ChooseVariable always declines, leaving variable order to whatever is
// combined with it (see Combine) or to the driver's label-order fallback.
type JeroslowWangPhase struct {
	positive []int
	negative []int
	built    bool
}

func (*JeroslowWangPhase) ChooseVariable(*sat.Solver) (int, bool) { return 0, false }

func (h *JeroslowWangPhase) ChoosePhase(s *sat.Solver, variable int) bool {
	h.ensureBuilt(s)
	return h.positive[variable] >= h.negative[variable]
}

func (h *JeroslowWangPhase) ensureBuilt(s *sat.Solver) {
	if h.built {
		return
	}
	h.built = true

	n := s.NumVariables()
	h.positive = make([]int, n)
	h.negative = make([]int, n)

	for _, c := range s.Constraints() {
		for _, l := range c.Literals() {
			if l.IsPositive() {
				h.positive[l.VarID()]++
			} else {
				h.negative[l.VarID()]++
			}
		}
	}
}
