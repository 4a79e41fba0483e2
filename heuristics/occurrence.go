package heuristics

import (
	"github.com/rhartert/yagh"

	"github.com/gosat/dpllsat/internal/sat"
)

// ByOccurrence orders decisions by the number of clauses a variable appears
// in, highest-occurrence first, using a yagh binary heap to avoid rescanning
// the formula on every decision.
//
// The heap is built lazily, on the first ChooseVariable call, from the
// formula installed on the solver at that point (spec §3: the formula is
// fixed before search starts, so this is safe). Popping is destructive: once
// a variable is popped it is not reinserted on backtrack, because
// sat.Heuristic (spec §6) gives a heuristic no backtrack notification to do
// so. A variable that becomes unassigned again after a flip is therefore no
// longer offered by this heuristic; the driver's own ascending-label-order
// fallback picks it up once every variable seen at heap-build time has
// either been assigned or popped. This trades optimality of later decisions
// for staying within the minimal heuristic interface.
type ByOccurrence struct {
	heap  *yagh.IntMap[float64]
	built bool
}

func (h *ByOccurrence) ChooseVariable(s *sat.Solver) (int, bool) {
	h.ensureBuilt(s)

	for {
		next, ok := h.heap.Pop()
		if !ok {
			return 0, false
		}
		if s.VarValue(next.Elem) == sat.Unknown {
			return next.Elem, true
		}
		// Already assigned by the time it was popped; discard and retry.
	}
}

func (*ByOccurrence) ChoosePhase(*sat.Solver, int) bool { return true }

func (h *ByOccurrence) ensureBuilt(s *sat.Solver) {
	if h.built {
		return
	}
	h.built = true

	n := s.NumVariables()
	counts := make([]int, n)
	for _, c := range s.Constraints() {
		for _, l := range c.Literals() {
			counts[l.VarID()]++
		}
	}

	h.heap = yagh.New[float64](0)
	h.heap.GrowBy(n)
	for v, count := range counts {
		h.heap.Put(v, -float64(count))
	}
}
