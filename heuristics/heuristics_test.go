package heuristics

import (
	"testing"

	"github.com/gosat/dpllsat/internal/sat"
)

func newSolverWithClauses(t *testing.T, nVars int, clauses [][]int, opts sat.Options) *sat.Solver {
	t.Helper()
	s := sat.NewSolver(opts)
	for i := 0; i < nVars; i++ {
		s.AddVariable()
	}
	for _, raw := range clauses {
		lits := make([]sat.Literal, len(raw))
		for i, l := range raw {
			if l < 0 {
				lits[i] = sat.NegativeLiteral(-l - 1)
			} else {
				lits[i] = sat.PositiveLiteral(l - 1)
			}
		}
		if err := s.AddClause(lits); err != nil {
			t.Fatalf("AddClause: %s", err)
		}
	}
	return s
}

func TestFirstUnassigned(t *testing.T) {
	var h FirstUnassigned

	s := newSolverWithClauses(t, 2, [][]int{{1, 2}}, sat.Options{})
	if _, ok := h.ChooseVariable(s); ok {
		t.Errorf("ChooseVariable() should always decline")
	}
	if !h.ChoosePhase(s, 0) {
		t.Errorf("ChoosePhase() = false, want true")
	}
}

func TestRandomPhase_isReproducibleWithFixedSeed(t *testing.T) {
	s := newSolverWithClauses(t, 1, nil, sat.Options{})

	h1 := NewRandomPhase(42)
	h2 := NewRandomPhase(42)

	for i := 0; i < 20; i++ {
		p1 := h1.ChoosePhase(s, 0)
		p2 := h2.ChoosePhase(s, 0)
		if p1 != p2 {
			t.Fatalf("iteration %d: phases diverged between two RandomPhase(42) instances", i)
		}
	}
}

func TestJeroslowWangPhase_choosesMajorityPolarity(t *testing.T) {
	// x1 appears positively in three clauses and negatively in one: should
	// be chosen TRUE. x2 appears negatively in three clauses, positively in
	// one: should be chosen FALSE.
	s := newSolverWithClauses(t, 2, [][]int{
		{1, 2}, {1, -2}, {1, -2}, {-1, -2},
	}, sat.Options{})

	h := &JeroslowWangPhase{}
	if got := h.ChoosePhase(s, 0); !got {
		t.Errorf("ChoosePhase(x1) = %v, want true", got)
	}
	if got := h.ChoosePhase(s, 1); got {
		t.Errorf("ChoosePhase(x2) = %v, want false", got)
	}
	if _, ok := h.ChooseVariable(s); ok {
		t.Errorf("ChooseVariable() should always decline")
	}
}

func TestByOccurrence_choosesMostFrequentVariableFirst(t *testing.T) {
	// x1 occurs in 3 clauses, x2 in 2, x3 in 1: successive pops should
	// return them in that order.
	s := newSolverWithClauses(t, 3, [][]int{
		{1, 2}, {1, 3}, {1, 2},
	}, sat.Options{})

	h := &ByOccurrence{}
	for _, want := range []int{0, 1, 2} {
		v, ok := h.ChooseVariable(s)
		if !ok || v != want {
			t.Fatalf("ChooseVariable() = (%d, %v), want (%d, true)", v, ok, want)
		}
	}
	if _, ok := h.ChooseVariable(s); ok {
		t.Errorf("ChooseVariable() after the heap drained should decline")
	}
}

func TestCombine_splitsVariableAndPhaseChoice(t *testing.T) {
	s := newSolverWithClauses(t, 2, [][]int{{1, 2}}, sat.Options{})

	chooser := &fixedChooser{variable: 1}
	phaser := &fixedPhaser{phase: false}
	h := Combine(chooser, phaser)

	v, ok := h.ChooseVariable(s)
	if !ok || v != 1 {
		t.Fatalf("ChooseVariable() = (%d, %v), want (1, true)", v, ok)
	}
	if got := h.ChoosePhase(s, 0); got {
		t.Errorf("ChoosePhase() = true, want false")
	}
}

type fixedChooser struct{ variable int }

func (f *fixedChooser) ChooseVariable(*sat.Solver) (int, bool) { return f.variable, true }
func (f *fixedChooser) ChoosePhase(*sat.Solver, int) bool      { return true }

type fixedPhaser struct{ phase bool }

func (f *fixedPhaser) ChooseVariable(*sat.Solver) (int, bool) { return 0, false }
func (f *fixedPhaser) ChoosePhase(*sat.Solver, int) bool      { return f.phase }
