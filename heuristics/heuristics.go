// Package heuristics supplies reference implementations of the variable and
// phase selection strategy the core DPLL engine delegates to (spec §6). The
// core solver package never imports this package; callers wire one of these
// (or their own sat.Heuristic) into sat.Options.
package heuristics

import "github.com/gosat/dpllsat/internal/sat"

// FirstUnassigned is the explicit, nameable form of the driver's own
// built-in fallback: always decline to choose a variable (ascending label
// order then applies) and always choose phase TRUE. Grounded on
// original_source/heuristics.py's commented-out default policy ("simply
// uses the first unassigned variable" / "True first").
type FirstUnassigned struct{}

func (FirstUnassigned) ChooseVariable(*sat.Solver) (int, bool) { return 0, false }
func (FirstUnassigned) ChoosePhase(*sat.Solver, int) bool      { return true }

// Combine builds a Heuristic that takes its variable choice from chooser and
// its phase choice from phaser, letting the two concerns be picked
// independently (e.g. ByOccurrence's ordering with JeroslowWangPhase's
// phase).
func Combine(chooser, phaser sat.Heuristic) sat.Heuristic {
	return combined{chooser: chooser, phaser: phaser}
}

type combined struct {
	chooser sat.Heuristic
	phaser  sat.Heuristic
}

func (c combined) ChooseVariable(s *sat.Solver) (int, bool) { return c.chooser.ChooseVariable(s) }
func (c combined) ChoosePhase(s *sat.Solver, v int) bool    { return c.phaser.ChoosePhase(s, v) }
