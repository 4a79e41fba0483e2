// Package sat implements the DPLL search engine described in the
// specification: two-watched-literal unit propagation and chronological
// backtracking over a CNF formula. It performs no I/O; parsing, logging
// configuration, and the decision heuristic are all supplied by callers
// (see the sibling dimacs, heuristics, and cmd packages).
package sat

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Solver holds a CNF formula and drives the DPLL search over it. The zero
// value is not usable; construct one with NewSolver or NewDefaultSolver.
type Solver struct {
	numVars int

	// Clause database. Every clause here has length >= 2; unit and empty
	// clauses are resolved directly against the trail at construction time
	// and never become a *Clause (see NewClause).
	constraints []*Clause
	numClauses  int
	clauseSeen  *clauseIDSet // scratch set over clause ids, used by CheckInvariants

	// Watch lists, indexed by literal: watchers[l] holds every clause that
	// currently watches l, i.e. has l as one of its two watched literals.
	watchers [][]watcher

	// Reused across Propagate calls to avoid allocating a new slice every
	// time a watch list is walked.
	tmpWatchers []watcher

	// Value currently assigned to each literal, indexed by literal.
	assigns []LBool

	// varLevel[v] is the decision level at which v was assigned, or -1 if
	// v is UNASSIGNED.
	varLevel []int

	// Trail: see trail.go for the full description of trail/trailLim/
	// decisionVar.
	trail       []Literal
	trailLim    []int
	decisionVar []int

	propQueue *literalQueue

	// Sticky flag: once true, the formula is permanently unsatisfiable
	// (either an empty clause was added, or forcing a root-level unit
	// clause conflicted with an earlier one).
	unsat bool

	heuristic Heuristic
	logger    *logrus.Logger

	stats struct {
		decisions    int64
		propagations int64
		conflicts    int64
		backtracks   int64
	}

	// Models accumulates satisfying assignments found by successive Solve
	// calls (a caller can block a found model with an extra clause and
	// call Solve again to enumerate solutions).
	Models [][]bool
}

// Options configures a Solver.
type Options struct {
	// Heuristic supplies variable and phase selection (spec §6). If nil,
	// the driver always picks the first unassigned variable in ascending
	// label order with phase TRUE.
	Heuristic Heuristic

	// Logger receives structured trace events at debug level and is
	// otherwise silent. Nil is equivalent to a logger with its output set
	// to io.Discard.
	Logger *logrus.Logger
}

// DefaultOptions is equivalent to a bare Options{}: no heuristic, no
// logging.
var DefaultOptions = Options{}

// NewDefaultSolver returns a solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// discardLogger returns a logger wired to discard every entry, used when
// the caller supplies no Logger.
func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// NewSolver returns a new, empty Solver (no variables, no clauses).
func NewSolver(opts Options) *Solver {
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	return &Solver{
		propQueue:  newLiteralQueue(128),
		clauseSeen: &clauseIDSet{},
		heuristic:  opts.Heuristic,
		logger:     logger,
	}
}

// NumVariables returns the number of variables declared so far.
func (s *Solver) NumVariables() int {
	return s.numVars
}

// NumConstraints returns the number of (non-unit, non-tautological) clauses
// currently in the formula.
func (s *Solver) NumConstraints() int {
	return len(s.constraints)
}

// Constraints returns the formula's clauses. Callers must not mutate the
// returned slice or the clauses it contains.
func (s *Solver) Constraints() []*Clause {
	return s.constraints
}

// PositiveLiteral returns the positive literal of variable v.
func (s *Solver) PositiveLiteral(v int) Literal {
	return PositiveLiteral(v)
}

// NegativeLiteral returns the negative literal of variable v.
func (s *Solver) NegativeLiteral(v int) Literal {
	return NegativeLiteral(v)
}

// AddVariable declares a new variable and returns its id.
func (s *Solver) AddVariable() int {
	v := s.numVars
	s.numVars++

	s.watchers = append(s.watchers, nil, nil) // one per literal
	s.assigns = append(s.assigns, Unknown, Unknown)
	s.varLevel = append(s.varLevel, -1)

	return v
}

// AddClause adds a clause to the formula. It must be called only at the
// root decision level (spec §3: clauses are owned by the formula and built
// during load). literal must have length >= 2; unit clauses must be
// resolved by the caller via ForceUnit before construction, and an empty
// clause must be reported via MarkUnsatisfiable — both per spec §1 and §9.
func (s *Solver) AddClause(literals []Literal) error {
	if s.decisionLevel() != 0 {
		return fmt.Errorf("sat: AddClause called at decision level %d, must be 0", s.decisionLevel())
	}
	if len(literals) < 2 {
		return fmt.Errorf("sat: AddClause requires at least two literals, got %d", len(literals))
	}

	c, ok := NewClause(s, literals)
	if c != nil {
		s.constraints = append(s.constraints, c)
	}
	if !ok {
		s.unsat = true
	}
	return nil
}

// ForceUnit pre-resolves a unit clause at the root level, as required by
// spec §9 before any clause of length < 2 reaches the core. Must be called
// at decision level 0. If l conflicts with an earlier root-level
// assignment, the solver is marked permanently unsatisfiable.
func (s *Solver) ForceUnit(l Literal) error {
	if s.decisionLevel() != 0 {
		return fmt.Errorf("sat: ForceUnit called at decision level %d, must be 0", s.decisionLevel())
	}
	if !s.forceRoot(l) {
		s.unsat = true
	}
	return nil
}

// MarkUnsatisfiable records that the formula is permanently unsatisfiable,
// e.g. because the loader encountered an empty clause (spec §9).
func (s *Solver) MarkUnsatisfiable() {
	s.unsat = true
}

// Solve runs the DPLL loop to completion and returns True or False.
// Unknown is never returned: the core is a decision procedure, not an
// anytime one (spec §4.5 has only SAT/UNSAT terminal states).
func (s *Solver) Solve() LBool {
	if s.unsat {
		return False
	}

	// Initial propagation (spec §4.5's "Key policies"): a no-op in
	// practice since every clause has >= 2 literals and no variable is
	// assigned yet, but performed for uniformity with every later
	// decision.
	if conflict := s.Propagate(); conflict != nil {
		s.unsat = true
		return False
	}
	s.autoCheckInvariants()

	for {
		if s.UnassignedCount() == 0 {
			s.saveModel()
			return True
		}

		variable, ok := s.pickUnassigned()
		if !ok {
			s.saveModel()
			return True
		}

		phase := s.choosePhase(variable)
		s.decide(variable, phase)
		s.stats.decisions++
		s.logger.WithFields(logrus.Fields{"variable": variable, "phase": phase}).Debug("decide")

		for {
			conflict := s.Propagate()
			s.stats.propagations++

			if conflict == nil {
				s.autoCheckInvariants()
				break
			}

			s.stats.conflicts++
			s.logger.WithField("clause", conflict).Debug("conflict")

			if s.decisionLevel() == 0 {
				s.unsat = true
				return False
			}

			dv := s.flipTopDecision()
			s.stats.backtracks++
			s.autoCheckInvariants()
			s.logger.WithField("variable", dv).Debug("backtrack")
		}
	}
}

func (s *Solver) saveModel() {
	model := make([]bool, s.numVars)
	for v := range model {
		model[v] = s.VarValue(v) != False
	}
	s.Models = append(s.Models, model)
}

// Stats returns the running search statistics, useful for -v debug
// tracing in the CLI.
func (s *Solver) Stats() (decisions, propagations, conflicts, backtracks int64) {
	return s.stats.decisions, s.stats.propagations, s.stats.conflicts, s.stats.backtracks
}
