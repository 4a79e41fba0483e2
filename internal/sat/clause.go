package sat

import "strings"

// Clause is a fixed set of literals of length >= 2, with its two watched
// literals always kept in the first two slots of the literals slice; the
// order of the slice changes as watches move. Keeping the watched pair physically at positions 0 and 1
// (swapping elements into place as watches move) plays the role of the w0,
// w1 indices from the watched-literal invariant without needing to track
// separate index fields; the two positions are distinct by construction.
type Clause struct {
	id       int
	literals []Literal
}

// NewClause builds a clause from tmpLiterals, applying the root-level
// simplifications required before a clause can be registered: duplicate
// literals are dropped, a clause containing both a literal and its negation
// is recognized as a tautology, and literals already FALSE at the root are
// discarded. tmpLiterals is reordered in place and the clause stores its own
// copy of the kept literals; callers must not rely on tmpLiterals' order
// afterwards.
//
// Returns (clause, ok). ok is false only when the clause is a contradiction
// (reduces to the empty clause); clause is nil when no standalone Clause
// was needed, either because the clause was already satisfied (tautology or
// a literal already TRUE) or because it reduced to a single literal that was
// forced directly via s.forceRoot.
func NewClause(s *Solver, tmpLiterals []Literal) (*Clause, bool) {
	size := len(tmpLiterals)
	seen := map[Literal]struct{}{}

	for i := size - 1; i >= 0; i-- {
		if _, ok := seen[tmpLiterals[i].Opposite()]; ok {
			return nil, true // tautology: x and !x both present
		}
		if _, ok := seen[tmpLiterals[i]]; ok {
			size--
			tmpLiterals[i], tmpLiterals[size] = tmpLiterals[size], tmpLiterals[i]
			continue
		}
		seen[tmpLiterals[i]] = struct{}{}

		switch s.Value(tmpLiterals[i]) {
		case True:
			return nil, true // already satisfied
		case False:
			size--
			tmpLiterals[i], tmpLiterals[size] = tmpLiterals[size], tmpLiterals[i]
		}
	}
	tmpLiterals = tmpLiterals[:size]

	switch size {
	case 0:
		return nil, false // empty clause: contradiction
	case 1:
		return nil, s.forceRoot(tmpLiterals[0])
	default:
		c := &Clause{id: s.numClauses, literals: append([]Literal(nil), tmpLiterals...)}
		s.numClauses++
		s.clauseSeen.Expand()
		s.watch(c, c.literals[0], c.literals[1])
		s.watch(c, c.literals[1], c.literals[0])
		return c, true
	}
}

// IsWatchedTrue reports whether either of the clause's two watched literals
// is currently TRUE, in which case the clause is already satisfied and does
// not need attention regardless of what happens to the other watch.
func (c *Clause) IsWatchedTrue(s *Solver) bool {
	return s.Value(c.literals[0]) == True || s.Value(c.literals[1]) == True
}

// Literals returns the clause's literals. The first two are always the
// currently watched pair. Callers must not mutate the returned slice.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// resolveWatch is called when l, one of the clause's two watched literals,
// has just become FALSE. It implements the four outcomes from the
// watched-literal invariant maintenance contract:
//
//  1. If the clause is already satisfied through its other watch, the
//     falsified watch is left in place (tolerated until next visit).
//  2. Otherwise the clause is scanned, in literal order, for a replacement
//     watch that is TRUE or UNASSIGNED.
//  3. If none is found and the other watch is UNASSIGNED, it is forced TRUE.
//  4. If the other watch is FALSE too, the clause is in conflict.
//
// Returns false only in the conflict case.
func (c *Clause) resolveWatch(s *Solver, l Literal) bool {
	if c.literals[0] == l {
		c.literals[0], c.literals[1] = c.literals[1], c.literals[0]
	}
	// c.literals[1] is now l; c.literals[0] is the clause's other watch.

	if s.Value(c.literals[0]) == True {
		s.watch(c, l, c.literals[0])
		return true
	}

	for i := 2; i < len(c.literals); i++ {
		if s.Value(c.literals[i]) != False {
			c.literals[1], c.literals[i] = c.literals[i], c.literals[1]
			s.watch(c, c.literals[1], c.literals[0])
			return true
		}
	}

	// Unit: c.literals[0] is the only literal not FALSE. Re-watch on l (the
	// clause keeps watching it; nothing moved) before attempting to force,
	// so the clause stays registered on l even if forcing conflicts.
	s.watch(c, l, c.literals[0])
	return s.forceLiteral(c.literals[0])
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	sb.WriteByte('*')
	for i, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
		if i == 0 {
			sb.WriteByte('*')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
