package sat

// watcher is one entry in a literal's watch list: a clause that currently
// watches the literal, plus a cached copy of the clause's other watched
// literal (the guard). If the guard is TRUE the clause is already satisfied
// and resolveWatch need not even be called — this lets Propagate skip
// touching most clauses on a hot path without it affecting correctness,
// since resolveWatch performs the identical check itself as its first step.
type watcher struct {
	clause *Clause
	guard  Literal
}

// watch registers c to be revisited when l becomes FALSE, caching guard (the
// clause's other watched literal) for the fast path in Propagate.
func (s *Solver) watch(c *Clause, l Literal, guard Literal) {
	s.watchers[l] = append(s.watchers[l], watcher{clause: c, guard: guard})
}

// Propagate drains the propagation queue to a fixed point, maintaining the
// watched-literal invariant. It returns the conflicting clause, or nil if
// propagation completed without conflict (WI then holds for every clause and
// the queue is empty).
func (s *Solver) Propagate() *Clause {
	for !s.propQueue.IsEmpty() {
		l := s.propQueue.Pop()

		ws := s.watchers[l]
		s.tmpWatchers = append(s.tmpWatchers[:0], ws...)
		s.watchers[l] = s.watchers[l][:0]

		for i, w := range s.tmpWatchers {
			if s.Value(l) != False {
				// l was re-enabled (e.g. by a backtrack that raced with this
				// snapshot); nothing to do for it. Defensive: does not occur
				// in the single-threaded driver but costs nothing to check.
				s.watchers[l] = append(s.watchers[l], w)
				continue
			}

			if s.Value(w.guard) == True {
				s.watchers[l] = append(s.watchers[l], w)
				continue
			}

			if w.clause.resolveWatch(s, l) {
				continue
			}

			// Conflict: resolveWatch has already re-registered the clause on
			// l (see Clause.resolveWatch), so only the untouched remainder of
			// the snapshot needs to be restored.
			s.watchers[l] = append(s.watchers[l], s.tmpWatchers[i+1:]...)
			s.propQueue.Clear()
			return w.clause
		}
	}

	return nil
}
