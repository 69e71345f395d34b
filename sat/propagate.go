package sat

// checkForcing implements Knuth's step C4: having just placed lit on the
// trail, check every clause that watches ¬lit. Each watcher either finds a
// new literal to watch, forces its remaining literal, or is now entirely
// false (a conflict). Reports whether a conflict was encountered; if one
// was and it was fully resolved (a clause learned and the solver
// backjumped), the trail already reflects the new state and the caller
// should resume processing from trail[G].
//
// Grounded on original_source/Solver.cpp::checkForcing: the watch list is
// snapshotted before iterating (propagate.go/clause.go may mutate the live
// watch lists as a side effect of finding new watches), and a conflict
// encountered at level 0 is unrecoverable.
func (s *Solver) checkForcing(lit Literal) bool {
	contradicted := lit.Opposite()
	v := &s.vars[lit.VarID()]
	watchers := *v.watchersFor(contradicted)

	toProcess := make([]int, len(watchers))
	copy(toProcess, watchers)

	for _, ci := range toProcess {
		c := s.clauses[ci]
		switch c.resolve(s, contradicted, ci) {
		case watchMoved:
			// Nothing further to do for this clause.
		case forced:
			s.pushForced(c.literals[0], ci)
		case conflicted:
			if s.fullRun {
				d := s.trail.depth()
				if s.conflicts[d] == 0 {
					s.conflicts[d] = ci
				}
				continue
			}

			if s.trail.depth() == 0 {
				s.solutionFailed = true
				return true
			}

			dprime := s.resolveConflict(c.literals, -1)
			s.backjump(dprime)
			s.removeRedundantLiterals()
			s.learn(dprime)
			return true
		}
	}

	return false
}
