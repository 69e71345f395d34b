package sat

// learn installs the clause built into s.b (and already minimized by
// removeRedundantLiterals) after a backjump to level dprime. A clause that
// reduced to a single literal (dprime == 0) is never instantiated: its
// literal is simply forced onto the trail as a level-0 fact. Otherwise the
// clause is appended to s.clauses, watched on its first two literals (the
// second of which must belong to level dprime, per Algorithm C), and its
// unique remaining free literal is forced.
//
// Grounded on original_source/Solver.cpp::learn.
func (s *Solver) learn(dprime int) {
	s.totalLearnedClauses++

	if dprime == 0 {
		s.pushForced(s.b[0], -1)
		s.del /= s.variableRho
		return
	}

	l0 := s.b[0]
	found := -1
	for i := 1; i < len(s.b); i++ {
		if s.vars[s.b[i].VarID()].level() == dprime {
			found = i
			break
		}
	}
	if found == -1 {
		panic("sat: no literal at backjump level in learned clause")
	}
	s.b[1], s.b[found] = s.b[found], s.b[1]

	c := newClause(s.b, true)
	idx := len(s.clauses)
	s.clauses = append(s.clauses, c)

	s.pushForced(l0, idx)

	l1 := c.literals[1]
	s.vars[l0.VarID()].addToWatch(idx, l0)
	s.vars[l1.VarID()].addToWatch(idx, l1)

	s.del /= s.variableRho
}
