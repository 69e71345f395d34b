package sat

import "math"

// purgeProcessing runs at the end of a full run (one that ignored
// conflicts to gather range statistics): it resolves every conflict
// recorded per level, backjumps once to the shallowest of those
// resolutions, installs every clause tied for that minimum depth, scores
// every learnt clause by how "spread out" across levels it is, and purges
// the clauses whose range crosses a histogram-derived threshold.
//
// Grounded on original_source/Solver.cpp::purgeProcessing.
func (s *Solver) purgeProcessing() {
	minDprime := math.MaxInt32
	var toInstall [][]Literal

	for d := len(s.conflicts) - 1; d >= 0; d-- {
		ci := s.conflicts[d]
		if ci <= 0 {
			continue
		}
		c := s.clauses[ci]
		dprime := s.resolveConflict(c.literals, d)
		s.removeRedundantLiterals()

		if dprime < minDprime {
			toInstall = toInstall[:0]
			minDprime = dprime
		}
		if dprime == minDprime {
			snap := make([]Literal, len(s.b))
			copy(snap, s.b)
			toInstall = append(toInstall, snap)
		}
	}

	s.backjump(minDprime)
	for _, snap := range toInstall {
		s.b = append(s.b[:0], snap...)
		s.learn(minDprime)
	}

	s.scoreAndPurge()

	s.capDelta += s.lowerDelta
	s.purgeThreshold += s.capDelta
}

// scoreAndPurge computes a range score in [0, 255] for every learnt clause
// (0 for a clause that is currently a reason; a score of 0 is never
// purged) and removes enough of the highest-scoring clauses to
// retain only about half of them, using a 256-bucket histogram to find the
// cutoff score in a single linear pass instead of sorting.
func (s *Solver) scoreAndPurge() {
	for i := range s.ls {
		s.ls[i] = 0
	}
	var m [256]int

	for ci := s.minLearnt; ci < len(s.clauses); ci++ {
		c := s.clauses[ci]
		if c.reasonFor != -1 {
			c.rangeScore = 0
			continue
		}

		// r counts the distinct levels (>= 1) among the clause's
		// literals and p counts those of them that hold a true literal,
		// each level at most once; the clause's level stamps are 2*ci
		// (level seen) and 2*ci+1 (level seen with a true literal), so
		// they never collide with the next clause's. A literal true at
		// level 0 breaks the scan early, but (matching the original
		// exactly) the score below is still computed from whatever p
		// and r accumulated before the break, not set to a fixed value.
		p, r := 0, 0
		stamp := uint64(2 * ci)
		for _, lit := range c.literals {
			v := &s.vars[lit.VarID()]
			level := v.level()
			if level == 0 && v.isTrue(lit) {
				break
			}
			if level >= 1 && s.ls[level] < stamp {
				s.ls[level] = stamp
				r++
			}
			if level >= 1 && s.ls[level] == stamp && v.isTrue(lit) {
				s.ls[level] = stamp + 1
				p++
			}
		}
		a := int(math.Floor(16.0 * (float64(p) + s.clauseAlpha*float64(r-p))))
		if a > 255 {
			a = 255
		} else if a < 0 {
			a = 0
		}
		c.rangeScore = a
		m[a]++
	}

	learned := len(s.clauses) - s.minLearnt
	target := learned / 2

	sum, j := 0, 0
	for sum <= target && j < 256 {
		sum += m[j]
		j++
	}

	for i := s.minLearnt; i < len(s.clauses); {
		if s.clauses[i].rangeScore >= j {
			s.removeClauseAt(i)
			continue
		}
		i++
	}
}

// removeClauseAt deletes the clause at index i by swapping the last
// clause into its place, rewriting that moved clause's watches and reason
// pointer to its new index, and freeing the deleted clause's storage.
func (s *Solver) removeClauseAt(i int) {
	last := len(s.clauses) - 1
	moved := s.clauses[last]
	removed := s.clauses[i]

	s.clauses[i] = moved
	s.clauses = s.clauses[:last]

	if moved != removed {
		wl0, wl1 := moved.literals[0], moved.literals[1]
		s.vars[wl0.VarID()].removeFromWatch(last, wl0)
		s.vars[wl1.VarID()].removeFromWatch(last, wl1)
		s.vars[wl0.VarID()].addToWatch(i, wl0)
		s.vars[wl1.VarID()].addToWatch(i, wl1)
		if moved.reasonFor != -1 {
			s.vars[moved.reasonFor].reason = i
		}
	}

	rl0, rl1 := removed.literals[0], removed.literals[1]
	s.vars[rl0.VarID()].removeFromWatch(i, rl0)
	s.vars[rl1.VarID()].removeFromWatch(i, rl1)
	removed.free()
}
