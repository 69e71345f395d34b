package sat

import "math"

// flushProcessing implements spec 4.8's agility-driven trail flush: a
// geometric schedule decides how often to even consider flushing, and
// when agility (recent phase-flip frequency) has dropped low enough, the
// solver keeps every decision level whose decision variable's activity is
// no lower than the best still-free variable's and backjumps to just below
// the first level whose decision variable's activity is lower —
// discarding decisions that are no longer well motivated without fully
// restarting.
//
// Grounded on original_source/Solver.cpp::flushProcessing. The original
// keeps a second implementation of the "should we flush at all" check, a
// switch cascade, commented out in favor of the flushThreshold/uf/vf/thetaF
// geometric schedule below; that schedule is authoritative here too.
func (s *Solver) flushProcessing() {
	s.flushThreshold += s.vf
	if (s.uf & -s.uf) == s.vf {
		s.uf++
		s.vf = 1
		s.thetaF = uint64(math.Pow(2, 32) * s.psi)
	} else {
		s.vf *= 2
		s.thetaF += s.thetaF >> 4
	}

	if int64(s.trail.agility) > int64(s.thetaF) {
		return
	}

	maxV, ok := s.heap.peekMax(s.vars)
	if !ok {
		return
	}
	maxActivity := s.vars[maxV].activity

	dprime := 0
	depth := s.trail.depth()
	for dprime < depth {
		startLit := s.trail.lits[s.trail.levels[dprime+1]]
		if s.vars[startLit.VarID()].activity < maxActivity {
			break
		}
		dprime++
	}
	if dprime < depth {
		s.tracef("flush: backjumping from level %d to %d\n", depth, dprime)
		s.backjump(dprime)
	}
}
