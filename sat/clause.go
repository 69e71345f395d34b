package sat

// clause is a single disjunction of literals. Clauses of length two or more
// are watched at literal positions 0 and 1; unit clauses from the input CNF
// never reach this type (they are pushed straight to the trail during
// construction, per spec section 4 and the original solver's constructor).
type clause struct {
	// literals holds the clause's literals. literals[0] and literals[1]
	// are always the two currently-watched literals.
	literals []Literal

	// ref is the pooled backing array for literals, reclaimed through
	// clausealloc.go when the clause is purged.
	ref *[]Literal

	// reasonFor is the variable number this clause is currently the
	// reason for, or -1 if it isn't any variable's reason. A clause with
	// reasonFor != -1 can't be purged (it is "locked").
	reasonFor int

	// isLearnt reports whether this clause was produced by conflict
	// analysis rather than given in the original CNF.
	isLearnt bool

	// activity is the clause-activity score used by clause-decay bumping;
	// only meaningful for learnt clauses.
	activity float64

	// rangeScore is the purge-eligibility score computed fresh by purge
	// over every learnt clause each time it runs (spec section 4.7); it
	// lies in [0, 255] and a score of 0 is never purged.
	rangeScore int
}

// propagateResult reports the outcome of resolving one contradicted clause
// against the literal that just falsified one of its watches.
type propagateResult int

const (
	// watchMoved means the clause found a new, non-false literal to
	// watch (or was already satisfied); nothing further to do.
	watchMoved propagateResult = iota
	// forced means literals[0] must be pushed onto the trail with this
	// clause as its reason.
	forced
	// conflicted means every literal in the clause is false.
	conflicted
)

// newClause builds a clause from lits, acquiring its backing storage from
// the literal pool. The caller is responsible for registering the initial
// watches on literals[0] and literals[1].
func newClause(lits []Literal, learnt bool) *clause {
	ref := allocLiterals(len(lits))
	*ref = append((*ref)[:0], lits...)
	return &clause{literals: *ref, ref: ref, isLearnt: learnt, reasonFor: -1}
}

// free returns the clause's backing storage to the pool. The clause must
// not be used afterward.
func (c *clause) free() {
	freeLiterals(c.ref)
	c.literals = nil
}

// resolve implements Knuth's Algorithm C step C4 for a single clause that
// watches the literal contradictedLiteral (i.e. ¬contradictedLiteral has
// just been forced true). idx is this clause's index in the solver's clause
// table, needed to update variable watch lists.
//
// Grounded directly on the original solver's checkForcing: a branchless
// swap puts the contradicted literal at position 1, then the clause tries
// to find a replacement watch among positions [2:); failing that, position
// 0 is either forced or, if already assigned false, reports a conflict.
func (c *clause) resolve(s *Solver, contradictedLiteral Literal, idx int) propagateResult {
	swap := 0
	if c.literals[1] != contradictedLiteral {
		swap = 1
	}
	c.literals[0], c.literals[swap] = c.literals[swap], c.literals[0]

	l0 := c.literals[0]
	v0 := &s.vars[l0.VarID()]
	if v0.isTrue(l0) {
		return watchMoved
	}

	for i := 2; i < len(c.literals); i++ {
		lx := c.literals[i]
		vx := &s.vars[lx.VarID()]
		if !vx.isFalse(lx) {
			l1 := c.literals[1]
			c.literals[1], c.literals[i] = c.literals[i], c.literals[1]
			vx.addToWatch(idx, lx)
			s.vars[l1.VarID()].removeFromWatch(idx, l1)
			return watchMoved
		}
	}

	if v0.isFree() {
		return forced
	}
	return conflicted
}
