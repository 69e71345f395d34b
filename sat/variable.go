package sat

// variable is the per-variable record described in spec section 3: value,
// phase memory, trail position, reason clause, heap membership, EVSIDS
// activity, the conflict-analysis stamp, and the two watch lists.
//
// Variables are stored densely in a single slice indexed 1-based (index 0
// is an unused sentinel, mirroring the original solver's vector<Variable>
// and Knuth's 1-based convention) rather than as parallel per-field slices
// on Solver, because every invariant in spec section 3 is phrased in terms
// of one record per variable.
type variable struct {
	// value is -1 when free, otherwise level*2 + polarityBit where
	// polarityBit is 0 for true and 1 for false.
	value int

	// oval is the value at the moment this variable was last unassigned,
	// used for phase saving on the next decision.
	oval int

	// tloc is this variable's index on the trail, or -1 if unassigned.
	tloc int

	// reason is the index of the clause that forced this literal, or -1
	// if it was a decision or a unit.
	reason int

	// hloc reports whether this variable is currently in the activity
	// heap.
	hloc bool

	// activity is the EVSIDS score.
	activity float64

	// stamp is the generation counter compared against the solver's
	// current stamp during conflict analysis and minimization.
	stamp uint64

	// watchingTrue holds indices of clauses watching this variable's
	// positive literal; watchingFalse holds indices of clauses watching
	// its negative literal.
	watchingTrue  []int
	watchingFalse []int
}

func newVariable() variable {
	return variable{value: -1, tloc: -1, reason: -1}
}

// isFree reports whether the variable is currently unassigned.
func (v *variable) isFree() bool {
	return v.value == -1
}

// level returns the decision level the variable was assigned at. Only
// valid when the variable is not free.
func (v *variable) level() int {
	return v.value >> 1
}

// isTrue reports whether the given literal of this variable currently
// evaluates to true.
func (v *variable) isTrue(l Literal) bool {
	return v.value != -1 && v.value&1 == int(l&1)
}

// isFalse reports whether the given literal of this variable currently
// evaluates to false.
func (v *variable) isFalse(l Literal) bool {
	return v.value != -1 && v.value&1 != int(l&1)
}

// currentLiteral returns the literal of this variable consistent with its
// current assignment. Only valid when the variable is not free.
func (v *variable) currentLiteral(id int) Literal {
	return Literal(id<<1 | (v.value & 1))
}

// watchersFor returns the watch list that holds clauses watching literal l
// of this variable.
func (v *variable) watchersFor(l Literal) *[]int {
	if l.IsPositive() {
		return &v.watchingTrue
	}
	return &v.watchingFalse
}

// addToWatch registers clause c as a watcher of literal l.
func (v *variable) addToWatch(c int, l Literal) {
	w := v.watchersFor(l)
	*w = append(*w, c)
}

// removeFromWatch removes clause c from the watch list of literal l using
// swap-with-last, per spec section 4.1's invariant that a clause appears
// in a variable's watch list at most once.
func (v *variable) removeFromWatch(c int, l Literal) {
	w := v.watchersFor(l)
	for i, x := range *w {
		if x == c {
			last := len(*w) - 1
			(*w)[i] = (*w)[last]
			*w = (*w)[:last]
			return
		}
	}
}

// bumpActivity increases the variable's EVSIDS activity by delta, and
// reports whether the new activity crossed the rescale threshold.
func (v *variable) bumpActivity(delta float64) bool {
	v.activity += delta
	return v.activity > activityRescaleThreshold
}

// activityRescaleThreshold matches the original solver's Variable::threshold
// (10e100): once any variable's activity crosses it, every activity and DEL
// is divided by it to keep magnitudes bounded without disturbing their
// relative order.
const activityRescaleThreshold = 10e100
