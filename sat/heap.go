package sat

import (
	"math"
	"math/rand"

	"github.com/rhartert/yagh"
)

// varHeap orders free variables by EVSIDS activity, highest first, for
// decision selection (spec section 4.6). It wraps yagh.IntMap[float64],
// which pops the minimum key, so activities are stored negated.
//
// Grounded on internal/sat/ordering.go's VarOrder, extended with the
// operations spec 4.6 needs beyond plain push/pop: a peek that doesn't
// remove the top variable, and an occasional uniformly random pop for
// diversity. Both are built using only the yagh calls the teacher's code
// exercises (New, Put, Pop, Contains, GrowBy) since no broader API is
// documented.
type varHeap struct {
	order *yagh.IntMap[float64]

	// key mirrors the negated activity last Put for each variable, so a
	// peek can Pop and then Put the entry back with its original key
	// without needing to read a value back out of yagh's Pop result.
	key []float64

	// queued lists the variable IDs currently present in the heap, and
	// slot[v] is v's index into queued (or -1 if v isn't queued). This
	// side index exists only to support popRandom: yagh itself exposes
	// no way to enumerate or remove an arbitrary non-minimum entry.
	queued []int
	slot   []int

	rng *rand.Rand
}

func newVarHeap(n int, rng *rand.Rand) *varHeap {
	return &varHeap{
		order: yagh.New[float64](n),
		key:   make([]float64, n+1),
		slot:  initSlots(n + 1),
		rng:   rng,
	}
}

func initSlots(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = -1
	}
	return s
}

// growTo ensures the heap has room for variable IDs up to n.
func (h *varHeap) growTo(n int) {
	if n < len(h.slot)-1 {
		return
	}
	grow := n + 1 - len(h.slot)
	h.order.GrowBy(grow)
	h.key = append(h.key, make([]float64, grow)...)
	h.slot = append(h.slot, initSlots(grow)...)
}

// push inserts (or re-inserts, or updates the key of) variable v with the
// given activity.
func (h *varHeap) push(v int, activity float64) {
	k := -activity
	h.key[v] = k
	h.order.Put(v, k)
	if h.slot[v] == -1 {
		h.queued = append(h.queued, v)
		h.slot[v] = len(h.queued) - 1
	}
}

// contains reports whether v is currently in the heap.
func (h *varHeap) contains(v int) bool {
	return h.order.Contains(v)
}

func (h *varHeap) forget(v int) {
	i := h.slot[v]
	last := len(h.queued) - 1
	lv := h.queued[last]
	h.queued[i] = lv
	h.slot[lv] = i
	h.queued = h.queued[:last]
	h.slot[v] = -1
}

// popMax removes and returns the queued variable with the highest key. The
// variable may already be assigned; callers check that themselves.
func (h *varHeap) popMax() (int, bool) {
	e, ok := h.order.Pop()
	if !ok {
		return 0, false
	}
	h.forget(e.Elem)
	return e.Elem, true
}

// pop removes and returns the next candidate variable: usually the one
// with the highest activity, but 2% of the time (matching the original
// solver's Heap::pop(true), `(rand() % 1000) < 20`) a uniformly random
// queued variable instead, for diversity.
func (h *varHeap) pop() (int, bool) {
	if h.rng.Intn(1000) < 20 {
		if v, ok := h.popRandom(); ok {
			return v, true
		}
	}
	return h.popMax()
}

// peekMax returns the free variable with the highest activity without
// removing it from the heap, skipping over any assigned variables still
// sitting in the heap (forced-but-not-yet-popped variables keep hloc=true
// and remain queued until a decision pop discards them).
//
// Grounded on original_source/Heap.cpp::queryMaxFreeVariable, which loops
// past non-free entries from the root rather than returning the raw
// maximum.
func (h *varHeap) peekMax(vars []variable) (int, bool) {
	var skipped []int
	defer func() {
		for _, v := range skipped {
			h.order.Put(v, h.key[v])
		}
	}()

	for {
		e, ok := h.order.Pop()
		if !ok {
			return 0, false
		}
		skipped = append(skipped, e.Elem)
		if vars[e.Elem].isFree() {
			return e.Elem, true
		}
	}
}

// popRandom removes and returns a uniformly random queued variable (which
// may already be assigned), mirroring
// the original solver's Heap::pop(true): a random candidate is forced to
// the front (here, by giving it the minimum possible key) and then popped
// through the ordinary pop path.
func (h *varHeap) popRandom() (int, bool) {
	if len(h.queued) == 0 {
		return 0, false
	}
	v := h.queued[h.rng.Intn(len(h.queued))]
	h.order.Put(v, -math.MaxFloat64)
	e, ok := h.order.Pop()
	if !ok || e.Elem != v {
		// Should be unreachable: v was just made the unique minimum.
		return 0, false
	}
	h.forget(v)
	return v, true
}

// reheapify is called by the decision loop whenever conflict analysis has
// flagged the heap as corrupted, and does nothing. A variable's key is the
// activity it had when it was last pushed: activity bumps and rescaling of
// a variable that is still queued are not reflected in the heap order
// until backjump or a later push puts it in again with its current
// activity.
func (h *varHeap) reheapify() {}
