package sat

import (
	"math/rand"
	"testing"
)

func TestVarHeap_PopMaxOrdering(t *testing.T) {
	h := newVarHeap(4, rand.New(rand.NewSource(1)))
	h.push(1, 1.0)
	h.push(2, 3.0)
	h.push(3, 2.0)
	h.push(4, 0.5)

	want := []int{2, 3, 1, 4}
	for _, w := range want {
		v, ok := h.popMax()
		if !ok {
			t.Fatalf("popMax: heap emptied early, want %d", w)
		}
		if v != w {
			t.Errorf("popMax() = %d, want %d", v, w)
		}
	}
	if _, ok := h.popMax(); ok {
		t.Errorf("popMax() on empty heap should report !ok")
	}
}

func TestVarHeap_PeekMaxDoesNotRemove(t *testing.T) {
	h := newVarHeap(3, rand.New(rand.NewSource(1)))
	h.push(1, 5.0)
	h.push(2, 1.0)
	vars := make([]variable, 3)
	vars[1], vars[2] = newVariable(), newVariable()

	for i := 0; i < 3; i++ {
		v, ok := h.peekMax(vars)
		if !ok || v != 1 {
			t.Fatalf("peekMax() iteration %d = (%d, %v), want (1, true)", i, v, ok)
		}
	}
	if !h.contains(1) {
		t.Errorf("peekMax should not remove the variable from the heap")
	}
}

func TestVarHeap_PeekMaxSkipsAssigned(t *testing.T) {
	h := newVarHeap(3, rand.New(rand.NewSource(1)))
	h.push(1, 5.0)
	h.push(2, 1.0)
	vars := make([]variable, 3)
	vars[1] = newVariable()
	vars[1].value = 0 // variable 1 is assigned, so it's no longer free
	vars[2] = newVariable()

	v, ok := h.peekMax(vars)
	if !ok || v != 2 {
		t.Fatalf("peekMax() = (%d, %v), want (2, true) skipping the assigned variable 1", v, ok)
	}
	if !h.contains(1) || !h.contains(2) {
		t.Errorf("peekMax should not remove any variable from the heap")
	}
}

func TestVarHeap_PushUpdatesExistingKey(t *testing.T) {
	h := newVarHeap(2, rand.New(rand.NewSource(1)))
	h.push(1, 1.0)
	h.push(2, 2.0)

	h.push(1, 10.0) // re-key, should now sort first

	v, ok := h.popMax()
	if !ok || v != 1 {
		t.Fatalf("popMax() = (%d, %v), want (1, true) after re-keying", v, ok)
	}
}

func TestVarHeap_GrowTo(t *testing.T) {
	h := newVarHeap(2, rand.New(rand.NewSource(1)))
	h.growTo(10)
	h.push(10, 1.0)

	v, ok := h.popMax()
	if !ok || v != 10 {
		t.Fatalf("popMax() = (%d, %v), want (10, true) after growTo", v, ok)
	}
}

func TestVarHeap_PopRandomStaysWithinQueued(t *testing.T) {
	h := newVarHeap(5, rand.New(rand.NewSource(7)))
	for v := 1; v <= 5; v++ {
		h.push(v, float64(v))
	}

	seen := map[int]bool{}
	for i := 0; i < 5; i++ {
		v, ok := h.popRandom()
		if !ok {
			t.Fatalf("popRandom: heap emptied early at iteration %d", i)
		}
		if seen[v] {
			t.Errorf("popRandom returned %d twice", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("popRandom should have drained all 5 variables, got %d", len(seen))
	}
}
