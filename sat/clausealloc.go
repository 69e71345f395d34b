package sat

import (
	"math/bits"
	"sync"
)

// nPools is the number of power-of-two literal-slice pools kept for clause
// allocation. Pool i holds slices with capacity in [2^(i+1), 2^(i+2)-1]; the
// last pool holds everything at or above that.
const nPools = 6

// lastPoolCapa is the minimum capacity served by the last pool.
const lastPoolCapa = 1 << nPools

var litPools [nPools]sync.Pool

func init() {
	for i := 0; i < nPools; i++ {
		capa := 1 << (i + 1)
		litPools[i].New = func() any {
			s := make([]Literal, 0, capa)
			return &s
		}
	}
}

func litPoolID(capa int) int {
	if capa >= lastPoolCapa {
		return nPools - 1
	}
	if capa <= 1 {
		return 0
	}
	return bits.Len(uint(capa-1)) - 1
}

// allocLiterals returns an empty *[]Literal with at least capa capacity,
// reused from a pool when possible.
func allocLiterals(capa int) *[]Literal {
	ref := litPools[litPoolID(capa)].Get().(*[]Literal)
	if capa < lastPoolCapa {
		return ref
	}
	if cap(*ref) < capa {
		s := make([]Literal, 0, capa)
		ref = &s
	}
	return ref
}

// freeLiterals clears s and returns it to its pool so a later clause can
// reuse the backing array.
func freeLiterals(s *[]Literal) {
	*s = (*s)[:0]
	litPools[litPoolID(cap(*s))].Put(s)
}
