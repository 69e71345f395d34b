package sat

import "fmt"

// Literal is an encoded propositional literal. A variable v is encoded as
// the positive literal 2v and the negative literal 2v+1: polarity is the
// low bit, and the variable is recovered with l>>1.
type Literal int

// PositiveLiteral returns the positive literal of variable v.
func PositiveLiteral(v int) Literal {
	return Literal(v << 1)
}

// NegativeLiteral returns the negative literal of variable v.
func NegativeLiteral(v int) Literal {
	return Literal(v<<1 | 1)
}

// fromSigned converts a DIMACS-style signed integer (k or -k, k != 0) into
// its encoded literal.
func fromSigned(x int) Literal {
	if x < 0 {
		return NegativeLiteral(-x)
	}
	return PositiveLiteral(x)
}

// VarID returns the variable number of the literal.
func (l Literal) VarID() int {
	return int(l) >> 1
}

// IsPositive reports whether l is the positive polarity of its variable.
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the complement of l.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID())
	}
	return fmt.Sprintf("-%d", l.VarID())
}
