package sat

import (
	"fmt"
	"io"
	"math/rand"
	"time"
)

// Options configures a Solver. Zero-value fields are invalid for the
// tunables below; start from DefaultOptions and override what you need,
// matching the teacher's Options/DefaultOptions convention.
type Options struct {
	// Seed drives both the initial variable-order shuffle and the heap's
	// occasional random pick. A nil Seed derives one from the current
	// time, as the original solver does when given a negative seed
	// argument.
	Seed *int64

	// NumVars declares a variable count floor. The solver's actual variable
	// count is the larger of NumVars and the highest variable number
	// referenced by cnf, matching the original constructor's dense,
	// gap-tolerant variable table (SPEC_FULL.md "Supplemented features" #1).
	// Zero means "infer from cnf alone".
	NumVars int

	// VariableRho is the damping factor dividing DEL (the variable
	// activity bump) after every learned clause; smaller values decay
	// faster, giving recently-active variables relatively more weight.
	VariableRho float64

	// ClauseRho and ClauseAlpha tune clause-activity bumping and the
	// purge range-score formula, respectively.
	ClauseRho   float64
	ClauseAlpha float64

	// PurgeCapDelta and PurgeLowerDelta govern how the learned-clause
	// count threshold that triggers a purge grows over time.
	PurgeCapDelta   int
	PurgeLowerDelta int

	// FlushPsi sets the target agility fraction (as 2^32 * psi) the
	// geometric flush schedule converges toward.
	FlushPsi float64

	// Trace, if non-nil, receives a line of progress text whenever the
	// solver purges or flushes. Nil disables all tracing.
	Trace io.Writer
}

// DefaultOptions mirrors the tunables used throughout the original
// solver's constructor (rho=0.9, clauseRho=0.9995, clauseAlpha=0.4,
// capDelta=1000, lowerDelta=500, psi=0.05).
var DefaultOptions = Options{
	VariableRho:     0.9,
	ClauseRho:       0.9995,
	ClauseAlpha:     0.4,
	PurgeCapDelta:   1000,
	PurgeLowerDelta: 500,
	FlushPsi:        0.05,
}

// Solver is a CDCL SAT solver following Knuth's Algorithm C (TAOCP
// 7.2.2.2): two-watched-literal propagation, first-UIP conflict analysis
// with redundant-literal minimization, EVSIDS variable and clause activity
// decay, range-score clause purging, and agility-driven trail flushing.
//
// Grounded on original_source/Solver.h/.cpp's field layout and Solve()
// state machine, with the Options/DefaultOptions configuration surface
// adapted from the teacher's internal/sat/solver.go.
type Solver struct {
	n         int // number of variables
	minLearnt int // first index in clauses that is a learned clause

	vars    []variable // 1-based; vars[0] is an unused sentinel
	clauses []*clause  // 1-based; clauses[0] is an unused sentinel
	trail   *trail
	heap    *varHeap
	rng     *rand.Rand

	b  []Literal // scratch buffer for the clause under construction
	ls []uint64  // level-stamp table, sized n+1

	stamp          uint64
	heapCorrupted  bool
	solutionFailed bool

	totalLearnedClauses int
	del                 float64
	variableRho         float64
	clauseRho           float64
	clauseAlpha         float64

	fullRun       bool
	conflicts     []int
	capDelta      int
	lowerDelta    int
	purgeThreshold int

	flushThreshold int
	uf, vf         int
	thetaF         uint64
	psi            float64

	trace io.Writer
}

// NewSolver builds a Solver over cnf, a conjunction of clauses each given
// as non-zero DIMACS-style signed integers. It returns an error if the
// input contains an empty clause or two contradictory unit clauses;
// unsatisfiability discovered later, during search, is instead reported
// through Solve's return value.
//
// Grounded on original_source/Solver.cpp's constructor: 1-based dense
// variable table grown to the highest literal seen, literals encoded as
// 2v/2v+1, unit clauses placed directly on the trail, and an
// initial-order shuffle of the free-variable list seeded by opts.Seed
// before it's loaded into the activity heap (SPEC_FULL.md "Supplemented
// features" #1-#2).
func NewSolver(cnf [][]int, opts Options) (*Solver, error) {
	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	s := &Solver{
		vars:           []variable{newVariable()},
		clauses:        []*clause{{reasonFor: -1}},
		trail:          newTrail(),
		rng:            rand.New(rand.NewSource(seed)),
		b:              make([]Literal, 0, 32),
		del:            1,
		variableRho:    opts.VariableRho,
		clauseRho:      opts.ClauseRho,
		clauseAlpha:    opts.ClauseAlpha,
		capDelta:       opts.PurgeCapDelta,
		lowerDelta:     opts.PurgeLowerDelta,
		purgeThreshold: opts.PurgeCapDelta,
		flushThreshold: 1,
		uf:             1,
		vf:             1,
		psi:            opts.FlushPsi,
		trace:          opts.Trace,
	}
	s.thetaF = 1

	for _, raw := range cnf {
		encoded := make([]Literal, len(raw))
		for i, x := range raw {
			if x == 0 {
				return nil, fmt.Errorf("sat: clause contains literal 0")
			}
			encoded[i] = fromSigned(x)
		}
		for _, lit := range encoded {
			s.growVarsTo(lit.VarID())
		}

		switch len(encoded) {
		case 0:
			return nil, fmt.Errorf("sat: empty clause in input")
		case 1:
			lit := encoded[0]
			v := &s.vars[lit.VarID()]
			if !v.isFree() {
				if (v.value^int(lit&1))&1 != 0 {
					return nil, fmt.Errorf("sat: contradictory unit clauses on variable %d", lit.VarID())
				}
				continue
			}
			s.pushForced(lit, -1)
		default:
			idx := len(s.clauses)
			c := newClause(encoded, false)
			s.clauses = append(s.clauses, c)
			l0, l1 := c.literals[0], c.literals[1]
			s.vars[l0.VarID()].addToWatch(idx, l0)
			s.vars[l1.VarID()].addToWatch(idx, l1)
		}
	}

	s.growVarsTo(opts.NumVars)

	s.minLearnt = len(s.clauses)
	s.n = len(s.vars) - 1
	s.ls = make([]uint64, s.n+1)
	s.conflicts = make([]int, 0, s.n+1)

	order := make([]int, s.n)
	for i := range order {
		order[i] = i + 1
	}
	s.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	s.heap = newVarHeap(s.n, s.rng)
	for _, v := range order {
		s.heap.push(v, s.vars[v].activity)
		s.vars[v].hloc = true
	}

	return s, nil
}

func (s *Solver) growVarsTo(v int) {
	for len(s.vars) <= v {
		s.vars = append(s.vars, newVariable())
	}
}

// Solve runs the CDCL search to completion and reports a model. Index 0
// of the result is a status flag matching the original's sentinel
// convention: when the problem is unsatisfiable the entire slice collapses
// to []bool{false}; otherwise index 0 is true and index v holds the truth
// value assigned to variable v.
//
// Grounded on original_source/Solver.cpp::Solve.
func (s *Solver) Solve() []bool {
	for {
		if s.trail.G == len(s.trail.lits) {
			if len(s.trail.lits) == s.n {
				maxConflict := 0
				if s.fullRun {
					for _, c := range s.conflicts {
						if c > maxConflict {
							maxConflict = c
						}
					}
				}
				if !s.fullRun || maxConflict == 0 {
					return s.buildModel()
				}
				s.fullRun = false
				s.tracef("full run finished, purging\n")
				s.purgeProcessing()
				continue
			} else if !s.fullRun && s.totalLearnedClauses > s.purgeThreshold {
				s.fullRun = true
				s.tracef("starting full run after %d learned clauses\n", s.totalLearnedClauses)
				for i := range s.conflicts {
					s.conflicts[i] = 0
				}
			} else if s.totalLearnedClauses >= s.flushThreshold {
				s.flushProcessing()
			}
			s.makeADecision()
		}

		conflict := false
		for {
			lit := s.trail.lits[s.trail.G]
			s.trail.G++
			conflict = s.checkForcing(lit)
			if conflict && s.solutionFailed {
				return []bool{false}
			}
			if !conflict {
				break
			}
		}
	}
}

// Value reports the current assignment of variable v: True or False once
// it has been placed on the trail, Unknown while it remains free. This is
// the lifted-boolean view of variable state used at the query boundary
// (e.g. by callers inspecting a partially-built solve, or printing
// progress), as opposed to the packed level/polarity encoding variables
// use internally.
func (s *Solver) Value(v int) LBool {
	vr := &s.vars[v]
	if vr.isFree() {
		return Unknown
	}
	return Lift(vr.value&1 == 0)
}

// NumVariables reports the number of variables in the instance.
func (s *Solver) NumVariables() int {
	return s.n
}

func (s *Solver) buildModel() []bool {
	solution := make([]bool, s.n+1)
	solution[0] = true
	for _, lit := range s.trail.lits {
		solution[lit.VarID()] = lit.IsPositive()
	}
	return solution
}

// makeADecision begins a new decision level and assigns the free variable
// with the highest activity (occasionally a random free variable instead,
// for diversity) using its saved phase.
//
// Grounded on original_source/Solver.cpp::makeADecision.
func (s *Solver) makeADecision() {
	s.trail.beginLevel()
	for len(s.conflicts) <= s.trail.depth() {
		s.conflicts = append(s.conflicts, 0)
	}

	if s.heapCorrupted {
		s.heap.reheapify()
		s.heapCorrupted = false
	}

	var v int
	for {
		next, ok := s.heap.pop()
		if !ok {
			panic("sat: heap exhausted before every variable was assigned")
		}
		s.vars[next].hloc = false
		if s.vars[next].isFree() {
			v = next
			break
		}
	}
	s.pushDecision(v)
}

func (s *Solver) tracef(format string, args ...any) {
	if s.trace != nil {
		fmt.Fprintf(s.trace, format, args...)
	}
}
