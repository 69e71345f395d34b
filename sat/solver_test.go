package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// satisfies reports whether model (index 0 is the status flag) satisfies
// every clause of cnf, using the DIMACS signed-integer convention.
func satisfies(cnf [][]int, model []bool) bool {
	for _, clause := range cnf {
		ok := false
		for _, lit := range clause {
			v := lit
			if v < 0 {
				v = -v
			}
			if v >= len(model) {
				continue
			}
			if (lit > 0) == model[v] {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// pigeonhole builds the standard "pigeons pigeons into holes holes" CNF:
// variable (p-1)*holes+h means pigeon p sits in hole h. Grounded on
// xDarkicex-logic's createPigeonHolePrincipleAdvanced (same two clause
// families: every pigeon in some hole, no hole holding two pigeons),
// adapted to this package's plain []int clause convention.
func pigeonhole(pigeons, holes int) [][]int {
	v := func(p, h int) int { return (p-1)*holes + h }

	var cnf [][]int
	for p := 1; p <= pigeons; p++ {
		clause := make([]int, holes)
		for h := 1; h <= holes; h++ {
			clause[h-1] = v(p, h)
		}
		cnf = append(cnf, clause)
	}
	for h := 1; h <= holes; h++ {
		for p1 := 1; p1 <= pigeons; p1++ {
			for p2 := p1 + 1; p2 <= pigeons; p2++ {
				cnf = append(cnf, []int{-v(p1, h), -v(p2, h)})
			}
		}
	}
	return cnf
}

func mustSolve(t *testing.T, cnf [][]int, nVars int) []bool {
	t.Helper()
	opts := DefaultOptions
	opts.NumVars = nVars
	s, err := NewSolver(cnf, opts)
	if err != nil {
		return []bool{false}
	}
	return s.Solve()
}

func TestSolve_EndToEndScenarios(t *testing.T) {
	tests := []struct {
		name   string
		cnf    [][]int
		nVars  int
		wantSAT bool
	}{
		{
			name:    "scenario 1",
			cnf:     [][]int{{1, 2}, {-1, 3}, {2, -3}, {-2, -4}, {-3, 4}},
			nVars:   4,
			wantSAT: true,
		},
		{
			name: "scenario 2",
			cnf: [][]int{
				{1, 2, -3}, {2, 3, -4}, {3, 4, 1}, {4, -1, 2},
				{-1, -2, 3}, {-2, -3, 4}, {-3, -4, -1},
			},
			nVars:   4,
			wantSAT: true,
		},
		{
			name: "scenario 3 (scenario 2 plus one clause) is UNSAT",
			cnf: [][]int{
				{1, 2, -3}, {2, 3, -4}, {3, 4, 1}, {4, -1, 2},
				{-1, -2, 3}, {-2, -3, 4}, {-3, -4, -1},
				{-4, 1, -2},
			},
			nVars:   4,
			wantSAT: false,
		},
		{
			name:    "scenario 4",
			cnf:     [][]int{{1, 3}, {-2, -3, 5}, {2}},
			nVars:   5,
			wantSAT: true,
		},
		{
			name:    "scenario 5",
			cnf:     [][]int{{1}, {-1, 2, 3}, {-2, -1}},
			nVars:   3,
			wantSAT: true,
		},
		{
			name:    "pigeonhole 6 into 5 is UNSAT",
			cnf:     pigeonhole(6, 5),
			nVars:   30,
			wantSAT: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			model := mustSolve(t, tc.cnf, tc.nVars)
			if got := model[0]; got != tc.wantSAT {
				t.Fatalf("Solve() SAT = %v, want %v", got, tc.wantSAT)
			}
			if tc.wantSAT && !satisfies(tc.cnf, model) {
				t.Errorf("returned model does not satisfy every clause: %v", model)
			}
		})
	}
}

func TestSolve_ForcedAssignments(t *testing.T) {
	// Scenario 4: clause {2} forces variable 2 true.
	cnf := [][]int{{1, 3}, {-2, -3, 5}, {2}}
	model := mustSolve(t, cnf, 5)
	if !model[0] {
		t.Fatal("want SAT")
	}
	if !model[2] {
		t.Errorf("variable 2 should be forced true, got %v", model[2])
	}

	// Scenario 5: unit {1} forces 1=true, which with {-2,-1} forces 2=false.
	cnf = [][]int{{1}, {-1, 2, 3}, {-2, -1}}
	model = mustSolve(t, cnf, 3)
	if !model[0] {
		t.Fatal("want SAT")
	}
	if !model[1] {
		t.Errorf("variable 1 should be forced true")
	}
	if model[2] {
		t.Errorf("variable 2 should be forced false")
	}
	if !model[3] {
		t.Errorf("variable 3 should be forced true to satisfy {-1,2,3}")
	}
}

func TestSolve_EmptyCNF(t *testing.T) {
	model := mustSolve(t, nil, 0)
	if !model[0] {
		t.Fatal("empty CNF should be SAT")
	}
	if len(model) != 1 {
		t.Fatalf("expected trivial assignment, got %v", model)
	}
}

func TestSolve_SingleUnitClause(t *testing.T) {
	model := mustSolve(t, [][]int{{5}}, 5)
	if !model[0] {
		t.Fatal("want SAT")
	}
	if !model[5] {
		t.Errorf("variable 5 should be true")
	}
}

func TestNewSolver_ContradictingUnits(t *testing.T) {
	_, err := NewSolver([][]int{{1}, {-1}}, DefaultOptions)
	if err == nil {
		t.Fatal("want an error for contradicting unit clauses")
	}
}

func TestNewSolver_EmptyClause(t *testing.T) {
	_, err := NewSolver([][]int{{}}, DefaultOptions)
	if err == nil {
		t.Fatal("want an error for an empty clause")
	}
}

func TestSolve_Tautology(t *testing.T) {
	// A clause containing both polarities of a variable is trivially
	// satisfied; it should never constrain the search.
	cnf := [][]int{{1, -1}, {2}}
	model := mustSolve(t, cnf, 2)
	if !model[0] {
		t.Fatal("want SAT")
	}
	if !model[2] {
		t.Errorf("variable 2 should be forced true")
	}
}

func TestSolve_VariableGapTolerated(t *testing.T) {
	// Variables 2, 3 and 4 are never mentioned; the returned model should
	// still have a slot for each of them.
	cnf := [][]int{{1, 5}, {-1, 5}}
	model := mustSolve(t, cnf, 5)
	if !model[0] {
		t.Fatal("want SAT")
	}
	if len(model) != 6 {
		t.Fatalf("want a slot for every variable up to 5, got len %d", len(model))
	}
}

func TestSolve_Determinism(t *testing.T) {
	seed := int64(42)
	cnf := pigeonhole(5, 4)
	opts := DefaultOptions
	opts.Seed = &seed

	s1, err := NewSolver(cnf, opts)
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	m1 := s1.Solve()

	s2, err := NewSolver(cnf, opts)
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	m2 := s2.Solve()

	if !cmp.Equal(m1, m2) {
		t.Errorf("same seed produced different verdicts/models:\n%s", cmp.Diff(m1, m2))
	}
}
