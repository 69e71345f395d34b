// Package parsers wraps github.com/rhartert/dimacs to load a DIMACS CNF
// file into the batch clause-slice form sat.NewSolver expects. This is
// ambient CLI/file I/O (spec.md section 1 lists DIMACS parsing as an
// external collaborator of the solver core), grounded on the teacher's
// parsers/parsers.go and adapted from its incremental AddVariable/AddClause
// builder interface to this module's constructor-based Solver API.
package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"
)

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS parses the DIMACS CNF file at filename and returns its clauses
// as signed-integer slices (DIMACS convention, see spec.md section 6) along
// with the declared variable count from the problem line.
func LoadDIMACS(filename string, gzipped bool) (cnf [][]int, nVars int, err error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return nil, 0, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &builder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, 0, err
	}
	return b.clauses, b.nVars, nil
}

// builder collects a parsed DIMACS instance into cnf/nVars form, implementing
// dimacs.Builder.
type builder struct {
	nVars   int
	clauses [][]int
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem")
	}
	b.nVars = nVars
	b.clauses = make([][]int, 0, nClauses)
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make([]int, len(tmpClause))
	copy(clause, tmpClause)
	b.clauses = append(b.clauses, clause)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}
