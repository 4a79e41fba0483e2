// Package dimacs loads DIMACS CNF formulas (and their accompanying model
// files) into a sat.Solver. It is pure I/O glue: all CNF semantics (clause
// dedup, tautology and unit handling) live in the sat package, which this
// package calls into.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rhartert/dimacs"

	"github.com/gosat/dpllsat/internal/sat"
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
			file.Close()
			return nil, err
		}
	}
	return rc, nil
}

// Load reads the DIMACS CNF file at filename into s. Gzip compression is
// detected from a ".gz" filename suffix, not sniffed from content.
//
// A clause of length 0 marks s permanently unsatisfiable (spec §9); a
// clause of length 1 is resolved directly against the root level via
// s.ForceUnit rather than becoming a stored constraint, since the core
// never accepts clauses shorter than two literals.
func Load(filename string, s *sat.Solver) error {
	return LoadGzip(filename, strings.HasSuffix(filename, ".gz"), s)
}

// LoadGzip is Load with explicit control over gzip decompression, primarily
// useful for tests that exercise both a plain and a compressed fixture.
func LoadGzip(filename string, gzipped bool, s *sat.Solver) error {
	rc, err := reader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("dimacs: error reading file %q: %w", filename, err)
	}
	defer rc.Close()

	b := &builder{solver: s}
	if err := dimacs.ReadBuilder(rc, b); err != nil {
		return fmt.Errorf("dimacs: malformed input in %q: %w", filename, err)
	}
	return nil
}

// builder adapts a *sat.Solver to the github.com/rhartert/dimacs.Builder
// callback interface.
type builder struct {
	solver *sat.Solver
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("instances of type %q are not supported", problem)
	}
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	switch len(tmpClause) {
	case 0:
		b.solver.MarkUnsatisfiable()
		return nil
	case 1:
		return b.solver.ForceUnit(literal(tmpClause[0]))
	}

	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		clause[i] = literal(l)
	}
	return b.solver.AddClause(clause)
}

func literal(l int) sat.Literal {
	if l < 0 {
		return sat.NegativeLiteral(-l - 1)
	}
	return sat.PositiveLiteral(l - 1)
}

// LoadModels reads a DIMACS-formatted model file (one "clause" line per
// model, each entry the signed 1-based id of an assigned literal, no
// problem line) as produced by solutions checked into testdata. Grounded on
// the teacher's own internal/dimacs/models.go, rewritten against the
// rhartert/dimacs builder callback instead of a hand-rolled scanner so both
// loaders in this package share one parsing library.
func LoadModels(filename string) ([][]bool, error) {
	rc, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("dimacs: error reading file %q: %w", filename, err)
	}
	defer rc.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(rc, b); err != nil {
		return nil, fmt.Errorf("dimacs: malformed model file %q: %w", filename, err)
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(_ string, _ int, _ int) error {
	return fmt.Errorf("model files should not have a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
