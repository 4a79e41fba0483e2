// Package dpllsat holds no production code of its own; this file is the
// instance-driven correctness suite for the engine, rooted here (rather
// than under internal/sat) so it can walk testdata/ the same way the
// teacher's own root-level test suite did.
package dpllsat

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gosat/dpllsat/internal/dimacs"
	"github.com/gosat/dpllsat/internal/sat"
)

// This suite verifies that the solver finds the exact set of models for
// every instance under testdataDir. Each instance's expected model set was
// computed by brute force (see internal/sat's own property tests for the
// brute-force oracle) for instances small enough to enumerate exhaustively.
var testdataDir = "testdata"

type testCase struct {
	instanceName string
	instanceFile string
	modelsFile   string
}

func listTestCases(dir string) ([]testCase, error) {
	var testCases []testCase
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".cnf") {
			return nil
		}
		testCases = append(testCases, testCase{
			instanceName: d.Name(),
			instanceFile: path,
			modelsFile:   path + ".models",
		})
		return nil
	})
	return testCases, err
}

func toString(model []bool) string {
	s := make([]byte, 0, len(model))
	for _, b := range model {
		if b {
			s = append(s, 1)
		} else {
			s = append(s, 0)
		}
	}
	return string(s)
}

func toSet(models [][]bool) map[string]struct{} {
	set := map[string]struct{}{}
	for _, m := range models {
		set[toString(m)] = struct{}{}
	}
	return set
}

// solveAll drives s to exhaustion, blocking each model found with a clause
// that forbids it, and returns every model found. Grounded on the teacher's
// own yass_test.go solveAll.
func solveAll(t *testing.T, s *sat.Solver) [][]bool {
	for s.Solve() == sat.True {
		model := s.Models[len(s.Models)-1]
		blocking := make([]sat.Literal, len(model))
		for i, b := range model {
			if b {
				blocking[i] = sat.NegativeLiteral(i)
			} else {
				blocking[i] = sat.PositiveLiteral(i)
			}
		}
		if len(blocking) < 2 {
			break // single-variable instance: nothing left to block meaningfully
		}
		// Solve leaves the decisions that produced the model on the trail;
		// AddClause requires decision level 0, so the search must first
		// unwind back to the root.
		s.BacktrackToRoot()
		if err := s.AddClause(blocking); err != nil {
			t.Fatalf("AddClause(blocking): %s", err)
		}
	}
	return s.Models
}

func TestSolveAll(t *testing.T) {
	testCases, err := listTestCases(testdataDir)
	if err != nil {
		t.Fatalf("listTestCases(%q): %s", testdataDir, err)
	}
	if len(testCases) == 0 {
		t.Fatalf("no test cases found under %q", testdataDir)
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.instanceName, func(t *testing.T) {
			t.Parallel()

			want, err := dimacs.LoadModels(tc.modelsFile)
			if err != nil {
				t.Fatalf("LoadModels(%q): %s", tc.modelsFile, err)
			}

			s := sat.NewDefaultSolver()
			if err := dimacs.Load(tc.instanceFile, s); err != nil {
				t.Fatalf("Load(%q): %s", tc.instanceFile, err)
			}

			got := solveAll(t, s)

			if len(got) != len(want) {
				t.Errorf("model count: got %d, want %d", len(got), len(want))
			}
			if diff := cmp.Diff(toSet(want), toSet(got)); diff != "" {
				t.Errorf("models mismatch (-want +got):\n%s", diff)
			}
			if err := s.CheckInvariants(); err != nil {
				t.Errorf("CheckInvariants after solveAll: %s", err)
			}
		})
	}
}
