package heuristics

import (
	"math/rand"

	"github.com/gosat/dpllsat/internal/sat"
)

// RandomPhase chooses each decision's initial phase uniformly at random and
// declines to choose a variable (label-order fallback applies). Grounded on
// original_source/heuristics.py's choose_assn, which picks Assn.TRUE or
// Assn.FALSE via random.randint(0, 1).
type RandomPhase struct {
	rng *rand.Rand
}

// NewRandomPhase returns a RandomPhase heuristic seeded with seed, so that
// runs built with the same seed are reproducible (spec §8 property 7 only
// requires determinism of deterministic heuristics, but a fixed seed makes
// this one reproducible too, which is useful for debugging a specific run).
func NewRandomPhase(seed int64) *RandomPhase {
	return &RandomPhase{rng: rand.New(rand.NewSource(seed))}
}

func (*RandomPhase) ChooseVariable(*sat.Solver) (int, bool) { return 0, false }

func (h *RandomPhase) ChoosePhase(*sat.Solver, int) bool {
	return h.rng.Intn(2) == 1
}
