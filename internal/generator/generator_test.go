package generator

import (
	"errors"
	"math/rand"
	"testing"
)

func TestGenerateSucceedsForTriclinic(t *testing.T) {
	// With the default 2/3 volume factor two Li atoms give a ~11.7 A^3 cell,
	// too small for three lattice vectors longer than minVec (2.56 A), so
	// this uses the larger factor 2.0.
	cfg := DefaultConfig(2, []string{"Li"}, []int{2})
	cfg.VolumeFactor = 2.0
	rng := rand.New(rand.NewSource(1))
	s, err := Generate(rng, cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !s.Valid {
		t.Fatal("returned structure not marked valid")
	}
	if len(s.Coords) != 2 || len(s.Species) != 2 || len(s.AtomicNumbers) != 2 {
		t.Errorf("got %d coords, %d species, %d atomic numbers, want 2 each",
			len(s.Coords), len(s.Species), len(s.AtomicNumbers))
	}
	for _, sp := range s.Species {
		if sp != "Li" {
			t.Errorf("species = %q, want Li", sp)
		}
	}
	if s.Matrix.Volume() <= 0 {
		t.Errorf("matrix volume = %v, want > 0", s.Matrix.Volume())
	}
}

func TestGenerateRejectsIncompatibleCounts(t *testing.T) {
	// C centering scales 3 primitive-cell atoms to 6, which is not divisible
	// by sg 15's smallest Wyckoff multiplicity (4).
	cfg := DefaultConfig(15, []string{"Li"}, []int{3})
	rng := rand.New(rand.NewSource(1))
	_, err := Generate(rng, cfg)
	if !errors.Is(err, ErrIncompatibleCounts) {
		t.Fatalf("Generate error = %v, want ErrIncompatibleCounts", err)
	}
}

func TestPrepareReducesBudgetWhenNoRotationalFreedom(t *testing.T) {
	// 8 atoms fill sg 2's eight unique inversion centers exactly, so the
	// structure has zero degrees of freedom and the reduced 5/5/5 budget
	// applies.
	cfg := DefaultConfig(2, []string{"Li"}, []int{8})
	prep, err := prepare(cfg)
	if err != nil {
		t.Fatalf("prepare failed: %v", err)
	}
	if prep.hasFreedom {
		t.Error("expected hasFreedom=false for an exactly-determined structure")
	}
	if prep.max1 != 5 || prep.max2 != 5 || prep.max3 != 5 {
		t.Errorf("budgets = %d/%d/%d, want 5/5/5", prep.max1, prep.max2, prep.max3)
	}
}

func TestPrepareKeepsFullBudgetWithRotationalFreedom(t *testing.T) {
	// 10 exceeds sg 2's eight unique inversion centers, so the greedy
	// compatibility pass must use the freedom-bearing general position for
	// the remaining 2 atoms.
	cfg := DefaultConfig(2, []string{"Li"}, []int{10})
	prep, err := prepare(cfg)
	if err != nil {
		t.Fatalf("prepare failed: %v", err)
	}
	if !prep.hasFreedom {
		t.Error("expected hasFreedom=true when the general position is available")
	}
	if prep.max1 != 30 || prep.max2 != 30 || prep.max3 != 30 {
		t.Errorf("budgets = %d/%d/%d, want 30/30/30", prep.max1, prep.max2, prep.max3)
	}
}

func TestGenerate2DAppliesPermutationAndVacuum(t *testing.T) {
	cfg := DefaultConfig(2, []string{"Li"}, []int{2})
	rng := rand.New(rand.NewSource(7))
	s, err := Generate2D(rng, cfg, 5.0, 10.0, [3]int{0, 1, 2})
	if err != nil {
		t.Fatalf("Generate2D failed: %v", err)
	}
	if !s.Valid {
		t.Fatal("returned structure not marked valid")
	}
	if len(s.Coords) != 2 {
		t.Errorf("got %d coords, want 2", len(s.Coords))
	}
	params := s.Matrix.Params()
	if params.C < 10.0 {
		t.Errorf("vacuum axis length = %v, want at least the 10.0 vacuum padding", params.C)
	}
}

func TestAxisCarrying(t *testing.T) {
	if got := axisCarrying([3]int{0, 1, 2}, 2); got != 2 {
		t.Errorf("axisCarrying(identity, 2) = %d, want 2", got)
	}
	if got := axisCarrying([3]int{2, 0, 1}, 2); got != 0 {
		t.Errorf("axisCarrying = %d, want 0", got)
	}
}

func TestMinVecUsesLargestSpecies(t *testing.T) {
	got, err := minVec([]string{"Li", "O"})
	if err != nil {
		t.Fatalf("minVec failed: %v", err)
	}
	// Li (1.28 A) is the larger of the two covalent radii.
	if want := 2 * 1.28; got != want {
		t.Errorf("minVec = %v, want %v", got, want)
	}
}

func TestTargetVolumeScalesWithCounts(t *testing.T) {
	v1, err := targetVolume(1.0, []int{1}, []string{"Li"})
	if err != nil {
		t.Fatalf("targetVolume failed: %v", err)
	}
	v2, err := targetVolume(1.0, []int{2}, []string{"Li"})
	if err != nil {
		t.Fatalf("targetVolume failed: %v", err)
	}
	if v2 <= v1 {
		t.Errorf("doubling the count should increase target volume: v1=%v v2=%v", v1, v2)
	}
}
