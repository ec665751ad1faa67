package wyckoff

import (
	"math/rand"
	"testing"

	"github.com/asymmetrica/crystalgen/internal/lattice"
	"github.com/asymmetrica/crystalgen/internal/symmop"
)

func mustLoad(t *testing.T, sg int) Group {
	t.Helper()
	g, err := Load(sg)
	if err != nil {
		t.Fatalf("Load(%d) failed: %v", sg, err)
	}
	return g
}

func TestLoadParsesOperations(t *testing.T) {
	g := mustLoad(t, 2)
	if len(g.Positions) != 9 {
		t.Fatalf("sg2 has %d positions, want 9", len(g.Positions))
	}
	if g.Positions[0].Multiplicity() != 2 {
		t.Errorf("general position multiplicity = %d, want 2", g.Positions[0].Multiplicity())
	}
}

func TestOrganizedByMultiplicity(t *testing.T) {
	g := mustLoad(t, 15)
	groups := g.OrganizedByMultiplicity()
	if len(groups) == 0 {
		t.Fatal("no groups returned")
	}
	if groups[0][0].Multiplicity() != 8 {
		t.Errorf("first group multiplicity = %d, want 8", groups[0][0].Multiplicity())
	}
	for _, grp := range groups {
		m := grp[0].Multiplicity()
		for _, p := range grp {
			if p.Multiplicity() != m {
				t.Errorf("group mixes multiplicities: %d vs %d", p.Multiplicity(), m)
			}
		}
	}
}

func TestGenerateOrbitWrapsIntoCell(t *testing.T) {
	g := mustLoad(t, 2)
	orbit := GenerateOrbit(g.Positions[0], symmop.Vec3{X: 1.3, Y: -0.2, Z: 0.5})
	for _, p := range orbit {
		if p.X < 0 || p.X >= 1 || p.Y < 0 || p.Y >= 1 || p.Z < 0 || p.Z >= 1 {
			t.Errorf("orbit point out of [0,1): %+v", p)
		}
	}
}

func TestIdentifyGeneralPosition(t *testing.T) {
	g := mustLoad(t, 2)
	orbit := GenerateOrbit(g.Positions[0], symmop.Vec3{X: 0.2, Y: 0.31, Z: 0.47})
	idx, ok := Identify(g, orbit, lattice.PBCNone)
	if !ok {
		t.Fatal("Identify failed on a clean general-position orbit")
	}
	if idx != 0 {
		t.Errorf("Identify returned index %d, want 0 (general position)", idx)
	}
}

func TestIdentifySpecialPosition(t *testing.T) {
	g := mustLoad(t, 2)
	// position 'a' (index of multiplicity-1 WP at origin): its own orbit
	// is just {0,0,0}.
	var a Position
	for _, p := range g.Positions {
		if p.Multiplicity() == 1 {
			a = p
			break
		}
	}
	orbit := GenerateOrbit(a, symmop.Vec3{})
	idx, ok := Identify(g, orbit, lattice.PBCNone)
	if !ok {
		t.Fatal("Identify failed on the inversion-center special position")
	}
	if g.Positions[idx].Multiplicity() != 1 {
		t.Errorf("Identify matched multiplicity %d, want 1", g.Positions[idx].Multiplicity())
	}
}

// TestMergeCollapsesToSpecialPosition checks that a general-position seed
// placed exactly at an inversion center merges down to the multiplicity-1
// special position.
func TestMergeCollapsesToSpecialPosition(t *testing.T) {
	g := mustLoad(t, 2)
	m := lattice.Params{A: 10, B: 10, C: 10, Alpha: 1.5708, Beta: 1.5708, Gamma: 1.5708}.ToMatrix()
	orbit := GenerateOrbit(g.Positions[0], symmop.Vec3{})
	points, pos, ok := Merge(g, orbit, m, lattice.PBCNone, 1.0)
	if !ok {
		t.Fatal("Merge failed on a degenerate general-position orbit at the origin")
	}
	if pos.Multiplicity() != 1 {
		t.Errorf("merged position multiplicity = %d, want 1", pos.Multiplicity())
	}
	if len(points) != 1 {
		t.Errorf("merged point count = %d, want 1", len(points))
	}
}

func TestCheckCompatibleDivisibility(t *testing.T) {
	// sg 15's smallest Wyckoff multiplicity is 4, so a count of 3 cannot
	// be packed into any combination of its positions.
	g := mustLoad(t, 15)
	if ok, _ := CheckCompatible(g, []int{3}); ok {
		t.Error("expected incompatible: 3 is not divisible by the smallest multiplicity (4)")
	}
}

func TestCheckCompatibleZeroDegreesOfFreedom(t *testing.T) {
	g := mustLoad(t, 2)
	// Eight atoms fit exactly on sg 2's eight mult-1 inversion centers
	// before the greedy pass ever needs the (freedom-bearing) general
	// position, so the structure is fully determined.
	if ok, hasFreedom := CheckCompatible(g, []int{8}); !ok || hasFreedom {
		t.Errorf("expected compatible with zero freedom for 8 atoms on unique sites, got ok=%v hasFreedom=%v", ok, hasFreedom)
	}
}

func TestCheckCompatibleUsesGeneralPositionOnceSpecialsExhausted(t *testing.T) {
	g := mustLoad(t, 2)
	// 10 exceeds the 8 available unique inversion centers, so the greedy
	// pass must place the remaining 2 atoms on the (freedom-bearing)
	// general position.
	if ok, hasFreedom := CheckCompatible(g, []int{10}); !ok || !hasFreedom {
		t.Errorf("expected compatible with freedom for count 10, got ok=%v hasFreedom=%v", ok, hasFreedom)
	}
}

func TestChooseWyckoffReturnsFittingPosition(t *testing.T) {
	g := mustLoad(t, 15)
	organized := g.OrganizedByMultiplicity()
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		pos, ok := ChooseWyckoff(rng, organized, 4)
		if !ok {
			t.Fatal("ChooseWyckoff failed to find a fitting position for remaining=4")
		}
		if pos.Multiplicity() > 4 {
			t.Errorf("ChooseWyckoff returned multiplicity %d > remaining 4", pos.Multiplicity())
		}
	}
}

func TestChooseWyckoffFailsWhenNothingFits(t *testing.T) {
	g := mustLoad(t, 15)
	organized := g.OrganizedByMultiplicity()
	rng := rand.New(rand.NewSource(1))
	if _, ok := ChooseWyckoff(rng, organized, 0); ok {
		t.Error("expected failure for remaining=0")
	}
}
