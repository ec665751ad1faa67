package lattice

import (
	"math"
	"testing"

	"github.com/asymmetrica/crystalgen/internal/symmop"
)

func approxEqual(a, b, tol float64) bool { return math.Abs(a-b) < tol }

// TestCubicRoundTrip checks that a cubic cell's parameters survive
// ToMatrix -> Params.
func TestCubicRoundTrip(t *testing.T) {
	p := Params{A: 5, B: 5, C: 5, Alpha: math.Pi / 2, Beta: math.Pi / 2, Gamma: math.Pi / 2}
	m := p.ToMatrix()
	got := m.Params()
	if !approxEqual(got.A, p.A, 1e-9) || !approxEqual(got.B, p.B, 1e-9) || !approxEqual(got.C, p.C, 1e-9) {
		t.Errorf("lengths = %+v, want %+v", got, p)
	}
	if !approxEqual(got.Alpha, p.Alpha, 1e-9) || !approxEqual(got.Beta, p.Beta, 1e-9) || !approxEqual(got.Gamma, p.Gamma, 1e-9) {
		t.Errorf("angles = %+v, want %+v", got, p)
	}
}

func TestCubicVolume(t *testing.T) {
	p := Params{A: 4, B: 4, C: 4, Alpha: math.Pi / 2, Beta: math.Pi / 2, Gamma: math.Pi / 2}
	m := p.ToMatrix()
	if !approxEqual(m.Volume(), 64, 1e-6) {
		t.Errorf("Volume = %v, want 64", m.Volume())
	}
}

// TestMinImageDistanceWraps checks that two points near opposite faces of
// the cell are recognized as close via a periodic image.
func TestMinImageDistanceWraps(t *testing.T) {
	p := Params{A: 10, B: 10, C: 10, Alpha: math.Pi / 2, Beta: math.Pi / 2, Gamma: math.Pi / 2}
	m := p.ToMatrix()
	d := symmop.Vec3{X: 0.99, Y: 0, Z: 0} // 0.01 * 10 = 0.1 away via wraparound
	got := MinImageDistance(m, d, PBCNone)
	if !approxEqual(got, 0.1, 1e-6) {
		t.Errorf("MinImageDistance = %v, want 0.1", got)
	}
}

func TestImageOffsetsCount(t *testing.T) {
	if len(ImageOffsets(PBCNone)) != 27 {
		t.Errorf("got %d offsets, want 27", len(ImageOffsets(PBCNone)))
	}
	if len(ImageOffsets(PBCZ)) != 9 {
		t.Errorf("got %d offsets, want 9 for non-periodic z", len(ImageOffsets(PBCZ)))
	}
}

func TestAddVacuumGrowsCellAndCenters(t *testing.T) {
	p := Params{A: 5, B: 5, C: 5, Alpha: math.Pi / 2, Beta: math.Pi / 2, Gamma: math.Pi / 2}
	m := p.ToMatrix()
	coords := []symmop.Vec3{{X: 0.1, Y: 0.1, Z: 0.4}, {X: 0.5, Y: 0.5, Z: 0.6}}
	out := AddVacuum(m, coords, 10, 2)
	if !approxEqual(out[2].Z, 15, 1e-9) {
		t.Errorf("new c length = %v, want 15", out[2].Z)
	}
	mean := (coords[0].Z + coords[1].Z) / 2
	if !approxEqual(mean, 0.5, 1e-9) {
		t.Errorf("mean z after centering = %v, want 0.5", mean)
	}
}

func TestCenteringMultiplier(t *testing.T) {
	cases := map[byte]int{'P': 1, 'C': 2, 'I': 2, 'R': 3, 'F': 4}
	for letter, want := range cases {
		if got := CenteringMultiplier(letter); got != want {
			t.Errorf("CenteringMultiplier(%q) = %d, want %d", letter, got, want)
		}
	}
}
