package distcheck

import (
	"math"
	"testing"

	"github.com/asymmetrica/crystalgen/internal/lattice"
	"github.com/asymmetrica/crystalgen/internal/symmop"
)

func cubicMatrix(a float64) lattice.Matrix {
	return lattice.Params{A: a, B: a, C: a, Alpha: math.Pi / 2, Beta: math.Pi / 2, Gamma: math.Pi / 2}.ToMatrix()
}

func TestAcceptsFarApart(t *testing.T) {
	m := cubicMatrix(10)
	existing := []Species{{Symbol: "Li", Coords: []symmop.Vec3{{X: 0.1, Y: 0.1, Z: 0.1}}}}
	ok, err := Accepts(m, lattice.PBCNone, existing, "Li", []symmop.Vec3{{X: 0.9, Y: 0.9, Z: 0.9}})
	if err != nil {
		t.Fatalf("Accepts failed: %v", err)
	}
	if !ok {
		t.Error("expected acceptance for widely separated atoms")
	}
}

func TestRejectsTooClose(t *testing.T) {
	m := cubicMatrix(10)
	existing := []Species{{Symbol: "Li", Coords: []symmop.Vec3{{X: 0.1, Y: 0.1, Z: 0.1}}}}
	ok, err := Accepts(m, lattice.PBCNone, existing, "Li", []symmop.Vec3{{X: 0.101, Y: 0.1, Z: 0.1}})
	if err != nil {
		t.Fatalf("Accepts failed: %v", err)
	}
	if ok {
		t.Error("expected rejection for atoms well within the covalent-radius tolerance")
	}
}

func TestAcceptsWithNoExistingAtoms(t *testing.T) {
	m := cubicMatrix(10)
	ok, err := Accepts(m, lattice.PBCNone, nil, "Li", []symmop.Vec3{{X: 0.5, Y: 0.5, Z: 0.5}})
	if err != nil {
		t.Fatalf("Accepts failed: %v", err)
	}
	if !ok {
		t.Error("expected acceptance with no existing atoms to conflict with")
	}
}

func TestUnknownSpeciesErrors(t *testing.T) {
	m := cubicMatrix(10)
	if _, err := Accepts(m, lattice.PBCNone, nil, "Xx", []symmop.Vec3{{}}); err == nil {
		t.Error("expected error for unknown candidate species")
	}
}
