package cif

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/asymmetrica/crystalgen/internal/generator"
	"github.com/asymmetrica/crystalgen/internal/lattice"
	"github.com/asymmetrica/crystalgen/internal/symmop"
)

func TestWriteProducesValidCIF(t *testing.T) {
	m := lattice.Params{A: 5, B: 5, C: 5, Alpha: math.Pi / 2, Beta: math.Pi / 2, Gamma: math.Pi / 2}.ToMatrix()
	s := generator.Structure{
		Matrix:        m,
		Species:       []string{"Li", "Li"},
		AtomicNumbers: []int{3, 3},
		Coords:        []symmop.Vec3{{X: 0, Y: 0, Z: 0}, {X: 0.5, Y: 0.5, Z: 0.5}},
		Valid:         true,
	}

	path := filepath.Join(t.TempDir(), "out.cif")
	if err := Write(path, "test", s); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back CIF file: %v", err)
	}
	text := string(data)

	for _, want := range []string{
		"data_test",
		"_cell_length_a 5.000000",
		"_cell_angle_alpha 90.000000",
		"loop_",
		"_atom_site_fract_z",
		"Li1 Li 0.000000 0.000000 0.000000",
		"Li2 Li 0.500000 0.500000 0.500000",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("CIF output missing %q\ngot:\n%s", want, text)
		}
	}
}

func TestWriteLabelsAreUniquePerSpecies(t *testing.T) {
	m := lattice.Params{A: 5, B: 5, C: 5, Alpha: math.Pi / 2, Beta: math.Pi / 2, Gamma: math.Pi / 2}.ToMatrix()
	s := generator.Structure{
		Matrix:  m,
		Species: []string{"O", "Li", "O"},
		Coords: []symmop.Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: 0.25, Y: 0.25, Z: 0.25},
			{X: 0.75, Y: 0.75, Z: 0.75},
		},
		Valid: true,
	}

	path := filepath.Join(t.TempDir(), "out.cif")
	if err := Write(path, "labels", s); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back CIF file: %v", err)
	}
	text := string(data)
	for _, want := range []string{"O1 O", "Li1 Li", "O2 O"} {
		if !strings.Contains(text, want) {
			t.Errorf("CIF output missing %q\ngot:\n%s", want, text)
		}
	}
}
