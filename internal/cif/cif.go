// Package cif writes a minimal CIF 1.1 file for a generated structure,
// following the original's CifWriter(..., symprec=0.1) call: cell
// parameters plus a bare _atom_site loop. No symmetry operations are
// written, and the space group is always given as 'P 1'.
package cif

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"github.com/asymmetrica/crystalgen/internal/generator"
)

// Write renders s as a CIF 1.1 file and writes it to filename.
func Write(filename, dataName string, s generator.Structure) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create CIF file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := render(w, dataName, s); err != nil {
		return fmt.Errorf("failed to write CIF file: %w", err)
	}
	return w.Flush()
}

func render(w *bufio.Writer, dataName string, s generator.Structure) error {
	p := s.Matrix.Params()

	fmt.Fprintf(w, "data_%s\n", dataName)
	fmt.Fprintf(w, "_cell_length_a %.6f\n", p.A)
	fmt.Fprintf(w, "_cell_length_b %.6f\n", p.B)
	fmt.Fprintf(w, "_cell_length_c %.6f\n", p.C)
	fmt.Fprintf(w, "_cell_angle_alpha %.6f\n", degrees(p.Alpha))
	fmt.Fprintf(w, "_cell_angle_beta %.6f\n", degrees(p.Beta))
	fmt.Fprintf(w, "_cell_angle_gamma %.6f\n", degrees(p.Gamma))
	fmt.Fprintln(w, "_symmetry_space_group_name_H-M 'P 1'")
	fmt.Fprintln(w, "loop_")
	fmt.Fprintln(w, "_atom_site_label")
	fmt.Fprintln(w, "_atom_site_type_symbol")
	fmt.Fprintln(w, "_atom_site_fract_x")
	fmt.Fprintln(w, "_atom_site_fract_y")
	fmt.Fprintln(w, "_atom_site_fract_z")

	counts := make(map[string]int)
	for i, sym := range s.Species {
		counts[sym]++
		label := fmt.Sprintf("%s%d", sym, counts[sym])
		c := s.Coords[i]
		fmt.Fprintf(w, "%s %s %.6f %.6f %.6f\n", label, sym, c.X, c.Y, c.Z)
	}
	return nil
}

func degrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}
