// Package distcheck implements the periodic-image, covalent-radius-scaled
// minimum distance test a candidate orbit must pass against the atoms
// already placed in a structure, per spec §4.4 (the original's
// check_distance).
package distcheck

import (
	"github.com/asymmetrica/crystalgen/internal/elements"
	"github.com/asymmetrica/crystalgen/internal/lattice"
	"github.com/asymmetrica/crystalgen/internal/symmop"
)

// Species pairs a chemical symbol with its fractional-coordinate atoms,
// the accumulator shape the generator orchestrator builds up per
// species during packing.
type Species struct {
	Symbol string
	Coords []symmop.Vec3
}

// DFactor is the distance-checker's tolerance multiplier: a candidate
// pair is accepted iff its minimum-image distance exceeds
// DFactor * 0.5 * (r1+r2).
const DFactor = 1.0

// Accepts reports whether candidate (a new orbit of a single species) is
// at least the covalent-radius-scaled minimum distance from every atom
// already in existing. Distances within existing, or within candidate
// itself, are not checked — by construction the candidate orbit is
// already self-consistent via wyckoff.Merge.
func Accepts(m lattice.Matrix, pbc lattice.PBC, existing []Species, candidateSymbol string, candidate []symmop.Vec3) (bool, error) {
	rCandidate, err := elements.CovalentRadius(candidateSymbol)
	if err != nil {
		return false, err
	}
	for _, sp := range existing {
		rExisting, err := elements.CovalentRadius(sp.Symbol)
		if err != nil {
			return false, err
		}
		tolerance := DFactor * 0.5 * (rCandidate + rExisting)
		for _, p := range candidate {
			for _, q := range sp.Coords {
				d := lattice.MinImageDistance(m, q.Sub(p), pbc)
				if d < tolerance {
					return false, nil
				}
			}
		}
	}
	return true, nil
}
