// Package tables bundles per-space-group Wyckoff position data: the
// orbit generator operations, multiplicities, and site symmetries that
// internal/wyckoff needs to place atoms. The data mirrors the shape
// get_wyckoffs/get_wyckoff_symmetry/get_wyckoff_generators read out of
// crystal.py's bundled CSVs, but transcribed here as Go map literals.
//
// Coverage is intentionally partial (see DATA COVERAGE in SPEC_FULL.md):
// the cubic and tetragonal point groups m-3, m-3m and 4/mmm are not
// transcribed by hand at all. Their point-group operations are exactly
// the signed permutations of the coordinate axes, a standard textbook
// fact about those crystal classes, so this file generates them instead
// of copying a table — lower transcription risk than retyping 24-96
// operator strings, and it reads as what it is: a closed-form
// description of a point group, not prose.
package tables

import "github.com/asymmetrica/crystalgen/internal/symmop"

// axisPermutation describes where each output axis's value comes from
// (which input axis) and what sign it carries.
type axisPermutation struct {
	from [3]int
	sign [3]float64
}

func permToOp(p axisPermutation) symmop.Op {
	var rot [3]symmop.Vec3
	for out := 0; out < 3; out++ {
		row := symmop.Vec3{}
		switch p.from[out] {
		case 0:
			row.X = p.sign[out]
		case 1:
			row.Y = p.sign[out]
		case 2:
			row.Z = p.sign[out]
		}
		rot[out] = row
	}
	return symmop.Op{Rot: rot}
}

func permSign(perm [3]int) int {
	// parity of the permutation by counting inversions
	inversions := 0
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if perm[i] > perm[j] {
				inversions++
			}
		}
	}
	if inversions%2 == 0 {
		return 1
	}
	return -1
}

// cubicOps returns the point-group operations fixing the origin for the
// cubic holohedries: m-3 (Th, order 24, evenOnly=true — even axis
// permutations under every sign combination) or m-3m (Oh, order 48, all
// six permutations under every sign combination).
func cubicOps(evenOnly bool) []symmop.Op {
	perms := [][3]int{
		{0, 1, 2}, {1, 2, 0}, {2, 0, 1}, // even
		{0, 2, 1}, {2, 1, 0}, {1, 0, 2}, // odd
	}
	var ops []symmop.Op
	for _, perm := range perms {
		if evenOnly && permSign(perm) != 1 {
			continue
		}
		for mask := 0; mask < 8; mask++ {
			signs := [3]float64{1, 1, 1}
			if mask&1 != 0 {
				signs[0] = -1
			}
			if mask&2 != 0 {
				signs[1] = -1
			}
			if mask&4 != 0 {
				signs[2] = -1
			}
			ops = append(ops, permToOp(axisPermutation{from: perm, sign: signs}))
		}
	}
	return ops
}

// tetragonalOps returns the 16 operations of 4/mmm: the dihedral-of-the-
// square action on (x,y) (identity and swap, times all sign combos) times
// an independent sign on z.
func tetragonalOps() []symmop.Op {
	xyPerms := [][2]int{{0, 1}, {1, 0}}
	var ops []symmop.Op
	for _, xy := range xyPerms {
		for mask := 0; mask < 4; mask++ {
			sx, sy := 1.0, 1.0
			if mask&1 != 0 {
				sx = -1
			}
			if mask&2 != 0 {
				sy = -1
			}
			for _, sz := range [2]float64{1, -1} {
				perm := axisPermutation{
					from: [3]int{xy[0], xy[1], 2},
					sign: [3]float64{sx, sy, sz},
				}
				ops = append(ops, permToOp(perm))
			}
		}
	}
	return ops
}

// withTranslations returns len(ops)*len(trans) operations: each op
// composed with each centering translation added afterwards, matching
// how a centered space group's general position is the point group's
// coset repeated at every centering vector.
func withTranslations(ops []symmop.Op, trans []symmop.Vec3) []symmop.Op {
	out := make([]symmop.Op, 0, len(ops)*len(trans))
	for _, t := range trans {
		for _, op := range ops {
			shifted := op
			shifted.Trans = op.Trans.Add(t)
			out = append(out, shifted)
		}
	}
	return out
}

var (
	noCentering = []symmop.Vec3{{}}
	iCentering  = []symmop.Vec3{{}, {X: 0.5, Y: 0.5, Z: 0.5}}
	fCentering  = []symmop.Vec3{{}, {X: 0.5, Y: 0.5}, {X: 0.5, Z: 0.5}, {Y: 0.5, Z: 0.5}}
)
