// Package pointgroup prints the Hermann-Mauguin point-group symbol implied
// by a set of symmetry operations sharing a common origin (a site-symmetry
// group, or the full set of operations of a space group with translations
// stripped). Ported from the axis-combination algorithm in the original
// crystal.py's ss_string_from_ops: classify the operation along each of the
// 13 standard crystallographic axes, then combine the per-axis symbols
// following the slot convention of the operation's crystal family.
package pointgroup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/asymmetrica/crystalgen/internal/symmop"
)

// axis is one of the 13 standard directions point-group symbols are quoted
// against: the three cell edges, the four body diagonals, and the six
// face diagonals.
type axis struct {
	name string
	dir  symmop.Vec3
}

var standardAxes = []axis{
	{"x", symmop.Vec3{X: 1}},
	{"y", symmop.Vec3{Y: 1}},
	{"z", symmop.Vec3{Z: 1}},
	{"111", symmop.Vec3{X: 1, Y: 1, Z: 1}},
	{"1-11", symmop.Vec3{X: 1, Y: -1, Z: 1}},
	{"11-1", symmop.Vec3{X: 1, Y: 1, Z: -1}},
	{"-111", symmop.Vec3{X: -1, Y: 1, Z: 1}},
	{"110", symmop.Vec3{X: 1, Y: 1}},
	{"1-10", symmop.Vec3{X: 1, Y: -1}},
	{"101", symmop.Vec3{X: 1, Z: 1}},
	{"10-1", symmop.Vec3{X: 1, Z: -1}},
	{"011", symmop.Vec3{Y: 1, Z: 1}},
	{"01-1", symmop.Vec3{Y: 1, Z: -1}},
}

// Family names the crystal system used to pick which axis slots matter.
type Family int

const (
	Triclinic Family = iota
	Monoclinic
	Orthorhombic
	Tetragonal
	TrigonalHexagonal
	Cubic
)

const axisTol = 1e-3

// Symbol computes the Hermann-Mauguin symbol for ops (assumed to share the
// origin, i.e. site-symmetry or point-group operations with translation
// already stripped) given the crystal family that determines slot grouping.
func Symbol(ops []symmop.Op, fam Family) string {
	perAxis := make(map[string][]symmop.Analysis)
	for _, ax := range standardAxes {
		perAxis[ax.name] = nil
	}
	for _, op := range ops {
		a := symmop.Analyze(op)
		switch a.Kind {
		case symmop.KindIdentity, symmop.KindInversion:
			continue // not quoted against any axis
		}
		for _, ax := range standardAxes {
			if axisMatches(a.Axis, ax.dir) {
				perAxis[ax.name] = append(perAxis[ax.name], a)
			}
		}
	}

	hasInversion := false
	for _, op := range ops {
		if symmop.Analyze(op).Kind == symmop.KindInversion {
			hasInversion = true
		}
	}

	slots := slotsFor(fam)
	var parts []string
	for _, slot := range slots {
		sym := highestSymbolAmong(slot, perAxis)
		if sym == "" {
			sym = "1"
		}
		parts = append(parts, sym)
	}
	parts = dedupTrailingOnes(parts)
	symbol := strings.Join(parts, "")
	if symbol == "" {
		symbol = "1"
	}
	if hasInversion && symbol == "1" {
		return "-1"
	}
	return symbol
}

// slotsFor returns, for each HM symbol position, the list of standard axis
// names that may contribute to that slot — the combine_axes groupings from
// the original: tetragonal/trigonal/hexagonal quote z, then {x,y}, then the
// face diagonals; cubic quotes {x,y,z}, then the body diagonals, then the
// face diagonals.
func slotsFor(fam Family) [][]string {
	switch fam {
	case Triclinic:
		return [][]string{{"x", "y", "z", "111", "1-11", "11-1", "-111"}}
	case Monoclinic:
		return [][]string{{"y"}}
	case Orthorhombic:
		return [][]string{{"x"}, {"y"}, {"z"}}
	case Tetragonal:
		return [][]string{{"z"}, {"x", "y"}, {"110", "1-10"}}
	case TrigonalHexagonal:
		return [][]string{{"z"}, {"x", "y"}, {"110", "1-10", "101", "10-1", "011", "01-1"}}
	case Cubic:
		return [][]string{{"x", "y", "z"}, {"111", "1-11", "11-1", "-111"}, {"110", "1-10", "101", "10-1", "011", "01-1"}}
	default:
		return [][]string{{"z"}}
	}
}

// highestSymbolAmong picks the operation of highest order (rotoinversions
// quoted with a bar) across the axes in slot, matching get_highest_symbol's
// preference for the most informative operation sharing that slot.
func highestSymbolAmong(slot []string, perAxis map[string][]symmop.Analysis) string {
	best := ""
	bestRank := -1
	for _, name := range slot {
		for _, a := range perAxis[name] {
			sym := axisSymbol(a)
			rank := symbolRank(a)
			if rank > bestRank {
				bestRank = rank
				best = sym
			}
		}
	}
	return best
}

func axisSymbol(a symmop.Analysis) string {
	n := a.Order
	if n == 0 {
		n = 1
	}
	if a.Kind == symmop.KindRotoinversion {
		return fmt.Sprintf("-%d", n)
	}
	return fmt.Sprintf("%d", n)
}

func symbolRank(a symmop.Analysis) int {
	n := a.Order
	if a.Kind == symmop.KindRotoinversion {
		return n + 1 // prefer rotoinversions slightly over same-order rotations, as in the original
	}
	return n
}

// dedupTrailingOnes drops "1" slots that are symmetrically redundant once a
// higher-symmetry slot has already been printed for a cubic/tetragonal
// symbol with fewer than three meaningful positions, mirroring
// are_symmetrically_equivalent's effect of collapsing e.g. "4 1 1" to "4".
func dedupTrailingOnes(parts []string) []string {
	for len(parts) > 1 && parts[len(parts)-1] == "1" {
		allOnes := true
		for _, p := range parts {
			if p != "1" {
				allOnes = false
				break
			}
		}
		if allOnes {
			break
		}
		parts = parts[:len(parts)-1]
	}
	return parts
}

func axisMatches(a, dir symmop.Vec3) bool {
	if a.Norm() < axisTol || dir.Norm() < axisTol {
		return false
	}
	u, v := a.Unit(), dir.Unit()
	d := u.Dot(v)
	return d > 1-axisTol || d < -(1-axisTol)
}

// SortedOps returns ops sorted by the order of their rotation part,
// descending, the traversal order ss_string_from_ops uses so the
// highest-order operation along each axis is seen first.
func SortedOps(ops []symmop.Op) []symmop.Op {
	out := make([]symmop.Op, len(ops))
	copy(out, ops)
	sort.Slice(out, func(i, j int) bool {
		return symmop.Analyze(out[i]).Order > symmop.Analyze(out[j]).Order
	})
	return out
}
