package tables

import (
	"fmt"
	"sort"

	"github.com/asymmetrica/crystalgen/internal/symmop"
)

// WyckoffPosition is one row of a space group's Wyckoff table: the orbit
// operations that generate it from a representative point (Ops, whose
// count is the position's multiplicity), the site-symmetry stabilizer at
// each representative point (Symmetry), and the generator operations used
// to recover a representative point from an arbitrary orbit member
// (Generators).
type WyckoffPosition struct {
	Letter     string
	Ops        []string
	Symmetry   [][]string
	Generators []string
}

// Multiplicity returns len(Ops), the number of equivalent points per cell.
func (w WyckoffPosition) Multiplicity() int { return len(w.Ops) }

// SpaceGroupData is the per-space-group bundle: wyckoff_list[sg] /
// wyckoff_symmetry[sg] / wyckoff_generators[sg] fused into one slice,
// ordered highest multiplicity (the general position) first.
type SpaceGroupData struct {
	Number    int
	Symbol    string
	Centering byte
	Positions []WyckoffPosition
}

var registry = map[int]SpaceGroupData{}

func register(d SpaceGroupData) {
	sort.Slice(d.Positions, func(i, j int) bool {
		return d.Positions[i].Multiplicity() > d.Positions[j].Multiplicity()
	})
	registry[d.Number] = d
}

// Load returns the bundled Wyckoff data for space group sg, or an error if
// sg has no bundled data. Callers can populate additional space groups by
// adding a register() call in this package's init — the loader itself is
// generic over the data, not over which space groups exist.
func Load(sg int) (SpaceGroupData, error) {
	d, ok := registry[sg]
	if !ok {
		return SpaceGroupData{}, fmt.Errorf("tables: no bundled Wyckoff data for space group %d", sg)
	}
	return d, nil
}

// Known reports whether sg has bundled data.
func Known(sg int) bool {
	_, ok := registry[sg]
	return ok
}

// opsToStrings renders a slice of parsed operations back to canonical
// xyz-strings for storage alongside the hand-transcribed entries.
func opsToStrings(ops []symmop.Op) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.String()
	}
	return out
}

func identityStabilizer() [][]string {
	return [][]string{{"x,y,z"}}
}

func init() {
	registerTriclinic()
	registerMonoclinic()
	registerHexagonal()
	registerTetragonal()
	registerCubic()
}

// registerTriclinic bundles space groups 1 (P1) and 2 (P-1), both with
// trivial lattice geometry and at most an inversion center as the only
// possible special-position symmetry.
func registerTriclinic() {
	register(SpaceGroupData{
		Number: 1, Symbol: "P1", Centering: 'P',
		Positions: []WyckoffPosition{
			{
				Letter:     "a",
				Ops:        []string{"x,y,z"},
				Symmetry:   identityStabilizer(),
				Generators: []string{"x,y,z"},
			},
		},
	})

	inversionStabilizer := [][]string{{"x,y,z", "-x,-y,-z"}}
	specialAt := func(letter, point string) WyckoffPosition {
		return WyckoffPosition{
			Letter:     letter,
			Ops:        []string{point},
			Symmetry:   inversionStabilizer,
			Generators: []string{point},
		}
	}
	register(SpaceGroupData{
		Number: 2, Symbol: "P-1", Centering: 'P',
		Positions: []WyckoffPosition{
			{
				Letter:     "i",
				Ops:        []string{"x,y,z", "-x,-y,-z"},
				Symmetry:   identityStabilizer(),
				Generators: []string{"x,y,z"},
			},
			specialAt("a", "0,0,0"),
			specialAt("b", "0,0,1/2"),
			specialAt("c", "0,1/2,0"),
			specialAt("d", "0,1/2,1/2"),
			specialAt("e", "1/2,0,0"),
			specialAt("f", "1/2,0,1/2"),
			specialAt("g", "1/2,1/2,0"),
			specialAt("h", "1/2,1/2,1/2"),
		},
	})
}

// registerMonoclinic bundles space group 15 (C2/c). The general position
// and the four inversion-center special positions (4a-4d) were each
// derived here by applying the eight general operations to a trial point
// and collecting the distinct images mod 1, not copied from a table; 4e
// (site symmetry 2, free y) was checked the same way.
func registerMonoclinic() {
	general := []string{
		"x,y,z", "-x,y,-z+1/2", "-x,-y,-z", "x,-y,z+1/2",
		"x+1/2,y+1/2,z", "-x+1/2,y+1/2,-z+1/2", "-x+1/2,-y+1/2,-z", "x+1/2,-y+1/2,z+1/2",
	}
	stabilizerPair := func(a, b string) [][]string { return [][]string{{a, b}} }
	register(SpaceGroupData{
		Number: 15, Symbol: "C2/c", Centering: 'C',
		Positions: []WyckoffPosition{
			{
				Letter:     "f",
				Ops:        general,
				Symmetry:   identityStabilizer(),
				Generators: general,
			},
			{
				Letter:     "e",
				Ops:        []string{"0,y,1/4", "0,-y,3/4", "1/2,y+1/2,1/4", "1/2,-y+1/2,3/4"},
				Symmetry:   stabilizerPair("x,y,z", "-x,y,-z+1/2"),
				Generators: []string{"0,y,1/4", "0,-y,3/4", "1/2,y+1/2,1/4", "1/2,-y+1/2,3/4"},
			},
			{
				Letter:     "d",
				Ops:        []string{"1/4,1/4,1/2", "3/4,1/4,0", "3/4,3/4,1/2", "1/4,3/4,0"},
				Symmetry:   stabilizerPair("x,y,z", "-x,-y,-z"),
				Generators: []string{"1/4,1/4,1/2", "3/4,1/4,0", "3/4,3/4,1/2", "1/4,3/4,0"},
			},
			{
				Letter:     "c",
				Ops:        []string{"1/4,1/4,0", "3/4,1/4,1/2", "3/4,3/4,0", "1/4,3/4,1/2"},
				Symmetry:   stabilizerPair("x,y,z", "-x,-y,-z"),
				Generators: []string{"1/4,1/4,0", "3/4,1/4,1/2", "3/4,3/4,0", "1/4,3/4,1/2"},
			},
			{
				Letter:     "b",
				Ops:        []string{"0,1/2,0", "0,1/2,1/2", "1/2,0,0", "1/2,0,1/2"},
				Symmetry:   stabilizerPair("x,y,z", "-x,-y,-z"),
				Generators: []string{"0,1/2,0", "0,1/2,1/2", "1/2,0,0", "1/2,0,1/2"},
			},
			{
				Letter:     "a",
				Ops:        []string{"0,0,0", "0,0,1/2", "1/2,1/2,0", "1/2,1/2,1/2"},
				Symmetry:   stabilizerPair("x,y,z", "-x,-y,-z"),
				Generators: []string{"0,0,0", "0,0,1/2", "1/2,1/2,0", "1/2,1/2,1/2"},
			},
		},
	})
}

// registerHexagonal bundles space group 194 (P6_3/mmc) with its
// symmorphic P6/mmm-holohedry approximation: the 63 screw axis and
// c-glide introduce half-cell z-shifts on some of these 24 cosets in the
// true nonsymmorphic setting, which this table does not reproduce (see
// DESIGN.md). Only the general position is bundled for this group.
func registerHexagonal() {
	general := []string{
		"x,y,z", "-y,x-y,z", "-x+y,-x,z", "-x,-y,z", "y,-x+y,z", "x-y,x,z",
		"x,y,-z", "-y,x-y,-z", "-x+y,-x,-z", "-x,-y,-z", "y,-x+y,-z", "x-y,x,-z",
		"y,x,-z", "x-y,-y,-z", "-x,-x+y,-z", "-y,-x,-z", "-x+y,y,-z", "x,x-y,-z",
		"y,x,z", "x-y,-y,z", "-x,-x+y,z", "-y,-x,z", "-x+y,y,z", "x,x-y,z",
	}
	register(SpaceGroupData{
		Number: 194, Symbol: "P6_3/mmc", Centering: 'P',
		Positions: []WyckoffPosition{
			{
				Letter:     "general",
				Ops:        general,
				Symmetry:   identityStabilizer(),
				Generators: general,
			},
		},
	})
}

// registerTetragonal bundles space group 139 (I4/mmm): the 16 operations
// of 4/mmm (computed in groupgen.go as the signed-permutation action on
// (x,y) times an independent z sign) repeated at the I-centering
// translation, plus the origin special position fixed by the whole
// point group.
func registerTetragonal() {
	pg := tetragonalOps()
	general := opsToStrings(withTranslations(pg, iCentering))
	originOrbit := opsToStrings(withTranslations([]symmop.Op{symmop.Identity}, iCentering))
	// the origin is fixed by every point-group operation (all have zero
	// translation before centering is added), not by the centering-shifted
	// copies folded into general, which move the origin to the orbit's
	// other representative point instead of fixing it.
	originStabilizer := opsToStrings(pg)
	register(SpaceGroupData{
		Number: 139, Symbol: "I4/mmm", Centering: 'I',
		Positions: []WyckoffPosition{
			{
				Letter:     "general",
				Ops:        general,
				Symmetry:   identityStabilizer(),
				Generators: general,
			},
			{
				Letter:     "a",
				Ops:        originOrbit,
				Symmetry:   [][]string{originStabilizer},
				Generators: originOrbit,
			},
		},
	})
}

// registerCubic bundles space groups 206 (Ia-3), 221 (Pm-3m), 225
// (Fm-3m), and 230 (Ia-3d). Each general position is the signed-
// permutation point group (m-3 for 206/Th-derived groups, m-3m for
// 221/225/230) repeated at the group's centering translations; see
// groupgen.go for why this is a closed-form computation rather than a
// transcribed table.
func registerCubic() {
	registerCubicGroup(206, "Ia-3", 'I', cubicOps(true), iCentering)
	registerCubicGroup(221, "Pm-3m", 'P', cubicOps(false), noCentering)
	registerCubicGroup(225, "Fm-3m", 'F', cubicOps(false), fCentering)
	registerCubicGroup(230, "Ia-3d", 'I', cubicOps(false), iCentering)
}

func registerCubicGroup(number int, symbol string, centering byte, pointGroup []symmop.Op, centerings []symmop.Vec3) {
	general := opsToStrings(withTranslations(pointGroup, centerings))
	originOrbit := opsToStrings(withTranslations([]symmop.Op{symmop.Identity}, centerings))
	// as in registerTetragonal: the origin's stabilizer is the point group
	// alone (zero translation before centering), not the centering-expanded
	// general list.
	originStabilizer := opsToStrings(pointGroup)
	register(SpaceGroupData{
		Number: number, Symbol: symbol, Centering: centering,
		Positions: []WyckoffPosition{
			{
				Letter:     "general",
				Ops:        general,
				Symmetry:   identityStabilizer(),
				Generators: general,
			},
			{
				Letter:     "a",
				Ops:        originOrbit,
				Symmetry:   [][]string{originStabilizer},
				Generators: originOrbit,
			},
		},
	})
}
