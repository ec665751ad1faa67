// Package wyckoff implements the Wyckoff-position engine: orbit
// generation from a seed point, merging coincident orbit points into a
// higher-symmetry orbit, identification of a point set against the
// tabulated positions, the packing compatibility check, and the WP
// selection heuristic the generator orchestrator drives. Grounded on
// choose_wyckoff/check_wyckoff_position/check_compatible/
// find_generating_point/connected_components in the original crystal.py.
package wyckoff

import (
	"fmt"

	"github.com/asymmetrica/crystalgen/internal/symmop"
	"github.com/asymmetrica/crystalgen/internal/tables"
)

// Position is a parsed, ready-to-use Wyckoff position: the operations
// have already been Parse()d out of their table strings.
type Position struct {
	Letter     string
	Ops        []symmop.Op
	Symmetry   [][]symmop.Op
	Generators []symmop.Op
}

// Multiplicity returns the orbit size this position produces.
func (p Position) Multiplicity() int { return len(p.Ops) }

// HasRotationalFreedom reports whether any operation in the position
// moves a generic point, i.e. whether the position is not a single
// fixed point. check_compatible uses this to find whether a structure
// has any continuous degree of freedom at all.
func (p Position) HasRotationalFreedom() bool {
	for _, op := range p.Ops {
		if op.HasRotationalFreedom() {
			return true
		}
	}
	return false
}

// Group is a space group's full set of parsed Wyckoff positions, ordered
// highest multiplicity (the general position) first.
type Group struct {
	Number    int
	Positions []Position
}

// Load parses the bundled table data for space group sg into a ready-to-
// use Group.
func Load(sg int) (Group, error) {
	data, err := tables.Load(sg)
	if err != nil {
		return Group{}, err
	}
	g := Group{Number: data.Number}
	for _, wp := range data.Positions {
		pos, err := parsePosition(wp)
		if err != nil {
			return Group{}, fmt.Errorf("wyckoff: space group %d position %q: %w", sg, wp.Letter, err)
		}
		g.Positions = append(g.Positions, pos)
	}
	return g, nil
}

func parsePosition(wp tables.WyckoffPosition) (Position, error) {
	ops, err := parseAll(wp.Ops)
	if err != nil {
		return Position{}, err
	}
	gens, err := parseAll(wp.Generators)
	if err != nil {
		return Position{}, err
	}
	symmetry := make([][]symmop.Op, len(wp.Symmetry))
	for i, group := range wp.Symmetry {
		parsed, err := parseAll(group)
		if err != nil {
			return Position{}, err
		}
		symmetry[i] = parsed
	}
	return Position{Letter: wp.Letter, Ops: ops, Symmetry: symmetry, Generators: gens}, nil
}

func parseAll(strs []string) ([]symmop.Op, error) {
	out := make([]symmop.Op, len(strs))
	for i, s := range strs {
		op, err := symmop.Parse(s)
		if err != nil {
			return nil, err
		}
		out[i] = op
	}
	return out, nil
}

// OrganizedByMultiplicity groups positions into sublists of equal
// multiplicity, preserving high-to-low order, matching organized=True in
// the original's get_wyckoffs.
func (g Group) OrganizedByMultiplicity() [][]Position {
	var out [][]Position
	for _, p := range g.Positions {
		if n := len(out); n > 0 && out[n-1][0].Multiplicity() == p.Multiplicity() {
			out[n-1] = append(out[n-1], p)
			continue
		}
		out = append(out, []Position{p})
	}
	return out
}

// GenerateOrbit applies every operation of pos to seed and wraps each
// image into [0,1)^3, with no deduplication at this stage.
func GenerateOrbit(pos Position, seed symmop.Vec3) []symmop.Vec3 {
	orbit := make([]symmop.Vec3, len(pos.Ops))
	for i, op := range pos.Ops {
		orbit[i] = symmop.Wrap(op.Apply(seed))
	}
	return orbit
}
