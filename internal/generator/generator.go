// Package generator implements the three-level nested-retry structure
// generator orchestrator (spec §4.5): outer lattice sampling, middle
// packing attempts, inner per-species Wyckoff-position placement.
package generator

import (
	"errors"
	"math"
	"math/rand"

	"github.com/asymmetrica/crystalgen/internal/distcheck"
	"github.com/asymmetrica/crystalgen/internal/elements"
	"github.com/asymmetrica/crystalgen/internal/lattice"
	"github.com/asymmetrica/crystalgen/internal/sampler"
	"github.com/asymmetrica/crystalgen/internal/symmop"
	"github.com/asymmetrica/crystalgen/internal/tables"
	"github.com/asymmetrica/crystalgen/internal/wyckoff"
)

// Config bundles a generation request the way the teacher's sampling
// package bundles a search request (DefaultQuaternionSearchConfig,
// DefaultMinimizerConfig): a plain struct with a Default constructor.
type Config struct {
	SpaceGroup   int
	Species      []string
	Counts       []int // primitive-cell counts, one per species
	VolumeFactor float64
	Max1         int // outer: lattice sampling attempts
	Max2         int // middle: packing attempts per lattice
	Max3         int // inner: per-species WP placement attempts
}

// DefaultConfig returns a Config with the spec's default attempt budgets
// (30/30/30) and volume factor (2/3).
func DefaultConfig(sg int, species []string, counts []int) Config {
	return Config{
		SpaceGroup:   sg,
		Species:      species,
		Counts:       counts,
		VolumeFactor: 2.0 / 3.0,
		Max1:         30,
		Max2:         30,
		Max3:         30,
	}
}

// Structure is the output of a successful generation: the lattice matrix,
// species symbol and atomic number per atom, and fractional coordinates,
// all three slices the same length and ordered together.
type Structure struct {
	Matrix        lattice.Matrix
	Species       []string
	AtomicNumbers []int
	Coords        []symmop.Vec3
	Valid         bool
	Message       string
}

// The three user-visible "exhausted" error categories (spec §7), kept as
// sentinel values so callers can errors.Is against them instead of
// string-matching.
var (
	ErrIncompatibleCounts = errors.New("generator: requested counts cannot be packed into any Wyckoff combination of this space group")
	ErrLatticeExhausted   = errors.New("generator: no lattice satisfied the geometric constraints within the outer attempt budget")
	ErrStructureExhausted = errors.New("generator: packing budget exhausted without finding a valid structure")
)

func scaledCounts(counts []int, multiplier int) []int {
	scaled := make([]int, len(counts))
	for i, c := range counts {
		scaled[i] = c * multiplier
	}
	return scaled
}

func targetVolume(factor float64, counts []int, species []string) (float64, error) {
	var sum float64
	for i, sp := range species {
		r, err := elements.CovalentRadius(sp)
		if err != nil {
			return 0, err
		}
		sum += float64(counts[i]) * (4.0 / 3.0) * math.Pi * r * r * r
	}
	return factor * sum, nil
}

func minVec(species []string) (float64, error) {
	maxR := 0.0
	for _, sp := range species {
		r, err := elements.CovalentRadius(sp)
		if err != nil {
			return 0, err
		}
		if r > maxR {
			maxR = r
		}
	}
	return math.Max(2*maxR, 1.0), nil
}

// preparedRequest holds everything common to the 3D and 2D orchestrators,
// computed once up front per spec §4.5's "Preparation" step.
type preparedRequest struct {
	group      wyckoff.Group
	data       tables.SpaceGroupData
	counts     []int
	volume     float64
	minVec     float64
	max1       int
	max2       int
	max3       int
	hasFreedom bool
}

func prepare(cfg Config) (preparedRequest, error) {
	data, err := tables.Load(cfg.SpaceGroup)
	if err != nil {
		return preparedRequest{}, err
	}
	group, err := wyckoff.Load(cfg.SpaceGroup)
	if err != nil {
		return preparedRequest{}, err
	}

	counts := scaledCounts(cfg.Counts, lattice.CenteringMultiplier(data.Centering))
	compatible, hasFreedom := wyckoff.CheckCompatible(group, counts)
	if !compatible {
		return preparedRequest{}, ErrIncompatibleCounts
	}

	volume, err := targetVolume(cfg.VolumeFactor, counts, cfg.Species)
	if err != nil {
		return preparedRequest{}, err
	}
	mv, err := minVec(cfg.Species)
	if err != nil {
		return preparedRequest{}, err
	}

	max1, max2, max3 := cfg.Max1, cfg.Max2, cfg.Max3
	if !hasFreedom {
		// spec §4.5/§7: zero degrees of freedom means the structure is
		// fully determined, so the search runs with a tighter budget
		// rather than refusing outright.
		max1, max2, max3 = 5, 5, 5
	}

	return preparedRequest{
		group: group, data: data, counts: counts, volume: volume, minVec: mv,
		max1: max1, max2: max2, max3: max3, hasFreedom: hasFreedom,
	}, nil
}

// Generate runs the 3D orchestrator: outer lattice sampling, middle
// packing, inner per-species Wyckoff placement, per spec §4.5.
func Generate(rng *rand.Rand, cfg Config) (Structure, error) {
	prep, err := prepare(cfg)
	if err != nil {
		return Structure{}, err
	}

	opts := sampler.DefaultOptions()
	opts.MinVec = prep.minVec
	opts.MaxAttempts = 1

	latticeFound := false

	for outer := 0; outer < prep.max1; outer++ {
		params, err := sampler.Sample3D(rng, cfg.SpaceGroup, prep.volume, opts)
		if err != nil {
			continue
		}
		latticeFound = true
		m := params.ToMatrix()

		coords, ok := packLattice(rng, prep, cfg.Species, m, lattice.PBCNone)
		if !ok {
			continue
		}
		return flatten(m, cfg.Species, coords), nil
	}

	if !latticeFound {
		return Structure{}, ErrLatticeExhausted
	}
	return Structure{}, ErrStructureExhausted
}

// Generate2D runs the layer-group orchestrator: the same packing loop as
// Generate but over a slab lattice with one non-periodic axis, followed
// by the axis permutation and vacuum padding spec §4.5 requires before
// the result is returned.
func Generate2D(rng *rand.Rand, cfg Config, thickness, vacuum float64, perm [3]int) (Structure, error) {
	prep, err := prepare(cfg)
	if err != nil {
		return Structure{}, err
	}

	latticeFound := false

	for outer := 0; outer < prep.max1; outer++ {
		params, err := sampler.Sample2D(rng, cfg.SpaceGroup, prep.volume, thickness, [3]int{0, 1, 2})
		if err != nil {
			continue
		}
		latticeFound = true
		m := params.ToMatrix()

		coords, ok := packLattice(rng, prep, cfg.Species, m, lattice.PBCZ)
		if !ok {
			continue
		}

		flat := make([]symmop.Vec3, 0, totalAtoms(coords))
		species := make([]string, 0, totalAtoms(coords))
		for i, sp := range cfg.Species {
			for _, c := range coords[i] {
				flat = append(flat, c)
				species = append(species, sp)
			}
		}
		permMatrix, permCoords := lattice.Permute(m, flat, perm)
		dim := axisCarrying(perm, 2)
		padded := lattice.AddVacuum(permMatrix, permCoords, vacuum, dim)

		return Structure{
			Matrix:        padded,
			Species:       species,
			AtomicNumbers: atomicNumbersFor(species),
			Coords:        permCoords,
			Valid:         true,
		}, nil
	}

	if !latticeFound {
		return Structure{}, ErrLatticeExhausted
	}
	return Structure{}, ErrStructureExhausted
}

func axisCarrying(perm [3]int, target int) int {
	for i, v := range perm {
		if v == target {
			return i
		}
	}
	return 2
}

// packLattice runs the middle (packing) and inner (per-species WP
// placement) loops of spec §4.5 against a fixed lattice, returning the
// per-species fractional coordinates on success.
func packLattice(rng *rand.Rand, prep preparedRequest, species []string, m lattice.Matrix, pbc lattice.PBC) ([][]symmop.Vec3, bool) {
	organized := prep.group.OrganizedByMultiplicity()

	for middle := 0; middle < prep.max2; middle++ {
		acc := make([][]symmop.Vec3, len(species))
		ok := true

		for i, sp := range species {
			remaining := prep.counts[i]
			r, err := elements.CovalentRadius(sp)
			if err != nil {
				return nil, false
			}
			tol := wyckoff.MergeTolerance(r)

			for attempt := 0; attempt < prep.max3 && remaining > 0; attempt++ {
				pos, fits := wyckoff.ChooseWyckoff(rng, organized, remaining)
				if !fits {
					continue
				}
				seed := symmop.Vec3{X: rng.Float64(), Y: rng.Float64(), Z: rng.Float64()}
				orbit := wyckoff.GenerateOrbit(pos, seed)
				points, _, merged := wyckoff.Merge(prep.group, orbit, m, pbc, tol)
				if !merged || len(points) > remaining {
					continue
				}
				accepted, err := distcheck.Accepts(m, pbc, existingSpecies(species, acc), sp, points)
				if err != nil || !accepted {
					continue
				}
				acc[i] = append(acc[i], points...)
				remaining -= len(points)
			}

			if remaining > 0 {
				ok = false
				break
			}
		}

		if ok {
			return acc, true
		}
	}
	return nil, false
}

// existingSpecies builds the distcheck view of every atom placed so far
// (earlier species in full, the current species' earlier attempts),
// freshly from acc so a candidate is always checked against the true
// current state rather than a stale snapshot.
func existingSpecies(species []string, acc [][]symmop.Vec3) []distcheck.Species {
	out := make([]distcheck.Species, 0, len(species))
	for i, sp := range species {
		if len(acc[i]) == 0 {
			continue
		}
		out = append(out, distcheck.Species{Symbol: sp, Coords: acc[i]})
	}
	return out
}

func totalAtoms(coords [][]symmop.Vec3) int {
	n := 0
	for _, c := range coords {
		n += len(c)
	}
	return n
}

func flatten(m lattice.Matrix, species []string, coords [][]symmop.Vec3) Structure {
	flat := make([]symmop.Vec3, 0, totalAtoms(coords))
	out := make([]string, 0, totalAtoms(coords))
	for i, sp := range species {
		for _, c := range coords[i] {
			flat = append(flat, c)
			out = append(out, sp)
		}
	}
	return Structure{
		Matrix:        m,
		Species:       out,
		AtomicNumbers: atomicNumbersFor(out),
		Coords:        flat,
		Valid:         true,
	}
}

func atomicNumbersFor(species []string) []int {
	out := make([]int, len(species))
	for i, sp := range species {
		z, err := elements.AtomicNumber(sp)
		if err != nil {
			out[i] = 0
			continue
		}
		out[i] = z
	}
	return out
}

