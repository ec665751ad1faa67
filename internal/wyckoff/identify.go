package wyckoff

import (
	"math"

	"github.com/asymmetrica/crystalgen/internal/lattice"
	"github.com/asymmetrica/crystalgen/internal/symmop"
)

// siteSymmetry returns the subset of generalOps that fix point (mod the
// unit cell): the site-symmetry stabilizer. Each returned operation's
// translation is adjusted by the rounded displacement between op.Apply
// (point) and point itself, so it is the operation that fixes point
// exactly rather than the raw general-position operation — matching the
// original's site_symm bookkeeping around positions like 16c of Ia-3,
// where the naive untranslated operation does not literally return the
// same representative point, only an equivalent one.
func siteSymmetry(point symmop.Vec3, generalOps []symmop.Op) []symmop.Op {
	var stab []symmop.Op
	for _, op := range generalOps {
		img := op.Apply(point)
		disp := img.Sub(point)
		if !isNearIntVec(disp) {
			continue
		}
		adjusted := op
		adjusted.Trans = op.Trans.Sub(roundVec(disp))
		stab = append(stab, adjusted)
	}
	return stab
}

func isNearIntVec(v symmop.Vec3) bool {
	const tol = 1e-3
	near := func(x float64) bool { return math.Abs(x-math.Round(x)) < tol }
	return near(v.X) && near(v.Y) && near(v.Z)
}

func roundVec(v symmop.Vec3) symmop.Vec3 {
	return symmop.Vec3{X: math.Round(v.X), Y: math.Round(v.Y), Z: math.Round(v.Z)}
}

// Identify matches a candidate point set against g's Wyckoff positions by
// multiplicity and site-symmetry stabilizer order, disambiguating ties
// via findGeneratingPoint, per spec §4.3's check_wyckoff_position.
func Identify(g Group, points []symmop.Vec3, pbc lattice.PBC) (index int, ok bool) {
	if len(points) == 0 || len(g.Positions) == 0 {
		return 0, false
	}
	general := g.Positions[0].Ops
	stab := siteSymmetry(points[0], general)
	observedOrder := len(stab)

	var candidates []int
	for i, wp := range g.Positions {
		if wp.Multiplicity() != len(points) {
			continue
		}
		expectedOrder := len(general) / wp.Multiplicity()
		if expectedOrder != observedOrder {
			continue
		}
		if len(wp.Symmetry) > 0 && len(wp.Symmetry[0]) != observedOrder {
			continue
		}
		candidates = append(candidates, i)
	}

	switch len(candidates) {
	case 0:
		return 0, false
	case 1:
		return candidates[0], true
	}

	for _, idx := range candidates {
		if findGeneratingPoint(points, g.Positions[idx].Generators) {
			return idx, true
		}
	}
	return 0, false
}

// findGeneratingPoint reports whether some point in points, used as a
// seed and pushed through every operation in generators, reproduces
// points exactly (as a set, modulo wrap and ordering) — resolving spec
// §9's Open Question by taking generators from the matching WP's own
// tabulated Generators field (internal/tables), never an ambient or
// reused variable from a previous call.
func findGeneratingPoint(points []symmop.Vec3, generators []symmop.Op) bool {
	if len(generators) != len(points) {
		return false
	}
	for _, seed := range points {
		candidate := make([]symmop.Vec3, len(generators))
		for i, op := range generators {
			candidate[i] = symmop.Wrap(op.Apply(seed))
		}
		if sameSet(candidate, points) {
			return true
		}
	}
	return false
}

func sameSet(a, b []symmop.Vec3) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, va := range a {
		found := false
		for j, vb := range b {
			if used[j] {
				continue
			}
			if closePoint(va, vb) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func closePoint(a, b symmop.Vec3) bool {
	const tol = 1e-3
	d := a.Sub(b)
	wrap := func(x float64) float64 {
		y := math.Mod(x+0.5, 1.0)
		if y < 0 {
			y += 1.0
		}
		return y - 0.5
	}
	return math.Abs(wrap(d.X)) < tol && math.Abs(wrap(d.Y)) < tol && math.Abs(wrap(d.Z)) < tol
}
