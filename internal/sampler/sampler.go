// Package sampler generates random unit-cell parameters conditioned on a
// space group's crystal family, following generate_lattice/
// generate_lattice_2d in the original crystal.py. Unlike the original
// (which reseeds NumPy's global RNG), every entry point here takes an
// injected *rand.Rand so a caller can reproduce a run exactly from a seed,
// per the no-global-RNG-state discipline the spec requires.
package sampler

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/asymmetrica/crystalgen/internal/lattice"
	"gonum.org/v1/gonum/stat/distuv"
)

// Family mirrors the space-group-number bands the original switches on.
type Family int

const (
	Triclinic Family = iota
	Monoclinic
	Orthorhombic
	Tetragonal
	TrigonalHexagonal
	Cubic
)

// FamilyForSpaceGroup classifies a 1..230 space-group number into its
// crystal family, matching generate_lattice's sg<=N ladder.
func FamilyForSpaceGroup(sg int) Family {
	switch {
	case sg <= 2:
		return Triclinic
	case sg <= 15:
		return Monoclinic
	case sg <= 74:
		return Orthorhombic
	case sg <= 142:
		return Tetragonal
	case sg <= 194:
		return TrigonalHexagonal
	default:
		return Cubic
	}
}

// Options bundles the acceptance-criteria parameters generate_lattice takes
// as keyword arguments, with DefaultOptions matching its defaults.
type Options struct {
	MinVec      float64
	MinAngle    float64 // radians
	MaxRatio    float64
	MaxAttempts int
}

// DefaultOptions returns generate_lattice's defaults (minvec=2.0,
// minangle=pi/6, max_ratio=10.0, maxattempts=100).
func DefaultOptions() Options {
	return Options{
		MinVec:      2.0,
		MinAngle:    math.Pi / 6,
		MaxRatio:    10.0,
		MaxAttempts: 100,
	}
}

// gaussian draws from a Normal distribution via rejection sampling until
// the result falls in (min, max), matching the original's gaussian().
func gaussian(rng *rand.Rand, min, max, sigma float64) float64 {
	center := (max + min) * 0.5
	delta := math.Abs(max-min) * 0.5
	ratio := delta / sigma
	dist := distuv.Normal{Mu: center, Sigma: ratio, Src: rng}
	for {
		x := dist.Rand()
		if x > min && x < max {
			return x
		}
	}
}

// randomVector draws a log-normal 3-vector (ratios between lattice vector
// lengths), matching random_vector(width=0.35).
func randomVector(rng *rand.Rand) [3]float64 {
	const width = 0.35
	dist := distuv.Normal{Mu: 0, Sigma: width, Src: rng}
	return [3]float64{
		math.Exp(dist.Rand()),
		math.Exp(dist.Rand()),
		math.Exp(dist.Rand()),
	}
}

// randomShearMatrix builds a random symmetric shear matrix with Gaussian
// off-diagonal elements, matching random_shear_matrix(width=0.2), used only
// for the triclinic family to derive a random angle triple via
// matrix2para.
func randomShearMatrix(rng *rand.Rand) [3][3]float64 {
	const width = 0.2
	dist := distuv.Normal{Mu: 0, Sigma: width, Src: rng}
	for {
		a, b, c := dist.Rand(), dist.Rand(), dist.Rand()
		m := [3][3]float64{{1, a, b}, {a, 1, c}, {b, c, 1}}
		if det3(m) != 0 {
			return m
		}
	}
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// ErrLatticeExhausted is returned when Sample3D fails to find a lattice
// satisfying the acceptance criteria within MaxAttempts tries.
type ErrLatticeExhausted struct {
	SpaceGroup int
	Volume     float64
	Attempts   int
}

func (e *ErrLatticeExhausted) Error() string {
	return fmt.Sprintf("sampler: could not generate lattice after %d attempts for sg=%d volume=%.3f", e.Attempts, e.SpaceGroup, e.Volume)
}

// Sample3D draws random cell parameters for space group sg with the given
// target volume, retrying up to opts.MaxAttempts times until the
// acceptance criteria (vector length bounds, angle bounds, ratio bounds,
// and the "smallvec" projected-distance heuristic) are satisfied.
func Sample3D(rng *rand.Rand, sg int, volume float64, opts Options) (lattice.Params, error) {
	fam := FamilyForSpaceGroup(sg)
	maxAngle := math.Pi - opts.MinAngle

	for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
		a, b, c, alpha, beta, gamma := sampleOneAttempt(rng, fam, volume)

		maxVec := (a * b * c) / (opts.MinVec * opts.MinVec)
		if opts.MinVec >= maxVec {
			continue
		}
		smallVec := math.Min(a*math.Cos(math.Max(beta, gamma)),
			math.Min(b*math.Cos(math.Max(alpha, gamma)), c*math.Cos(math.Max(alpha, beta))))

		ok := a > opts.MinVec && b > opts.MinVec && c > opts.MinVec &&
			a < maxVec && b < maxVec && c < maxVec &&
			smallVec < opts.MinVec &&
			alpha > opts.MinAngle && beta > opts.MinAngle && gamma > opts.MinAngle &&
			alpha < maxAngle && beta < maxAngle && gamma < maxAngle &&
			ratioOK(a, b, opts.MaxRatio) && ratioOK(a, c, opts.MaxRatio) && ratioOK(b, c, opts.MaxRatio) &&
			ratioOK(b, a, opts.MaxRatio) && ratioOK(c, a, opts.MaxRatio) && ratioOK(c, b, opts.MaxRatio)
		if ok {
			return lattice.Params{A: a, B: b, C: c, Alpha: alpha, Beta: beta, Gamma: gamma}, nil
		}
	}
	return lattice.Params{}, &ErrLatticeExhausted{SpaceGroup: sg, Volume: volume, Attempts: opts.MaxAttempts}
}

func ratioOK(x, y, maxRatio float64) bool { return x/y < maxRatio }

func sampleOneAttempt(rng *rand.Rand, fam Family, volume float64) (a, b, c, alpha, beta, gamma float64) {
	switch fam {
	case Triclinic:
		shear := randomShearMatrix(rng)
		para := lattice.Matrix{
			{X: 1},
			{X: shear[1][0], Y: 1},
			{X: shear[2][0], Y: shear[2][1], Z: 1},
		}.Params()
		alpha, beta, gamma = para.Alpha, para.Beta, para.Gamma
		x := math.Sqrt(1 - sq(math.Cos(alpha)) - sq(math.Cos(beta)) - sq(math.Cos(gamma)) +
			2*math.Cos(alpha)*math.Cos(beta)*math.Cos(gamma))
		vec := randomVector(rng)
		abc := volume / x
		xyz := vec[0] * vec[1] * vec[2]
		a = vec[0] * cbrt(abc) / cbrt(xyz)
		b = vec[1] * cbrt(abc) / cbrt(xyz)
		c = vec[2] * cbrt(abc) / cbrt(xyz)
	case Monoclinic:
		alpha, gamma = math.Pi/2, math.Pi/2
		beta = gaussian(rng, math.Pi/6, math.Pi-math.Pi/6, 3.0)
		x := math.Sin(beta)
		vec := randomVector(rng)
		xyz := vec[0] * vec[1] * vec[2]
		abc := volume / x
		a = vec[0] * cbrt(abc) / cbrt(xyz)
		b = vec[1] * cbrt(abc) / cbrt(xyz)
		c = vec[2] * cbrt(abc) / cbrt(xyz)
	case Orthorhombic:
		alpha, beta, gamma = math.Pi/2, math.Pi/2, math.Pi/2
		vec := randomVector(rng)
		xyz := vec[0] * vec[1] * vec[2]
		a = vec[0] * cbrt(volume) / cbrt(xyz)
		b = vec[1] * cbrt(volume) / cbrt(xyz)
		c = vec[2] * cbrt(volume) / cbrt(xyz)
	case Tetragonal:
		alpha, beta, gamma = math.Pi/2, math.Pi/2, math.Pi/2
		vec := randomVector(rng)
		c = vec[2] / (vec[0] * vec[1]) * cbrt(volume)
		a = math.Sqrt(volume / c)
		b = a
	case TrigonalHexagonal:
		alpha, beta, gamma = math.Pi/2, math.Pi/2, math.Pi/3*2
		x := math.Sqrt(3.) / 2.
		vec := randomVector(rng)
		c = vec[2] / (vec[0] * vec[1]) * cbrt(volume/x)
		a = math.Sqrt((volume / x) / c)
		b = a
	default: // Cubic
		alpha, beta, gamma = math.Pi/2, math.Pi/2, math.Pi/2
		s := cbrt(volume)
		a, b, c = s, s, s
	}
	return
}

func sq(x float64) float64   { return x * x }
func cbrt(x float64) float64 { return math.Cbrt(x) }

// Sample2D draws cell parameters for a 2D/layer-group structure of
// thickness `thickness`, applying the axis permutation perm (a 0-based
// permutation identifying which cell axis carries the non-periodic
// direction). It performs exactly one construction attempt and returns: the
// original generate_lattice_2d always hits its `return` inside the first
// iteration of its retry loop regardless of whether the result is sound, so
// the "maxattempts" retry never actually retries — this port preserves
// that behavior rather than silently fixing it, per the resolved Open
// Question on the 2D sampler's single-pass control flow.
func Sample2D(rng *rand.Rand, sg int, volume, thickness float64, perm [3]int) (lattice.Params, error) {
	fam := FamilyForSpaceGroup(sg)
	abc := [3]float64{1, 1, thickness}
	alpha, beta, gamma := math.Pi/2, math.Pi/2, math.Pi/2

	switch fam {
	case Triclinic:
		// no constraint on abc[0], abc[1] beyond the initial 1,1 default;
		// matches the original leaving `vec` computed but unused for a,b.
		_ = randomVector(rng)
	case Monoclinic:
		x := math.Sin(beta)
		vec := randomVector(rng)
		ratio := math.Sqrt(volume / x * vec[2] / abc[2])
		abc[0] = vec[0] * ratio
		abc[1] = vec[1] * ratio
	case Orthorhombic:
		vec := randomVector(rng)
		ratio := math.Sqrt(volume * vec[2] / abc[2])
		abc[0] = vec[0] * ratio
		abc[1] = vec[1] * ratio
	case Tetragonal:
		abc[0] = math.Sqrt(volume / abc[2])
		abc[1] = abc[0]
	case TrigonalHexagonal:
		gamma = math.Pi / 3 * 2
		x := math.Sqrt(3.) / 2.
		abc[0] = math.Sqrt((volume / x) / abc[2])
		abc[1] = abc[0]
	case Cubic:
		abc[0] = math.Sqrt(volume / abc[2])
		abc[1] = abc[0]
	}

	lenOf := [3]float64{abc[0], abc[1], abc[2]}
	angOf := [3]float64{alpha, beta, gamma}
	p := lattice.Params{
		A: lenOf[perm[0]], B: lenOf[perm[1]], C: lenOf[perm[2]],
		Alpha: angOf[perm[0]], Beta: angOf[perm[1]], Gamma: angOf[perm[2]],
	}
	return p, nil
}
