// Package lattice implements unit-cell geometry: conversion between cell
// parameters and the lower-triangular matrix form, periodic-image distance
// computation, vacuum padding and axis permutation for 2D/layer-group
// structures. Ported from para2matrix/matrix2para/create_matrix/distance/
// Add_vacuum/Permutation in the original crystal.py.
package lattice

import (
	"math"

	"github.com/asymmetrica/crystalgen/internal/symmop"
)

// Params is the conventional (a, b, c, alpha, beta, gamma) description of a
// unit cell; angles are stored in radians.
type Params struct {
	A, B, C                float64
	Alpha, Beta, Gamma     float64 // radians
}

// Matrix is a lower-triangular 3x3 matrix whose rows are the lattice
// vectors a, b, c expressed in Cartesian coordinates.
type Matrix [3]symmop.Vec3

// ToMatrix builds the lower-triangular lattice matrix from cell parameters,
// matching para2matrix(..., format='lower'): a lies along x, b lies in the
// xy-plane, c is completed to match the given angles.
func (p Params) ToMatrix() Matrix {
	cosAlpha := math.Cos(p.Alpha)
	cosBeta := math.Cos(p.Beta)
	cosGamma := math.Cos(p.Gamma)
	sinGamma := math.Sin(p.Gamma)

	c1 := p.C * cosBeta
	c2 := (p.C * (cosAlpha - cosBeta*cosGamma)) / sinGamma
	c3sq := p.C*p.C - c1*c1 - c2*c2
	if c3sq < 0 {
		c3sq = 0
	}

	return Matrix{
		{X: p.A},
		{X: p.B * cosGamma, Y: p.B * sinGamma},
		{X: c1, Y: c2, Z: math.Sqrt(c3sq)},
	}
}

// Params recovers the (a,b,c,alpha,beta,gamma) description of m, the
// inverse of ToMatrix (matrix2para).
func (m Matrix) Params() Params {
	a := m[0].Norm()
	b := m[1].Norm()
	c := m[2].Norm()
	return Params{
		A: a, B: b, C: c,
		Alpha: vectorAngle(m[1], m[2]),
		Beta:  vectorAngle(m[0], m[2]),
		Gamma: vectorAngle(m[0], m[1]),
	}
}

func vectorAngle(u, v symmop.Vec3) float64 {
	denom := u.Norm() * v.Norm()
	if denom == 0 {
		return 0
	}
	cosT := u.Dot(v) / denom
	cosT = math.Max(-1, math.Min(1, cosT))
	return math.Acos(cosT)
}

// ToCartesian converts a fractional point to Cartesian coordinates: p*m.
func (m Matrix) ToCartesian(frac symmop.Vec3) symmop.Vec3 {
	return symmop.Vec3{
		X: frac.X*m[0].X + frac.Y*m[1].X + frac.Z*m[2].X,
		Y: frac.X*m[0].Y + frac.Y*m[1].Y + frac.Z*m[2].Y,
		Z: frac.X*m[0].Z + frac.Y*m[1].Z + frac.Z*m[2].Z,
	}
}

// PBC names which axis, if any, has no periodic boundary condition (0 means
// fully periodic in all three directions).
type PBC int

const (
	PBCNone PBC = 0 // fully periodic
	PBCX    PBC = 1
	PBCY    PBC = 2
	PBCZ    PBC = 3
)

// ImageOffsets enumerates the +-1-cell neighbor offsets used for minimum-
// image distance computations, matching create_matrix: all 27 combinations
// normally, collapsed to 9 along the non-periodic axis when pbc != PBCNone.
func ImageOffsets(pbc PBC) []symmop.Vec3 {
	xs, ys, zs := []float64{-1, 0, 1}, []float64{-1, 0, 1}, []float64{-1, 0, 1}
	switch pbc {
	case PBCX:
		xs = []float64{0}
	case PBCY:
		ys = []float64{0}
	case PBCZ:
		zs = []float64{0}
	}
	var out []symmop.Vec3
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				out = append(out, symmop.Vec3{X: x, Y: y, Z: z})
			}
		}
	}
	return out
}

// MinImageDistance returns the minimum Euclidean distance between the
// origin and any periodic image of the fractional displacement d, the way
// distance() does in the original.
func MinImageDistance(m Matrix, d symmop.Vec3, pbc PBC) float64 {
	d = symmop.Vec3{X: d.X - math.Round(d.X), Y: d.Y - math.Round(d.Y), Z: d.Z - math.Round(d.Z)}
	best := math.Inf(1)
	for _, off := range ImageOffsets(pbc) {
		cart := m.ToCartesian(d.Add(off))
		dist := cart.Norm()
		if dist < best {
			best = dist
		}
	}
	return best
}

// Volume returns the unit-cell volume (det of the lattice matrix, which for
// the lower-triangular form is simply the product of the diagonal).
func (m Matrix) Volume() float64 {
	return m[0].X * m[1].Y * m[2].Z
}

// AddVacuum pads axis `dim` (0=a,1=b,2=c) of the lattice with the given
// vacuum thickness and re-centers the fractional coordinates along that
// axis so the slab sits in the middle of the enlarged cell, matching
// Add_vacuum. coords is mutated in place along component dim.
func AddVacuum(m Matrix, coords []symmop.Vec3, vacuum float64, dim int) Matrix {
	old := diag(m, dim)
	newLen := old + vacuum
	var sum float64
	for i := range coords {
		v := getComponent(coords[i], dim) * old / newLen
		setComponent(&coords[i], dim, v)
		sum += v
	}
	mean := 0.0
	if len(coords) > 0 {
		mean = sum / float64(len(coords))
	}
	for i := range coords {
		v := getComponent(coords[i], dim) - mean + 0.5
		setComponent(&coords[i], dim, v)
	}
	setDiag(&m, dim, newLen)
	return m
}

func diag(m Matrix, dim int) float64 {
	switch dim {
	case 0:
		return m[0].X
	case 1:
		return m[1].Y
	default:
		return m[2].Z
	}
}

func setDiag(m *Matrix, dim int, v float64) {
	switch dim {
	case 0:
		m[0].X = v
	case 1:
		m[1].Y = v
	default:
		m[2].Z = v
	}
}

func getComponent(v symmop.Vec3, dim int) float64 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func setComponent(v *symmop.Vec3, dim int, val float64) {
	switch dim {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}
}

// Permute reorders the lattice parameters and coordinate axes according to
// perm (a 0-based permutation of {0,1,2}: axis i of the output takes cell
// parameter perm[i] of the input), matching Permutation. Generate2D uses it
// to move a slab built with its non-periodic axis along c to the axis perm
// names, then appends vacuum along that axis.
func Permute(m Matrix, coords []symmop.Vec3, perm [3]int) (Matrix, []symmop.Vec3) {
	para := m.Params()
	lenOf := [3]float64{para.A, para.B, para.C}
	angOf := [3]float64{para.Alpha, para.Beta, para.Gamma}
	var out Params
	setLen := func(axis int, v float64) {
		switch axis {
		case 0:
			out.A = v
		case 1:
			out.B = v
		default:
			out.C = v
		}
	}
	setAng := func(axis int, v float64) {
		switch axis {
		case 0:
			out.Alpha = v
		case 1:
			out.Beta = v
		default:
			out.Gamma = v
		}
	}
	for axis := 0; axis < 3; axis++ {
		setLen(axis, lenOf[perm[axis]])
		setAng(axis, angOf[perm[axis]])
	}
	outCoords := make([]symmop.Vec3, len(coords))
	for i, c := range coords {
		outCoords[i] = symmop.Vec3{
			X: getComponent(c, perm[0]),
			Y: getComponent(c, perm[1]),
			Z: getComponent(c, perm[2]),
		}
	}
	return out.ToMatrix(), outCoords
}

// CenteringMultiplier returns the number of lattice points per conventional
// cell implied by the centering letter (P/A/B/C/I/R/F), matching cellsize.
func CenteringMultiplier(letter byte) int {
	switch letter {
	case 'P':
		return 1
	case 'A', 'B', 'C', 'I':
		return 2
	case 'R':
		return 3
	case 'F':
		return 4
	default:
		return 1
	}
}
