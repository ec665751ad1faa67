package symmop

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Kind classifies the geometric type of an operation's linear part.
type Kind int

const (
	KindIdentity Kind = iota
	KindInversion
	KindRotation
	KindRotoinversion
	KindGeneral
)

func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindInversion:
		return "inversion"
	case KindRotation:
		return "rotation"
	case KindRotoinversion:
		return "rotoinversion"
	default:
		return "general"
	}
}

// Analysis is the result of classifying an operation's rotation part: its
// determinant, rotation angle and axis, order, and kind. Mirrors the
// original's OperationAnalyzer.
type Analysis struct {
	Det   float64
	Angle float64 // radians, in [0, pi]
	Axis  Vec3    // unit vector; zero for identity/inversion
	Order int     // smallest n>0 with op^n == identity mod PBC, 0 if none found up to 60
	Kind  Kind
}

const angleTol = 1e-4

// Analyze classifies op the way OperationAnalyzer does in the original:
// determinant to separate proper (rotation) from improper (rotoinversion)
// operations, then angle and axis from the proper part, then order by
// direct search.
func Analyze(op Op) Analysis {
	m := op.RotationMatrix()
	det := det3(m)

	var a Analysis
	a.Det = det

	proper := m
	if det < 0 {
		proper = scale3(m, -1)
	}
	angle := rotationAngle(proper)
	a.Angle = angle

	switch {
	case isIdentityMatrix(m):
		a.Kind = KindIdentity
	case isIdentityMatrix(scale3(m, -1)):
		a.Kind = KindInversion
	case det > 0:
		a.Kind = KindRotation
		a.Axis = rotationAxis(proper, angle)
	case det < 0 && angle > angleTol:
		a.Kind = KindRotoinversion
		a.Axis = rotationAxis(proper, angle)
	default:
		a.Kind = KindGeneral
	}

	a.Order = operationOrder(angle, det)
	return a
}

// RotationMatrix returns the 3x3 rotation part as a row-major array, the
// form the rest of this package and gonum's mat.Dense both want.
func (op Op) RotationMatrix() [3][3]float64 {
	return [3][3]float64{
		{op.Rot[0].X, op.Rot[0].Y, op.Rot[0].Z},
		{op.Rot[1].X, op.Rot[1].Y, op.Rot[1].Z},
		{op.Rot[2].X, op.Rot[2].Y, op.Rot[2].Z},
	}
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func scale3(m [3][3]float64, f float64) [3][3]float64 {
	var out [3][3]float64
	for i := range m {
		for j := range m[i] {
			out[i][j] = m[i][j] * f
		}
	}
	return out
}

func trace3(m [3][3]float64) float64 {
	return m[0][0] + m[1][1] + m[2][2]
}

func isIdentityMatrix(m [3][3]float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(m[i][j]-want) > angleTol {
				return false
			}
		}
	}
	return true
}

// rotationAngle computes the rotation angle of a proper (det=+1) rotation
// matrix from its trace: trace = 1 + 2*cos(theta).
func rotationAngle(m [3][3]float64) float64 {
	cosTheta := (trace3(m) - 1) / 2
	cosTheta = math.Max(-1, math.Min(1, cosTheta))
	return math.Acos(cosTheta)
}

// rotationAxis extracts the rotation axis of a proper rotation matrix with
// the given angle. For 0 < theta < pi the axis is read directly off the
// skew-symmetric part of m (the standard closed form: axis ∝
// (m32-m23, m13-m31, m21-m12)). At theta == pi that part vanishes identically
// (R is symmetric), so the axis is instead recovered as the eigenvector of
// eigenvalue +1 via gonum's general eigendecomposition, the same case the
// original handles by falling back to eigenanalysis.
func rotationAxis(m [3][3]float64, theta float64) Vec3 {
	if theta < angleTol {
		return Vec3{}
	}
	if math.Abs(theta-math.Pi) > angleTol {
		v := Vec3{
			X: m[2][1] - m[1][2],
			Y: m[0][2] - m[2][0],
			Z: m[1][0] - m[0][1],
		}
		return v.Unit()
	}
	return eigenvectorUnitEigenvalue(m)
}

// eigenvectorUnitEigenvalue returns a unit eigenvector of m with eigenvalue
// +1, used for the degenerate 180-degree-rotation case where the
// skew-symmetric-part formula for the axis is identically zero.
func eigenvectorUnitEigenvalue(m [3][3]float64) Vec3 {
	dense := mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
	var eig mat.Eigen
	if !eig.Factorize(dense, false, true) {
		return Vec3{}
	}
	values := eig.Values(nil)
	var vectors mat.CDense
	eig.VectorsTo(&vectors)
	for k, lambda := range values {
		if math.Abs(real(lambda)-1) < 1e-3 && math.Abs(imag(lambda)) < 1e-6 {
			v := Vec3{
				X: real(vectors.At(0, k)),
				Y: real(vectors.At(1, k)),
				Z: real(vectors.At(2, k)),
			}
			return v.Unit()
		}
	}
	return Vec3{}
}

// operationOrder searches n in [1,60] for the smallest n with n*theta an
// integer multiple of 2*pi, matching get_order's direct-search loop.
// Improper operations of odd order have their true period doubled, since
// applying an odd-order rotoinversion an odd number of times still carries
// the improper (det=-1) sign.
func operationOrder(theta float64, det float64) int {
	if theta < angleTol {
		if det > 0 {
			return 1
		}
		return 2
	}
	for n := 1; n <= 60; n++ {
		k := float64(n) * theta / (2 * math.Pi)
		if math.Abs(k-math.Round(k)) < angleTol {
			if det < 0 && n%2 == 1 {
				return 2 * n
			}
			return n
		}
	}
	return 0
}

// IsConjugate reports whether a and b have the same kind, angle (within
// tolerance) and determinant — the original's are_conjugate, which treats
// operations as conjugate when their rotation parts have matching
// eigenvalue spectra rather than comparing axes (axes differ under
// conjugation by definition).
func IsConjugate(a, b Op) bool {
	aa, ab := Analyze(a), Analyze(b)
	return aa.Kind == ab.Kind &&
		math.Abs(aa.Det-ab.Det) < 1e-6 &&
		math.Abs(aa.Angle-ab.Angle) < angleTol
}
