// Package symmop implements the affine symmetry-operation algebra: parsing
// the "x,y,z"-style strings used throughout the bundled symmetry tables,
// composing and applying operations, and classifying them by rotation kind.
package symmop

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Vec3 is a fractional-coordinate 3-vector.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }
func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }
func (v Vec3) Unit() Vec3 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// Op is an affine map on fractional coordinates: p -> Rot*p + Trans.
// Rot is expressed row-major; all entries are exact for valid space-group
// operations (0, +-1, or a small rational for generality).
type Op struct {
	Rot   [3]Vec3 // rows of the rotation/rotoinversion matrix
	Trans Vec3
}

// Identity is the trivial operation x,y,z.
var Identity = Op{
	Rot: [3]Vec3{{X: 1}, {Y: 1}, {Z: 1}},
}

var termPattern = regexp.MustCompile(`[+-]?[^+-]+`)

// Parse builds an Op from the canonical "x,y,z" triple form used by the
// bundled Wyckoff tables, e.g. "-x+1/2,y,-z+1/2" or "x-y,x,z+1/3".
func Parse(xyz string) (Op, error) {
	parts := strings.Split(xyz, ",")
	if len(parts) != 3 {
		return Op{}, fmt.Errorf("symmop: expected 3 comma-separated components, got %q", xyz)
	}
	var op Op
	for i, part := range parts {
		row, trans, err := parseComponent(part)
		if err != nil {
			return Op{}, fmt.Errorf("symmop: component %d of %q: %w", i, xyz, err)
		}
		op.Rot[i] = row
		switch i {
		case 0:
			op.Trans.X = trans
		case 1:
			op.Trans.Y = trans
		case 2:
			op.Trans.Z = trans
		}
	}
	return op, nil
}

// parseComponent parses one comma-separated side of an xyz string into the
// row of the rotation matrix it contributes (coefficients of x, y, z) and
// the constant (translation) term.
func parseComponent(s string) (row Vec3, trans float64, err error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return row, 0, fmt.Errorf("empty component")
	}
	terms := termPattern.FindAllString(s, -1)
	if terms == nil {
		return row, 0, fmt.Errorf("no terms found in %q", s)
	}
	for _, term := range terms {
		sign := 1.0
		t := term
		if strings.HasPrefix(t, "+") {
			t = t[1:]
		} else if strings.HasPrefix(t, "-") {
			sign = -1.0
			t = t[1:]
		}
		if t == "" {
			return row, 0, fmt.Errorf("dangling sign in %q", s)
		}
		switch {
		case strings.ContainsAny(t, "xyz"):
			coeffStr := strings.TrimRight(t, "xyz")
			coeff := 1.0
			if coeffStr != "" {
				coeff, err = strconv.ParseFloat(coeffStr, 64)
				if err != nil {
					return row, 0, fmt.Errorf("bad coefficient in %q: %w", term, err)
				}
			}
			coeff *= sign
			switch t[len(t)-1] {
			case 'x':
				row.X += coeff
			case 'y':
				row.Y += coeff
			case 'z':
				row.Z += coeff
			}
		default:
			frac, err := parseFraction(t)
			if err != nil {
				return row, 0, fmt.Errorf("bad constant in %q: %w", term, err)
			}
			trans += sign * frac
		}
	}
	return row, trans, nil
}

func parseFraction(s string) (float64, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, err
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil {
			return 0, err
		}
		if d == 0 {
			return 0, fmt.Errorf("division by zero in fraction %q", s)
		}
		return n / d, nil
	}
	return strconv.ParseFloat(s, 64)
}

// FromRotationTranslation builds an Op directly from a rotation matrix
// (rows) and a translation vector.
func FromRotationTranslation(rot [3]Vec3, trans Vec3) Op {
	return Op{Rot: rot, Trans: trans}
}

// Apply evaluates the operation at point p.
func (op Op) Apply(p Vec3) Vec3 {
	return Vec3{
		X: op.Rot[0].Dot(p) + op.Trans.X,
		Y: op.Rot[1].Dot(p) + op.Trans.Y,
		Z: op.Rot[2].Dot(p) + op.Trans.Z,
	}
}

// Compose returns the operation equivalent to first applying b, then a
// (i.e. a.Compose(b) applied to p equals a.Apply(b.Apply(p))).
func (a Op) Compose(b Op) Op {
	col := func(j int) Vec3 {
		switch j {
		case 0:
			return Vec3{a.Rot[0].X, a.Rot[1].X, a.Rot[2].X}
		case 1:
			return Vec3{a.Rot[0].Y, a.Rot[1].Y, a.Rot[2].Y}
		default:
			return Vec3{a.Rot[0].Z, a.Rot[1].Z, a.Rot[2].Z}
		}
	}
	_ = col // columns of a are not needed; rows of a times rows of b below
	var rot [3]Vec3
	bCol := func(j int) Vec3 {
		switch j {
		case 0:
			return Vec3{b.Rot[0].X, b.Rot[1].X, b.Rot[2].X}
		case 1:
			return Vec3{b.Rot[0].Y, b.Rot[1].Y, b.Rot[2].Y}
		default:
			return Vec3{b.Rot[0].Z, b.Rot[1].Z, b.Rot[2].Z}
		}
	}
	for i := 0; i < 3; i++ {
		rot[i] = Vec3{
			X: a.Rot[i].Dot(bCol(0)),
			Y: a.Rot[i].Dot(bCol(1)),
			Z: a.Rot[i].Dot(bCol(2)),
		}
	}
	rotOnly := Op{Rot: a.Rot}
	trans := rotOnly.Apply(b.Trans).Add(a.Trans)
	return Op{Rot: rot, Trans: trans}
}

// Wrap folds each component of p into [0,1).
func Wrap(p Vec3) Vec3 {
	return Vec3{X: wrap1(p.X), Y: wrap1(p.Y), Z: wrap1(p.Z)}
}

func wrap1(x float64) float64 {
	y := math.Mod(x, 1.0)
	if y < 0 {
		y += 1.0
	}
	return y
}

const pbcTol = 1e-3

// EqualModPBC reports whether two operations are equal up to an integer
// translation difference (spec §3: "Two operations are equal modulo PBC").
func EqualModPBC(a, b Op, allowPBC bool) bool {
	if !closeVec(a.Rot[0], b.Rot[0]) || !closeVec(a.Rot[1], b.Rot[1]) || !closeVec(a.Rot[2], b.Rot[2]) {
		return false
	}
	d := a.Trans.Sub(b.Trans)
	if !allowPBC {
		return math.Abs(d.X) < pbcTol && math.Abs(d.Y) < pbcTol && math.Abs(d.Z) < pbcTol
	}
	return isNearInt(d.X) && isNearInt(d.Y) && isNearInt(d.Z)
}

func isNearInt(x float64) bool {
	return math.Abs(x-math.Round(x)) < pbcTol
}

func closeVec(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < pbcTol && math.Abs(a.Y-b.Y) < pbcTol && math.Abs(a.Z-b.Z) < pbcTol
}

// HasRotationalFreedom reports whether the rotation part is not the zero
// matrix, i.e. whether moving the seed point actually moves the orbit.
// This resolves spec §9's Open Question about check_compatible's peculiar
// `rotation_matrix.all() != 0.0` test: the intent is "does this Wyckoff
// position have any degree of freedom", which is "is the rotation matrix
// nonzero", not the (almost-always-true) literal Python idiom.
func (op Op) HasRotationalFreedom() bool {
	for _, row := range op.Rot {
		if row.X != 0 || row.Y != 0 || row.Z != 0 {
			return true
		}
	}
	return false
}

// String renders the operation back into canonical xyz form.
func (op Op) String() string {
	comp := func(row Vec3, t float64) string {
		var b strings.Builder
		writeTerm(&b, row.X, "x")
		writeTerm(&b, row.Y, "y")
		writeTerm(&b, row.Z, "z")
		if t != 0 {
			writeConst(&b, t)
		}
		if b.Len() == 0 {
			return "0"
		}
		return b.String()
	}
	return comp(op.Rot[0], op.Trans.X) + "," + comp(op.Rot[1], op.Trans.Y) + "," + comp(op.Rot[2], op.Trans.Z)
}

func writeTerm(b *strings.Builder, coeff float64, sym string) {
	switch coeff {
	case 0:
		return
	case 1:
		if b.Len() > 0 {
			b.WriteByte('+')
		}
		b.WriteString(sym)
	case -1:
		b.WriteByte('-')
		b.WriteString(sym)
	default:
		if coeff > 0 && b.Len() > 0 {
			b.WriteByte('+')
		}
		fmt.Fprintf(b, "%g%s", coeff, sym)
	}
}

func writeConst(b *strings.Builder, t float64) {
	if t > 0 && b.Len() > 0 {
		b.WriteByte('+')
	}
	fmt.Fprintf(b, "%g", t)
}
