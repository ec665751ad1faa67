package symmop

// Orientation is an immutable rigid-body orientation tag: a 3x3 rotation
// matrix plus how many rotational degrees of freedom were used to build it
// (0: fixed/tabulated, 1: one free angle about a fixed axis, 2: fully free).
// Molecular placement itself is out of scope; this type exists only so
// call sites that need to carry an orientation alongside a Wyckoff-placed
// atom have somewhere to put it, matching the original's "orientation"
// data-model entry.
type Orientation struct {
	matrix [3][3]float64
	dof    int
}

// NewOrientation builds a fixed (0-DOF) orientation from an explicit matrix.
func NewOrientation(matrix [3][3]float64) Orientation {
	return Orientation{matrix: matrix, dof: 0}
}

// NewOrientationWithDOF builds an orientation tagged with the given number
// of rotational degrees of freedom (1 or 2); matrix is the orientation at
// the moment of construction and is not mutated afterward.
func NewOrientationWithDOF(matrix [3][3]float64, dof int) Orientation {
	return Orientation{matrix: matrix, dof: dof}
}

// Matrix returns the rotation matrix.
func (o Orientation) Matrix() [3][3]float64 { return o.matrix }

// DOF returns the number of rotational degrees of freedom this orientation
// was constructed with.
func (o Orientation) DOF() int { return o.dof }
