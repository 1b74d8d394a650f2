// Package field implements the scalar field model: a cell-centered domain
// component D plus the three directional boundary-value components Rx, Ry,
// Rz, together with the selector/filter views operators.Derivative and its
// callers use to read and write them.
package field

import "github.com/pbrady/shoccs/types"

// Scalar is a field over the mesh: D holds one value per mesh cell (length
// mesh.Size()), and Rx, Ry, Rz hold one value per boundary intersection
// along each direction (length len(m.Geometry.R(0))/len(m.Geometry.R(1))/
// len(m.Geometry.R(2)) for a mesh.Mesh m).
type Scalar struct {
	D, Rx, Ry, Rz []types.Real
}

// NewScalar allocates a Scalar sized for a domain of size n with rx/ry/rz
// boundary-value slots.
func NewScalar(n, rx, ry, rz int) Scalar {
	return Scalar{
		D:  make([]types.Real, n),
		Rx: make([]types.Real, rx),
		Ry: make([]types.Real, ry),
		Rz: make([]types.Real, rz),
	}
}

// R returns the three directional boundary components as a tuple.
func (s Scalar) R() (rx, ry, rz []types.Real) { return s.Rx, s.Ry, s.Rz }

// RDir returns the boundary component for direction d (0=x,1=y,2=z).
func (s Scalar) RDir(d int) []types.Real {
	switch d {
	case 0:
		return s.Rx
	case 1:
		return s.Ry
	default:
		return s.Rz
	}
}

func apply2(dst, a, b []types.Real, op func(x, y types.Real) types.Real) {
	n := len(dst)
	if len(a) < n {
		n = len(a)
	}
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dst[i] = op(a[i], b[i])
	}
}

func applyScalar(dst, a []types.Real, s types.Real, op func(x, y types.Real) types.Real) {
	for i := range dst {
		dst[i] = op(a[i], s)
	}
}

// Add returns the elementwise sum of two Scalars over all four components.
// The inputs must share shape; shorter slices limit the operation length.
func Add(a, b Scalar) Scalar {
	out := Scalar{
		D:  make([]types.Real, len(a.D)),
		Rx: make([]types.Real, len(a.Rx)),
		Ry: make([]types.Real, len(a.Ry)),
		Rz: make([]types.Real, len(a.Rz)),
	}
	plus := func(x, y types.Real) types.Real { return x + y }
	apply2(out.D, a.D, b.D, plus)
	apply2(out.Rx, a.Rx, b.Rx, plus)
	apply2(out.Ry, a.Ry, b.Ry, plus)
	apply2(out.Rz, a.Rz, b.Rz, plus)
	return out
}

// Scale returns a copy of a with every component multiplied by s.
func Scale(a Scalar, s types.Real) Scalar {
	out := Scalar{
		D:  make([]types.Real, len(a.D)),
		Rx: make([]types.Real, len(a.Rx)),
		Ry: make([]types.Real, len(a.Ry)),
		Rz: make([]types.Real, len(a.Rz)),
	}
	mul := func(x, y types.Real) types.Real { return x * y }
	applyScalar(out.D, a.D, s, mul)
	applyScalar(out.Rx, a.Rx, s, mul)
	applyScalar(out.Ry, a.Ry, s, mul)
	applyScalar(out.Rz, a.Rz, s, mul)
	return out
}
