// Package mesh implements the cut-cell mesh construction core: a uniform
// Cartesian grid (Cartesian), its intersection with analytic solid objects
// (CutGeometry), and the per-direction line enumeration + selectors (Mesh)
// that the stencil-assembly and field packages consume.
package mesh

import (
	"github.com/pbrady/shoccs/bcs"
	"github.com/pbrady/shoccs/logging"
	"github.com/pbrady/shoccs/shapes"
	"github.com/pbrady/shoccs/types"
)

// ObjectBoundary describes the solid-surface side of a Boundary: which
// intersection (by position in mesh.Geometry.R(dir)) it corresponds to,
// which shape it belongs to, and its cut-cell distance.
type ObjectBoundary struct {
	ObjectCoordinate types.Integer
	ObjectID         int
	Psi              types.Real
}

// Boundary is either a domain-face boundary (Object == nil) or a
// solid-surface crossing point.
type Boundary struct {
	MeshCoordinate types.Int3
	Object         *ObjectBoundary
}

// Line is a maximal contiguous fluid run along one axis between two
// boundaries.
type Line struct {
	Stride types.Integer
	Start  Boundary
	End    Boundary
}

// Mesh owns a Cartesian grid and its CutGeometry, and exposes the
// per-direction line decomposition used by operators.Derivative.
type Mesh struct {
	Cartesian
	Geometry CutGeometry
	lines    [3][]Line
}

// NewMesh builds a Mesh with no embedded objects.
func NewMesh(extents types.Int3, min, max types.Real3) (Mesh, error) {
	return NewMeshWithShapes(extents, min, max, nil, true)
}

// NewMeshWithShapes builds a Mesh whose CutGeometry intersects shapeList with
// the grid. checkDomain is forwarded to CutGeometry construction.
func NewMeshWithShapes(extents types.Int3, min, max types.Real3, shapeList []shapes.Shape, checkDomain bool) (Mesh, error) {
	cart, err := NewCartesian(extents, min, max)
	if err != nil {
		return Mesh{}, err
	}
	geom, err := NewCutGeometry(shapeList, cart, checkDomain)
	if err != nil {
		return Mesh{}, err
	}
	m := Mesh{Cartesian: cart, Geometry: geom}
	for d := 0; d < 3; d++ {
		m.lines[d] = buildLines(d, cart, geom)
	}
	return m, nil
}

func samePlane(slow, fast int, a types.Int3, s, f types.Integer) bool {
	return a[slow] == s && a[fast] == f
}

func buildLines(dir int, cart Cartesian, geom CutGeometry) []Line {
	if cart.Extents[dir] == 1 {
		return nil
	}
	slow := types.Slow(dir)
	fast := types.Fast(dir)
	ns := cart.Extents[slow]
	nf := cart.Extents[fast]
	r := geom.R(dir)
	stride := cart.Stride(dir)

	lines := make([]Line, 0, ns*nf+len(r))
	idx := 0

	for s := 0; s < ns; s++ {
		for f := 0; f < nf; f++ {
			var start types.Int3
			start[slow] = s
			start[fast] = f
			start[dir] = 0
			leftBoundary := &Boundary{MeshCoordinate: start, Object: nil}

			hadIntersection := false
			for idx < len(r) && samePlane(slow, fast, r[idx].SolidCoord, s, f) {
				hadIntersection = true
				ob := &ObjectBoundary{
					ObjectCoordinate: idx,
					ObjectID:         r[idx].ShapeID,
					Psi:              r[idx].Psi,
				}
				if r[idx].RayOutside {
					lines = append(lines, Line{
						Stride: stride,
						Start:  *leftBoundary,
						End:    Boundary{MeshCoordinate: r[idx].SolidCoord, Object: ob},
					})
					leftBoundary = nil
				} else {
					leftBoundary = &Boundary{MeshCoordinate: r[idx].SolidCoord, Object: ob}
				}
				idx++
			}

			if leftBoundary != nil {
				var end types.Int3
				end[slow] = s
				end[fast] = f
				end[dir] = cart.Extents[dir] - 1
				lines = append(lines, Line{
					Stride: stride,
					Start:  *leftBoundary,
					End:    Boundary{MeshCoordinate: end, Object: nil},
				})
			} else if hadIntersection {
				// the last intersection on this ray was itself a RayOutside
				// entry with no matching exit before the domain face --
				// the solid runs flush to the end of the line, so there is
				// no trailing fluid run left to emit on this (s,f) plane.
				logging.FullySolidLine(dir, s, f)
			}
		}
	}
	return lines
}

// Lines returns the ordered line decomposition for direction d.
func (m Mesh) Lines(d int) []Line { return m.lines[d] }

// DirichletLine reports whether the line starting at start lies on a
// Dirichlet domain face in any direction other than dir.
func (m Mesh) DirichletLine(start types.Int3, dir int, gridBCs bcs.Grid) bool {
	check := func(i int) bool {
		return (gridBCs[i].Left == bcs.Dirichlet && m.OnBoundary(i, false, start)) ||
			(gridBCs[i].Right == bcs.Dirichlet && m.OnBoundary(i, true, start))
	}
	for i := 0; i < dir; i++ {
		if check(i) {
			return true
		}
	}
	for i := dir + 1; i < 3; i++ {
		if check(i) {
			return true
		}
	}
	return false
}

// IC linearizes ijk into the global index space.
func (m Mesh) IC(ijk types.Int3) types.Integer { return m.Cartesian.IC(ijk) }

// FaceIndices returns, in D-order, the linear indices of the domain face
// slab on direction d (left when right is false, right otherwise).
func (m Mesh) FaceIndices(d int, right bool) []types.Integer {
	extents := m.Extents
	var out []types.Integer
	fixed := 0
	if right {
		fixed = extents[d] - 1
	}
	var ijk types.Int3
	switch d {
	case 0:
		ijk[0] = fixed
		for j := 0; j < extents[1]; j++ {
			for k := 0; k < extents[2]; k++ {
				ijk[1], ijk[2] = j, k
				out = append(out, m.IC(ijk))
			}
		}
	case 1:
		ijk[1] = fixed
		for i := 0; i < extents[0]; i++ {
			for k := 0; k < extents[2]; k++ {
				ijk[0], ijk[2] = i, k
				out = append(out, m.IC(ijk))
			}
		}
	default:
		ijk[2] = fixed
		for i := 0; i < extents[0]; i++ {
			for j := 0; j < extents[1]; j++ {
				ijk[0], ijk[1] = i, j
				out = append(out, m.IC(ijk))
			}
		}
	}
	return out
}

func (m Mesh) XMin() []types.Integer { return m.FaceIndices(0, false) }
func (m Mesh) XMax() []types.Integer { return m.FaceIndices(0, true) }
func (m Mesh) YMin() []types.Integer { return m.FaceIndices(1, false) }
func (m Mesh) YMax() []types.Integer { return m.FaceIndices(1, true) }
func (m Mesh) ZMin() []types.Integer { return m.FaceIndices(2, false) }
func (m Mesh) ZMax() []types.Integer { return m.FaceIndices(2, true) }

// Location returns the cell-center coordinates for every cell in D-order.
func (m Mesh) Location() []types.Real3 {
	extents := m.Extents
	out := make([]types.Real3, 0, m.Size())
	var ijk types.Int3
	for i := 0; i < extents[0]; i++ {
		for j := 0; j < extents[1]; j++ {
			for k := 0; k < extents[2]; k++ {
				ijk[0], ijk[1], ijk[2] = i, j, k
				out = append(out, m.Cartesian.Location(ijk))
			}
		}
	}
	return out
}

// FullySolidLines returns, for diagnostic purposes, the (slow,fast) index
// pairs along direction dir whose ray never produced a fluid run (the
// mis-handled degenerate case noted in the upstream implementation).
func (m Mesh) FullySolidLines(dir int) []types.Int3 {
	slow := types.Slow(dir)
	fast := types.Fast(dir)
	ns := m.Extents[slow]
	nf := m.Extents[fast]
	covered := make(map[[2]int]bool, ns*nf)
	for _, l := range m.lines[dir] {
		key := [2]int{l.Start.MeshCoordinate[slow], l.Start.MeshCoordinate[fast]}
		covered[key] = true
	}
	var out []types.Int3
	for s := 0; s < ns; s++ {
		for f := 0; f < nf; f++ {
			if !covered[[2]int{s, f}] {
				var c types.Int3
				c[slow], c[fast] = s, f
				out = append(out, c)
			}
		}
	}
	return out
}
