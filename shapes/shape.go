// Package shapes implements the analytic solid-object library consumed by
// mesh.CutGeometry. Only the interface surface the core needs is specified
// here; Sphere is the single concrete shape implemented, sufficient to
// exercise the cut-cell intersection machinery end to end.
package shapes

import "github.com/pbrady/shoccs/types"

// Hit describes one intersection of an axis-aligned ray with a shape's
// surface, ordered along the increasing-index direction the ray was cast in.
// SolidCoord is expressed only along the ray's own axis; CutGeometry combines
// it with the ray's fixed transverse indices to build the full Int3
// coordinate recorded in mesh.MeshObjectInfo.
type Hit struct {
	Position   types.Real3
	Psi        types.Real
	RayOutside bool
	SolidCoord types.Integer
}

// Shape is the interface CutGeometry consumes: given a ray's origin (held
// fixed along the two axes transverse to dir, scanning the full extent of
// dir) and its direction, return all ordered intersections with the surface.
type Shape interface {
	// Intersect returns the ordered (by increasing coordinate along dir)
	// surface crossings of the ray starting at rayOrigin and travelling
	// along +dir. h is the grid spacing along dir, used to compute Psi and
	// SolidCoord in index space.
	Intersect(rayOrigin types.Real3, dir int, h types.Real) []Hit
	// Bounds returns the shape's axis-aligned bounding box, used by
	// CutGeometry's CheckDomain validation.
	Bounds() (min, max types.Real3)
}
