package mesh

import (
	"fmt"
	"sort"

	"github.com/pbrady/shoccs/shapes"
	"github.com/pbrady/shoccs/types"
)

// MeshObjectInfo represents one intersection of an axis-aligned ray with a
// shape, annotated with the mesh-local information consumers need to build
// lines and boundary-aware stencils.
type MeshObjectInfo struct {
	Psi        types.Real
	Position   types.Real3
	RayOutside bool
	SolidCoord types.Int3
	ShapeID    int
}

// CutGeometry intersects a list of analytic shapes with a Cartesian grid and
// exposes, per direction, the ordered intersection lists (R) and the fully
// interior solid points not adjacent to any intersection (S).
type CutGeometry struct {
	r       [3][]MeshObjectInfo
	rByShape [3][][]MeshObjectInfo // indexed [dir][shape index in input order]
	s       [3][]types.Int3
}

// NewCutGeometry intersects shapes with cart along all three directions. If
// checkDomain is set, any shape whose bounding box leaves the domain causes
// an error to be returned instead of a partially built CutGeometry.
func NewCutGeometry(shapeList []shapes.Shape, cart Cartesian, checkDomain bool) (CutGeometry, error) {
	if checkDomain {
		for i, sh := range shapeList {
			min, max := sh.Bounds()
			for d := 0; d < 3; d++ {
				if min[d] < cart.Min()[d] || max[d] > cart.Max()[d] {
					return CutGeometry{}, fmt.Errorf(
						"mesh: shape %d bounds [%v,%v] leave domain [%v,%v] on axis %d",
						i, min, max, cart.Min(), cart.Max(), d)
				}
			}
		}
	}

	var g CutGeometry
	for d := 0; d < 3; d++ {
		g.rByShape[d] = make([][]MeshObjectInfo, len(shapeList))
		g.buildDirection(d, shapeList, cart)
	}
	return g, nil
}

type taggedHit struct {
	shapes.Hit
	shapeIdx int
}

func (g *CutGeometry) buildDirection(d int, shapeList []shapes.Shape, cart Cartesian) {
	slow := types.Slow(d)
	fast := types.Fast(d)
	ns := cart.Extents[slow]
	nf := cart.Extents[fast]
	h := cart.H(d)

	for s := 0; s < ns; s++ {
		for f := 0; f < nf; f++ {
			var origin types.Int3
			origin[slow] = s
			origin[fast] = f
			origin[d] = 0
			rayOrigin := cart.Location(origin)

			var hits []taggedHit
			for si, sh := range shapeList {
				for _, hit := range sh.Intersect(rayOrigin, d, h) {
					hits = append(hits, taggedHit{Hit: hit, shapeIdx: si})
				}
			}
			if len(hits) == 0 {
				continue
			}
			sort.Slice(hits, func(i, j int) bool {
				return hits[i].Position[d] < hits[j].Position[d]
			})

			// buildLines emits a line on the ray_outside branch, pairing
			// entry->end and exit->start; entry hits (even index) must carry
			// RayOutside=true for that pairing to come out right.
			for i := range hits {
				hits[i].RayOutside = i%2 == 0
			}

			for _, th := range hits {
				coord := origin
				coord[d] = th.SolidCoord
				info := MeshObjectInfo{
					Psi:        th.Psi,
					Position:   th.Position,
					RayOutside: th.RayOutside,
					SolidCoord: coord,
					ShapeID:    th.shapeIdx,
				}
				g.r[d] = append(g.r[d], info)
				g.rByShape[d][th.shapeIdx] = append(g.rByShape[d][th.shapeIdx], info)
			}

			for i := 0; i+1 < len(hits); i += 2 {
				enter, exit := hits[i], hits[i+1]
				for k := enter.SolidCoord + 1; k < exit.SolidCoord; k++ {
					solid := origin
					solid[d] = k
					g.s[d] = append(g.s[d], solid)
				}
			}
		}
	}
}

// R returns the full, ordered intersection list for direction d.
func (g CutGeometry) R(d int) []MeshObjectInfo { return g.r[d] }

// Rx, Ry, Rz are convenience accessors for R(0), R(1), R(2).
func (g CutGeometry) Rx() []MeshObjectInfo { return g.r[0] }
func (g CutGeometry) Ry() []MeshObjectInfo { return g.r[1] }
func (g CutGeometry) Rz() []MeshObjectInfo { return g.r[2] }

// RByShape returns the intersections belonging only to shapeID along
// direction d, preserving order.
func (g CutGeometry) RByShape(d, shapeID int) []MeshObjectInfo {
	if shapeID < 0 || shapeID >= len(g.rByShape[d]) {
		return nil
	}
	return g.rByShape[d][shapeID]
}

// S returns the fully interior solid points along direction d.
func (g CutGeometry) S(d int) []types.Int3 { return g.s[d] }

func (g CutGeometry) Sx() []types.Int3 { return g.s[0] }
func (g CutGeometry) Sy() []types.Int3 { return g.s[1] }
func (g CutGeometry) Sz() []types.Int3 { return g.s[2] }
