package mesh

import (
	"fmt"

	"github.com/pbrady/shoccs/types"
)

// Cartesian is a uniform 3D grid described by its extents and physical
// bounds. It provides coordinate <-> index conversion and the domain-face
// predicate used by line construction and the Dirichlet-line check.
type Cartesian struct {
	IndexExtents
	min, max types.Real3
	h        types.Real3
}

// NewCartesian builds a Cartesian grid, returning an error if any extent is
// degenerate (<1) or any axis has a non-positive span (min >= max). These are
// configuration errors that a caller loading user-authored mesh parameters
// must be able to report, so the constructor returns an error rather than
// panicking.
func NewCartesian(extents types.Int3, min, max types.Real3) (Cartesian, error) {
	ie, err := NewIndexExtents(extents)
	if err != nil {
		return Cartesian{}, err
	}
	for d := 0; d < 3; d++ {
		if min[d] >= max[d] {
			return Cartesian{}, fmt.Errorf("mesh: bounds[%d] min=%v must be < max=%v", d, min[d], max[d])
		}
	}
	var h types.Real3
	for d := 0; d < 3; d++ {
		h[d] = (max[d] - min[d]) / types.Real(extents[d]-1)
	}
	return Cartesian{IndexExtents: ie, min: min, max: max, h: h}, nil
}

// H returns the cell spacing along direction d.
func (c Cartesian) H(d int) types.Real { return c.h[d] }

// Min returns the lower domain bound.
func (c Cartesian) Min() types.Real3 { return c.min }

// Max returns the upper domain bound.
func (c Cartesian) Max() types.Real3 { return c.max }

// Location returns the physical coordinate of cell ijk.
func (c Cartesian) Location(ijk types.Int3) types.Real3 {
	return c.min.Add(c.h.MulInt3(ijk))
}

// OnBoundary reports whether ijk sits on the low (right=false) or high
// (right=true) face of direction d.
func (c Cartesian) OnBoundary(d int, right bool, ijk types.Int3) bool {
	if right {
		return ijk[d] == c.Extents[d]-1
	}
	return ijk[d] == 0
}
