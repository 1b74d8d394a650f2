package mesh

import (
	"fmt"

	"github.com/pbrady/shoccs/types"
)

// IndexExtents holds the (nx,ny,nz) shape of a structured grid and provides
// the x-slowest, z-fastest linearization used throughout the solver.
type IndexExtents struct {
	Extents types.Int3
}

// NewIndexExtents validates and wraps an extents tuple.
func NewIndexExtents(extents types.Int3) (IndexExtents, error) {
	for d := 0; d < 3; d++ {
		if extents[d] < 1 {
			return IndexExtents{}, fmt.Errorf("mesh: extents[%d]=%d must be >= 1", d, extents[d])
		}
	}
	return IndexExtents{Extents: extents}, nil
}

// Stride returns the linear-index stride for direction d.
func (e IndexExtents) Stride(d int) types.Integer {
	switch d {
	case 0:
		return e.Extents[1] * e.Extents[2]
	case 1:
		return e.Extents[2]
	default:
		return 1
	}
}

// IC linearizes a grid coordinate: ic(i,j,k) = i*ny*nz + j*nz + k.
func (e IndexExtents) IC(ijk types.Int3) types.Integer {
	return ijk[0]*e.Extents[1]*e.Extents[2] + ijk[1]*e.Extents[2] + ijk[2]
}

// Size returns nx*ny*nz.
func (e IndexExtents) Size() types.Integer {
	return e.Extents[0] * e.Extents[1] * e.Extents[2]
}
