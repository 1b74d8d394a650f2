package stencils

import (
	"github.com/pbrady/shoccs/bcs"
	"github.com/pbrady/shoccs/types"
)

// Identity implements du = u everywhere, including at every boundary case.
// It exists purely to validate mesh/boundary plumbing independent of any
// real derivative formula.
type Identity struct{}

func (Identity) QueryMax() StencilInfo { return StencilInfo{P: 0, R: 2, T: 3, Ex: 2} }

func (Identity) Query(bc bcs.Type) StencilInfo {
	if bc == bcs.Neumann {
		return StencilInfo{P: 0, R: 2, T: 3, Ex: 2}
	}
	return StencilInfo{P: 0, R: 2, T: 3, Ex: 0}
}

func (Identity) Interior(h types.Real, out []types.Real) {
	out[0] = 1
}

// NBS lists rows (and extra entries) nearest the wall first; on the right
// wall the last of the three columns is the wall cell.
func (Identity) NBS(h types.Real, bc bcs.Type, psi types.Real, rightWall bool, out, extra []types.Real) {
	switch {
	case bc == bcs.Neumann && rightWall:
		extra[0], extra[1] = 2, 1
		copy(out, []types.Real{0, 0, -1, 0, 1, -1})
	case bc == bcs.Neumann:
		extra[0], extra[1] = 2, 1
		copy(out, []types.Real{-1, 0, 0, -1, 1, 0})
	case rightWall:
		copy(out, []types.Real{0, 0, 1, 0, 1, 0})
	default:
		copy(out, []types.Real{1, 0, 0, 0, 1, 0})
	}
}
