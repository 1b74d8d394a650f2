package stencils

import (
	"github.com/pbrady/shoccs/bcs"
	"github.com/pbrady/shoccs/types"
)

// E2 is the discrete second-derivative (one Laplacian component, ∂²/∂xᵢ²)
// stencil: interior coefficients [1,-2,1]/h² at half-width p=1.
//
// The boundary row is derived from the 3-point (possibly unequally spaced)
// Lagrange interpolant's constant second derivative, parameterized by psi —
// the fraction of h between the boundary value and the nearest fluid node.
// Domain faces pass psi=1, which reduces the formula to the ordinary
// evenly-spaced one-sided stencil; object (cut-cell) boundaries pass their
// actual psi. This is why a single formula covers both without a special
// case: both the domain-face exactness (Testable Property 5) and the
// cut-cell case are the same Lagrange derivative, merely evaluated at
// different psi.
type E2 struct{}

func (E2) QueryMax() StencilInfo { return StencilInfo{P: 1, R: 1, T: 3, Ex: 1} }

func (E2) Query(bc bcs.Type) StencilInfo {
	if bc == bcs.Neumann {
		return StencilInfo{P: 1, R: 1, T: 2, Ex: 1}
	}
	return StencilInfo{P: 1, R: 1, T: 3, Ex: 0}
}

func (E2) Interior(h types.Real, out []types.Real) {
	hh := h * h
	out[0] = 1 / hh
	out[1] = -2 / hh
	out[2] = 1 / hh
}

func (E2) NBS(h types.Real, bc bcs.Type, psi types.Real, rightWall bool, out, extra []types.Real) {
	hh := h * h
	if bc == bcs.Neumann {
		// Ghost-point elimination: f(ghost) is replaced using the one-sided
		// flux condition f' = g at the wall, folding the ghost unknown into
		// a coefficient on the Neumann flux value (carried in extra, routed
		// to the N operator by the caller).
		if rightWall {
			out[0], out[1] = 2/hh, -2/hh
			extra[0] = 2 / h
		} else {
			out[0], out[1] = -2/hh, 2/hh
			extra[0] = -2 / h
		}
		return
	}

	p := psi
	if p <= 0 {
		p = 1
	}
	c0 := 2 / (p * (p + 1) * hh)
	c1 := -2 / (p * hh)
	c2 := 2 / ((p + 1) * hh)
	if rightWall {
		out[0], out[1], out[2] = c2, c1, c0
	} else {
		out[0], out[1], out[2] = c0, c1, c2
	}
}
