package stencils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pbrady/shoccs/bcs"
	"github.com/pbrady/shoccs/types"
)

func TestIdentityQuery(t *testing.T) {
	id := Identity{}
	assert.Equal(t, StencilInfo{P: 0, R: 2, T: 3, Ex: 0}, id.Query(bcs.Dirichlet))
	assert.Equal(t, StencilInfo{P: 0, R: 2, T: 3, Ex: 2}, id.Query(bcs.Neumann))
	assert.Equal(t, StencilInfo{P: 0, R: 2, T: 3, Ex: 2}, id.QueryMax())
}

func TestIdentityInterior(t *testing.T) {
	id := Identity{}
	out := make([]types.Real, 1)
	id.Interior(0.1, out)
	assert.Equal(t, types.Real(1), out[0])
}

func TestE2InteriorCoefficients(t *testing.T) {
	e := E2{}
	out := make([]types.Real, 3)
	e.Interior(0.5, out)
	assert.InDeltaSlice(t, []types.Real{4, -8, 4}, out, 1e-12)
}

// At psi=1 (a domain face) the psi-parameterized boundary row reduces to
// the evenly spaced [1,-2,1]/h^2 stencil.
func TestE2DomainFaceReducesToSimpleFormula(t *testing.T) {
	e := E2{}
	h := types.Real(0.2)
	out := make([]types.Real, 3)
	e.NBS(h, bcs.Free, 1, false, out, nil)
	assert.InDeltaSlice(t, []types.Real{1 / (h * h), -2 / (h * h), 1 / (h * h)}, out, 1e-12)
}

func TestE2ObjectBoundaryIsExactForQuadratics(t *testing.T) {
	e := E2{}
	h := types.Real(0.1)
	psi := types.Real(0.37)

	// f(x) = x^2, so f'' = 2 everywhere; place the boundary value at x=0,
	// the two fluid nodes at psi*h and psi*h+h.
	x0, x1, x2 := types.Real(0), psi*h, psi*h+h
	f0, f1, f2 := x0*x0, x1*x1, x2*x2

	out := make([]types.Real, 3)
	e.NBS(h, bcs.Dirichlet, psi, false, out, nil)
	got := out[0]*f0 + out[1]*f1 + out[2]*f2
	assert.InDelta(t, 2.0, got, 1e-9)
}

func TestE2NeumannGhostElimination(t *testing.T) {
	e := E2{}
	h := types.Real(0.1)
	out := make([]types.Real, 2)
	extra := make([]types.Real, 1)
	e.NBS(h, bcs.Neumann, 0, false, out, extra)

	// f(x) = x^2 has f'=2x, so at the left wall (x=0) g=f'(0)=0.
	f0, f1 := types.Real(0), h*h
	got := out[0]*f0 + out[1]*f1 + extra[0]*0
	assert.InDelta(t, 2.0, got, 1e-9)
}
