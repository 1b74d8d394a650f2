// Package stencils implements the finite-difference stencil abstraction
// boundary-aware assembly queries to build the per-line Dense/Circulant
// blocks and B/N coupling entries: Identity (plumbing smoke test) and E2
// (the discrete second-derivative Laplacian component).
package stencils

import (
	"github.com/pbrady/shoccs/bcs"
	"github.com/pbrady/shoccs/types"
)

// StencilInfo sizes the scratch buffers a Stencil's Query/QueryMax answer
// demands: P is the interior half-width, R the number of boundary rows
// produced, T the number of columns each boundary row touches, and Ex the
// number of extra (Neumann ghost-elimination) rows/entries produced.
type StencilInfo struct {
	P, R, T, Ex types.Integer
}

// Stencil is queried by operators.Derivative to assemble the interior
// Circulant coefficients and the boundary-row Dense/extra coefficients for
// every domain-face and object-boundary case it encounters.
type Stencil interface {
	// QueryMax returns the largest R, T, Ex this stencil ever produces,
	// across all bcs.Type values, used to size scratch buffers once.
	QueryMax() StencilInfo
	// Query returns the R, T, Ex this stencil produces for boundary type bc.
	Query(bc bcs.Type) StencilInfo
	// Interior writes the 2p+1 interior coefficients (half-width p) for grid
	// spacing h into out.
	Interior(h types.Real, out []types.Real)
	// NBS ("near boundary stencil") writes the boundary-row coefficients for
	// boundary type bc, psi-weighted surface position psi (in [0,1]; 1 when
	// bc is a plain domain face), and which wall (left/right) into out (row-
	// major, R rows of T columns) and any Ex extra (Neumann ghost-coupling)
	// coefficients into extra.
	NBS(h types.Real, bc bcs.Type, psi types.Real, rightWall bool, out, extra []types.Real)
}
