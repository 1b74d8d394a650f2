package matrix

import "github.com/pbrady/shoccs/types"

// Circulant is the repeating interior stencil applied along a line: every
// row uses the same coefficients, centered on that row's own position.
// offsets holds each coefficient's shift, in points, from the row's own
// global position — e.g. [-1,0,1] for a centered 3-point stencil. Because
// the stencil is diagonal in a square index space, row and column share a
// single offset/stride base rather than independent ones.
type Circulant struct {
	Common
	offsets []types.Integer
	coeffs  []types.Real
}

// NewCirculant builds a Circulant with rows interior rows and cols total
// columns (the full line length, kept for bookkeeping only), applying the
// same (offset, coeff) pairs to every row.
func NewCirculant(rows, cols types.Integer, offsets []types.Integer, coeffs []types.Real) Circulant {
	if len(offsets) != len(coeffs) {
		panic("matrix: NewCirculant offsets and coeffs must have equal length")
	}
	return Circulant{Common: NewCommon(rows, cols), offsets: offsets, coeffs: coeffs}
}

// WithOffsets returns a copy of c addressed at offset/stride: row r of the
// block is the global point offset+stride*r, and its stencil samples the
// columns at that same global point shifted by each entry of c.offsets.
func (c Circulant) WithOffsets(offset, stride types.Integer) Circulant {
	c.Common = c.Common.WithOffsets(offset, offset, stride)
	return c
}

// Apply computes, for every local row, b[GlobalRow(row)] op= sum_k
// coeffs[k]*x[GlobalRow(row)+offsets[k]*stride].
func (c Circulant) Apply(x []types.Real, b []types.Real, op Op) {
	for row := types.Integer(0); row < c.rows; row++ {
		gi := c.GlobalRow(row)
		var sum types.Real
		for k, off := range c.offsets {
			sum += c.coeffs[k] * x[gi+off*c.stride]
		}
		op.apply(&b[gi], sum)
	}
}
