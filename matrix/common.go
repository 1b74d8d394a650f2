// Package matrix implements the composite sparse-matrix addressing scheme
// that boundary-aware stencil assembly uses to place small dense/circulant
// blocks into a single global linear operator: Dense (near-boundary rows),
// Circulant (the repeating interior stencil), InnerBlock (their
// concatenation along one line), and CSR/Block (the cross-line object- and
// Neumann-boundary couplings), all addressed through a shared row/col
// offset+stride convention into the mesh's global index space.
package matrix

import "github.com/pbrady/shoccs/types"

// Op selects how Apply combines a matrix's action with the caller's output
// buffer. It replaces the upstream's templated eq_t/plus_eq_t tag types: Go
// has no cheap zero-cost template instantiation for this, so a small enum
// dispatched in a switch is the idiomatic substitute.
type Op int

const (
	// Assign overwrites b[row] with the matrix-vector product.
	Assign Op = iota
	// AddAssign accumulates the matrix-vector product into b[row].
	AddAssign
)

func (op Op) apply(b *types.Real, v types.Real) {
	switch op {
	case AddAssign:
		*b += v
	default:
		*b = v
	}
}

// Common holds the row/column extent and the offset+stride addressing that
// maps a component matrix's local (row, col) pairs into the global linear
// index space ic = row_offset + stride*row (and similarly for columns).
type Common struct {
	rows, cols           types.Integer
	rowOffset, colOffset types.Integer
	stride               types.Integer
}

// NewCommon builds a Common with the given shape and an identity (offset 0,
// stride 1) addressing; callers needing embedded addressing should follow up
// with WithOffsets.
func NewCommon(rows, cols types.Integer) Common {
	return Common{rows: rows, cols: cols, stride: 1}
}

// WithOffsets returns a copy of c addressed at rowOffset/colOffset with the
// given stride.
func (c Common) WithOffsets(rowOffset, colOffset, stride types.Integer) Common {
	c.rowOffset, c.colOffset, c.stride = rowOffset, colOffset, stride
	return c
}

func (c Common) Rows() types.Integer { return c.rows }
func (c Common) Cols() types.Integer { return c.cols }

// GlobalRow maps a local row index to its global linear index.
func (c Common) GlobalRow(row types.Integer) types.Integer {
	return c.rowOffset + c.stride*row
}

// GlobalCol maps a local column index to its global linear index.
func (c Common) GlobalCol(col types.Integer) types.Integer {
	return c.colOffset + c.stride*col
}
