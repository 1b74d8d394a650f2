package matrix

import (
	"github.com/james-bowman/sparse"
	"github.com/pbrady/shoccs/types"
)

// CSRBuilder accumulates entries for the object- and Neumann-boundary
// coupling operators (B, N), which unlike Dense/Circulant/InnerBlock are
// addressed directly in the mesh's global index space rather than through
// an offset+stride window. sparse.DOK.Set overwrites rather than
// accumulates, which is wrong here: several stencil rows can contribute to
// the same (row, col) entry (e.g. a ghost-point formula referencing another
// boundary's coupling column), so CSRBuilder keeps its own accumulation map
// and only pushes final values into a sparse.DOK when Build is called.
type CSRBuilder struct {
	rows, cols types.Integer
	acc        map[[2]types.Integer]types.Real
}

// NewCSRBuilder creates an empty accumulator for a rows x cols matrix.
func NewCSRBuilder(rows, cols types.Integer) *CSRBuilder {
	return &CSRBuilder{rows: rows, cols: cols, acc: make(map[[2]types.Integer]types.Real)}
}

// Add accumulates val into the (row, col) entry.
func (b *CSRBuilder) Add(row, col types.Integer, val types.Real) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		panic("matrix: CSRBuilder.Add index out of range")
	}
	b.acc[[2]types.Integer{row, col}] += val
}

// Build flushes the accumulated entries into a CSR matrix.
func (b *CSRBuilder) Build() CSR {
	dok := sparse.NewDOK(b.rows, b.cols)
	for k, v := range b.acc {
		if v != 0 {
			dok.Set(k[0], k[1], v)
		}
	}
	return CSR{rows: b.rows, cols: b.cols, m: dok.ToCSR()}
}

// CSR is a sparse row/column-coupling operator addressed directly in the
// global index space (used for the object-boundary operator B and the
// Neumann-boundary operator N).
type CSR struct {
	rows, cols types.Integer
	m          *sparse.CSR
}

func (c CSR) Rows() types.Integer { return c.rows }
func (c CSR) Cols() types.Integer { return c.cols }

// Apply computes b[row] += sum_col M[row,col]*x[col] for every stored
// non-zero entry. Unlike Dense/Circulant/InnerBlock, CSR always accumulates
// regardless of Op; the caller is responsible for zeroing b first when an
// overwrite is wanted (this is how B and N, which only ever contribute a
// correction on top of O's output, are used by operators.Derivative).
func (c CSR) Apply(x []types.Real, b []types.Real) {
	c.m.DoNonZero(func(i, j int, v float64) {
		b[i] += v * x[j]
	})
}
