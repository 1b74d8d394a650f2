package matrix

import "github.com/pbrady/shoccs/types"

// Dense is row-major contiguous storage for the small boundary-closure
// blocks that appear at the ends of a line: a handful of rows, each a dense
// linear combination of a handful of columns near the same end.
type Dense struct {
	Common
	v []types.Real
}

// NewDense builds a Dense matrix from the first rows*cols row-major values
// (any further values are ignored), addressed with identity offsets (callers
// embedding it, e.g. via InnerBlock, should follow up with WithOffsets).
func NewDense(rows, cols types.Integer, values []types.Real) Dense {
	if len(values) < rows*cols {
		panic("matrix: NewDense needs at least rows*cols values")
	}
	return Dense{Common: NewCommon(rows, cols), v: values[:rows*cols]}
}

// WithOffsets returns a copy of d addressed at rowOffset/colOffset/stride.
func (d Dense) WithOffsets(rowOffset, colOffset, stride types.Integer) Dense {
	d.Common = d.Common.WithOffsets(rowOffset, colOffset, stride)
	return d
}

// Apply computes b[GlobalRow(row)] op= sum_col v[row,col]*x[GlobalCol(col)]
// for every local row.
func (d Dense) Apply(x []types.Real, b []types.Real, op Op) {
	for row := types.Integer(0); row < d.rows; row++ {
		var sum types.Real
		base := row * d.cols
		for col := types.Integer(0); col < d.cols; col++ {
			sum += d.v[base+col] * x[d.GlobalCol(col)]
		}
		gi := d.GlobalRow(row)
		op.apply(&b[gi], sum)
	}
}
