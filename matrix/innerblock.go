package matrix

import "github.com/pbrady/shoccs/types"

// InnerBlock is the per-line operator: a left boundary-closure Dense block,
// the repeating Circulant interior, and a right boundary-closure Dense
// block, concatenated along one line and addressed as a single unit into
// the global index space. The offset/stride propagation below is ported
// directly from the upstream InnerBlock constructor: the left block keeps
// the block's own row/col offset, the interior starts stride*rows(left)
// rows further along, and the right block starts stride*(rows(left)+
// rows(interior)) rows along while its columns are pinned to the last
// columns-of-right columns of the block.
type InnerBlock struct {
	Common
	left     Dense
	interior Circulant
	right    Dense
}

// NewInnerBlock assembles left/interior/right into one addressed block of
// the given total column count, rowOffset, colOffset, and stride.
func NewInnerBlock(columns, rowOffset, colOffset, stride types.Integer, left Dense, interior Circulant, right Dense) InnerBlock {
	rows := left.Rows() + interior.Rows() + right.Rows()
	ib := InnerBlock{
		Common: NewCommon(rows, columns).WithOffsets(rowOffset, colOffset, stride),
	}
	ib.left = left.WithOffsets(rowOffset, colOffset, stride)
	ib.interior = interior.WithOffsets(rowOffset+stride*left.Rows(), stride)
	ib.right = right.WithOffsets(
		rowOffset+stride*(left.Rows()+interior.Rows()),
		colOffset+stride*(columns-right.Cols()),
		stride,
	)
	return ib
}

// Apply runs the three sub-blocks in sequence, each contributing its own
// rows of the global output.
func (ib InnerBlock) Apply(x []types.Real, b []types.Real, op Op) {
	ib.left.Apply(x, b, op)
	ib.interior.Apply(x, b, op)
	ib.right.Apply(x, b, op)
}
