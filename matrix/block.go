package matrix

import "github.com/pbrady/shoccs/types"

// BlockBuilder accumulates one InnerBlock per line into the full-domain
// interior operator O. Lines never share rows, so the sub-blocks can simply
// be applied one after another regardless of Op.
type BlockBuilder struct {
	rows, cols types.Integer
	blocks     []InnerBlock
}

// NewBlockBuilder creates an empty builder for a rows x cols operator.
func NewBlockBuilder(rows, cols types.Integer) *BlockBuilder {
	return &BlockBuilder{rows: rows, cols: cols}
}

// Add appends one line's InnerBlock to the operator.
func (bb *BlockBuilder) Add(ib InnerBlock) {
	bb.blocks = append(bb.blocks, ib)
}

// Build finalizes the operator.
func (bb *BlockBuilder) Build() Block {
	return Block{rows: bb.rows, cols: bb.cols, blocks: bb.blocks}
}

// Block is the full-domain interior operator O for one direction: the
// concatenation, over every line along that direction, of that line's
// InnerBlock.
type Block struct {
	rows, cols types.Integer
	blocks     []InnerBlock
}

func (blk Block) Rows() types.Integer { return blk.rows }
func (blk Block) Cols() types.Integer { return blk.cols }

// Apply runs every line's InnerBlock against x, writing into b.
func (blk Block) Apply(x []types.Real, b []types.Real, op Op) {
	for _, ib := range blk.blocks {
		ib.Apply(x, b, op)
	}
}
