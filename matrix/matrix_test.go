package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pbrady/shoccs/types"
)

func TestDenseApply(t *testing.T) {
	d := NewDense(2, 3, []types.Real{
		1, 2, 3,
		4, 5, 6,
	})
	x := []types.Real{1, 1, 1, 1, 1}
	b := make([]types.Real, 5)
	d.WithOffsets(0, 0, 1).Apply(x, b, Assign)
	assert.Equal(t, []types.Real{6, 15, 0, 0, 0}, b)
}

func TestDenseApplyAddAssign(t *testing.T) {
	d := NewDense(1, 2, []types.Real{2, 3})
	x := []types.Real{1, 1}
	b := []types.Real{10}
	d.WithOffsets(0, 0, 1).Apply(x, b, AddAssign)
	assert.Equal(t, []types.Real{15}, b)
}

func TestCirculantApply(t *testing.T) {
	// [1,-2,1] centered interior stencil on a 5-point line, rows 1..3.
	c := NewCirculant(3, 5, []types.Integer{-1, 0, 1}, []types.Real{1, -2, 1})
	c = c.WithOffsets(1, 1)
	x := []types.Real{1, 4, 9, 16, 25} // x^2 samples, h=1 -> constant 2nd difference = 2
	b := make([]types.Real, 5)
	c.Apply(x, b, Assign)
	assert.Equal(t, []types.Real{0, 2, 2, 2, 0}, b)
}

func TestInnerBlockApply(t *testing.T) {
	left := NewDense(1, 2, []types.Real{1, -1})
	interior := NewCirculant(2, 4, []types.Integer{-1, 0, 1}, []types.Real{1, -2, 1})
	right := NewDense(1, 2, []types.Real{-1, 1})
	ib := NewInnerBlock(4, 0, 0, 1, left, interior, right)

	x := []types.Real{1, 2, 3, 4}
	b := make([]types.Real, 4)
	ib.Apply(x, b, Assign)
	// left row: 1*1 + (-1)*2 = -1 (columns 0,1)
	assert.Equal(t, types.Real(-1), b[0])
	// right row: -1*3 + 1*4 = 1 (columns 2,3, via col_offset = 4-2=2)
	assert.Equal(t, types.Real(1), b[3])
}

func TestCSRBuilderAccumulatesDuplicateEntries(t *testing.T) {
	b := NewCSRBuilder(3, 3)
	b.Add(0, 0, 1)
	b.Add(0, 0, 2)
	csr := b.Build()

	x := []types.Real{1, 0, 0}
	out := make([]types.Real, 3)
	csr.Apply(x, out)
	assert.Equal(t, types.Real(3), out[0])
}

func TestBlockAppliesAllLines(t *testing.T) {
	bb := NewBlockBuilder(4, 4)
	ib := NewInnerBlock(4, 0, 0, 1,
		NewDense(1, 2, []types.Real{1, 0}),
		NewCirculant(2, 4, []types.Integer{-1, 0, 1}, []types.Real{1, -2, 1}),
		NewDense(1, 2, []types.Real{0, 1}))
	bb.Add(ib)
	blk := bb.Build()

	x := []types.Real{1, 2, 3, 4}
	out := make([]types.Real, 4)
	blk.Apply(x, out, Assign)
	assert.Equal(t, types.Real(1), out[0])
	assert.Equal(t, types.Real(4), out[3])
}
