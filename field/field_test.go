package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbrady/shoccs/mesh"
	"github.com/pbrady/shoccs/shapes"
	"github.com/pbrady/shoccs/types"
)

func TestScalarArithmetic(t *testing.T) {
	a := Scalar{D: []types.Real{1, 2, 3}, Rx: []types.Real{1}, Ry: []types.Real{1}, Rz: []types.Real{1}}
	b := Scalar{D: []types.Real{1, 1, 1}, Rx: []types.Real{1}, Ry: []types.Real{1}, Rz: []types.Real{1}}

	sum := Add(a, b)
	assert.Equal(t, []types.Real{2, 3, 4}, sum.D)

	scaled := Scale(a, 2)
	assert.Equal(t, []types.Real{2, 4, 6}, scaled.D)
}

func TestViewAssign(t *testing.T) {
	s := NewScalar(4, 0, 0, 0)
	v := D(s)
	v.Assign([]types.Real{10, 20, 30, 40})
	assert.Equal(t, []types.Real{10, 20, 30, 40}, s.D)
}

func TestFilteredViewSkipsSolidCells(t *testing.T) {
	sphere := shapes.NewSphere(0, types.Real3{0.01, -0.01, 0.5}, 0.25)
	m, err := mesh.NewMeshWithShapes(
		types.Int3{21, 22, 23}, types.Real3{-1, -1, 0}, types.Real3{1, 2, 2.2},
		[]shapes.Shape{sphere}, true)
	require.NoError(t, err)

	s := NewScalar(m.Size(), 0, 0, 0)
	for i := range s.D {
		s.D[i] = 1
	}
	f := m.F()
	filtered := D(s).Filter(f)
	assert.Equal(t, m.Size()-f.Len(), filtered.Len())

	for _, ijk := range m.Geometry.Sx() {
		ic := m.IC(ijk)
		assert.True(t, f.Skip(ic))
	}
}

func TestAssignFilteredIndependentSkipSets(t *testing.T) {
	dstField := NewScalar(5, 0, 0, 0)
	srcField := NewScalar(5, 0, 0, 0)
	for i := range srcField.D {
		srcField.D[i] = types.Real(i + 1)
	}

	dstFilter := mesh.NewFilter([]types.Integer{2})    // dst skips index 2
	srcFilter := mesh.NewFilter([]types.Integer{0, 4}) // src skips indices 0, 4

	dst := D(dstField).Filter(dstFilter)  // surviving: 0,1,3,4 (len 4)
	src := D(srcField).Filter(srcFilter)  // surviving: 1,2,3   (len 3)

	dst.AssignFiltered(src)

	// only the first 3 surviving dst slots (indices 0,1,3) are overwritten,
	// from src's surviving values at indices 1,2,3 (2,3,4); index 2 (dst's
	// own skipped slot) and index 4 (never reached, src ran out) are
	// untouched.
	assert.Equal(t, []types.Real{2, 3, 0, 4, 0}, dstField.D)
}
