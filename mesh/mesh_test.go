package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbrady/shoccs/shapes"
	"github.com/pbrady/shoccs/types"
)

var (
	testExtents = types.Int3{21, 22, 23}
	testMin     = types.Real3{-1, -1, 0}
	testMax     = types.Real3{1, 2, 2.2}
)

func TestLinesWithoutCutCells(t *testing.T) {
	m, err := NewMesh(testExtents, testMin, testMax)
	require.NoError(t, err)

	assert.Len(t, m.Lines(0), 22*23)
	assert.Len(t, m.Lines(1), 21*23)
	assert.Len(t, m.Lines(2), 21*22)
}

func TestLinesWithSphere(t *testing.T) {
	sphere := shapes.NewSphere(0, types.Real3{0.01, -0.01, 0.5}, 0.25)
	m, err := NewMeshWithShapes(testExtents, testMin, testMax, []shapes.Shape{sphere}, true)
	require.NoError(t, err)

	assert.Len(t, m.Lines(0), 22*23+13)
	assert.Len(t, m.Lines(1), 21*23+21)
	assert.Len(t, m.Lines(2), 21*22+14)

	rx := m.Geometry.Rx()
	require.NotEmpty(t, rx)
	entry := rx[0]
	assert.True(t, entry.RayOutside)
	assert.Equal(t, types.Int3{10, 6, 3}, entry.SolidCoord)
	assert.InDelta(t, 0.40365385103120377, entry.Psi, 1e-9)

	exit := rx[1]
	assert.False(t, exit.RayOutside)
	assert.InDelta(t, 0.2036538510312047, exit.Psi, 1e-9)
}

func TestLineCoverageAccountsForEveryCell(t *testing.T) {
	sphere := shapes.NewSphere(0, types.Real3{0.01, -0.01, 0.5}, 0.25)
	m, err := NewMeshWithShapes(testExtents, testMin, testMax, []shapes.Shape{sphere}, true)
	require.NoError(t, err)

	total := testExtents[0] * testExtents[1] * testExtents[2]
	for d := 0; d < 3; d++ {
		covered := 0
		for _, l := range m.Lines(d) {
			covered += l.End.MeshCoordinate[d] - l.Start.MeshCoordinate[d] + 1
		}
		assert.Equal(t, total, covered+len(m.Geometry.S(d)))
	}
}

func TestCartesianValidation(t *testing.T) {
	_, err := NewCartesian(types.Int3{0, 5, 5}, testMin, testMax)
	assert.Error(t, err)

	_, err = NewCartesian(testExtents, types.Real3{1, 0, 0}, types.Real3{0, 1, 1})
	assert.Error(t, err)
}

func TestOnBoundary(t *testing.T) {
	c, err := NewCartesian(testExtents, testMin, testMax)
	require.NoError(t, err)

	assert.True(t, c.OnBoundary(0, false, types.Int3{0, 5, 5}))
	assert.True(t, c.OnBoundary(0, true, types.Int3{20, 5, 5}))
	assert.False(t, c.OnBoundary(0, true, types.Int3{19, 5, 5}))
}

func TestFilterSkipsInteriorSolidCells(t *testing.T) {
	sphere := shapes.NewSphere(0, types.Real3{0.01, -0.01, 0.5}, 0.25)
	m, err := NewMeshWithShapes(testExtents, testMin, testMax, []shapes.Shape{sphere}, true)
	require.NoError(t, err)

	f := m.FDir(0)
	for _, ijk := range m.Geometry.Sx() {
		assert.True(t, f.Skip(m.IC(ijk)))
	}
	assert.Equal(t, len(m.Geometry.Sx()), f.Len())
}

func TestFaceIndicesContiguousOnX(t *testing.T) {
	m, err := NewMesh(testExtents, testMin, testMax)
	require.NoError(t, err)

	xmin := m.XMin()
	ny, nz := testExtents[1], testExtents[2]
	require.Len(t, xmin, ny*nz)
	for i, ic := range xmin {
		assert.Equal(t, types.Integer(i), ic)
	}
}
