package monotone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomkrieg108/geomkernel/monotone"
	"github.com/tomkrieg108/geomkernel/point"
)

func square() []point.Point {
	return []point.Point{
		point.New(0, 0),
		point.New(4, 0),
		point.New(4, 4),
		point.New(0, 4),
	}
}

// nonConvex15 is the 15-vertex non-convex simple CCW polygon used as a
// triangulation-count cross-check.
func nonConvex15() []point.Point {
	coords := [][2]float64{
		{16.42, 12.51}, {13.95, 10.36}, {11.2, 18.4}, {9.2, 16.4}, {6.6, 17.8},
		{4, 16}, {6.62, 13.16}, {5.52, 9.06}, {3.38, 11.36}, {2.54, 6.49},
		{6.04, 3.49}, {8.99, 5.24}, {12, 2}, {12.26, 7.79}, {17.04, 6.99},
	}
	pts := make([]point.Point, len(coords))
	for i, c := range coords {
		pts[i] = point.New(c[0], c[1])
	}
	return pts
}

func TestCategorize_SquareHasOneStartOneEndTwoRegular(t *testing.T) {
	m, err := monotone.New(square())
	require.NoError(t, err)

	categories := m.Categories()
	require.Len(t, categories, 4)

	counts := map[monotone.VertexCategory]int{}
	for _, c := range categories {
		counts[c]++
	}
	assert.Equal(t, 1, counts[monotone.Start])
	assert.Equal(t, 1, counts[monotone.End])
	assert.Equal(t, 2, counts[monotone.Regular])
}

func TestMakeMonotone_SquareNeedsNoDiagonals(t *testing.T) {
	m, err := monotone.New(square())
	require.NoError(t, err)

	require.NoError(t, m.MakeMonotone())
	assert.Empty(t, m.MonotoneDiagonals())
	assert.NoError(t, m.DCEL().Validate())
}

func TestMakeMonotone_NonConvexPolygonProducesSplitOrMergeDiagonals(t *testing.T) {
	m, err := monotone.New(nonConvex15())
	require.NoError(t, err)

	counts := map[monotone.VertexCategory]int{}
	for _, c := range m.Categories() {
		counts[c]++
	}
	require.Greater(t, counts[monotone.Split]+counts[monotone.Merge], 0)

	require.NoError(t, m.MakeMonotone())
	assert.NoError(t, m.DCEL().Validate())
	assert.NotEmpty(t, m.MonotoneDiagonals())
}

func TestTriangulate_NonConvexPolygonYields13Triangles(t *testing.T) {
	m, err := monotone.New(nonConvex15())
	require.NoError(t, err)
	require.NoError(t, m.MakeMonotone())
	require.NoError(t, m.Triangulate())
	require.NoError(t, m.DCEL().Validate())

	// A simple polygon with n vertices triangulates into exactly n-2
	// triangles, regardless of how many intermediate monotone pieces were
	// produced.
	triangleCount := 0
	for i, f := range m.DCEL().Faces() {
		if i == 1 || f.Outer == -1 {
			continue
		}
		verts := faceVertexCount(t, m, i)
		if verts == 3 {
			triangleCount++
		}
	}
	assert.Equal(t, 13, triangleCount)
}

func faceVertexCount(t *testing.T, m *monotone.Partition, face int) int {
	t.Helper()
	f := m.DCEL().Faces()[face]
	count := 0
	e := f.Outer
	for {
		count++
		e = m.DCEL().HalfEdges()[e].Next
		if e == f.Outer {
			break
		}
		if count > len(m.DCEL().Vertices())+1 {
			t.Fatalf("face %d boundary did not close", face)
		}
	}
	return count
}

func TestTriangulate_SquareYieldsTwoTriangles(t *testing.T) {
	m, err := monotone.New(square())
	require.NoError(t, err)
	require.NoError(t, m.MakeMonotone())
	require.NoError(t, m.Triangulate())
	assert.NoError(t, m.DCEL().Validate())

	triangleCount := 0
	for i, f := range m.DCEL().Faces() {
		if i == 1 || f.Outer == -1 {
			continue
		}
		if faceVertexCount(t, m, i) == 3 {
			triangleCount++
		}
	}
	assert.Equal(t, 2, triangleCount)
}
