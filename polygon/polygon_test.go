package polygon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomkrieg108/geomkernel/point"
	"github.com/tomkrieg108/geomkernel/polygon"
)

func square() []point.Point {
	return []point.Point{
		point.New(0, 0),
		point.New(4, 0),
		point.New(4, 4),
		point.New(0, 4),
	}
}

func TestArea2XSigned_CounterclockwiseIsPositive(t *testing.T) {
	assert.Equal(t, 32.0, polygon.Area2XSigned(square()))
}

func TestArea2XSigned_ClockwiseIsNegative(t *testing.T) {
	pts := square()
	reversed := make([]point.Point, len(pts))
	for i, p := range pts {
		reversed[len(pts)-1-i] = p
	}
	assert.Equal(t, -32.0, polygon.Area2XSigned(reversed))
}

func TestArea2XSigned_DegenerateIsZero(t *testing.T) {
	assert.Equal(t, 0.0, polygon.Area2XSigned([]point.Point{point.New(0, 0), point.New(1, 1)}))
	assert.Equal(t, 0.0, polygon.Area2XSigned([]point.Point{
		point.New(0, 0), point.New(1, 0), point.New(2, 0),
	}))
}

func TestToLineSegments_ClosesBoundary(t *testing.T) {
	segments := polygon.ToLineSegments(square())
	require.Len(t, segments, 4)
	assert.True(t, segments[3].Upper().Eq(point.New(0, 4)) || segments[3].Lower().Eq(point.New(0, 4)))
}

func TestToLineSegments_SkipsDegenerateEdges(t *testing.T) {
	pts := []point.Point{
		point.New(0, 0),
		point.New(4, 0),
		point.New(4, 0),
		point.New(4, 4),
	}
	segments := polygon.ToLineSegments(pts)
	assert.Len(t, segments, 3)
}

func TestIsWellFormed_ValidSquare(t *testing.T) {
	ok, err := polygon.IsWellFormed(square())
	assert.True(t, ok)
	assert.NoError(t, err)
}

func TestIsWellFormed_RejectsTooFewPoints(t *testing.T) {
	ok, err := polygon.IsWellFormed([]point.Point{point.New(0, 0), point.New(1, 1)})
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestIsWellFormed_RejectsZeroArea(t *testing.T) {
	ok, err := polygon.IsWellFormed([]point.Point{
		point.New(0, 0), point.New(1, 0), point.New(2, 0),
	})
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestIsWellFormed_RejectsSelfIntersecting(t *testing.T) {
	bowtie := []point.Point{
		point.New(0, 0),
		point.New(4, 4),
		point.New(4, 0),
		point.New(0, 4),
	}
	ok, err := polygon.IsWellFormed(bowtie)
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestNew_BuildsMeshForValidPolygon(t *testing.T) {
	p, err := polygon.New(square())
	require.NoError(t, err)
	require.NotNil(t, p.Mesh())
	assert.NoError(t, p.Mesh().Validate())
}

func TestNew_RejectsInvalidPolygon(t *testing.T) {
	_, err := polygon.New([]point.Point{point.New(0, 0), point.New(1, 1)})
	assert.Error(t, err)
}

func TestConvexHull_Square(t *testing.T) {
	hull := polygon.ConvexHull(square())
	assert.Len(t, hull, 4)
}

func TestConvexHull_DropsInteriorPoints(t *testing.T) {
	pts := []point.Point{
		point.New(0, 0),
		point.New(4, 0),
		point.New(4, 4),
		point.New(0, 4),
		point.New(2, 2),
	}
	hull := polygon.ConvexHull(pts)
	assert.Len(t, hull, 4)
	for _, p := range hull {
		assert.False(t, p.Eq(point.New(2, 2)))
	}
}

func TestConvexHull_FewerThanThreePointsUnchanged(t *testing.T) {
	pts := []point.Point{point.New(0, 0), point.New(1, 1)}
	hull := polygon.ConvexHull(pts)
	assert.Equal(t, pts, hull)
}

func TestConvexHull_CollinearPointsOnHullEdgeAreDropped(t *testing.T) {
	pts := []point.Point{
		point.New(0, 0),
		point.New(2, 0),
		point.New(4, 0),
		point.New(4, 4),
		point.New(0, 4),
	}
	hull := polygon.ConvexHull(pts)
	for _, p := range hull {
		assert.False(t, p.Eq(point.New(2, 0)))
	}
}
