package polygon

import (
	"slices"

	"github.com/tomkrieg108/geomkernel/point"
)

// ConvexHull computes the convex hull of a finite set of points using the
// Graham scan algorithm. The result is the vertices of the smallest convex
// polygon enclosing all input points, in counterclockwise order.
//
// If fewer than 3 points are given, the input is returned unchanged.
func ConvexHull(points []point.Point) []point.Point {
	if len(points) < 3 {
		return points
	}

	_, lowestPoint := findLowestLeftmostPoint(points)

	sortedPoints := make([]point.Point, len(points))
	copy(sortedPoints, points)
	orderPointsByAngleAboutLowestPoint(lowestPoint, sortedPoints)

	hull := make([]point.Point, 0, len(sortedPoints))
	hull = append(hull, sortedPoints[0], sortedPoints[1])

	for i := 2; i < len(sortedPoints); i++ {
		for len(hull) > 1 {
			top := hull[len(hull)-1]
			nextToTop := hull[len(hull)-2]

			if point.Orientation(nextToTop, top, sortedPoints[i]) == point.Counterclockwise {
				break
			}
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, sortedPoints[i])
	}

	return hull
}

// findLowestLeftmostPoint returns the index and value of the point with the
// lowest y-coordinate, breaking ties by the lowest x-coordinate.
func findLowestLeftmostPoint(points []point.Point) (int, point.Point) {
	lowestIndex := 0
	lowestPoint := points[0]

	for i := 1; i < len(points); i++ {
		current := points[i]
		if current.Y() < lowestPoint.Y() || (current.Y() == lowestPoint.Y() && current.X() < lowestPoint.X()) {
			lowestIndex = i
			lowestPoint = current
		}
	}
	return lowestIndex, lowestPoint
}

// orderPointsByAngleAboutLowestPoint sorts points by their angular order
// around lowestPoint, counterclockwise, breaking ties among collinear points
// by increasing distance from lowestPoint.
func orderPointsByAngleAboutLowestPoint(lowestPoint point.Point, points []point.Point) {
	slices.SortStableFunc(points, func(a, b point.Point) int {
		switch {
		case a.Eq(lowestPoint):
			return -1
		case b.Eq(lowestPoint):
			return 1
		}

		relativeA := a.Sub(lowestPoint)
		relativeB := b.Sub(lowestPoint)
		crossProduct := relativeA.CrossProduct(relativeB)

		switch {
		case crossProduct > 0:
			return -1
		case crossProduct < 0:
			return 1
		}

		distA := lowestPoint.DistanceSquaredToPoint(a)
		distB := lowestPoint.DistanceSquaredToPoint(b)
		switch {
		case distA < distB:
			return -1
		case distA > distB:
			return 1
		default:
			return 0
		}
	})
}
