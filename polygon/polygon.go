// Package polygon provides well-formedness checking, area, and convex hull
// operations on simple polygons, and builds a [dcel.DCEL] over a polygon's
// boundary for use by higher-level algorithms (monotone partitioning,
// triangulation).
package polygon

import (
	"fmt"

	"github.com/tomkrieg108/geomkernel/dcel"
	"github.com/tomkrieg108/geomkernel/linesegment"
	"github.com/tomkrieg108/geomkernel/point"
)

// Polygon is a simple (non-self-intersecting) polygon, represented internally
// as a [dcel.DCEL] over its boundary.
type Polygon struct {
	mesh *dcel.DCEL
}

// New builds a Polygon from a well-formed simple polygon's vertices, assumed
// to be ordered counterclockwise. It returns an error if the vertices do not
// form a well-formed polygon; see IsWellFormed.
func New(points []point.Point) (*Polygon, error) {
	ok, err := IsWellFormed(points)
	if !ok {
		return nil, err
	}
	return &Polygon{mesh: dcel.New(points)}, nil
}

// Mesh returns the polygon's underlying DCEL.
func (p *Polygon) Mesh() *dcel.DCEL {
	return p.mesh
}

// IsWellFormed checks whether a given set of points defines a well-formed
// polygon. A polygon is considered well-formed if:
//
//  1. It has at least 3 points.
//  2. It has a non-zero area.
//  3. It does not contain any self-intersecting edges, other than at shared
//     vertices between consecutive edges.
func IsWellFormed(points []point.Point) (bool, error) {
	if len(points) < 3 {
		return false, fmt.Errorf("polygon must have at least 3 points")
	}

	if Area2XSigned(points) == 0 {
		return false, fmt.Errorf("polygon has zero area")
	}

	segments := ToLineSegments(points)
	intersections := linesegment.FindIntersectionsSlow(segments)

	for _, intersection := range intersections {
		if intersection.IntersectionType == linesegment.IntersectionPoint {
			pointOnSegment := func(p point.Point, seg linesegment.LineSegment) bool {
				return p.Eq(seg.Upper()) || p.Eq(seg.Lower())
			}
			if pointOnSegment(intersection.IntersectionPoint, intersection.InputLineSegments[0]) &&
				pointOnSegment(intersection.IntersectionPoint, intersection.InputLineSegments[1]) {
				continue
			}
		}
		return false, fmt.Errorf("polygon has self-intersecting edges")
	}

	return true, nil
}

// ToLineSegments converts a polygon's vertices into the [linesegment.LineSegment]
// edges of its boundary, closing the last point back to the first.
// Degenerate (zero-length) edges from repeated points are skipped.
func ToLineSegments(points []point.Point) []linesegment.LineSegment {
	var segments []linesegment.LineSegment
	n := len(points)
	if n < 2 {
		return segments
	}

	for i := 0; i < n; i++ {
		start := points[i]
		end := points[(i+1)%n]
		if start.Eq(end) {
			continue
		}
		segments = append(segments, linesegment.NewFromPoints(start, end))
	}

	return segments
}
