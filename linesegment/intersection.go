package linesegment

import (
	"math"

	"github.com/tomkrieg108/geomkernel/numeric"
	"github.com/tomkrieg108/geomkernel/options"
	"github.com/tomkrieg108/geomkernel/point"
	"github.com/tomkrieg108/geomkernel/predicate"
)

// FindIntersectionsSlow performs a naive O(n^2) check to find all intersections
// between the given line segments, considering the provided geometry options.
//
// This is a brute-force reference implementation, used as the oracle that
// FindIntersectionsFast's sweep-line results are checked against.
func FindIntersectionsSlow(segments []LineSegment, opts ...options.GeometryOptionsFunc) []IntersectionResult {
	R := newIntersectionResults(opts...)

	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			R.Add(segments[i].Intersection(segments[j], opts...))
		}
	}

	return R.Results()
}

// Intersection calculates the intersection between the calling LineSegment and
// other, classifying the result as no intersection, a single point, or a
// collinear overlapping segment.
func (l LineSegment) Intersection(other LineSegment, opts ...options.GeometryOptionsFunc) IntersectionResult {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)

	a, b := l.upper, l.lower
	c, d := other.upper, other.lower

	if !predicate.IntersectionExists(a, b, c, d) {
		return IntersectionResult{
			IntersectionType:  IntersectionNone,
			InputLineSegments: []LineSegment{l, other},
		}
	}

	if predicate.Collinear(a, b, c) && predicate.Collinear(a, b, d) {
		dir := b.Sub(a)
		denom := dir.DotProduct(dir)
		if denom == 0 {
			return IntersectionResult{
				IntersectionType:  IntersectionNone,
				InputLineSegments: []LineSegment{l, other},
			}
		}

		tc := c.Sub(a).DotProduct(dir) / denom
		td := d.Sub(a).DotProduct(dir) / denom
		if tc > td {
			tc, td = td, tc
		}

		tStart := math.Max(0, tc)
		tEnd := math.Min(1, td)
		if tStart > tEnd {
			return IntersectionResult{
				IntersectionType:  IntersectionNone,
				InputLineSegments: []LineSegment{l, other},
			}
		}

		overlapStart := point.New(
			numeric.SnapToEpsilon(a.X()+tStart*dir.X(), geoOpts.Epsilon),
			numeric.SnapToEpsilon(a.Y()+tStart*dir.Y(), geoOpts.Epsilon),
		)
		overlapEnd := point.New(
			numeric.SnapToEpsilon(a.X()+tEnd*dir.X(), geoOpts.Epsilon),
			numeric.SnapToEpsilon(a.Y()+tEnd*dir.Y(), geoOpts.Epsilon),
		)

		return IntersectionResult{
			IntersectionType:   IntersectionOverlappingSegment,
			OverlappingSegment: NewFromPoints(overlapStart, overlapEnd),
			InputLineSegments:  []LineSegment{l, other},
		}
	}

	p, ok := predicate.ComputeIntersection(a, b, c, d)
	if !ok {
		return IntersectionResult{
			IntersectionType:  IntersectionNone,
			InputLineSegments: []LineSegment{l, other},
		}
	}

	snapped := point.New(
		numeric.SnapToEpsilon(p.X(), geoOpts.Epsilon),
		numeric.SnapToEpsilon(p.Y(), geoOpts.Epsilon),
	)

	return IntersectionResult{
		IntersectionType:   IntersectionPoint,
		IntersectionPoint:  snapped,
		InputLineSegments:  []LineSegment{l, other},
	}
}

