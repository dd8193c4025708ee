package linesegment

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/google/btree"

	"github.com/tomkrieg108/geomkernel/numeric"
	"github.com/tomkrieg108/geomkernel/options"
	"github.com/tomkrieg108/geomkernel/point"
)

// IntersectionType represents the type of intersection between two LineSegment.
// It is used to classify intersection results into:
//   - IntersectionNone: There is no intersection
//   - IntersectionPoint: There is an intersection at a given point
//   - IntersectionOverlappingSegment: The line segments are collinear and overlap
type IntersectionType uint8

// Valid values for IntersectionType
const (
	// IntersectionNone indicates that there is no intersection between the given line segments.
	IntersectionNone IntersectionType = iota

	// IntersectionPoint indicates that the intersection occurs at a single point.
	IntersectionPoint

	// IntersectionOverlappingSegment indicates that the intersection results in a continuous overlapping segment.
	IntersectionOverlappingSegment
)

// String returns a human-readable representation of the IntersectionType.
func (t IntersectionType) String() string {
	switch t {
	case IntersectionNone:
		return "IntersectionNone"
	case IntersectionPoint:
		return "IntersectionPoint"
	case IntersectionOverlappingSegment:
		return "IntersectionOverlappingSegment"
	default:
		panic(fmt.Errorf("unsupported line segment intersection type"))
	}
}

// IntersectionResult represents the outcome of an intersection between two line segments.
type IntersectionResult struct {
	// IntersectionType specifies the type of intersection.
	IntersectionType IntersectionType

	// IntersectionPoint stores the point of intersection if IntersectionType == IntersectionPoint.
	IntersectionPoint point.Point

	// OverlappingSegment stores the overlapping segment if IntersectionType == IntersectionOverlappingSegment.
	OverlappingSegment LineSegment

	// InputLineSegments stores the original line segments that were tested for intersection.
	InputLineSegments []LineSegment
}

// Eq reports whether two IntersectionResult values describe the same intersection.
func (ir IntersectionResult) Eq(other IntersectionResult) bool {
	if ir.IntersectionType != other.IntersectionType {
		return false
	}

	switch ir.IntersectionType {
	case IntersectionNone:
		return true
	case IntersectionPoint:
		if !ir.IntersectionPoint.Eq(other.IntersectionPoint) {
			return false
		}
	case IntersectionOverlappingSegment:
		if !ir.OverlappingSegment.Eq(other.OverlappingSegment) {
			return false
		}
	}

	if len(ir.InputLineSegments) != len(other.InputLineSegments) {
		return false
	}
	for _, segA := range ir.InputLineSegments {
		found := false
		for _, segB := range other.InputLineSegments {
			if segA.Eq(segB) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// String returns a human-readable string representation of the intersection result.
func (ir IntersectionResult) String() string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("Intersection type: %s", ir.IntersectionType.String()))
	switch ir.IntersectionType {
	case IntersectionNone:
		builder.WriteString(", from segments: ")
	case IntersectionPoint:
		builder.WriteString(fmt.Sprintf(": %s from segments: ", ir.IntersectionPoint.String()))
	case IntersectionOverlappingSegment:
		builder.WriteString(fmt.Sprintf(": %s from segments: ", ir.OverlappingSegment.String()))
	}
	first := true
	for _, seg := range ir.InputLineSegments {
		if first {
			builder.WriteString(seg.String())
			first = false
			continue
		}
		builder.WriteString(fmt.Sprintf(", %s", seg.String()))
	}
	return builder.String()
}

// intersectionResults is a private utility type that manages intersection results,
// used within FindIntersectionsSlow and the Bentley-Ottmann sweep to accumulate,
// deduplicate, and merge results before returning them to the caller.
type intersectionResults struct {
	results *btree.BTreeG[IntersectionResult]
}

func newIntersectionResults(opts ...options.GeometryOptionsFunc) *intersectionResults {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	return &intersectionResults{
		results: btree.NewG[IntersectionResult](2, intersectionResultLessFunc(geoOpts.Epsilon)),
	}
}

// Add inserts an intersection result, merging its input segments into any
// existing result at the same location rather than storing a duplicate.
func (r *intersectionResults) Add(result IntersectionResult) {
	if result.IntersectionType == IntersectionNone {
		return
	}

	existing, found := r.results.Get(result)

	if found {
		for _, seg := range existing.InputLineSegments {
			if !slices.ContainsFunc(result.InputLineSegments, func(s LineSegment) bool { return s.Eq(seg) }) {
				result.InputLineSegments = append(result.InputLineSegments, seg)
				log.Println("updating intersection result:", result)
			}
		}
	} else {
		log.Println("inserting intersection result:", result)
	}

	r.results.ReplaceOrInsert(result)
}

// Results returns the accumulated intersection results in ascending order.
func (r *intersectionResults) Results() []IntersectionResult {
	final := make([]IntersectionResult, 0, r.results.Len())
	r.results.Ascend(func(item IntersectionResult) bool {
		final = append(final, item)
		return true
	})
	return final
}

func intersectionResultLessFunc(epsilon float64) func(a, b IntersectionResult) bool {
	return func(a, b IntersectionResult) bool {
		var la, lb LineSegment

		switch a.IntersectionType {
		case IntersectionNone:
			panic(fmt.Errorf("cannot compare against none"))
		case IntersectionPoint:
			la = NewFromPoints(a.IntersectionPoint, a.IntersectionPoint)
		case IntersectionOverlappingSegment:
			la = a.OverlappingSegment
		}
		switch b.IntersectionType {
		case IntersectionNone:
			panic(fmt.Errorf("cannot compare against none"))
		case IntersectionPoint:
			lb = NewFromPoints(b.IntersectionPoint, b.IntersectionPoint)
		case IntersectionOverlappingSegment:
			lb = b.OverlappingSegment
		}

		laLower, lbLower := la.Lower(), lb.Lower()

		if numeric.FloatLessThan(laLower.Y(), lbLower.Y(), epsilon) {
			return true
		} else if numeric.FloatGreaterThan(laLower.Y(), lbLower.Y(), epsilon) {
			return false
		}
		if numeric.FloatLessThan(laLower.X(), lbLower.X(), epsilon) {
			return true
		} else if numeric.FloatGreaterThan(laLower.X(), lbLower.X(), epsilon) {
			return false
		}

		laUpper, lbUpper := la.Upper(), lb.Upper()

		if numeric.FloatLessThan(laUpper.Y(), lbUpper.Y(), epsilon) {
			return true
		} else if numeric.FloatGreaterThan(laUpper.Y(), lbUpper.Y(), epsilon) {
			return false
		}
		if numeric.FloatLessThan(laUpper.X(), lbUpper.X(), epsilon) {
			return true
		} else if numeric.FloatGreaterThan(laUpper.X(), lbUpper.X(), epsilon) {
			return false
		}

		return a.IntersectionType < b.IntersectionType
	}
}

// IntersectionResultsEq reports whether two slices of IntersectionResult describe
// the same set of intersections, ignoring order.
func IntersectionResultsEq(a, b []IntersectionResult) bool {
	if len(a) != len(b) {
		return false
	}
	for _, resultA := range a {
		found := false
		for _, resultB := range b {
			if resultA.Eq(resultB) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
