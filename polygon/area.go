package polygon

import (
	"github.com/tomkrieg108/geomkernel/point"
)

// Area2XSigned calculates twice the signed area of a simple polygon defined
// by a series of points, using the shoelace formula. The result is positive
// for counterclockwise-ordered points, negative for clockwise, and zero for
// degenerate input (fewer than three points, or collinear points).
func Area2XSigned(points []point.Point) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}

	var area float64
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		area += (p1.X() * p2.Y()) - (p2.X() * p1.Y())
	}

	return area
}
