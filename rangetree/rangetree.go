// Package rangetree implements orthogonal range-search structures over
// point.Point values: a 1D range tree over a single balanced tree, a 2D
// range tree (tree-of-trees), and a kd-tree with alternating-axis splits.
// Every structure ships an O(n) brute-force oracle for cross-checking.
package rangetree

import "github.com/tomkrieg108/geomkernel/point"

// Range1D is a closed interval [Lo, Hi] over a single coordinate.
type Range1D struct {
	Lo, Hi float64
}

// Contains reports whether v lies within the closed interval.
func (r Range1D) Contains(v float64) bool {
	return v >= r.Lo && v <= r.Hi
}

// Range2D is an axis-aligned closed query rectangle [XLo,XHi] x [YLo,YHi].
type Range2D struct {
	XLo, XHi, YLo, YHi float64
}

// Contains reports whether p lies within the closed rectangle.
func (r Range2D) Contains(p point.Point) bool {
	return p.X() >= r.XLo && p.X() <= r.XHi && p.Y() >= r.YLo && p.Y() <= r.YHi
}

// intersects reports whether the two rectangles overlap (share any area or
// boundary).
func (r Range2D) intersects(o Range2D) bool {
	if r.XHi < o.XLo || o.XHi < r.XLo {
		return false
	}
	if r.YHi < o.YLo || o.YHi < r.YLo {
		return false
	}
	return true
}

// containsRange reports whether o is fully contained within r.
func (r Range2D) containsRange(o Range2D) bool {
	return o.XLo >= r.XLo && o.XHi <= r.XHi && o.YLo >= r.YLo && o.YHi <= r.YHi
}

// BruteForceRangeQuery1D is the O(n) oracle for RangeTree1D.
func BruteForceRangeQuery1D(values []float64, query Range1D) []float64 {
	var out []float64
	for _, v := range values {
		if query.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// BruteForceRangeQuery is the O(n) oracle every structure in this package is
// validated against: it reports exactly the points of the input set lying
// within query, with no regard for any tree's internal organization.
func BruteForceRangeQuery(points []point.Point, query Range2D) []point.Point {
	var out []point.Point
	for _, p := range points {
		if query.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}
