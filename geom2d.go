// Package geom2d holds the two settings shared across every geomkernel
// subpackage: the global epsilon tolerance used by approximate
// floating-point comparisons (GetEpsilon, SetEpsilon), and debug-log
// initialization. The geometric types themselves - Point, LineSegment,
// Rectangle, DCEL, and the rest - live in their own subpackages
// (point, linesegment, rectangle, dcel, monotone, voronoi, rangetree);
// this package has no types of its own.
package geom2d

func init() {
	logDebugf("debug logging enabled")
}
