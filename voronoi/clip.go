package voronoi

import (
	"log"
	"math"

	"github.com/tomkrieg108/geomkernel/linesegment"
	"github.com/tomkrieg108/geomkernel/point"
	"github.com/tomkrieg108/geomkernel/rectangle"
)

// rayLength picks a box-crossing ray length that safely clears bounds and
// the sites themselves, growing with both - per §4.6.4's "margin that grows
// with point spread".
func rayLength(bounds rectangle.Rectangle, sites []point.Point) float64 {
	span := bounds.Width() + bounds.Height()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range sites {
		minX, maxX = math.Min(minX, s.X()), math.Max(maxX, s.X())
		minY, maxY = math.Min(minY, s.Y()), math.Max(maxY, s.Y())
	}
	siteSpan := (maxX - minX) + (maxY - minY)
	return 4*(span+siteSpan) + 10
}

// clipBreakpoint extends a still-dangling breakpoint's edge to the
// bounding box and resolves that end there. A breakpoint's x as a function
// of sweep y traces its full bisector line, so sampling breakpointX at two
// widely separated y values below everything in the diagram gives both a
// point on that line and, by their difference, the direction the
// breakpoint is travelling in as the sweep continues - no separate
// bisector construction is needed.
func (b *builder) clipBreakpoint(bp *beachElement, bounds rectangle.Rectangle, length float64) {
	probeY1 := b.beach.sweepY - length
	probeY2 := probeY1 - length
	p1 := breakpointPoint(bp.left, bp.right, probeY1)
	p2 := breakpointPoint(bp.left, bp.right, probeY2)

	dir := p2.Sub(p1)
	norm := math.Hypot(dir.X(), dir.Y())
	if norm < 1e-9 {
		log.Printf("voronoi: degenerate breakpoint direction between sites %d and %d, dropping edge", bp.edge.left, bp.edge.right)
		return
	}
	unit := point.New(dir.X()/norm, dir.Y()/norm)

	origin := p1
	if fixed, ok := bp.edge.endpoint(bp.edgeEnd); ok {
		origin = fixed
	}
	far := origin.Translate(unit.Scale(point.Origin(), length))

	hit, ok := intersectBox(origin, far, bounds)
	if !ok {
		log.Printf("voronoi: no bounding-box intersection for edge between sites %d and %d", bp.edge.left, bp.edge.right)
		return
	}
	bp.edge.resolve(bp.edgeEnd, hit)
}

// intersectBox returns the point where the ray from origin to far first
// crosses one of bounds' four edges, nearest to origin.
func intersectBox(origin, far point.Point, bounds rectangle.Rectangle) (point.Point, bool) {
	ray := linesegment.NewFromPoints(origin, far)
	best := point.Point{}
	bestDist := math.Inf(1)
	found := false

	bounds.EdgesIter(func(edge linesegment.LineSegment) bool {
		pts, ok := ray.IntersectionPoints(edge)
		if !ok {
			return true
		}
		for _, p := range pts {
			d := origin.DistanceSquaredToPoint(p)
			if d < bestDist {
				bestDist = d
				best = p
				found = true
			}
		}
		return true
	})

	return best, found
}

// clipDiagram resolves every breakpoint still in the beach line once the
// event queue has drained: each traces a semi-infinite edge that must be
// extended out to bounds.
func (b *builder) clipDiagram(bounds rectangle.Rectangle) {
	length := rayLength(bounds, b.sites)
	for _, bp := range b.remainingBreakpoints() {
		b.clipBreakpoint(bp, bounds, length)
	}
}
