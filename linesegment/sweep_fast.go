package linesegment

import (
	"log"
	"math"
	"slices"

	"github.com/google/btree"

	"github.com/tomkrieg108/geomkernel/numeric"
	"github.com/tomkrieg108/geomkernel/options"
	"github.com/tomkrieg108/geomkernel/point"
	"github.com/tomkrieg108/geomkernel/rbtree"
)

// FindIntersectionsFast finds every pairwise intersection among segments
// using the Bentley-Ottmann sweep, running in O((n+k) log n) where k is the
// number of reported intersections, instead of FindIntersectionsSlow's
// O(n^2). Behaviorally it returns the same results as FindIntersectionsSlow.
func FindIntersectionsFast(segments []LineSegment, opts ...options.GeometryOptionsFunc) []IntersectionResult {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)

	Q := newSweepEventQueue(segments)
	S := newSweepStatus(geoOpts.Epsilon)
	R := newIntersectionResults(opts...)

	for !Q.IsEmpty() {
		p, upper := Q.Pop()
		handleSweepEventPoint(p, upper, Q, S, R, geoOpts.Epsilon)
	}

	return R.Results()
}

// sweepEventQueue orders event points by the book's event order: p before q
// iff p.y > q.y, or p.y == q.y and p.x < q.x. Every event point carries the
// segments for which it is the upper endpoint.
type sweepEventQueue struct {
	tree *btree.BTreeG[sweepEvent]
}

type sweepEvent struct {
	point    point.Point
	segments []LineSegment
}

func sweepEventLess(a, b sweepEvent) bool {
	return a.point.Compare(b.point) < 0
}

func newSweepEventQueue(segments []LineSegment) *sweepEventQueue {
	Q := &sweepEventQueue{tree: btree.NewG[sweepEvent](2, sweepEventLess)}
	for _, seg := range segments {
		upper, lower := seg.Upper(), seg.Lower()
		if upper.Eq(lower) {
			continue
		}
		Q.insertUpperPoint(upper, seg)
		Q.ensurePoint(lower)
	}
	return Q
}

func (q *sweepEventQueue) insertUpperPoint(p point.Point, seg LineSegment) {
	existing, found := q.tree.Get(sweepEvent{point: p})
	if found {
		existing.segments = append(existing.segments, seg)
		q.tree.ReplaceOrInsert(existing)
		return
	}
	q.tree.ReplaceOrInsert(sweepEvent{point: p, segments: []LineSegment{seg}})
}

func (q *sweepEventQueue) ensurePoint(p point.Point) {
	if _, found := q.tree.Get(sweepEvent{point: p}); !found {
		q.tree.ReplaceOrInsert(sweepEvent{point: p})
	}
}

func (q *sweepEventQueue) has(p point.Point) bool {
	_, found := q.tree.Get(sweepEvent{point: p})
	return found
}

func (q *sweepEventQueue) IsEmpty() bool {
	return q.tree.Len() == 0
}

// Pop removes and returns the next event point, along with U(p): the
// segments whose upper endpoint is p.
func (q *sweepEventQueue) Pop() (point.Point, []LineSegment) {
	min, _ := q.tree.DeleteMin()
	return min.point, min.segments
}

// sweepStatus is the status structure S: the segments currently crossing the
// sweep line, ordered left to right by where they cross it. It is backed by
// an rbtree.Tree whose comparator is stateful, closing over the current
// sweep point, per the rbtree package's documented pattern.
type sweepStatus struct {
	tree    *rbtree.Tree[LineSegment, struct{}]
	current *point.Point
	epsilon float64
}

func newSweepStatus(epsilon float64) *sweepStatus {
	s := &sweepStatus{epsilon: epsilon}
	s.tree = rbtree.New[LineSegment, struct{}](func(a, b LineSegment) int {
		return compareSegmentsAtSweepLine(a, b, *s.current, s.epsilon)
	})
	return s
}

// compareSegmentsAtSweepLine orders two segments by their x-intercept with
// the horizontal line y=p.Y(), breaking ties by slope so that segments
// passing through p are ordered as they would be just below p: shallower
// (more negative) slopes first, horizontal segments last.
func compareSegmentsAtSweepLine(a, b LineSegment, p point.Point, epsilon float64) int {
	if a.Eq(b) {
		return 0
	}

	ax, bx := segmentXAtSweepY(a, p, epsilon), segmentXAtSweepY(b, p, epsilon)
	if !numeric.FloatEquals(ax, bx, epsilon) {
		if ax < bx {
			return -1
		}
		return 1
	}

	aSlope, bSlope := a.Slope(), b.Slope()
	aHorizontal, bHorizontal := aSlope == 0, bSlope == 0
	if aHorizontal != bHorizontal {
		if aHorizontal {
			return 1
		}
		return -1
	}
	if aSlope != bSlope {
		if aSlope < bSlope {
			return -1
		}
		return 1
	}

	// collinear ties: order by upper point so Insert/Remove stay consistent.
	return a.Upper().Compare(b.Upper())
}

// segmentXAtSweepY returns the segment's x-coordinate at y=p.Y(), treating a
// horizontal segment as sitting at p.X() (it has no single crossing x, and
// the book orders horizontal segments purely by the containsEvent/slope
// rules above once they tie on this sentinel).
func segmentXAtSweepY(seg LineSegment, p point.Point, epsilon float64) float64 {
	if seg.Slope() == 0 {
		return p.X()
	}
	x := seg.XAtY(p.Y())
	if math.IsNaN(x) {
		return seg.Upper().X()
	}
	return x
}

func (s *sweepStatus) moveTo(p point.Point) {
	s.current = &p
}

func (s *sweepStatus) Insert(seg LineSegment) {
	s.tree.Insert(seg, struct{}{})
}

func (s *sweepStatus) Remove(seg LineSegment) {
	s.tree.Remove(seg)
}

func (s *sweepStatus) Contains(seg LineSegment) bool {
	_, found := s.tree.Find(seg)
	return found
}

// segmentsContaining returns every segment currently in the status
// structure that contains p, ordered left to right.
func (s *sweepStatus) segmentsContaining(p point.Point) []LineSegment {
	keys := s.tree.Keys()
	var found []LineSegment
	for _, seg := range keys {
		if seg.ContainsPoint(p) {
			found = append(found, seg)
		}
	}
	return found
}

// neighbors returns the segments immediately left and right of seg in the
// status structure's current order, or nil if none exists on that side.
func (s *sweepStatus) neighbors(seg LineSegment) (left, right *LineSegment) {
	keys := s.tree.Keys()
	idx := slices.IndexFunc(keys, func(k LineSegment) bool { return k.Eq(seg) })
	if idx == -1 {
		return nil, nil
	}
	if idx > 0 {
		l := keys[idx-1]
		left = &l
	}
	if idx < len(keys)-1 {
		r := keys[idx+1]
		right = &r
	}
	return left, right
}

// handleSweepEventPoint implements the book's HandleEventPoint: it finds
// U(p), L(p), and C(p), reports an intersection at p if more than one
// segment is involved, updates the status structure for the new sweep-line
// position, and probes the newly adjacent segment pairs for future events.
func handleSweepEventPoint(
	p point.Point,
	upperOfP []LineSegment,
	Q *sweepEventQueue,
	S *sweepStatus,
	R *intersectionResults,
	epsilon float64,
) {
	S.moveTo(p)

	containing := S.segmentsContaining(p)

	var lowerOfP, centerOfP []LineSegment
	for _, seg := range containing {
		switch {
		case seg.Lower().Eq(p):
			lowerOfP = append(lowerOfP, seg)
		case !seg.Upper().Eq(p):
			centerOfP = append(centerOfP, seg)
		}
	}

	if len(upperOfP)+len(lowerOfP)+len(centerOfP) > 1 {
		all := append(append(append([]LineSegment{}, upperOfP...), lowerOfP...), centerOfP...)
		log.Printf("intersection found at %s among %d segments", p, len(all))
		for _, result := range FindIntersectionsSlow(all, options.WithEpsilon(epsilon)) {
			R.Add(result)
		}
	}

	for _, seg := range lowerOfP {
		S.Remove(seg)
	}
	for _, seg := range centerOfP {
		S.Remove(seg)
	}

	newlyActive := append(append([]LineSegment{}, upperOfP...), centerOfP...)
	for _, seg := range newlyActive {
		if !S.Contains(seg) {
			S.Insert(seg)
		}
	}

	if len(newlyActive) == 0 {
		left, right := S.findNeighborsOfPoint(p)
		if left != nil && right != nil {
			findNewSweepEvent(*left, *right, p, Q, R, epsilon)
		}
		return
	}

	leftmost, rightmost := leftmostAndRightmost(newlyActive, p, epsilon)
	if sLeft, _ := S.neighbors(leftmost); sLeft != nil {
		findNewSweepEvent(*sLeft, leftmost, p, Q, R, epsilon)
	}
	if _, sRight := S.neighbors(rightmost); sRight != nil {
		findNewSweepEvent(rightmost, *sRight, p, Q, R, epsilon)
	}
}

// findNeighborsOfPoint locates the segments immediately left and right of p
// among segments NOT containing p, by scanning the status structure's
// current order (the status structure carries no dedicated segments, only
// whichever are active at the moment).
func (s *sweepStatus) findNeighborsOfPoint(p point.Point) (left, right *LineSegment) {
	keys := s.tree.Keys()
	for i, seg := range keys {
		x := segmentXAtSweepY(seg, p, s.epsilon)
		if x >= p.X() {
			if i > 0 {
				l := keys[i-1]
				left = &l
			}
			r := seg
			right = &r
			return left, right
		}
	}
	if len(keys) > 0 {
		l := keys[len(keys)-1]
		left = &l
	}
	return left, nil
}

func leftmostAndRightmost(segments []LineSegment, p point.Point, epsilon float64) (leftmost, rightmost LineSegment) {
	sorted := make([]LineSegment, len(segments))
	copy(sorted, segments)
	slices.SortStableFunc(sorted, func(a, b LineSegment) int {
		return compareSegmentsAtSweepLine(a, b, p, epsilon)
	})
	return sorted[0], sorted[len(sorted)-1]
}

// findNewSweepEvent checks whether sl and sr intersect at or below the
// sweep line and, if so and the intersection is not already a pending
// event, inserts it into Q.
func findNewSweepEvent(sl, sr LineSegment, p point.Point, Q *sweepEventQueue, R *intersectionResults, epsilon float64) {
	result := sl.Intersection(sr, options.WithEpsilon(epsilon))

	if result.IntersectionType == IntersectionOverlappingSegment {
		R.Add(result)
	}

	if result.IntersectionType != IntersectionPoint {
		return
	}

	newPoint := result.IntersectionPoint
	if numeric.FloatGreaterThan(newPoint.Y(), p.Y(), epsilon) ||
		(numeric.FloatEquals(newPoint.Y(), p.Y(), epsilon) && numeric.FloatLessThanOrEqualTo(newPoint.X(), p.X(), epsilon)) {
		return
	}

	if !Q.has(newPoint) {
		Q.ensurePoint(newPoint)
	}
}
