package voronoi

import (
	"math"

	"github.com/tomkrieg108/geomkernel/point"
	"github.com/tomkrieg108/geomkernel/predicate"
	"github.com/tomkrieg108/geomkernel/rbtree"
)

// beachElement is either an arc (one parabola, focused on a site) or a
// breakpoint (the point where two consecutive arcs meet), stored as a
// single type so both can live in the same ordered tree. Each carries
// explicit pointers to its neighbouring elements rather than relying on
// tree predecessor/successor walks, since circle-event handling needs an
// arc's flanking arcs far more often than the tree itself changes shape.
type beachElement struct {
	id    uint64
	isArc bool

	// Arc fields.
	site       int
	focus      point.Point
	circleEvt  *circleEvent
	leftBP     *beachElement // nil if this is the leftmost arc
	rightBP    *beachElement // nil if this is the rightmost arc

	// Breakpoint fields. left/right are the foci of the two arcs this
	// breakpoint separates (left arc's focus, right arc's focus).
	left, right point.Point
	edge        *edgeRecord
	edgeEnd     int // which end of edge this breakpoint resolves when it vanishes
	leftArc     *beachElement
	rightArc    *beachElement
}

func newArc(id uint64, site int, focus point.Point) *beachElement {
	return &beachElement{id: id, isArc: true, site: site, focus: focus}
}

func newBreakpoint(id uint64, left, right point.Point, edge *edgeRecord, edgeEnd int) *beachElement {
	return &beachElement{id: id, isArc: false, left: left, right: right, edge: edge, edgeEnd: edgeEnd}
}

// breakpointX returns the breakpoint's current x position: the x at which
// the parabolas of left and right (both with directrix sweepY) cross.
//
// left and right both lying on the current sweep line is handled directly
// per the degenerate-parabola case rather than through predicate.Parabola,
// since a parabola with its focus on the directrix is a vertical ray, not a
// curve with a well-defined A/B/C. Otherwise the crossing is found by
// subtracting the two parabolas' coefficients and solving the resulting
// quadratic (or linear, when left.Y() == right.Y()) equation; of its two
// roots, the one this specific breakpoint traces is picked by left.Y() <
// right.Y(): this deliberately replaces the original algorithm's iterative
// epsilon-probing root selection, which its own author's comments flagged
// as unreliable.
func breakpointX(left, right point.Point, sweepY float64) float64 {
	const eps = 1e-9

	lDeg := math.Abs(left.Y()-sweepY) < eps
	rDeg := math.Abs(right.Y()-sweepY) < eps
	switch {
	case lDeg && rDeg:
		return (left.X() + right.X()) / 2
	case lDeg:
		return left.X()
	case rDeg:
		return right.X()
	}

	if math.Abs(left.Y()-right.Y()) < eps {
		return (left.X() + right.X()) / 2
	}

	pl := predicate.NewParabola(left, sweepY)
	pr := predicate.NewParabola(right, sweepY)
	a := pl.A - pr.A
	b := pl.B - pr.B
	c := pl.C - pr.C

	if math.Abs(a) < eps {
		return -c / b
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		disc = 0
	}
	sq := math.Sqrt(disc)
	r1 := (-b + sq) / (2 * a)
	r2 := (-b - sq) / (2 * a)
	if left.Y() < right.Y() {
		return math.Max(r1, r2)
	}
	return math.Min(r1, r2)
}

// breakpointPoint returns the breakpoint's actual position in the plane at
// the given directrix: its x from breakpointX, and its height from
// whichever of left/right's parabola is non-degenerate evaluated at that
// x (both parabolas agree there, by construction). This is distinct from
// (breakpointX(...), sweepY): the breakpoint's true height is generally not
// the directrix itself, only the x-coordinate at which the two arcs'
// height functions (both using today's directrix) happen to cross.
func breakpointPoint(left, right point.Point, sweepY float64) point.Point {
	const eps = 1e-9
	x := breakpointX(left, right, sweepY)
	switch {
	case math.Abs(left.Y()-sweepY) >= eps:
		return point.New(x, predicate.NewParabola(left, sweepY).Y(x))
	case math.Abs(right.Y()-sweepY) >= eps:
		return point.New(x, predicate.NewParabola(right, sweepY).Y(x))
	default:
		return point.New(x, sweepY)
	}
}

// elementX is a beachElement's representative x position at sweepY: an
// arc's right-breakpoint x (or +Inf if it has none), or a breakpoint's own
// x. Comparing two elements by elementX implements all three cases of the
// beach-line ordering in one place: arc-vs-arc reduces to comparing their
// right-breakpoint x values, arc-vs-breakpoint to comparing the arc's
// right-breakpoint x against the breakpoint's x, and breakpoint-vs-
// breakpoint to comparing their x values directly.
func elementX(e *beachElement, sweepY float64) float64 {
	if e.isArc {
		if e.rightBP == nil {
			return math.Inf(1)
		}
		return breakpointX(e.rightBP.left, e.rightBP.right, sweepY)
	}
	return breakpointX(e.left, e.right, sweepY)
}

// beachline is the ordered tree of arcs and breakpoints, kept ordered by a
// comparator that closes over the current sweep position - the rbtree
// package's stateful-comparator pattern, here driven by the Fortune sweep
// rather than a fixed geometric order.
type beachline struct {
	tree   *rbtree.Tree[*beachElement, struct{}]
	sweepY float64
	nextID uint64
}

func newBeachline() *beachline {
	bl := &beachline{}
	bl.tree = rbtree.New[*beachElement, struct{}](func(a, b *beachElement) int {
		ax, bx := elementX(a, bl.sweepY), elementX(b, bl.sweepY)
		switch {
		case ax < bx:
			return -1
		case ax > bx:
			return 1
		case a.id < b.id:
			return -1
		case a.id > b.id:
			return 1
		default:
			return 0
		}
	})
	return bl
}

func (bl *beachline) newID() uint64 {
	id := bl.nextID
	bl.nextID++
	return id
}

func (bl *beachline) setSweepY(y float64) { bl.sweepY = y }

func (bl *beachline) empty() bool { return bl.tree.Empty() }

func (bl *beachline) insert(e *beachElement) { bl.tree.Insert(e, struct{}{}) }

func (bl *beachline) remove(e *beachElement) { bl.tree.Remove(e) }

// findArcAbove descends from the root, at each arc testing whether x lies
// within the arc's current left/right breakpoint bounds (an absent bound
// acts as +-Inf), and at each breakpoint comparing x against its current
// position - mirroring the original BeachTree::FindArcNodeAbove.
func (bl *beachline) findArcAbove(x float64) *beachElement {
	h := bl.tree.Root()
	for h.Valid() {
		e := h.Key()
		if e.isArc {
			lo := math.Inf(-1)
			if e.leftBP != nil {
				lo = breakpointX(e.leftBP.left, e.leftBP.right, bl.sweepY)
			}
			hi := math.Inf(1)
			if e.rightBP != nil {
				hi = breakpointX(e.rightBP.left, e.rightBP.right, bl.sweepY)
			}
			switch {
			case x < lo:
				h = bl.tree.LeftChild(h)
			case x >= hi:
				h = bl.tree.RightChild(h)
			default:
				return e
			}
			continue
		}
		if x < breakpointX(e.left, e.right, bl.sweepY) {
			h = bl.tree.LeftChild(h)
		} else {
			h = bl.tree.RightChild(h)
		}
	}
	return nil
}

// inOrder returns every beach element left to right at the current sweep
// position.
func (bl *beachline) inOrder() []*beachElement {
	keys, _ := bl.tree.InOrder()
	return keys
}
