package voronoi

import (
	"github.com/google/btree"

	"github.com/tomkrieg108/geomkernel/point"
	"github.com/tomkrieg108/geomkernel/predicate"
)

// edgeRecord is one Voronoi edge in the making: the straight line bisecting
// left and right, with each of its two ends filled in independently as
// whichever circle event (or box clip) resolves it. A brand new edge has
// neither end set; it may still have neither by the time the sweep ends, if
// it is the sole edge of a two-site diagram.
type edgeRecord struct {
	left, right int
	a, b        point.Point
	hasA, hasB  bool
}

func (e *edgeRecord) resolve(end int, v point.Point) {
	if end == 0 {
		e.a, e.hasA = v, true
	} else {
		e.b, e.hasB = v, true
	}
}

func (e *edgeRecord) endpoint(end int) (point.Point, bool) {
	if end == 0 {
		return e.a, e.hasA
	}
	return e.b, e.hasB
}

// circleEvent records a candidate beach-line convergence: when popped, if
// invalid is set the event is a stale alarm and is discarded, per the
// lazy-deletion scheme the original CircleEvent::false_alarm field
// implements.
type circleEvent struct {
	point   point.Point
	center  point.Point
	arc     *beachElement
	invalid bool
}

type eventKind uint8

const (
	siteEventKind eventKind = iota
	circleEventKind
)

type event struct {
	kind   eventKind
	p      point.Point
	seq    uint64
	site   int
	circle *circleEvent
}

func eventLess(a, b event) bool {
	if c := a.p.Compare(b.p); c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

// builder runs Fortune's sweep over a fixed set of sites, producing the
// bisector edges of their Voronoi diagram.
type builder struct {
	sites  []point.Point
	beach  *beachline
	events *btree.BTreeG[event]
	seq    uint64
	edges  []*edgeRecord

	// vertices collects every circle event's circumcenter as it resolves,
	// one per beach-line convergence - the diagram's Voronoi vertices.
	vertices []point.Point
}

func newBuilder(sites []point.Point) *builder {
	b := &builder{
		sites:  sites,
		beach:  newBeachline(),
		events: btree.NewG[event](2, eventLess),
	}
	for i, s := range sites {
		b.pushEvent(event{kind: siteEventKind, p: s, site: i})
	}
	return b
}

func (b *builder) nextSeq() uint64 {
	seq := b.seq
	b.seq++
	return seq
}

func (b *builder) pushEvent(e event) {
	e.seq = b.nextSeq()
	b.events.ReplaceOrInsert(e)
}

func (b *builder) run() {
	for b.events.Len() > 0 {
		e, _ := b.events.DeleteMin()
		switch e.kind {
		case siteEventKind:
			b.handleSiteEvent(e.site)
		case circleEventKind:
			if !e.circle.invalid {
				b.handleCircleEvent(e.circle)
			}
		}
	}
}

func (b *builder) invalidateCircleEvent(arc *beachElement) {
	if arc.circleEvt != nil {
		arc.circleEvt.invalid = true
		arc.circleEvt = nil
	}
}

func (b *builder) handleSiteEvent(site int) {
	p := b.sites[site]
	b.beach.setSweepY(p.Y())

	if b.beach.empty() {
		b.beach.insert(newArc(b.beach.newID(), site, p))
		return
	}

	above := b.beach.findArcAbove(p.X())
	b.invalidateCircleEvent(above)

	edge := &edgeRecord{left: above.site, right: site}
	b.edges = append(b.edges, edge)

	leftCopy := newArc(b.beach.newID(), above.site, above.focus)
	rightCopy := newArc(b.beach.newID(), above.site, above.focus)
	middle := newArc(b.beach.newID(), site, p)

	bpL := newBreakpoint(b.beach.newID(), above.focus, p, edge, 0)
	bpR := newBreakpoint(b.beach.newID(), p, above.focus, edge, 1)

	leftCopy.leftBP = above.leftBP
	leftCopy.rightBP = bpL
	bpL.leftArc = leftCopy
	bpL.rightArc = middle
	middle.leftBP = bpL
	middle.rightBP = bpR
	bpR.leftArc = middle
	bpR.rightArc = rightCopy
	rightCopy.leftBP = bpR
	rightCopy.rightBP = above.rightBP

	if above.leftBP != nil {
		above.leftBP.rightArc = leftCopy
	}
	if above.rightBP != nil {
		above.rightBP.leftArc = rightCopy
	}

	b.beach.remove(above)
	b.beach.insert(leftCopy)
	b.beach.insert(bpL)
	b.beach.insert(middle)
	b.beach.insert(bpR)
	b.beach.insert(rightCopy)

	b.tryCircleEvent(leftCopy)
	b.tryCircleEvent(rightCopy)
}

func (b *builder) handleCircleEvent(ce *circleEvent) {
	middle := ce.arc
	bpL, bpR := middle.leftBP, middle.rightBP
	prevArc, nextArc := bpL.leftArc, bpR.rightArc

	b.invalidateCircleEvent(prevArc)
	b.invalidateCircleEvent(nextArc)

	b.beach.setSweepY(ce.point.Y())

	bpL.edge.resolve(bpL.edgeEnd, ce.center)
	bpR.edge.resolve(bpR.edgeEnd, ce.center)
	b.vertices = append(b.vertices, ce.center)

	edge := &edgeRecord{left: prevArc.site, right: nextArc.site}
	edge.resolve(0, ce.center)
	b.edges = append(b.edges, edge)

	bpNew := newBreakpoint(b.beach.newID(), prevArc.focus, nextArc.focus, edge, 1)
	bpNew.leftArc = prevArc
	bpNew.rightArc = nextArc
	prevArc.rightBP = bpNew
	nextArc.leftBP = bpNew

	b.beach.remove(bpL)
	b.beach.remove(middle)
	b.beach.remove(bpR)
	b.beach.insert(bpNew)

	b.tryCircleEvent(prevArc)
	b.tryCircleEvent(nextArc)
}

// tryCircleEvent tests whether middle, together with its current left and
// right neighbour arcs, is about to disappear from the beach line, per
// §4.6.3: the three foci's signed area must be negative (the arcs are
// genuinely converging, not diverging) and the circumcircle's bottom point
// must not yet have been passed by the sweep.
func (b *builder) tryCircleEvent(middle *beachElement) {
	if middle.leftBP == nil || middle.rightBP == nil {
		return
	}
	left, right := middle.leftBP.leftArc, middle.rightBP.rightArc
	if left == nil || right == nil || left.site == right.site {
		return
	}

	area := predicate.SignedArea(left.focus, middle.focus, right.focus)
	if area >= 0 {
		return
	}

	center, radius, ok := predicate.Circumcircle(left.focus, middle.focus, right.focus)
	if !ok {
		return
	}

	bottom := center.Y() - radius
	if bottom > b.beach.sweepY {
		return
	}

	ce := &circleEvent{point: point.New(center.X(), bottom), center: center, arc: middle}
	middle.circleEvt = ce
	b.pushEvent(event{kind: circleEventKind, p: ce.point, circle: ce})
}

// remainingBreakpoints returns every breakpoint still present in the beach
// line after the event queue has drained; each marks one dangling end of
// its edgeRecord.
func (b *builder) remainingBreakpoints() []*beachElement {
	var out []*beachElement
	for _, e := range b.beach.inOrder() {
		if !e.isArc {
			out = append(out, e)
		}
	}
	return out
}
