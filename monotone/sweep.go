package monotone

import (
	"slices"

	"github.com/tomkrieg108/geomkernel/point"
	"github.com/tomkrieg108/geomkernel/rbtree"
)

// edgeEntry is a status-structure key: the directed polygon edge
// (fromVertex, toVertex) currently crossing the sweep line, identified by
// its endpoints so removal and helper look-ups are exact even though the
// comparator orders by a recomputed, sweep-position-dependent x-intercept.
type edgeEntry struct {
	fromVertex, toVertex int
	fromPoint, toPoint    point.Point
}

func (e edgeEntry) xAt(y float64) float64 {
	if e.toPoint.Y() == e.fromPoint.Y() {
		return e.fromPoint.X()
	}
	t := (y - e.fromPoint.Y()) / (e.toPoint.Y() - e.fromPoint.Y())
	return e.fromPoint.X() + t*(e.toPoint.X()-e.fromPoint.X())
}

// edgeStatus is the status structure T of spec §4.4.2: the edges currently
// crossing the sweep line, ordered by x-intercept at the current sweep y -
// a stateful comparator, per rbtree's documented pattern - each carrying a
// helper vertex.
type edgeStatus struct {
	tree    *rbtree.Tree[edgeEntry, int]
	current point.Point
}

func newEdgeStatus() *edgeStatus {
	s := &edgeStatus{}
	s.tree = rbtree.New[edgeEntry, int](func(a, b edgeEntry) int {
		ax, bx := a.xAt(s.current.Y()), b.xAt(s.current.Y())
		switch {
		case ax < bx:
			return -1
		case ax > bx:
			return 1
		}
		if a.fromVertex != b.fromVertex {
			return a.fromVertex - b.fromVertex
		}
		return a.toVertex - b.toVertex
	})
	return s
}

func (s *edgeStatus) moveTo(p point.Point) {
	s.current = p
}

func (s *edgeStatus) insert(fromVertex, toVertex int, fromPoint, toPoint, helperPoint point.Point, helper int) {
	s.tree.Insert(edgeEntry{fromVertex: fromVertex, toVertex: toVertex, fromPoint: fromPoint, toPoint: toPoint}, helper)
}

func (s *edgeStatus) remove(fromVertex, toVertex int, fromPoint, toPoint point.Point) {
	s.tree.Remove(edgeEntry{fromVertex: fromVertex, toVertex: toVertex, fromPoint: fromPoint, toPoint: toPoint})
}

func (s *edgeStatus) helperOf(fromVertex, toVertex int, fromPoint, toPoint point.Point) (int, bool) {
	return s.tree.Find(edgeEntry{fromVertex: fromVertex, toVertex: toVertex, fromPoint: fromPoint, toPoint: toPoint})
}

// leftOf returns the edge entry, and its helper, directly to the left of x
// at the current sweep y - i.e. the floor among edges whose x-intercept is
// less than x. Edges exactly at x are excluded since leftOf is only called
// for vertices that are not themselves endpoints of an edge in T.
func (s *edgeStatus) leftOf(x float64) (edgeEntry, int, bool) {
	keys, values := s.tree.InOrder()
	best := -1
	for i, k := range keys {
		if k.xAt(s.current.Y()) < x {
			best = i
		} else {
			break
		}
	}
	if best == -1 {
		return edgeEntry{}, 0, false
	}
	return keys[best], values[best], true
}

func (s *edgeStatus) setHelper(e edgeEntry, helper int) {
	s.tree.Insert(e, helper)
}

// MakeMonotone runs the plane sweep of spec §4.4.2, computing the diagonals
// that partition the polygon into y-monotone pieces, then applies every
// diagonal to the mesh via dcel.DCEL.Split.
func (m *Partition) MakeMonotone() error {
	order := make([]int, m.n())
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return m.points[a].Compare(m.points[b])
	})

	S := newEdgeStatus()

	edgeOf := func(v int) (from, to int, fromPt, toPt point.Point) {
		return v, m.next(v), m.points[v], m.points[m.next(v)]
	}
	incomingEdgeOf := func(v int) (from, to int, fromPt, toPt point.Point) {
		pv := m.prev(v)
		return pv, v, m.points[pv], m.points[v]
	}

	emit := func(a, b int) {
		if a == b {
			return
		}
		m.monotoneDiagonals = append(m.monotoneDiagonals, [2]int{a, b})
	}

	for _, v := range order {
		p := m.points[v]
		S.moveTo(p)

		switch m.categories[v] {
		case Start:
			from, to, fp, tp := edgeOf(v)
			S.insert(from, to, fp, tp, p, v)

		case End:
			from, to, fp, tp := incomingEdgeOf(v)
			if helper, ok := S.helperOf(from, to, fp, tp); ok && m.categories[helper] == Merge {
				emit(v, helper)
			}
			S.remove(from, to, fp, tp)

		case Split:
			ej, helper, found := S.leftOf(p.X())
			if found {
				emit(v, helper)
				S.setHelper(ej, v)
			}
			from, to, fp, tp := edgeOf(v)
			S.insert(from, to, fp, tp, p, v)

		case Merge:
			from, to, fp, tp := incomingEdgeOf(v)
			if helper, ok := S.helperOf(from, to, fp, tp); ok && m.categories[helper] == Merge {
				emit(v, helper)
			}
			S.remove(from, to, fp, tp)

			ej, helper, found := S.leftOf(p.X())
			if found && m.categories[helper] == Merge {
				emit(v, helper)
			}
			if found {
				S.setHelper(ej, v)
			}

		case Regular:
			interiorOnRight := isBelow(m.points[m.next(v)], p)
			if interiorOnRight {
				from, to, fp, tp := incomingEdgeOf(v)
				if helper, ok := S.helperOf(from, to, fp, tp); ok && m.categories[helper] == Merge {
					emit(v, helper)
				}
				S.remove(from, to, fp, tp)
				nfrom, nto, nfp, ntp := edgeOf(v)
				S.insert(nfrom, nto, nfp, ntp, p, v)
			} else {
				ej, helper, found := S.leftOf(p.X())
				if found {
					if m.categories[helper] == Merge {
						emit(v, helper)
					}
					S.setHelper(ej, v)
				}
			}
		}
	}

	for _, d := range m.monotoneDiagonals {
		if !m.mesh.Split(d[0], d[1]) {
			return diagonalSplitError(d[0], d[1])
		}
	}

	return nil
}
