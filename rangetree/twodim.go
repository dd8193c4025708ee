package rangetree

import (
	"slices"

	"github.com/tomkrieg108/geomkernel/point"
	"github.com/tomkrieg108/geomkernel/rbtree"
)

// node2D is a primary-tree node: an internal node splits on xVal, with every
// point of its subtree also indexed by a secondary tree keyed by y. A leaf
// holds a single point.
type node2D struct {
	left, right *node2D
	secondary   *rbtree.Tree[float64, []point.Point]
	xVal        float64
	isLeaf      bool
	point       point.Point
}

// RangeTree2D is a tree-of-trees: a primary tree keyed by x, where every
// internal node additionally holds a secondary 1D structure, keyed by y,
// over every point in its subtree. A query [x_lo,x_hi] x [y_lo,y_hi] finds
// the x-split node, then on each path to x_lo/x_hi reports a y-range query
// against the secondary tree of every subtree hanging off the far side.
type RangeTree2D struct {
	root *node2D
}

// NewRangeTree2D builds a RangeTree2D over points.
func NewRangeTree2D(points []point.Point) *RangeTree2D {
	if len(points) == 0 {
		return &RangeTree2D{}
	}
	sorted := slices.Clone(points)
	slices.SortFunc(sorted, func(a, b point.Point) int {
		if a.X() != b.X() {
			if a.X() < b.X() {
				return -1
			}
			return 1
		}
		if a.Y() < b.Y() {
			return -1
		}
		if a.Y() > b.Y() {
			return 1
		}
		return 0
	})
	return &RangeTree2D{root: buildNode2D(sorted)}
}

func buildNode2D(points []point.Point) *node2D {
	secondary := buildSecondary(points)
	if len(points) == 1 {
		return &node2D{isLeaf: true, point: points[0], secondary: secondary}
	}
	mid := len(points) / 2
	return &node2D{
		xVal:      points[mid].X(),
		secondary: secondary,
		left:      buildNode2D(points[:mid]),
		right:     buildNode2D(points[mid:]),
	}
}

func buildSecondary(points []point.Point) *rbtree.Tree[float64, []point.Point] {
	t := rbtree.New[float64, []point.Point](func(a, b float64) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
	for _, p := range points {
		if existing, ok := t.Find(p.Y()); ok {
			t.Insert(p.Y(), append(existing, p))
		} else {
			t.Insert(p.Y(), []point.Point{p})
		}
	}
	return t
}

func rangeQueryY(t *rbtree.Tree[float64, []point.Point], lo, hi float64) []point.Point {
	if t == nil || t.Empty() {
		return nil
	}
	split := t.FindSplitNode(lo, hi)
	if !split.Valid() {
		return nil
	}
	var out []point.Point
	report := func(h rbtree.NodeHandle[float64, []point.Point]) {
		if h.Key() >= lo && h.Key() <= hi {
			out = append(out, h.Value()...)
		}
	}
	report(split)

	v := t.LeftChild(split)
	for v.Valid() {
		if v.Key() >= lo {
			reportSubtreeY(t, t.RightChild(v), &out)
			report(v)
			v = t.LeftChild(v)
		} else {
			v = t.RightChild(v)
		}
	}
	v = t.RightChild(split)
	for v.Valid() {
		if v.Key() <= hi {
			reportSubtreeY(t, t.LeftChild(v), &out)
			report(v)
			v = t.RightChild(v)
		} else {
			v = t.LeftChild(v)
		}
	}
	return out
}

func reportSubtreeY(t *rbtree.Tree[float64, []point.Point], h rbtree.NodeHandle[float64, []point.Point], out *[]point.Point) {
	if !h.Valid() {
		return
	}
	*out = append(*out, h.Value()...)
	reportSubtreeY(t, t.LeftChild(h), out)
	reportSubtreeY(t, t.RightChild(h), out)
}

// findSplitNode2D descends the primary tree to the node at which the search
// paths for x_lo and x_hi diverge, mirroring RangeTree1D's FindSplitNode but
// over the hand-built primary tree rather than an rbtree.Tree.
func findSplitNode2D(n *node2D, xLo, xHi float64) *node2D {
	for n != nil && !n.isLeaf {
		if xHi < n.xVal {
			n = n.left
		} else if xLo > n.xVal {
			n = n.right
		} else {
			return n
		}
	}
	return n
}

// RangeQuery returns every point within the closed rectangle query.
func (t *RangeTree2D) RangeQuery(query Range2D) []point.Point {
	if t == nil || t.root == nil {
		return nil
	}
	split := findSplitNode2D(t.root, query.XLo, query.XHi)
	if split == nil {
		return nil
	}

	var out []point.Point
	reportLeaf := func(n *node2D) {
		if query.Contains(n.point) {
			out = append(out, n.point)
		}
	}

	if split.isLeaf {
		reportLeaf(split)
		return out
	}

	v := split.left
	for v != nil {
		if !v.isLeaf {
			if query.XLo <= v.xVal {
				out = append(out, rangeQueryY(v.right.secondary, query.YLo, query.YHi)...)
				v = v.left
			} else {
				v = v.right
			}
		} else {
			reportLeaf(v)
			break
		}
	}

	v = split.right
	for v != nil {
		if !v.isLeaf {
			if query.XHi >= v.xVal {
				out = append(out, rangeQueryY(v.left.secondary, query.YLo, query.YHi)...)
				v = v.right
			} else {
				v = v.left
			}
		} else {
			reportLeaf(v)
			break
		}
	}

	return out
}
