package rangetree

import (
	"math"
	"slices"

	"github.com/tomkrieg108/geomkernel/point"
)

// kdNode is a kd-tree node: depth parity picks the split axis (even depth
// splits on x, odd on y). Leaves hold a single point.
type kdNode struct {
	isLeaf      bool
	splitValue  float64
	left, right *kdNode
	point       point.Point
}

// KDTree partitions points by alternating x/y splits, leaf-per-point.
// RangeQuery recurses down, reporting whole subtrees whose bounding range
// lies inside the query and pruning branches disjoint from it.
type KDTree struct {
	root  *kdNode
	bound Range2D
}

// NewKDTree builds a KDTree over points.
func NewKDTree(points []point.Point) *KDTree {
	if len(points) == 0 {
		return &KDTree{}
	}
	t := &KDTree{bound: boundingRange(points)}
	t.root = buildKDNode(0, slices.Clone(points))
	return t
}

func boundingRange(points []point.Point) Range2D {
	r := Range2D{XLo: math.Inf(1), XHi: math.Inf(-1), YLo: math.Inf(1), YHi: math.Inf(-1)}
	for _, p := range points {
		r.XLo = min(r.XLo, p.X())
		r.XHi = max(r.XHi, p.X())
		r.YLo = min(r.YLo, p.Y())
		r.YHi = max(r.YHi, p.Y())
	}
	return r
}

func buildKDNode(depth int, points []point.Point) *kdNode {
	if len(points) == 1 {
		return &kdNode{isLeaf: true, point: points[0]}
	}

	splitOnX := depth%2 == 0
	slices.SortFunc(points, func(a, b point.Point) int {
		var av, bv float64
		if splitOnX {
			av, bv = a.X(), b.X()
		} else {
			av, bv = a.Y(), b.Y()
		}
		if av < bv {
			return -1
		}
		if av > bv {
			return 1
		}
		return 0
	})

	mid := len(points) / 2
	splitValue := points[mid].X()
	if !splitOnX {
		splitValue = points[mid].Y()
	}

	return &kdNode{
		splitValue: splitValue,
		left:       buildKDNode(depth+1, points[:mid]),
		right:      buildKDNode(depth+1, points[mid:]),
	}
}

// RangeQuery returns every point within the closed rectangle query.
func (t *KDTree) RangeQuery(query Range2D) []point.Point {
	if t == nil || t.root == nil {
		return nil
	}
	var out []point.Point
	searchKDNode(t.root, 0, t.bound, query, &out)
	return out
}

func searchKDNode(n *kdNode, depth int, nodeRange Range2D, query Range2D, out *[]point.Point) {
	if n == nil {
		return
	}
	if n.isLeaf {
		if query.Contains(n.point) {
			*out = append(*out, n.point)
		}
		return
	}
	if !nodeRange.intersects(query) {
		return
	}
	if query.containsRange(nodeRange) {
		collectAll(n, out)
		return
	}

	leftRange, rightRange := nodeRange, nodeRange
	if depth%2 == 0 {
		leftRange.XHi = n.splitValue
		rightRange.XLo = n.splitValue
	} else {
		leftRange.YHi = n.splitValue
		rightRange.YLo = n.splitValue
	}
	searchKDNode(n.left, depth+1, leftRange, query, out)
	searchKDNode(n.right, depth+1, rightRange, query, out)
}

func collectAll(n *kdNode, out *[]point.Point) {
	if n == nil {
		return
	}
	if n.isLeaf {
		*out = append(*out, n.point)
		return
	}
	collectAll(n.left, out)
	collectAll(n.right, out)
}
