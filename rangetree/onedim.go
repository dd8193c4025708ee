package rangetree

import "github.com/tomkrieg108/geomkernel/rbtree"

// RangeTree1D is a balanced tree over scalar values, augmented with a
// split-node-based range query: descend to the split node for [lo, hi],
// then walk the left path reporting whole right subtrees and the right path
// reporting whole left subtrees, per the classic range-tree query. Values are
// kept with a multiplicity count rather than being deduplicated, since a
// range query reports every occurrence of a value in the input set.
type RangeTree1D struct {
	tree *rbtree.Tree[float64, int]
}

// NewRangeTree1D builds a RangeTree1D over values, duplicates included.
func NewRangeTree1D(values []float64) *RangeTree1D {
	t := &RangeTree1D{tree: rbtree.New[float64, int](func(a, b float64) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})}
	for _, v := range values {
		t.insert(v)
	}
	return t
}

func (t *RangeTree1D) insert(v float64) {
	if n, ok := t.tree.Find(v); ok {
		t.tree.Insert(v, n+1)
		return
	}
	t.tree.Insert(v, 1)
}

// RangeQuery returns every value in the closed interval [lo, hi], including
// duplicates, in no particular order.
func (t *RangeTree1D) RangeQuery(lo, hi float64) []float64 {
	if t.tree.Empty() {
		return nil
	}
	split := t.tree.FindSplitNode(lo, hi)
	if !split.Valid() {
		// No node lies within [lo, hi]; every node is strictly less than lo
		// or strictly greater than hi, so the whole tree can be treated as
		// the split search having bottomed out at an empty subtree.
		return nil
	}

	var out []float64
	report := func(v float64, count int) {
		for i := 0; i < count; i++ {
			out = append(out, v)
		}
	}

	if split.Key() >= lo && split.Key() <= hi {
		report(split.Key(), split.Value())
	}

	// Left path: descend from split's left child toward lo, reporting right
	// subtrees whenever the path goes left (those subtrees are entirely
	// >= the value compared and <= hi, since we never went right of hi).
	v := t.tree.LeftChild(split)
	for v.Valid() {
		if v.Key() >= lo {
			t.reportSubtree(t.tree.RightChild(v), lo, hi, report)
			if v.Key() <= hi {
				report(v.Key(), v.Value())
			}
			v = t.tree.LeftChild(v)
		} else {
			v = t.tree.RightChild(v)
		}
	}

	// Right path: symmetric, reporting left subtrees.
	v = t.tree.RightChild(split)
	for v.Valid() {
		if v.Key() <= hi {
			t.reportSubtree(t.tree.LeftChild(v), lo, hi, report)
			if v.Key() >= lo {
				report(v.Key(), v.Value())
			}
			v = t.tree.RightChild(v)
		} else {
			v = t.tree.LeftChild(v)
		}
	}

	return out
}

// reportSubtree reports every node under h unconditionally: the caller only
// calls this on subtrees already known to lie entirely within [lo, hi].
func (t *RangeTree1D) reportSubtree(h rbtree.NodeHandle[float64, int], lo, hi float64, report func(float64, int)) {
	if !h.Valid() {
		return
	}
	report(h.Key(), h.Value())
	t.reportSubtree(t.tree.LeftChild(h), lo, hi, report)
	t.reportSubtree(t.tree.RightChild(h), lo, hi, report)
}
