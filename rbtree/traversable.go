package rbtree

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// NodeHandle identifies a node in the tree for parent/child navigation,
// grounded on the original RBTreeTraversable.h design. A NodeHandle is only
// valid until the tree it came from is next mutated.
type NodeHandle[K any, V any] struct {
	node *rbt.Node
}

// Valid reports whether the handle refers to an existing node.
func (h NodeHandle[K, V]) Valid() bool {
	return h.node != nil
}

// Key returns the handle's key.
func (h NodeHandle[K, V]) Key() K {
	return h.node.Key.(entry[K, V]).key
}

// Value returns the handle's value.
func (h NodeHandle[K, V]) Value() V {
	return h.node.Key.(entry[K, V]).value
}

func wrap[K any, V any](n *rbt.Node) NodeHandle[K, V] {
	return NodeHandle[K, V]{node: n}
}

// Root returns a handle to the tree's root node.
func (t *Tree[K, V]) Root() NodeHandle[K, V] {
	return wrap[K, V](t.tree.Root)
}

// Parent returns a handle to h's parent.
func (t *Tree[K, V]) Parent(h NodeHandle[K, V]) NodeHandle[K, V] {
	if !h.Valid() {
		return NodeHandle[K, V]{}
	}
	return wrap[K, V](h.node.Parent)
}

// LeftChild returns a handle to h's left child.
func (t *Tree[K, V]) LeftChild(h NodeHandle[K, V]) NodeHandle[K, V] {
	if !h.Valid() {
		return NodeHandle[K, V]{}
	}
	return wrap[K, V](h.node.Left)
}

// RightChild returns a handle to h's right child.
func (t *Tree[K, V]) RightChild(h NodeHandle[K, V]) NodeHandle[K, V] {
	if !h.Valid() {
		return NodeHandle[K, V]{}
	}
	return wrap[K, V](h.node.Right)
}

// IsLeaf reports whether h has neither a left nor a right child.
func (t *Tree[K, V]) IsLeaf(h NodeHandle[K, V]) bool {
	return h.Valid() && h.node.Left == nil && h.node.Right == nil
}

// IsRoot reports whether h is the tree's root.
func (t *Tree[K, V]) IsRoot(h NodeHandle[K, V]) bool {
	return h.Valid() && h.node == t.tree.Root
}

// FindNode returns a handle to the node whose key compares equal to key.
func (t *Tree[K, V]) FindNode(key K) NodeHandle[K, V] {
	return wrap[K, V](t.tree.GetNode(entry[K, V]{key: key}))
}

// FindSplitNode walks down from the root searching for the first node whose
// key lies within [lo, hi] under the tree's current ordering, or whose
// subtree straddles the split - mirroring the original RBTreeTraversable's
// FindSplitPos. This is the entry point range-tree queries use before
// descending separately into the lo and hi paths.
func (t *Tree[K, V]) FindSplitNode(lo, hi K) NodeHandle[K, V] {
	n := t.tree.Root
	for n != nil {
		key := n.Key.(entry[K, V]).key
		greaterThanHi := t.compare(key, hi) > 0
		lessThanLo := t.compare(key, lo) < 0
		if !greaterThanHi && !lessThanLo {
			// lo <= key <= hi: this is the split node.
			return wrap[K, V](n)
		}
		if greaterThanHi {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return NodeHandle[K, V]{}
}
