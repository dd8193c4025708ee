// Package rbtree provides a generic self-balancing ordered tree on top of
// github.com/emirpasic/gods/trees/redblacktree, plus a "traversable"
// extension exposing parent/child navigation and split-node lookup.
//
// The defining feature needed by geomkernel's sweep-line algorithms is a
// comparator that is stateful: it may close over mutable state external to
// the tree (the current sweep-line position, for example) so that the
// relative order of entries changes as that state changes between
// operations. Callers are responsible for only mutating that external state
// between tree operations, never during one - gods' own tree invariants
// assume a comparator that is consistent for the duration of a single
// Put/Remove/Floor/Ceiling call.
package rbtree

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// CompareFunc orders two keys of type K. It returns a negative number if a
// sorts before b, a positive number if a sorts after b, and zero if they are
// equivalent under the current ordering. A CompareFunc may close over
// external mutable state (see the package doc).
type CompareFunc[K any] func(a, b K) int

// Tree is a generic ordered red-black tree. The zero value is not usable;
// construct one with New.
type Tree[K any, V any] struct {
	tree    *rbt.Tree
	compare CompareFunc[K]
}

// entry is the boxed (key, value) pair actually stored in the underlying
// gods tree, since gods works in terms of interface{} keys.
type entry[K any, V any] struct {
	key   K
	value V
}

// New creates an empty Tree ordered by compare.
func New[K any, V any](compare CompareFunc[K]) *Tree[K, V] {
	t := &Tree[K, V]{compare: compare}
	t.tree = rbt.NewWith(func(a, b interface{}) int {
		return compare(a.(entry[K, V]).key, b.(entry[K, V]).key)
	})
	return t
}

// Size returns the number of entries in the tree.
func (t *Tree[K, V]) Size() int {
	return t.tree.Size()
}

// Empty reports whether the tree has no entries.
func (t *Tree[K, V]) Empty() bool {
	return t.tree.Empty()
}

// Insert inserts key with the given value, replacing any existing entry
// whose key compares equal to it under the tree's CompareFunc.
func (t *Tree[K, V]) Insert(key K, value V) {
	t.tree.Put(entry[K, V]{key: key, value: value}, nil)
}

// Remove deletes the entry whose key compares equal to key, if any.
func (t *Tree[K, V]) Remove(key K) {
	t.tree.Remove(entry[K, V]{key: key})
}

// Find returns the value stored for a key comparing equal to key.
func (t *Tree[K, V]) Find(key K) (value V, found bool) {
	n := t.tree.GetNode(entry[K, V]{key: key})
	if n == nil {
		var zero V
		return zero, false
	}
	return n.Key.(entry[K, V]).value, true
}

// Min returns the smallest key in the tree.
func (t *Tree[K, V]) Min() (key K, value V, found bool) {
	n := t.tree.Left()
	if n == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	e := n.Key.(entry[K, V])
	return e.key, e.value, true
}

// Max returns the largest key in the tree.
func (t *Tree[K, V]) Max() (key K, value V, found bool) {
	n := t.tree.Right()
	if n == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	e := n.Key.(entry[K, V])
	return e.key, e.value, true
}

// Floor returns the largest key less than or equal to key.
func (t *Tree[K, V]) Floor(key K) (foundKey K, value V, found bool) {
	n, ok := t.tree.Floor(entry[K, V]{key: key})
	if !ok {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	e := n.Key.(entry[K, V])
	return e.key, e.value, true
}

// Ceiling returns the smallest key greater than or equal to key.
func (t *Tree[K, V]) Ceiling(key K) (foundKey K, value V, found bool) {
	n, ok := t.tree.Ceiling(entry[K, V]{key: key})
	if !ok {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	e := n.Key.(entry[K, V])
	return e.key, e.value, true
}

// InOrder returns every key in the tree in ascending order, along with its
// value. This walks the whole tree and is intended for validation/testing
// and for algorithms that need a snapshot of the current order (the
// Voronoi beach line once its sweep has ended).
func (t *Tree[K, V]) InOrder() (keys []K, values []V) {
	it := t.tree.Iterator()
	for it.Next() {
		e := it.Key().(entry[K, V])
		keys = append(keys, e.key)
		values = append(values, e.value)
	}
	return keys, values
}

// Keys returns every key in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys, _ := t.InOrder()
	return keys
}
