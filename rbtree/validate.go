package rbtree

import "fmt"

// Validate walks the tree in order and confirms the sequence is strictly
// increasing under the tree's CompareFunc, and that the node count matches
// Size. Red-black balance itself (color and black-height invariants) is
// maintained internally by the underlying gods implementation and is not
// re-derivable here since gods does not export node color; this check
// instead guards the invariant callers actually depend on - that Floor,
// Ceiling, and InOrder see a single consistent total order.
func (t *Tree[K, V]) Validate() error {
	keys, _ := t.InOrder()
	if len(keys) != t.Size() {
		return fmt.Errorf("rbtree: InOrder returned %d keys but Size reports %d", len(keys), t.Size())
	}
	for i := 1; i < len(keys); i++ {
		if t.compare(keys[i-1], keys[i]) >= 0 {
			return fmt.Errorf("rbtree: in-order sequence is not strictly increasing at index %d", i)
		}
	}
	return nil
}
