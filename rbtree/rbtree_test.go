package rbtree_test

import (
	"cmp"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomkrieg108/geomkernel/rbtree"
)

func intCompare(a, b int) int {
	return cmp.Compare(a, b)
}

func TestTree_InsertFindRemove(t *testing.T) {
	tr := rbtree.New[int, string](intCompare)

	tr.Insert(5, "five")
	tr.Insert(3, "three")
	tr.Insert(8, "eight")

	v, found := tr.Find(3)
	require.True(t, found)
	assert.Equal(t, "three", v)

	tr.Remove(3)
	_, found = tr.Find(3)
	assert.False(t, found)

	assert.Equal(t, 2, tr.Size())
}

func TestTree_MinMaxFloorCeiling(t *testing.T) {
	tr := rbtree.New[int, int](intCompare)
	for _, k := range []int{10, 20, 30, 40, 50} {
		tr.Insert(k, k*2)
	}

	minK, _, _ := tr.Min()
	maxK, _, _ := tr.Max()
	assert.Equal(t, 10, minK)
	assert.Equal(t, 50, maxK)

	floorK, _, found := tr.Floor(25)
	require.True(t, found)
	assert.Equal(t, 20, floorK)

	ceilK, _, found := tr.Ceiling(25)
	require.True(t, found)
	assert.Equal(t, 30, ceilK)
}

func TestTree_InOrderAndValidate(t *testing.T) {
	tr := rbtree.New[int, struct{}](intCompare)
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		tr.Insert(r.IntN(1000), struct{}{})
	}
	require.NoError(t, tr.Validate())

	keys := tr.Keys()
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}

func TestTree_StatefulComparator(t *testing.T) {
	// Grounded on the status-structure pattern: the comparator closes over
	// a pointer to external mutable state, and callers only mutate that
	// state between tree operations.
	sweepX := 0.0
	tr := rbtree.New[float64, struct{}](func(a, b float64) int {
		return cmp.Compare(a-sweepX, b-sweepX)
	})
	tr.Insert(1, struct{}{})
	tr.Insert(5, struct{}{})
	tr.Insert(3, struct{}{})
	require.NoError(t, tr.Validate())

	sweepX = 10 // shift external state between operations, not during one
	minK, _, _ := tr.Min()
	assert.Equal(t, 1.0, minK)
}

func TestTree_Traversable(t *testing.T) {
	tr := rbtree.New[int, string](intCompare)
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		tr.Insert(k, "")
	}

	root := tr.Root()
	require.True(t, root.Valid())

	left := tr.LeftChild(root)
	right := tr.RightChild(root)
	if left.Valid() {
		assert.True(t, left.Key() < root.Key())
	}
	if right.Valid() {
		assert.True(t, right.Key() > root.Key())
	}

	split := tr.FindSplitNode(25, 65)
	require.True(t, split.Valid())
	assert.True(t, split.Key() >= 25 && split.Key() < 65)
}
