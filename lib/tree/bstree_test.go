package tree

import (
	randv2 "math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBSTreeInsertAndGet(t *testing.T) {
	type checkData struct {
		key uint64
		val string
	}

	tree := NewBSTree[uint64, string]()
	require.True(t, tree.IsEmpty())
	require.Equal(t, int64(0), tree.Len())

	_, replaced := tree.Insert(1, "1")
	require.False(t, replaced)
	_, replaced = tree.Insert(0, "0")
	require.False(t, replaced)
	_, replaced = tree.Insert(2, "2")
	require.False(t, replaced)

	require.False(t, tree.IsEmpty())
	require.Equal(t, int64(3), tree.Len())

	for _, c := range []checkData{
		{0, "0"}, {1, "1"}, {2, "2"},
	} {
		val, exists := tree.Get(c.key)
		require.True(t, exists)
		require.Equal(t, c.val, val)
	}
	_, exists := tree.Get(3)
	require.False(t, exists)

	expected := []checkData{
		{0, "0"}, {1, "1"}, {2, "2"},
	}
	tree.Foreach(func(idx int64, key uint64, val string) bool {
		require.Equal(t, expected[idx].key, key)
		require.Equal(t, expected[idx].val, val)
		return true
	})
	require.NoError(t, StructureValidate[uint64, string](tree))
}

func TestBSTreeInsertDuplicate(t *testing.T) {
	tree := BSTreeWith[uint64, string](0, "0")

	old, replaced := tree.Insert(1, "1")
	require.False(t, replaced)
	require.Equal(t, "", old)
	require.Equal(t, int64(2), tree.Len())

	old, replaced = tree.Insert(1, "x")
	require.True(t, replaced)
	require.Equal(t, "1", old)
	require.Equal(t, int64(2), tree.Len())

	val, exists := tree.Get(1)
	require.True(t, exists)
	require.Equal(t, "x", val)
}

func TestBSTreeLenRecount(t *testing.T) {
	tree := NewBSTree[int, int]()
	for i := 0; i < 64; i++ {
		tree.Insert(i*7%64, i)
	}
	require.Equal(t, int64(64), tree.Len())
	// Duplicates only replace, never grow.
	for i := 0; i < 64; i++ {
		tree.Insert(i*7%64, -i)
	}
	require.Equal(t, int64(64), tree.Len())
}

func TestBSTreeForeachSorted(t *testing.T) {
	tree := NewBSTree[uint64, uint64]()
	shadow := make(map[uint64]uint64, 1024)
	for i := 0; i < 1024; i++ {
		k, v := randv2.Uint64(), randv2.Uint64()
		shadow[k] = v
		tree.Insert(k, v)
	}
	require.Equal(t, int64(len(shadow)), tree.Len())

	prev, first := uint64(0), true
	count := 0
	tree.Foreach(func(idx int64, key uint64, val uint64) bool {
		if !first {
			require.Greater(t, key, prev)
		}
		first, prev = false, key
		require.Equal(t, shadow[key], val)
		count++
		return true
	})
	require.Equal(t, len(shadow), count)
	require.NoError(t, StructureValidate[uint64, uint64](tree))
}

func TestBSTreeForeachEarlyStop(t *testing.T) {
	tree := NewBSTree[int, int]()
	for i := 0; i < 16; i++ {
		tree.Insert(i, i)
	}
	visited := 0
	tree.Foreach(func(idx int64, key int, val int) bool {
		visited++
		return idx < 4
	})
	require.Equal(t, 5, visited)
}

func TestBSTreeIter(t *testing.T) {
	tree := NewBSTree[int, string]()
	keys := []int{5, 1, 9, 3, 7, 0, 8}
	for _, k := range keys {
		tree.Insert(k, "v")
	}

	sorted := append([]int(nil), keys...)
	sort.Ints(sorted)

	it := tree.Iter()
	got := make([]int, 0, len(keys))
	for it.Next() {
		got = append(got, it.Key())
		require.Equal(t, "v", it.Val())
	}
	require.Equal(t, sorted, got)
	require.False(t, it.Next())

	// A fresh iterator restarts from the smallest key.
	it = tree.Iter()
	require.True(t, it.Next())
	require.Equal(t, 0, it.Key())
}

func TestBSTreeIterEmpty(t *testing.T) {
	tree := NewBSTree[int, int]()
	it := tree.Iter()
	require.False(t, it.Next())
}

// A strictly increasing insertion sequence degenerates the tree into a
// right spine of height n. Insert/Get recursion tracks that height, so
// this pins the worst case at a depth the goroutine stack tolerates.
func TestBSTreeDegenerateShape(t *testing.T) {
	const n = 4096
	tree := NewBSTree[int, int]()
	for i := 0; i < n; i++ {
		tree.Insert(i, i)
	}
	require.Equal(t, int64(n), tree.Len())

	val, exists := tree.Get(n - 1)
	require.True(t, exists)
	require.Equal(t, n-1, val)

	// The whole tree is a right spine.
	depth := 0
	for aux := tree.Root(); aux != nil; aux = aux.Right() {
		require.Nil(t, aux.Left())
		depth++
	}
	require.Equal(t, n, depth)
	require.NoError(t, StructureValidate[int, int](tree))
}

func TestBSTreeStructuralEqual(t *testing.T) {
	treeA := BSTreeWith[string, string]("cat", "meow")
	treeB := BSTreeWith[string, string]("cat", "meow")
	require.True(t, Equal(treeA, treeB))

	treeC := BSTreeWith[string, string]("dog", "bark")
	require.False(t, Equal(treeA, treeC))

	treeA.Insert("ant", "hill")
	require.False(t, Equal(treeA, treeB))
}

func TestBSTreeStructuralEqualIsOrderSensitive(t *testing.T) {
	balanced := NewBSTree[int, string]()
	for _, k := range []int{1, 0, 2} {
		balanced.Insert(k, "v")
	}
	spine := NewBSTree[int, string]()
	for _, k := range []int{0, 1, 2} {
		spine.Insert(k, "v")
	}

	// Identical entries, different shapes.
	require.Equal(t, balanced.Len(), spine.Len())
	spine.Foreach(func(idx int64, key int, val string) bool {
		got, exists := balanced.Get(key)
		require.True(t, exists)
		require.Equal(t, val, got)
		return true
	})
	require.False(t, Equal(balanced, spine))

	// Same insertion order, same shape.
	again := NewBSTree[int, string]()
	for _, k := range []int{1, 0, 2} {
		again.Insert(k, "v")
	}
	require.True(t, Equal(balanced, again))
}

func TestBSTreeRelease(t *testing.T) {
	tree := NewBSTree[uint64, uint64]()
	for i := 0; i < 256; i++ {
		tree.Insert(randv2.Uint64(), 0)
	}
	tree.Release()
	require.True(t, tree.IsEmpty())
	require.Equal(t, int64(0), tree.Len())

	// Reusable after release.
	tree.Insert(1, 1)
	require.Equal(t, int64(1), tree.Len())
}
