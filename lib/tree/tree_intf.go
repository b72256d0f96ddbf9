package tree

import "github.com/benz9527/xtree/lib/infra"

// BSNode is the read-only view of a binary-search-tree node. A node
// exclusively owns its children; there is no parent link.
type BSNode[K infra.OrderedKey, V any] interface {
	Key() K
	Val() V
	Left() BSNode[K, V]
	Right() BSNode[K, V]
}

// BSTree is an ordered key-value container backed by an unbalanced
// binary search tree. Keys are unique under the strict total order of K.
// Insertion never restructures the tree, so the shape is purely a
// function of insertion order and the height degrades to O(n) for a
// sorted insertion sequence.
//
// Single-threaded by contract. Concurrent mutation must be prevented
// by the caller.
type BSTree[K infra.OrderedKey, V any] interface {
	Len() int64
	Root() BSNode[K, V]
	Insert(key K, val V) (old V, replaced bool)
	Get(key K) (V, bool)
	IsEmpty() bool
	Foreach(action func(idx int64, key K, val V) bool)
	Iter() *BSTreeIter[K, V]
	Release()
}
