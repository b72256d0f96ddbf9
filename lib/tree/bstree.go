package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

type bsNode[K infra.OrderedKey, V any] struct {
	left  *bsNode[K, V]
	right *bsNode[K, V]
	key   K
	val   V
}

func (node *bsNode[K, V]) Key() K {
	return node.key
}

func (node *bsNode[K, V]) Val() V {
	return node.val
}

func (node *bsNode[K, V]) Left() BSNode[K, V] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *bsNode[K, V]) Right() BSNode[K, V] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

// Recursive descent, depth bounded by the subtree height.
func (node *bsNode[K, V]) insert(key K, val V) (old V, replaced bool) {
	var lr **bsNode[K, V]
	switch res := infra.CompareKey(key, node.key); {
	case res == 0:
		old, node.val = node.val, val
		return old, true
	case res < 0:
		lr = &node.left
	default:
		lr = &node.right
	}
	if *lr == nil {
		*lr = &bsNode[K, V]{key: key, val: val}
		return old, false
	}
	return (*lr).insert(key, val)
}

func (node *bsNode[K, V]) get(key K) (V, bool) {
	var lr *bsNode[K, V]
	switch res := infra.CompareKey(key, node.key); {
	case res == 0:
		return node.val, true
	case res < 0:
		lr = node.left
	default:
		lr = node.right
	}
	if lr == nil {
		var zero V
		return zero, false
	}
	return lr.get(key)
}

func (node *bsNode[K, V]) len() int64 {
	if node == nil {
		return 0
	}
	return node.left.len() + 1 + node.right.len()
}

type bsTree[K infra.OrderedKey, V any] struct {
	root *bsNode[K, V]
}

// Len recounts the subtree sizes on every call (left + 1 + right),
// O(n). There is no cached size to keep in sync with mutation; trade
// the walk for the bookkeeping.
func (tree *bsTree[K, V]) Len() int64 {
	return tree.root.len()
}

func (tree *bsTree[K, V]) Root() BSNode[K, V] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *bsTree[K, V]) IsEmpty() bool {
	return tree.root == nil
}

// Insert descends from the root under the key order. An equal key
// replaces that node's value in place and returns the previous value;
// otherwise exactly one new leaf is allocated at the empty slot reached
// by the descent. No rebalancing of any kind happens here.
func (tree *bsTree[K, V]) Insert(key K, val V) (old V, replaced bool) {
	if tree.root == nil {
		tree.root = &bsNode[K, V]{key: key, val: val}
		return old, false
	}
	return tree.root.insert(key, val)
}

func (tree *bsTree[K, V]) Get(key K) (V, bool) {
	if tree.root == nil {
		var zero V
		return zero, false
	}
	return tree.root.get(key)
}

// Inorder traversal to implement the DFS. The ancestor stack keeps
// traversal depth off the goroutine stack, so a degenerate tree that
// is risky to build recursively is still safe to walk.
func (tree *bsTree[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	aux := tree.root
	if aux == nil {
		return
	}

	stack := make([]*bsNode[K, V], 0, 8)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size := len(stack); size > 0; size = len(stack) {
		if aux = stack[size-1]; !action(idx, aux.key, aux.val) {
			return
		}
		idx++
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

func (tree *bsTree[K, V]) Iter() *BSTreeIter[K, V] {
	return &BSTreeIter[K, V]{curr: tree.root}
}

// Release unlinks every node exactly once, iteratively. Afterwards the
// tree is empty and reusable.
func (tree *bsTree[K, V]) Release() {
	aux := tree.root
	tree.root = nil
	if aux == nil {
		return
	}

	stack := make([]*bsNode[K, V], 0, 8)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		stack = stack[:size-1]
		r := aux.right
		aux.left, aux.right = nil, nil
		if r != nil {
			for aux = r; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

// BSTreeIter walks the tree in ascending key order, one entry per
// Next, holding only the left-spine ancestors of the cursor. The
// iterator borrows the tree's nodes; any mutation of the tree
// invalidates it. It cannot be rewound, create a fresh one instead.
type BSTreeIter[K infra.OrderedKey, V any] struct {
	curr  *bsNode[K, V]
	node  *bsNode[K, V]
	stack []*bsNode[K, V]
}

// Next advances to the next entry and reports whether one exists.
// Key and Val are only valid after Next returned true.
func (it *BSTreeIter[K, V]) Next() bool {
	for ; it.curr != nil; it.curr = it.curr.left {
		it.stack = append(it.stack, it.curr)
	}
	size := len(it.stack)
	if size == 0 {
		it.node = nil
		return false
	}
	it.node = it.stack[size-1]
	it.stack = it.stack[:size-1]
	it.curr = it.node.right
	return true
}

func (it *BSTreeIter[K, V]) Key() K {
	return it.node.key
}

func (it *BSTreeIter[K, V]) Val() V {
	return it.node.val
}

// NewBSTree creates an empty tree.
func NewBSTree[K infra.OrderedKey, V any]() BSTree[K, V] {
	return &bsTree[K, V]{}
}

// BSTreeWith creates a tree holding a single entry.
func BSTreeWith[K infra.OrderedKey, V any](key K, val V) BSTree[K, V] {
	tree := &bsTree[K, V]{}
	tree.Insert(key, val)
	return tree
}

// Equal reports structural equality: both trees hold the same key and
// value at every position of the same shape. Two trees built from the
// same entries in different insertion orders usually differ in shape
// and therefore compare unequal. This is not set-equality.
func Equal[K infra.OrderedKey, V comparable](a, b BSTree[K, V]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return nodeEqual[K, V](a.Root(), b.Root())
}

func nodeEqual[K infra.OrderedKey, V comparable](x, y BSNode[K, V]) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return x.Key() == y.Key() && x.Val() == y.Val() &&
		nodeEqual[K, V](x.Left(), y.Left()) &&
		nodeEqual[K, V](x.Right(), y.Right())
}
