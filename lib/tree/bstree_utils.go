package tree

import (
	"errors"

	"github.com/benz9527/xtree/lib/infra"
	"go.uber.org/multierr"
)

// Subtree accessors backing the rotation primitives and their tests.
// They are deliberately not part of the container surface.

func leftOf[K infra.OrderedKey, V any](node *bsNode[K, V]) *bsNode[K, V] {
	if node == nil {
		return nil
	}
	return node.left
}

func rightOf[K infra.OrderedKey, V any](node *bsNode[K, V]) *bsNode[K, V] {
	if node == nil {
		return nil
	}
	return node.right
}

func subtreeLen[K infra.OrderedKey, V any](node *bsNode[K, V]) int64 {
	return node.len()
}

/*
		 |                         |
		 X                         L
		/ \     rotateRight(X)    / \
	   L   R    ============>   Ll   X
	  / \                           / \
	 Ll  Lr                       Lr   R

rotateRight promotes the left child of the given subtree root and
returns the node now occupying the slot. The demoted root keeps its
original right child and re-hangs the pivot's inner subtree (Lr) on its
left, so the in-order key sequence of the subtree is unchanged; only
shape and height move. With no left child the subtree is returned as
is.

Insert never calls the rotations. They exist for a future balancing
policy layered on top; nothing in this container tracks height or
balance, so extending it means choosing that policy as new work.
*/
func rotateRight[K infra.OrderedKey, V any](root *bsNode[K, V]) *bsNode[K, V] {
	if root == nil || root.left == nil {
		return root
	}
	pivot := root.left
	root.left = pivot.right
	pivot.right = root
	return pivot
}

// rotateLeft mirrors rotateRight, promoting the right child.
func rotateLeft[K infra.OrderedKey, V any](root *bsNode[K, V]) *bsNode[K, V] {
	if root == nil || root.right == nil {
		return root
	}
	pivot := root.right
	root.right = pivot.left
	pivot.left = root
	return pivot
}

// bstree rule validation utilities.

// Inorder traversal to validate the key ordering: every visited key
// must compare strictly greater than its predecessor, which implies
// both the search-order placement and key uniqueness.
func OrderViolationValidate[K infra.OrderedKey, V any](tree BSTree[K, V]) error {
	var aux BSNode[K, V] = tree.Root()
	if aux == nil {
		return nil
	}

	stack := make([]BSNode[K, V], 0, 8)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.Left() {
		stack = append(stack, aux)
	}

	var prev BSNode[K, V]
	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		if prev != nil && infra.CompareKey(prev.Key(), aux.Key()) >= 0 {
			return errors.New("bstree order violation")
		}
		prev = aux

		stack = stack[:size-1]
		if aux.Right() != nil {
			for aux = aux.Right(); aux != nil; aux = aux.Left() {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

// OwnershipViolationValidate asserts the single-owner shape: no node is
// reachable through two child slots and no child chain loops back onto
// an ancestor.
func OwnershipViolationValidate[K infra.OrderedKey, V any](tree BSTree[K, V]) error {
	root := tree.Root()
	if root == nil {
		return nil
	}

	seen := make(map[BSNode[K, V]]struct{}, 8)
	stack := []BSNode[K, V]{root}
	for len(stack) > 0 {
		aux := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, dup := seen[aux]; dup {
			return errors.New("bstree ownership violation")
		}
		seen[aux] = struct{}{}
		if l := aux.Left(); l != nil {
			stack = append(stack, l)
		}
		if r := aux.Right(); r != nil {
			stack = append(stack, r)
		}
	}
	return nil
}

// StructureValidate aggregates every structural check.
func StructureValidate[K infra.OrderedKey, V any](tree BSTree[K, V]) error {
	return multierr.Combine(
		OrderViolationValidate[K, V](tree),
		OwnershipViolationValidate[K, V](tree),
	)
}
