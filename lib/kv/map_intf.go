package kv

import "github.com/benz9527/xtree/lib/infra"

type StoreKeyFilterFunc[K infra.OrderedKey] func(key K) bool

func defaultAllKeysFilter[K infra.OrderedKey](key K) bool {
	return true
}

// OrderedStorer is the contract shared by every ordered key-value
// backing store in this module, so call sites stay agnostic of the
// implementation behind it. Insert reports the value it displaced, Get
// reports absence, Foreach visits entries in ascending key order.
//
// Implementations carry no internal synchronization; callers own the
// locking discipline.
type OrderedStorer[K infra.OrderedKey, V any] interface {
	Insert(key K, val V) (old V, replaced bool)
	Get(key K) (item V, exists bool)
	Len() int64
	IsEmpty() bool
	Foreach(action func(idx int64, key K, val V) bool)
}
