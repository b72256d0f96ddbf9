package kv

import (
	"sort"

	"github.com/samber/lo"

	"github.com/benz9527/xtree/lib/infra"
)

type sortedMapEntry[K infra.OrderedKey, V any] struct {
	key K
	val V
}

// SortedMap is an ordered key-value store over a single sorted slice:
// binary-search lookups, O(n) shifting inserts for new keys. It trades
// per-entry pointers for locality, which makes it the usual counterpart
// to a tree-backed store behind the same OrderedStorer contract.
type SortedMap[K infra.OrderedKey, V any] struct {
	entries []sortedMapEntry[K, V]
}

func NewSortedMap[K infra.OrderedKey, V any]() *SortedMap[K, V] {
	return &SortedMap[K, V]{entries: make([]sortedMapEntry[K, V], 0, 8)}
}

// SortedMapWith creates a map holding a single entry.
func SortedMapWith[K infra.OrderedKey, V any](key K, val V) *SortedMap[K, V] {
	m := NewSortedMap[K, V]()
	m.Insert(key, val)
	return m
}

// search locates key's slot: the index holding it, or the index a new
// entry must be shifted into.
func (m *SortedMap[K, V]) search(key K) (int, bool) {
	idx := sort.Search(len(m.entries), func(i int) bool {
		return infra.CompareKey(m.entries[i].key, key) >= 0
	})
	return idx, idx < len(m.entries) && m.entries[idx].key == key
}

func (m *SortedMap[K, V]) Insert(key K, val V) (old V, replaced bool) {
	idx, exists := m.search(key)
	if exists {
		old, m.entries[idx].val = m.entries[idx].val, val
		return old, true
	}
	m.entries = append(m.entries, sortedMapEntry[K, V]{})
	copy(m.entries[idx+1:], m.entries[idx:])
	m.entries[idx] = sortedMapEntry[K, V]{key: key, val: val}
	return old, false
}

func (m *SortedMap[K, V]) Get(key K) (item V, exists bool) {
	idx, found := m.search(key)
	if !found {
		return item, false
	}
	return m.entries[idx].val, true
}

func (m *SortedMap[K, V]) Len() int64 {
	return int64(len(m.entries))
}

func (m *SortedMap[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

// Foreach visits entries in ascending key order, early stop on false.
func (m *SortedMap[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	for i, e := range m.entries {
		if !action(int64(i), e.key, e.val) {
			return
		}
	}
}

func (m *SortedMap[K, V]) ListKeys(filters ...StoreKeyFilterFunc[K]) []K {
	realFilters := make([]StoreKeyFilterFunc[K], 0, len(filters))
	for _, filter := range filters {
		if filter != nil {
			realFilters = append(realFilters, filter)
		}
	}
	if len(realFilters) == 0 {
		realFilters = append(realFilters, defaultAllKeysFilter[K])
	}

	keys := make([]K, 0, len(m.entries))
	for _, e := range m.entries {
		for _, filter := range realFilters {
			if filter(e.key) {
				keys = append(keys, e.key)
				break
			}
		}
	}
	return keys
}

func (m *SortedMap[K, V]) ListValues(keys ...K) (items []V) {
	if len(keys) == 0 {
		return lo.Map(m.entries, func(e sortedMapEntry[K, V], _ int) V {
			return e.val
		})
	}
	items = make([]V, 0, len(keys))
	for _, key := range keys {
		if idx, exists := m.search(key); exists {
			items = append(items, m.entries[idx].val)
		}
	}
	return items
}
