// Package orderedmap provides a map that remembers insertion order.
package orderedmap

import (
	"iter"
	"slices"
)

type Map[K comparable, V any] struct {
	entries []K
	values  map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		values: make(map[K]V),
	}
}

// Set stores value under key. An existing key keeps its original
// position; a new key is appended.
func (m *Map[K, V]) Set(key K, value V) {
	if _, exists := m.values[key]; !exists {
		m.entries = append(m.entries, key)
	}
	m.values[key] = value
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key, reporting whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	if _, exists := m.values[key]; !exists {
		return false
	}
	delete(m.values, key)
	if i := slices.Index(m.entries, key); i >= 0 {
		m.entries = slices.Delete(m.entries, i, i+1)
	}
	return true
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	return slices.Clone(m.entries)
}

// Clone returns a shallow copy: keys and values are copied, so for
// value types the clone is fully independent.
func (m *Map[K, V]) Clone() *Map[K, V] {
	clone := &Map[K, V]{
		entries: slices.Clone(m.entries),
		values:  make(map[K]V, len(m.values)),
	}
	for k, v := range m.values {
		clone.values[k] = v
	}
	return clone
}

// Range iterates over the entries in insertion order.
func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.entries {
			if !yield(k, m.values[k]) {
				break
			}
		}
	}
}
