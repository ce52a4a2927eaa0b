// Package indexmap provides an ordered association of unique uint32 indices
// with values of an arbitrary element type, along with its binary codec: an
// entry count followed by (index, element) pairs in strictly ascending index
// order.
package indexmap

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/wasmkit/namesec/leb128"
)

// ErrOutOfOrderKey is returned when decoded entries are not in strictly
// ascending, unique index order.
var ErrOutOfOrderKey = errors.New("entry indices are not in strictly ascending order")

// Entry associates an index with its value.
type Entry[V any] struct {
	Index uint32
	Value V
}

// Map associates unique uint32 indices with values of type V. Iteration and
// serialization order is ascending by index. The zero value is an empty map
// ready for use.
type Map[V any] struct {
	entries []Entry[V]
}

// Insert sets the value for the given index, replacing any existing value.
func (m *Map[V]) Insert(index uint32, value V) {
	i := m.search(index)
	if i < len(m.entries) && m.entries[i].Index == index {
		m.entries[i].Value = value
		return
	}
	m.entries = append(m.entries, Entry[V]{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = Entry[V]{Index: index, Value: value}
}

// Get returns the value for the given index, and whether it is present.
func (m *Map[V]) Get(index uint32) (value V, ok bool) {
	if i := m.search(index); i < len(m.entries) && m.entries[i].Index == index {
		return m.entries[i].Value, true
	}
	return
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.entries)
}

// Entries returns the entries in ascending index order.
//
// Note: This is the map's backing storage, not a copy.
func (m *Map[V]) Entries() []Entry[V] {
	return m.entries
}

func (m *Map[V]) search(index uint32) int {
	return sort.Search(len(m.entries), func(i int) bool { return m.entries[i].Index >= index })
}

// Decode reads a map in its binary form, using decodeElem to read each
// element. It fails with ErrOutOfOrderKey when indices are not strictly
// ascending (which also covers duplicates), and propagates element and I/O
// errors wrapped with the failing entry.
func Decode[V any](r io.Reader, decodeElem func(io.Reader) (V, error)) (Map[V], error) {
	count, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return Map[V]{}, fmt.Errorf("failed to read the entry count: %w", err)
	}

	var m Map[V]
	for i := uint32(0); i < count; i++ {
		index, _, err := leb128.DecodeUint32(r)
		if err != nil {
			return Map[V]{}, fmt.Errorf("failed to read the index of entry[%d]: %w", i, err)
		}
		if i > 0 && index <= m.entries[i-1].Index {
			return Map[V]{}, fmt.Errorf("entry[%d] index %d: %w", i, index, ErrOutOfOrderKey)
		}
		value, err := decodeElem(r)
		if err != nil {
			return Map[V]{}, fmt.Errorf("failed to read the value of entry[%d]: %w", i, err)
		}
		m.entries = append(m.entries, Entry[V]{Index: index, Value: value})
	}
	return m, nil
}

// Encode writes the map in its binary form, using encodeElem to write each
// element. Entries encode in ascending index order.
func Encode[V any](m Map[V], encodeElem func(V) []byte) []byte {
	data := leb128.EncodeUint32(uint32(len(m.entries)))
	for _, e := range m.entries {
		data = append(data, leb128.EncodeUint32(e.Index)...)
		data = append(data, encodeElem(e.Value)...)
	}
	return data
}
