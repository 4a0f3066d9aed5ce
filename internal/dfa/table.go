package dfa

import (
	"encoding/binary"

	"github.com/dchest/siphash"
	"golang.org/x/exp/slices"
)

const (
	tableK0 = 0x736f6d6570736575
	tableK1 = 0x646f72616e646f6d
)

// stateTable numbers composite states (NFA subsets or state pairs) in the
// order they are first seen.
type stateTable struct {
	buf     []byte
	buckets map[uint64][]tableEntry
	count   int
}

type tableEntry struct {
	key []int
	id  int
}

func newStateTable() *stateTable {
	return &stateTable{buckets: make(map[uint64][]tableEntry)}
}

// intern returns the id of key, assigning the next free one if key is new.
// key is copied, so callers may reuse it.
func (t *stateTable) intern(key []int) (id int, added bool) {
	t.buf = t.buf[:0]
	for _, v := range key {
		t.buf = binary.LittleEndian.AppendUint64(t.buf, uint64(v))
	}
	h := siphash.Hash(tableK0, tableK1, t.buf)
	for _, e := range t.buckets[h] {
		if slices.Equal(e.key, key) {
			return e.id, false
		}
	}
	id = t.count
	t.count++
	t.buckets[h] = append(t.buckets[h], tableEntry{key: slices.Clone(key), id: id})
	return id, true
}
