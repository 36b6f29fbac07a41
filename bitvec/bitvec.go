package bitvec

import (
	"fmt"
	"sync/atomic"
)

// wordBits is the width, in bits, of a single storage word.
const wordBits = 64

// BitVec is a fixed-size vector of bits backed by a block of individually
// atomic 64-bit words. A BitVec may be read and written concurrently from
// many goroutines without external locking.
type BitVec struct {
	storage []atomic.Uint64
	nbits   int
}

// New returns a zero-initialized BitVec holding nbits bits.
// Complexity: O(nbits/64) time and memory.
func New(nbits int) *BitVec {
	if nbits < 0 {
		panic(fmt.Sprintf("bitvec.New: negative nbits %d", nbits))
	}

	blocks := nbits / wordBits
	if nbits%wordBits != 0 {
		blocks++
	}

	return &BitVec{storage: make([]atomic.Uint64, blocks), nbits: nbits}
}

// Len returns the total number of bits in this vector.
func (v *BitVec) Len() int { return v.nbits }

// full returns a BitSlice covering the entire vector.
func (v *BitVec) full() BitSlice {
	return BitSlice{storage: v.storage, startOffset: 0, nbits: v.nbits}
}

// Get returns the current value of bit i and whether i was in range.
// Uses an acquire load.
func (v *BitVec) Get(i int) (bool, bool) { return v.full().Get(i) }

// Set writes bit i to val. Panics if i is out of range.
// Implemented as a release compare-and-swap loop.
func (v *BitVec) Set(i int, val bool) { v.full().Set(i, val) }

// Swap atomically sets bit i to val and returns its previous value.
// Panics if i is out of range. Acquire-release ordering.
func (v *BitVec) Swap(i int, val bool) bool { return v.full().Swap(i, val) }

// Slice returns a non-owning view over the bits in [start, end).
// Panics if the range is invalid.
func (v *BitVec) Slice(start, end int) BitSlice { return v.full().Slice(start, end) }

// Iter returns an iterator over every bit, front to back.
func (v *BitVec) Iter() *Iterator { return v.full().Iter() }

// BitSlice is a non-owning view of a contiguous sub-range of a BitVec's
// storage, defined by (storage, start offset into the first word, nbits).
// Slices may be sliced further.
type BitSlice struct {
	storage     []atomic.Uint64
	startOffset int // bit offset into storage[0] where this slice begins
	nbits       int
}

// Len returns the number of bits in this slice.
func (s BitSlice) Len() int { return s.nbits }

// IsEmpty reports whether this slice has zero bits.
func (s BitSlice) IsEmpty() bool { return s.nbits == 0 }

// Get returns the current value of bit i within the slice, and whether i
// was in range.
func (s BitSlice) Get(i int) (bool, bool) {
	if i < 0 || i >= s.nbits {
		return false, false
	}

	idx := i + s.startOffset
	w, b := idx/wordBits, uint(idx%wordBits)

	word := s.storage[w].Load()
	return word&(uint64(1)<<b) != 0, true
}

// Set writes bit i within the slice to val. Panics if i is out of range.
func (s BitSlice) Set(i int, val bool) {
	if i < 0 || i >= s.nbits {
		panic(fmt.Sprintf("bitvec: index out of range: index is %d but len is %d", i, s.nbits))
	}

	idx := i + s.startOffset
	w, b := idx/wordBits, uint(idx%wordBits)
	flag := uint64(1) << b
	word := &s.storage[w]

	for {
		old := word.Load()
		next := old | flag
		if !val {
			next = old &^ flag
		}
		if old == next || word.CompareAndSwap(old, next) {
			return
		}
	}
}

// Swap atomically sets bit i within the slice to val and returns its
// previous value. Panics if i is out of range.
func (s BitSlice) Swap(i int, val bool) bool {
	if i < 0 || i >= s.nbits {
		panic(fmt.Sprintf("bitvec: index out of range: index is %d but len is %d", i, s.nbits))
	}

	idx := i + s.startOffset
	w, b := idx/wordBits, uint(idx%wordBits)
	flag := uint64(1) << b
	word := &s.storage[w]

	for {
		old := word.Load()
		next := old | flag
		if !val {
			next = old &^ flag
		}
		if word.CompareAndSwap(old, next) {
			return old&flag != 0
		}
	}
}

// Slice returns a further sub-view over [start, end) of this slice.
// Panics if the requested range is invalid.
func (s BitSlice) Slice(start, end int) BitSlice {
	if start < 0 || end > s.nbits || start > end {
		panic(fmt.Sprintf("bitvec: index out of range: index is %d..%d but len is %d", start, end, s.nbits))
	}

	actualStart := start + s.startOffset
	actualEnd := end + s.startOffset

	startWord := actualStart / wordBits
	endWord := actualEnd / wordBits
	if actualEnd%wordBits != 0 {
		endWord++
	}

	return BitSlice{
		storage:     s.storage[startWord:endWord],
		startOffset: actualStart % wordBits,
		nbits:       end - start,
	}
}

// Iter returns an iterator over every bit in the slice, front to back.
func (s BitSlice) Iter() *Iterator { return &Iterator{slice: s} }

// Iterator walks a BitSlice one bit at a time, front to back.
type Iterator struct {
	slice BitSlice
	pos   int
}

// Next returns the next bit's value, or ok=false once exhausted.
func (it *Iterator) Next() (val bool, ok bool) {
	if it.pos >= it.slice.nbits {
		return false, false
	}

	v, _ := it.slice.Get(it.pos)
	it.pos++

	return v, true
}
