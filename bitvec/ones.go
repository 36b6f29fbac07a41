package bitvec

import "math/bits"

// Ones returns a double-ended iterator over the indices (relative to the
// start of this slice) of every set bit. Next walks forward, NextBack
// walks backward; both may be interleaved and converge on the same
// underlying word set, matching the contract that the two views never
// report the same index twice.
//
// The words backing the slice are loaded once, at call time, via an
// acquire load; Ones does not observe concurrent writes that happen
// after it is constructed.
func (s BitSlice) Ones() *OnesIter {
	if s.nbits == 0 {
		return &OnesIter{lo: 0, hi: -1}
	}

	startWord := s.startOffset / wordBits // always 0 in practice; kept for clarity
	lastBit := s.startOffset + s.nbits - 1
	endWord := lastBit / wordBits

	words := make([]uint64, endWord-startWord+1)
	for i := range words {
		words[i] = s.storage[startWord+i].Load()
	}

	// Mask off bits before the slice's logical start in the first word.
	loShift := uint(s.startOffset % wordBits)
	words[0] &= ^uint64(0) << loShift

	// Mask off bits after the slice's logical end in the last word.
	if endBit := uint((s.startOffset + s.nbits) % wordBits); endBit != 0 {
		words[len(words)-1] &= (uint64(1) << endBit) - 1
	}

	return &OnesIter{
		words: words,
		lo:    0,
		hi:    len(words) - 1,
		base:  -s.startOffset,
	}
}

// OnesIter is a double-ended iterator over the set-bit positions of a
// BitSlice. The zero value is not usable; obtain one via BitSlice.Ones.
type OnesIter struct {
	words []uint64
	lo    int
	hi    int
	base  int
}

// Next returns the index of the next set bit, scanning forward, or
// ok=false once the forward and backward cursors have met.
//
// Finds the position of the lowest set bit of the current word by
// counting trailing zeros, then clears that bit with x & (x-1).
func (it *OnesIter) Next() (pos int, ok bool) {
	for it.lo <= it.hi {
		w := it.words[it.lo]
		if w == 0 {
			it.lo++
			continue
		}

		tz := bits.TrailingZeros64(w)
		it.words[it.lo] = w & (w - 1)

		return it.lo*wordBits + tz + it.base, true
	}

	return 0, false
}

// NextBack returns the index of the next set bit, scanning backward, or
// ok=false once the forward and backward cursors have met.
//
// Counts leading zeros to find the highest set bit's position, then
// clears it directly by position (no isolate-lowest trick applies in
// reverse).
func (it *OnesIter) NextBack() (pos int, ok bool) {
	for it.hi >= it.lo {
		w := it.words[it.hi]
		if w == 0 {
			it.hi--
			continue
		}

		lz := bits.LeadingZeros64(w)
		high := wordBits - 1 - lz
		it.words[it.hi] = w &^ (uint64(1) << uint(high))

		return it.hi*wordBits + high + it.base, true
	}

	return 0, false
}

// Collect drains the iterator forward into a slice. Mainly useful in
// tests; a long-lived hot path should call Next directly to avoid the
// allocation.
func (it *OnesIter) Collect() []int {
	var out []int
	for {
		p, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}

// CollectReverse drains the iterator backward into a slice.
func (it *OnesIter) CollectReverse() []int {
	var out []int
	for {
		p, ok := it.NextBack()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}
