package bitvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pardfs/bitvec"
)

// TestOnesSliceWorkedExample exercises the worked example: a 100-bit
// vector with bits {1,2,31,32,33,63,64,65} set. slice(2,64).ones() must
// yield [0,29,30,31,61] forward, and the reverse of that backward.
func TestOnesSliceWorkedExample(t *testing.T) {
	v := bitvec.New(100)
	for _, b := range []int{1, 2, 31, 32, 33, 63, 64, 65} {
		v.Set(b, true)
	}

	s := v.Slice(2, 64)
	require.Equal(t, 62, s.Len())

	forward := s.Ones().Collect()
	assert.Equal(t, []int{0, 29, 30, 31, 61}, forward)

	backward := s.Ones().CollectReverse()
	assert.Equal(t, []int{61, 31, 30, 29, 0}, backward)
}

func TestOnesEmptySlice(t *testing.T) {
	v := bitvec.New(10)
	v.Set(3, true)

	s := v.Slice(4, 4)
	require.Equal(t, 0, s.Len())

	assert.Empty(t, s.Ones().Collect())
	assert.Empty(t, s.Ones().CollectReverse())
}

func TestOnesNoneSet(t *testing.T) {
	v := bitvec.New(200)
	assert.Empty(t, v.Slice(0, 200).Ones().Collect())
}

func TestOnesAllSet(t *testing.T) {
	v := bitvec.New(130)
	for i := 0; i < v.Len(); i++ {
		v.Set(i, true)
	}

	got := v.Slice(0, 130).Ones().Collect()
	require.Len(t, got, 130)
	for i, p := range got {
		assert.Equal(t, i, p)
	}
}

func TestOnesCrossesMultipleWords(t *testing.T) {
	v := bitvec.New(300)
	want := []int{0, 5, 63, 64, 127, 128, 200, 299}
	for _, b := range want {
		v.Set(b, true)
	}

	got := v.Slice(0, 300).Ones().Collect()
	assert.Equal(t, want, got)

	reversed := make([]int, len(want))
	for i, p := range want {
		reversed[len(want)-1-i] = p
	}
	assert.Equal(t, reversed, v.Slice(0, 300).Ones().CollectReverse())
}

func TestOnesInterleavedNextAndNextBack(t *testing.T) {
	v := bitvec.New(10)
	for _, b := range []int{1, 2, 3, 4, 5, 6, 7, 8} {
		v.Set(b, true)
	}

	it := v.Slice(0, 10).Ones()

	front, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 1, front)

	back, ok := it.NextBack()
	require.True(t, ok)
	assert.Equal(t, 8, back)

	var rest []int
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		rest = append(rest, p)
	}
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7}, rest)
}
