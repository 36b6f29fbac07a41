package ownermap

import (
	"fmt"
	"math"
	"sync/atomic"
)

// unclaimed marks a cell that has not yet been claimed by any root.
const unclaimed = math.MaxUint32

// Map is a fixed-size array of lock-free ownership cells, one per
// vertex. Claim is the only mutating operation; ownership is permanent
// once established.
type Map struct {
	cells []atomic.Uint32
}

// NewMap returns a Map with n cells, all initially unclaimed.
// Complexity: O(n) time and memory.
func NewMap(n int) *Map {
	if n < 0 {
		panic(fmt.Sprintf("ownermap.NewMap: negative size %d", n))
	}

	cells := make([]atomic.Uint32, n)
	for i := range cells {
		cells[i].Store(unclaimed)
	}

	return &Map{cells: cells}
}

// Len returns the number of vertices this map covers.
func (m *Map) Len() int { return len(m.cells) }

// Claim attempts to assign vertex v to root. It returns true exactly
// once per vertex, for whichever caller's compare-and-swap wins the
// race; every other caller (including repeat calls by the same root)
// returns false. Panics if v or root is out of range.
func (m *Map) Claim(v, root int) bool {
	m.checkVertex(v)
	if root < 0 || root >= unclaimed {
		panic(fmt.Sprintf("ownermap.Claim: root out of range: %d", root))
	}

	return m.cells[v].CompareAndSwap(unclaimed, uint32(root))
}

// Owner returns the root that owns vertex v, and whether v has been
// claimed at all. Panics if v is out of range.
func (m *Map) Owner(v int) (root int, claimed bool) {
	m.checkVertex(v)

	val := m.cells[v].Load()
	if val == unclaimed {
		return 0, false
	}

	return int(val), true
}

func (m *Map) checkVertex(v int) {
	if v < 0 || v >= len(m.cells) {
		panic(fmt.Sprintf("ownermap: vertex out of range: index is %d but len is %d", v, len(m.cells)))
	}
}
