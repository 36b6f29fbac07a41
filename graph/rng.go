package graph

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"
)

// newRNG returns a PRNG seeded from seed if hasSeed is true, otherwise
// from system entropy — the fallback the spec's seed sequence requires
// once the caller's seeds run out.
func newRNG(seed Seed, hasSeed bool) *mathrand.Rand {
	if hasSeed {
		return mathrand.New(mathrand.NewPCG(seed[0], seed[1]))
	}

	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand on a sane platform never fails; fall back to a
		// seed drawn from math/rand/v2's runtime-seeded global source
		// rather than propagating an error through
		// every generator signature for a case that won't happen.
		return mathrand.New(mathrand.NewPCG(mathrand.Uint64(), mathrand.Uint64()))
	}

	s1 := binary.LittleEndian.Uint64(buf[0:8])
	s2 := binary.LittleEndian.Uint64(buf[8:16])
	return mathrand.New(mathrand.NewPCG(s1, s2))
}
