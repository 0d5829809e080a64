package minhash

import (
	"encoding/binary"
	"math/bits"
)

// Lookup3 by Bob Jenkins, 2006. Public domain.

func rot(x uint32, k int) uint32 {
	return bits.RotateLeft32(x, k)
}

func mix(a, b, c uint32) (uint32, uint32, uint32) {
	a -= c
	a ^= rot(c, 4)
	c += b
	b -= a
	b ^= rot(a, 6)
	a += c
	c -= b
	c ^= rot(b, 8)
	b += a
	a -= c
	a ^= rot(c, 16)
	c += b
	b -= a
	b ^= rot(a, 19)
	a += c
	c -= b
	c ^= rot(b, 4)
	b += a
	return a, b, c
}

func final(a, b, c uint32) (uint32, uint32, uint32) {
	c ^= b
	c -= rot(b, 14)
	a ^= c
	a -= rot(c, 11)
	b ^= a
	b -= rot(a, 25)
	c ^= b
	c -= rot(b, 16)
	a ^= c
	a -= rot(c, 4)
	b ^= a
	b -= rot(a, 14)
	c ^= b
	c -= rot(b, 24)
	return a, b, c
}

// HashLittle2 returns two 32-bit hashes of data (primary, secondary).
// initval and initval2 seed the accumulators.
func HashLittle2(data []byte, initval, initval2 uint32) (uint32, uint32) {
	a := 0xdeadbeef + uint32(len(data)) + initval
	b, c := a, a
	c += initval2

	for len(data) > 12 {
		a += binary.LittleEndian.Uint32(data[0:4])
		b += binary.LittleEndian.Uint32(data[4:8])
		c += binary.LittleEndian.Uint32(data[8:12])
		a, b, c = mix(a, b, c)
		data = data[12:]
	}

	if len(data) == 0 {
		return c, b
	}

	// Zero padding reproduces the byte-wise tail switch.
	var tail [12]byte
	copy(tail[:], data)
	a += binary.LittleEndian.Uint32(tail[0:4])
	b += binary.LittleEndian.Uint32(tail[4:8])
	c += binary.LittleEndian.Uint32(tail[8:12])

	a, b, c = final(a, b, c)
	return c, b
}

// HashLittle returns the 32-bit lookup3 hash of data seeded with initval.
func HashLittle(data []byte, initval uint32) uint32 {
	c, _ := HashLittle2(data, initval, 0)
	return c
}
