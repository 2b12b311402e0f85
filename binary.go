package orrery

import "math/bits"

// Digits returns the binary digits of n, most significant first. Zero is encoded as a single 0 digit.
func Digits(n uint64) []uint8 {
	if n == 0 {
		return []uint8{0}
	}
	ds := make([]uint8, bits.Len64(n))
	for i := len(ds) - 1; 0 <= i; i-- {
		ds[i] = uint8(n & 1)
		n >>= 1
	}
	return ds
}

// Reversed returns a reversed copy of ds.
func Reversed(ds []uint8) []uint8 {
	rs := make([]uint8, len(ds))
	for i, d := range ds {
		rs[len(ds)-1-i] = d
	}
	return rs
}
