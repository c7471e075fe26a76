package gutter

import "math/bits"

func BitLength64(num uint64) uint64 { return uint64(bits.Len64(num)) }

// Log2Uint64 efficiently computes log base 2 of num
func Log2Uint64(num uint64) uint64 {
	return uint64(bits.Len64(num) - 1)
}
