package mrst

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Word is the set of key types a tree can dispatch on.
type Word = constraints.Unsigned

const maxWordWidth = 64

// WordWidth returns the number of bits in K.
func WordWidth[K Word]() int {
	return bits.Len64(uint64(^K(0)))
}

// leadingZeros counts leading zero bits of key within the width of K.
// A zero key has WordWidth[K]() leading zeros.
func leadingZeros[K Word](key K) int {
	return bits.LeadingZeros64(uint64(key)) - (maxWordWidth - WordWidth[K]())
}

// trailingZeros counts trailing zero bits of key within the width of K.
// A zero key has WordWidth[K]() trailing zeros.
func trailingZeros[K Word](key K) int {
	if key == 0 {
		return WordWidth[K]()
	}

	return bits.TrailingZeros64(uint64(key))
}

// span returns hi - lo + 1 saturated at the largest uint64.
func span(lo, hi uint64) uint64 {
	if d := hi - lo; d != ^uint64(0) {
		return d + 1
	}

	return ^uint64(0)
}
