package mrst

import (
	"fmt"
)

// LowBias subtracts the lowest key of a subset: hash(x) = x - Bias.
// Keys below Bias wrap around and land past the last bucket.
type LowBias[K Word] struct {
	Bias K
	Span uint64
}

func (d LowBias[K]) Hash(key K) uint64 { return uint64(key - d.Bias) }
func (d LowBias[K]) Size() uint64      { return d.Span }
func (d LowBias[K]) String() string    { return fmt.Sprintf("x - %d", d.Bias) }

// SubLow calibrates a LowBias; it suits densely packed key ranges.
type SubLow[K Word] struct{}

func (SubLow[K]) Discriminator(keys []K) Discriminator[K] {
	lo, hi := keys[0], keys[0]

	for _, key := range keys[1:] {
		lo = min(lo, key)
		hi = max(hi, key)
	}

	return LowBias[K]{Bias: lo, Span: span(uint64(lo), uint64(hi))}
}

func (SubLow[K]) Name() string { return NameSubLow }

// ClzBias groups keys by magnitude: hash(x) = clz(x) - Bias.
type ClzBias[K Word] struct {
	Bias    uint8
	Buckets uint8
}

func (d ClzBias[K]) Hash(key K) uint64 {
	return uint64(leadingZeros(key)) - uint64(d.Bias) // wraps for keys wider than any in the subset
}

func (d ClzBias[K]) Size() uint64   { return uint64(d.Buckets) }
func (d ClzBias[K]) String() string { return fmt.Sprintf("clz(x) - %d", d.Bias) }

// ClzSub calibrates a ClzBias.
type ClzSub[K Word] struct{}

func (ClzSub[K]) Discriminator(keys []K) Discriminator[K] {
	lo, hi := leadingZeros(keys[0]), leadingZeros(keys[0])

	for _, key := range keys[1:] {
		lz := leadingZeros(key)
		lo = min(lo, lz)
		hi = max(hi, lz)
	}

	return ClzBias[K]{Bias: uint8(lo), Buckets: uint8(hi - lo + 1)}
}

func (ClzSub[K]) Name() string { return NameClzSub }

// TrailingZeros buckets keys by their lowest set bit: hash(x) = ctz(x).
// Zero has as many trailing zeros as K has bits.
type TrailingZeros[K Word] struct {
	Buckets uint8
}

func (d TrailingZeros[K]) Hash(key K) uint64 { return uint64(trailingZeros(key)) }
func (d TrailingZeros[K]) Size() uint64      { return uint64(d.Buckets) }
func (d TrailingZeros[K]) String() string    { return "ctz(x)" }

// Ctz calibrates a TrailingZeros; it suits flag-like keys.
type Ctz[K Word] struct{}

func (Ctz[K]) Discriminator(keys []K) Discriminator[K] {
	hi := 0

	for _, key := range keys {
		hi = max(hi, trailingZeros(key))
	}

	return TrailingZeros[K]{Buckets: uint8(hi + 1)}
}

func (Ctz[K]) Name() string { return NameCtz }
