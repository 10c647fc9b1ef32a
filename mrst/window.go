package mrst

import (
	"fmt"
)

// Window extracts the inclusive bit range [R, L] of a key:
//
//	hash(x) = (x >> R) & (1<<(L-R+1) - 1)
type Window[K Word] struct {
	L, R uint8
}

// NewWindow validates the bounds against the width of K.
func NewWindow[K Word](l, r int) (Window[K], error) {
	if r < 0 || r > l || l >= WordWidth[K]() {
		return Window[K]{}, fmt.Errorf("%w: [%d, %d] for a %d-bit word", ErrBadWindow, l, r, WordWidth[K]())
	}

	return Window[K]{L: uint8(l), R: uint8(r)}, nil
}

// MustWindow is like NewWindow but panics on bad bounds.
func MustWindow[K Word](l, r int) Window[K] {
	w, err := NewWindow[K](l, r)
	if err != nil {
		panic(err)
	}

	return w
}

// Width returns the number of extracted bits.
func (w Window[K]) Width() int {
	return int(w.L) - int(w.R) + 1
}

func (w Window[K]) Hash(key K) uint64 {
	mask := uint64(1)<<w.Width() - 1 // all ones for a 64-bit window

	return (uint64(key) >> w.R) & mask
}

func (w Window[K]) Size() uint64 {
	if width := w.Width(); width < maxWordWidth {
		return uint64(1) << width
	}

	return ^uint64(0)
}

func (w Window[K]) String() string {
	if w.L == w.R {
		return fmt.Sprintf("bit %d", w.L)
	}

	return fmt.Sprintf("bits %d to %d", w.L, w.R)
}

// IsCritical reports whether the window maps the keys to more than half of its
// buckets.
func (w Window[K]) IsCritical(keys []K) bool {
	threshold := uint64(1) << (w.L - w.R)

	return MappedCardinality[K](keys, w) > threshold
}

// CriticalWindow finds the longest critical window for the keys and, among the
// windows of that length, the one with the most distinct bucket values.
//
// The right edge scans from the most significant bit down to bit 0. A critical
// window grows by one bit; otherwise its left edge slides down and the narrower
// window replaces the best one only if it spreads the keys strictly better.
func CriticalWindow[K Word](keys []K) Window[K] {
	var (
		width    = WordWidth[K]()
		l        = width - 1
		best     = Window[K]{L: uint8(l), R: uint8(l)}
		bestCard = MappedCardinality[K](keys, best)
	)

	for r := width - 1; r >= 0; r-- {
		w := Window[K]{L: uint8(l), R: uint8(r)}

		card := MappedCardinality[K](keys, w)
		if card > uint64(1)<<(l-r) {
			best, bestCard = w, card
			continue
		}

		l--

		if l < r {
			// an empty window maps everything to a single value
			continue
		}

		w.L = uint8(l)

		if card = MappedCardinality[K](keys, w); card > bestCard {
			best, bestCard = w, card
		}
	}

	return best
}

// ShiftMask is the critical-window Strategy.
type ShiftMask[K Word] struct{}

func (ShiftMask[K]) Discriminator(keys []K) Discriminator[K] {
	return CriticalWindow(keys)
}

func (ShiftMask[K]) Name() string { return NameShiftMask }
