package mrst

import (
	"slices"

	"github.com/hideo55/go-popcount"
)

const (
	wordShift = 6                // 2**6 == 64 bits per bitmap word
	wordMask  = 1<<wordShift - 1 // the lowest 6 bits

	// denseLimit is the largest bucket count counted with a bitmap (8 KiB).
	denseLimit = 1 << 16
)

// bucketSet is a bitmap of occupied buckets.
type bucketSet []uint64

func newBucketSet(size uint64) bucketSet {
	return make(bucketSet, (size+wordMask)>>wordShift)
}

func (s bucketSet) add(idx uint64) {
	s[idx>>wordShift] |= 1 << (idx & wordMask)
}

func (s bucketSet) count() uint64 {
	var cnt uint64

	for _, bmp := range s {
		cnt += popcount.Count(bmp)
	}

	return cnt
}

// MappedCardinality returns the number of distinct buckets d maps the keys to.
// The higher it is, the fewer collisions d produces on the keys.
func MappedCardinality[K Word](keys []K, d Discriminator[K]) uint64 {
	if size := d.Size(); size <= denseLimit {
		set := newBucketSet(size)

		for _, key := range keys {
			idx := d.Hash(key)
			if idx >= size {
				return sparseCardinality(keys, d)
			}
			set.add(idx)
		}

		return set.count()
	}

	return sparseCardinality(keys, d)
}

func sparseCardinality[K Word](keys []K, d Discriminator[K]) uint64 {
	hashes := make([]uint64, len(keys))

	for i, key := range keys {
		hashes[i] = d.Hash(key)
	}

	slices.Sort(hashes)

	return uint64(len(slices.Compact(hashes)))
}
