package mrst

import (
	"fmt"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

// scenarioCases dispatches a dozen sparse keys to four functions.
var scenarioCases = []Case[uint64, string]{
	{8, "function 1"},
	{16, "function 1"},
	{33, "function 1"},
	{37, "function 1"},
	{41, "function 1"},
	{60, "function 1"},

	{144, "function 2"},
	{264, "function 2"},
	{291, "function 2"},

	{1032, "function 3"},

	{2048, "function 4"},
	{2082, "function 4"},
}

func dumpTree[K Word, V any](t testing.TB, tree *Tree[K, V]) string {
	t.Helper()

	var b strings.Builder

	require.NoError(t, tree.Dump(&b, nil))

	return b.String()
}

// fakeKeys returns up to total distinct keys; bits limits their magnitude.
func fakeKeys(fake *gofakeit.Faker, total, bits int) []uint64 {
	var (
		seen = make(map[uint64]struct{}, total)
		keys = make([]uint64, 0, total)
	)

	for i := 0; i < total; i++ {
		key := fake.Uint64()
		if bits < 64 {
			key &= 1<<bits - 1
		}

		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	return keys
}

func fakeCases(fake *gofakeit.Faker, total, bits int) []Case[uint64, string] {
	keys := fakeKeys(fake, total, bits)
	cases := make([]Case[uint64, string], len(keys))

	for i, key := range keys {
		cases[i] = Case[uint64, string]{key, fake.Name()}
	}

	return cases
}

// uint64ToBitString renders the lowest n bits of a value, most significant first.
func uint64ToBitString(val uint64, n int) string {
	return fmt.Sprintf("%0*b", n, val&(1<<n-1))
}

// spyStrategy records how often it is asked for a discriminator.
type spyStrategy[K Word] struct {
	Strategy[K]
	calls *int
}

func (s spyStrategy[K]) Discriminator(keys []K) Discriminator[K] {
	*s.calls++
	return s.Strategy.Discriminator(keys)
}

// stallStrategy maps every key into a single bucket.
type stallStrategy[K Word] struct{}

func (stallStrategy[K]) Discriminator([]K) Discriminator[K] { return TrailingZeros[K]{Buckets: 1} }
func (stallStrategy[K]) Name() string                       { return "stall" }

// reference is an unpruned search used to cross-check Build.
func reference[K Word, V any](keys []K, vals []V, strategies []Strategy[K], policy Policy) *Node[K, V] {
	switch len(keys) {
	case 0:
		return newDefault[K, V]()
	case 1:
		return newLeaf(keys[0], vals[0])
	}

	var best *Node[K, V]

Strategies:
	for _, s := range strategies {
		disc := s.Discriminator(keys)
		size := disc.Size()

		if !policy.admits(size, len(keys)) {
			continue
		}

		var (
			ks = make([][]K, size)
			vs = make([][]V, size)
		)

		for i, key := range keys {
			idx := disc.Hash(key)
			ks[idx] = append(ks[idx], key)
			vs[idx] = append(vs[idx], vals[i])
		}

		children := make([]*Node[K, V], size)

		for i := range children {
			if len(ks[i]) == len(keys) {
				continue Strategies
			}
			if children[i] = reference(ks[i], vs[i], strategies, policy); children[i] == nil {
				continue Strategies
			}
		}

		if node := newBranch(disc, children); best == nil || node.depth < best.depth {
			best = node
		}
	}

	return best
}
