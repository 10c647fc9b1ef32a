package mrst

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Case is a key together with its payload.
type Case[K Word, V any] struct {
	Key K
	Val V
}

var errNoSubtree = errors.New("no subtree within the depth budget")

// BuildCases is Build for a list of cases.
func BuildCases[K Word, V any](cases []Case[K, V], strategies []Strategy[K], opts ...Option) (*Tree[K, V], error) {
	var (
		keys = make([]K, len(cases))
		vals = make([]V, len(cases))
	)

	for i, c := range cases {
		keys[i], vals[i] = c.Key, c.Val
	}

	return Build(keys, vals, strategies, opts...)
}

// Build constructs the shallowest tree the strategies allow that dispatches
// every keys[i] to vals[i]. At each node the strategies are tried in order and
// the first one yielding the minimal depth is kept.
//
// Build fails with ErrDuplicateCase when a key repeats and with
// ErrNoProductiveStrategy when the strategies cannot split some subset.
func Build[K Word, V any](keys []K, vals []V, strategies []Strategy[K], opts ...Option) (*Tree[K, V], error) {
	if len(keys) != len(vals) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrLengthMismatch, len(keys), len(vals))
	}

	if len(strategies) == 0 {
		return nil, fmt.Errorf("%w: empty strategy list", ErrNoProductiveStrategy)
	}

	if err := checkDuplicates(keys); err != nil {
		return nil, err
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		opt(&cfg)
	}

	b := &builder[K, V]{
		strategies: strategies,
		config:     cfg,
	}

	// every accepted discriminator shrinks all buckets, so n levels always suffice
	root := b.build(keys, vals, 0, max(len(keys), 1))
	if root == nil {
		return nil, fmt.Errorf("%w: %d cases, policy %v", ErrNoProductiveStrategy, len(keys), cfg.policy)
	}

	tree := &Tree[K, V]{
		root: root,
		miss: newDefault[K, V](),
		size: len(keys),
	}

	if e := cfg.log.Debug(); e.Enabled() {
		st := tree.Stats()
		e.Int("cases", st.Cases).
			Int("depth", st.Depth).
			Int("branches", st.Branches).
			Int("slots", st.Slots).
			Stringer("policy", cfg.policy).
			Msg("tree built")
	}

	return tree, nil
}

func checkDuplicates[K Word](keys []K) error {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)

	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return fmt.Errorf("%w: key %d", ErrDuplicateCase, sorted[i])
		}
	}

	return nil
}

type builder[K Word, V any] struct {
	strategies []Strategy[K]
	config
}

// build returns nil when no tree of at most limit levels exists.
func (b *builder[K, V]) build(keys []K, vals []V, depth, limit int) *Node[K, V] {
	switch {
	case limit < 1:
		return nil
	case len(keys) == 0:
		return newDefault[K, V]()
	case len(keys) == 1:
		return newLeaf(keys[0], vals[0])
	}

	var best *Node[K, V]

	for _, s := range b.strategies {
		budget := limit
		if best != nil {
			// a candidate has to be strictly shallower to replace the best one
			budget = min(limit, best.depth-1)
		}

		if budget < 2 {
			break
		}

		disc := s.Discriminator(keys)

		groups, ok := b.partition(s, disc, keys, depth)
		if !ok {
			continue
		}

		children := b.subtrees(groups, keys, vals, depth+1, budget-1)
		if children == nil {
			b.log.Trace().
				Str("strategy", s.Name()).
				Stringer("discriminator", disc).
				Int("cases", len(keys)).
				Int("depth", depth).
				Int("budget", budget).
				Msg("no subtree within budget")
			continue
		}

		best = newBranch(disc, children)

		b.log.Trace().
			Str("strategy", s.Name()).
			Stringer("discriminator", disc).
			Int("cases", len(keys)).
			Int("depth", depth).
			Int("height", best.depth).
			Msg("candidate")
	}

	return best
}

// partition groups key indices by bucket. It rejects a discriminator that is too
// wide for the policy, hashes a key out of range or makes no progress.
func (b *builder[K, V]) partition(s Strategy[K], disc Discriminator[K], keys []K, depth int) ([][]int, bool) {
	var (
		n    = len(keys)
		size = disc.Size()
	)

	reject := func(reason string) ([][]int, bool) {
		b.log.Trace().
			Str("strategy", s.Name()).
			Stringer("discriminator", disc).
			Uint64("buckets", size).
			Int("cases", n).
			Int("depth", depth).
			Msg(reason)
		return nil, false
	}

	if !b.policy.admits(size, n) {
		return reject("too many buckets")
	}

	groups := make([][]int, size)

	for i, key := range keys {
		idx := disc.Hash(key)
		if idx >= size {
			return reject("bucket out of range")
		}
		groups[idx] = append(groups[idx], i)
	}

	for _, group := range groups {
		if len(group) == n {
			return reject("no progress")
		}
	}

	return groups, true
}

// subtrees builds a child per group or returns nil if any of them fails.
func (b *builder[K, V]) subtrees(groups [][]int, keys []K, vals []V, depth, limit int) []*Node[K, V] {
	children := make([]*Node[K, V], len(groups))

	sub := func(i int) error {
		var (
			group = groups[i]
			ks    = make([]K, len(group))
			vs    = make([]V, len(group))
		)

		for j, idx := range group {
			ks[j], vs[j] = keys[idx], vals[idx]
		}

		if children[i] = b.build(ks, vs, depth, limit); children[i] == nil {
			return errNoSubtree
		}

		return nil
	}

	if depth <= b.parallelDepth {
		var eg errgroup.Group

		for i := range groups {
			i := i
			eg.Go(func() error { return sub(i) })
		}

		if eg.Wait() != nil {
			return nil
		}

		return children
	}

	for i := range groups {
		if sub(i) != nil {
			return nil
		}
	}

	return children
}
