package mrst

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Policy bounds the bucket count of a discriminator relative to the size of the
// subset it was calibrated on. A discriminator that routes the whole subset into
// a single bucket is rejected under every policy.
type Policy uint8

const (
	// SubsetBound rejects discriminators with more buckets than keys.
	SubsetBound Policy = iota
	// CriticalBound rejects discriminators with 2*keys buckets or more, which
	// admits every critical window.
	CriticalBound
)

func (p Policy) String() string {
	switch p {
	case SubsetBound:
		return "subset"
	case CriticalBound:
		return "critical"
	}

	return "policy(" + fmt.Sprint(uint8(p)) + ")"
}

// ParsePolicy accepts "subset" and "critical"; an empty string is SubsetBound.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "subset":
		return SubsetBound, nil
	case "critical":
		return CriticalBound, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// admits reports whether a discriminator with the given bucket count may serve
// a subset of n keys.
func (p Policy) admits(buckets uint64, n int) bool {
	if p == CriticalBound {
		return buckets < 2*uint64(n)
	}

	return buckets <= uint64(n)
}

type config struct {
	log           zerolog.Logger
	policy        Policy
	parallelDepth int
}

func defaultConfig() config {
	return config{
		log:    zerolog.Nop(),
		policy: SubsetBound,
	}
}

// Option configures Build.
type Option func(*config)

// WithLogger traces strategy selection: a debug event per build and trace
// events per node.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) { c.log = log }
}

func WithPolicy(p Policy) Option {
	return func(c *config) { c.policy = p }
}

// WithParallelDepth builds sibling subtrees concurrently on the top levels of
// the tree. The result does not depend on the setting.
func WithParallelDepth(levels int) Option {
	return func(c *config) { c.parallelDepth = max(levels, 0) }
}
