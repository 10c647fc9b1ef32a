package mrst

import (
	"fmt"
	"strings"
)

// Discriminator maps a key to a bucket index of a Branch.
//
// Hash is defined for every key of K. Keys outside the subset a discriminator
// was calibrated on may hash to a value >= Size(); such a key has no case in
// the branch and dispatches to Default.
type Discriminator[K Word] interface {
	Hash(key K) uint64
	// Size returns the number of buckets, saturated at the largest uint64.
	Size() uint64
	// String describes the computation, e.g. "bits 5 to 3" or "clz(x) - 52".
	String() string
}

// Strategy manufactures a Discriminator tuned to a subset of keys.
// It is never asked to calibrate on fewer than two keys.
type Strategy[K Word] interface {
	Discriminator(keys []K) Discriminator[K]
	Name() string
}

// Strategy names accepted by StrategyByName.
const (
	NameShiftMask = "window"
	NameSubLow    = "sublow"
	NameClzSub    = "clz"
	NameCtz       = "ctz"
)

var strategyAliases = map[string]string{
	"window":    NameShiftMask,
	"shiftmask": NameShiftMask,
	"sublow":    NameSubLow,
	"low":       NameSubLow,
	"clz":       NameClzSub,
	"lzc":       NameClzSub,
	"ctz":       NameCtz,
	"tzc":       NameCtz,
}

// StrategyByName resolves a strategy by its name or alias (case-insensitive).
func StrategyByName[K Word](name string) (Strategy[K], error) {
	switch strategyAliases[strings.ToLower(strings.TrimSpace(name))] {
	case NameShiftMask:
		return ShiftMask[K]{}, nil
	case NameSubLow:
		return SubLow[K]{}, nil
	case NameClzSub:
		return ClzSub[K]{}, nil
	case NameCtz:
		return Ctz[K]{}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Strategies resolves an ordered list of strategy names.
func Strategies[K Word](names ...string) ([]Strategy[K], error) {
	list := make([]Strategy[K], 0, len(names))

	for _, name := range names {
		s, err := StrategyByName[K](name)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}

	return list, nil
}

// DefaultStrategies returns the window search followed by the leading-zero bias.
func DefaultStrategies[K Word]() []Strategy[K] {
	return []Strategy[K]{ShiftMask[K]{}, ClzSub[K]{}}
}
