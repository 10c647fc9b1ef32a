// Package casefile loads dispatch cases from YAML.
//
//	width: 64
//	strategies: [window, clz]
//	policy: subset
//	cases:
//	  - label: function 1
//	    keys: [8, 16, 0x21, 0b100101]
package casefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/aglyzov/go-mrst/mrst"
)

var (
	ErrWidth    = errors.New("unsupported key width")
	ErrKeyRange = errors.New("key does not fit the key width")
	ErrBadKey   = errors.New("malformed key")
)

// DefaultWidth applies when a file does not set one.
const DefaultWidth = 64

// Key is an unsigned key written in decimal or with a 0x, 0b or 0o prefix.
type Key uint64

// ParseKey parses a key the way Key does in a case file.
func ParseKey(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrBadKey, s, err)
	}

	return v, nil
}

func (k *Key) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w at line %d: not a scalar", ErrBadKey, node.Line)
	}

	v, err := ParseKey(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*k = Key(v)

	return nil
}

// Group maps a set of keys to one label.
type Group struct {
	Label string `yaml:"label"`
	Keys  []Key  `yaml:"keys"`
}

type File struct {
	Width      int      `yaml:"width"`
	Strategies []string `yaml:"strategies"`
	Policy     string   `yaml:"policy"`
	Cases      []Group  `yaml:"cases"`
}

// Load reads and validates a case file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes a case file; unknown fields are rejected.
func Parse(r io.Reader) (*File, error) {
	var f File

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if f.Width == 0 {
		f.Width = DefaultWidth
	}

	if err := f.validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

func (f *File) validate() error {
	switch f.Width {
	case 8, 16, 32, 64:
	default:
		return fmt.Errorf("%w: %d", ErrWidth, f.Width)
	}

	if _, err := mrst.ParsePolicy(f.Policy); err != nil {
		return err
	}

	for _, name := range f.Strategies {
		if _, err := mrst.StrategyByName[uint64](name); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the total number of keys.
func (f *File) Len() int {
	n := 0

	for _, g := range f.Cases {
		n += len(g.Keys)
	}

	return n
}

// Cases flattens the groups into cases in file order.
func Cases[K mrst.Word](f *File) ([]mrst.Case[K, string], error) {
	var (
		limit = uint64(^K(0))
		cases = make([]mrst.Case[K, string], 0, f.Len())
	)

	for _, g := range f.Cases {
		for _, key := range g.Keys {
			if uint64(key) > limit {
				return nil, fmt.Errorf("%w: %d > %d (%q)", ErrKeyRange, uint64(key), limit, g.Label)
			}

			cases = append(cases, mrst.Case[K, string]{Key: K(key), Val: g.Label})
		}
	}

	return cases, nil
}

// Strategies resolves the strategy names; an empty list means the default pair.
func Strategies[K mrst.Word](f *File) ([]mrst.Strategy[K], error) {
	if len(f.Strategies) == 0 {
		return mrst.DefaultStrategies[K](), nil
	}

	return mrst.Strategies[K](f.Strategies...)
}

func (f *File) BuildPolicy() mrst.Policy {
	p, _ := mrst.ParsePolicy(f.Policy) // checked by validate

	return p
}
