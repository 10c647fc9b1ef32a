package mrst

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// MarkerKind tells a case leaf from a default one.
type MarkerKind uint8

const (
	MarkerDefault MarkerKind = iota
	MarkerCase
)

func (k MarkerKind) String() string {
	if k == MarkerCase {
		return "Case"
	}

	return "Default"
}

// Marker is the payload of a leaf.
type Marker[K Word, V any] struct {
	Kind MarkerKind
	Key  K
	Val  V
}

// Node is either a Branch or a Leaf. Nodes are immutable once built.
type Node[K Word, V any] struct {
	disc     Discriminator[K] // nil for leaves
	children []*Node[K, V]
	marker   Marker[K, V]
	depth    int
}

func newLeaf[K Word, V any](key K, val V) *Node[K, V] {
	return &Node[K, V]{
		marker: Marker[K, V]{Kind: MarkerCase, Key: key, Val: val},
		depth:  1,
	}
}

func newDefault[K Word, V any]() *Node[K, V] {
	return &Node[K, V]{depth: 1}
}

func newBranch[K Word, V any](disc Discriminator[K], children []*Node[K, V]) *Node[K, V] {
	depth := 0

	for _, child := range children {
		depth = max(depth, child.depth)
	}

	return &Node[K, V]{
		disc:     disc,
		children: children,
		depth:    depth + 1,
	}
}

func (n *Node[K, V]) IsLeaf() bool {
	return n.disc == nil
}

func (n *Node[K, V]) IsBranch() bool {
	return n.disc != nil
}

// Marker returns the leaf marker; it is a Default marker for branches.
func (n *Node[K, V]) Marker() Marker[K, V] {
	return n.marker
}

// Discriminator returns nil for leaves.
func (n *Node[K, V]) Discriminator() Discriminator[K] {
	return n.disc
}

// Len returns the number of children (the bucket count of a branch).
func (n *Node[K, V]) Len() int {
	return len(n.children)
}

func (n *Node[K, V]) Child(idx int) *Node[K, V] {
	return n.children[idx]
}

// Children returns a copy of the child list.
func (n *Node[K, V]) Children() []*Node[K, V] {
	return slices.Clone(n.children)
}

// Depth returns the number of levels below and including n; a leaf is 1.
func (n *Node[K, V]) Depth() int {
	return n.depth
}

// Next returns the child a key dispatches to, or nil when the key hashes past
// the last bucket.
func (n *Node[K, V]) Next(key K) *Node[K, V] {
	if idx := n.disc.Hash(key); idx < uint64(len(n.children)) {
		return n.children[idx]
	}

	return nil
}

func (n *Node[K, V]) String() string {
	var b strings.Builder

	b.WriteString("<mrst|")

	switch {
	case n.IsBranch():
		b.WriteString("Branch|" + n.disc.String() + "|" + strconv.Itoa(len(n.children)))
	case n.marker.Kind == MarkerCase:
		b.WriteString(fmt.Sprintf("Case|%d", n.marker.Key))
	default:
		b.WriteString("Default")
	}

	b.WriteByte('>')

	return b.String()
}

// Tree is an immutable dispatch tree built by Build.
type Tree[K Word, V any] struct {
	root *Node[K, V]
	miss *Node[K, V] // shared Default leaf for out-of-range buckets
	size int
}

func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// Len returns the number of cases in the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}

func (t *Tree[K, V]) Depth() int {
	return t.root.depth
}

// Find walks the tree by the key and returns the leaf it terminates at.
// The leaf may hold a different key or be a Default leaf.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	cur := t.root

	for cur.disc != nil {
		if cur = cur.Next(key); cur == nil {
			return t.miss
		}
	}

	return cur
}

// Lookup returns the payload associated with the key.
func (t *Tree[K, V]) Lookup(key K) (V, bool) {
	leaf := t.Find(key)

	if leaf.marker.Kind == MarkerCase && leaf.marker.Key == key {
		return leaf.marker.Val, true
	}

	var zero V

	return zero, false
}

// Walk visits the nodes in pre-order. The path holds the bucket indices from
// the root and is reused between calls. Returning false stops the walk.
func (t *Tree[K, V]) Walk(visit func(path []int, n *Node[K, V]) bool) bool {
	path := make([]int, 0, t.root.depth)

	return walk(t.root, path, visit)
}

func walk[K Word, V any](n *Node[K, V], path []int, visit func([]int, *Node[K, V]) bool) bool {
	if !visit(path, n) {
		return false
	}

	for i, child := range n.children {
		if !walk(child, append(path, i), visit) {
			return false
		}
	}

	return true
}

// Stats summarizes the shape of a tree.
type Stats struct {
	Branches int
	Cases    int
	Defaults int
	Slots    int // sum of branch widths
	Depth    int
}

func (t *Tree[K, V]) Stats() Stats {
	st := Stats{Depth: t.root.depth}

	t.Walk(func(_ []int, n *Node[K, V]) bool {
		switch {
		case n.IsBranch():
			st.Branches++
			st.Slots += len(n.children)
		case n.marker.Kind == MarkerCase:
			st.Cases++
		default:
			st.Defaults++
		}
		return true
	})

	return st
}

// Dump writes an indented representation of the tree. The label func formats
// payloads; nil prints them with %v.
func (t *Tree[K, V]) Dump(w io.Writer, label func(V) string) error {
	if label == nil {
		label = func(val V) string { return fmt.Sprintf("%v", val) }
	}

	var err error

	t.Walk(func(path []int, n *Node[K, V]) bool {
		var b strings.Builder

		b.WriteString(strings.Repeat("   ", len(path)))

		if len(path) == 0 {
			b.WriteString("--")
		} else {
			b.WriteString("[" + strconv.Itoa(path[len(path)-1]) + "]")
		}

		switch {
		case n.IsBranch():
			b.WriteString(" " + n.disc.String())
		case n.marker.Kind == MarkerCase:
			b.WriteString(fmt.Sprintf(" %d? %s", n.marker.Key, label(n.marker.Val)))
		default:
			b.WriteString(" Default")
		}

		b.WriteByte('\n')

		_, err = io.WriteString(w, b.String())

		return err == nil
	})

	return err
}
