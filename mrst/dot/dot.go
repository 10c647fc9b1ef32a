// Package dot renders a dispatch tree as a Graphviz digraph.
//
// Node identifiers follow the bucket path from the root ("n" for the root,
// "n_6_2" for bucket 2 of bucket 6), so the output of a given tree is stable
// across runs.
package dot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aglyzov/go-mrst/mrst"
)

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// NodeID returns the identifier of the node reached by the path.
func NodeID(path []int) string {
	var b strings.Builder

	b.WriteByte('n')

	for _, idx := range path {
		b.WriteByte('_')
		b.WriteString(strconv.Itoa(idx))
	}

	return b.String()
}

// Write renders the tree. Branches are labelled with the discriminator, case
// leaves with "KEY?" and the payload label, edges with the bucket index.
// A nil label prints payloads with %v.
func Write[K mrst.Word, V any](w io.Writer, t *mrst.Tree[K, V], label func(V) string) error {
	if label == nil {
		label = func(val V) string { return fmt.Sprintf("%v", val) }
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph mrst {")
	fmt.Fprintln(bw, "\tnode [shape=box];")

	t.Walk(func(path []int, n *mrst.Node[K, V]) bool {
		id := NodeID(path)

		if len(path) > 0 {
			fmt.Fprintf(bw, "\t%s -> %s [label=\"%d\"];\n", NodeID(path[:len(path)-1]), id, path[len(path)-1])
		}

		var text string

		switch m := n.Marker(); {
		case n.IsBranch():
			text = n.Discriminator().String()
		case m.Kind == mrst.MarkerCase:
			text = fmt.Sprintf("%d?\n%s", m.Key, label(m.Val))
		default:
			text = "Default"
		}

		fmt.Fprintf(bw, "\t%s [label=\"%s\"];\n", id, escaper.Replace(text))

		return true
	})

	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
