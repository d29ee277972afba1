package decomposition

import (
	"fmt"
	"io"
)

// DOT renders the decomposition tree rooted at n as Graphviz DOT, using
// Node.ID (uuid-backed) as node identity and Node.Type as label — a
// read-only convenience for the "optionally surface tree" part of Test.
func (n *Node) DOT(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph decomposition {"); err != nil {
		return err
	}
	if err := n.writeDOT(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "}")

	return err
}

func (n *Node) writeDOT(w io.Writer) error {
	rows, cols := 0, 0
	if n.Matrix != nil {
		rows, cols = n.Matrix.Rows(), n.Matrix.Cols()
	}
	label := fmt.Sprintf("%s\\n%dx%d", n.Type, rows, cols)
	if _, err := fmt.Fprintf(w, "  %q [label=%q];\n", n.ID, label); err != nil {
		return err
	}
	for _, child := range n.Children {
		if _, err := fmt.Fprintf(w, "  %q -> %q;\n", n.ID, child.ID); err != nil {
			return err
		}
	}
	for _, child := range n.Children {
		if err := child.writeDOT(w); err != nil {
			return err
		}
	}

	return nil
}
