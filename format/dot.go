// SPDX-License-Identifier: MIT
// File: dot.go
// Role: Graphviz output.

package format

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/lvlsym/core"
)

// WriteDot writes g as an undirected Graphviz graph. Vertex v is node "v<v>"
// labeled "<v>:<color>".
func WriteDot(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "graph g {")
	for v, c := range g.Colors() {
		fmt.Fprintf(bw, "v%d [label=\"%d:%d\"];\n", v, v, c)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "v%d -- v%d\n", e.U, e.V)
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
