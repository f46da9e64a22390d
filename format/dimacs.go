// SPDX-License-Identifier: MIT
// File: dimacs.go
// Role: DIMACS line grammar, reader and writer.

package format

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlsym/core"
)

// ErrMalformedInput indicates a DIMACS stream that cannot be parsed.
var ErrMalformedInput = errors.New("format: malformed input")

type dimacsLine struct {
	Problem *problemLine `parser:"\"p\" @@"`
	Color   *colorLine   `parser:"| \"n\" @@"`
	Edge    *edgeLine    `parser:"| \"e\" @@"`
}

type problemLine struct {
	Kind     string `parser:"@Ident"`
	Vertices int64  `parser:"@Int"`
	Edges    int64  `parser:"@Int"`
}

type colorLine struct {
	Vertex int64 `parser:"@Int"`
	Color  int64 `parser:"@Int"`
}

type edgeLine struct {
	From int64 `parser:"@Int"`
	To   int64 `parser:"@Int"`
}

var dimacsLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "whitespace", Pattern: `[ \t\r]+`},
})

var parseDimacsLine = participle.MustBuild[dimacsLine](
	participle.Lexer(dimacsLexer),
)

// maxDimacsVertices bounds the vertex count accepted from a problem line.
const maxDimacsVertices = 1 << 26

type dimacsReader struct {
	name   string
	line   int
	n      int
	want   int64
	colors []uint32
	edges  []core.Edge
}

func (d *dimacsReader) fail(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedInput, "%s:%d: %s", d.name, d.line, fmt.Sprintf(format, args...))
}

func (d *dimacsReader) vertex(v int64) (int, error) {
	if v < 1 || v > int64(d.n) {
		return 0, d.fail("vertex %d not in 1..%d", v, d.n)
	}

	return int(v - 1), nil
}

func (d *dimacsReader) apply(l *dimacsLine) error {
	if l.Problem == nil && d.colors == nil {
		return d.fail("missing problem line before data")
	}
	switch {
	case l.Problem != nil:
		p := l.Problem
		if d.colors != nil {
			return d.fail("duplicate problem line")
		}
		if p.Kind != "edge" {
			return d.fail("unsupported problem kind %q", p.Kind)
		}
		if p.Vertices > maxDimacsVertices {
			return d.fail("too many vertices: %d", p.Vertices)
		}
		d.n, d.want = int(p.Vertices), p.Edges
		d.colors = make([]uint32, d.n)
	case l.Color != nil:
		v, err := d.vertex(l.Color.Vertex)
		if err != nil {
			return err
		}
		if l.Color.Color > math.MaxUint32 {
			return d.fail("color %d out of range", l.Color.Color)
		}
		d.colors[v] = uint32(l.Color.Color)
	case l.Edge != nil:
		u, err := d.vertex(l.Edge.From)
		if err != nil {
			return err
		}
		v, err := d.vertex(l.Edge.To)
		if err != nil {
			return err
		}
		if u == v {
			return d.fail("self-loop at vertex %d", u+1)
		}
		d.edges = append(d.edges, core.Edge{U: u, V: v})
	}

	return nil
}

// ReadDIMACS parses a DIMACS stream into a new graph with default flags.
// name labels the source in error messages.
//
// Errors: ErrMalformedInput (wrapped with "name:line: reason"), or the
// reader's own error.
func ReadDIMACS(r io.Reader, name string) (*core.Graph, error) {
	d := &dimacsReader{name: name}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		d.line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == 'c' {
			continue
		}
		l, err := parseDimacsLine.ParseString(name, text)
		if err != nil {
			return nil, d.fail("%v", err)
		}
		if err := d.apply(l); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "%s: read", name)
	}
	if d.colors == nil {
		return nil, d.fail("missing problem line")
	}
	if int64(len(d.edges)) != d.want {
		return nil, d.fail("problem line declares %d edges, found %d", d.want, len(d.edges))
	}
	g, err := core.FromEdges(d.n, d.edges, d.colors)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedInput, "%s: %v", name, err)
	}

	return g, nil
}

// WriteDIMACS writes g as "p edge N E", one "n v c" line per vertex and one
// "e u v" line per edge with u < v, all 1-based.
func WriteDIMACS(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	colors := g.Colors()
	edges := g.Edges()
	fmt.Fprintf(bw, "p edge %d %d\n", len(colors), len(edges))
	for v, c := range colors {
		fmt.Fprintf(bw, "n %d %d\n", v+1, c)
	}
	for _, e := range edges {
		fmt.Fprintf(bw, "e %d %d\n", e.U+1, e.V+1)
	}

	return bw.Flush()
}
