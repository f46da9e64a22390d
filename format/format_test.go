// SPDX-License-Identifier: MIT
package format_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsym/builder"
	"github.com/katalvlaran/lvlsym/core"
	"github.com/katalvlaran/lvlsym/format"
	"github.com/katalvlaran/lvlsym/search"
)

const house = `c the house graph: a square with a roof
p edge 5 6
n 5 2
e 1 2
e 2 3
e 3 4
e 4 1
e 1 5
e 2 5
`

func TestReadDIMACS(t *testing.T) {
	g, err := format.ReadDIMACS(strings.NewReader(house), "house")
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumVertices())
	assert.Equal(t, []uint32{0, 0, 0, 0, 2}, g.Colors())
	assert.Equal(t, []core.Edge{
		{U: 0, V: 1}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 1, V: 2}, {U: 1, V: 4}, {U: 2, V: 3},
	}, g.Edges())
}

func TestDIMACS_RoundTrip(t *testing.T) {
	g, err := format.ReadDIMACS(strings.NewReader(house), "house")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, format.WriteDIMACS(&buf, g))
	assert.True(t, strings.HasPrefix(buf.String(), "p edge 5 6\nn 1 0\n"))

	back, err := format.ReadDIMACS(&buf, "roundtrip")
	require.NoError(t, err)
	assert.True(t, g.Equal(back))

	lg, err := search.CanonicalForm(g, nil)
	require.NoError(t, err)
	lb, err := search.CanonicalForm(back, nil)
	require.NoError(t, err)
	cg, _ := g.Permute(lg)
	cb, _ := back.Permute(lb)
	assert.True(t, cg.Equal(cb))
}

func TestReadDIMACS_Malformed(t *testing.T) {
	cases := map[string]struct {
		input string
		line  string
	}{
		"no problem line":  {"e 1 2\n", ":1:"},
		"empty":            {"c nothing\n", ":1:"},
		"duplicate p":      {"p edge 2 0\np edge 2 0\n", ":2:"},
		"wrong kind":       {"p col 2 0\n", ":1:"},
		"vertex zero":      {"p edge 2 1\ne 0 1\n", ":2:"},
		"vertex too large": {"p edge 2 1\ne 1 3\n", ":2:"},
		"color vertex":     {"p edge 2 0\nn 3 1\n", ":2:"},
		"self loop":        {"p edge 2 1\ne 2 2\n", ":2:"},
		"edge count":       {"p edge 3 2\ne 1 2\n", ":2:"},
		"garbage":          {"p edge 3 0\nx 1 2\n", ":2:"},
		"extra token":      {"p edge 3 1\ne 1 2 3\n", ":2:"},
		"negative":         {"p edge -3 0\n", ":1:"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := format.ReadDIMACS(strings.NewReader(tc.input), "in")
			assert.Nil(t, g)
			require.ErrorIs(t, err, format.ErrMalformedInput)
			assert.Contains(t, err.Error(), "in"+tc.line)
		})
	}
}

func TestWriteDot(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithColorScheme(func(i int) uint32 { return uint32(i) })},
		builder.Path(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, format.WriteDot(&buf, g))
	assert.Equal(t, "graph g {\n"+
		"v0 [label=\"0:0\"];\n"+
		"v1 [label=\"1:1\"];\n"+
		"v2 [label=\"2:2\"];\n"+
		"v0 -- v1\n"+
		"v1 -- v2\n"+
		"}\n", buf.String())
}
