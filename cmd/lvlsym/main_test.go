// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsym/format"
)

const petersen = `c Petersen graph
p edge 10 15
e 1 2
e 2 3
e 3 4
e 4 5
e 5 1
e 1 6
e 2 7
e 3 8
e 4 9
e 5 10
e 6 8
e 8 10
e 10 7
e 7 9
e 9 6
`

func writeGraph(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "g.dimacs")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestAut(t *testing.T) {
	out, err := run(t, "aut", writeGraph(t, petersen))
	require.NoError(t, err)
	assert.Contains(t, out, "Generator: (")
	assert.Contains(t, out, "|Aut|:\t\t120\n")

	out, err = run(t, "aut", "--sh", "f", "--fr=false", "--lp=false", writeGraph(t, petersen))
	require.NoError(t, err)
	assert.Contains(t, out, "|Aut|:\t\t120\n")
}

func TestCanon_WritesCanonicalGraph(t *testing.T) {
	in := writeGraph(t, petersen)
	dst := filepath.Join(t.TempDir(), "canon.dimacs")
	out, err := run(t, "canon", "-o", dst, in)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Canonical labeling: "))

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	g, err := format.ReadDIMACS(f, dst)
	require.NoError(t, err)
	assert.Equal(t, 10, g.NumVertices())
	assert.Equal(t, 15, g.NumEdges())
}

func TestDot(t *testing.T) {
	out, err := run(t, "dot", writeGraph(t, "p edge 2 1\nn 2 3\ne 1 2\n"))
	require.NoError(t, err)
	assert.Equal(t, "graph g {\nv0 [label=\"0:0\"];\nv1 [label=\"1:3\"];\nv0 -- v1\n}\n", out)
}

func TestCatalog(t *testing.T) {
	dir := t.TempDir()
	a := writeGraph(t, "p edge 3 2\ne 1 2\ne 2 3\n")
	b := writeGraph(t, "p edge 3 2\ne 1 3\ne 3 2\n")
	c := writeGraph(t, "p edge 3 3\ne 1 2\ne 2 3\ne 1 3\n")

	out, err := run(t, "catalog", "add", "--dir", dir, a)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "added "))
	id := strings.TrimSpace(strings.TrimPrefix(out, "added "))

	out, err = run(t, "catalog", "add", "--dir", dir, b)
	require.NoError(t, err)
	assert.Equal(t, "exists "+id+"\n", out)

	out, err = run(t, "catalog", "lookup", "--dir", dir, b)
	require.NoError(t, err)
	assert.Equal(t, "found "+id+"\n", out)

	out, err = run(t, "catalog", "lookup", "--dir", dir, c)
	require.NoError(t, err)
	assert.Equal(t, "not found\n", out)

	_, err = run(t, "catalog", "add", a)
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "lvlsym.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("splitting_heuristic: fl\nlong_prune_window: 2\n"), 0o600))
	out, err := run(t, "--config", cfg, "aut", writeGraph(t, petersen))
	require.NoError(t, err)
	assert.Contains(t, out, "|Aut|:\t\t120\n")

	require.NoError(t, os.WriteFile(cfg, []byte("verbose: 7\n"), 0o600))
	_, err = run(t, "--config", cfg, "aut", writeGraph(t, petersen))
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	_, err := run(t, "aut", writeGraph(t, "p edge 2 1\ne 1 5\n"))
	assert.ErrorIs(t, err, format.ErrMalformedInput)

	_, err = run(t, "aut", "--sh", "nope", writeGraph(t, petersen))
	assert.Error(t, err)

	_, err = run(t, "aut", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	_, err = run(t, "--log-level", "loud", "aut", writeGraph(t, petersen))
	assert.Error(t, err)
}
