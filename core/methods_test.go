// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"bytes"
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsym/core"
	"github.com/katalvlaran/lvlsym/perm"
)

// path4 returns the colored path 0-1-2-3 with colors 0,1,1,0.
func path4(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(0)
	for _, c := range []uint32{0, 1, 1, 0} {
		_, err := g.AddVertex(c)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))

	return g
}

func TestGraph_VerticesAndColors(t *testing.T) {
	g := core.NewGraph(3)
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, []uint32{0, 0, 0}, g.Colors())

	v, err := g.AddVertex(7)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	c, err := g.Color(3)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), c)

	require.NoError(t, g.ChangeColor(0, 2))
	assert.Equal(t, []uint32{2, 0, 0, 7}, g.Colors())

	_, err = g.Color(4)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.ChangeColor(-1, 1), core.ErrVertexOutOfRange)
	assert.Equal(t, []uint32{2, 0, 0, 7}, g.Colors(), "failed ChangeColor must not mutate")
}

func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(2, 0))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0), "re-adding an edge is a no-op")
	assert.Equal(t, 2, g.NumEdges())

	assert.ErrorIs(t, g.AddEdge(0, 4), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(5, 0), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(3, 3), core.ErrLoopNotAllowed)
	assert.Equal(t, 2, g.NumEdges())

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, nbrs)

	ok, err := g.HasEdge(0, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = g.HasEdge(1, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	d, err := g.Degree(3)
	require.NoError(t, err)
	assert.Zero(t, d)

	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}}, g.Edges())
}

func TestGraph_FromEdgesRoundTrip(t *testing.T) {
	g := path4(t)
	h, err := core.FromEdges(g.NumVertices(), g.Edges(), g.Colors())
	require.NoError(t, err)
	assert.Equal(t, 0, g.Cmp(h))
	assert.Equal(t, g.Hash(), h.Hash())

	_, err = core.FromEdges(2, []core.Edge{{U: 0, V: 2}}, nil)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = core.FromEdges(2, nil, []uint32{1})
	assert.Error(t, err)
}

func TestGraph_Permute(t *testing.T) {
	g := path4(t)
	p := []int{3, 2, 1, 0}
	h, err := g.Permute(p)
	require.NoError(t, err)
	// Reversal maps the path onto itself, colors included.
	assert.Equal(t, 0, g.Cmp(h))

	q := []int{1, 0, 2, 3}
	h, err = g.Permute(q)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 0, 1, 0}, h.Colors())
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 2, V: 3}}, h.Edges())
	assert.Equal(t, []uint32{0, 1, 1, 0}, g.Colors(), "receiver untouched")

	_, err = g.Permute([]int{0, 1, 2})
	assert.ErrorIs(t, err, perm.ErrInvalidPermutation)
	_, err = g.Permute([]int{0, 0, 1, 2})
	assert.ErrorIs(t, err, perm.ErrInvalidPermutation)
}

func TestGraph_IsAutomorphism(t *testing.T) {
	g := path4(t)
	cases := []struct {
		p    []int
		want bool
	}{
		{[]int{0, 1, 2, 3}, true},
		{[]int{3, 2, 1, 0}, true},
		{[]int{1, 0, 2, 3}, false},
		{[]int{0, 2, 1, 3}, false},
	}
	for _, tc := range cases {
		ok, err := g.IsAutomorphism(tc.p)
		require.NoError(t, err)
		assert.Equal(t, tc.want, ok, "perm %v", tc.p)
	}
	_, err := g.IsAutomorphism([]int{0})
	assert.ErrorIs(t, err, perm.ErrInvalidPermutation)
}

func TestGraph_CmpOrder(t *testing.T) {
	small := core.NewGraph(2)
	big := core.NewGraph(3)
	assert.Equal(t, -1, small.Cmp(big))
	assert.Equal(t, 1, big.Cmp(small))

	a := core.NewGraph(2)
	b := core.NewGraph(2)
	require.NoError(t, b.ChangeColor(1, 1))
	assert.Equal(t, -1, a.Cmp(b), "colors decide before edges")

	c := core.NewGraph(3)
	d := core.NewGraph(3)
	require.NoError(t, c.AddEdge(0, 1))
	require.NoError(t, d.AddEdge(0, 2))
	// Degree vectors (1,1,0) vs (1,0,1): the first differing degree decides.
	assert.Equal(t, 1, c.Cmp(d))
	assert.Equal(t, -1, d.Cmp(c))
	assert.Equal(t, 0, c.Cmp(c))
	assert.True(t, c.Equal(c.Clone()))
}

func TestGraph_CloneIsDeep(t *testing.T) {
	g := path4(t)
	h := g.Clone()
	require.NoError(t, h.AddEdge(0, 3))
	require.NoError(t, h.ChangeColor(1, 9))
	assert.Equal(t, 3, g.NumEdges())
	assert.Equal(t, []uint32{0, 1, 1, 0}, g.Colors())
	assert.NotEqual(t, g.Hash(), h.Hash())
}

func TestGraph_InducedSubgraph(t *testing.T) {
	g := path4(t)
	h, err := g.InducedSubgraph([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 1, 0}, h.Colors())
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}}, h.Edges())
	assert.Equal(t, 2, h.NumEdges())

	_, err = g.InducedSubgraph([]int{4})
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestGraph_FlagsAndSearchGuard(t *testing.T) {
	var buf bytes.Buffer
	g := core.NewGraph(2, core.WithLongPrune(false), core.WithVerboseOutput(&buf))
	f := g.Flags()
	assert.True(t, f.FailureRecording)
	assert.True(t, f.ComponentRecursion)
	assert.False(t, f.LongPrune)
	assert.Equal(t, core.HeuristicFSM, f.Heuristic)
	assert.Same(t, &buf, f.VerboseOutput)

	require.NoError(t, g.SetSplittingHeuristic(core.HeuristicFL))
	assert.ErrorIs(t, g.SetSplittingHeuristic(core.SplittingHeuristic(42)), core.ErrInvalidHeuristic)

	require.NoError(t, g.AcquireSearch())
	assert.True(t, g.Searching())
	assert.ErrorIs(t, g.AcquireSearch(), core.ErrSearchActive)
	assert.ErrorIs(t, g.SetComponentRecursion(false), core.ErrSearchActive)
	assert.ErrorIs(t, g.SetFailureRecording(false), core.ErrSearchActive)
	assert.ErrorIs(t, g.SetLongPrune(true), core.ErrSearchActive)
	assert.ErrorIs(t, g.AddEdge(0, 1), core.ErrSearchActive)
	_, err := g.AddVertex(0)
	assert.ErrorIs(t, err, core.ErrSearchActive)
	g.ReleaseSearch()

	assert.False(t, g.Searching())
	require.NoError(t, g.SetComponentRecursion(false))
	assert.False(t, g.Flags().ComponentRecursion)
	assert.Equal(t, core.HeuristicFL, g.Flags().Heuristic)
}

func TestGraph_NoMutationWhileSearching(t *testing.T) {
	const n = 64
	g := core.NewGraph(n)
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			u, v := i%n, (i/n+i+1)%n
			if u == v {
				continue
			}
			if err := g.AddEdge(u, v); err != nil && !errors.Is(err, core.ErrSearchActive) {
				t.Errorf("AddEdge(%d, %d): %v", u, v, err)
				return
			}
			_ = g.ChangeColor(u, uint32(i%3))
		}
	}()

	for round := 0; round < 200; round++ {
		if err := g.AcquireSearch(); err != nil {
			continue
		}
		edges, colors := g.NumEdges(), g.Colors()
		runtime.Gosched()
		assert.Equal(t, edges, g.NumEdges(), "round %d", round)
		assert.Equal(t, colors, g.Colors(), "round %d", round)
		g.ReleaseSearch()
		runtime.Gosched()
	}
	close(stop)
	wg.Wait()
}

func TestParseSplittingHeuristic(t *testing.T) {
	for _, h := range []core.SplittingHeuristic{
		core.HeuristicF, core.HeuristicFS, core.HeuristicFL,
		core.HeuristicFM, core.HeuristicFSM, core.HeuristicFLM,
	} {
		got, err := core.ParseSplittingHeuristic(h.String())
		require.NoError(t, err)
		assert.Equal(t, h, got)
	}
	got, err := core.ParseSplittingHeuristic("shs_flm")
	require.NoError(t, err)
	assert.Equal(t, core.HeuristicFLM, got)

	_, err = core.ParseSplittingHeuristic("best")
	assert.ErrorIs(t, err, core.ErrInvalidHeuristic)
	assert.Equal(t, "SplittingHeuristic(9)", core.SplittingHeuristic(9).String())
}
