// SPDX-License-Identifier: MIT
package search_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsym/builder"
	"github.com/katalvlaran/lvlsym/core"
	"github.com/katalvlaran/lvlsym/perm"
	"github.com/katalvlaran/lvlsym/search"
)

func build(t *testing.T, gopts []core.GraphOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(gopts, nil, cons...)
	require.NoError(t, err)

	return g
}

// collect runs FindAutomorphisms and returns a copy of every reported generator.
func collect(t *testing.T, g *core.Graph, stats *search.Stats) [][]int {
	t.Helper()
	var gens [][]int
	err := search.FindAutomorphisms(g, stats, search.WithReport(func(n int, aut []int) {
		require.Len(t, aut, n)
		gens = append(gens, append([]int(nil), aut...))
	}))
	require.NoError(t, err)

	return gens
}

func TestFindAutomorphisms_GroupOrders(t *testing.T) {
	tests := []struct {
		name string
		cons []builder.Constructor
		want string
	}{
		{"K1", []builder.Constructor{builder.Complete(1)}, "1"},
		{"K4", []builder.Constructor{builder.Complete(4)}, "24"},
		{"Path(5)", []builder.Constructor{builder.Path(5)}, "2"},
		{"Cycle(6)", []builder.Constructor{builder.Cycle(6)}, "12"},
		{"Star(5)", []builder.Constructor{builder.Star(5)}, "24"},
		{"Wheel(6)", []builder.Constructor{builder.Wheel(6)}, "10"},
		{"K2,3", []builder.Constructor{builder.CompleteBipartite(2, 3)}, "12"},
		{"Grid(3x3)", []builder.Constructor{builder.Grid(3, 3)}, "8"},
		{"Petersen", []builder.Constructor{builder.Petersen()}, "120"},
		{"Cube", []builder.Constructor{builder.PlatonicSolid(builder.Cube, false)}, "48"},
		{"Octahedron", []builder.Constructor{builder.PlatonicSolid(builder.Octahedron, false)}, "48"},
		{"Dodecahedron", []builder.Constructor{builder.PlatonicSolid(builder.Dodecahedron, false)}, "120"},
		{"Icosahedron", []builder.Constructor{builder.PlatonicSolid(builder.Icosahedron, false)}, "120"},
		{"TwoTriangles", []builder.Constructor{builder.Cycle(3), builder.Cycle(3)}, "72"},
		{"ThreeEdges", []builder.Constructor{builder.Path(2), builder.Path(2), builder.Path(2)}, "48"},
	}

	flagSets := map[string][]core.GraphOption{
		"default": nil,
		"plain": {
			core.WithFailureRecording(false),
			core.WithComponentRecursion(false),
			core.WithLongPrune(false),
		},
		"first-cell": {core.WithSplittingHeuristic(core.HeuristicF)},
		"largest":    {core.WithSplittingHeuristic(core.HeuristicFLM)},
	}

	for _, tc := range tests {
		for fname, gopts := range flagSets {
			t.Run(tc.name+"/"+fname, func(t *testing.T) {
				g := build(t, gopts, tc.cons...)
				var st search.Stats
				gens := collect(t, g, &st)

				assert.Equal(t, tc.want, st.GroupSize.String())
				assert.True(t, st.Complete)
				assert.Equal(t, uint64(len(gens)), st.Generators)
				assert.LessOrEqual(t, len(gens), max(g.NumVertices()-1, 0))
				for _, aut := range gens {
					assert.NoError(t, perm.Validate(aut, g.NumVertices()))
					ok, err := g.IsAutomorphism(aut)
					require.NoError(t, err)
					assert.True(t, ok, "not an automorphism: %v", aut)
					assert.False(t, perm.IsIdentity(aut))
				}
			})
		}
	}
}

func TestFindAutomorphisms_DistinctColors(t *testing.T) {
	g := core.NewGraph(4)
	for v := 0; v < 4; v++ {
		require.NoError(t, g.ChangeColor(v, uint32(v)))
	}
	var st search.Stats
	gens := collect(t, g, &st)
	assert.Empty(t, gens)
	assert.Equal(t, "1", st.GroupSize.String())
	assert.Equal(t, 1.0, st.GroupSizeApprox)
}

func TestFindAutomorphisms_Empty(t *testing.T) {
	var st search.Stats
	require.NoError(t, search.FindAutomorphisms(core.NewGraph(0), &st))
	assert.True(t, st.Complete)
	assert.Equal(t, "1", st.GroupSize.String())

	lab, err := search.CanonicalForm(core.NewGraph(0), nil)
	require.NoError(t, err)
	assert.Empty(t, lab)
}

func TestFindAutomorphisms_ColorsRestrictGroup(t *testing.T) {
	g := build(t, nil, builder.Cycle(4))
	require.NoError(t, g.ChangeColor(0, 1))
	var st search.Stats
	gens := collect(t, g, &st)
	assert.Equal(t, "2", st.GroupSize.String())
	require.Len(t, gens, 1)
	assert.Equal(t, []int{0, 3, 2, 1}, gens[0])
}

func TestComponentRecursion_SwapGenerators(t *testing.T) {
	g := build(t, nil, builder.Cycle(3), builder.Cycle(3))
	var st search.Stats
	gens := collect(t, g, &st)
	assert.Equal(t, "72", st.GroupSize.String())
	assert.Len(t, gens, 5)

	swaps := 0
	for _, aut := range gens {
		if aut[0] >= 3 {
			swaps++
		}
	}
	assert.Equal(t, 1, swaps)
}

func TestStats_ResetBetweenCalls(t *testing.T) {
	g := build(t, nil, builder.Petersen())
	var st search.Stats
	require.NoError(t, search.FindAutomorphisms(g, &st))
	first := st
	require.NoError(t, search.FindAutomorphisms(g, &st))
	assert.Equal(t, first.Nodes, st.Nodes)
	assert.Equal(t, first.Generators, st.Generators)
	assert.Equal(t, "120", st.GroupSize.String())
	assert.Equal(t, 120.0, st.GroupSizeApprox)
	assert.Greater(t, st.Nodes, uint64(0))
	assert.Greater(t, st.LeafNodes, uint64(0))
	assert.Greater(t, st.MaxLevel, 0)

	out := st.String()
	assert.Contains(t, out, "Nodes:")
	assert.Contains(t, out, "|Aut|:\t\t120")
}

func TestCanonicalForm_IsomorphicInputs(t *testing.T) {
	g := build(t, nil, builder.Petersen())
	sigma := []int{3, 7, 1, 9, 0, 5, 2, 8, 6, 4}
	h, err := g.Permute(sigma)
	require.NoError(t, err)

	var st search.Stats
	lg, err := search.CanonicalForm(g, &st)
	require.NoError(t, err)
	assert.Equal(t, "120", st.GroupSize.String())
	assert.Greater(t, st.CanonUpdates, uint64(0))
	lh, err := search.CanonicalForm(h, nil)
	require.NoError(t, err)

	require.NoError(t, perm.Validate(lg, 10))
	require.NoError(t, perm.Validate(lh, 10))
	cg, err := g.Permute(lg)
	require.NoError(t, err)
	ch, err := h.Permute(lh)
	require.NoError(t, err)
	assert.True(t, cg.Equal(ch))
}

func TestCanonicalForm_DistinguishesNonIsomorphic(t *testing.T) {
	a := build(t, nil, builder.Cycle(6))
	b := build(t, nil, builder.Cycle(3), builder.Cycle(3))
	la, err := search.CanonicalForm(a, nil)
	require.NoError(t, err)
	lb, err := search.CanonicalForm(b, nil)
	require.NoError(t, err)
	ca, _ := a.Permute(la)
	cb, _ := b.Permute(lb)
	assert.False(t, ca.Equal(cb))
}

func TestTerminate_StopsBeforeRoot(t *testing.T) {
	g := build(t, nil, builder.Petersen())
	var st search.Stats
	lab, err := search.CanonicalForm(g, &st, search.WithTerminate(func() bool { return true }))
	require.NoError(t, err)
	assert.False(t, st.Complete)
	assert.Zero(t, st.Nodes)
	assert.True(t, perm.IsIdentity(lab))
	assert.Equal(t, "1", st.GroupSize.String())
}

func TestTerminate_PartialSearch(t *testing.T) {
	g := build(t, nil, builder.PlatonicSolid(builder.Dodecahedron, false))
	polls := 0
	var st search.Stats
	lab, err := search.CanonicalForm(g, &st, search.WithTerminate(func() bool {
		polls++
		return polls > 2
	}))
	require.NoError(t, err)
	assert.False(t, st.Complete)
	assert.NoError(t, perm.Validate(lab, 20))
	assert.Equal(t, uint64(2), st.Nodes)
}

func TestTerminate_PartialComponents(t *testing.T) {
	// C4 on 0..3, then two isolated vertices; the last poll is the root of
	// vertex 5's component.
	g := build(t, nil, builder.Cycle(4), builder.Complete(1), builder.Complete(1))
	polls := 0
	full, err := search.CanonicalForm(g, nil, search.WithTerminate(func() bool {
		polls++
		return false
	}))
	require.NoError(t, err)

	seen := 0
	var st search.Stats
	lab, err := search.CanonicalForm(g, &st, search.WithTerminate(func() bool {
		seen++
		return seen >= polls
	}))
	require.NoError(t, err)
	assert.False(t, st.Complete)
	require.NoError(t, perm.Validate(lab, 6))

	// Solved classes first: the isolated vertex 4 sorts before C4.
	assert.Equal(t, 0, lab[4])
	assert.Equal(t, 5, lab[5])
	for v := 0; v < 4; v++ {
		assert.Equal(t, full[v]-1, lab[v], "vertex %d", v)
	}
}

func TestContext_Cancelled(t *testing.T) {
	g := build(t, nil, builder.Petersen())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var st search.Stats
	err := search.FindAutomorphisms(g, &st, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, st.Complete)
	assert.False(t, g.Searching())
}

func TestReentrancy(t *testing.T) {
	g := build(t, nil, builder.Cycle(5))
	var nested, setter, mutate error
	err := search.FindAutomorphisms(g, nil, search.WithReport(func(int, []int) {
		nested = search.FindAutomorphisms(g, nil)
		setter = g.SetLongPrune(false)
		mutate = g.AddEdge(0, 2)
	}))
	require.NoError(t, err)
	assert.ErrorIs(t, nested, core.ErrSearchActive)
	assert.ErrorIs(t, setter, core.ErrSearchActive)
	assert.ErrorIs(t, mutate, core.ErrSearchActive)
	assert.True(t, g.Flags().LongPrune)
	assert.Equal(t, 5, g.NumEdges())

	assert.NoError(t, g.SetLongPrune(false))
}

func TestOptions(t *testing.T) {
	g := build(t, nil, builder.Cycle(4))
	assert.ErrorIs(t, search.FindAutomorphisms(nil, nil), search.ErrGraphNil)
	_, err := search.CanonicalForm(nil, nil)
	assert.ErrorIs(t, err, search.ErrGraphNil)
	assert.ErrorIs(t, search.FindAutomorphisms(g, nil, search.WithLongPruneWindow(0)), search.ErrOptionViolation)
	assert.False(t, g.Searching())

	var st search.Stats
	require.NoError(t, search.FindAutomorphisms(g, &st, search.WithLongPruneWindow(1)))
	assert.Equal(t, "8", st.GroupSize.String())

	assert.Panics(t, func() { search.WithReport(nil) })
	assert.Panics(t, func() { search.WithTerminate(nil) })
	assert.Panics(t, func() { search.WithContext(nil) }) //nolint:staticcheck
}

type recordingObserver struct {
	modes []string
	sizes []string
}

func (r *recordingObserver) ObserveSearch(mode string, st *search.Stats, _ time.Duration) {
	r.modes = append(r.modes, mode)
	r.sizes = append(r.sizes, st.GroupSize.String())
}

func TestObserver(t *testing.T) {
	g := build(t, nil, builder.Complete(4))
	obs := &recordingObserver{}
	require.NoError(t, search.FindAutomorphisms(g, nil, search.WithObserver(obs)))
	_, err := search.CanonicalForm(g, nil, search.WithObserver(obs))
	require.NoError(t, err)
	assert.Equal(t, []string{search.ModeAutomorphisms, search.ModeCanonical}, obs.modes)
	assert.Equal(t, []string{"24", "24"}, obs.sizes)
}

func TestVerboseOutput(t *testing.T) {
	var buf bytes.Buffer
	g := build(t, []core.GraphOption{core.WithVerboseLevel(2), core.WithVerboseOutput(&buf)}, builder.Cycle(5))
	require.NoError(t, search.FindAutomorphisms(g, nil))
	out := buf.String()
	assert.Contains(t, out, "automorphism")
	assert.Contains(t, out, "search done")

	buf.Reset()
	require.NoError(t, g.SetVerboseLevel(0))
	require.NoError(t, search.FindAutomorphisms(g, nil))
	assert.Empty(t, buf.String())

	require.NoError(t, g.SetVerboseLevel(1))
	require.NoError(t, search.FindAutomorphisms(g, nil))
	assert.Contains(t, buf.String(), "level done")
	assert.NotContains(t, buf.String(), "generator=")
}
