// SPDX-License-Identifier: MIT
package metrics_test

import (
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsym/builder"
	"github.com/katalvlaran/lvlsym/metrics"
	"github.com/katalvlaran/lvlsym/search"
)

func TestRegistry_ObservesSearches(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewRegistry(reg)

	g, err := builder.BuildGraph(nil, nil, builder.Petersen())
	require.NoError(t, err)
	var st search.Stats
	require.NoError(t, search.FindAutomorphisms(g, &st, search.WithObserver(m)))
	_, err = search.CanonicalForm(g, nil, search.WithObserver(m))
	require.NoError(t, err)
	_, err = search.CanonicalForm(g, nil, search.WithObserver(m), search.WithTerminate(func() bool { return true }))
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues(search.ModeAutomorphisms, "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues(search.ModeCanonical, "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues(search.ModeCanonical, "false")))
	assert.Equal(t, float64(st.Generators), testutil.ToFloat64(m.GeneratorsTotal.WithLabelValues(search.ModeAutomorphisms)))
	assert.InDelta(t, math.Log10(120), testutil.ToFloat64(m.LastGroupSizeLog10.WithLabelValues(search.ModeAutomorphisms)), 1e-9)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.LastGroupSizeLog10.WithLabelValues(search.ModeCanonical)))

	assert.Equal(t, 2, testutil.CollectAndCount(m.SearchNodes))
	assert.Equal(t, 2, testutil.CollectAndCount(m.SearchDuration))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"lvlsym_searches_total",
		"lvlsym_search_nodes",
		"lvlsym_search_duration_seconds",
		"lvlsym_generators_total",
		"lvlsym_last_group_size_log10",
	}, names)
}

func TestRegistry_HugeGroup(t *testing.T) {
	m := metrics.NewRegistry(nil)
	// 200 disjoint edges: |Aut| = 2^200 * 200!, far beyond float64.
	cons := make([]builder.Constructor, 200)
	for i := range cons {
		cons[i] = builder.Path(2)
	}
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)
	var st search.Stats
	require.NoError(t, search.FindAutomorphisms(g, &st, search.WithObserver(m)))
	require.True(t, math.IsInf(st.GroupSizeApprox, 1))

	want := 200*math.Log10(2) + lgammaLog10(201)
	assert.InDelta(t, want, testutil.ToFloat64(m.LastGroupSizeLog10.WithLabelValues(search.ModeAutomorphisms)), 1e-6)
}

func lgammaLog10(x float64) float64 {
	v, _ := math.Lgamma(x)

	return v / math.Ln10
}
