// SPDX-License-Identifier: MIT
// Package metrics exports symmetry-search statistics to Prometheus.
//
// Registry implements search.Observer; pass it with search.WithObserver.
package metrics

import (
	"math"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvlsym/search"
)

// Registry holds the search metrics registered on one prometheus.Registerer.
type Registry struct {
	SearchesTotal      *prometheus.CounterVec
	SearchNodes        *prometheus.HistogramVec
	SearchDuration     *prometheus.HistogramVec
	GeneratorsTotal    *prometheus.CounterVec
	LastGroupSizeLog10 *prometheus.GaugeVec
}

// NewRegistry registers the search metrics on reg.
// A nil reg uses a fresh prometheus.Registry.
func NewRegistry(reg prometheus.Registerer) *Registry {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Registry{
		SearchesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvlsym_searches_total",
				Help: "Total number of search calls",
			},
			[]string{"mode", "complete"},
		),
		SearchNodes: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lvlsym_search_nodes",
				Help:    "Search-tree nodes created per call",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"mode"},
		),
		SearchDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lvlsym_search_duration_seconds",
				Help:    "Search call duration in seconds",
				Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
			},
			[]string{"mode"},
		),
		GeneratorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvlsym_generators_total",
				Help: "Total number of automorphism group generators found",
			},
			[]string{"mode"},
		),
		LastGroupSizeLog10: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "lvlsym_last_group_size_log10",
				Help: "Decimal logarithm of the last automorphism group order",
			},
			[]string{"mode"},
		),
	}
}

// ObserveSearch records one finished search call.
func (r *Registry) ObserveSearch(mode string, stats *search.Stats, elapsed time.Duration) {
	r.SearchesTotal.WithLabelValues(mode, strconv.FormatBool(stats.Complete)).Inc()
	r.SearchNodes.WithLabelValues(mode).Observe(float64(stats.Nodes))
	r.SearchDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
	r.GeneratorsTotal.WithLabelValues(mode).Add(float64(stats.Generators))
	r.LastGroupSizeLog10.WithLabelValues(mode).Set(groupSizeLog10(stats))
}

// groupSizeLog10 falls back to the decimal digits when the order overflows float64.
func groupSizeLog10(stats *search.Stats) float64 {
	if stats.GroupSize == nil {
		return 0
	}
	if !math.IsInf(stats.GroupSizeApprox, 0) && stats.GroupSizeApprox > 0 {
		return math.Log10(stats.GroupSizeApprox)
	}
	digits := stats.GroupSize.String()
	lead := digits
	if len(lead) > 15 {
		lead = lead[:15]
	}
	mant, err := strconv.ParseFloat(lead, 64)
	if err != nil || mant <= 0 {
		return float64(len(digits) - 1)
	}

	return math.Log10(mant) + float64(len(digits)-len(lead))
}
