// Package metrics records directory search activity for Prometheus.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the search collectors. A nil *Recorder is valid and
// records nothing, so handlers work with metrics disabled.
type Recorder struct {
	searches *prometheus.CounterVec
	results  prometheus.Histogram
}

// New creates a Recorder and registers its collectors with reg.
func New(reg prometheus.Registerer) *Recorder {
	m := &Recorder{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "communityhub",
			Name:      "searches_total",
			Help:      "Directory list requests by selected category and whether a search term was given.",
		}, []string{"category", "has_term"}),
		results: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "communityhub",
			Name:      "search_results",
			Help:      "Number of resources returned per directory list request.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
	}
	reg.MustRegister(m.searches, m.results)
	return m
}

// ObserveSearch records one filtered listing.
func (m *Recorder) ObserveSearch(category string, hasTerm bool, results int) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(category, strconv.FormatBool(hasTerm)).Inc()
	m.results.Observe(float64(results))
}

// OtherCategory labels selections that are not in the dataset, which keeps
// the label set bounded when callers pass arbitrary ?category= values.
const OtherCategory = "other"

// CategoryLabel returns category when it is one of known, else OtherCategory.
func CategoryLabel(category string, known []string) string {
	for _, c := range known {
		if c == category {
			return c
		}
	}
	return OtherCategory
}

// Handler exposes the collectors gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
